// Package code extracts fenced code blocks from model output. Responses from
// text-generation services conventionally wrap code in triple-backtick fences
// with an optional language tag on the opening fence; this package recovers
// the enclosed text in order of appearance.
package code

import "regexp"

// fencePattern matches a fenced region: opening fence with optional language
// tag followed by a newline, then the body matched non-greedily across lines
// up to the closing fence. A region without a closing fence does not match.
var fencePattern = regexp.MustCompile("(?s)```(?:\\w+)?\\n(.*?)```")

// Extract returns the interior text of every fenced code block in content, in
// order of appearance, with the fence markers and language tag stripped.
// Content without any balanced fence yields an empty result.
func Extract(content string) []string {
	matches := fencePattern.FindAllStringSubmatch(content, -1)
	blocks := make([]string, 0, len(matches))
	for _, m := range matches {
		blocks = append(blocks, m[1])
	}
	return blocks
}
