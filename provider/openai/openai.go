// Package openai provides a provider.Provider implementation using the
// OpenAI Chat Completions API in streaming mode. It adapts Whoswho's
// single-turn request into the SDK's system+user message pair and forwards
// content deltas as they arrive.
package openai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/hupe1980/whoswho/core"
	"github.com/hupe1980/whoswho/provider"
)

// Options configure the OpenAI provider adapter.
// Fields mirror a subset of Chat Completion parameters intentionally kept
// minimal; extend via functional options without breaking callers.
type Options struct {
	Model               string
	Temperature         float64
	MaxCompletionTokens int64
}

// Provider wraps the OpenAI Chat Completions API behind the generic provider.Provider interface.
type Provider struct {
	client *openai.Client
	opts   Options
}

// New creates a new OpenAI provider. The API key is an explicit required
// parameter; sourcing it from the environment or elsewhere is the caller's
// concern. An empty key fails with core.ErrMissingAPIKey before any request
// is attempted.
func New(apiKey string, optFns ...func(o *Options)) (*Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai: %w", core.ErrMissingAPIKey)
	}
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return NewFromClient(&client, optFns...), nil
}

// NewFromClient creates a new OpenAI provider from an existing client.
func NewFromClient(client *openai.Client, optFns ...func(o *Options)) *Provider {
	opts := Options{
		Model:               openai.ChatModelGPT4o,
		Temperature:         0.7,
		MaxCompletionTokens: 4096,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Provider{client: client, opts: opts}
}

// Stream implements provider.Provider. It opens a streaming Chat Completions
// request and forwards each content delta; the fragment channel closes when
// the service signals stream completion.
func (p *Provider) Stream(ctx context.Context, req provider.Request) (<-chan string, <-chan error) {
	out := make(chan string, 32)
	errCh := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errCh)

		model := req.Model
		if model == "" {
			model = p.opts.Model
		}
		params := openai.ChatCompletionNewParams{
			Messages: []openai.ChatCompletionMessageParamUnion{
				openai.SystemMessage(req.Instructions),
				openai.UserMessage(req.Query),
			},
			Model:               model,
			Temperature:         openai.Float(p.opts.Temperature),
			MaxCompletionTokens: openai.Int(p.opts.MaxCompletionTokens),
		}

		stream := p.client.Chat.Completions.NewStreaming(ctx, params)
		for stream.Next() {
			ck := stream.Current()
			for _, ch := range ck.Choices {
				if ch.Delta.Content == "" {
					continue
				}
				select {
				case out <- ch.Delta.Content:
				case <-ctx.Done():
					errCh <- ctx.Err()
					return
				}
			}
		}
		if err := stream.Err(); err != nil {
			errCh <- fmt.Errorf("openai streaming error: %w", err)
		}
	}()

	return out, errCh
}

// Info returns metadata describing this OpenAI provider implementation.
func (p *Provider) Info() provider.Info {
	return provider.Info{Name: p.opts.Model, Vendor: "openai"}
}
