package core

import (
	"time"

	"github.com/google/uuid"
)

// Conversation role markers used throughout the system. An interaction log
// only ever contains two kinds of roles: an agent's own name (its outgoing
// queries) and RoleAssistant (the service's replies). RoleSystem and RoleUser
// exist for the wire-level request the providers construct.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// LogEntry is one record in an agent's interaction log. Entries are immutable
// once appended; ordering within a log is insertion order. Timestamp is whole
// seconds since the Unix epoch, monotonic non-decreasing in practice but not
// guaranteed strictly increasing.
type LogEntry struct {
	ID        string `json:"id"`
	Timestamp int64  `json:"timestamp"`
	Role      string `json:"role"`
	Content   string `json:"content"`
}

// NewLogEntry creates a log entry stamped with the current time.
func NewLogEntry(role, content string) LogEntry {
	return LogEntry{
		ID:        NewID(),
		Timestamp: time.Now().Unix(),
		Role:      role,
		Content:   content,
	}
}

// Time returns the entry timestamp as a time.Time.
func (e LogEntry) Time() time.Time { return time.Unix(e.Timestamp, 0) }

// Message is a completed conversational turn as returned by the inference
// service: a role marker (always RoleAssistant for service replies) plus the
// fully accumulated text.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// NewID generates a new unique identifier for log entries.
func NewID() string { return uuid.NewString() }
