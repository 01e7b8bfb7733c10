package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewLogEntry(t *testing.T) {
	before := time.Now().Unix()
	entry := NewLogEntry("Developer1", "Write a function.")
	after := time.Now().Unix()

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "Developer1", entry.Role)
	assert.Equal(t, "Write a function.", entry.Content)
	assert.GreaterOrEqual(t, entry.Timestamp, before)
	assert.LessOrEqual(t, entry.Timestamp, after)
}

func TestLogEntry_Time(t *testing.T) {
	entry := LogEntry{Timestamp: 1700000000}
	assert.Equal(t, int64(1700000000), entry.Time().Unix())
}

func TestNewID_Unique(t *testing.T) {
	assert.NotEqual(t, NewID(), NewID())
}
