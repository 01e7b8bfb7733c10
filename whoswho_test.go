package whoswho

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/whoswho/core"
	"github.com/hupe1980/whoswho/provider"
)

func newTestRegistry() (*Registry, *provider.MockProvider) {
	p := provider.NewMockProvider()
	r := New(p, func(o *Options) { o.Sink = &bytes.Buffer{} })
	return r, p
}

func TestAddAgent_AndListAgents(t *testing.T) {
	r, _ := newTestRegistry()

	r.AddAgent("Developer1", "Write code according to the requirements.")
	r.AddAgent("Developer2", "Check code for errors.")

	agents := r.ListAgents()
	assert.Equal(t, map[string]string{
		"Developer1": "Write code according to the requirements.",
		"Developer2": "Check code for errors.",
	}, agents)
}

func TestAddAgent_SameNameReplacesAgentAndLog(t *testing.T) {
	r, _ := newTestRegistry()

	r.AddAgent("Developer1", "first role")
	a, ok := r.Agent("Developer1")
	require.True(t, ok)
	_, err := a.Interact(context.Background(), "hello", "", 1)
	require.NoError(t, err)

	log, ok := r.AgentLog("Developer1")
	require.True(t, ok)
	require.Len(t, log, 2)

	// Last-write-wins: the replacement starts with an empty log.
	r.AddAgent("Developer1", "second role")

	log, ok = r.AgentLog("Developer1")
	require.True(t, ok)
	assert.Empty(t, log)
	assert.Equal(t, "second role", r.ListAgents()["Developer1"])
}

func TestAgent_AbsentIsNotAnError(t *testing.T) {
	r, _ := newTestRegistry()

	_, ok := r.Agent("ghost")
	assert.False(t, ok)

	_, ok = r.AgentLog("ghost")
	assert.False(t, ok)

	_, ok = r.AgentLogByRole("ghost")
	assert.False(t, ok)
}

func TestRemoveAgent(t *testing.T) {
	r, _ := newTestRegistry()

	r.AddAgent("Developer1", "role")
	r.RemoveAgent("Developer1")

	_, ok := r.Agent("Developer1")
	assert.False(t, ok)

	// Removing an absent name is a silent no-op.
	r.RemoveAgent("Developer1")
	assert.Empty(t, r.ListAgents())
}

func TestUpdateAgent(t *testing.T) {
	r, _ := newTestRegistry()

	r.AddAgent("Developer1", "old role")
	require.NoError(t, r.UpdateAgent("Developer1", "new role"))
	assert.Equal(t, "new role", r.ListAgents()["Developer1"])
}

func TestUpdateAgent_MissingFailsWithNotFound(t *testing.T) {
	r, _ := newTestRegistry()

	err := r.UpdateAgent("ghost", "role")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrAgentNotFound)
}

func TestAgentLogByRole_ReturnsOnlyOutgoingQueries(t *testing.T) {
	r, _ := newTestRegistry()

	r.AddAgent("Developer1", "role")
	a, _ := r.Agent("Developer1")
	_, err := a.Interact(context.Background(), "one query", "", 1)
	require.NoError(t, err)

	// One query/reply pair in the log, but the registry view filters by the
	// agent's own name: exactly the query entry, never the reply.
	entries, ok := r.AgentLogByRole("Developer1")
	require.True(t, ok)
	require.Len(t, entries, 1)
	assert.Equal(t, "Developer1", entries[0].Role)
	assert.Equal(t, "one query", entries[0].Content)
}

func TestFullLog_SortedByTimestamp(t *testing.T) {
	r, _ := newTestRegistry()

	a := r.AddAgent("A", "role a")
	b := r.AddAgent("B", "role b")

	// Interleaved interactions across agents: A, then B, then A again.
	_, err := a.Interact(context.Background(), "a1", "", 1)
	require.NoError(t, err)
	_, err = b.Interact(context.Background(), "b1", "", 1)
	require.NoError(t, err)
	_, err = a.Interact(context.Background(), "a2", "", 1)
	require.NoError(t, err)

	full := r.FullLog()
	require.Len(t, full, 6)
	for i := 1; i < len(full); i++ {
		assert.LessOrEqual(t, full[i-1].Timestamp, full[i].Timestamp)
	}

	// With equal timestamps (interactions above complete within the same
	// second) relative order follows agent insertion order, so A's first
	// query precedes B's.
	idxA, idxB := -1, -1
	for i, e := range full {
		if e.Content == "a1" && idxA == -1 {
			idxA = i
		}
		if e.Content == "b1" && idxB == -1 {
			idxB = i
		}
	}
	require.NotEqual(t, -1, idxA)
	require.NotEqual(t, -1, idxB)
	assert.Less(t, idxA, idxB)
}

func TestFullLog_Empty(t *testing.T) {
	r, _ := newTestRegistry()
	assert.Empty(t, r.FullLog())
}

func TestSharedControllerSink(t *testing.T) {
	p := provider.NewMockProvider()
	p.AddResponse("q", "streamed reply")

	var sink bytes.Buffer
	r := New(p, func(o *Options) { o.Sink = &sink })

	a := r.AddAgent("Developer1", "role")
	_, err := a.Interact(context.Background(), "q", "", 1)
	require.NoError(t, err)

	assert.Equal(t, "streamed reply", sink.String())
}
