package agent

import (
	"context"
	"fmt"
	"sync"

	"github.com/hupe1980/whoswho/core"
	"github.com/hupe1980/whoswho/logging"
)

// Controller is the inference surface an agent needs: a single-turn streamed
// chat call plus fenced code extraction. controller.Controller satisfies it;
// tests may substitute lighter fakes.
type Controller interface {
	Chat(ctx context.Context, roleDescription, query, model string) (core.Message, error)
	ExtractCode(msg core.Message) []string
}

// Options configure an Agent instance.
type Options struct {
	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Agent is a named, role-bound conversational identity with its own
// append-only interaction log. The agent exclusively owns its log; entries
// are never shared or removed individually. All inference calls are delegated
// to the controller the agent was constructed with.
type Agent struct {
	name       string
	controller Controller
	logger     logging.Logger

	mu   sync.Mutex
	role string // current role description (system prompt)
	log  []core.LogEntry
}

// New creates an agent bound to a controller.
func New(name, roleDescription string, ctrl Controller, optFns ...func(o *Options)) *Agent {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	return &Agent{
		name:       name,
		role:       roleDescription,
		controller: ctrl,
		logger:     opts.Logger,
	}
}

// Name returns the agent's name, the unique key it is registered under.
func (a *Agent) Name() string { return a.name }

// RoleDescription returns the current role description.
func (a *Agent) RoleDescription() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.role
}

// UpdateRole replaces the role description used in all future Interact calls.
// Past log entries and in-flight calls are unaffected.
func (a *Agent) UpdateRole(newRoleDescription string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.role = newRoleDescription
}

// Interact runs one or more self-chained request/response turns. Each
// iteration records the query under the agent's own name, sends it to the
// controller with the current role description, records the reply under the
// assistant role, and feeds the reply's content back in as the next query —
// no external input between turns. The final reply is returned.
//
// Every iteration appends exactly two log entries, so a completed call grows
// the log by 2*iterations entries, alternating roles starting with the
// agent's name.
func (a *Agent) Interact(ctx context.Context, query, model string, iterations int) (core.Message, error) {
	if iterations < 1 {
		return core.Message{}, fmt.Errorf("iterations must be at least 1, got %d", iterations)
	}

	var response core.Message
	for i := 0; i < iterations; i++ {
		a.logInteraction(a.name, query)

		a.logger.Debug("agent.interact", "agent", a.name, "iteration", i+1, "of", iterations)

		resp, err := a.controller.Chat(ctx, a.RoleDescription(), query, model)
		if err != nil {
			return core.Message{}, fmt.Errorf("agent %s: %w", a.name, err)
		}
		a.logInteraction(core.RoleAssistant, resp.Content)

		response = resp
		query = resp.Content
	}
	return response, nil
}

// logInteraction appends a timestamped entry to the interaction log.
func (a *Agent) logInteraction(role, content string) {
	entry := core.NewLogEntry(role, content)
	a.mu.Lock()
	a.log = append(a.log, entry)
	a.mu.Unlock()
}

// Log returns a copy of the full interaction log in insertion order.
func (a *Agent) Log() []core.LogEntry {
	a.mu.Lock()
	defer a.mu.Unlock()
	entries := make([]core.LogEntry, len(a.log))
	copy(entries, a.log)
	return entries
}

// LogByRole returns the subsequence of log entries whose role equals
// roleName, order preserved. An agent's outgoing queries are attributed to
// its own name, so callers wanting those must filter by the agent name, not
// by a generic user marker.
func (a *Agent) LogByRole(roleName string) []core.LogEntry {
	a.mu.Lock()
	defer a.mu.Unlock()
	entries := make([]core.LogEntry, 0, len(a.log))
	for _, e := range a.log {
		if e.Role == roleName {
			entries = append(entries, e)
		}
	}
	return entries
}

// ExtractCode delegates to the controller's extraction routine so callers
// holding only an agent need no controller reference.
func (a *Agent) ExtractCode(msg core.Message) []string {
	return a.controller.ExtractCode(msg)
}
