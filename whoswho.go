// Package whoswho provides a minimal multi-agent orchestration layer over a
// remote conversational-inference service. A Registry owns a collection of
// named agents sharing one inference controller; each agent keeps a private,
// append-only interaction log. Most applications interact with this package
// by:
//  1. Creating a Registry via New() with a concrete provider (openai,
//     anthropic, or the mock for tests)
//  2. Adding named agents with role descriptions
//  3. Driving interactions through the agents and reading logs back through
//     the registry's aggregate views
//
// There is no scheduler, no persistence and no concurrent agent execution:
// the call model is synchronous and blocking by design.
package whoswho

import (
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/hupe1980/whoswho/agent"
	"github.com/hupe1980/whoswho/controller"
	"github.com/hupe1980/whoswho/core"
	"github.com/hupe1980/whoswho/logging"
	"github.com/hupe1980/whoswho/provider"
)

// Options configure the Registry instance.
type Options struct {
	// Sink receives streamed fragments for live display (defaults to os.Stdout).
	Sink io.Writer

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Registry owns the agent collection and the shared inference controller.
// Deleting a registry entry destroys the agent and its log. Access to the
// collection is guarded so a future move to concurrent agents needs no
// reshaping, though the supported call model is single-threaded.
type Registry struct {
	controller *controller.Controller
	logger     logging.Logger

	mu     sync.RWMutex
	agents map[string]*agent.Agent
	order  []string // insertion order of live agent names
}

// New creates a Registry whose agents share one controller over the given
// provider. Credential handling belongs to the provider constructors; by the
// time a Registry exists no configuration error is possible.
func New(p provider.Provider, optFns ...func(o *Options)) *Registry {
	opts := Options{
		Sink:   os.Stdout,
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	ctrl := controller.New(p, func(o *controller.Options) {
		o.Sink = opts.Sink
		o.Logger = opts.Logger
	})

	return &Registry{
		controller: ctrl,
		logger:     opts.Logger,
		agents:     make(map[string]*agent.Agent),
	}
}

// Controller returns the shared inference controller.
func (r *Registry) Controller() *controller.Controller { return r.controller }

// AddAgent creates a new agent bound to the shared controller and inserts it
// under name. A prior agent with the same name is replaced entirely,
// including its log (last-write-wins, no duplicate-name error).
func (r *Registry) AddAgent(name, roleDescription string) *agent.Agent {
	a := agent.New(name, roleDescription, r.controller, func(o *agent.Options) {
		o.Logger = r.logger
	})

	r.mu.Lock()
	if _, exists := r.agents[name]; !exists {
		r.order = append(r.order, name)
	}
	r.agents[name] = a
	r.mu.Unlock()

	r.logger.Info("registry.agent.added", "agent", name)

	return a
}

// Agent looks up an agent by name. Absence is a normal outcome, reported via
// the ok flag rather than an error.
func (r *Registry) Agent(name string) (*agent.Agent, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.agents[name]
	return a, ok
}

// RemoveAgent deletes the named agent and its log. Removing an absent name is
// a silent no-op.
func (r *Registry) RemoveAgent(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.agents[name]; !ok {
		return
	}
	delete(r.agents, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// UpdateAgent replaces the named agent's role description. Unlike the
// read-only lookups, a missing target is a caller-visible failure wrapping
// core.ErrAgentNotFound.
func (r *Registry) UpdateAgent(name, newRoleDescription string) error {
	a, ok := r.Agent(name)
	if !ok {
		return fmt.Errorf("update agent %q: %w", name, core.ErrAgentNotFound)
	}
	a.UpdateRole(newRoleDescription)
	return nil
}

// ListAgents returns a snapshot mapping each agent name to its current role
// description.
func (r *Registry) ListAgents() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	agents := make(map[string]string, len(r.agents))
	for name, a := range r.agents {
		agents[name] = a.RoleDescription()
	}
	return agents
}

// AgentLog returns the named agent's full log in insertion order. Absence is
// reported via the ok flag.
func (r *Registry) AgentLog(name string) ([]core.LogEntry, bool) {
	a, ok := r.Agent(name)
	if !ok {
		return nil, false
	}
	return a.Log(), true
}

// AgentLogByRole returns the named agent's log filtered by the agent's OWN
// name as the role — i.e. only its outgoing query entries, never assistant
// replies. The sibling Agent.LogByRole takes an arbitrary role; this one
// deliberately does not. The asymmetry is preserved for compatibility with
// existing callers; use Agent.LogByRole(core.RoleAssistant) for replies.
func (r *Registry) AgentLogByRole(name string) ([]core.LogEntry, bool) {
	a, ok := r.Agent(name)
	if !ok {
		return nil, false
	}
	return a.LogByRole(name), true
}

// FullLog returns the union of every agent's log, stably sorted by timestamp
// ascending. Agents are concatenated in registry insertion order, so entries
// with equal timestamps keep a deterministic relative order.
func (r *Registry) FullLog() []core.LogEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var full []core.LogEntry
	for _, name := range r.order {
		full = append(full, r.agents[name].Log()...)
	}
	sort.SliceStable(full, func(i, j int) bool {
		return full[i].Timestamp < full[j].Timestamp
	})
	return full
}
