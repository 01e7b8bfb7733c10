// Package agent implements the stateful conversational identity of the
// Whoswho system. An Agent couples a name, a mutable role description and an
// append-only interaction log, delegating all inference calls to the
// controller it was given. Agents are cheap to construct; their lifecycle is
// owned entirely by the registry that created them.
package agent
