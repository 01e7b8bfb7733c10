package core

import "errors"

// Sentinel errors shared across packages. Callers are expected to test for
// them with errors.Is since they are usually returned wrapped with context.
var (
	// ErrAgentNotFound is returned by mutation paths that require an existing
	// agent (e.g. Registry.UpdateAgent). Read-only lookups never return it;
	// they report absence through an ok flag instead.
	ErrAgentNotFound = errors.New("agent not found")

	// ErrMissingAPIKey is returned at provider construction time when no
	// credential was supplied. It is raised before any network activity.
	ErrMissingAPIKey = errors.New("missing api key")
)
