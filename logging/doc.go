// Package logging provides a minimal logging interface and adapters for Whoswho.
//
// The Logger interface defines the standard logging methods (Debug, Info, Warn, Error)
// that the registry, agents and the controller use for observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", os.Stdout)
//	registry := whoswho.New(provider, func(o *whoswho.Options) { o.Logger = logger })
//
// The design intentionally keeps the interface minimal to avoid vendor lock-in
// while supporting structured logging where available.
package logging
