// Package controller implements the single point of contact with the
// external inference service. The Controller issues one streamed single-turn
// request per Chat call, mirrors every fragment to a configurable sink for
// live display, and returns the fully accumulated reply. Transport and
// service failures are returned as errors; the controller never terminates
// the process on its own.
package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hupe1980/whoswho/code"
	"github.com/hupe1980/whoswho/core"
	"github.com/hupe1980/whoswho/logging"
	"github.com/hupe1980/whoswho/provider"
)

// Options configure a Controller.
type Options struct {
	// Sink receives each text fragment as it arrives, independent of the
	// accumulated return value. Defaults to os.Stdout; tests typically
	// supply a bytes.Buffer and quiet setups io.Discard.
	Sink io.Writer

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// Controller issues streamed chat requests against a Provider.
type Controller struct {
	provider provider.Provider
	sink     io.Writer
	logger   logging.Logger
}

// New creates a Controller over the given provider with optional overrides.
func New(p provider.Provider, optFns ...func(o *Options)) *Controller {
	opts := Options{
		Sink:   os.Stdout,
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Sink == nil {
		opts.Sink = io.Discard
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	return &Controller{provider: p, sink: opts.Sink, logger: opts.Logger}
}

// Chat sends a two-message exchange (system-level roleDescription, user-level
// query) as a single streamed request and blocks until the stream completes.
// Fragments are written to the sink as they arrive; the accumulated text is
// returned tagged with the assistant role. One attempt per call: no timeout,
// no retry, no partial-result recovery on failure.
func (c *Controller) Chat(ctx context.Context, roleDescription, query, model string) (core.Message, error) {
	req := provider.Request{
		Model:        model,
		Instructions: roleDescription,
		Query:        query,
	}

	c.logger.Debug("controller.chat.start", "vendor", c.provider.Info().Vendor, "model", model)

	frags, errs := c.provider.Stream(ctx, req)

	var b strings.Builder
	for frag := range frags {
		b.WriteString(frag)
		if _, err := io.WriteString(c.sink, frag); err != nil {
			// Keep draining; the accumulated response is still usable even
			// when the live display sink fails.
			c.logger.Warn("controller.sink.write_error", "error", err.Error())
		}
	}
	if err := <-errs; err != nil {
		c.logger.Error("controller.chat.error", "error", err.Error())
		return core.Message{}, fmt.Errorf("chat request failed: %w", err)
	}

	c.logger.Debug("controller.chat.complete", "response_len", b.Len())

	return core.Message{Role: core.RoleAssistant, Content: b.String()}, nil
}

// ExtractCode scans a response for fenced code regions and returns the
// enclosed text of each region in order of appearance, fences stripped.
func (c *Controller) ExtractCode(msg core.Message) []string {
	return code.Extract(msg.Content)
}
