// Package anthropic provides a provider.Provider implementation using the
// Anthropic Messages API in streaming mode.
package anthropic

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/hupe1980/whoswho/core"
	"github.com/hupe1980/whoswho/provider"
)

// Options configure the Anthropic provider adapter (model id, temperature,
// max tokens). Extend via functional options to preserve stability.
type Options struct {
	Model       anthropic.Model
	Temperature float64
	MaxTokens   int64
}

// Provider wraps the Anthropic Messages API behind the generic provider.Provider interface.
type Provider struct {
	client *anthropic.Client
	opts   Options
}

// New creates a new Anthropic provider. The API key is an explicit required
// parameter; an empty key fails with core.ErrMissingAPIKey before any request
// is attempted.
func New(apiKey string, optFns ...func(o *Options)) (*Provider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic: %w", core.ErrMissingAPIKey)
	}
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return NewFromClient(&client, optFns...), nil
}

// NewFromClient creates a new Anthropic provider from an existing client.
func NewFromClient(client *anthropic.Client, optFns ...func(o *Options)) *Provider {
	opts := Options{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		Temperature: 0.7,
		MaxTokens:   4096,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Provider{client: client, opts: opts}
}

// Stream implements provider.Provider. The system-level instruction maps to
// the Messages API system blocks; text deltas are forwarded as they arrive.
func (p *Provider) Stream(ctx context.Context, req provider.Request) (<-chan string, <-chan error) {
	out := make(chan string, 32)
	errCh := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errCh)

		model := p.opts.Model
		if req.Model != "" {
			model = anthropic.Model(req.Model)
		}
		params := anthropic.MessageNewParams{
			Model:       model,
			MaxTokens:   p.opts.MaxTokens,
			Temperature: anthropic.Float(p.opts.Temperature),
			Messages: []anthropic.MessageParam{
				anthropic.NewUserMessage(anthropic.NewTextBlock(req.Query)),
			},
		}
		if req.Instructions != "" {
			params.System = []anthropic.TextBlockParam{{Text: req.Instructions}}
		}

		stream := p.client.Messages.NewStreaming(ctx, params)
		for stream.Next() {
			event := stream.Current()
			delta, ok := event.AsAny().(anthropic.ContentBlockDeltaEvent)
			if !ok || delta.Delta.Text == "" {
				continue
			}
			select {
			case out <- delta.Delta.Text:
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			}
		}
		if err := stream.Err(); err != nil {
			errCh <- fmt.Errorf("anthropic streaming error: %w", err)
		}
	}()

	return out, errCh
}

// Info returns metadata describing this Anthropic provider implementation.
func (p *Provider) Info() provider.Info {
	return provider.Info{Name: string(p.opts.Model), Vendor: "anthropic"}
}
