package provider

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Interface compliance (compile-time assertion)
var _ Provider = (*MockProvider)(nil)

func collect(t *testing.T, frags <-chan string, errs <-chan error) (string, error) {
	t.Helper()
	var b strings.Builder
	for f := range frags {
		b.WriteString(f)
	}
	return b.String(), <-errs
}

func TestMockProvider_StreamsCannedResponse(t *testing.T) {
	p := NewMockProvider()
	p.AddResponse("hello", "world")

	frags, errs := p.Stream(context.Background(), Request{Query: "hello"})
	got, err := collect(t, frags, errs)

	require.NoError(t, err)
	assert.Equal(t, "world", got)
}

func TestMockProvider_DefaultEcho(t *testing.T) {
	p := NewMockProvider()

	frags, errs := p.Stream(context.Background(), Request{Query: "ping"})
	got, err := collect(t, frags, errs)

	require.NoError(t, err)
	assert.Equal(t, "Mock response to: ping", got)
}

func TestMockProvider_FailWith(t *testing.T) {
	boom := errors.New("boom")
	p := NewMockProvider()
	p.FailWith(boom)

	frags, errs := p.Stream(context.Background(), Request{Query: "hello"})
	got, err := collect(t, frags, errs)

	assert.Empty(t, got)
	assert.ErrorIs(t, err, boom)
}

func TestMockProvider_ContextCancelled(t *testing.T) {
	p := NewMockProvider()
	p.AddResponse("hello", strings.Repeat("x", 1024))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	frags, errs := p.Stream(ctx, Request{Query: "hello"})
	_, err := collect(t, frags, errs)

	// The first fragments may land in the channel buffer before the
	// cancellation is observed; the error is what matters.
	assert.ErrorIs(t, err, context.Canceled)
}
