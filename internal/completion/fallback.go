package completion

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/port"
)

// circuitState tracks rate-limit backoff for a single provider.
type circuitState struct {
	mu      sync.RWMutex
	resetAt time.Time // zero value = closed (healthy)
}

func (c *circuitState) isOpenWithReset(now time.Time) (time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.resetAt, !c.resetAt.IsZero() && now.Before(c.resetAt)
}

func (c *circuitState) open(resetAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetAt = resetAt
}

// FallbackCompleter tries providers in order, skipping those with open
// rate-limit circuits. It implements port.Completer.
type FallbackCompleter struct {
	completers []port.Completer
	circuits   []*circuitState
	names      []string
}

// NewFallbackCompleter creates a FallbackCompleter from an ordered list of
// completers and their names.
func NewFallbackCompleter(completers []port.Completer, names []string) *FallbackCompleter {
	circuits := make([]*circuitState, len(completers))
	for i := range circuits {
		circuits[i] = &circuitState{}
	}
	return &FallbackCompleter{
		completers: completers,
		circuits:   circuits,
		names:      names,
	}
}

func (f *FallbackCompleter) Complete(ctx context.Context, input port.CompletionInput) (*port.CompletionOutput, error) {
	now := time.Now()
	var lastErr error
	allRateLimited := true
	var earliestReset time.Time

	for i, c := range f.completers {
		if resetAt, open := f.circuits[i].isOpenWithReset(now); open {
			log.Printf("completion.FallbackCompleter: skipping %s (circuit open until %s)", f.names[i], resetAt.Format(time.RFC3339))
			if earliestReset.IsZero() || resetAt.Before(earliestReset) {
				earliestReset = resetAt
			}
			continue
		}

		out, err := c.Complete(ctx, input)
		if err == nil {
			return out, nil
		}

		log.Printf("completion.FallbackCompleter: %s failed: %v", f.names[i], err)
		lastErr = err

		var rlErr *RateLimitError
		if errors.As(err, &rlErr) {
			resetAt := now.Add(rlErr.RetryAfter)
			f.circuits[i].open(resetAt)
			if earliestReset.IsZero() || resetAt.Before(earliestReset) {
				earliestReset = resetAt
			}
		} else {
			allRateLimited = false
		}
	}

	if lastErr == nil || allRateLimited {
		// Every provider was either skipped or rate limited.
		retryAfter := time.Until(earliestReset)
		if retryAfter < 0 {
			retryAfter = time.Second
		}
		return nil, NewRateLimitError("all", fmt.Errorf("all completion providers rate limited"), int(retryAfter.Seconds()))
	}

	return nil, fmt.Errorf("all completion providers failed: %w", lastErr)
}
