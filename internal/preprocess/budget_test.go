package preprocess

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// countingCondenser records invocations and returns a canned result.
type countingCondenser struct {
	calls  int
	lastIn string
	out    string
	err    error
}

func (c *countingCondenser) Condense(_ context.Context, text string) (string, error) {
	c.calls++
	c.lastIn = text
	return c.out, c.err
}

func TestManager_NoOpUnderBudget(t *testing.T) {
	c := &countingCondenser{out: "should never be used"}
	m := NewManager(c, Budget{Trigger: 100})

	in := strings.Repeat("a", 100)
	out := m.Fit(context.Background(), in)

	assert.Equal(t, in, out)
	assert.Equal(t, 0, c.calls, "condenser must not be invoked under budget")
}

func TestManager_CondensesOverBudget(t *testing.T) {
	c := &countingCondenser{out: "condensed case facts"}
	m := NewManager(c, Budget{Trigger: 50})

	in := strings.Repeat("b", 120)
	out := m.Fit(context.Background(), in)

	assert.Equal(t, "condensed case facts", out)
	assert.Equal(t, 1, c.calls)
	// Only the first Trigger runes reach the condenser.
	assert.Equal(t, strings.Repeat("b", 50), c.lastIn)
}

func TestManager_FallbackOnError(t *testing.T) {
	c := &countingCondenser{err: errors.New("upstream down")}
	m := NewManager(c, Budget{Trigger: 40})

	in := strings.Repeat("c", 90)
	out := m.Fit(context.Background(), in)

	assert.Equal(t, in[:40], out, "fallback must be a left-prefix of the input")
	assert.Len(t, out, 40)
	assert.Equal(t, 1, c.calls, "single attempt, no retries")
}

func TestManager_FallbackOnEmptyResult(t *testing.T) {
	c := &countingCondenser{out: ""}
	m := NewManager(c, Budget{Trigger: 30})

	in := strings.Repeat("d", 60)
	out := m.Fit(context.Background(), in)

	assert.Equal(t, in[:30], out)
}

func TestManager_NilCondenserTruncates(t *testing.T) {
	m := NewManager(nil, Budget{Trigger: 25})

	in := strings.Repeat("e", 80)
	out := m.Fit(context.Background(), in)

	assert.Equal(t, in[:25], out)
}

func TestManager_RuneBoundaryTruncation(t *testing.T) {
	c := &countingCondenser{err: errors.New("boom")}
	m := NewManager(c, Budget{Trigger: 10})

	in := strings.Repeat("é", 20)
	out := m.Fit(context.Background(), in)

	assert.Equal(t, strings.Repeat("é", 10), out, "truncation must not split runes")
}
