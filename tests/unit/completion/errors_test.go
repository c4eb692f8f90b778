package completion_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/completion"
)

func TestNewRateLimitError(t *testing.T) {
	base := errors.New("429 too many requests")
	err := completion.NewRateLimitError("openai", base, 30)

	assert.Equal(t, 30*time.Second, err.RetryAfter)
	assert.Equal(t, "openai", err.Provider)
	assert.ErrorIs(t, err, base)
	assert.Contains(t, err.Error(), "openai rate limited")
}

func TestNewRateLimitError_DefaultRetryAfter(t *testing.T) {
	err := completion.NewRateLimitError("claude", errors.New("429"), 0)
	assert.Equal(t, 60*time.Second, err.RetryAfter)
}

func TestParseRetryAfterHeader(t *testing.T) {
	assert.Equal(t, 0, completion.ParseRetryAfterHeader(""))
	assert.Equal(t, 0, completion.ParseRetryAfterHeader("Wed, 21 Oct 2026 07:28:00 GMT"))
	assert.Equal(t, 45, completion.ParseRetryAfterHeader("45"))
}

func TestRateLimitError_ErrorsAs(t *testing.T) {
	var target *completion.RateLimitError
	wrapped := completion.NewRateLimitError("openai", errors.New("429"), 10)
	assert.ErrorAs(t, error(wrapped), &target)
}
