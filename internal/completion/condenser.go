package completion

import (
	"context"

	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/port"
	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/prompt"
)

const (
	condenseMaxTokens   = 3500
	condenseTemperature = 0.1
)

// Condenser implements port.Condenser on top of a Completer, asking the
// model to compress case text while preserving every case-relevant detail.
type Condenser struct {
	completer port.Completer
}

// NewCondenser creates a Condenser backed by the given completer.
func NewCondenser(completer port.Completer) *Condenser {
	return &Condenser{completer: completer}
}

func (c *Condenser) Condense(ctx context.Context, text string) (string, error) {
	out, err := c.completer.Complete(ctx, port.CompletionInput{
		System:      prompt.CondenseSystem(),
		User:        prompt.Condense(text),
		MaxTokens:   condenseMaxTokens,
		Temperature: condenseTemperature,
	})
	if err != nil {
		return "", err
	}
	return out.Text, nil
}
