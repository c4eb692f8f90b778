package preprocess

import (
	"context"
	"log"

	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/port"
)

// Budget bounds how much case text is forwarded to the model. Trigger is the
// rune count above which the text is condensed; the condensation target is
// the trigger itself, i.e. "compress to at most N only when longer than N".
type Budget struct {
	Trigger int
}

// Manager applies a Budget to normalized case text, delegating to a
// condenser when the text is over budget.
type Manager struct {
	condenser port.Condenser
	budget    Budget
}

// NewManager creates a Manager. A nil condenser is tolerated; over-budget
// text is then always truncated.
func NewManager(condenser port.Condenser, budget Budget) *Manager {
	return &Manager{condenser: condenser, budget: budget}
}

// Fit returns text unchanged when its rune count is within budget, without
// invoking the condenser. Over-budget text is condensed from its first
// Trigger runes; passing only the prefix keeps the condense call's own cost
// bounded no matter how large the packet is. If the condenser fails or
// returns nothing, Fit falls back to that same prefix. Fit never returns an
// error: the caller always proceeds with best-effort text.
func (m *Manager) Fit(ctx context.Context, text string) string {
	runes := []rune(text)
	if len(runes) <= m.budget.Trigger {
		return text
	}
	prefix := string(runes[:m.budget.Trigger])

	if m.condenser == nil {
		log.Printf("preprocess.Manager: no condenser configured, truncating to %d chars", m.budget.Trigger)
		return prefix
	}

	condensed, err := m.condenser.Condense(ctx, prefix)
	if err != nil {
		log.Printf("preprocess.Manager: condense failed, truncating to %d chars: %v", m.budget.Trigger, err)
		return prefix
	}
	if condensed == "" {
		log.Printf("preprocess.Manager: condenser returned empty output, truncating to %d chars", m.budget.Trigger)
		return prefix
	}
	return condensed
}
