package port

import "context"

// CompletionInput carries one chat completion request.
type CompletionInput struct {
	System      string
	User        string
	MaxTokens   int
	Temperature float64
}

// CompletionOutput contains the model text plus usage accounting.
type CompletionOutput struct {
	Text         string
	FinishReason string // "stop", "length", ...
	TotalTokens  int
	ModelUsed    string
}

// Completer abstracts an LLM text-completion provider.
type Completer interface {
	Complete(ctx context.Context, input CompletionInput) (*CompletionOutput, error)
}

// Condenser compresses over-budget case text while preserving case-relevant
// content (names, dates, quotes, contradictions). Implementations are
// fallible and latency-bearing; callers decide how to recover.
type Condenser interface {
	Condense(ctx context.Context, text string) (string, error)
}
