package completion_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/completion"
	claude "github.com/HobbesTheComputerScientist/mock-trial-ai/internal/completion/claude"
	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/config"
	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/port"
)

func newClaudeTestClient(serverURL string) *claude.Client {
	cfg := &config.CompletionProviderConfig{
		Provider:     "claude",
		APIKey:       "test-claude-key",
		DefaultModel: "claude-sonnet-4-20250514",
		TimeoutSecs:  30,
	}
	return claude.NewClientWithEndpoint(cfg, serverURL)
}

func claudeSuccessResponse(text, stopReason string, inTokens, outTokens int) map[string]interface{} {
	return map[string]interface{}{
		"content":     []map[string]interface{}{{"type": "text", "text": text}},
		"stop_reason": stopReason,
		"usage":       map[string]interface{}{"input_tokens": inTokens, "output_tokens": outTokens},
	}
}

func TestClaudeClient_Complete_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-claude-key", r.Header.Get("x-api-key"))
		assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

		var reqBody map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
		assert.Equal(t, "claude-sonnet-4-20250514", reqBody["model"])
		assert.Equal(t, "You are a witness.", reqBody["system"])

		messages := reqBody["messages"].([]interface{})
		assert.Len(t, messages, 1)
		assert.Equal(t, "user", messages[0].(map[string]interface{})["role"])

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(claudeSuccessResponse("I don't recall.", "end_turn", 500, 40))
	}))
	defer server.Close()

	c := newClaudeTestClient(server.URL)
	out, err := c.Complete(context.Background(), port.CompletionInput{
		System:      "You are a witness.",
		User:        "Where were you?",
		MaxTokens:   180,
		Temperature: 0.3,
	})

	require.NoError(t, err)
	assert.Equal(t, "I don't recall.", out.Text)
	assert.Equal(t, "stop", out.FinishReason)
	assert.Equal(t, 540, out.TotalTokens)
}

func TestClaudeClient_Complete_MaxTokensStop(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(claudeSuccessResponse("partial answer", "max_tokens", 500, 180))
	}))
	defer server.Close()

	out, err := newClaudeTestClient(server.URL).Complete(context.Background(), port.CompletionInput{MaxTokens: 180})

	require.NoError(t, err)
	assert.Equal(t, "length", out.FinishReason)
}

func TestClaudeClient_Complete_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := newClaudeTestClient(server.URL).Complete(context.Background(), port.CompletionInput{})

	var rlErr *completion.RateLimitError
	require.ErrorAs(t, err, &rlErr)
	assert.Equal(t, "claude", rlErr.Provider)
	// No Retry-After header falls back to the 60s default.
	assert.Equal(t, float64(60), rlErr.RetryAfter.Seconds())
}

func TestClaudeClient_Complete_EmptyContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"content": []interface{}{}})
	}))
	defer server.Close()

	_, err := newClaudeTestClient(server.URL).Complete(context.Background(), port.CompletionInput{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}
