package completion_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/completion"
	openai "github.com/HobbesTheComputerScientist/mock-trial-ai/internal/completion/openai"
	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/config"
	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/port"
)

func newOpenAITestClient(serverURL string) *openai.Client {
	cfg := &config.CompletionProviderConfig{
		Provider:     "openai",
		APIKey:       "test-openai-key",
		DefaultModel: "gpt-3.5-turbo",
		TimeoutSecs:  30,
	}
	return openai.NewClientWithEndpoint(cfg, serverURL)
}

func openaiSuccessResponse(content, finishReason string, totalTokens int) map[string]interface{} {
	return map[string]interface{}{
		"choices": []map[string]interface{}{
			{
				"message":       map[string]interface{}{"role": "assistant", "content": content},
				"finish_reason": finishReason,
			},
		},
		"usage": map[string]interface{}{"total_tokens": totalTokens},
	}
}

func TestOpenAIClient_Complete_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-openai-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var reqBody map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
		assert.Equal(t, "gpt-3.5-turbo", reqBody["model"])
		assert.Equal(t, float64(2600), reqBody["max_tokens"])
		assert.Equal(t, 0.2, reqBody["temperature"])
		assert.Equal(t, 0.2, reqBody["presence_penalty"])

		messages := reqBody["messages"].([]interface{})
		assert.Len(t, messages, 2)
		assert.Equal(t, "system", messages[0].(map[string]interface{})["role"])
		assert.Equal(t, "user", messages[1].(map[string]interface{})["role"])

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(openaiSuccessResponse("The key facts are...", "stop", 1800))
	}))
	defer server.Close()

	c := newOpenAITestClient(server.URL)
	out, err := c.Complete(context.Background(), port.CompletionInput{
		System:      "You are a mock trial coach.",
		User:        "Extract key facts.",
		MaxTokens:   2600,
		Temperature: 0.2,
	})

	require.NoError(t, err)
	assert.Equal(t, "The key facts are...", out.Text)
	assert.Equal(t, "stop", out.FinishReason)
	assert.Equal(t, 1800, out.TotalTokens)
	assert.Equal(t, "gpt-3.5-turbo", out.ModelUsed)
}

func TestOpenAIClient_Complete_LengthFinish(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(openaiSuccessResponse("partial", "length", 2600))
	}))
	defer server.Close()

	out, err := newOpenAITestClient(server.URL).Complete(context.Background(), port.CompletionInput{MaxTokens: 100})

	require.NoError(t, err)
	assert.Equal(t, "length", out.FinishReason)
}

func TestOpenAIClient_Complete_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Retry-After", "42")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := newOpenAITestClient(server.URL).Complete(context.Background(), port.CompletionInput{})

	var rlErr *completion.RateLimitError
	require.ErrorAs(t, err, &rlErr)
	assert.Equal(t, "openai", rlErr.Provider)
	assert.Equal(t, float64(42), rlErr.RetryAfter.Seconds())
}

func TestOpenAIClient_Complete_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newOpenAITestClient(server.URL).Complete(context.Background(), port.CompletionInput{})

	assert.Error(t, err)
	var rlErr *completion.RateLimitError
	assert.False(t, errors.As(err, &rlErr))
}

func TestOpenAIClient_Complete_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer server.Close()

	_, err := newOpenAITestClient(server.URL).Complete(context.Background(), port.CompletionInput{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}
