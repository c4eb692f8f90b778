package completion_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/completion"
	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/port"
	"github.com/HobbesTheComputerScientist/mock-trial-ai/mocks"
)

func TestCondenser_Condense_Success(t *testing.T) {
	completer := new(mocks.MockCompleter)
	c := completion.NewCondenser(completer)

	completer.On("Complete", mock.Anything, mock.MatchedBy(func(in port.CompletionInput) bool {
		return in.MaxTokens == 3500 && in.Temperature == 0.1 && strings.Contains(in.User, "the original case packet")
	})).Return(&port.CompletionOutput{Text: "condensed case text"}, nil)

	out, err := c.Condense(context.Background(), "the original case packet")

	assert.NoError(t, err)
	assert.Equal(t, "condensed case text", out)
	completer.AssertExpectations(t)
}

func TestCondenser_Condense_Failure(t *testing.T) {
	completer := new(mocks.MockCompleter)
	c := completion.NewCondenser(completer)

	completer.On("Complete", mock.Anything, mock.Anything).Return(nil, errors.New("rate limited"))

	_, err := c.Condense(context.Background(), "text")

	assert.Error(t, err)
}
