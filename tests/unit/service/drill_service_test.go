package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/domain"
	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/port"
	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/preprocess"
	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/service"
	"github.com/HobbesTheComputerScientist/mock-trial-ai/mocks"
)

func newDrillService(completer port.Completer, repo port.SessionRepository) service.DrillService {
	budget := preprocess.NewManager(nil, preprocess.Budget{Trigger: 12000})
	return service.NewDrillService(completer, budget, preprocess.DefaultPolicy(), repo, perThousandUSD)
}

func drillSession(id uuid.UUID) *domain.Session {
	now := time.Now()
	return &domain.Session{
		ID:           id,
		Mode:         domain.ModeDrill,
		CaseContext:  caseText,
		WitnessName:  "Jordan Rivers",
		ExamType:     domain.ExamCross,
		CreatedAt:    now,
		LastActiveAt: now,
	}
}

const drillCompletion = `QUESTION: Isn't it true you were angry at the victim that night?
RULING: PROPER
REASON: Leading is allowed on cross-examination.
EXPLANATION: Cross-examiners may ask leading questions.`

func TestDrillService_Start_Success(t *testing.T) {
	repo := new(mocks.MockSessionRepo)
	svc := newDrillService(new(mocks.MockCompleter), repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Session) bool {
		return s.Mode == domain.ModeDrill
	})).Return(nil)

	session, err := svc.Start(context.Background(), caseText, "Jordan Rivers", domain.ExamCross)

	assert.NoError(t, err)
	assert.Equal(t, domain.ModeDrill, session.Mode)
	repo.AssertExpectations(t)
}

func TestDrillService_Draw_Success(t *testing.T) {
	completer := new(mocks.MockCompleter)
	repo := new(mocks.MockSessionRepo)
	svc := newDrillService(completer, repo)

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(drillSession(id), nil)
	completer.On("Complete", mock.Anything, mock.MatchedBy(func(in port.CompletionInput) bool {
		return in.MaxTokens == 300 && in.Temperature == 0.7
	})).Return(&port.CompletionOutput{Text: drillCompletion, TotalTokens: 250}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(s *domain.Session) bool {
		return s.Pending != nil && s.Pending.Ruling == domain.RulingProper
	})).Return(nil)

	question, err := svc.Draw(context.Background(), id)

	assert.NoError(t, err)
	assert.Equal(t, "Isn't it true you were angry at the victim that night?", question)
	repo.AssertExpectations(t)
}

func TestDrillService_Draw_TruncatesContext(t *testing.T) {
	completer := new(mocks.MockCompleter)
	repo := new(mocks.MockSessionRepo)
	svc := newDrillService(completer, repo)

	id := uuid.New()
	session := drillSession(id)
	session.CaseContext = strings.Repeat("ß", 5000)
	repo.On("GetByID", mock.Anything, id).Return(session, nil)
	completer.On("Complete", mock.Anything, mock.MatchedBy(func(in port.CompletionInput) bool {
		return strings.Count(in.User, "ß") == 3000
	})).Return(&port.CompletionOutput{Text: drillCompletion}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Draw(context.Background(), id)

	assert.NoError(t, err)
	completer.AssertExpectations(t)
}

func TestDrillService_Draw_MalformedCompletion(t *testing.T) {
	completer := new(mocks.MockCompleter)
	repo := new(mocks.MockSessionRepo)
	svc := newDrillService(completer, repo)

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(drillSession(id), nil)
	completer.On("Complete", mock.Anything, mock.Anything).Return(&port.CompletionOutput{
		Text: "Here is a good question for you to practice with.",
	}, nil)

	_, err := svc.Draw(context.Background(), id)

	assert.ErrorIs(t, err, domain.ErrMalformedQuestion)
}

func TestDrillService_Answer_Correct(t *testing.T) {
	repo := new(mocks.MockSessionRepo)
	svc := newDrillService(new(mocks.MockCompleter), repo)

	id := uuid.New()
	session := drillSession(id)
	session.Pending = &domain.PracticeQuestion{
		Question:    "Isn't it true you were angry?",
		Ruling:      domain.RulingProper,
		Reason:      "Leading is allowed on cross.",
		Explanation: "Cross-examiners may lead.",
	}
	repo.On("GetByID", mock.Anything, id).Return(session, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(s *domain.Session) bool {
		return s.Pending == nil && len(s.Attempts) == 1
	})).Return(nil)

	answer, err := svc.Answer(context.Background(), id, domain.RulingProper)

	assert.NoError(t, err)
	assert.True(t, answer.Attempt.Correct)
	assert.Equal(t, domain.RulingProper, answer.Attempt.CorrectRuling)
	assert.Equal(t, 1, answer.Score.Total)
	assert.Equal(t, 1, answer.Score.Correct)
	assert.Equal(t, 100.0, answer.Score.Accuracy)
	repo.AssertExpectations(t)
}

func TestDrillService_Answer_Incorrect(t *testing.T) {
	repo := new(mocks.MockSessionRepo)
	svc := newDrillService(new(mocks.MockCompleter), repo)

	id := uuid.New()
	session := drillSession(id)
	session.Attempts = []domain.DrillAttempt{{Correct: true}}
	session.Pending = &domain.PracticeQuestion{
		Question: "What did your friend tell you?",
		Ruling:   domain.RulingImproper,
		Reason:   "Hearsay.",
	}
	repo.On("GetByID", mock.Anything, id).Return(session, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	answer, err := svc.Answer(context.Background(), id, domain.RulingProper)

	assert.NoError(t, err)
	assert.False(t, answer.Attempt.Correct)
	assert.Equal(t, 2, answer.Score.Total)
	assert.Equal(t, 1, answer.Score.Correct)
	assert.Equal(t, 50.0, answer.Score.Accuracy)
}

func TestDrillService_Answer_NoPendingQuestion(t *testing.T) {
	repo := new(mocks.MockSessionRepo)
	svc := newDrillService(new(mocks.MockCompleter), repo)

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(drillSession(id), nil)

	_, err := svc.Answer(context.Background(), id, domain.RulingProper)

	assert.ErrorIs(t, err, domain.ErrNoPendingQuestion)
}

func TestDrillService_Answer_InvalidRuling(t *testing.T) {
	svc := newDrillService(new(mocks.MockCompleter), new(mocks.MockSessionRepo))

	_, err := svc.Answer(context.Background(), uuid.New(), "sustained")

	assert.ErrorIs(t, err, domain.ErrInvalidRuling)
}

func TestParseDrillQuestion(t *testing.T) {
	q, err := service.ParseDrillQuestion(drillCompletion)

	assert.NoError(t, err)
	assert.Equal(t, "Isn't it true you were angry at the victim that night?", q.Question)
	assert.Equal(t, domain.RulingProper, q.Ruling)
	assert.Equal(t, "Leading is allowed on cross-examination.", q.Reason)
	assert.Equal(t, "Cross-examiners may ask leading questions.", q.Explanation)
}

func TestParseDrillQuestion_CaseInsensitiveTags(t *testing.T) {
	q, err := service.ParseDrillQuestion("question: What happened next?\nruling: improper\nreason: Narrative.\nexplanation: Too open-ended.")

	assert.NoError(t, err)
	assert.Equal(t, "What happened next?", q.Question)
	assert.Equal(t, domain.RulingImproper, q.Ruling)
}

func TestParseDrillQuestion_Malformed(t *testing.T) {
	_, err := service.ParseDrillQuestion("RULING: PROPER\nREASON: fine")
	assert.ErrorIs(t, err, domain.ErrMalformedQuestion)

	_, err = service.ParseDrillQuestion("QUESTION: What happened?\nRULING: sustained")
	assert.ErrorIs(t, err, domain.ErrMalformedQuestion)
}
