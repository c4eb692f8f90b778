package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/domain"
	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/port"
	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/preprocess"
	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/prompt"
)

const (
	witnessTemperature = 0.3
	witnessMaxTokens   = 180

	feedbackTemperature = 0.3
	feedbackMaxTokens   = 1200

	// Minimum exchanges before the coach can give meaningful feedback.
	minQuestionsForFeedback = 3

	// Number of recent exchanges replayed to the model each turn.
	exchangeWindow = 3
)

// SimulatorService manages witness examination sessions: the user plays
// attorney, the model plays the witness.
type SimulatorService interface {
	Start(ctx context.Context, caseText, witnessName string, examType domain.ExamType) (*domain.Session, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	Ask(ctx context.Context, id uuid.UUID, question string) (*domain.Exchange, error)
	Feedback(ctx context.Context, id uuid.UUID) (*domain.CoachFeedback, error)
	End(ctx context.Context, id uuid.UUID) error
}

type simulatorService struct {
	completer      port.Completer
	budget         *preprocess.Manager
	policy         preprocess.Policy
	sessions       port.SessionRepository
	perThousandUSD float64
}

func NewSimulatorService(
	completer port.Completer,
	budget *preprocess.Manager,
	policy preprocess.Policy,
	sessions port.SessionRepository,
	perThousandUSD float64,
) SimulatorService {
	return &simulatorService{
		completer:      completer,
		budget:         budget,
		policy:         policy,
		sessions:       sessions,
		perThousandUSD: perThousandUSD,
	}
}

func (s *simulatorService) Start(ctx context.Context, caseText, witnessName string, examType domain.ExamType) (*domain.Session, error) {
	if utf8.RuneCountInString(caseText) < minCaseTextChars {
		return nil, domain.ErrCaseTextTooShort
	}
	if strings.TrimSpace(witnessName) == "" {
		return nil, domain.ErrWitnessNameRequired
	}
	if !domain.ValidExamTypes[examType] {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidExamType, examType)
	}

	caseContext := preprocess.Normalize(caseText, s.policy)
	caseContext = s.budget.Fit(ctx, caseContext)

	now := time.Now()
	session := &domain.Session{
		ID:           uuid.New(),
		Mode:         domain.ModeSimulator,
		CaseContext:  caseContext,
		WitnessName:  strings.TrimSpace(witnessName),
		ExamType:     examType,
		CreatedAt:    now,
		LastActiveAt: now,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *simulatorService) Get(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	return getSessionForMode(ctx, s.sessions, id, domain.ModeSimulator)
}

func (s *simulatorService) Ask(ctx context.Context, id uuid.UUID, question string) (*domain.Exchange, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	setup := prompt.WitnessSetup(session.WitnessName, session.ExamType, session.CaseContext)
	recent := session.Exchanges
	if len(recent) > exchangeWindow {
		recent = recent[len(recent)-exchangeWindow:]
	}

	out, err := s.completer.Complete(ctx, port.CompletionInput{
		System:      prompt.WitnessSystem(session.WitnessName),
		User:        prompt.WitnessTurn(setup, recent, question, session.WitnessName),
		MaxTokens:   witnessMaxTokens,
		Temperature: witnessTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCompletionFailed, err)
	}

	exchange := domain.Exchange{
		Question: question,
		Answer:   strings.TrimSpace(out.Text),
		AskedAt:  time.Now(),
	}
	session.Exchanges = append(session.Exchanges, exchange)
	session.TotalCostUSD += Cost(out.TotalTokens, s.perThousandUSD)
	session.LastActiveAt = time.Now()
	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, err
	}
	return &exchange, nil
}

func (s *simulatorService) Feedback(ctx context.Context, id uuid.UUID) (*domain.CoachFeedback, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(session.Exchanges) < minQuestionsForFeedback {
		return nil, domain.ErrNotEnoughQuestions
	}

	questions := make([]string, len(session.Exchanges))
	for i, ex := range session.Exchanges {
		questions[i] = ex.Question
	}

	out, err := s.completer.Complete(ctx, port.CompletionInput{
		System:      prompt.FeedbackSystem(),
		User:        prompt.Feedback(session.ExamType, questions),
		MaxTokens:   feedbackMaxTokens,
		Temperature: feedbackTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCompletionFailed, err)
	}

	cost := Cost(out.TotalTokens, s.perThousandUSD)
	session.TotalCostUSD += cost
	session.LastActiveAt = time.Now()
	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, err
	}

	return &domain.CoachFeedback{
		Content:    out.Text,
		TokensUsed: out.TotalTokens,
		CostUSD:    cost,
	}, nil
}

func (s *simulatorService) End(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.sessions.Delete(ctx, id)
}

// getSessionForMode loads a session and verifies it belongs to the expected mode.
func getSessionForMode(ctx context.Context, repo port.SessionRepository, id uuid.UUID, mode domain.Mode) (*domain.Session, error) {
	session, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Mode != mode {
		return nil, fmt.Errorf("%w: session %s is %s", domain.ErrWrongSessionMode, id, session.Mode)
	}
	return session, nil
}
