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
	drillTemperature = 0.7
	drillMaxTokens   = 300

	// The drill prompt carries only a prefix of the case, enough for the
	// model to ground questions in the facts.
	drillContextChars = 3000
)

// DrillAnswer is the graded outcome of one objection drill answer.
type DrillAnswer struct {
	Attempt domain.DrillAttempt `json:"attempt"`
	Score   domain.DrillScore   `json:"score"`
}

// DrillService manages objection drill sessions: the model poses trial
// questions and the user rules each one proper or improper.
type DrillService interface {
	Start(ctx context.Context, caseText, witnessName string, examType domain.ExamType) (*domain.Session, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	Draw(ctx context.Context, id uuid.UUID) (string, error)
	Answer(ctx context.Context, id uuid.UUID, ruling domain.Ruling) (*DrillAnswer, error)
	End(ctx context.Context, id uuid.UUID) error
}

type drillService struct {
	completer      port.Completer
	budget         *preprocess.Manager
	policy         preprocess.Policy
	sessions       port.SessionRepository
	perThousandUSD float64
}

func NewDrillService(
	completer port.Completer,
	budget *preprocess.Manager,
	policy preprocess.Policy,
	sessions port.SessionRepository,
	perThousandUSD float64,
) DrillService {
	return &drillService{
		completer:      completer,
		budget:         budget,
		policy:         policy,
		sessions:       sessions,
		perThousandUSD: perThousandUSD,
	}
}

func (s *drillService) Start(ctx context.Context, caseText, witnessName string, examType domain.ExamType) (*domain.Session, error) {
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
		Mode:         domain.ModeDrill,
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

func (s *drillService) Get(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	return getSessionForMode(ctx, s.sessions, id, domain.ModeDrill)
}

// Draw generates the next practice question. The ruling stays server-side
// until the user answers.
func (s *drillService) Draw(ctx context.Context, id uuid.UUID) (string, error) {
	session, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}

	caseContext := session.CaseContext
	if runes := []rune(caseContext); len(runes) > drillContextChars {
		caseContext = string(runes[:drillContextChars])
	}

	out, err := s.completer.Complete(ctx, port.CompletionInput{
		System:      prompt.DrillSystem(),
		User:        prompt.DrillQuestion(session.WitnessName, session.ExamType, caseContext),
		MaxTokens:   drillMaxTokens,
		Temperature: drillTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrCompletionFailed, err)
	}

	question, err := ParseDrillQuestion(out.Text)
	if err != nil {
		return "", err
	}

	session.Pending = question
	session.TotalCostUSD += Cost(out.TotalTokens, s.perThousandUSD)
	session.LastActiveAt = time.Now()
	if err := s.sessions.Update(ctx, session); err != nil {
		return "", err
	}
	return question.Question, nil
}

// Answer grades the pending question against the user's ruling.
func (s *drillService) Answer(ctx context.Context, id uuid.UUID, ruling domain.Ruling) (*DrillAnswer, error) {
	if !domain.ValidRulings[ruling] {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidRuling, ruling)
	}
	session, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Pending == nil {
		return nil, domain.ErrNoPendingQuestion
	}

	pending := session.Pending
	attempt := domain.DrillAttempt{
		Question:      pending.Question,
		UserRuling:    ruling,
		CorrectRuling: pending.Ruling,
		Correct:       ruling == pending.Ruling,
		Reason:        pending.Reason,
		Explanation:   pending.Explanation,
		AnsweredAt:    time.Now(),
	}
	session.Attempts = append(session.Attempts, attempt)
	session.Pending = nil
	session.LastActiveAt = time.Now()
	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, err
	}

	return &DrillAnswer{Attempt: attempt, Score: session.Score()}, nil
}

func (s *drillService) End(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.sessions.Delete(ctx, id)
}

// ParseDrillQuestion parses the line-tagged completion output into a
// practice question. Expected lines: QUESTION:, RULING:, REASON:,
// EXPLANATION:. Tag matching is case-insensitive and order-independent.
func ParseDrillQuestion(text string) (*domain.PracticeQuestion, error) {
	q := &domain.PracticeQuestion{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		upper := strings.ToUpper(line)
		switch {
		case strings.HasPrefix(upper, "QUESTION:"):
			q.Question = strings.TrimSpace(line[len("QUESTION:"):])
		case strings.HasPrefix(upper, "RULING:"):
			ruling := strings.ToLower(strings.TrimSpace(line[len("RULING:"):]))
			switch {
			case strings.HasPrefix(ruling, "improper"):
				q.Ruling = domain.RulingImproper
			case strings.HasPrefix(ruling, "proper"):
				q.Ruling = domain.RulingProper
			}
		case strings.HasPrefix(upper, "REASON:"):
			q.Reason = strings.TrimSpace(line[len("REASON:"):])
		case strings.HasPrefix(upper, "EXPLANATION:"):
			q.Explanation = strings.TrimSpace(line[len("EXPLANATION:"):])
		}
	}
	if q.Question == "" || q.Ruling == "" {
		return nil, fmt.Errorf("%w: %q", domain.ErrMalformedQuestion, firstLine(text))
	}
	return q, nil
}

func firstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i]
	}
	return text
}
