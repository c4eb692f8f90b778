package service

import (
	"context"
	"fmt"
	"log"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/domain"
	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/port"
	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/preprocess"
	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/prompt"
)

const (
	minCaseTextChars    = 50
	analysisTemperature = 0.2

	// Appended when the model stops at its output token limit.
	truncationNotice = "\n\n---\n⚠️ *Analysis truncated. Try a more specific analysis type for complete results.*"
)

// AnalysisRequest is the input for a single case analysis.
type AnalysisRequest struct {
	CaseText     string
	AnalysisType domain.AnalysisType
	WitnessName  string
	SessionID    *uuid.UUID
}

// AnalysisService runs one-shot case analyses over a prepared case packet.
type AnalysisService interface {
	Analyze(ctx context.Context, req *AnalysisRequest) (*domain.AnalysisResult, error)
}

type analysisService struct {
	completer      port.Completer
	budget         *preprocess.Manager
	policy         preprocess.Policy
	sessions       port.SessionRepository
	perThousandUSD float64
}

func NewAnalysisService(
	completer port.Completer,
	budget *preprocess.Manager,
	policy preprocess.Policy,
	sessions port.SessionRepository,
	perThousandUSD float64,
) AnalysisService {
	return &analysisService{
		completer:      completer,
		budget:         budget,
		policy:         policy,
		sessions:       sessions,
		perThousandUSD: perThousandUSD,
	}
}

func (s *analysisService) Analyze(ctx context.Context, req *AnalysisRequest) (*domain.AnalysisResult, error) {
	if !domain.ValidAnalysisTypes[req.AnalysisType] {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAnalysisType, req.AnalysisType)
	}
	if utf8.RuneCountInString(req.CaseText) < minCaseTextChars {
		return nil, domain.ErrCaseTextTooShort
	}
	if req.AnalysisType == domain.AnalysisWitnessQuestions && req.WitnessName == "" {
		return nil, domain.ErrWitnessNameRequired
	}

	caseText := preprocess.Normalize(req.CaseText, s.policy)
	caseText = s.budget.Fit(ctx, caseText)

	out, err := s.completer.Complete(ctx, port.CompletionInput{
		System:      prompt.AnalysisSystem(),
		User:        prompt.Analysis(req.AnalysisType, caseText, req.WitnessName),
		MaxTokens:   maxTokensFor(req.AnalysisType),
		Temperature: analysisTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCompletionFailed, err)
	}

	content := out.Text
	truncated := out.FinishReason == "length"
	if truncated {
		content += truncationNotice
	}

	cost := Cost(out.TotalTokens, s.perThousandUSD)
	s.addSessionCost(ctx, req.SessionID, cost)

	return &domain.AnalysisResult{
		AnalysisType: req.AnalysisType,
		Content:      content,
		TokensUsed:   out.TotalTokens,
		CostUSD:      cost,
		Truncated:    truncated,
		SessionID:    req.SessionID,
	}, nil
}

// addSessionCost folds the analysis cost into the session total when the
// caller passed a session. Failures are logged, not surfaced: cost tracking
// never blocks an analysis.
func (s *analysisService) addSessionCost(ctx context.Context, sessionID *uuid.UUID, cost float64) {
	if sessionID == nil || s.sessions == nil {
		return
	}
	session, err := s.sessions.GetByID(ctx, *sessionID)
	if err != nil {
		log.Printf("[ANALYSIS] session %s not found for cost tracking: %v", sessionID, err)
		return
	}
	session.TotalCostUSD += cost
	if err := s.sessions.Update(ctx, session); err != nil {
		log.Printf("[ANALYSIS] failed to update session %s cost: %v", sessionID, err)
	}
}

// maxTokensFor sizes the completion budget to the analysis type. Full-case
// and argument analyses run longest, statements slightly shorter.
func maxTokensFor(t domain.AnalysisType) int {
	switch t {
	case domain.AnalysisFullCase, domain.AnalysisKeyFacts,
		domain.AnalysisProsecutionArguments, domain.AnalysisDefenseArguments:
		return 2600
	case domain.AnalysisOpeningStatement, domain.AnalysisClosingStatement:
		return 2400
	default:
		return 2000
	}
}
