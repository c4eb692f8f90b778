package domain

import (
	"time"

	"github.com/google/uuid"
)

// Exchange is one question/answer turn in a simulated examination.
type Exchange struct {
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
	AskedAt  time.Time `json:"asked_at"`
}

// PracticeQuestion is a generated drill question together with its ruling.
// The ruling stays server-side until the user has answered.
type PracticeQuestion struct {
	Question    string `json:"question"`
	Ruling      Ruling `json:"ruling"`
	Reason      string `json:"reason"`
	Explanation string `json:"explanation"`
}

// DrillAttempt records one graded answer in an objection drill.
type DrillAttempt struct {
	Question      string    `json:"question"`
	UserRuling    Ruling    `json:"user_ruling"`
	CorrectRuling Ruling    `json:"correct_ruling"`
	Correct       bool      `json:"correct"`
	Reason        string    `json:"reason"`
	Explanation   string    `json:"explanation"`
	AnsweredAt    time.Time `json:"answered_at"`
}

// DrillScore summarizes performance across a drill session.
type DrillScore struct {
	Total    int     `json:"total"`
	Correct  int     `json:"correct"`
	Accuracy float64 `json:"accuracy"`
}

// Session holds per-session state for the simulator and drill modes:
// the prepared case context, the transcript or attempt history, and the
// running completion cost. Sessions live in memory only and expire after
// a period of inactivity.
type Session struct {
	ID           uuid.UUID         `json:"id"`
	Mode         Mode              `json:"mode"`
	CaseContext  string            `json:"-"`
	WitnessName  string            `json:"witness_name"`
	ExamType     ExamType          `json:"exam_type"`
	Exchanges    []Exchange        `json:"exchanges,omitempty"`
	Attempts     []DrillAttempt    `json:"attempts,omitempty"`
	Pending      *PracticeQuestion `json:"-"`
	TotalCostUSD float64           `json:"total_cost_usd"`
	CreatedAt    time.Time         `json:"created_at"`
	LastActiveAt time.Time         `json:"last_active_at"`
}

// Score computes the drill score from the attempt history.
func (s *Session) Score() DrillScore {
	score := DrillScore{Total: len(s.Attempts)}
	for _, a := range s.Attempts {
		if a.Correct {
			score.Correct++
		}
	}
	if score.Total > 0 {
		score.Accuracy = float64(score.Correct) / float64(score.Total) * 100
	}
	return score
}

// CoachFeedback is the coach's review of a simulated examination.
type CoachFeedback struct {
	Content    string  `json:"content"`
	TokensUsed int     `json:"tokens_used"`
	CostUSD    float64 `json:"cost_usd"`
}

// AnalysisResult is the outcome of a single case analysis request.
type AnalysisResult struct {
	AnalysisType AnalysisType `json:"analysis_type"`
	Content      string       `json:"content"`
	TokensUsed   int          `json:"tokens_used"`
	CostUSD      float64      `json:"cost_usd"`
	Truncated    bool         `json:"truncated"`
	SessionID    *uuid.UUID   `json:"session_id,omitempty"`
}
