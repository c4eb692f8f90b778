package handler

import (
	"github.com/google/uuid"

	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/domain"
)

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// AnalyzeRequest represents the case analysis request body.
type AnalyzeRequest struct {
	CaseText     string              `json:"case_text" binding:"required" example:"STATE OF COLUMBIA v. JORDAN RIVERS ..."`
	AnalysisType domain.AnalysisType `json:"analysis_type" binding:"required" example:"key_facts"`
	WitnessName  string              `json:"witness_name" example:"Jordan Rivers"`
	SessionID    *uuid.UUID          `json:"session_id" example:"550e8400-e29b-41d4-a716-446655440000"`
}

// StartSessionRequest represents the simulator or drill start request body.
type StartSessionRequest struct {
	CaseText    string          `json:"case_text" binding:"required" example:"STATE OF COLUMBIA v. JORDAN RIVERS ..."`
	WitnessName string          `json:"witness_name" binding:"required" example:"Jordan Rivers"`
	ExamType    domain.ExamType `json:"exam_type" binding:"required" example:"cross"`
}

// AskQuestionRequest represents the simulator question request body.
type AskQuestionRequest struct {
	Question string `json:"question" binding:"required" example:"Where were you on the night of March 14th?"`
}

// DrillAnswerRequest represents the drill ruling request body.
type DrillAnswerRequest struct {
	Ruling domain.Ruling `json:"ruling" binding:"required" example:"improper"`
}

// --- Response Types ---

// ExtractionResponse represents the extracted text response.
type ExtractionResponse struct {
	Text  string `json:"text" example:"Officer Lee testified that..."`
	Chars int    `json:"chars" example:"14203"`
}

// DrawResponse represents a freshly drawn practice question.
type DrawResponse struct {
	Question string `json:"question" example:"Isn't it true you wanted revenge?"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"no completion provider configured"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"session ended"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
