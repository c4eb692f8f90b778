package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, "SESSION_NOT_FOUND", "session not found or expired"
	case errors.Is(err, domain.ErrWrongSessionMode):
		return http.StatusNotFound, "SESSION_NOT_FOUND", "session not found or expired"
	case errors.Is(err, domain.ErrCaseTextTooShort):
		return http.StatusBadRequest, "CASE_TEXT_TOO_SHORT", "case text is too short; provide at least 50 characters"
	case errors.Is(err, domain.ErrWitnessNameRequired):
		return http.StatusBadRequest, "WITNESS_NAME_REQUIRED", "witness name is required for this operation"
	case errors.Is(err, domain.ErrInvalidAnalysisType):
		return http.StatusBadRequest, "INVALID_ANALYSIS_TYPE", "unknown analysis type"
	case errors.Is(err, domain.ErrInvalidExamType):
		return http.StatusBadRequest, "INVALID_EXAM_TYPE", "exam type must be direct or cross"
	case errors.Is(err, domain.ErrInvalidRuling):
		return http.StatusBadRequest, "INVALID_RULING", "ruling must be proper or improper"
	case errors.Is(err, domain.ErrNotEnoughQuestions):
		return http.StatusBadRequest, "NOT_ENOUGH_QUESTIONS", "ask at least 3 questions before requesting feedback"
	case errors.Is(err, domain.ErrNoPendingQuestion):
		return http.StatusConflict, "NO_PENDING_QUESTION", "no pending question; draw a question first"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "unsupported file type; allowed: pdf, txt"
	case errors.Is(err, domain.ErrExtractionFailed):
		return http.StatusUnprocessableEntity, "EXTRACTION_FAILED", "could not extract text from the uploaded file"
	case errors.Is(err, domain.ErrCompletionFailed):
		return http.StatusBadGateway, "COMPLETION_FAILED", "language model request failed; try again shortly"
	case errors.Is(err, domain.ErrMalformedQuestion):
		return http.StatusBadGateway, "MALFORMED_QUESTION", "could not generate a usable practice question; draw again"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}
