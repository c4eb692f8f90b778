package domain

import "errors"

var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrWrongSessionMode    = errors.New("session does not support this operation")
	ErrCaseTextTooShort    = errors.New("case text too short")
	ErrWitnessNameRequired = errors.New("witness name required")
	ErrInvalidAnalysisType = errors.New("invalid analysis type")
	ErrInvalidExamType     = errors.New("invalid exam type")
	ErrInvalidRuling       = errors.New("invalid ruling")
	ErrNotEnoughQuestions  = errors.New("not enough questions asked")
	ErrNoPendingQuestion   = errors.New("no pending practice question")
	ErrCompletionFailed    = errors.New("completion request failed")
	ErrMalformedQuestion   = errors.New("malformed practice question from model")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrExtractionFailed    = errors.New("text extraction failed")
)
