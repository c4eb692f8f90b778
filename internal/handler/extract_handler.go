package handler

import (
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/domain"
	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/port"
)

// ExtractHandler handles case file text extraction.
type ExtractHandler struct {
	extractor    port.TextExtractor
	maxFileBytes int64
}

// NewExtractHandler creates a new ExtractHandler. maxFileSizeMB bounds the
// accepted upload size.
func NewExtractHandler(extractor port.TextExtractor, maxFileSizeMB int64) *ExtractHandler {
	return &ExtractHandler{
		extractor:    extractor,
		maxFileBytes: maxFileSizeMB * 1024 * 1024,
	}
}

// Extract handles POST /api/v1/extractions
// @Summary Extract text from a case file
// @Description Upload a PDF or plain text file and receive the extracted text,
// @Description ready to submit to an analysis or session endpoint
// @Tags extractions
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Case file (PDF or TXT)"
// @Success 200 {object} Response{data=ExtractionResponse} "Extracted text"
// @Failure 400 {object} ErrorResponseBody "Missing or unsupported file"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 422 {object} ErrorResponseBody "Extraction failed"
// @Router /extractions [post]
func (h *ExtractHandler) Extract(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "multipart field 'file' is required")
		return
	}
	if fileHeader.Size > h.maxFileBytes {
		HandleError(c, domain.ErrFileTooLarge)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_FILE", "could not open uploaded file")
		return
	}
	defer f.Close()

	fileBytes, err := io.ReadAll(io.LimitReader(f, h.maxFileBytes+1))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_FILE", "could not read uploaded file")
		return
	}
	if int64(len(fileBytes)) > h.maxFileBytes {
		HandleError(c, domain.ErrFileTooLarge)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = sniffContentType(fileHeader.Filename, fileBytes)
	}

	text, err := h.extractor.ExtractText(c.Request.Context(), fileBytes, contentType)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, ExtractionResponse{
		Text:  text,
		Chars: utf8.RuneCountInString(text),
	})
}

// sniffContentType falls back to magic bytes and the filename extension when
// the client did not send a usable Content-Type.
func sniffContentType(filename string, fileBytes []byte) string {
	if len(fileBytes) >= 5 && string(fileBytes[:5]) == "%PDF-" {
		return "application/pdf"
	}
	if len(filename) > 4 && filename[len(filename)-4:] == ".pdf" {
		return "application/pdf"
	}
	return "text/plain"
}
