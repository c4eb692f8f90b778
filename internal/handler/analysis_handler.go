package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/service"
)

// AnalysisHandler handles case analysis endpoints.
type AnalysisHandler struct {
	analysisService service.AnalysisService
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(analysisService service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

// Analyze handles POST /api/v1/analyses
// @Summary Analyze a case packet
// @Description Run one analysis type over the provided case text
// @Tags analyses
// @Accept json
// @Produce json
// @Param request body AnalyzeRequest true "Analysis request"
// @Success 200 {object} Response{data=domain.AnalysisResult} "Analysis result"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Failure 502 {object} ErrorResponseBody "Completion provider failed"
// @Router /analyses [post]
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := h.analysisService.Analyze(c.Request.Context(), &service.AnalysisRequest{
		CaseText:     req.CaseText,
		AnalysisType: req.AnalysisType,
		WitnessName:  req.WitnessName,
		SessionID:    req.SessionID,
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}
