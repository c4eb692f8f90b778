package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/export"
	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/service"
)

// SimulationHandler handles witness examination endpoints.
type SimulationHandler struct {
	simulatorService service.SimulatorService
}

// NewSimulationHandler creates a new SimulationHandler.
func NewSimulationHandler(simulatorService service.SimulatorService) *SimulationHandler {
	return &SimulationHandler{simulatorService: simulatorService}
}

// Start handles POST /api/v1/simulations
// @Summary Start a witness examination
// @Description Create a simulator session for the given case and witness
// @Tags simulations
// @Accept json
// @Produce json
// @Param request body StartSessionRequest true "Session details"
// @Success 201 {object} Response{data=domain.Session} "Session created"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Router /simulations [post]
func (h *SimulationHandler) Start(c *gin.Context) {
	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	session, err := h.simulatorService.Start(c.Request.Context(), req.CaseText, req.WitnessName, req.ExamType)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, session)
}

// Get handles GET /api/v1/simulations/:id
// @Summary Get a simulation session
// @Tags simulations
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} Response{data=domain.Session} "Session details"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Router /simulations/{id} [get]
func (h *SimulationHandler) Get(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}
	session, err := h.simulatorService.Get(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, session)
}

// Ask handles POST /api/v1/simulations/:id/questions
// @Summary Ask the witness a question
// @Description Submit one examination question and receive the witness answer
// @Tags simulations
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Param request body AskQuestionRequest true "Question"
// @Success 200 {object} Response{data=domain.Exchange} "Witness answer"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Failure 502 {object} ErrorResponseBody "Completion provider failed"
// @Router /simulations/{id}/questions [post]
func (h *SimulationHandler) Ask(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}
	var req AskQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	exchange, err := h.simulatorService.Ask(c.Request.Context(), id, req.Question)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, exchange)
}

// Feedback handles POST /api/v1/simulations/:id/feedback
// @Summary Get coach feedback on the examination
// @Tags simulations
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} Response{data=domain.CoachFeedback} "Coach feedback"
// @Failure 400 {object} ErrorResponseBody "Not enough questions asked"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Failure 502 {object} ErrorResponseBody "Completion provider failed"
// @Router /simulations/{id}/feedback [post]
func (h *SimulationHandler) Feedback(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}
	feedback, err := h.simulatorService.Feedback(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, feedback)
}

// Export handles GET /api/v1/simulations/:id/export
// @Summary Export the examination transcript
// @Description Download the transcript as CSV or XLSX
// @Tags simulations
// @Produce text/csv
// @Param id path string true "Session ID (UUID)"
// @Param format query string false "Export format: csv or xlsx" default(csv)
// @Success 200 {file} file "Transcript file"
// @Failure 400 {object} ErrorResponseBody "Invalid format"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Router /simulations/{id}/export [get]
func (h *SimulationHandler) Export(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}
	session, err := h.simulatorService.Get(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	switch c.DefaultQuery("format", "csv") {
	case "csv":
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="transcript-%s.csv"`, id))
		c.Writer.Write(export.BOM)
		w := export.NewWriter(c.Writer)
		if err := w.WriteTranscript(session.Exchanges); err != nil {
			RespondError(c, http.StatusInternalServerError, "EXPORT_FAILED", "failed to write transcript")
			return
		}
		w.Flush()
	case "xlsx":
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="transcript-%s.xlsx"`, id))
		if err := export.WriteTranscriptXLSX(c.Writer, session.Exchanges); err != nil {
			RespondError(c, http.StatusInternalServerError, "EXPORT_FAILED", "failed to write transcript")
			return
		}
	default:
		RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be csv or xlsx")
	}
}

// End handles DELETE /api/v1/simulations/:id
// @Summary End a simulation session
// @Tags simulations
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Session ended"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Router /simulations/{id} [delete]
func (h *SimulationHandler) End(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}
	if err := h.simulatorService.End(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, MessageResponse{Message: "session ended"})
}

// parseSessionID parses the :id path parameter. Returns false if invalid
// (error response already written).
func parseSessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid session ID")
		return uuid.Nil, false
	}
	return id, true
}
