package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/export"
	"github.com/HobbesTheComputerScientist/mock-trial-ai/internal/service"
)

// DrillHandler handles objection drill endpoints.
type DrillHandler struct {
	drillService service.DrillService
}

// NewDrillHandler creates a new DrillHandler.
func NewDrillHandler(drillService service.DrillService) *DrillHandler {
	return &DrillHandler{drillService: drillService}
}

// Start handles POST /api/v1/drills
// @Summary Start an objection drill
// @Description Create a drill session for the given case and witness
// @Tags drills
// @Accept json
// @Produce json
// @Param request body StartSessionRequest true "Session details"
// @Success 201 {object} Response{data=domain.Session} "Session created"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Router /drills [post]
func (h *DrillHandler) Start(c *gin.Context) {
	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	session, err := h.drillService.Start(c.Request.Context(), req.CaseText, req.WitnessName, req.ExamType)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, session)
}

// Get handles GET /api/v1/drills/:id
// @Summary Get a drill session
// @Tags drills
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} Response{data=domain.Session} "Session details with attempts"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Router /drills/{id} [get]
func (h *DrillHandler) Get(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}
	session, err := h.drillService.Get(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, session)
}

// Draw handles POST /api/v1/drills/:id/questions
// @Summary Draw the next practice question
// @Description Generate a new trial question to rule on; the ruling is
// @Description revealed only after answering
// @Tags drills
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} Response{data=DrawResponse} "Practice question"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Failure 502 {object} ErrorResponseBody "Completion provider failed"
// @Router /drills/{id}/questions [post]
func (h *DrillHandler) Draw(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}
	question, err := h.drillService.Draw(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, DrawResponse{Question: question})
}

// Answer handles POST /api/v1/drills/:id/answers
// @Summary Rule on the pending question
// @Description Submit proper or improper and receive the graded result
// @Tags drills
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Param request body DrillAnswerRequest true "Ruling"
// @Success 200 {object} Response{data=service.DrillAnswer} "Graded attempt with running score"
// @Failure 400 {object} ErrorResponseBody "Invalid ruling"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Failure 409 {object} ErrorResponseBody "No pending question"
// @Router /drills/{id}/answers [post]
func (h *DrillHandler) Answer(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}
	var req DrillAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	answer, err := h.drillService.Answer(c.Request.Context(), id, req.Ruling)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, answer)
}

// Export handles GET /api/v1/drills/:id/export
// @Summary Export the drill report
// @Description Download the attempt history and score as CSV or XLSX
// @Tags drills
// @Produce text/csv
// @Param id path string true "Session ID (UUID)"
// @Param format query string false "Export format: csv or xlsx" default(csv)
// @Success 200 {file} file "Drill report file"
// @Failure 400 {object} ErrorResponseBody "Invalid format"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Router /drills/{id}/export [get]
func (h *DrillHandler) Export(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}
	session, err := h.drillService.Get(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	switch c.DefaultQuery("format", "csv") {
	case "csv":
		c.Header("Content-Type", "text/csv; charset=utf-8")
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="drill-%s.csv"`, id))
		c.Writer.Write(export.BOM)
		w := export.NewWriter(c.Writer)
		if err := w.WriteDrillReport(session.Attempts); err != nil {
			RespondError(c, http.StatusInternalServerError, "EXPORT_FAILED", "failed to write drill report")
			return
		}
		w.Flush()
	case "xlsx":
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="drill-%s.xlsx"`, id))
		if err := export.WriteDrillXLSX(c.Writer, session.Attempts, session.Score()); err != nil {
			RespondError(c, http.StatusInternalServerError, "EXPORT_FAILED", "failed to write drill report")
			return
		}
	default:
		RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be csv or xlsx")
	}
}

// End handles DELETE /api/v1/drills/:id
// @Summary End a drill session
// @Tags drills
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Session ended"
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Router /drills/{id} [delete]
func (h *DrillHandler) End(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}
	if err := h.drillService.End(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, MessageResponse{Message: "session ended"})
}
