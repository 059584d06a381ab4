package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dutyhq/roster-api/internal/service"
	"github.com/dutyhq/roster-api/pkg/response"
)

type scheduleExporter interface {
	ScheduleCSV(ctx context.Context, runID string) ([]byte, error)
	SchedulePDF(ctx context.Context, runID string) ([]byte, error)
	WhenToWork(ctx context.Context, runID, teamName string) ([]byte, error)
}

// ExportHandler exposes flat-file downloads of stored schedule runs.
type ExportHandler struct {
	service scheduleExporter
}

// NewExportHandler constructs the handler.
func NewExportHandler(svc *service.ExportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

// CSV godoc
// @Summary Download a schedule run as CSV
// @Tags Export
// @Produce octet-stream
// @Param id path string true "Run ID"
// @Success 200 {file} binary
// @Router /schedule/runs/{id}/export/csv [get]
func (h *ExportHandler) CSV(c *gin.Context) {
	runID := c.Param("id")
	payload, err := h.service.ScheduleCSV(c.Request.Context(), runID)
	if err != nil {
		response.Error(c, err)
		return
	}
	serveAttachment(c, payload, fmt.Sprintf("schedule-%s.csv", runID), "text/csv")
}

// WhenToWork godoc
// @Summary Download a schedule run in WhenToWork import layout
// @Tags Export
// @Produce octet-stream
// @Param id path string true "Run ID"
// @Param team query string false "Team name column value"
// @Success 200 {file} binary
// @Router /schedule/runs/{id}/export/whentowork [get]
func (h *ExportHandler) WhenToWork(c *gin.Context) {
	runID := c.Param("id")
	payload, err := h.service.WhenToWork(c.Request.Context(), runID, c.Query("team"))
	if err != nil {
		response.Error(c, err)
		return
	}
	serveAttachment(c, payload, fmt.Sprintf("whentowork-%s.csv", runID), "text/csv")
}

// PDF godoc
// @Summary Download a schedule run as a tabular PDF
// @Tags Export
// @Produce octet-stream
// @Param id path string true "Run ID"
// @Success 200 {file} binary
// @Router /schedule/runs/{id}/export/pdf [get]
func (h *ExportHandler) PDF(c *gin.Context) {
	runID := c.Param("id")
	payload, err := h.service.SchedulePDF(c.Request.Context(), runID)
	if err != nil {
		response.Error(c, err)
		return
	}
	serveAttachment(c, payload, fmt.Sprintf("schedule-%s.pdf", runID), "application/pdf")
}

func serveAttachment(c *gin.Context, payload []byte, filename, mimeType string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, mimeType, payload)
}
