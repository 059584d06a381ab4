package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dutyhq/roster-api/internal/models"
	"github.com/dutyhq/roster-api/internal/service"
	"github.com/dutyhq/roster-api/pkg/response"
)

type calendarProjector interface {
	Events(ctx context.Context, runID string, filter models.CalendarFilter) ([]models.DutyCalendarEvent, error)
}

// CalendarHandler exposes the calendar-event projection of stored runs.
type CalendarHandler struct {
	service calendarProjector
}

// NewCalendarHandler constructs the handler.
func NewCalendarHandler(svc *service.CalendarService) *CalendarHandler {
	return &CalendarHandler{service: svc}
}

// Events godoc
// @Summary Project a schedule run into timed calendar events
// @Description Shifts start at 8PM local. Events can be filtered by assignee email and role.
// @Tags Calendar
// @Produce json
// @Param id path string true "Run ID"
// @Param person query string false "Filter by assignee email"
// @Param role query string false "Filter by role (primary|secondary)"
// @Success 200 {object} response.Envelope
// @Router /schedule/runs/{id}/calendar [get]
func (h *CalendarHandler) Events(c *gin.Context) {
	filter := models.CalendarFilter{
		PersonEmail: c.Query("person"),
		Role:        models.Role(c.Query("role")),
	}
	events, err := h.service.Events(c.Request.Context(), c.Param("id"), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, events, nil)
}
