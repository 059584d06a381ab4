package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dutyhq/roster-api/internal/dto"
	"github.com/dutyhq/roster-api/internal/models"
	"github.com/dutyhq/roster-api/internal/service"
	appErrors "github.com/dutyhq/roster-api/pkg/errors"
	"github.com/dutyhq/roster-api/pkg/response"
)

type scheduleRunner interface {
	Configure(ctx context.Context, req dto.ScheduleConfigRequest) (*dto.ScheduleConfigResponse, error)
	Config(ctx context.Context) *dto.ScheduleConfigResponse
	Generate(ctx context.Context) (*dto.GenerateResponse, error)
	Run(ctx context.Context, id string) (*models.ScheduleRun, error)
}

// ScheduleHandler exposes schedule configuration and generation endpoints.
type ScheduleHandler struct {
	service scheduleRunner
}

// NewScheduleHandler constructs the handler.
func NewScheduleHandler(svc *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: svc}
}

// Configure godoc
// @Summary Set shift counts and the scheduling window
// @Description Shift counts are clamped to [0,10]. An inverted date range yields an empty schedule rather than an error.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param payload body dto.ScheduleConfigRequest true "Config payload"
// @Success 200 {object} response.Envelope
// @Router /schedule/config [put]
func (h *ScheduleHandler) Configure(c *gin.Context) {
	var req dto.ScheduleConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid config payload"))
		return
	}
	cfg, err := h.service.Configure(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, cfg, nil)
}

// Config godoc
// @Summary Get the effective schedule configuration
// @Tags Schedule
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /schedule/config [get]
func (h *ScheduleHandler) Config(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Config(c.Request.Context()), nil)
}

// Generate godoc
// @Summary Run the scheduling pipeline
// @Description Fails fast with 412 when total demand exceeds roster capacity under the per-person ceiling.
// @Tags Schedule
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /schedule/generate [post]
func (h *ScheduleHandler) Generate(c *gin.Context) {
	result, err := h.service.Generate(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Run godoc
// @Summary Fetch a stored schedule run
// @Tags Schedule
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} response.Envelope
// @Router /schedule/runs/{id} [get]
func (h *ScheduleHandler) Run(c *gin.Context) {
	run, err := h.service.Run(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, run, nil)
}
