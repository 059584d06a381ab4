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

type rosterManager interface {
	AddPerson(ctx context.Context, req dto.AddPersonRequest) (models.Person, error)
	RemovePerson(ctx context.Context, email string) error
	People(ctx context.Context) []models.Person
	SetPreferences(ctx context.Context, email string, req dto.PreferencesRequest) error
	Preferences(ctx context.Context, email string) (*dto.PreferencesResponse, error)
}

// RosterHandler exposes roster membership and preference endpoints.
type RosterHandler struct {
	service rosterManager
}

// NewRosterHandler constructs the handler.
func NewRosterHandler(svc *service.ScheduleService) *RosterHandler {
	return &RosterHandler{service: svc}
}

// AddPerson godoc
// @Summary Add a person to the duty roster
// @Tags Roster
// @Accept json
// @Produce json
// @Param payload body dto.AddPersonRequest true "Person payload"
// @Success 201 {object} response.Envelope
// @Router /roster [post]
func (h *RosterHandler) AddPerson(c *gin.Context) {
	var req dto.AddPersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid person payload"))
		return
	}
	person, err := h.service.AddPerson(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, person)
}

// RemovePerson godoc
// @Summary Remove a person and their preferences
// @Tags Roster
// @Param email path string true "Person email"
// @Success 204
// @Router /roster/{email} [delete]
func (h *RosterHandler) RemovePerson(c *gin.Context) {
	if err := h.service.RemovePerson(c.Request.Context(), c.Param("email")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// List godoc
// @Summary List roster members in insertion order
// @Tags Roster
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /roster [get]
func (h *RosterHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.People(c.Request.Context()), nil)
}

// SetPreferences godoc
// @Summary Replace a person's date preferences
// @Description A date listed as both preferred and not preferred is rejected.
// @Tags Roster
// @Accept json
// @Produce json
// @Param email path string true "Person email"
// @Param payload body dto.PreferencesRequest true "Preference payload"
// @Success 200 {object} response.Envelope
// @Router /roster/{email}/preferences [put]
func (h *RosterHandler) SetPreferences(c *gin.Context) {
	var req dto.PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid preference payload"))
		return
	}
	email := c.Param("email")
	if err := h.service.SetPreferences(c.Request.Context(), email, req); err != nil {
		response.Error(c, err)
		return
	}
	prefs, err := h.service.Preferences(c.Request.Context(), email)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, prefs, nil)
}

// Preferences godoc
// @Summary Get a person's stored preferences
// @Tags Roster
// @Produce json
// @Param email path string true "Person email"
// @Success 200 {object} response.Envelope
// @Router /roster/{email}/preferences [get]
func (h *RosterHandler) Preferences(c *gin.Context) {
	prefs, err := h.service.Preferences(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, prefs, nil)
}
