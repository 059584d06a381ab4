package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/dutyhq/roster-api/internal/models"
	"github.com/dutyhq/roster-api/internal/scheduler"
	appErrors "github.com/dutyhq/roster-api/pkg/errors"
)

// CalendarService projects stored schedule runs into timed calendar events.
type CalendarService struct {
	runs   runProvider
	logger *zap.Logger
}

// NewCalendarService constructs the service.
func NewCalendarService(runs runProvider, logger *zap.Logger) *CalendarService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CalendarService{runs: runs, logger: logger}
}

// Events returns calendar events for a run, optionally filtered by assignee
// email or role.
func (s *CalendarService) Events(ctx context.Context, runID string, filter models.CalendarFilter) ([]models.DutyCalendarEvent, error) {
	filter.PersonEmail = strings.ToLower(strings.TrimSpace(filter.PersonEmail))
	switch filter.Role {
	case "", models.RolePrimary, models.RoleSecondary:
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "role must be primary or secondary")
	}

	run, err := s.runs.Run(ctx, runID)
	if err != nil {
		return nil, err
	}
	return scheduler.ProjectCalendar(run, filter), nil
}
