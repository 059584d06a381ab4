package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dutyhq/roster-api/internal/dto"
	"github.com/dutyhq/roster-api/internal/models"
	"github.com/dutyhq/roster-api/internal/scheduler"
	appErrors "github.com/dutyhq/roster-api/pkg/errors"
)

type runStore interface {
	Save(ctx context.Context, run *models.ScheduleRun, ttl time.Duration) error
	Get(ctx context.Context, id string) (*models.ScheduleRun, error)
}

type scheduleRunObserver interface {
	ObserveScheduleRun(status string, slots, score int, duration time.Duration)
}

// ScheduleServiceConfig tunes run retention.
type ScheduleServiceConfig struct {
	RunTTL time.Duration
}

// ScheduleService owns one scheduler engine and serializes every roster
// mutation against schedule generation; a run is one atomic computation
// over state nothing else touches mid-run. Completed runs are kept in a
// TTL-bounded store keyed by run ID.
type ScheduleService struct {
	mu        sync.Mutex
	engine    *scheduler.Engine
	runs      runStore
	metrics   scheduleRunObserver
	validator *validator.Validate
	logger    *zap.Logger
	cfg       ScheduleServiceConfig
}

// NewScheduleService wires the engine, run store and observers.
func NewScheduleService(engine *scheduler.Engine, runs runStore, metrics scheduleRunObserver, validate *validator.Validate, logger *zap.Logger, cfg ScheduleServiceConfig) *ScheduleService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.RunTTL <= 0 {
		cfg.RunTTL = 24 * time.Hour
	}
	if runs == nil {
		runs = NewMemoryRunStore()
	}
	return &ScheduleService{
		engine:    engine,
		runs:      runs,
		metrics:   metrics,
		validator: validate,
		logger:    logger,
		cfg:       cfg,
	}
}

// AddPerson registers a roster member. Emails are lowercased and trimmed
// before they reach the engine.
func (s *ScheduleService) AddPerson(ctx context.Context, req dto.AddPersonRequest) (models.Person, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Person{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid person payload")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.AddPerson(strings.TrimSpace(req.Name), normalizeEmail(req.Email))
}

// RemovePerson drops a person and their preferences.
func (s *ScheduleService) RemovePerson(ctx context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.RemovePerson(normalizeEmail(email))
}

// People lists the roster in insertion order.
func (s *ScheduleService) People(ctx context.Context) []models.Person {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.People()
}

// SetPreferences replaces a person's date preferences.
func (s *ScheduleService) SetPreferences(ctx context.Context, email string, req dto.PreferencesRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.SetPreferences(normalizeEmail(email), req.PreferredDates, req.NotPreferredDates)
}

// Preferences returns stored preferences as sorted canonical date lists.
func (s *ScheduleService) Preferences(ctx context.Context, email string) (*dto.PreferencesResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	normalized := normalizeEmail(email)
	set, err := s.engine.Preferences(normalized)
	if err != nil {
		return nil, err
	}
	return &dto.PreferencesResponse{
		Email:             normalized,
		PreferredDates:    sortedDates(set.Preferred),
		NotPreferredDates: sortedDates(set.NotPreferred),
	}, nil
}

// Configure applies shift counts and the scheduling window. Counts are
// clamped by the engine; an inverted range yields an empty schedule rather
// than an error.
func (s *ScheduleService) Configure(ctx context.Context, req dto.ScheduleConfigRequest) (*dto.ScheduleConfigResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule config payload")
	}
	start, err := scheduler.ParseDay(req.StartDate)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid start date")
	}
	end, err := scheduler.ParseDay(req.EndDate)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid end date")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.engine.SetShiftCounts(req.PrimaryPerDay, req.SecondaryPerDay)
	s.engine.SetDateRange(start, end)
	return s.configLocked(), nil
}

// Config returns the effective engine configuration.
func (s *ScheduleService) Config(ctx context.Context) *dto.ScheduleConfigResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.configLocked()
}

// Generate runs the scheduling pipeline and stores the result under a
// fresh run ID.
func (s *ScheduleService) Generate(ctx context.Context) (*dto.GenerateResponse, error) {
	s.mu.Lock()
	started := time.Now()
	run, err := s.engine.Generate()
	s.mu.Unlock()

	if s.metrics != nil {
		status := "ok"
		slots, score := 0, 0
		if err != nil {
			status = "error"
		} else {
			slots = len(run.Schedule)
			score = run.Report.Score
		}
		s.metrics.ObserveScheduleRun(status, slots, score, time.Since(started))
	}
	if err != nil {
		return nil, err
	}

	run.RunID = uuid.NewString()
	if err := s.runs.Save(ctx, run, s.cfg.RunTTL); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store schedule run")
	}
	s.logger.Info("schedule run stored",
		zap.String("run_id", run.RunID),
		zap.Int("slots", len(run.Schedule)),
		zap.Int("fairness_score", run.Report.Score),
	)

	return &dto.GenerateResponse{
		RunID:          run.RunID,
		Schedule:       run.Schedule,
		FairnessReport: run.Report,
	}, nil
}

// Run fetches a stored schedule run.
func (s *ScheduleService) Run(ctx context.Context, id string) (*models.ScheduleRun, error) {
	if id == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "run id is required")
	}
	run, err := s.runs.Get(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load schedule run")
	}
	if run == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "schedule run not found or expired")
	}
	return run, nil
}

func (s *ScheduleService) configLocked() *dto.ScheduleConfigResponse {
	primary, secondary := s.engine.ShiftCounts()
	resp := &dto.ScheduleConfigResponse{
		PrimaryPerDay:   primary,
		SecondaryPerDay: secondary,
		Headcount:       len(s.engine.People()),
	}
	start, end := s.engine.DateRange()
	if !start.IsZero() {
		resp.StartDate = scheduler.DayString(start)
	}
	if !end.IsZero() {
		resp.EndDate = scheduler.DayString(end)
	}
	return resp
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func sortedDates(set map[string]bool) []string {
	dates := make([]string, 0, len(set))
	for d := range set {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}
