package scheduler

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dutyhq/roster-api/internal/models"
	appErrors "github.com/dutyhq/roster-api/pkg/errors"
)

const (
	maxShiftsPerDay          = 10
	defaultSwapPasses        = 100
	defaultBalanceIterations = 500
)

// Config governs the optimizer and balancer budgets.
type Config struct {
	MaxSwapPasses        int
	MaxBalanceIterations int
}

// Engine holds the roster, preferences and run configuration, and produces
// schedules on demand. Engines are plain values with no process-wide state;
// construct as many as needed. An Engine is not safe for concurrent use:
// callers serialize mutation against Generate.
type Engine struct {
	cfg    Config
	logger *zap.Logger

	primary   int
	secondary int
	start     time.Time
	end       time.Time

	people []models.Person
	prefs  map[string]models.PreferenceSet
	nextID int
}

// New constructs an engine with an empty roster.
func New(cfg Config, logger *zap.Logger) *Engine {
	if cfg.MaxSwapPasses <= 0 {
		cfg.MaxSwapPasses = defaultSwapPasses
	}
	if cfg.MaxBalanceIterations <= 0 {
		cfg.MaxBalanceIterations = defaultBalanceIterations
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		cfg:    cfg,
		logger: logger,
		prefs:  make(map[string]models.PreferenceSet),
		nextID: 1,
	}
}

// SetShiftCounts sets the parallel slots per day for each role, clamped to
// [0, 10].
func (e *Engine) SetShiftCounts(primary, secondary int) {
	e.primary = clampShiftCount(primary)
	e.secondary = clampShiftCount(secondary)
}

// ShiftCounts returns the configured per-day slot counts.
func (e *Engine) ShiftCounts() (primary, secondary int) {
	return e.primary, e.secondary
}

// SetDateRange normalizes both bounds to local midnight.
func (e *Engine) SetDateRange(start, end time.Time) {
	e.start = NormalizeDay(start)
	e.end = NormalizeDay(end)
}

// DateRange returns the configured range bounds; zero values when unset.
func (e *Engine) DateRange() (start, end time.Time) {
	return e.start, e.end
}

// AddPerson appends a roster member. Email is matched exactly as stored;
// callers lowercase/trim beforehand.
func (e *Engine) AddPerson(name, email string) (models.Person, error) {
	if name == "" || email == "" {
		return models.Person{}, appErrors.Clone(appErrors.ErrValidation, "name and email are required")
	}
	for _, p := range e.people {
		if p.Email == email {
			return models.Person{}, appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("person %s already on roster", email))
		}
	}
	person := models.Person{ID: e.nextID, Name: name, Email: email}
	e.nextID++
	e.people = append(e.people, person)
	e.prefs[email] = models.NewPreferenceSet()
	return person, nil
}

// RemovePerson drops a person and their preference record. Existing runs
// are not touched.
func (e *Engine) RemovePerson(email string) error {
	for i, p := range e.people {
		if p.Email == email {
			e.people = append(e.people[:i], e.people[i+1:]...)
			delete(e.prefs, email)
			return nil
		}
	}
	return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("person %s not on roster", email))
}

// People returns a copy of the roster in insertion order.
func (e *Engine) People() []models.Person {
	out := make([]models.Person, len(e.people))
	copy(out, e.people)
	return out
}

// SetPreferences stores canonicalized date preferences for a roster member.
// A date appearing in both lists is rejected rather than propagating
// ambiguous semantics into scheduling.
func (e *Engine) SetPreferences(email string, preferredDates, notPreferredDates []string) error {
	if _, ok := e.prefs[email]; !ok {
		return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("person %s not on roster", email))
	}
	set := models.NewPreferenceSet()
	for _, raw := range preferredDates {
		day, err := ParseDay(raw)
		if err != nil {
			return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid preferred date")
		}
		set.Preferred[DayString(day)] = true
	}
	for _, raw := range notPreferredDates {
		day, err := ParseDay(raw)
		if err != nil {
			return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid unavailable date")
		}
		date := DayString(day)
		if set.Preferred[date] {
			return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("date %s is both preferred and unavailable", date))
		}
		set.NotPreferred[date] = true
	}
	e.prefs[email] = set
	return nil
}

// Preferences returns a copy of the stored preference set for a roster
// member. Mutating the result never reaches engine state.
func (e *Engine) Preferences(email string) (models.PreferenceSet, error) {
	set, ok := e.prefs[email]
	if !ok {
		return models.PreferenceSet{}, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("person %s not on roster", email))
	}
	out := models.NewPreferenceSet()
	for date := range set.Preferred {
		out.Preferred[date] = true
	}
	for date := range set.NotPreferred {
		out.NotPreferred[date] = true
	}
	return out, nil
}

// Generate runs the full pipeline: slot generation, greedy fill, swap
// optimization, balancing and fairness reporting. The run is one atomic
// computation; on error no partial schedule is returned.
func (e *Engine) Generate() (*models.ScheduleRun, error) {
	demand := e.primary + e.secondary
	if len(e.people) < demand {
		return nil, appErrors.Clone(appErrors.ErrInsufficientStaff,
			fmt.Sprintf("%d daily slots need at least %d people, roster has %d", demand, demand, len(e.people)))
	}
	if e.start.IsZero() || e.end.IsZero() {
		return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "date range not set")
	}

	slots := GenerateSlots(e.start, e.end, e.primary, e.secondary)
	state := newRunState(e.people, e.prefs, slots)
	if err := state.assignAll(); err != nil {
		return nil, err
	}
	passes := state.optimize(e.cfg.MaxSwapPasses)
	moves, warnings := state.balance(e.cfg.MaxBalanceIterations)
	report := state.report(warnings)

	e.logger.Debug("schedule generated",
		zap.Int("slots", len(state.slots)),
		zap.Int("swap_passes", passes),
		zap.Int("balance_moves", moves),
		zap.Int("fairness_score", report.Score),
	)

	return &models.ScheduleRun{
		StartDate:   DayString(e.start),
		EndDate:     DayString(e.end),
		Primary:     e.primary,
		Secondary:   e.secondary,
		Schedule:    state.slots,
		Report:      report,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

func clampShiftCount(n int) int {
	if n < 0 {
		return 0
	}
	if n > maxShiftsPerDay {
		return maxShiftsPerDay
	}
	return n
}
