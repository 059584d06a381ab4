package scheduler

import (
	"fmt"

	"github.com/dutyhq/roster-api/internal/models"
	appErrors "github.com/dutyhq/roster-api/pkg/errors"
)

// Cost weights. Category count dominates everything; the same-day term is
// large enough to forbid double-booking through cost alone.
const (
	costPerCategoryShift = 1000
	costAtOrAboveMin     = 500
	costAtOrAboveMax     = 100000
	costSameDayConflict  = 1000000
	costPreferred        = -5
	costNotPreferred     = 10
	costWeekendTiebreak  = 2

	roleOffsetSecondary = 100
)

// runState is the mutable working set of one scheduling run: the slot list,
// the load book, the per-category targets and the per-day assignee index.
// The assignment pass, the swap optimizer and the balancer all mutate it;
// nothing outside a run ever sees it.
type runState struct {
	people  []models.Person
	prefs   map[string]models.PreferenceSet
	slots   []models.DutySlot
	loads   *loadBook
	targets map[models.ShiftCategory]models.CategoryTarget
	byDay   map[string]map[string]bool
}

func newRunState(people []models.Person, prefs map[string]models.PreferenceSet, slots []models.DutySlot) *runState {
	return &runState{
		people:  people,
		prefs:   prefs,
		slots:   slots,
		loads:   newLoadBook(people),
		targets: computeTargets(slots, len(people)),
		byDay:   make(map[string]map[string]bool),
	}
}

func (st *runState) conflictOn(email, date string) bool {
	return st.byDay[date][email]
}

// place records an assignment. The coverage-override flag always tracks the
// current assignee: it is set exactly when the person holding the slot has
// marked its date unavailable, no matter which pass put them there.
func (st *runState) place(slot *models.DutySlot, email string) {
	slot.Assignee = email
	slot.CoverageOverride = st.notPreferred(email, slot.Date)
	st.loads.assign(email, slot)
	if st.byDay[slot.Date] == nil {
		st.byDay[slot.Date] = make(map[string]bool)
	}
	st.byDay[slot.Date][email] = true
}

func (st *runState) reassign(slot *models.DutySlot, email string) {
	prev := slot.Assignee
	if prev != "" {
		st.loads.unassign(prev, slot)
		delete(st.byDay[slot.Date], prev)
	}
	st.place(slot, email)
}

func (st *runState) preferred(email, date string) bool {
	return st.prefs[email].Preferred[date]
}

func (st *runState) notPreferred(email, date string) bool {
	return st.prefs[email].NotPreferred[date]
}

// cost scores a person against a slot. notPreferred takes priority over
// preferred should a caller ever feed overlapping sets. skipConflict is set
// when scoring the slot's current holder, whose only same-day assignment is
// the slot itself.
func (st *runState) cost(email string, slot *models.DutySlot, skipConflict bool) int {
	cat := slot.Category()
	count := st.loads.count(email, cat)
	target := st.targets[cat]

	c := count * costPerCategoryShift
	if count >= target.Min {
		c += costAtOrAboveMin
	}
	if count >= target.Max {
		c += costAtOrAboveMax
	}
	if st.notPreferred(email, slot.Date) {
		c += costNotPreferred
	} else if st.preferred(email, slot.Date) {
		c += costPreferred
	}
	if slot.Weekend {
		c += costWeekendTiebreak
	}
	if !skipConflict && st.conflictOn(email, slot.Date) {
		c += costSameDayConflict
	}
	return c
}

// candidates builds the eligible pool for a slot. People below the category
// min are included even against a stated notPreferred date (fairness
// overrides unavailability); same-day conflicts are never admitted. When
// the strict pool is empty the preference screen and max gate are relaxed.
func (st *runState) candidates(slot *models.DutySlot) (pool []models.Person, relaxed bool) {
	cat := slot.Category()
	target := st.targets[cat]
	for _, p := range st.people {
		if st.conflictOn(p.Email, slot.Date) {
			continue
		}
		count := st.loads.count(p.Email, cat)
		if count >= target.Max {
			continue
		}
		if count < target.Min || !st.notPreferred(p.Email, slot.Date) {
			pool = append(pool, p)
		}
	}
	if len(pool) > 0 {
		return pool, false
	}
	for _, p := range st.people {
		if !st.conflictOn(p.Email, slot.Date) {
			pool = append(pool, p)
		}
	}
	return pool, true
}

// assignAll runs the greedy initial fill: hardest slots first per date,
// strict fairness floor, then preference cost and a rotation index to break
// remaining ties deterministically without favouring roster order.
func (st *runState) assignAll() error {
	for _, idx := range sortForAssignment(st.slots) {
		slot := &st.slots[idx]
		pool, _ := st.candidates(slot)
		if len(pool) == 0 {
			return appErrors.Clone(appErrors.ErrUnfillableSlot,
				fmt.Sprintf("no eligible candidate for %s %s slot %s on %s", slot.Role, slot.Label, slot.ID, slot.Date))
		}

		winner := st.pickCandidate(slot, pool)
		st.place(slot, winner.Email)
	}
	return nil
}

// pickCandidate narrows the pool to the minimum in-category count, then the
// minimum preference cost, then rotates the final tie by date and slot.
func (st *runState) pickCandidate(slot *models.DutySlot, pool []models.Person) models.Person {
	cat := slot.Category()

	minCount := st.loads.count(pool[0].Email, cat)
	for _, p := range pool[1:] {
		if c := st.loads.count(p.Email, cat); c < minCount {
			minCount = c
		}
	}
	tied := pool[:0:0]
	for _, p := range pool {
		if st.loads.count(p.Email, cat) == minCount {
			tied = append(tied, p)
		}
	}

	minPref := preferenceCost(st.prefs[tied[0].Email], slot.Date)
	for _, p := range tied[1:] {
		if c := preferenceCost(st.prefs[p.Email], slot.Date); c < minPref {
			minPref = c
		}
	}
	final := tied[:0:0]
	for _, p := range tied {
		if preferenceCost(st.prefs[p.Email], slot.Date) == minPref {
			final = append(final, p)
		}
	}
	if len(final) == 1 {
		return final[0]
	}

	roleOffset := 0
	if slot.Role == models.RoleSecondary {
		roleOffset = roleOffsetSecondary
	}
	day, _ := ParseDay(slot.Date)
	poolSize := len(final)
	seed := (dayNumber(day) + slot.SlotIndex + roleOffset) % poolSize

	best := 0
	bestRotation := poolSize
	for ordinal := range final {
		rotation := (ordinal + seed) % poolSize
		if rotation < bestRotation {
			bestRotation = rotation
			best = ordinal
		}
	}
	return final[best]
}

// preferenceCost is the tie-break adjustment: preferred -5, neutral 0,
// notPreferred +10. notPreferred wins when both are set.
func preferenceCost(prefs models.PreferenceSet, date string) int {
	if prefs.NotPreferred[date] {
		return costNotPreferred
	}
	if prefs.Preferred[date] {
		return costPreferred
	}
	return 0
}
