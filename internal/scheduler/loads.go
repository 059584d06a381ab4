package scheduler

import (
	"github.com/dutyhq/roster-api/internal/models"
)

// loadBook owns the per-person load records for one scheduling run. Every
// slot move goes through assign/unassign so counters and duty hours stay in
// step with the schedule.
type loadBook struct {
	records map[string]*models.LoadRecord
}

func newLoadBook(people []models.Person) *loadBook {
	records := make(map[string]*models.LoadRecord, len(people))
	for _, p := range people {
		records[p.Email] = models.NewLoadRecord()
	}
	return &loadBook{records: records}
}

func (b *loadBook) count(email string, cat models.ShiftCategory) int {
	rec, ok := b.records[email]
	if !ok {
		return 0
	}
	return rec.Counts[cat]
}

func (b *loadBook) assign(email string, slot *models.DutySlot) {
	rec, ok := b.records[email]
	if !ok {
		return
	}
	rec.Counts[slot.Category()]++
	rec.TotalHours += slot.DurationHours
}

func (b *loadBook) unassign(email string, slot *models.DutySlot) {
	rec, ok := b.records[email]
	if !ok {
		return
	}
	rec.Counts[slot.Category()]--
	rec.TotalHours -= slot.DurationHours
}

func (b *loadBook) record(email string) *models.LoadRecord {
	return b.records[email]
}

// computeTargets derives the fair min/max shift count per category from the
// slot totals and headcount: min = floor(total/headcount), max = ceil.
func computeTargets(slots []models.DutySlot, headcount int) map[models.ShiftCategory]models.CategoryTarget {
	totals := make(map[models.ShiftCategory]int, len(models.AllCategories))
	for i := range slots {
		totals[slots[i].Category()]++
	}
	targets := make(map[models.ShiftCategory]models.CategoryTarget, len(models.AllCategories))
	for _, cat := range models.AllCategories {
		total := totals[cat]
		target := models.CategoryTarget{Total: total}
		if headcount > 0 {
			target.Min = total / headcount
			target.Max = (total + headcount - 1) / headcount
		}
		targets[cat] = target
	}
	return targets
}
