package scheduler

import (
	"math"

	"github.com/dutyhq/roster-api/internal/models"
)

// report aggregates final loads and preference hits into the per-person
// fairness report and the scalar fairness score.
func (st *runState) report(warnings []string) models.FairnessReport {
	headcount := len(st.people)

	averages := make(map[models.ShiftCategory]float64, len(models.AllCategories))
	for _, cat := range models.AllCategories {
		if headcount > 0 {
			averages[cat] = float64(st.targets[cat].Total) / float64(headcount)
		}
	}

	people := make([]models.PersonReport, 0, headcount)
	hits := make(map[string]*models.PersonReport, headcount)
	for _, p := range st.people {
		rec := st.loads.record(p.Email)
		counts := make(map[models.ShiftCategory]int, len(models.AllCategories))
		for _, cat := range models.AllCategories {
			counts[cat] = rec.Counts[cat]
		}
		people = append(people, models.PersonReport{
			Name:        p.Name,
			Email:       p.Email,
			Counts:      counts,
			TotalShifts: rec.TotalShifts(),
			TotalHours:  rec.TotalHours,
		})
		hits[p.Email] = &people[len(people)-1]
	}

	for i := range st.slots {
		slot := &st.slots[i]
		pr, ok := hits[slot.Assignee]
		if !ok {
			continue
		}
		switch {
		case st.notPreferred(slot.Assignee, slot.Date):
			pr.NotPreferredHits++
		case st.preferred(slot.Assignee, slot.Date):
			pr.PreferredHits++
		default:
			pr.NeutralHits++
		}
		if slot.CoverageOverride {
			pr.CoverageOverrides++
		}
	}

	return models.FairnessReport{
		People:   people,
		Averages: averages,
		Targets:  st.targets,
		Score:    fairnessScore(people, averages, headcount),
		Warnings: warnings,
	}
}

// fairnessScore maps the spread of category loads onto 0-100. The variance
// is the mean squared deviation from each category's average, taken over
// headcount x 4 terms; 100 requires perfect uniformity in every category.
func fairnessScore(people []models.PersonReport, averages map[models.ShiftCategory]float64, headcount int) int {
	if headcount == 0 {
		return 100
	}
	var sum float64
	for _, pr := range people {
		for _, cat := range models.AllCategories {
			diff := float64(pr.Counts[cat]) - averages[cat]
			sum += diff * diff
		}
	}
	variance := sum / float64(headcount*len(models.AllCategories))
	score := math.Round(100 - variance*10)
	if score < 0 {
		return 0
	}
	return int(score)
}
