package scheduler

import (
	"fmt"

	"github.com/dutyhq/roster-api/internal/models"
)

// balance forces max-min <= 1 per shift-type category via direct transfers
// or, when every direct transfer would double-book, three-way rotations.
// Categories are processed independently; an iteration that finds no move
// leaves the residual imbalance to the fairness report instead of forcing
// it further. Returns the number of slot moves and any residual warnings.
func (st *runState) balance(maxIterations int) (moves int, warnings []string) {
	for _, cat := range models.AllCategories {
		if st.targets[cat].Total == 0 {
			continue
		}
		for iter := 0; iter < maxIterations; iter++ {
			counts := st.categoryCounts(cat)
			minCount, maxCount := spread(counts)
			if maxCount-minCount <= 1 {
				break
			}

			var donors, recipients []string
			for _, p := range st.people {
				switch counts[p.Email] {
				case maxCount:
					donors = append(donors, p.Email)
				case minCount:
					recipients = append(recipients, p.Email)
				}
			}

			if st.directTransfer(cat, donors, recipients) {
				moves++
				continue
			}
			if st.triangleRotation(cat, counts, minCount, maxCount, donors, recipients) {
				moves += 2
				continue
			}
			warnings = append(warnings,
				fmt.Sprintf("residual imbalance in %s: counts span %d to %d", cat, minCount, maxCount))
			break
		}
	}
	return moves, warnings
}

// directTransfer hands one of a donor's slots to a conflict-free recipient,
// preferring recipients who have not marked the date unavailable.
func (st *runState) directTransfer(cat models.ShiftCategory, donors, recipients []string) bool {
	for _, donor := range donors {
		for i := range st.slots {
			slot := &st.slots[i]
			if slot.Assignee != donor || slot.Category() != cat {
				continue
			}
			chosen := ""
			for _, r := range recipients {
				if st.conflictOn(r, slot.Date) {
					continue
				}
				if !st.notPreferred(r, slot.Date) {
					chosen = r
					break
				}
				if chosen == "" {
					chosen = r
				}
			}
			if chosen != "" {
				st.reassign(slot, chosen)
				return true
			}
		}
	}
	return false
}

// triangleRotation moves donor->intermediary on one date and
// intermediary->recipient on another, for cases where every recipient
// conflicts with every donor slot date.
func (st *runState) triangleRotation(cat models.ShiftCategory, counts map[string]int, minCount, maxCount int, donors, recipients []string) bool {
	for _, donor := range donors {
		for i := range st.slots {
			donorSlot := &st.slots[i]
			if donorSlot.Assignee != donor || donorSlot.Category() != cat {
				continue
			}
			for _, mid := range st.people {
				midCount := counts[mid.Email]
				if midCount <= minCount || midCount >= maxCount {
					continue
				}
				if st.conflictOn(mid.Email, donorSlot.Date) {
					continue
				}
				for j := range st.slots {
					midSlot := &st.slots[j]
					if midSlot.Assignee != mid.Email || midSlot.Category() != cat || midSlot.Date == donorSlot.Date {
						continue
					}
					for _, r := range recipients {
						if st.conflictOn(r, midSlot.Date) {
							continue
						}
						st.reassign(donorSlot, mid.Email)
						st.reassign(midSlot, r)
						return true
					}
				}
			}
		}
	}
	return false
}

func spread(counts map[string]int) (minCount, maxCount int) {
	first := true
	for _, c := range counts {
		if first {
			minCount, maxCount = c, c
			first = false
			continue
		}
		if c < minCount {
			minCount = c
		}
		if c > maxCount {
			maxCount = c
		}
	}
	return minCount, maxCount
}
