package scheduler

import "github.com/dutyhq/roster-api/internal/models"

// swapThreshold is the minimum cost improvement a reassignment must clear.
// Marginal swaps below it would oscillate between passes.
const swapThreshold = 20

// optimize runs the local-search pass: for every slot, look for a person
// whose cost beats the current holder's by more than the threshold, without
// pulling anyone below the category min or pushing anyone to the max.
// Returns the number of completed passes.
func (st *runState) optimize(maxPasses int) int {
	passes := 0
	for passes < maxPasses {
		passes++
		changed := false
		for i := range st.slots {
			slot := &st.slots[i]
			holder := slot.Assignee
			if holder == "" {
				continue
			}
			cat := slot.Category()
			target := st.targets[cat]
			// Taking the shift away would push the holder under their floor.
			if st.loads.count(holder, cat) <= target.Min {
				continue
			}
			holderCost := st.cost(holder, slot, true)

			for _, q := range st.people {
				if q.Email == holder {
					continue
				}
				if st.conflictOn(q.Email, slot.Date) {
					continue
				}
				count := st.loads.count(q.Email, cat)
				if count >= target.Max {
					continue
				}
				if st.notPreferred(q.Email, slot.Date) && count >= target.Min {
					continue
				}
				if st.cost(q.Email, slot, false) < holderCost-swapThreshold {
					st.reassign(slot, q.Email)
					changed = true
					break
				}
			}
		}
		if !changed {
			break
		}
	}
	return passes
}

// categoryCounts snapshots the current per-person counts for one category.
func (st *runState) categoryCounts(cat models.ShiftCategory) map[string]int {
	counts := make(map[string]int, len(st.people))
	for _, p := range st.people {
		counts[p.Email] = st.loads.count(p.Email, cat)
	}
	return counts
}
