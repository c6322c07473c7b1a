package genetic

import (
	"sort"
)

// HallOfFame is a bounded elitist archive of the best distinct individuals seen so far
// Entries are snapshots sorted by descending fitness and survive generational replacement
type HallOfFame struct {
	maxSize int
	items   []*Individual
}

// NewHallOfFame creates an archive holding at most maxSize individuals
func NewHallOfFame(maxSize int) *HallOfFame {
	if maxSize < 0 {
		maxSize = 0
	}
	return &HallOfFame{
		maxSize: maxSize,
		items:   make([]*Individual, 0, maxSize),
	}
}

// Update offers every member of pop to the archive in population order.
// A member enters when the archive has room or it beats the current worst entry,
// unless a bit-identical genome is already archived. All fitness values must be valid.
func (h *HallOfFame) Update(pop *Population) error {
	if err := requireValid("halloffame", pop); err != nil {
		return err
	}
	if h.maxSize == 0 {
		return nil
	}

	for _, ind := range pop.Members {
		score := ind.Fitness.value
		if len(h.items) >= h.maxSize && score <= h.items[len(h.items)-1].Fitness.value {
			continue
		}
		if h.contains(ind) {
			continue
		}
		if len(h.items) >= h.maxSize {
			h.items = h.items[:len(h.items)-1]
		}
		h.insert(ind.Clone())
	}
	return nil
}

// insert places snapshot ahead of existing entries with equal fitness
func (h *HallOfFame) insert(snapshot *Individual) {
	score := snapshot.Fitness.value
	pos := sort.Search(len(h.items), func(i int) bool {
		return h.items[i].Fitness.value <= score
	})
	h.items = append(h.items, nil)
	copy(h.items[pos+1:], h.items[pos:])
	h.items[pos] = snapshot
}

func (h *HallOfFame) contains(ind *Individual) bool {
	for _, archived := range h.items {
		if archived.Genome.Equal(ind.Genome) {
			return true
		}
	}
	return false
}

// Items returns copies of the archived individuals, best first
func (h *HallOfFame) Items() []*Individual {
	out := make([]*Individual, len(h.items))
	for i, ind := range h.items {
		out[i] = ind.Clone()
	}
	return out
}

// Best returns a copy of the top entry
func (h *HallOfFame) Best() (*Individual, bool) {
	if len(h.items) == 0 {
		return nil, false
	}
	return h.items[0].Clone(), true
}

// Len returns the number of archived individuals
func (h *HallOfFame) Len() int {
	return len(h.items)
}

// MaxSize returns the archive bound
func (h *HallOfFame) MaxSize() int {
	return h.maxSize
}

// Clear empties the archive
func (h *HallOfFame) Clear() {
	h.items = h.items[:0]
}
