package fusion

import "sort"

// positionDecay is the per-rank score discount within a single source's
// category list: first entry gets the full source weight, the second 90%,
// and so on. No floor; entries past rank 10 contribute nothing useful.
const positionDecay = 0.1

// introductionThreshold is the minimum feedback multiplier at which a
// category unseen by any other source may enter the scoreboard.
const introductionThreshold = 1.2

// scoreboard accumulates weighted category scores across sources while
// preserving first-seen order for deterministic tie-breaks.
type scoreboard struct {
	scores map[string]float64
	order  map[string]int
	next   int
}

func newScoreboard() *scoreboard {
	return &scoreboard{
		scores: make(map[string]float64),
		order:  make(map[string]int),
	}
}

// addSource assigns each category of one source's ordered list its
// position-decayed score and accumulates it: weight × (1 − index×0.1).
func (b *scoreboard) addSource(categories []string, weight float64) {
	if weight <= 0 {
		return
	}
	for i, name := range categories {
		if name == "" {
			continue
		}
		score := weight * (1.0 - float64(i)*positionDecay)
		if score <= 0 {
			continue
		}
		b.add(name, score)
	}
}

// applyFeedback is the second, separate pass: multipliers scale categories
// already on the board; a multiplier above the introduction threshold may
// bring in a category no other source contributed, with score
// feedbackWeight × (multiplier − 1). Keys are visited in sorted order so
// introduced categories get a stable first-seen rank instead of map order.
func (b *scoreboard) applyFeedback(weights map[string]float64, feedbackWeight float64) {
	names := make([]string, 0, len(weights))
	for name := range weights {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		multiplier := weights[name]
		if name == "" {
			continue
		}
		if _, ok := b.scores[name]; ok {
			b.scores[name] *= multiplier
			continue
		}
		if multiplier > introductionThreshold && feedbackWeight > 0 {
			b.add(name, feedbackWeight*(multiplier-1.0))
		}
	}
}

func (b *scoreboard) add(name string, score float64) {
	if _, ok := b.scores[name]; !ok {
		b.order[name] = b.next
		b.next++
	}
	b.scores[name] += score
}

func (b *scoreboard) empty() bool {
	return len(b.scores) == 0
}

// ranked returns category names by score descending; equal scores keep
// first-seen order so ranking is deterministic across runs.
func (b *scoreboard) ranked() []string {
	names := make([]string, 0, len(b.scores))
	for name := range b.scores {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		si, sj := b.scores[names[i]], b.scores[names[j]]
		if si != sj {
			return si > sj
		}
		return b.order[names[i]] < b.order[names[j]]
	})
	return names
}
