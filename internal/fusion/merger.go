package fusion

import (
	"github.com/jonesrussell/profiler/internal/domain"
	"github.com/jonesrussell/profiler/internal/vocabulary"
)

// Merge fuses the conversation categories, an optional declared profile,
// and optional feedback into a single merged profile.
//
// Absent sources are valid inputs, not errors: with everything missing the
// result degrades to the raw conversation list and zero nudges.
func Merge(
	conversationCategories []string,
	declared *domain.DeclaredProfile,
	feedback *domain.FeedbackSignal,
) *domain.MergedProfile {
	eventCount := 0
	if feedback != nil {
		eventCount = feedback.EventCount
	}
	weights := ComputeWeights(eventCount, declared != nil)

	// Category names arrive from ES documents and user-edited YAML, so
	// fold spelling variants onto the registry before scoring. Names
	// outside the registry pass through untouched.
	conversationCategories = canonicalize(conversationCategories)

	// Stage 1: position-decayed base scoreboard.
	board := newScoreboard()
	board.addSource(conversationCategories, weights.Conversation)
	if declared != nil {
		board.addSource(canonicalize(declared.Categories()), weights.Static)
	}

	// Stage 2: multiplicative feedback adjustment, kept separate so the
	// two passes stay independently testable.
	if feedback != nil {
		board.applyFeedback(feedback.CategoryWeights, weights.Feedback)
	}

	var main, sub []string
	if board.empty() {
		// No source contributed anything scorable. Fall back to the raw
		// conversation list, or to the registry defaults when even that
		// is empty.
		main = capUnique(conversationCategories, domain.MaxMainCategories)
		if len(main) == 0 {
			main = append([]string(nil), vocabulary.Defaults...)
		}
	} else {
		ranked := board.ranked()
		main = capUnique(ranked, domain.MaxMainCategories)

		// Sub-categories: ranks 4+ first, then declared interests,
		// deduplicated, disjoint from main, capped.
		var pool []string
		if len(ranked) > domain.MaxMainCategories {
			pool = append(pool, ranked[domain.MaxMainCategories:]...)
		}
		if declared != nil {
			pool = append(pool, canonicalize(declared.Interests)...)
		}
		sub = subtractUnique(pool, main, domain.MaxSubCategories)
	}

	profile := &domain.MergedProfile{
		MainCategories:  main,
		SubCategories:   sub,
		DimensionNudges: Nudges(declared, weights.Static),
	}
	if feedback != nil {
		profile.ExcludedSkillIDs = feedback.ExcludeSkillIDs
		profile.CategoryWeights = feedback.CategoryWeights
	}
	return profile
}

// canonicalize maps each name onto its registry spelling where one exists,
// leaving unregistered names as-is.
func canonicalize(names []string) []string {
	if len(names) == 0 {
		return names
	}
	out := make([]string, len(names))
	for i, name := range names {
		if canon, ok := vocabulary.Canonical(name); ok {
			out[i] = canon
			continue
		}
		out[i] = name
	}
	return out
}

// capUnique returns the first max unique non-empty entries, order preserved.
func capUnique(names []string, max int) []string {
	out := make([]string, 0, max)
	seen := make(map[string]struct{}, max)
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
		if len(out) == max {
			break
		}
	}
	return out
}

// subtractUnique returns up to max unique entries of pool that do not
// appear in taken, order preserved.
func subtractUnique(pool, taken []string, max int) []string {
	seen := make(map[string]struct{}, len(taken))
	for _, name := range taken {
		seen[name] = struct{}{}
	}
	out := make([]string, 0, max)
	for _, name := range pool {
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
		if len(out) == max {
			break
		}
	}
	return out
}
