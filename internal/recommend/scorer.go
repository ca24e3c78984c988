// Package recommend scores catalog candidates against a merged identity
// profile using a four-factor additive rubric.
package recommend

import (
	"fmt"
	"sort"

	"github.com/jonesrussell/profiler/internal/domain"
	"github.com/jonesrussell/profiler/internal/logging"
	"github.com/jonesrussell/profiler/internal/vocabulary"
)

// Composite score factors. The four maxima sum to 80; the composite can
// never exceed it, so no artificial cap is needed.
const (
	mainCategoryPoints      = 30
	subCategoryPoints       = 15
	personalityPointsPerHit = 10
	personalityPointsMax    = 20
	alignmentPointsPerHit   = 5
	alignmentPointsMax      = 15
	dimensionBonusPoints    = 5
	dimensionBonusHigh      = 70
	contributionBonusHigh   = 65
)

// Scorer ranks candidates for a profile.
type Scorer struct {
	logger logging.Logger
}

// NewScorer creates a recommendation scorer.
func NewScorer(logger logging.Logger) *Scorer {
	return &Scorer{logger: logger}
}

// Score ranks the candidates against the profile. Excluded skill ids are
// removed before scoring, unconditionally. Candidates below the
// recommendation threshold are retained and flagged, never dropped.
//
// Ties on equal composite score go to the higher catalog relevance; a
// remaining tie preserves the upstream fetch order.
func (s *Scorer) Score(
	candidates []domain.CandidateItem,
	profile *domain.MergedProfile,
	identityType domain.IdentityType,
	dims domain.Dimensions,
	conversationTerms []string,
) []domain.ScoredCandidate {
	excluded := make(map[string]struct{}, len(profile.ExcludedSkillIDs))
	for _, id := range profile.ExcludedSkillIDs {
		excluded[id] = struct{}{}
	}

	scored := make([]domain.ScoredCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		if _, ok := excluded[candidate.ID]; ok {
			s.logger.Debug("candidate excluded by feedback",
				logging.String("skill_id", candidate.ID))
			continue
		}

		score, reasons := s.scoreOne(candidate, profile, identityType, dims, conversationTerms)
		scored = append(scored, domain.ScoredCandidate{
			Candidate:     candidate,
			Score:         score,
			IsRecommended: score >= domain.RecommendThreshold,
			Reasons:       reasons,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Candidate.BaseRelevance > scored[j].Candidate.BaseRelevance
	})

	return scored
}

// scoreOne applies the four-factor rubric to a single candidate.
func (s *Scorer) scoreOne(
	candidate domain.CandidateItem,
	profile *domain.MergedProfile,
	identityType domain.IdentityType,
	dims domain.Dimensions,
	conversationTerms []string,
) (int, []string) {
	var score int
	var reasons []string
	text := candidate.Name + " " + candidate.Description

	// 1. Category match (0-30). Primary-interest alignment dominates:
	// main-category intersection earns full points, sub-only earns half.
	switch {
	case intersects(candidate.Categories, profile.MainCategories):
		score += mainCategoryPoints
		reasons = append(reasons, "matches a main interest category")
	case intersects(candidate.Categories, profile.SubCategories):
		score += subCategoryPoints
		reasons = append(reasons, "matches a secondary interest category")
	}

	// 2. Personality match (0-20).
	hits := vocabulary.MatchCount(text, PersonalityKeywords(identityType))
	if hits > 0 {
		points := hits * personalityPointsPerHit
		if points > personalityPointsMax {
			points = personalityPointsMax
		}
		score += points
		reasons = append(reasons, fmt.Sprintf("fits the %s identity", identityType))
	}

	// 3. Conversation alignment (0-15).
	overlap := vocabulary.MatchCount(text, conversationTerms)
	if overlap > 0 {
		points := overlap * alignmentPointsPerHit
		if points > alignmentPointsMax {
			points = alignmentPointsMax
		}
		score += points
		reasons = append(reasons, "aligns with recent conversation topics")
	}

	// 4. Dimension bonus (0-15), all three may fire independently.
	if dims.Conviction >= dimensionBonusHigh {
		score += dimensionBonusPoints
		reasons = append(reasons, "suits high conviction")
	}
	if dims.Intuition >= dimensionBonusHigh {
		score += dimensionBonusPoints
		reasons = append(reasons, "suits high intuition")
	}
	if dims.Contribution >= contributionBonusHigh {
		score += dimensionBonusPoints
		reasons = append(reasons, "suits high contribution")
	}

	return score, reasons
}

// intersects reports whether any candidate category matches any profile
// category, tolerant of case and accents.
func intersects(candidateCategories, profileCategories []string) bool {
	if len(candidateCategories) == 0 || len(profileCategories) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(profileCategories))
	for _, name := range profileCategories {
		set[vocabulary.NormalizeName(name)] = struct{}{}
	}
	for _, name := range candidateCategories {
		if _, ok := set[vocabulary.NormalizeName(name)]; ok {
			return true
		}
	}
	return false
}
