// nudges.go derives bounded dimension adjustments from the declared
// profile. Rules are data, not branching code, so the table can grow
// without touching the scaling logic.
package fusion

import (
	"math"
	"strings"

	"github.com/jonesrussell/profiler/internal/domain"
)

// nudgeRule matches declared-profile text and contributes raw dimension
// deltas. Raw deltas are scaled by staticWeight/0.3 and clamped afterwards.
type nudgeRule struct {
	field        nudgeField
	terms        []string
	conviction   int
	intuition    int
	contribution int
}

type nudgeField int

const (
	fieldWorkingStyle nudgeField = iota
	fieldRole
)

var nudgeRules = []nudgeRule{
	// Working style.
	{field: fieldWorkingStyle, terms: []string{"deep-focus", "deep focus"}, conviction: 15},
	{field: fieldWorkingStyle, terms: []string{"explorer", "multitasker"}, conviction: -10, intuition: 10},
	// Role text.
	{field: fieldRole, terms: []string{"research", "scientist", "analyst"}, intuition: 10},
	{field: fieldRole, terms: []string{"community", "business development", "devrel", "growth", "partnerships"}, contribution: 10},
	{field: fieldRole, terms: []string{"founder", "ceo", "cto", "lead", "head of"}, conviction: 10},
}

// Nudges computes the dimension nudges for a declared profile at the given
// static weight. A full-weight profile (0.3) applies its rules at 100%.
// No profile means zero nudges.
func Nudges(declared *domain.DeclaredProfile, staticWeight float64) domain.DimensionNudges {
	if declared == nil || staticWeight <= 0 {
		return domain.DimensionNudges{}
	}

	workingStyle := strings.ToLower(declared.WorkingStyle)
	role := strings.ToLower(declared.Role)

	var raw domain.DimensionNudges
	for _, rule := range nudgeRules {
		text := workingStyle
		if rule.field == fieldRole {
			text = role
		}
		if !matchesAny(text, rule.terms) {
			continue
		}
		raw.Conviction += rule.conviction
		raw.Intuition += rule.intuition
		raw.Contribution += rule.contribution
	}

	scale := staticWeight / staticWeightBase
	return domain.DimensionNudges{
		Conviction:   scaleNudge(raw.Conviction, scale),
		Intuition:    scaleNudge(raw.Intuition, scale),
		Contribution: scaleNudge(raw.Contribution, scale),
	}.Clamp()
}

func matchesAny(text string, terms []string) bool {
	if text == "" {
		return false
	}
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

func scaleNudge(raw int, scale float64) int {
	return int(math.Round(float64(raw) * scale))
}
