package fusion

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonesrussell/profiler/internal/domain"
)

func TestNudges_RuleTable(t *testing.T) {
	tests := []struct {
		name     string
		declared *domain.DeclaredProfile
		expected domain.DimensionNudges
	}{
		{
			name:     "deep focus working style",
			declared: &domain.DeclaredProfile{WorkingStyle: "deep-focus"},
			expected: domain.DimensionNudges{Conviction: 15},
		},
		{
			name:     "explorer working style",
			declared: &domain.DeclaredProfile{WorkingStyle: "explorer"},
			expected: domain.DimensionNudges{Conviction: -10, Intuition: 10},
		},
		{
			name:     "multitasker working style",
			declared: &domain.DeclaredProfile{WorkingStyle: "multitasker"},
			expected: domain.DimensionNudges{Conviction: -10, Intuition: 10},
		},
		{
			name:     "research role",
			declared: &domain.DeclaredProfile{Role: "Research Scientist"},
			expected: domain.DimensionNudges{Intuition: 10},
		},
		{
			name:     "community role",
			declared: &domain.DeclaredProfile{Role: "Community Manager"},
			expected: domain.DimensionNudges{Contribution: 10},
		},
		{
			name:     "founder role",
			declared: &domain.DeclaredProfile{Role: "Founder"},
			expected: domain.DimensionNudges{Conviction: 10},
		},
		{
			name: "rules stack across fields",
			declared: &domain.DeclaredProfile{
				Role:         "Founder and Head of Research",
				WorkingStyle: "deep focus",
			},
			// 15 (deep focus) + 10 (founder/lead) conviction, 10 intuition,
			// conviction clamped to the +/-15 bound.
			expected: domain.DimensionNudges{Conviction: 15, Intuition: 10},
		},
		{
			name:     "no matching terms",
			declared: &domain.DeclaredProfile{Role: "Accountant", WorkingStyle: "steady"},
			expected: domain.DimensionNudges{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Nudges(tc.declared, staticWeightBase)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestNudges_NilProfileIsZero(t *testing.T) {
	assert.Equal(t, domain.DimensionNudges{}, Nudges(nil, staticWeightBase))
}

func TestNudges_ScaledByStaticWeight(t *testing.T) {
	declared := &domain.DeclaredProfile{WorkingStyle: "deep-focus"}

	// Floor weight 0.2 applies rules at two thirds strength: 15 -> 10.
	got := Nudges(declared, 0.2)
	assert.Equal(t, domain.DimensionNudges{Conviction: 10}, got)

	// Half weight applies at 50%.
	got = Nudges(declared, 0.15)
	assert.Equal(t, domain.DimensionNudges{Conviction: 8}, got)
}

func TestNudges_AlwaysWithinBounds(t *testing.T) {
	profiles := []*domain.DeclaredProfile{
		{Role: "Founder, CEO and Head of Research", WorkingStyle: "deep-focus"},
		{Role: "Community Growth Partnerships", WorkingStyle: "explorer multitasker"},
		{},
		nil,
	}
	for _, p := range profiles {
		for _, weight := range []float64{0, 0.1, 0.2, 0.3, 1.0} {
			n := Nudges(p, weight)
			assert.GreaterOrEqual(t, n.Conviction, -domain.NudgeLimit)
			assert.LessOrEqual(t, n.Conviction, domain.NudgeLimit)
			assert.GreaterOrEqual(t, n.Intuition, -domain.NudgeLimit)
			assert.LessOrEqual(t, n.Intuition, domain.NudgeLimit)
			assert.GreaterOrEqual(t, n.Contribution, -domain.NudgeLimit)
			assert.LessOrEqual(t, n.Contribution, domain.NudgeLimit)
		}
	}
}
