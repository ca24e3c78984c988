package collector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonesrussell/profiler/internal/collector"
	"github.com/jonesrussell/profiler/internal/domain"
)

func TestDataQualityScore(t *testing.T) {
	tests := []struct {
		name     string
		set      *domain.SignalSet
		expected int
	}{
		{
			name:     "nothing available",
			set:      &domain.SignalSet{},
			expected: 0,
		},
		{
			name: "conversation base only",
			set: &domain.SignalSet{
				Conversation:          &domain.ConversationSignal{Topics: []string{"a"}, MessageCount: 3},
				ConversationAvailable: true,
			},
			expected: 70,
		},
		{
			name: "conversation with full richness",
			set: &domain.SignalSet{
				Conversation: &domain.ConversationSignal{
					Topics:       []string{"a", "b", "c"},
					Interests:    []string{"x", "y", "z"},
					History:      []string{"1", "2", "3", "4", "5"},
					MessageCount: 10,
				},
				ConversationAvailable: true,
			},
			expected: 85,
		},
		{
			name: "social base only",
			set: &domain.SignalSet{
				Social:          &domain.SocialSignal{ActivityCount: 1},
				SocialAvailable: true,
			},
			expected: 10,
		},
		{
			name: "social with both bonuses",
			set: &domain.SignalSet{
				Social:          &domain.SocialSignal{ActivityCount: 10, NetworkSize: 20},
				SocialAvailable: true,
			},
			expected: 15,
		},
		{
			name: "everything maximal hits the cap exactly",
			set: &domain.SignalSet{
				Conversation: &domain.ConversationSignal{
					Topics:       []string{"a", "b", "c"},
					Interests:    []string{"x", "y", "z"},
					History:      []string{"1", "2", "3", "4", "5"},
					MessageCount: 10,
				},
				ConversationAvailable: true,
				Social:                &domain.SocialSignal{ActivityCount: 50, NetworkSize: 100},
				SocialAvailable:       true,
			},
			expected: 100,
		},
		{
			name: "unavailable conversation contributes nothing even if present",
			set: &domain.SignalSet{
				Conversation: &domain.ConversationSignal{Topics: []string{"a", "b", "c"}, MessageCount: 1},
			},
			expected: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := collector.DataQualityScore(tc.set)
			assert.Equal(t, tc.expected, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}
