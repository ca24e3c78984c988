package fusion

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeWeights_FeedbackSchedule(t *testing.T) {
	tests := []struct {
		name       string
		eventCount int
		expected   float64
	}{
		{name: "zero events", eventCount: 0, expected: 0.0},
		{name: "one event", eventCount: 1, expected: 0.02},
		{name: "five events", eventCount: 5, expected: 0.10},
		{name: "fourteen events", eventCount: 14, expected: 0.28},
		{name: "cap reached at fifteen", eventCount: 15, expected: 0.30},
		{name: "cap holds past fifteen", eventCount: 100, expected: 0.30},
		{name: "negative treated as zero", eventCount: -3, expected: 0.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ComputeWeights(tc.eventCount, true)
			assert.InDelta(t, tc.expected, w.Feedback, 1e-9)
		})
	}
}

func TestComputeWeights_FeedbackNonDecreasing(t *testing.T) {
	prev := 0.0
	for events := 0; events <= 30; events++ {
		w := ComputeWeights(events, true)
		if w.Feedback < prev {
			t.Fatalf("feedback weight decreased at eventCount=%d: %f < %f", events, w.Feedback, prev)
		}
		prev = w.Feedback
	}
}

func TestComputeWeights_StaticShrinksWithFeedback(t *testing.T) {
	// The formula is authoritative: at zero events with a declared profile
	// the split is 0.7/0.3/0.0, not the illustrative 0.6/0.3/0.1.
	w := ComputeWeights(0, true)
	assert.InDelta(t, 0.3, w.Static, 1e-9)
	assert.InDelta(t, 0.7, w.Conversation, 1e-9)

	// At >=15 events static floors at 0.2 and feedback caps at 0.3.
	w = ComputeWeights(20, true)
	assert.InDelta(t, 0.3, w.Feedback, 1e-9)
	assert.InDelta(t, 0.2, w.Static, 1e-9)
	assert.InDelta(t, 0.5, w.Conversation, 1e-9)
}

func TestComputeWeights_NoStaticProfile(t *testing.T) {
	w := ComputeWeights(10, false)
	assert.Zero(t, w.Static)
	assert.InDelta(t, 0.2, w.Feedback, 1e-9)
	assert.InDelta(t, 0.8, w.Conversation, 1e-9)
}

func TestComputeWeights_SumsToOne(t *testing.T) {
	for events := 0; events <= 40; events += 4 {
		for _, hasStatic := range []bool{true, false} {
			w := ComputeWeights(events, hasStatic)
			sum := w.Conversation + w.Static + w.Feedback
			if math.Abs(sum-1.0) > 1e-9 {
				t.Errorf("weights do not sum to 1 at eventCount=%d hasStatic=%v: %f", events, hasStatic, sum)
			}
		}
	}
}
