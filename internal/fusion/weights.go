// Package fusion merges heterogeneous identity signals into a single
// ranked profile. All functions here are pure: no I/O, every input
// combination has a defined output.
package fusion

// Weight schedule constants. Feedback influence grows with observed
// interaction volume but is capped, so a handful of events cannot dominate;
// the declared profile shrinks as feedback grows; conversation absorbs the
// remainder.
const (
	feedbackWeightPerEvent = 0.02
	feedbackWeightCap      = 0.3
	staticWeightBase       = 0.3
	staticWeightFloor      = 0.2
	staticWeightDecay      = 0.33
)

// Weights is the per-source influence split. The three fields always sum
// to 1.0; a missing source carries weight 0.
type Weights struct {
	Conversation float64
	Static       float64
	Feedback     float64
}

// ComputeWeights derives the source weight split from the observed feedback
// event count and whether a declared static profile exists.
//
// feedback = min(0.3, eventCount*0.02): 0 at zero events, capped at 0.3 by
// event 15. static = max(0.2, 0.3 - feedback*0.33) when a profile exists,
// else 0. conversation = 1 - static - feedback.
func ComputeWeights(eventCount int, hasStatic bool) Weights {
	if eventCount < 0 {
		eventCount = 0
	}

	feedback := float64(eventCount) * feedbackWeightPerEvent
	if feedback > feedbackWeightCap {
		feedback = feedbackWeightCap
	}

	var static float64
	if hasStatic {
		static = staticWeightBase - feedback*staticWeightDecay
		if static < staticWeightFloor {
			static = staticWeightFloor
		}
	}

	return Weights{
		Conversation: 1.0 - static - feedback,
		Static:       static,
		Feedback:     feedback,
	}
}
