package collector

import "github.com/jonesrussell/profiler/internal/domain"

// Data quality scoring constants. The conversation source is privileged
// (authentic, always requested); a public social source is supplemental
// and may be withheld entirely.
const (
	conversationBasePoints = 70
	richnessBonusPoints    = 5
	richTopicCount         = 3
	richInterestCount      = 3
	richHistoryCount       = 5

	socialBasePoints    = 10
	socialActivityBonus = 3
	socialActivityMin   = 10
	socialNetworkBonus  = 2
	socialNetworkMin    = 20

	qualityScoreMax = 100
)

// DataQualityScore rates how much signal the collected set carries, in
// [0,100]. It is a pure function of source availability and richness,
// recomputed per request and never persisted.
func DataQualityScore(set *domain.SignalSet) int {
	score := 0

	if set.ConversationAvailable && set.Conversation != nil {
		score += conversationBasePoints
		if len(set.Conversation.Topics) >= richTopicCount {
			score += richnessBonusPoints
		}
		if len(set.Conversation.Interests) >= richInterestCount {
			score += richnessBonusPoints
		}
		if len(set.Conversation.History) >= richHistoryCount {
			score += richnessBonusPoints
		}
	}

	if set.SocialAvailable && !set.Social.Empty() {
		score += socialBasePoints
		if set.Social.ActivityCount >= socialActivityMin {
			score += socialActivityBonus
		}
		if set.Social.NetworkSize >= socialNetworkMin {
			score += socialNetworkBonus
		}
	}

	if score > qualityScoreMax {
		score = qualityScoreMax
	}
	return score
}
