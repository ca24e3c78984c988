package domain

// CandidateItem is a catalog item under consideration for recommendation.
type CandidateItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
	// BaseRelevance is the catalog's own similarity score for the search
	// that produced this candidate. It is the tie-breaker on equal
	// composite scores.
	BaseRelevance float64 `json:"base_relevance"`
}

// RecommendThreshold is the composite score at or above which a candidate
// qualifies as recommendable.
const RecommendThreshold = 60

// ScoredCandidate is one entry of the ranked recommendation output.
// Candidates below the threshold are retained and flagged, never dropped.
type ScoredCandidate struct {
	Candidate     CandidateItem `json:"candidate"`
	Score         int           `json:"score"`
	IsRecommended bool          `json:"is_recommended"`
	Reasons       []string      `json:"reasons"`
}
