package api

import (
	"github.com/jonesrussell/profiler/internal/domain"
)

// CandidateRequest is a catalog item supplied for ranking.
type CandidateRequest struct {
	ID            string   `json:"id"             binding:"required"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Categories    []string `json:"categories"`
	BaseRelevance float64  `json:"base_relevance"`
}

func (r CandidateRequest) toDomain() domain.CandidateItem {
	return domain.CandidateItem{
		ID:            r.ID,
		Name:          r.Name,
		Description:   r.Description,
		Categories:    r.Categories,
		BaseRelevance: r.BaseRelevance,
	}
}

// RankRequest asks for a supplied candidate list to be ranked for a user.
type RankRequest struct {
	UserID     string             `json:"user_id"    binding:"required"`
	Candidates []CandidateRequest `json:"candidates" binding:"required,min=1,max=100"`
}

// FeedbackRequest records one accept/reject/skip interaction.
type FeedbackRequest struct {
	UserID     string   `json:"user_id"  binding:"required"`
	SkillID    string   `json:"skill_id" binding:"required"`
	Action     string   `json:"action"   binding:"required"`
	Categories []string `json:"categories"`
}

// ProfileResponse is the identity profile as served to clients.
type ProfileResponse struct {
	UserID           string                 `json:"user_id"`
	EngineVersion    string                 `json:"engine_version,omitempty"`
	MainCategories   []string               `json:"main_categories"`
	SubCategories    []string               `json:"sub_categories"`
	Dimensions       domain.Dimensions      `json:"dimensions"`
	DimensionNudges  domain.DimensionNudges `json:"dimension_nudges"`
	IdentityType     string                 `json:"identity_type"`
	DataQualityScore int                    `json:"data_quality_score"`
}

func toProfileResponse(p *domain.IdentityProfile) ProfileResponse {
	return ProfileResponse{
		UserID:           p.UserID,
		EngineVersion:    p.EngineVersion,
		MainCategories:   p.MainCategories,
		SubCategories:    p.SubCategories,
		Dimensions:       p.Dimensions,
		DimensionNudges:  p.DimensionNudges,
		IdentityType:     string(p.IdentityType),
		DataQualityScore: p.DataQualityScore,
	}
}

// CategoryResponse is one registry category with its detection keywords.
type CategoryResponse struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// CategoriesResponse is the full category registry plus the fallback
// defaults used when no source contributes anything detectable.
type CategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Defaults   []string           `json:"defaults"`
}

// SkillResponse is a single catalog item as served to clients.
type SkillResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Categories    []string `json:"categories,omitempty"`
	BaseRelevance float64  `json:"base_relevance"`
}

func toSkillResponse(item *domain.CandidateItem) SkillResponse {
	return SkillResponse{
		ID:            item.ID,
		Name:          item.Name,
		Description:   item.Description,
		Categories:    item.Categories,
		BaseRelevance: item.BaseRelevance,
	}
}

// ScoredCandidateResponse is one ranked recommendation.
type ScoredCandidateResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Categories    []string `json:"categories"`
	Score         int      `json:"score"`
	IsRecommended bool     `json:"is_recommended"`
	Reasons       []string `json:"reasons,omitempty"`
}

// RankResponse is the ordered recommendation list for a user.
type RankResponse struct {
	UserID      string                    `json:"user_id"`
	Results     []ScoredCandidateResponse `json:"results"`
	Total       int                       `json:"total"`
	Recommended int                       `json:"recommended"`
}

func toRankResponse(userID string, ranked []domain.ScoredCandidate) RankResponse {
	results := make([]ScoredCandidateResponse, len(ranked))
	recommended := 0
	for i, sc := range ranked {
		results[i] = ScoredCandidateResponse{
			ID:            sc.Candidate.ID,
			Name:          sc.Candidate.Name,
			Categories:    sc.Candidate.Categories,
			Score:         sc.Score,
			IsRecommended: sc.IsRecommended,
			Reasons:       sc.Reasons,
		}
		if sc.IsRecommended {
			recommended++
		}
	}
	return RankResponse{
		UserID:      userID,
		Results:     results,
		Total:       len(results),
		Recommended: recommended,
	}
}
