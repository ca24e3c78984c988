// Package api exposes the profiler over HTTP: profile generation,
// recommendation ranking, and feedback recording.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/profiler/internal/cache"
	"github.com/jonesrussell/profiler/internal/catalog"
	"github.com/jonesrussell/profiler/internal/domain"
	"github.com/jonesrussell/profiler/internal/engine"
	"github.com/jonesrussell/profiler/internal/logging"
	"github.com/jonesrussell/profiler/internal/telemetry"
	"github.com/jonesrussell/profiler/internal/vocabulary"
)

// ProfileService is the engine surface the handlers consume.
type ProfileService interface {
	GenerateProfile(ctx context.Context, userID string) (*domain.IdentityProfile, error)
	RankCandidates(ctx context.Context, candidates []domain.CandidateItem, profile *domain.IdentityProfile) []domain.ScoredCandidate
	Recommend(ctx context.Context, profile *domain.IdentityProfile) []domain.ScoredCandidate
}

// FeedbackRecorder persists accept/reject/skip events.
type FeedbackRecorder interface {
	RecordEvent(ctx context.Context, userID, skillID string, categories []string, action domain.FeedbackAction) error
}

// SkillDetailer looks up a single catalog item by id.
type SkillDetailer interface {
	Detail(ctx context.Context, id string) (*domain.CandidateItem, error)
}

// ProfileCache is the optional cache in front of profile generation.
type ProfileCache interface {
	Get(ctx context.Context, userID string) (*domain.IdentityProfile, error)
	Set(ctx context.Context, profile *domain.IdentityProfile) error
	Invalidate(ctx context.Context, userID string) error
}

// Check is a named readiness probe against a backend dependency.
type Check struct {
	Name  string
	Probe func(ctx context.Context) error
}

// Handler handles HTTP requests for the profiler API.
type Handler struct {
	service   ProfileService
	cache     ProfileCache
	feedback  FeedbackRecorder
	skills    SkillDetailer
	telemetry *telemetry.Provider
	checks    []Check
	logger    logging.Logger
}

// NewHandler creates a new API handler. cache, feedback, skills, telemetry,
// and checks may be nil/empty when the corresponding feature is disabled.
func NewHandler(
	service ProfileService,
	profileCache ProfileCache,
	feedback FeedbackRecorder,
	skills SkillDetailer,
	tp *telemetry.Provider,
	checks []Check,
	logger logging.Logger,
) *Handler {
	return &Handler{
		service:   service,
		cache:     profileCache,
		feedback:  feedback,
		skills:    skills,
		telemetry: tp,
		checks:    checks,
		logger:    logger,
	}
}

// GetProfile handles GET /api/v1/profiles/:user_id
func (h *Handler) GetProfile(c *gin.Context) {
	userID := c.Param("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	profile, err := h.profileFor(c.Request.Context(), userID)
	if err != nil {
		h.respondProfileError(c, userID, err)
		return
	}

	c.JSON(http.StatusOK, toProfileResponse(profile))
}

// RankRecommendations handles POST /api/v1/recommendations
func (h *Handler) RankRecommendations(c *gin.Context) {
	var req RankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid rank request", logging.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profileFor(c.Request.Context(), req.UserID)
	if err != nil {
		h.respondProfileError(c, req.UserID, err)
		return
	}

	candidates := make([]domain.CandidateItem, len(req.Candidates))
	for i, candidate := range req.Candidates {
		candidates[i] = candidate.toDomain()
	}

	ranked := h.service.RankCandidates(c.Request.Context(), candidates, profile)

	h.logger.Info("candidates ranked",
		logging.String("user_id", req.UserID),
		logging.Int("candidates", len(candidates)),
		logging.Int("ranked", len(ranked)))

	c.JSON(http.StatusOK, toRankResponse(req.UserID, ranked))
}

// GetRecommendations handles GET /api/v1/recommendations/:user_id
func (h *Handler) GetRecommendations(c *gin.Context) {
	userID := c.Param("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}

	profile, err := h.profileFor(c.Request.Context(), userID)
	if err != nil {
		h.respondProfileError(c, userID, err)
		return
	}

	ranked := h.service.Recommend(c.Request.Context(), profile)

	h.logger.Info("recommendations generated",
		logging.String("user_id", userID),
		logging.Int("ranked", len(ranked)))

	c.JSON(http.StatusOK, toRankResponse(userID, ranked))
}

// ListCategories handles GET /api/v1/categories
func (h *Handler) ListCategories(c *gin.Context) {
	all := vocabulary.All()
	categories := make([]CategoryResponse, len(all))
	for i, cat := range all {
		categories[i] = CategoryResponse{Name: cat.Name, Keywords: cat.Keywords}
	}
	c.JSON(http.StatusOK, CategoriesResponse{
		Categories: categories,
		Defaults:   vocabulary.Defaults,
	})
}

// GetSkill handles GET /api/v1/skills/:skill_id
func (h *Handler) GetSkill(c *gin.Context) {
	skillID := c.Param("skill_id")
	if skillID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "skill_id is required"})
		return
	}
	if h.skills == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "skill catalog not configured"})
		return
	}

	item, err := h.skills.Detail(c.Request.Context(), skillID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "code": "skill_not_found"})
		case errors.Is(err, catalog.ErrUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "skill catalog unavailable"})
		default:
			h.logger.Error("skill lookup failed",
				logging.String("skill_id", skillID),
				logging.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "skill lookup failed"})
		}
		return
	}

	c.JSON(http.StatusOK, toSkillResponse(item))
}

// PostFeedback handles POST /api/v1/feedback
func (h *Handler) PostFeedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid feedback request", logging.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	action := domain.FeedbackAction(req.Action)
	if !domain.ValidFeedbackAction(action) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "action must be accept, reject, or skip"})
		return
	}
	if h.feedback == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "feedback store not configured"})
		return
	}

	ctx := c.Request.Context()
	if err := h.feedback.RecordEvent(ctx, req.UserID, req.SkillID, req.Categories, action); err != nil {
		h.logger.Error("failed to record feedback",
			logging.String("user_id", req.UserID),
			logging.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record feedback"})
		return
	}

	// The cached profile predates this event, so drop it.
	if h.cache != nil {
		if err := h.cache.Invalidate(ctx, req.UserID); err != nil {
			h.logger.Warn("failed to invalidate cached profile",
				logging.String("user_id", req.UserID),
				logging.Error(err))
		}
	}
	if h.telemetry != nil {
		h.telemetry.RecordFeedbackEvent(string(action))
	}

	h.logger.Info("feedback recorded",
		logging.String("user_id", req.UserID),
		logging.String("skill_id", req.SkillID),
		logging.String("action", string(action)))

	c.JSON(http.StatusAccepted, gin.H{"status": "recorded"})
}

// ReadyCheck handles GET /ready
func (h *Handler) ReadyCheck(c *gin.Context) {
	ctx := c.Request.Context()
	results := gin.H{}
	ready := true
	for _, check := range h.checks {
		if err := check.Probe(ctx); err != nil {
			h.logger.Warn("readiness check failed",
				logging.String("check", check.Name),
				logging.Error(err))
			results[check.Name] = err.Error()
			ready = false
			continue
		}
		results[check.Name] = "ok"
	}

	status := http.StatusOK
	state := "ready"
	if !ready {
		status = http.StatusServiceUnavailable
		state = "degraded"
	}
	c.JSON(status, gin.H{"status": state, "checks": results})
}

// profileFor returns the cached profile when present and fresh, falling
// back to full generation.
func (h *Handler) profileFor(ctx context.Context, userID string) (*domain.IdentityProfile, error) {
	if h.cache != nil {
		cached, err := h.cache.Get(ctx, userID)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			h.logger.Warn("profile cache read failed",
				logging.String("user_id", userID),
				logging.Error(err))
		}
	}

	profile, err := h.service.GenerateProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if h.cache != nil {
		if err := h.cache.Set(ctx, profile); err != nil {
			h.logger.Warn("profile cache write failed",
				logging.String("user_id", userID),
				logging.Error(err))
		}
	}
	return profile, nil
}

func (h *Handler) respondProfileError(c *gin.Context, userID string, err error) {
	if errors.Is(err, engine.ErrConversationUnavailable) {
		h.logger.Error("conversation source unavailable",
			logging.String("user_id", userID),
			logging.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "conversation source unavailable",
			"code":  "conversation_source_unavailable",
		})
		return
	}
	if errors.Is(err, engine.ErrInsufficientConversation) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
			"code":  "insufficient_conversation",
		})
		return
	}
	h.logger.Error("profile generation failed",
		logging.String("user_id", userID),
		logging.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "profile generation failed"})
}
