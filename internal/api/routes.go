package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/profiler/internal/httpserver"
)

// SetupServiceRoutes configures service-specific API routes. The health
// route is installed by the server builder; readiness and metrics stay
// public, everything under /api/v1 requires a JWT when a secret is set.
func SetupServiceRoutes(router *gin.Engine, handler *Handler, jwtSecret string, metrics http.Handler) {
	router.GET("/ready", handler.ReadyCheck)
	if metrics != nil {
		router.GET("/metrics", gin.WrapH(metrics))
	}

	v1 := httpserver.ProtectedGroup(router, "/api/v1", jwtSecret)

	v1.GET("/categories", handler.ListCategories) // GET /api/v1/categories

	profiles := v1.Group("/profiles")
	profiles.GET("/:user_id", handler.GetProfile) // GET /api/v1/profiles/:user_id

	skills := v1.Group("/skills")
	skills.GET("/:skill_id", handler.GetSkill) // GET /api/v1/skills/:skill_id

	recommendations := v1.Group("/recommendations")
	recommendations.POST("", handler.RankRecommendations)        // POST /api/v1/recommendations
	recommendations.GET("/:user_id", handler.GetRecommendations) // GET /api/v1/recommendations/:user_id

	feedback := v1.Group("/feedback")
	feedback.POST("", handler.PostFeedback) // POST /api/v1/feedback
}
