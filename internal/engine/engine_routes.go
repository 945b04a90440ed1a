package engine

import (
	"go-comp/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	engine := r.Group("/engine")
	{
		engine.POST("/formula/evaluate", middleware.RateLimitByActor(5, 20), handler.EvaluateFormula)
	}
}
