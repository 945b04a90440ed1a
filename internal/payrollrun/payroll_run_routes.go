package payrollrun

import (
	"go-comp/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client, logger *zap.Logger) {
	runs := r.Group("/payroll-runs")
	{
		runs.GET("", middleware.RateLimitByActor(5, 20), handler.GetAll)
		runs.GET("/:id", middleware.RateLimitByActor(5, 20), handler.GetByID)
		runs.POST("", middleware.RateLimitByActor(1, 5), handler.Create)
		runs.GET("/:id/validate", middleware.RateLimitByActor(2, 10), handler.Validate)
		runs.POST("/:id/finalize",
			middleware.RateLimitByActor(0.5, 2),
			middleware.Idempotency(rdb, logger),
			handler.Finalize,
		)
		runs.GET("/:id/export", middleware.RateLimitByActor(1, 5), handler.Export)
	}
}
