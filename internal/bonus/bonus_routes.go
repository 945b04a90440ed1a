package bonus

import (
	"go-comp/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client, logger *zap.Logger) {
	group := r.Group("/bonus")

	structures := group.Group("/structures")
	{
		structures.GET("", middleware.RateLimitByActor(5, 20), handler.ListStructures)
		structures.GET("/:id", middleware.RateLimitByActor(5, 20), handler.GetStructure)
		structures.POST("", middleware.RateLimitByActor(1, 5), handler.CreateStructure)
	}

	cycles := group.Group("/cycles")
	{
		cycles.GET("", middleware.RateLimitByActor(5, 20), handler.ListCycles)
		cycles.GET("/:id", middleware.RateLimitByActor(5, 20), handler.GetCycle)
		cycles.POST("", middleware.RateLimitByActor(1, 5), handler.CreateCycle)
		cycles.POST("/:id/activate", middleware.RateLimitByActor(1, 5), handler.ActivateCycle)
		cycles.POST("/:id/archive", middleware.RateLimitByActor(1, 5), handler.ArchiveCycle)

		cycles.GET("/:id/assignments", middleware.RateLimitByActor(5, 20), handler.ListAssignments)
		cycles.POST("/:id/assignments", middleware.RateLimitByActor(1, 5), handler.AssignEmployees)
		cycles.POST("/:id/recalculate", middleware.RateLimitByActor(0.5, 2), handler.Recalculate)

		cycles.GET("/:id/validate", middleware.RateLimitByActor(2, 10), handler.ValidateRelease)
		cycles.POST("/:id/release",
			middleware.RateLimitByActor(0.5, 2),
			middleware.Idempotency(rdb, logger),
			handler.Release,
		)
	}

	assignments := group.Group("/assignments")
	{
		assignments.PATCH("/:id/performance", middleware.RateLimitByActor(2, 10), handler.UpdatePerformance)
		assignments.PUT("/:id/override", middleware.RateLimitByActor(2, 10), handler.SetOverride)
		assignments.PUT("/:id/approval", middleware.RateLimitByActor(2, 10), handler.SetApproval)
	}
}
