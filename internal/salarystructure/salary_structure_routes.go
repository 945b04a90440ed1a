package salarystructure

import (
	"go-comp/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	structures := r.Group("/salary-structures")
	{
		structures.GET("", middleware.RateLimitByActor(2, 10), handler.GetAll)
		structures.GET("/:id", middleware.RateLimitByActor(2, 10), handler.GetByID)
		structures.POST("", middleware.RateLimitByActor(0.5, 2), handler.Create)
		structures.POST("/:id/versions", middleware.RateLimitByActor(0.5, 2), handler.AddVersion)
	}

	employees := r.Group("/employees/:id")
	{
		employees.GET("/salary-assignment", middleware.RateLimitByActor(2, 10), handler.GetAssignment)
		employees.PUT("/salary-assignment", middleware.RateLimitByActor(0.5, 2), handler.AssignEmployee)
		employees.GET("/salary-breakdown", middleware.RateLimitByActor(2, 10), handler.GetBreakdown)
	}
}
