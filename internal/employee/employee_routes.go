package employee

import (
	"go-comp/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	{
		employees.GET("", middleware.RateLimitByActor(5, 20), handler.GetAll)
		employees.GET("/:id", middleware.RateLimitByActor(5, 20), handler.GetByID)
		employees.POST("", middleware.RateLimitByActor(1, 5), handler.Create)
		employees.PUT("/:id", middleware.RateLimitByActor(1, 5), handler.Update)
		employees.POST("/:id/deactivate", middleware.RateLimitByActor(0.5, 2), handler.Deactivate)
	}
}
