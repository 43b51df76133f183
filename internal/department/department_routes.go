package department

import (
	"go-staffhub/internal/middleware"
	"go-staffhub/internal/token"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, tokens token.Manager) {
	departments := r.Group("/departments")
	departments.Use(middleware.AuthMiddleware(tokens))
	{
		departments.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RequireRole("ADMIN"),
			handler.Create,
		)
		departments.GET("/options",
			middleware.RateLimitByUser(5, 20),
			handler.GetOptions,
		)
	}
}
