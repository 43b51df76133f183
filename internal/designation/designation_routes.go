package designation

import (
	"go-staffhub/internal/middleware"
	"go-staffhub/internal/token"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, tokens token.Manager) {
	designations := r.Group("/designations")
	designations.Use(middleware.AuthMiddleware(tokens))
	{
		designations.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RequireRole("ADMIN"),
			handler.Create,
		)
		designations.GET("/options",
			middleware.RateLimitByUser(5, 20),
			handler.GetOptions,
		)
	}
}
