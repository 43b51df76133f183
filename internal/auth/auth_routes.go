package auth

import (
	"go-staffhub/internal/middleware"
	"go-staffhub/internal/token"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, tokens token.Manager) {
	employees := r.Group("/employees")
	{
		employees.POST("/login", middleware.RateLimitByIP(0.08, 5), handler.Login)
		employees.POST("/refresh", handler.Refresh)
		employees.POST("/logout",
			middleware.AuthMiddleware(tokens),
			middleware.RateLimitByUser(2, 5),
			handler.Logout,
		)
	}
}
