package employee

import (
	"go-staffhub/internal/middleware"
	"go-staffhub/internal/token"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	tokens token.Manager,
	logger *zap.Logger,
) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware(tokens))
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.POST("",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RequireRole("ADMIN", "HR"),
			handler.Create,
		)
	}
}
