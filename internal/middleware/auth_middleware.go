package middleware

import (
	"net/http"
	"strings"

	"go-staffhub/internal/shared/response"
	"go-staffhub/internal/token"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the access token from the Authorization header or
// the accessToken cookie and propagates identity claims into the context.
func AuthMiddleware(tokens token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("accessToken"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		claims, err := tokens.VerifyAccessToken(tokenString)
		if err != nil {
			code, message := "INVALID_TOKEN", "Invalid access token"
			if strings.Contains(err.Error(), "expired") {
				code, message = "TOKEN_EXPIRED", "Access token has expired"
			}
			response.Error(c, http.StatusUnauthorized, code, message, nil)
			c.Abort()
			return
		}

		c.Set("employee_id", claims.EmployeeID)
		c.Set("company_id", claims.CompanyID)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// RequireRole gates a route to callers whose token carries one of the
// allowed roles.
func RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")

		for _, allowed := range allowedRoles {
			if strings.EqualFold(role, allowed) {
				c.Next()
				return
			}
		}

		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not have permission to access this resource", nil)
		c.Abort()
	}
}
