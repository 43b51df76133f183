package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"go-staffhub/internal/middleware"
	"go-staffhub/internal/token"
)

func newMiddlewareTokenManager() token.Manager {
	return token.NewManager(token.Config{
		AccessSecret:  []byte("access-secret-for-tests"),
		RefreshSecret: []byte("refresh-secret-for-tests"),
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    7 * 24 * time.Hour,
	})
}

func setupProtectedRouter(tokens token.Manager, roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	handlers := []gin.HandlerFunc{middleware.AuthMiddleware(tokens)}
	if len(roles) > 0 {
		handlers = append(handlers, middleware.RequireRole(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"employee_id": c.GetString("employee_id"),
			"company_id":  c.GetString("company_id"),
		})
	})
	router.GET("/protected", handlers...)
	return router
}

func TestAuthMiddleware(t *testing.T) {
	tokens := newMiddlewareTokenManager()
	claims := token.Claims{EmployeeID: "emp-1", CompanyID: "comp-1", Role: "EMPLOYEE"}

	t.Run("Bearer Header", func(t *testing.T) {
		router := setupProtectedRouter(tokens)
		at, _ := tokens.MintAccessToken(claims)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+at)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "emp-1")
	})

	t.Run("Cookie Fallback", func(t *testing.T) {
		router := setupProtectedRouter(tokens)
		at, _ := tokens.MintAccessToken(claims)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: at})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("No Token", func(t *testing.T) {
		router := setupProtectedRouter(tokens)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Refresh Token Is Not An Access Token", func(t *testing.T) {
		router := setupProtectedRouter(tokens)
		rt, _ := tokens.MintRefreshToken(claims)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+rt)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireRole(t *testing.T) {
	tokens := newMiddlewareTokenManager()

	t.Run("Allowed Role", func(t *testing.T) {
		router := setupProtectedRouter(tokens, "ADMIN", "HR")
		at, _ := tokens.MintAccessToken(token.Claims{EmployeeID: "emp-1", CompanyID: "comp-1", Role: "ADMIN"})

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+at)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Disallowed Role", func(t *testing.T) {
		router := setupProtectedRouter(tokens, "ADMIN")
		at, _ := tokens.MintAccessToken(token.Claims{EmployeeID: "emp-1", CompanyID: "comp-1", Role: "EMPLOYEE"})

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+at)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
