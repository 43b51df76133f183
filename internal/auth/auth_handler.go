package auth

import (
	"net/http"

	"go-staffhub/internal/shared/apperror"
	"go-staffhub/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	accessCookieMaxAge  = 15 * 60
	refreshCookieMaxAge = 7 * 24 * 3600
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: service, logger: l}
}

func setTokenCookie(c *gin.Context, name, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearTokenCookie(c *gin.Context, name string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("auth request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", err.Error())
		return
	}

	accessToken, refreshToken, empl, err := h.service.Login(c.Request.Context(), req.Email, req.Mobile, req.Password)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	setTokenCookie(c, "accessToken", accessToken, accessCookieMaxAge)
	setTokenCookie(c, "refreshToken", refreshToken, refreshCookieMaxAge)

	// Body duplicates the tokens for clients that don't use cookies
	response.Success(c, http.StatusOK, gin.H{
		"employee":     empl,
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	}, nil)
}

func (h *Handler) Logout(c *gin.Context) {
	employeeID := c.GetString("employee_id")

	if err := h.service.Logout(c.Request.Context(), employeeID); err != nil {
		h.writeServiceError(c, err)
		return
	}

	clearTokenCookie(c, "accessToken")
	clearTokenCookie(c, "refreshToken")

	response.Success(c, http.StatusOK, gin.H{}, nil)
}

func (h *Handler) Refresh(c *gin.Context) {
	// Cookie takes precedence over the request body
	presentedToken, err := c.Cookie("refreshToken")
	if err != nil || presentedToken == "" {
		var req RefreshRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			presentedToken = req.RefreshToken
		}
	}

	newAccessToken, newRefreshToken, err := h.service.Refresh(c.Request.Context(), presentedToken)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	setTokenCookie(c, "accessToken", newAccessToken, accessCookieMaxAge)
	setTokenCookie(c, "refreshToken", newRefreshToken, refreshCookieMaxAge)

	response.Success(c, http.StatusOK, gin.H{
		"accessToken":  newAccessToken,
		"refreshToken": newRefreshToken,
	}, nil)
}
