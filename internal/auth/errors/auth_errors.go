package autherrors

import (
	"net/http"

	"go-staffhub/internal/shared/apperror"
)

var (
	ErrPasswordRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Password is required",
		http.StatusBadRequest,
	)
	ErrIdentifierRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Email or mobile number is required",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeInactive = apperror.New(
		apperror.CodeForbidden,
		"Employee account is inactive",
		http.StatusForbidden,
	)
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid user credentials",
		http.StatusUnauthorized,
	)
	ErrMissingRefreshToken = apperror.New(
		apperror.CodeUnauthorized,
		"unauthorized request",
		http.StatusUnauthorized,
	)
	ErrInvalidRefreshToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid refresh token",
		http.StatusUnauthorized,
	)
	ErrRefreshTokenExpiredOrUsed = apperror.New(
		apperror.CodeUnauthorized,
		"Refresh token is expired or used",
		http.StatusUnauthorized,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Something went wrong while generating refresh and access token",
		http.StatusInternalServerError,
	)
)
