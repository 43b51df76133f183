package auth

import (
	"context"
	"errors"
	"strings"

	autherrors "go-staffhub/internal/auth/errors"
	"go-staffhub/internal/employee"
	"go-staffhub/internal/shared/contextutil"
	"go-staffhub/internal/token"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	// Login verifies the credential against the stored hash and, on success,
	// overwrites the refresh-token slot with a freshly minted token.
	Login(ctx context.Context, email, mobile, password string) (accessToken, refreshToken string, resp LoggedInEmployee, err error)

	// Logout unconditionally nulls the slot; calling it twice is harmless.
	Logout(ctx context.Context, employeeID string) error

	// Refresh rotates the pair. The presented token must equal the stored
	// slot exactly; a replayed or superseded token is rejected even when its
	// signature is still valid.
	Refresh(ctx context.Context, presentedToken string) (newAccessToken, newRefreshToken string, err error)
}

type service struct {
	employees employee.Repository
	tokens    token.Manager
	logger    *zap.Logger
}

func NewService(employees employee.Repository, tokens token.Manager, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{employees: employees, tokens: tokens, logger: l}
}

func (s *service) Login(ctx context.Context, email, mobile, password string) (string, string, LoggedInEmployee, error) {
	rid := contextutil.GetRequestID(ctx)
	logger := contextutil.GetLogger(ctx, s.logger)

	if strings.TrimSpace(password) == "" {
		return "", "", LoggedInEmployee{}, autherrors.ErrPasswordRequired
	}
	if strings.TrimSpace(email) == "" && strings.TrimSpace(mobile) == "" {
		return "", "", LoggedInEmployee{}, autherrors.ErrIdentifierRequired
	}

	empl, err := s.employees.FindByEmailOrMobile(ctx, email, mobile)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", LoggedInEmployee{}, autherrors.ErrEmployeeNotFound
		}
		logger.Error("login lookup failed", zap.String("request_id", rid), zap.Error(err))
		return "", "", LoggedInEmployee{}, err
	}

	if !empl.IsActive {
		return "", "", LoggedInEmployee{}, autherrors.ErrEmployeeInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(empl.Password), []byte(password)); err != nil {
		return "", "", LoggedInEmployee{}, autherrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.mintPair(empl)
	if err != nil {
		logger.Error("login mint tokens failed", zap.String("request_id", rid), zap.Error(err))
		return "", "", LoggedInEmployee{}, autherrors.ErrTokenGenerationFailed
	}

	// Overwrite the slot; any refresh token issued before this login is now
	// dead regardless of its expiry.
	if err := s.employees.SetRefreshToken(ctx, empl.ID.String(), &refreshToken); err != nil {
		logger.Error("login persist refresh token failed", zap.String("request_id", rid), zap.Error(err))
		return "", "", LoggedInEmployee{}, err
	}

	logger.Info("employee logged in",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)

	return accessToken, refreshToken, mapToLoggedIn(empl), nil
}

func (s *service) Logout(ctx context.Context, employeeID string) error {
	logger := contextutil.GetLogger(ctx, s.logger)

	if err := s.employees.SetRefreshToken(ctx, employeeID, nil); err != nil {
		logger.Error("logout clear refresh token failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return err
	}

	logger.Info("employee logged out", zap.String("employee_id", employeeID))
	return nil
}

func (s *service) Refresh(ctx context.Context, presentedToken string) (string, string, error) {
	logger := contextutil.GetLogger(ctx, s.logger)

	if presentedToken == "" {
		return "", "", autherrors.ErrMissingRefreshToken
	}

	claims, err := s.tokens.VerifyRefreshToken(presentedToken)
	if err != nil {
		return "", "", autherrors.ErrInvalidRefreshToken
	}

	empl, err := s.employees.FindByID(ctx, claims.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", autherrors.ErrInvalidRefreshToken
		}
		return "", "", err
	}

	if !empl.IsActive {
		return "", "", autherrors.ErrEmployeeInactive
	}

	if empl.RefreshToken == nil || *empl.RefreshToken != presentedToken {
		return "", "", autherrors.ErrRefreshTokenExpiredOrUsed
	}

	newAccessToken, newRefreshToken, err := s.mintPair(empl)
	if err != nil {
		logger.Error("refresh mint tokens failed", zap.Error(err))
		return "", "", autherrors.ErrTokenGenerationFailed
	}

	// Atomic rotation: only one of two racing refreshes can swap the slot;
	// the loser sees a stale value and is rejected.
	swapped, err := s.employees.CompareAndSwapRefreshToken(ctx, empl.ID.String(), presentedToken, newRefreshToken)
	if err != nil {
		logger.Error("refresh rotate slot failed",
			zap.String("employee_id", empl.ID.String()),
			zap.Error(err),
		)
		return "", "", err
	}
	if !swapped {
		return "", "", autherrors.ErrRefreshTokenExpiredOrUsed
	}

	logger.Info("refresh token rotated", zap.String("employee_id", empl.ID.String()))

	return newAccessToken, newRefreshToken, nil
}

func (s *service) mintPair(empl *employee.Employee) (string, string, error) {
	claims := token.Claims{
		EmployeeID: empl.ID.String(),
		CompanyID:  empl.CompanyID.String(),
		Role:       "EMPLOYEE",
	}

	accessToken, err := s.tokens.MintAccessToken(claims)
	if err != nil {
		return "", "", err
	}
	refreshToken, err := s.tokens.MintRefreshToken(claims)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

func mapToLoggedIn(empl *employee.Employee) LoggedInEmployee {
	return LoggedInEmployee{
		ID:           empl.ID.String(),
		EmployeeCode: empl.EmployeeCode,
		Name:         empl.Name,
		Email:        empl.Email,
		MobileNo:     empl.MobileNo,
		CompanyID:    empl.CompanyID.String(),
		Type:         empl.Type,
		IsActive:     empl.IsActive,
	}
}
