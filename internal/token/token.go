package token

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is what both token families carry about an employee.
type Claims struct {
	EmployeeID string
	CompanyID  string
	Role       string
}

// Config holds the two independent signing configurations. Access tokens are
// short-lived, refresh tokens live longer and are persisted on the employee.
type Config struct {
	AccessSecret  []byte
	RefreshSecret []byte
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

func ConfigFromEnv() Config {
	cfg := Config{
		AccessSecret:  []byte(os.Getenv("ACCESS_TOKEN_SECRET")),
		RefreshSecret: []byte(os.Getenv("REFRESH_TOKEN_SECRET")),
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    7 * 24 * time.Hour,
	}
	if d, err := time.ParseDuration(os.Getenv("ACCESS_TOKEN_EXPIRY")); err == nil && d > 0 {
		cfg.AccessTTL = d
	}
	if d, err := time.ParseDuration(os.Getenv("REFRESH_TOKEN_EXPIRY")); err == nil && d > 0 {
		cfg.RefreshTTL = d
	}
	return cfg
}

//go:generate mockgen -source=token.go -destination=mock/token_mock.go -package=mock
type Manager interface {
	MintAccessToken(claims Claims) (string, error)
	MintRefreshToken(claims Claims) (string, error)
	VerifyAccessToken(tokenString string) (Claims, error)
	VerifyRefreshToken(tokenString string) (Claims, error)
}

type jwtManager struct {
	cfg Config
}

func NewManager(cfg Config) Manager {
	return &jwtManager{cfg: cfg}
}

func (m *jwtManager) MintAccessToken(claims Claims) (string, error) {
	return m.mint(claims, m.cfg.AccessSecret, m.cfg.AccessTTL)
}

func (m *jwtManager) MintRefreshToken(claims Claims) (string, error) {
	return m.mint(claims, m.cfg.RefreshSecret, m.cfg.RefreshTTL)
}

func (m *jwtManager) VerifyAccessToken(tokenString string) (Claims, error) {
	return m.verify(tokenString, m.cfg.AccessSecret)
}

func (m *jwtManager) VerifyRefreshToken(tokenString string) (Claims, error) {
	return m.verify(tokenString, m.cfg.RefreshSecret)
}

func (m *jwtManager) mint(claims Claims, secret []byte, ttl time.Duration) (string, error) {
	// jti makes every minted token unique even within the same second;
	// rotation must never hand back the token it is replacing.
	mapClaims := jwt.MapClaims{
		"employee_id": claims.EmployeeID,
		"company_id":  claims.CompanyID,
		"role":        claims.Role,
		"jti":         uuid.NewString(),
		"iat":         time.Now().Unix(),
		"exp":         time.Now().Add(ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	return t.SignedString(secret)
}

func (m *jwtManager) verify(tokenString string, secret []byte) (Claims, error) {
	t, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !t.Valid {
		if err == nil {
			err = jwt.ErrTokenInvalidClaims
		}
		return Claims{}, err
	}

	mapClaims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, jwt.ErrTokenInvalidClaims
	}

	employeeID, _ := mapClaims["employee_id"].(string)
	if employeeID == "" {
		return Claims{}, jwt.ErrTokenInvalidClaims
	}
	companyID, _ := mapClaims["company_id"].(string)
	role, _ := mapClaims["role"].(string)

	return Claims{EmployeeID: employeeID, CompanyID: companyID, Role: role}, nil
}
