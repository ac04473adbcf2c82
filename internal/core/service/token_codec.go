package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shopcraft/backoffice/internal/core/domain"
)

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
)

// TokenCodec issues and verifies HS256-signed access and refresh tokens.
// The two classes are signed with distinct secrets.
type TokenCodec struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenCodec(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenCodec {
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = defaultRefreshTTL
	}
	return &TokenCodec{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (c *TokenCodec) RefreshTTL() time.Duration {
	return c.refreshTTL
}

// IssueAccess embeds the full identity claim set: internal id, public uuid,
// email and role.
func (c *TokenCodec) IssueAccess(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"id":    user.ID,
		"uuid":  user.UUID,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(c.accessTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.accessSecret)
}

// IssueRefresh embeds only the identity references, never email or role.
func (c *TokenCodec) IssueRefresh(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"id":   user.ID,
		"uuid": user.UUID,
		"exp":  time.Now().Add(c.refreshTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.refreshSecret)
}

func (c *TokenCodec) VerifyAccess(token string) (*domain.AccessClaims, error) {
	claims, err := c.parse(token, c.accessSecret)
	if err != nil {
		return nil, err
	}
	return &domain.AccessClaims{
		UserID: claimInt64(claims, "id"),
		UUID:   claimString(claims, "uuid"),
		Email:  claimString(claims, "email"),
		Role:   claimString(claims, "role"),
	}, nil
}

func (c *TokenCodec) VerifyRefresh(token string) (*domain.RefreshClaims, error) {
	claims, err := c.parse(token, c.refreshSecret)
	if err != nil {
		return nil, err
	}
	return &domain.RefreshClaims{
		UserID: claimInt64(claims, "id"),
		UUID:   claimString(claims, "uuid"),
	}, nil
}

func (c *TokenCodec) parse(token string, secret []byte) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !tkn.Valid {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}

// JSON numbers decode as float64; ids fit well inside the float64 integer range.
func claimInt64(claims jwt.MapClaims, key string) int64 {
	if f, ok := claims[key].(float64); ok {
		return int64(f)
	}
	return 0
}

func claimString(claims jwt.MapClaims, key string) string {
	s, _ := claims[key].(string)
	return s
}
