package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ratewise/store-ratings-api/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// TokenService issues and verifies signed session tokens. The signing secret
// is held by the instance, never by a package global, so two services with
// distinct secrets can coexist and rotation is a restart with new config.
// Tokens are self-contained: verification needs no storage lookup.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token binding the user's id, email and role, valid for the
// configured window from now.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"uid":   user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"exp":   time.Now().Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates raw. A bad signature, a malformed token and an
// elapsed expiry all collapse into domain.ErrInvalidToken; callers cannot
// and should not distinguish them.
func (s *TokenService) Verify(raw string) (*domain.Principal, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	uid, ok := claims["uid"].(float64)
	if !ok {
		return nil, domain.ErrInvalidToken
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if email == "" || !domain.ValidRole(domain.Role(role)) {
		return nil, domain.ErrInvalidToken
	}

	return &domain.Principal{
		UserID: int64(uid),
		Email:  email,
		Role:   domain.Role(role),
	}, nil
}
