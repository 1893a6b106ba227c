package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/groupstudy/groupstudy-backend/internal/config"
	"github.com/groupstudy/groupstudy-backend/internal/model"
	"github.com/redis/go-redis/v9"
)

// ErrInvalidOrExpiredToken covers bad signatures, malformed tokens and expiry.
// The underlying jwt error stays in the chain (e.g. jwt.ErrTokenExpired).
var ErrInvalidOrExpiredToken = errors.New("invalid or expired token")

// Claims extends JWT standard claims with the caller identity. Extra holds
// any other claims the client posted; registered claim names never land there.
type Claims struct {
	jwt.RegisteredClaims
	Email string                 `json:"email"`
	Name  string                 `json:"name,omitempty"`
	Extra map[string]interface{} `json:"-"`
}

// reservedClaims are the keys owned by the token itself.
var reservedClaims = map[string]bool{
	"iss": true, "sub": true, "aud": true, "exp": true,
	"nbf": true, "iat": true, "jti": true,
	"email": true, "name": true,
}

type claimsFields Claims

// MarshalJSON flattens Extra next to the registered and identity claims.
func (c Claims) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal(claimsFields(c))
	if err != nil {
		return nil, err
	}
	if len(c.Extra) == 0 {
		return base, nil
	}

	var out map[string]interface{}
	if err := json.Unmarshal(base, &out); err != nil {
		return nil, err
	}
	for k, v := range c.Extra {
		if !reservedClaims[k] {
			out[k] = v
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads the known claims and gathers the rest into Extra.
func (c *Claims) UnmarshalJSON(data []byte) error {
	var known claimsFields
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}

	var all map[string]interface{}
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for k := range all {
		if reservedClaims[k] {
			delete(all, k)
		}
	}
	known.Extra = nil
	if len(all) > 0 {
		known.Extra = all
	}

	*c = Claims(known)
	return nil
}

// Identity returns the identity the token was issued for.
func (c *Claims) Identity() model.Identity {
	return model.Identity{Email: c.Email, Name: c.Name, Extra: c.Extra}
}

// AuthService issues and verifies credential tokens and tracks logouts.
type AuthService struct {
	secret []byte
	expiry time.Duration
	rdb    *redis.Client
	now    func() time.Time
}

// NewAuthService creates a new AuthService. rdb may be nil, in which case
// Revoke and IsRevoked are no-ops.
func NewAuthService(cfg *config.Config, rdb *redis.Client) *AuthService {
	return &AuthService{
		secret: []byte(cfg.JWTSecret),
		expiry: cfg.JWTExpiry,
		rdb:    rdb,
		now:    time.Now,
	}
}

// Issue signs a token for identity, valid for the configured expiry.
func (s *AuthService) Issue(identity model.Identity) (string, error) {
	now := s.now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   identity.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
		Email: identity.Email,
		Name:  identity.Name,
		Extra: identity.Extra,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token, returning its claims.
func (s *AuthService) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOrExpiredToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Email == "" {
		return nil, ErrInvalidOrExpiredToken
	}

	return claims, nil
}

// Revoke deny-lists the token until it would have expired anyway.
func (s *AuthService) Revoke(ctx context.Context, claims *Claims) error {
	if s.rdb == nil || claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}

	ttl := claims.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}

	if err := s.rdb.Set(ctx, config.CacheKey.RevokedTokenKey(claims.ID), 1, ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether the token ID was logged out.
func (s *AuthService) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if s.rdb == nil || jti == "" {
		return false, nil
	}

	n, err := s.rdb.Exists(ctx, config.CacheKey.RevokedTokenKey(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return n > 0, nil
}
