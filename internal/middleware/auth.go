package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/groupstudy/groupstudy-backend/internal/response"
	"github.com/groupstudy/groupstudy-backend/internal/service"
	"github.com/rs/zerolog"
)

const (
	// ContextKeyClaims is the Gin context key for JWT claims.
	ContextKeyClaims = "claims"

	// TokenCookie is the cookie carrying the credential.
	TokenCookie = "token"
)

// RequireCookieAuth validates the credential cookie and stores its claims.
func RequireCookieAuth(auth *service.AuthService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(TokenCookie)
		if err != nil || tokenStr == "" {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		claims, err := auth.Verify(tokenStr)
		if err != nil {
			code := response.ErrTokenInvalid
			if errors.Is(err, jwt.ErrTokenExpired) {
				code = response.ErrTokenExpired
			}
			response.AbortFail(c, http.StatusUnauthorized, code)
			return
		}

		revoked, err := auth.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			log.Error().Err(err).
				Str("request_id", c.GetString(response.ContextKeyRequestID)).
				Msg("Revocation check failed")
			response.AbortFail(c, http.StatusServiceUnavailable, response.ErrStoreUnavailable)
			return
		}
		if revoked {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRevoked)
			return
		}

		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// OptionalCookieAuth stores claims when a valid credential is present and
// lets the request through either way.
func OptionalCookieAuth(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenStr, err := c.Cookie(TokenCookie); err == nil && tokenStr != "" {
			if claims, err := auth.Verify(tokenStr); err == nil {
				revoked, err := auth.IsRevoked(c.Request.Context(), claims.ID)
				if err == nil && !revoked {
					c.Set(ContextKeyClaims, claims)
				}
			}
		}
		c.Next()
	}
}

// RequireQueryIdentity rejects requests whose query parameter param is not
// exactly the authenticated caller's email. Must run after RequireCookieAuth.
func RequireQueryIdentity(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		if c.Query(param) != claims.Email {
			response.AbortFail(c, http.StatusForbidden, response.ErrForbidden)
			return
		}
		c.Next()
	}
}

// GetClaims retrieves the JWT claims from the Gin context.
func GetClaims(c *gin.Context) *service.Claims {
	val, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil
	}
	claims, ok := val.(*service.Claims)
	if !ok {
		return nil
	}
	return claims
}
