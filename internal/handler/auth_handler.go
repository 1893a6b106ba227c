package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/groupstudy/groupstudy-backend/internal/config"
	"github.com/groupstudy/groupstudy-backend/internal/middleware"
	"github.com/groupstudy/groupstudy-backend/internal/model"
	"github.com/groupstudy/groupstudy-backend/internal/response"
	"github.com/groupstudy/groupstudy-backend/internal/service"
	"github.com/groupstudy/groupstudy-backend/internal/validator"
	"github.com/rs/zerolog"
)

// AuthHandler handles the credential cookie endpoints.
type AuthHandler struct {
	authService *service.AuthService
	cfg         *config.Config
	log         zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService, cfg *config.Config, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
		log:         log.With().Str("component", "auth_handler").Logger(),
	}
}

// IssueToken godoc
// POST /jwt
// Signs a credential for the posted identity and sets it as an HTTP-only cookie.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req model.Identity
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	token, err := h.authService.Issue(req)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to sign token")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	h.setTokenCookie(c, token, int(h.cfg.JWTExpiry.Seconds()))
	response.Success(c, http.StatusOK, gin.H{"success": true})
}

// Logout godoc
// POST /logout
// Clears the credential cookie. A still-valid token is also deny-listed so
// copies of it stop working.
func (h *AuthHandler) Logout(c *gin.Context) {
	if tokenStr, err := c.Cookie(middleware.TokenCookie); err == nil && tokenStr != "" {
		if claims, err := h.authService.Verify(tokenStr); err == nil {
			if err := h.authService.Revoke(c.Request.Context(), claims); err != nil {
				h.log.Warn().Err(err).Str("jti", claims.ID).Msg("Failed to revoke token on logout")
			}
		}
	}

	h.setTokenCookie(c, "", -1)
	response.Success(c, http.StatusOK, gin.H{"success": true})
}

// setTokenCookie writes the credential cookie. Production front-ends are
// served from another site, which needs SameSite=None and Secure.
func (h *AuthHandler) setTokenCookie(c *gin.Context, value string, maxAge int) {
	secure := h.cfg.IsProduction()
	if secure {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteStrictMode)
	}
	c.SetCookie(middleware.TokenCookie, value, maxAge, "/", "", secure, true)
}
