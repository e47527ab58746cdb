package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/sdbuildbox/building_management_app/internal/core/ports/services"
	"github.com/sdbuildbox/building_management_app/internal/dto"
	"github.com/sdbuildbox/building_management_app/internal/middleware"
	"github.com/sdbuildbox/building_management_app/internal/platform/config"
)

// AuthHandler handles credential issuance and revocation.
type AuthHandler struct {
	tokenService portssvc.TokenSvcFacade
	cfg          *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(ts portssvc.TokenSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{tokenService: ts, cfg: cfg}
}

// registerAuthRoutes sets up the credential routes. The issue route carries
// the rate-limit middleware; logout does not, it only clears a cookie.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, tokenService portssvc.TokenSvcFacade, rateLimit gin.HandlerFunc) {
	h := NewAuthHandler(tokenService, cfg)

	r.POST("/jwt", rateLimit, h.IssueToken)
	r.POST("/logout", h.Logout)
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, token string, maxAge int) {
	if h.cfg.IsProduction {
		c.SetSameSite(http.SameSiteNoneMode)
		c.SetCookie(h.cfg.TokenCookieName, token, maxAge, "/", "", true, true)
		return
	}
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(h.cfg.TokenCookieName, token, maxAge, "/", "", false, true)
}

// IssueToken godoc
// @Summary Issue an access token
// @Description Ensures a directory record exists for the claimed email, then returns a signed JWT. The token is also set as an HTTP-only cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param claims body dto.TokenRequest true "Identity claims"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /jwt [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for IssueToken", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	token, err := h.tokenService.IssueToken(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to issue token")
		return
	}

	h.setTokenCookie(c, token, int(h.cfg.JWTExpiryDuration.Seconds()))

	logger.Info("Issued access token", slog.String("user_email", req.Email))
	c.JSON(http.StatusOK, dto.TokenResponse{Token: token, Success: true})
}

// Logout godoc
// @Summary Clear the token cookie
// @Description Deletes the HTTP-only token cookie. Header-presented tokens stay valid until expiry.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.StatusResponse
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	h.setTokenCookie(c, "", -1)

	logger.Info("Cleared token cookie")
	c.JSON(http.StatusOK, dto.StatusResponse{Success: true})
}
