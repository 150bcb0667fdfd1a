package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/mansoorceksport/ironlog/internal/domain"
	"github.com/mansoorceksport/ironlog/internal/service"
)

const refreshCookieName = "ironlog-refresh-token"

// AuthHandler issues and refreshes device tokens. There is no password or
// external identity; a device claims a token for a profile it holds.
type AuthHandler struct {
	profileRepo  domain.ProfileRepository
	tokenService *service.TokenService
}

func NewAuthHandler(profileRepo domain.ProfileRepository, tokenService *service.TokenService) *AuthHandler {
	return &AuthHandler{
		profileRepo:  profileRepo,
		tokenService: tokenService,
	}
}

// IssueToken handles POST /v1/auth/token
func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	var req struct {
		ProfileID string `json:"profile_id"`
		Device    string `json:"device"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid body"})
	}
	if req.ProfileID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "profile_id is required"})
	}
	if req.Device == "" {
		req.Device = c.Get("User-Agent")
	}

	profile, err := h.profileRepo.GetByID(c.Context(), req.ProfileID)
	if err != nil {
		return respondError(c, err)
	}

	tokenPair, err := h.tokenService.GenerateTokenPair(c.Context(), profile, req.Device)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to generate tokens: " + err.Error(),
		})
	}

	h.setRefreshCookie(c, tokenPair.RefreshToken)

	return c.JSON(fiber.Map{
		"token":      tokenPair.AccessToken,
		"expires_in": tokenPair.ExpiresIn,
		"profile": fiber.Map{
			"id":   profile.ID,
			"name": profile.Name,
		},
	})
}

// RefreshToken handles POST /v1/auth/refresh
func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	refreshToken := c.Cookies(refreshCookieName)
	if refreshToken == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "No refresh token provided",
		})
	}

	tokenPair, err := h.tokenService.RefreshAccessToken(c.Context(), refreshToken, c.Get("User-Agent"))
	if err != nil {
		h.clearRefreshCookie(c)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid or expired refresh token",
		})
	}

	h.setRefreshCookie(c, tokenPair.RefreshToken)

	return c.JSON(fiber.Map{
		"token":      tokenPair.AccessToken,
		"expires_in": tokenPair.ExpiresIn,
	})
}

// Logout handles POST /v1/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	refreshToken := c.Cookies(refreshCookieName)
	if refreshToken != "" {
		_ = h.tokenService.RevokeRefreshToken(c.Context(), refreshToken)
	}

	h.clearRefreshCookie(c)

	return c.JSON(fiber.Map{
		"message": "Logged out successfully",
	})
}

func (h *AuthHandler) setRefreshCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Expires:  time.Now().Add(30 * 24 * time.Hour),
		HTTPOnly: true,
		Secure:   false, // Set to true in production with HTTPS
		SameSite: "Lax",
		Path:     "/",
	})
}

func (h *AuthHandler) clearRefreshCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Expires:  time.Now().Add(-1 * time.Hour),
		HTTPOnly: true,
		Secure:   false,
		SameSite: "Lax",
		Path:     "/",
	})
}
