package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fleetdesk/FleetDesk/internal/apperr"
	"github.com/fleetdesk/FleetDesk/internal/middleware"
	"github.com/fleetdesk/FleetDesk/internal/services"
	"github.com/fleetdesk/FleetDesk/internal/utils"
)

// AuthHandler exposes registration, login and the password-reset flow.
type AuthHandler struct {
	auth        *services.AuthService
	development bool
}

func NewAuthHandler(auth *services.AuthService, development bool) *AuthHandler {
	return &AuthHandler{auth: auth, development: development}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req struct {
		Email        string `json:"email"`
		Password     string `json:"password"`
		BusinessName string `json:"businessName"`
		Role         string `json:"role"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, apperr.Validation("Invalid request body"), "", h.development)
	}

	user, token, err := h.auth.Register(c.Context(), req.Email, req.Password, req.BusinessName, req.Role)
	if err != nil {
		return utils.Fail(c, err, "Registration failed", h.development)
	}

	return utils.Created(c, "User registered successfully", fiber.Map{
		"user":  user.View(),
		"token": token,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, apperr.Validation("Invalid request body"), "", h.development)
	}

	user, token, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return utils.Fail(c, err, "Login error", h.development)
	}

	return utils.OK(c, "Login successful", fiber.Map{
		"user":  user.View(),
		"token": token,
	})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return utils.Fail(c, apperr.Authentication("User not authenticated"), "", h.development)
	}
	return utils.OK(c, "Profile retrieved successfully", fiber.Map{"user": user.View()})
}

// Logout is stateless: tokens expire on their own, the endpoint just gives
// clients a uniform success response.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return utils.OK(c, "Logout successful", nil)
}

// ForgotPassword issues a reset token. Outside development the token itself
// is withheld from the response.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, apperr.Validation("Invalid request body"), "", h.development)
	}

	token, err := h.auth.ForgotPassword(c.Context(), req.Email)
	if err != nil {
		return utils.Fail(c, err, "Failed to process password reset request", h.development)
	}

	var resetToken interface{}
	if h.development {
		resetToken = token
	}
	return utils.OK(c, "Password reset instructions sent to your email", fiber.Map{
		"resetToken": resetToken,
	})
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req struct {
		Token       string `json:"token"`
		NewPassword string `json:"newPassword"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.Fail(c, apperr.Validation("Invalid request body"), "", h.development)
	}

	if err := h.auth.ResetPassword(c.Context(), req.Token, req.NewPassword); err != nil {
		return utils.Fail(c, err, "Failed to reset password", h.development)
	}
	return utils.OK(c, "Password reset successfully", nil)
}
