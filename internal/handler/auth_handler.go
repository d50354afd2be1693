package handler

import (
	"go-repair-pos/internal/service"
	"go-repair-pos/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Fail(c, 400, "Invalid JSON")
	}
	if req.Email == "" || req.Password == "" {
		return response.Fail(c, 400, "Email and password are required")
	}

	result, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		return response.Fail(c, 401, err.Error())
	}
	return response.OK(c, result)
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req resetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Fail(c, 400, "Invalid JSON")
	}
	if req.Email == "" || req.OldPassword == "" || req.NewPassword == "" {
		return response.Fail(c, 400, "Email, old password and new password are required")
	}

	if err := h.service.ResetPassword(req.Email, req.OldPassword, req.NewPassword); err != nil {
		return response.Fail(c, 400, err.Error())
	}
	return response.Message(c, "Password updated successfully")
}

type validateTokenRequest struct {
	Token string `json:"token"`
}

func (h *AuthHandler) ValidateToken(c *fiber.Ctx) error {
	var req validateTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Fail(c, 400, "Invalid JSON")
	}
	if req.Token == "" {
		return response.Fail(c, 400, "Token is required")
	}

	user, err := h.service.ValidateToken(req.Token)
	if err != nil {
		return response.Fail(c, 401, "Invalid or expired token")
	}
	return response.OK(c, user)
}
