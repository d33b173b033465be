package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rateview/storefront-backend/internal/dto"
	"github.com/rateview/storefront-backend/internal/middleware"
	"github.com/rateview/storefront-backend/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(resp)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	resp, err := h.authService.Refresh(&req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(resp)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req dto.LogoutRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	if err := h.authService.Logout(&req); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

func (h *AuthHandler) UpdatePassword(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req dto.PasswordUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	if err := h.authService.UpdatePassword(user.ID, &req); err != nil {
		return serviceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Password updated successfully"})
}

func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	resp, err := h.authService.Profile(user.ID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(resp)
}
