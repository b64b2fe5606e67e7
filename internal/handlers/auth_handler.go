package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/nigelkyalo/mamacare-backend/internal/dto"
	"github.com/nigelkyalo/mamacare-backend/internal/identity"
)

type AuthHandler struct {
	ids identity.Service
}

func NewAuthHandler(ids identity.Service) *AuthHandler {
	return &AuthHandler{ids: ids}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}

	resp, err := h.ids.Register(&req)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrMissingFields):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: "First name, last name, email, and password are required.",
			})
		case errors.Is(err, identity.ErrEmailTaken):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: "An account with that email already exists.",
			})
		}
		slog.Error("failed to create account", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Email and password are required.",
		})
	}

	resp, err := h.ids.Authenticate(&req)
	if err != nil {
		// One message for unknown email and wrong password alike.
		if errors.Is(err, identity.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: "Invalid email or password.",
			})
		}
		slog.Error("failed to login", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Internal server error",
		})
	}

	return c.JSON(resp)
}
