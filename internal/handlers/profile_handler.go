package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/nigelkyalo/mamacare-backend/internal/dto"
	"github.com/nigelkyalo/mamacare-backend/internal/middleware"
	"github.com/nigelkyalo/mamacare-backend/internal/services"
)

type ProfileHandler struct {
	profiles *services.ProfileService
}

func NewProfileHandler(profiles *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: "Unauthorized",
		})
	}

	profile, err := h.profiles.GetLatest(userID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: "No pregnancy profile found",
			})
		}
		slog.Error("failed to fetch pregnancy profile", "error", err, "user_id", userID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Internal server error",
		})
	}

	return c.JSON(dto.ProfileResponse{
		Success: true,
		Data:    profile,
	})
}

func (h *ProfileHandler) Save(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: "Unauthorized",
		})
	}

	var req dto.ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid request body",
		})
	}

	profile, created, err := h.profiles.Upsert(userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrEmailRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: "Email is required",
			})
		}
		slog.Error("failed to save pregnancy profile", "error", err, "user_id", userID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Internal server error",
		})
	}

	if created {
		return c.Status(fiber.StatusCreated).JSON(dto.ProfileResponse{
			Success: true,
			Message: "Pregnancy profile saved successfully",
			Data:    profile,
		})
	}
	return c.JSON(dto.ProfileResponse{
		Success: true,
		Message: "Pregnancy profile updated successfully",
		Data:    profile,
	})
}
