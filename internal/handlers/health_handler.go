package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rateview/storefront-backend/internal/database"
	"github.com/rateview/storefront-backend/internal/dto"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	status := fiber.StatusOK
	if err := database.Ping(h.db); err != nil {
		dbStatus = "unreachable"
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(dto.HealthResponse{
		Status:    "up",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
	})
}
