package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rateview/storefront-backend/internal/dto"
	"github.com/rateview/storefront-backend/internal/middleware"
	"github.com/rateview/storefront-backend/internal/services"
)

type StoreHandler struct {
	storeService *services.StoreService
}

func NewStoreHandler(storeService *services.StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

func (h *StoreHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateStoreRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	store, err := h.storeService.Create(&req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CreateStoreResponse{
		Message: "Store created successfully",
		Store:   *store,
	})
}

func (h *StoreHandler) List(c *fiber.Ctx) error {
	resp, err := h.storeService.List(listParams(c), viewer(c))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(resp)
}

func (h *StoreHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "Invalid store id",
		})
	}

	resp, err := h.storeService.GetByID(uint(id), viewer(c))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(resp)
}

func (h *StoreHandler) OwnerDashboard(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	resp, err := h.storeService.OwnerDashboard(user.ID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(resp)
}

func viewer(c *fiber.Ctx) *services.Viewer {
	user := middleware.CurrentUser(c)
	if user == nil {
		return nil
	}
	return &services.Viewer{ID: user.ID, Role: user.Role}
}
