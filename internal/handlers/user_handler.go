package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rateview/storefront-backend/internal/dto"
	"github.com/rateview/storefront-backend/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	user, err := h.userService.Create(&req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CreateUserResponse{
		Message: "User created successfully",
		User:    *user,
	})
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	params := listParams(c)
	params.Role = c.Query("role")

	resp, err := h.userService.List(params)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(resp)
}

func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "Invalid user id",
		})
	}

	user, err := h.userService.GetByID(uint(id))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(dto.GetUserResponse{User: *user})
}

func (h *UserHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.userService.Stats()
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(stats)
}

// listParams reads the query knobs shared by the user and store listings.
func listParams(c *fiber.Ctx) services.ListParams {
	return services.ListParams{
		Page:      c.QueryInt("page", 1),
		Limit:     c.QueryInt("limit", 10),
		SortBy:    c.Query("sortBy", "createdAt"),
		SortOrder: c.Query("sortOrder", "desc"),
		Name:      c.Query("name"),
		Email:     c.Query("email"),
		Address:   c.Query("address"),
		Search:    c.Query("search"),
	}
}
