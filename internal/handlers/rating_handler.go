package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rateview/storefront-backend/internal/dto"
	"github.com/rateview/storefront-backend/internal/middleware"
	"github.com/rateview/storefront-backend/internal/services"
)

type RatingHandler struct {
	ratingService *services.RatingService
}

func NewRatingHandler(ratingService *services.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// Submit upserts the caller's rating: 201 when a new row was created, 200
// when an existing one was updated.
func (h *RatingHandler) Submit(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req dto.SubmitRatingRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	rating, created, err := h.ratingService.Submit(user.ID, req.StoreID, req.Rating)
	if err != nil {
		return serviceError(c, err)
	}

	status := fiber.StatusOK
	message := "Rating updated successfully"
	if created {
		status = fiber.StatusCreated
		message = "Rating submitted successfully"
	}

	return c.Status(status).JSON(dto.SubmitRatingResponse{
		Message: message,
		Rating:  *rating,
	})
}

func (h *RatingHandler) MyRatings(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	resp, err := h.ratingService.MyRatings(user.ID)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(resp)
}
