package middleware

import (
	"errors"
	"strconv"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rateview/storefront-backend/internal/config"
	"github.com/rateview/storefront-backend/internal/dto"
	"github.com/rateview/storefront-backend/internal/models"
	"gorm.io/gorm"
)

const currentUserKey = "currentUser"

// JWTProtected verifies the Bearer access token.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Message: "Unauthorized: invalid or expired token",
			})
		},
	})
}

// LoadCurrentUser resolves the token's subject to a live user row so that
// role checks never trust a stale claim. Runs after JWTProtected.
func LoadCurrentUser(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := tokenSubject(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Message: "Unauthorized",
			})
		}

		var user models.User
		if err := db.First(&user, id).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Message: "Unauthorized: user no longer exists",
			})
		}

		c.Locals(currentUserKey, &user)
		return c.Next()
	}
}

// CurrentUser returns the user loaded by LoadCurrentUser, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(currentUserKey).(*models.User)
	return user
}

func tokenSubject(c *fiber.Ctx) (uint, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return 0, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, errors.New("missing sub claim")
	}

	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, errors.New("malformed sub claim")
	}
	return uint(id), nil
}
