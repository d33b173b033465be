package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rateview/storefront-backend/internal/dto"
	"github.com/rateview/storefront-backend/internal/services"
	"github.com/rateview/storefront-backend/internal/validation"
)

func statusFor(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Get("/err", func(c *fiber.Ctx) error {
		return serviceError(c, err)
	})

	resp, testErr := app.Test(httptest.NewRequest("GET", "/err", nil))
	if testErr != nil {
		t.Fatalf("app.Test: %v", testErr)
	}
	defer resp.Body.Close()

	var body dto.ErrorResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&body); decodeErr != nil {
		t.Fatalf("decode body: %v", decodeErr)
	}
	return resp.StatusCode, body
}

func TestServiceErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{services.ErrEmailTaken, fiber.StatusConflict},
		{services.ErrStoreEmailTaken, fiber.StatusConflict},
		{services.ErrOwnerHasStore, fiber.StatusConflict},
		{services.ErrInvalidRole, fiber.StatusBadRequest},
		{services.ErrInvalidOwner, fiber.StatusBadRequest},
		{services.ErrWrongPassword, fiber.StatusBadRequest},
		{services.ErrInvalidCredentials, fiber.StatusUnauthorized},
		{services.ErrInvalidToken, fiber.StatusUnauthorized},
		{services.ErrUserNotFound, fiber.StatusNotFound},
		{services.ErrStoreNotFound, fiber.StatusNotFound},
		{services.ErrNoStoreForOwner, fiber.StatusNotFound},
	}
	for _, tc := range cases {
		status, body := statusFor(t, tc.err)
		if status != tc.want {
			t.Errorf("%v: status = %d, want %d", tc.err, status, tc.want)
		}
		if body.Message == "" {
			t.Errorf("%v: empty message", tc.err)
		}
	}
}

func TestServiceErrorValidationDetail(t *testing.T) {
	err := &services.ValidationError{Fields: validation.Errors{
		"rating": "Rating must be at least 1",
	}}

	status, body := statusFor(t, err)
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
	if body.Message != "Validation error" {
		t.Errorf("message = %q", body.Message)
	}
	if body.Errors["rating"] == "" {
		t.Errorf("field detail missing: %v", body.Errors)
	}
}

func TestServiceErrorMasksUnexpected(t *testing.T) {
	status, body := statusFor(t, fiber.ErrTeapot) // any unrecognized error
	if status != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}
	if body.Message != "Internal server error" {
		t.Errorf("unexpected detail leaked: %q", body.Message)
	}
}
