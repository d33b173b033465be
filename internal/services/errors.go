package services

import (
	"errors"

	"github.com/rateview/storefront-backend/internal/validation"
)

var (
	ErrEmailTaken         = errors.New("user already exists with this email")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
	ErrUserNotFound       = errors.New("user not found")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrInvalidRole        = errors.New("invalid role specified")
	ErrStoreNotFound      = errors.New("store not found")
	ErrStoreEmailTaken    = errors.New("store already exists with this email")
	ErrInvalidOwner       = errors.New("invalid or non-store-owner user")
	ErrOwnerHasStore      = errors.New("owner already has a store")
	ErrNoStoreForOwner    = errors.New("store not found for this owner")
)

// ValidationError carries field-level messages across the service boundary;
// handlers turn it into a 400 with the field map attached.
type ValidationError struct {
	Fields validation.Errors
}

func (e *ValidationError) Error() string { return "validation error" }
