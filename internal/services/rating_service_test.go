package services

import (
	"errors"
	"testing"

	"github.com/rateview/storefront-backend/internal/dto"
)

// The rating value is checked before any persistence access; with a nil DB
// handle an out-of-range submission must fail with a ValidationError rather
// than reach the store lookup.
func TestSubmitValidatesBeforePersistence(t *testing.T) {
	s := NewRatingService(nil)

	cases := []struct {
		storeID uint
		value   int
		field   string
	}{
		{3, 0, "rating"},
		{3, 6, "rating"},
		{3, -2, "rating"},
		{0, 4, "storeId"},
	}
	for _, tc := range cases {
		_, created, err := s.Submit(7, tc.storeID, tc.value)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("Submit(%d, %d): expected ValidationError, got %v", tc.storeID, tc.value, err)
		}
		if ve.Fields[tc.field] == "" {
			t.Errorf("Submit(%d, %d): expected %q field error, got %v", tc.storeID, tc.value, tc.field, ve.Fields)
		}
		if created {
			t.Errorf("Submit(%d, %d): created must be false on validation failure", tc.storeID, tc.value)
		}
	}
}

func createStoreReq(name, email string, ownerID uint) *dto.CreateStoreRequest {
	return &dto.CreateStoreRequest{Store: dto.StorePayload{
		Name:    name,
		Email:   email,
		OwnerID: ownerID,
	}}
}

func TestStoreCreateValidatesBeforePersistence(t *testing.T) {
	s := NewStoreService(nil, testConfig())

	_, err := s.Create(createStoreReq("Tiny", "bad-email", 0))
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Fields["ownerId"] == "" {
		t.Errorf("expected ownerId error first, got %v", ve.Fields)
	}

	_, err = s.Create(createStoreReq("Tiny", "bad-email", 9))
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Fields["name"] == "" || ve.Fields["email"] == "" {
		t.Errorf("expected name and email errors, got %v", ve.Fields)
	}
}
