package services

import (
	"errors"
	"fmt"

	"github.com/rateview/storefront-backend/internal/dto"
	"github.com/rateview/storefront-backend/internal/models"
	"github.com/rateview/storefront-backend/internal/validation"
	"gorm.io/gorm"
)

type RatingService struct {
	db *gorm.DB
}

func NewRatingService(db *gorm.DB) *RatingService {
	return &RatingService{db: db}
}

// Submit creates or updates the caller's rating for a store. The value is
// validated before any persistence access. At most one row per (user, store)
// exists; if a concurrent submission wins the insert, the unique constraint
// rejects ours and we retry as an update instead of surfacing the conflict.
func (s *RatingService) Submit(userID, storeID uint, value int) (*dto.RatingResponse, bool, error) {
	if errs := validation.Rating(storeID, value); errs != nil {
		return nil, false, &ValidationError{Fields: errs}
	}

	var store models.Store
	if err := s.db.First(&store, storeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrStoreNotFound
		}
		return nil, false, fmt.Errorf("failed to fetch store: %w", err)
	}

	var rating models.Rating
	err := s.db.Where("user_id = ? AND store_id = ?", userID, storeID).First(&rating).Error
	switch {
	case err == nil:
		if err := s.updateValue(&rating, value); err != nil {
			return nil, false, err
		}
		resp := projectRating(&rating, &store)
		return &resp, false, nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		rating = models.Rating{Value: value, UserID: userID, StoreID: storeID}
		if err := s.db.Create(&rating).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return s.updateExisting(userID, storeID, value, &store)
			}
			return nil, false, fmt.Errorf("failed to create rating: %w", err)
		}
		resp := projectRating(&rating, &store)
		return &resp, true, nil

	default:
		return nil, false, fmt.Errorf("failed to look up rating: %w", err)
	}
}

// updateExisting handles the lost insert race: someone else created the row
// between our lookup and our insert, so apply the value as an update.
func (s *RatingService) updateExisting(userID, storeID uint, value int, store *models.Store) (*dto.RatingResponse, bool, error) {
	var rating models.Rating
	if err := s.db.Where("user_id = ? AND store_id = ?", userID, storeID).First(&rating).Error; err != nil {
		return nil, false, fmt.Errorf("failed to fetch rating after conflict: %w", err)
	}
	if err := s.updateValue(&rating, value); err != nil {
		return nil, false, err
	}
	resp := projectRating(&rating, store)
	return &resp, false, nil
}

// updateValue mutates only value and updated_at; id and created_at stay.
func (s *RatingService) updateValue(rating *models.Rating, value int) error {
	if err := s.db.Model(rating).Update("value", value).Error; err != nil {
		return fmt.Errorf("failed to update rating: %w", err)
	}
	rating.Value = value
	return nil
}

// MyRatings lists the caller's ratings, newest first, each with its store.
func (s *RatingService) MyRatings(userID uint) (*dto.MyRatingsResponse, error) {
	var ratings []models.Rating
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Preload("Store").
		Find(&ratings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}

	out := make([]dto.RatingResponse, len(ratings))
	for i := range ratings {
		out[i] = projectRating(&ratings[i], &ratings[i].Store)
	}
	return &dto.MyRatingsResponse{Ratings: out}, nil
}
