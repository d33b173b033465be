package services

import (
	"errors"
	"fmt"

	"github.com/rateview/storefront-backend/internal/config"
	"github.com/rateview/storefront-backend/internal/dto"
	"github.com/rateview/storefront-backend/internal/models"
	"github.com/rateview/storefront-backend/internal/validation"
	"gorm.io/gorm"
)

type StoreService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewStoreService(db *gorm.DB, cfg *config.Config) *StoreService {
	return &StoreService{db: db, cfg: cfg}
}

// Create registers a store for an existing STORE_OWNER (admin operation).
func (s *StoreService) Create(req *dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	if req.Store.OwnerID == 0 {
		return nil, &ValidationError{Fields: validation.Errors{"ownerId": "Owner id is required"}}
	}
	if errs := validation.Store(req.Store.Name, req.Store.Email, req.Store.Address); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}

	var existing models.Store
	if err := s.db.Where("email = ?", req.Store.Email).First(&existing).Error; err == nil {
		return nil, ErrStoreEmailTaken
	}

	var owner models.User
	if err := s.db.First(&owner, req.Store.OwnerID).Error; err != nil || owner.Role != models.RoleStoreOwner {
		return nil, ErrInvalidOwner
	}

	store := models.Store{
		Name:    req.Store.Name,
		Email:   req.Store.Email,
		Address: req.Store.Address,
		OwnerID: req.Store.OwnerID,
	}

	if err := s.db.Create(&store).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Either the email or the one-store-per-owner constraint lost a
			// race with a concurrent create; tell the caller which.
			var count int64
			s.db.Model(&models.Store{}).Where("owner_id = ?", req.Store.OwnerID).Count(&count)
			if count > 0 {
				return nil, ErrOwnerHasStore
			}
			return nil, ErrStoreEmailTaken
		}
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	store.Owner = owner
	resp := projectStore(&store, nil)
	return &resp, nil
}

func storeFilters(p ListParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if p.Name != "" {
			db = db.Where("name ILIKE ?", likePattern(p.Name))
		}
		if p.Email != "" {
			db = db.Where("email ILIKE ?", likePattern(p.Email))
		}
		if p.Address != "" {
			db = db.Where("address ILIKE ?", likePattern(p.Address))
		}
		if p.Search != "" {
			// One AND-ed OR-group: matches name or address.
			group := db.Session(&gorm.Session{NewDB: true}).
				Where("name ILIKE ?", likePattern(p.Search)).
				Or("address ILIKE ?", likePattern(p.Search))
			db = db.Where(group)
		}
		return db
	}
}

// List returns a page of stores with their aggregates. USER viewers also get
// their own rating per store; other roles always see userRating null.
func (s *StoreService) List(params ListParams, viewer *Viewer) (*dto.ListStoresResponse, error) {
	var total int64
	if err := s.db.Model(&models.Store{}).Scopes(storeFilters(params)).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count stores: %w", err)
	}

	page, limit, offset := clampPaging(params.Page, params.Limit, s.cfg.DefaultPageSize, s.cfg.MaxPageSize)

	var stores []models.Store
	err := s.db.Scopes(storeFilters(params)).
		Order(orderClause(storeSortColumns, params.SortBy, params.SortOrder)).
		Offset(offset).
		Limit(limit).
		Preload("Owner").
		Preload("Ratings").
		Find(&stores).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}

	out := make([]dto.StoreResponse, len(stores))
	for i := range stores {
		out[i] = projectStore(&stores[i], viewer)
	}

	return &dto.ListStoresResponse{
		Stores:     out,
		Pagination: paginate(total, page, limit),
	}, nil
}

func (s *StoreService) GetByID(id uint, viewer *Viewer) (*dto.GetStoreResponse, error) {
	var store models.Store
	err := s.db.Preload("Owner").Preload("Ratings").Preload("Ratings.User").First(&store, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, fmt.Errorf("failed to fetch store: %w", err)
	}

	return &dto.GetStoreResponse{Store: projectStoreDetail(&store, viewer)}, nil
}

// OwnerDashboard returns the owner's store with its aggregate and the full
// rating list, newest first, each annotated with the rater's public
// identity.
func (s *StoreService) OwnerDashboard(ownerID uint) (*dto.DashboardResponse, error) {
	var store models.Store
	err := s.db.
		Preload("Ratings", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Ratings.User").
		Where("owner_id = ?", ownerID).
		First(&store).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoStoreForOwner
		}
		return nil, fmt.Errorf("failed to fetch owner store: %w", err)
	}

	resp := projectDashboard(&store)
	return &resp, nil
}
