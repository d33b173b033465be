package services

import (
	"errors"
	"fmt"

	"github.com/rateview/storefront-backend/internal/config"
	"github.com/rateview/storefront-backend/internal/dto"
	"github.com/rateview/storefront-backend/internal/models"
	"github.com/rateview/storefront-backend/internal/validation"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService backs the admin user-management endpoints.
type UserService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewUserService(db *gorm.DB, cfg *config.Config) *UserService {
	return &UserService{db: db, cfg: cfg}
}

// Create makes an account with an explicit role (admin operation; public
// registration always gets USER).
func (s *UserService) Create(req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if errs := validation.User(req.Name, req.Email, req.Password, req.Address); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}
	if !models.ValidRole(req.Role) {
		return nil, ErrInvalidRole
	}

	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.EffectiveBcryptCost())
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Address:  req.Address,
		Role:     req.Role,
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	resp := projectUser(&user)
	return &resp, nil
}

func userFilters(p ListParams) func(db *gorm.DB) *gorm.DB {
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
		if p.Role != "" {
			db = db.Where("role = ?", p.Role)
		}
		return db
	}
}

// List returns a page of users. STORE_OWNER rows carry their store with its
// average rating.
func (s *UserService) List(params ListParams) (*dto.ListUsersResponse, error) {
	var total int64
	if err := s.db.Model(&models.User{}).Scopes(userFilters(params)).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	page, limit, offset := clampPaging(params.Page, params.Limit, s.cfg.DefaultPageSize, s.cfg.MaxPageSize)

	var users []models.User
	err := s.db.Scopes(userFilters(params)).
		Order(orderClause(userSortColumns, params.SortBy, params.SortOrder)).
		Offset(offset).
		Limit(limit).
		Preload("Store").
		Preload("Store.Ratings").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	out := make([]dto.UserResponse, len(users))
	for i := range users {
		out[i] = projectUserWithStore(&users[i])
	}

	return &dto.ListUsersResponse{
		Users:      out,
		Pagination: paginate(total, page, limit),
	}, nil
}

func (s *UserService) GetByID(id uint) (*dto.UserResponse, error) {
	var user models.User
	err := s.db.Preload("Store").Preload("Store.Ratings").First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	resp := projectUserWithStore(&user)
	return &resp, nil
}

// Stats returns the admin dashboard counters.
func (s *UserService) Stats() (*dto.StatsResponse, error) {
	var stats dto.StatsResponse
	if err := s.db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if err := s.db.Model(&models.Store{}).Count(&stats.TotalStores).Error; err != nil {
		return nil, fmt.Errorf("failed to count stores: %w", err)
	}
	if err := s.db.Model(&models.Rating{}).Count(&stats.TotalRatings).Error; err != nil {
		return nil, fmt.Errorf("failed to count ratings: %w", err)
	}
	return &stats, nil
}
