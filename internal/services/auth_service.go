package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rateview/storefront-backend/internal/config"
	"github.com/rateview/storefront-backend/internal/dto"
	"github.com/rateview/storefront-backend/internal/models"
	"github.com/rateview/storefront-backend/internal/validation"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

// Register creates a self-service account. The role is always USER; admin
// and store-owner accounts are created through the admin endpoint.
func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if errs := validation.User(req.Name, req.Email, req.Password, req.Address); errs != nil {
		return nil, &ValidationError{Fields: errs}
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
		Role:     models.RoleUser,
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.tokenPair("User registered successfully", &user)
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if errs := validation.Login(req.Email, req.Password); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}

	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.tokenPair("Login successful", &user)
}

// Refresh rotates the refresh token: the presented token is revoked before a
// new pair is issued, so a replay of the old token fails.
func (s *AuthService) Refresh(req *dto.RefreshRequest) (*dto.AuthResponse, error) {
	tokenHash := hashToken(req.RefreshToken)

	var stored models.RefreshToken
	if err := s.db.Where("token_hash = ? AND revoked = false", tokenHash).First(&stored).Error; err != nil {
		return nil, ErrInvalidToken
	}

	if time.Now().After(stored.ExpiresAt) {
		s.db.Model(&stored).Update("revoked", true)
		return nil, ErrInvalidToken
	}

	// Conditional revoke: when the same token is presented concurrently,
	// only one request flips the row and gets a new pair.
	res := s.db.Model(&models.RefreshToken{}).
		Where("token_hash = ? AND revoked = false", tokenHash).
		Update("revoked", true)
	if err := revokeOutcome(res.Error, res.RowsAffected); err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.First(&user, stored.UserID).Error; err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	return s.tokenPair("Token refreshed", &user)
}

func (s *AuthService) Logout(req *dto.LogoutRequest) error {
	tokenHash := hashToken(req.RefreshToken)
	return s.db.Model(&models.RefreshToken{}).
		Where("token_hash = ?", tokenHash).
		Update("revoked", true).Error
}

func (s *AuthService) UpdatePassword(userID uint, req *dto.PasswordUpdateRequest) error {
	if errs := validation.PasswordUpdate(req.CurrentPassword, req.NewPassword); errs != nil {
		return &ValidationError{Fields: errs}
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), s.cfg.EffectiveBcryptCost())
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.db.Model(&user).Update("password", string(hash)).Error
}

// Profile returns the caller's account with the owned store attached for
// store owners.
func (s *AuthService) Profile(userID uint) (*dto.ProfileResponse, error) {
	var user models.User
	if err := s.db.Preload("Store").First(&user, userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	resp := projectUser(&user)
	if user.Store != nil {
		resp.Store = &dto.StoreInfo{
			ID:      user.Store.ID,
			Name:    user.Store.Name,
			Email:   user.Store.Email,
			Address: user.Store.Address,
		}
	}
	return &dto.ProfileResponse{User: resp}, nil
}

func (s *AuthService) tokenPair(message string, user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := s.generateAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.generateRefreshToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Message:      message,
		User:         projectUser(user),
		Token:        accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *AuthService) generateAccessToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   strconv.FormatUint(uint64(user.ID), 10),
		"email": user.Email,
		"role":  user.Role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(s.cfg.JWTAccessExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func (s *AuthService) generateRefreshToken(user *models.User) (string, error) {
	rawBytes := make([]byte, 32)
	if _, err := rand.Read(rawBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	rawToken := base64.URLEncoding.EncodeToString(rawBytes)

	record := models.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: hashToken(rawToken),
		ExpiresAt: time.Now().Add(s.cfg.JWTRefreshExpiry),
	}

	if err := s.db.Create(&record).Error; err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return rawToken, nil
}

// revokeOutcome maps the result of the conditional revoke UPDATE. Zero
// affected rows means another request already rotated the token, so the
// presented one counts as replayed.
func revokeOutcome(err error, rows int64) error {
	if err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	if rows == 0 {
		return ErrInvalidToken
	}
	return nil
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}
