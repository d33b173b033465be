package dto

import "time"

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Address  string `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type PasswordUpdateRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type AuthResponse struct {
	Message      string       `json:"message"`
	User         UserResponse `json:"user"`
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken"`
}

// UserResponse carries a user's public fields; the password hash never
// leaves the service layer.
type UserResponse struct {
	ID        uint       `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Address   string     `json:"address"`
	Role      string     `json:"role"`
	CreatedAt time.Time  `json:"createdAt"`
	Store     *StoreInfo `json:"store,omitempty"`
}

// StoreInfo is the owned-store summary attached to STORE_OWNER users.
type StoreInfo struct {
	ID            uint     `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email,omitempty"`
	Address       string   `json:"address,omitempty"`
	AverageRating *float64 `json:"averageRating,omitempty"`
}

type ProfileResponse struct {
	User UserResponse `json:"user"`
}
