package models

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken stores the sha256 hash of an issued refresh token. Tokens are
// rotated on every refresh and revoked on logout.
type RefreshToken struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	TokenHash string    `gorm:"uniqueIndex;not null;size:64" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	Revoked   bool      `gorm:"default:false" json:"revoked"`
	CreatedAt time.Time `json:"createdAt"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
}
