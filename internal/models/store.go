package models

import "time"

// Store belongs to exactly one STORE_OWNER user. The unique index on
// OwnerID enforces one store per owner.
type Store struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:60;not null" json:"name"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Address   string    `gorm:"size:400" json:"address"`
	OwnerID   uint      `gorm:"not null;uniqueIndex" json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Owner   User     `gorm:"foreignKey:OwnerID" json:"-"`
	Ratings []Rating `gorm:"foreignKey:StoreID" json:"-"`
}
