package models

import "time"

// Rating is one user's vote for one store, value 1..5. The composite unique
// index keeps at most one row per (user, store) pair; concurrent submissions
// are resolved against it, not with application locks.
type Rating struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Value     int       `gorm:"not null" json:"rating"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_ratings_user_store" json:"userId"`
	StoreID   uint      `gorm:"not null;uniqueIndex:idx_ratings_user_store" json:"storeId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	User  User  `gorm:"foreignKey:UserID" json:"-"`
	Store Store `gorm:"foreignKey:StoreID" json:"-"`
}
