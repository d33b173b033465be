package models

import "time"

const (
	RoleAdmin      = "ADMIN"
	RoleUser       = "USER"
	RoleStoreOwner = "STORE_OWNER"
)

// Roles lists every role a user can be created with.
var Roles = []string{RoleAdmin, RoleUser, RoleStoreOwner}

func ValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// User is an account holder. A STORE_OWNER owns at most one Store; a USER
// owns zero-or-many Ratings. The role never changes after creation.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:60;not null" json:"name"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Address   string    `gorm:"size:400" json:"address"`
	Role      string    `gorm:"size:20;not null;default:'USER'" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Store   *Store   `gorm:"foreignKey:OwnerID" json:"-"`
	Ratings []Rating `gorm:"foreignKey:UserID" json:"-"`
}
