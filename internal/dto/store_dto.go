package dto

import "time"

// CreateStoreRequest wraps the store payload the way the admin frontend
// sends it: {"store": {...}}.
type CreateStoreRequest struct {
	Store StorePayload `json:"store"`
}

type StorePayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	OwnerID uint   `json:"ownerId"`
}

type CreateStoreResponse struct {
	Message string        `json:"message"`
	Store   StoreResponse `json:"store"`
}

// OwnerInfo is the owner's public identity attached to store rows.
type OwnerInfo struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address,omitempty"`
}

// RaterInfo is a rater's public identity; address and password hash are
// never projected.
type RaterInfo struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// StoreResponse is one row of the store listing. UserRating is the viewer's
// own rating when the viewer has role USER, null otherwise.
type StoreResponse struct {
	ID            uint       `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Address       string     `json:"address"`
	OwnerID       uint       `json:"ownerId"`
	CreatedAt     time.Time  `json:"createdAt"`
	Owner         *OwnerInfo `json:"owner,omitempty"`
	AverageRating float64    `json:"averageRating"`
	TotalRatings  int        `json:"totalRatings"`
	UserRating    *int       `json:"userRating"`
}

type ListStoresResponse struct {
	Stores     []StoreResponse `json:"stores"`
	Pagination Pagination      `json:"pagination"`
}

// StoreDetail adds the full rating list to a single-store response.
type StoreDetail struct {
	StoreResponse
	Ratings []StoreRating `json:"ratings"`
}

type StoreRating struct {
	ID        uint      `json:"id"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
	User      RaterInfo `json:"user"`
}

type GetStoreResponse struct {
	Store StoreDetail `json:"store"`
}

// DashboardResponse is the store owner's view: their store's aggregate plus
// every rating with the rater's public identity, newest first.
type DashboardResponse struct {
	Store   DashboardStore `json:"store"`
	Ratings []StoreRating  `json:"ratings"`
}

type DashboardStore struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Address       string  `json:"address"`
	AverageRating float64 `json:"averageRating"`
	TotalRatings  int     `json:"totalRatings"`
}
