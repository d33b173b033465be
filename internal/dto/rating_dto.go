package dto

import "time"

type SubmitRatingRequest struct {
	StoreID uint `json:"storeId"`
	Rating  int  `json:"rating"`
}

type SubmitRatingResponse struct {
	Message string         `json:"message"`
	Rating  RatingResponse `json:"rating"`
}

type RatingResponse struct {
	ID        uint       `json:"id"`
	Rating    int        `json:"rating"`
	StoreID   uint       `json:"storeId"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	Store     *StoreInfo `json:"store,omitempty"`
}

type MyRatingsResponse struct {
	Ratings []RatingResponse `json:"ratings"`
}
