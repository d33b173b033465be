package services

import (
	"github.com/rateview/storefront-backend/internal/aggregate"
	"github.com/rateview/storefront-backend/internal/dto"
	"github.com/rateview/storefront-backend/internal/models"
)

// Projection helpers. All of them are pure functions over models with their
// associations preloaded; the services own the queries, these own the shape
// of what leaves the API.

func ratingValues(ratings []models.Rating) []int {
	values := make([]int, len(ratings))
	for i, r := range ratings {
		values[i] = r.Value
	}
	return values
}

func projectUser(u *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Address:   u.Address,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// projectUserWithStore attaches the owned store, enriched with its average
// rating, to STORE_OWNER rows.
func projectUserWithStore(u *models.User) dto.UserResponse {
	resp := projectUser(u)
	if u.Role == models.RoleStoreOwner && u.Store != nil {
		summary := aggregate.Summarize(ratingValues(u.Store.Ratings))
		avg := summary.Average
		resp.Store = &dto.StoreInfo{
			ID:            u.Store.ID,
			Name:          u.Store.Name,
			Email:         u.Store.Email,
			Address:       u.Store.Address,
			AverageRating: &avg,
		}
	}
	return resp
}

// projectStore builds one listing row. UserRating is filled only for USER
// viewers who rated this store; every other viewer sees null.
func projectStore(s *models.Store, viewer *Viewer) dto.StoreResponse {
	summary := aggregate.Summarize(ratingValues(s.Ratings))

	var userRating *int
	if viewer.IsUser() {
		for _, r := range s.Ratings {
			if r.UserID == viewer.ID {
				v := r.Value
				userRating = &v
				break
			}
		}
	}

	resp := dto.StoreResponse{
		ID:            s.ID,
		Name:          s.Name,
		Email:         s.Email,
		Address:       s.Address,
		OwnerID:       s.OwnerID,
		CreatedAt:     s.CreatedAt,
		AverageRating: summary.Average,
		TotalRatings:  summary.Count,
		UserRating:    userRating,
	}
	if s.Owner.ID != 0 {
		resp.Owner = &dto.OwnerInfo{
			ID:      s.Owner.ID,
			Name:    s.Owner.Name,
			Email:   s.Owner.Email,
			Address: s.Owner.Address,
		}
	}
	return resp
}

func projectStoreRatings(ratings []models.Rating) []dto.StoreRating {
	out := make([]dto.StoreRating, len(ratings))
	for i, r := range ratings {
		out[i] = dto.StoreRating{
			ID:        r.ID,
			Rating:    r.Value,
			CreatedAt: r.CreatedAt,
			User: dto.RaterInfo{
				ID:    r.User.ID,
				Name:  r.User.Name,
				Email: r.User.Email,
			},
		}
	}
	return out
}

func projectStoreDetail(s *models.Store, viewer *Viewer) dto.StoreDetail {
	return dto.StoreDetail{
		StoreResponse: projectStore(s, viewer),
		Ratings:       projectStoreRatings(s.Ratings),
	}
}

func projectDashboard(s *models.Store) dto.DashboardResponse {
	summary := aggregate.Summarize(ratingValues(s.Ratings))
	return dto.DashboardResponse{
		Store: dto.DashboardStore{
			ID:            s.ID,
			Name:          s.Name,
			Email:         s.Email,
			Address:       s.Address,
			AverageRating: summary.Average,
			TotalRatings:  summary.Count,
		},
		Ratings: projectStoreRatings(s.Ratings),
	}
}

func projectRating(r *models.Rating, store *models.Store) dto.RatingResponse {
	resp := dto.RatingResponse{
		ID:        r.ID,
		Rating:    r.Value,
		StoreID:   r.StoreID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if store != nil && store.ID != 0 {
		resp.Store = &dto.StoreInfo{
			ID:      store.ID,
			Name:    store.Name,
			Address: store.Address,
		}
	}
	return resp
}
