package dto

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Address  string `json:"address"`
	Role     string `json:"role"`
}

type CreateUserResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

type ListUsersResponse struct {
	Users      []UserResponse `json:"users"`
	Pagination Pagination     `json:"pagination"`
}

type GetUserResponse struct {
	User UserResponse `json:"user"`
}

// StatsResponse backs the admin dashboard counters.
type StatsResponse struct {
	TotalUsers   int64 `json:"totalUsers"`
	TotalStores  int64 `json:"totalStores"`
	TotalRatings int64 `json:"totalRatings"`
}
