package dto

import "github.com/scholarstreams/scholarstream-backend/internal/models"

type RegisterUserRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	PhotoURL    string `json:"photo_url"`
}

// RegisterUserResponse reports whether a new record was inserted;
// re-registering an existing email is a no-op, not an error.
type RegisterUserResponse struct {
	Created bool        `json:"created"`
	User    models.User `json:"user"`
}

type UpdateProfileRequest struct {
	DisplayName string `json:"display_name"`
	PhotoURL    string `json:"photo_url"`
}

type SetRoleRequest struct {
	Role string `json:"role"`
}

type UserListResponse struct {
	Users      []models.User `json:"users"`
	Pagination Pagination    `json:"pagination"`
}
