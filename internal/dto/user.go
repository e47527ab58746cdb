package dto

import (
	"time"

	"github.com/sdbuildbox/building_management_app/internal/core/domain"
)

// CreateUserRequest defines the payload for registering a new user.
type CreateUserRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
	Role  string `json:"role" binding:"omitempty,role"`
}

// EnsureUserRequest defines the payload for the idempotent default-user upsert.
type EnsureUserRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

// UpdateUserRoleRequest defines the role patch applied by an administrative action.
type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required,role"`
}

// PromoteUserRequest defines the payload for the member-promotion upsert.
// AgreementAcceptedDate defaults to the time of persistence when omitted.
type PromoteUserRequest struct {
	Email                 string     `json:"email" binding:"required,email"`
	Role                  string     `json:"role" binding:"required,role"`
	AgreementAcceptedDate *time.Time `json:"agreementAcceptedDate"`
}

// UserResponse is the user representation returned to clients.
type UserResponse struct {
	UserID                string     `json:"userID"`
	Email                 string     `json:"email"`
	Name                  string     `json:"name,omitempty"`
	Role                  string     `json:"role"`
	AgreementAcceptedDate *time.Time `json:"agreementAcceptedDate,omitempty"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToUserResponse converts a domain.User to a UserResponse DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:                u.UserID,
		Email:                 u.Email,
		Name:                  u.Name,
		Role:                  string(u.Role),
		AgreementAcceptedDate: u.AgreementAcceptedDate,
		CreatedAt:             u.CreatedAt,
		UpdatedAt:             u.UpdatedAt,
	}
}

// ToListUsersResponse converts a slice of domain.User to ListUsersResponse.
func ToListUsersResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i := range users {
		userResponses[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{Users: userResponses}
}
