package services

import (
	"context"

	"github.com/sdbuildbox/building_management_app/internal/core/domain"
	"github.com/sdbuildbox/building_management_app/internal/dto"
)

// UserSvcFacade defines the directory-store service contract.
type UserSvcFacade interface {
	// CreateUser registers a new user. Returns apperrors.ErrDuplicate when a
	// user with the same email already exists.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// EnsureUser is the idempotent create-if-absent used by login and
	// credential issuance. The boolean is true when a record was created.
	EnsureUser(ctx context.Context, email string, name string) (*domain.User, bool, error)

	// GetUserByEmail fetches one user by the identity key.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUsers retrieves a paginated list of users.
	ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)

	// UpdateUserRole patches the role of an existing user by ID.
	UpdateUserRole(ctx context.Context, userID string, role domain.Role) error

	// PromoteToMember sets role and agreement-accepted date by email.
	PromoteToMember(ctx context.Context, req dto.PromoteUserRequest) error

	// DeleteUser removes a user record by ID.
	DeleteUser(ctx context.Context, userID string) error
}
