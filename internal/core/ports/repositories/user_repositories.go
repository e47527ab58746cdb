package repositories

import (
	"context"
	"time"

	"github.com/sdbuildbox/building_management_app/internal/core/domain"
)

// UserReader defines read operations for directory records.
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a specific user by their email (the identity key).
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUsers retrieves a paginated list of users.
	FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
}

// UserWriter defines write operations for directory records.
type UserWriter interface {
	// SaveUser persists a new user. A duplicate email surfaces as
	// apperrors.ErrDuplicate via the unique index on users.email.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUserRole patches the role of an existing user by ID.
	UpdateUserRole(ctx context.Context, userID string, role domain.Role, updatedAt time.Time) error

	// PromoteUserByEmail sets the role and agreement-accepted date of an
	// existing user identified by email.
	PromoteUserByEmail(ctx context.Context, email string, role domain.Role, acceptedDate time.Time, updatedAt time.Time) error

	// DeleteUser removes a user record by ID.
	DeleteUser(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
