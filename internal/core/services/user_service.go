package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sdbuildbox/building_management_app/internal/apperrors"
	"github.com/sdbuildbox/building_management_app/internal/core/domain"
	portsrepo "github.com/sdbuildbox/building_management_app/internal/core/ports/repositories"
	portssvc "github.com/sdbuildbox/building_management_app/internal/core/ports/services"
	"github.com/sdbuildbox/building_management_app/internal/dto"
)

type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates the directory-store service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("user with email %s: %w", req.Email, apperrors.ErrDuplicate)
	}

	role := domain.RoleUser
	if req.Role != "" {
		role = domain.Role(req.Role)
	}

	now := time.Now()
	user := domain.User{
		UserID: uuid.NewString(),
		Email:  req.Email,
		Name:   req.Name,
		Role:   role,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// EnsureUser is the idempotent create-if-absent used by login and credential
// issuance. When a concurrent insert wins the race, the unique index turns
// our insert into ErrDuplicate and the existing record is returned instead.
func (s *userService) EnsureUser(ctx context.Context, email string, name string) (*domain.User, bool, error) {
	existing, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to check for existing user: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID: uuid.NewString(),
		Email:  email,
		Name:   name,
		Role:   domain.RoleUser,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			winner, findErr := s.userRepo.FindUserByEmail(ctx, email)
			if findErr != nil {
				return nil, false, fmt.Errorf("failed to fetch user after duplicate insert: %w", findErr)
			}
			return winner, false, nil
		}
		return nil, false, fmt.Errorf("failed to ensure user: %w", err)
	}
	return &user, true, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	users, err := s.userRepo.FindUsers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userService) UpdateUserRole(ctx context.Context, userID string, role domain.Role) error {
	if !role.IsValid() {
		return fmt.Errorf("unknown role %q: %w", role, apperrors.ErrValidation)
	}
	if err := s.userRepo.UpdateUserRole(ctx, userID, role, time.Now()); err != nil {
		return fmt.Errorf("failed to update user role: %w", err)
	}
	return nil
}

func (s *userService) PromoteToMember(ctx context.Context, req dto.PromoteUserRequest) error {
	role := domain.Role(req.Role)
	if !role.IsValid() {
		return fmt.Errorf("unknown role %q: %w", req.Role, apperrors.ErrValidation)
	}

	now := time.Now()
	acceptedDate := now
	if req.AgreementAcceptedDate != nil {
		acceptedDate = *req.AgreementAcceptedDate
	}

	if err := s.userRepo.PromoteUserByEmail(ctx, req.Email, role, acceptedDate, now); err != nil {
		return fmt.Errorf("failed to promote user: %w", err)
	}
	return nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
