package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sdbuildbox/building_management_app/internal/apperrors"
	"github.com/sdbuildbox/building_management_app/internal/core/domain"
	portsrepo "github.com/sdbuildbox/building_management_app/internal/core/ports/repositories"
	"github.com/sdbuildbox/building_management_app/internal/models"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func toModelUser(d domain.User) models.User {
	return models.User{
		UserID:                d.UserID,
		Email:                 d.Email,
		Name:                  d.Name,
		Role:                  string(d.Role),
		AgreementAcceptedDate: d.AgreementAcceptedDate,
		AuditFields: models.AuditFields{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

func toDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:                m.UserID,
		Email:                 m.Email,
		Name:                  m.Name,
		Role:                  domain.Role(m.Role),
		AgreementAcceptedDate: m.AgreementAcceptedDate,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	modelUser := toModelUser(user)
	query := `
        INSERT INTO users (user_id, email, name, role, agreement_accepted_date, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.Pool.Exec(ctx, query,
		modelUser.UserID,
		modelUser.Email,
		modelUser.Name,
		modelUser.Role,
		modelUser.AgreementAcceptedDate,
		modelUser.CreatedAt,
		modelUser.UpdatedAt,
	)
	if err != nil {
		// The unique index on email backstops the read-then-insert race.
		if isUniqueViolation(err) {
			return fmt.Errorf("user with email %s: %w", user.Email, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if err := validateID(userID); err != nil {
		return nil, err
	}
	query := `
		SELECT user_id, email, name, role, agreement_accepted_date, created_at, updated_at
		FROM users
		WHERE user_id = $1;
	`
	return r.scanOneUser(ctx, query, userID)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT user_id, email, name, role, agreement_accepted_date, created_at, updated_at
		FROM users
		WHERE email = $1;
	`
	return r.scanOneUser(ctx, query, email)
}

func (r *PgxUserRepository) scanOneUser(ctx context.Context, query string, arg any) (*domain.User, error) {
	var modelUser models.User
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&modelUser.UserID,
		&modelUser.Email,
		&modelUser.Name,
		&modelUser.Role,
		&modelUser.AgreementAcceptedDate,
		&modelUser.CreatedAt,
		&modelUser.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	domainUser := toDomainUser(modelUser)
	return &domainUser, nil
}

func (r *PgxUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT user_id, email, name, role, agreement_accepted_date, created_at, updated_at
        FROM users
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var modelUser models.User
		err := rows.Scan(
			&modelUser.UserID,
			&modelUser.Email,
			&modelUser.Name,
			&modelUser.Role,
			&modelUser.AgreementAcceptedDate,
			&modelUser.CreatedAt,
			&modelUser.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, toDomainUser(modelUser))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", rows.Err())
	}

	return users, nil
}

func (r *PgxUserRepository) UpdateUserRole(ctx context.Context, userID string, role domain.Role, updatedAt time.Time) error {
	if err := validateID(userID); err != nil {
		return err
	}
	query := `
        UPDATE users
        SET role = $1, updated_at = $2
        WHERE user_id = $3;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, string(role), updatedAt, userID)
	if err != nil {
		return fmt.Errorf("failed to update user role: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) PromoteUserByEmail(ctx context.Context, email string, role domain.Role, acceptedDate time.Time, updatedAt time.Time) error {
	query := `
        UPDATE users
        SET role = $1, agreement_accepted_date = $2, updated_at = $3
        WHERE email = $4;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, string(role), acceptedDate, updatedAt, email)
	if err != nil {
		return fmt.Errorf("failed to promote user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user with email %s: %w", email, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) DeleteUser(ctx context.Context, userID string) error {
	if err := validateID(userID); err != nil {
		return err
	}
	query := `DELETE FROM users WHERE user_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}
	return nil
}
