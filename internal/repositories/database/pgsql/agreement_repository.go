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

type PgxAgreementRepository struct {
	BaseRepository
}

func newPgxAgreementRepository(pool *pgxpool.Pool) portsrepo.AgreementRepositoryFacade {
	return &PgxAgreementRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AgreementRepositoryFacade = (*PgxAgreementRepository)(nil)

func toModelAgreement(d domain.Agreement) models.Agreement {
	return models.Agreement{
		AgreementID: d.AgreementID,
		UserEmail:   d.UserEmail,
		ApartmentID: d.ApartmentID,
		BlockName:   d.BlockName,
		FloorNo:     d.FloorNo,
		ApartmentNo: d.ApartmentNo,
		Rent:        d.Rent,
		Status:      string(d.Status),
		BillStatus:  string(d.BillStatus),
		RequestDate: d.RequestDate,
		AuditFields: models.AuditFields{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

func toDomainAgreement(m models.Agreement) domain.Agreement {
	return domain.Agreement{
		AgreementID: m.AgreementID,
		UserEmail:   m.UserEmail,
		ApartmentID: m.ApartmentID,
		BlockName:   m.BlockName,
		FloorNo:     m.FloorNo,
		ApartmentNo: m.ApartmentNo,
		Rent:        m.Rent,
		Status:      domain.AgreementStatus(m.Status),
		BillStatus:  domain.BillStatus(m.BillStatus),
		RequestDate: m.RequestDate,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

const agreementColumns = `agreement_id, user_email, apartment_id, block_name, floor_no, apartment_no, rent, status, bill_status, request_date, created_at, updated_at`

func scanAgreement(row pgx.Row) (models.Agreement, error) {
	var m models.Agreement
	err := row.Scan(
		&m.AgreementID,
		&m.UserEmail,
		&m.ApartmentID,
		&m.BlockName,
		&m.FloorNo,
		&m.ApartmentNo,
		&m.Rent,
		&m.Status,
		&m.BillStatus,
		&m.RequestDate,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func (r *PgxAgreementRepository) SaveAgreement(ctx context.Context, agreement domain.Agreement) error {
	m := toModelAgreement(agreement)
	query := `
        INSERT INTO agreements (` + agreementColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.AgreementID,
		m.UserEmail,
		m.ApartmentID,
		m.BlockName,
		m.FloorNo,
		m.ApartmentNo,
		m.Rent,
		m.Status,
		m.BillStatus,
		m.RequestDate,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		// The partial unique index on apartment_id rejects a second active
		// agreement for the same apartment.
		if isUniqueViolation(err) {
			return fmt.Errorf("active agreement for apartment %s: %w", agreement.ApartmentID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save agreement: %w", err)
	}
	return nil
}

func (r *PgxAgreementRepository) FindAgreementByID(ctx context.Context, agreementID string) (*domain.Agreement, error) {
	if err := validateID(agreementID); err != nil {
		return nil, err
	}
	query := `SELECT ` + agreementColumns + ` FROM agreements WHERE agreement_id = $1;`
	m, err := scanAgreement(r.Pool.QueryRow(ctx, query, agreementID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find agreement by ID %s: %w", agreementID, err)
	}
	d := toDomainAgreement(m)
	return &d, nil
}

func (r *PgxAgreementRepository) FindAgreements(ctx context.Context, limit int, offset int) ([]domain.Agreement, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
        SELECT ` + agreementColumns + `
        FROM agreements
        ORDER BY request_date DESC
        LIMIT $1 OFFSET $2;
    `
	return r.queryAgreements(ctx, query, limit, offset)
}

func (r *PgxAgreementRepository) FindAgreementsByUserEmail(ctx context.Context, email string) ([]domain.Agreement, error) {
	query := `
        SELECT ` + agreementColumns + `
        FROM agreements
        WHERE user_email = $1
        ORDER BY request_date DESC;
    `
	return r.queryAgreements(ctx, query, email)
}

func (r *PgxAgreementRepository) queryAgreements(ctx context.Context, query string, args ...any) ([]domain.Agreement, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query agreements: %w", err)
	}
	defer rows.Close()

	agreements := []domain.Agreement{}
	for rows.Next() {
		m, err := scanAgreement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan agreement row: %w", err)
		}
		agreements = append(agreements, toDomainAgreement(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating agreement rows: %w", rows.Err())
	}
	return agreements, nil
}

func (r *PgxAgreementRepository) UpdateAgreementStatus(ctx context.Context, agreementID string, status domain.AgreementStatus, billStatus domain.BillStatus, updatedAt time.Time) error {
	if err := validateID(agreementID); err != nil {
		return err
	}
	query := `
        UPDATE agreements
        SET status = $1, bill_status = $2, updated_at = $3
        WHERE agreement_id = $4;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, string(status), string(billStatus), updatedAt, agreementID)
	if err != nil {
		return fmt.Errorf("failed to update agreement status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("agreement %s: %w", agreementID, apperrors.ErrNotFound)
	}
	return nil
}

// AcceptAgreement runs the coupled accept writes in one transaction so the
// agreement, the apartment and the user can never disagree about the
// membership state after a crash mid-sequence.
func (r *PgxAgreementRepository) AcceptAgreement(ctx context.Context, agreement domain.Agreement, billStatus domain.BillStatus, acceptedAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = r.Rollback(ctx, tx)
	}()

	cmdTag, err := tx.Exec(ctx, `
        UPDATE agreements
        SET status = $1, bill_status = $2, updated_at = $3
        WHERE agreement_id = $4;
    `, string(domain.AgreementAccepted), string(billStatus), acceptedAt, agreement.AgreementID)
	if err != nil {
		return fmt.Errorf("failed to accept agreement: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("agreement %s: %w", agreement.AgreementID, apperrors.ErrNotFound)
	}

	cmdTag, err = tx.Exec(ctx, `
        UPDATE apartments
        SET booking_status = $1, updated_at = $2
        WHERE apartment_id = $3;
    `, string(domain.BookingBooked), acceptedAt, agreement.ApartmentID)
	if err != nil {
		return fmt.Errorf("failed to book apartment for agreement: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("apartment %s: %w", agreement.ApartmentID, apperrors.ErrNotFound)
	}

	cmdTag, err = tx.Exec(ctx, `
        UPDATE users
        SET role = $1, agreement_accepted_date = $2, updated_at = $3
        WHERE email = $4;
    `, string(domain.RoleMember), acceptedAt, acceptedAt, agreement.UserEmail)
	if err != nil {
		return fmt.Errorf("failed to promote user for agreement: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user with email %s: %w", agreement.UserEmail, apperrors.ErrNotFound)
	}

	return r.Commit(ctx, tx)
}
