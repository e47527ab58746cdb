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

type PgxApartmentRepository struct {
	BaseRepository
}

func newPgxApartmentRepository(pool *pgxpool.Pool) portsrepo.ApartmentRepositoryFacade {
	return &PgxApartmentRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ApartmentRepositoryFacade = (*PgxApartmentRepository)(nil)

func toModelApartment(d domain.Apartment) models.Apartment {
	return models.Apartment{
		ApartmentID:   d.ApartmentID,
		ApartmentNo:   d.ApartmentNo,
		BlockName:     d.BlockName,
		FloorNo:       d.FloorNo,
		Rent:          d.Rent,
		ImageURL:      d.ImageURL,
		BookingStatus: string(d.BookingStatus),
		AuditFields: models.AuditFields{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

func toDomainApartment(m models.Apartment) domain.Apartment {
	return domain.Apartment{
		ApartmentID:   m.ApartmentID,
		ApartmentNo:   m.ApartmentNo,
		BlockName:     m.BlockName,
		FloorNo:       m.FloorNo,
		Rent:          m.Rent,
		ImageURL:      m.ImageURL,
		BookingStatus: domain.BookingStatus(m.BookingStatus),
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

func (r *PgxApartmentRepository) SaveApartment(ctx context.Context, apartment domain.Apartment) error {
	m := toModelApartment(apartment)
	query := `
        INSERT INTO apartments (apartment_id, apartment_no, block_name, floor_no, rent, image_url, booking_status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.ApartmentID,
		m.ApartmentNo,
		m.BlockName,
		m.FloorNo,
		m.Rent,
		m.ImageURL,
		m.BookingStatus,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save apartment: %w", err)
	}
	return nil
}

func (r *PgxApartmentRepository) FindApartmentByID(ctx context.Context, apartmentID string) (*domain.Apartment, error) {
	if err := validateID(apartmentID); err != nil {
		return nil, err
	}
	query := `
		SELECT apartment_id, apartment_no, block_name, floor_no, rent, image_url, booking_status, created_at, updated_at
		FROM apartments
		WHERE apartment_id = $1;
	`
	var m models.Apartment
	err := r.Pool.QueryRow(ctx, query, apartmentID).Scan(
		&m.ApartmentID,
		&m.ApartmentNo,
		&m.BlockName,
		&m.FloorNo,
		&m.Rent,
		&m.ImageURL,
		&m.BookingStatus,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find apartment by ID %s: %w", apartmentID, err)
	}
	d := toDomainApartment(m)
	return &d, nil
}

func (r *PgxApartmentRepository) FindApartments(ctx context.Context, limit int, offset int) ([]domain.Apartment, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT apartment_id, apartment_no, block_name, floor_no, rent, image_url, booking_status, created_at, updated_at
        FROM apartments
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query apartments: %w", err)
	}
	defer rows.Close()

	apartments := []domain.Apartment{}
	for rows.Next() {
		var m models.Apartment
		err := rows.Scan(
			&m.ApartmentID,
			&m.ApartmentNo,
			&m.BlockName,
			&m.FloorNo,
			&m.Rent,
			&m.ImageURL,
			&m.BookingStatus,
			&m.CreatedAt,
			&m.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan apartment row: %w", err)
		}
		apartments = append(apartments, toDomainApartment(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating apartment rows: %w", rows.Err())
	}

	return apartments, nil
}

func (r *PgxApartmentRepository) UpdateBookingStatus(ctx context.Context, apartmentID string, status domain.BookingStatus, updatedAt time.Time) error {
	if err := validateID(apartmentID); err != nil {
		return err
	}
	query := `
        UPDATE apartments
        SET booking_status = $1, updated_at = $2
        WHERE apartment_id = $3;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, string(status), updatedAt, apartmentID)
	if err != nil {
		return fmt.Errorf("failed to update apartment booking status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("apartment %s: %w", apartmentID, apperrors.ErrNotFound)
	}
	return nil
}
