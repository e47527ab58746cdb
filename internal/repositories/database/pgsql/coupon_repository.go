package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sdbuildbox/building_management_app/internal/apperrors"
	"github.com/sdbuildbox/building_management_app/internal/core/domain"
	portsrepo "github.com/sdbuildbox/building_management_app/internal/core/ports/repositories"
	"github.com/sdbuildbox/building_management_app/internal/models"
)

type PgxCouponRepository struct {
	BaseRepository
}

func newPgxCouponRepository(pool *pgxpool.Pool) portsrepo.CouponRepositoryFacade {
	return &PgxCouponRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.CouponRepositoryFacade = (*PgxCouponRepository)(nil)

func toModelCoupon(d domain.Coupon) models.Coupon {
	return models.Coupon{
		CouponID:           d.CouponID,
		CouponCode:         d.CouponCode,
		DiscountPercentage: d.DiscountPercentage,
		CouponDescription:  d.CouponDescription,
		OwnerEmail:         d.OwnerEmail,
		AuditFields: models.AuditFields{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

func toDomainCoupon(m models.Coupon) domain.Coupon {
	return domain.Coupon{
		CouponID:           m.CouponID,
		CouponCode:         m.CouponCode,
		DiscountPercentage: m.DiscountPercentage,
		CouponDescription:  m.CouponDescription,
		OwnerEmail:         m.OwnerEmail,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

func (r *PgxCouponRepository) SaveCoupon(ctx context.Context, coupon domain.Coupon) error {
	m := toModelCoupon(coupon)
	query := `
        INSERT INTO coupons (coupon_id, coupon_code, discount_percentage, coupon_description, owner_email, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.CouponID,
		m.CouponCode,
		m.DiscountPercentage,
		m.CouponDescription,
		m.OwnerEmail,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save coupon: %w", err)
	}
	return nil
}

func (r *PgxCouponRepository) FindCouponByID(ctx context.Context, couponID string) (*domain.Coupon, error) {
	if err := validateID(couponID); err != nil {
		return nil, err
	}
	query := `
		SELECT coupon_id, coupon_code, discount_percentage, coupon_description, owner_email, created_at, updated_at
		FROM coupons
		WHERE coupon_id = $1;
	`
	var m models.Coupon
	err := r.Pool.QueryRow(ctx, query, couponID).Scan(
		&m.CouponID,
		&m.CouponCode,
		&m.DiscountPercentage,
		&m.CouponDescription,
		&m.OwnerEmail,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find coupon by ID %s: %w", couponID, err)
	}
	d := toDomainCoupon(m)
	return &d, nil
}

func (r *PgxCouponRepository) FindCoupons(ctx context.Context, limit int, offset int) ([]domain.Coupon, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
        SELECT coupon_id, coupon_code, discount_percentage, coupon_description, owner_email, created_at, updated_at
        FROM coupons
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2;
    `
	return r.queryCoupons(ctx, query, limit, offset)
}

func (r *PgxCouponRepository) FindCouponsByOwnerEmail(ctx context.Context, email string) ([]domain.Coupon, error) {
	query := `
        SELECT coupon_id, coupon_code, discount_percentage, coupon_description, owner_email, created_at, updated_at
        FROM coupons
        WHERE owner_email = $1
        ORDER BY created_at DESC;
    `
	return r.queryCoupons(ctx, query, email)
}

func (r *PgxCouponRepository) queryCoupons(ctx context.Context, query string, args ...any) ([]domain.Coupon, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query coupons: %w", err)
	}
	defer rows.Close()

	coupons := []domain.Coupon{}
	for rows.Next() {
		var m models.Coupon
		err := rows.Scan(
			&m.CouponID,
			&m.CouponCode,
			&m.DiscountPercentage,
			&m.CouponDescription,
			&m.OwnerEmail,
			&m.CreatedAt,
			&m.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan coupon row: %w", err)
		}
		coupons = append(coupons, toDomainCoupon(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating coupon rows: %w", rows.Err())
	}
	return coupons, nil
}

func (r *PgxCouponRepository) UpdateCoupon(ctx context.Context, coupon domain.Coupon) error {
	if err := validateID(coupon.CouponID); err != nil {
		return err
	}
	query := `
        UPDATE coupons
        SET coupon_code = $1, discount_percentage = $2, coupon_description = $3, updated_at = $4
        WHERE coupon_id = $5;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		coupon.CouponCode,
		coupon.DiscountPercentage,
		coupon.CouponDescription,
		coupon.UpdatedAt,
		coupon.CouponID,
	)
	if err != nil {
		return fmt.Errorf("failed to update coupon: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("coupon %s: %w", coupon.CouponID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxCouponRepository) DeleteCoupon(ctx context.Context, couponID string) error {
	if err := validateID(couponID); err != nil {
		return err
	}
	query := `DELETE FROM coupons WHERE coupon_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, couponID)
	if err != nil {
		return fmt.Errorf("failed to delete coupon: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("coupon %s: %w", couponID, apperrors.ErrNotFound)
	}
	return nil
}
