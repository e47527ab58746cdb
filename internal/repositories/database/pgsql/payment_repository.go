package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sdbuildbox/building_management_app/internal/core/domain"
	portsrepo "github.com/sdbuildbox/building_management_app/internal/core/ports/repositories"
	"github.com/sdbuildbox/building_management_app/internal/models"
)

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

func toDomainPayment(m models.PaymentRecord) domain.PaymentRecord {
	return domain.PaymentRecord{
		PaymentID:   m.PaymentID,
		UserEmail:   m.UserEmail,
		ApartmentNo: m.ApartmentNo,
		Month:       m.Month,
		Amount:      m.Amount,
		CouponCode:  m.CouponCode,
		Date:        m.Date,
		CreatedAt:   m.CreatedAt,
	}
}

func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.PaymentRecord) error {
	query := `
        INSERT INTO payment_history (payment_id, user_email, apartment_no, month, amount, coupon_code, date, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.Pool.Exec(ctx, query,
		payment.PaymentID,
		payment.UserEmail,
		payment.ApartmentNo,
		payment.Month,
		payment.Amount,
		payment.CouponCode,
		payment.Date,
		payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save payment record: %w", err)
	}
	return nil
}

func (r *PgxPaymentRepository) FindPayments(ctx context.Context, limit int, offset int) ([]domain.PaymentRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
        SELECT payment_id, user_email, apartment_no, month, amount, coupon_code, date, created_at
        FROM payment_history
        ORDER BY date DESC
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment history: %w", err)
	}
	defer rows.Close()

	payments := []domain.PaymentRecord{}
	for rows.Next() {
		var m models.PaymentRecord
		err := rows.Scan(
			&m.PaymentID,
			&m.UserEmail,
			&m.ApartmentNo,
			&m.Month,
			&m.Amount,
			&m.CouponCode,
			&m.Date,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, toDomainPayment(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", rows.Err())
	}
	return payments, nil
}
