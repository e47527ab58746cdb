package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentRecord is the database row for one payment ledger entry.
type PaymentRecord struct {
	PaymentID   string          `db:"payment_id"`
	UserEmail   string          `db:"user_email"`
	ApartmentNo string          `db:"apartment_no"`
	Month       string          `db:"month"`
	Amount      decimal.Decimal `db:"amount"`
	CouponCode  *string         `db:"coupon_code"`
	Date        time.Time       `db:"date"`
	CreatedAt   time.Time       `db:"created_at"`
}
