package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentRecord is one entry in the append-only payment ledger. The service
// records payment facts; it does not talk to a payment processor.
type PaymentRecord struct {
	PaymentID   string          `json:"paymentID"` // Primary Key (UUID)
	UserEmail   string          `json:"userEmail"`
	ApartmentNo string          `json:"apartmentNo"`
	Month       string          `json:"month"`
	Amount      decimal.Decimal `json:"amount"`
	CouponCode  *string         `json:"couponCode,omitempty"`
	Date        time.Time       `json:"date"` // server-stamped at persistence
	CreatedAt   time.Time       `json:"createdAt"`
}
