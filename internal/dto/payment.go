package dto

import (
	"time"

	"github.com/sdbuildbox/building_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest defines the payload for recording a payment fact.
// The date is stamped server-side at persistence, never taken from the caller.
type CreatePaymentRequest struct {
	UserEmail   string          `json:"user_email" binding:"required,email"`
	ApartmentNo string          `json:"apartmentNo"`
	Month       string          `json:"month" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	CouponCode  *string         `json:"couponCode"`
}

// PaymentResponse is the ledger entry representation returned to clients.
type PaymentResponse struct {
	PaymentID   string          `json:"paymentID"`
	UserEmail   string          `json:"user_email"`
	ApartmentNo string          `json:"apartmentNo,omitempty"`
	Month       string          `json:"month"`
	Amount      decimal.Decimal `json:"amount"`
	CouponCode  *string         `json:"couponCode,omitempty"`
	Date        time.Time       `json:"date"`
}

// ListPaymentsResponse wraps the list of payment records.
type ListPaymentsResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// ToPaymentResponse converts a domain.PaymentRecord to a PaymentResponse DTO.
func ToPaymentResponse(p *domain.PaymentRecord) PaymentResponse {
	return PaymentResponse{
		PaymentID:   p.PaymentID,
		UserEmail:   p.UserEmail,
		ApartmentNo: p.ApartmentNo,
		Month:       p.Month,
		Amount:      p.Amount,
		CouponCode:  p.CouponCode,
		Date:        p.Date,
	}
}

// ToListPaymentsResponse converts a slice of domain.PaymentRecord to ListPaymentsResponse.
func ToListPaymentsResponse(payments []domain.PaymentRecord) ListPaymentsResponse {
	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = ToPaymentResponse(&payments[i])
	}
	return ListPaymentsResponse{Payments: responses}
}
