package services

import (
	"context"

	"github.com/sdbuildbox/building_management_app/internal/core/domain"
	"github.com/sdbuildbox/building_management_app/internal/dto"
)

// PaymentSvcFacade defines the payment-ledger service contract.
type PaymentSvcFacade interface {
	// RecordPayment appends one payment fact to the ledger, stamping the
	// payment date at persistence time.
	RecordPayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.PaymentRecord, error)
	ListPayments(ctx context.Context, limit int, offset int) ([]domain.PaymentRecord, error)
}
