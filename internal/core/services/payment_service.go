package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sdbuildbox/building_management_app/internal/core/domain"
	portsrepo "github.com/sdbuildbox/building_management_app/internal/core/ports/repositories"
	portssvc "github.com/sdbuildbox/building_management_app/internal/core/ports/services"
	"github.com/sdbuildbox/building_management_app/internal/dto"
)

type paymentService struct {
	paymentRepo portsrepo.PaymentRepositoryFacade
}

// NewPaymentService creates the payment-ledger service.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade) portssvc.PaymentSvcFacade {
	return &paymentService{paymentRepo: paymentRepo}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// RecordPayment appends one payment fact. The payment date is stamped here,
// not taken from the caller, so the ledger order matches persistence order.
func (s *paymentService) RecordPayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.PaymentRecord, error) {
	now := time.Now()
	payment := domain.PaymentRecord{
		PaymentID:   uuid.NewString(),
		UserEmail:   req.UserEmail,
		ApartmentNo: req.ApartmentNo,
		Month:       req.Month,
		Amount:      req.Amount,
		CouponCode:  req.CouponCode,
		Date:        now,
		CreatedAt:   now,
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	return &payment, nil
}

func (s *paymentService) ListPayments(ctx context.Context, limit int, offset int) ([]domain.PaymentRecord, error) {
	payments, err := s.paymentRepo.FindPayments(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}
