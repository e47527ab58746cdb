package repositories

import (
	"context"

	"github.com/sdbuildbox/building_management_app/internal/core/domain"
)

// PaymentRepositoryFacade defines the append-only payment ledger. Records are
// never updated or deleted once written.
type PaymentRepositoryFacade interface {
	SavePayment(ctx context.Context, payment domain.PaymentRecord) error
	FindPayments(ctx context.Context, limit int, offset int) ([]domain.PaymentRecord, error)
}
