package repositories

import (
	"context"
	"time"

	"github.com/sdbuildbox/building_management_app/internal/core/domain"
)

// AgreementReader defines read operations for rental agreements.
type AgreementReader interface {
	// FindAgreementByID retrieves a specific agreement by its ID.
	FindAgreementByID(ctx context.Context, agreementID string) (*domain.Agreement, error)

	// FindAgreements retrieves a paginated list of agreements.
	FindAgreements(ctx context.Context, limit int, offset int) ([]domain.Agreement, error)

	// FindAgreementsByUserEmail retrieves all agreements owned by one user.
	FindAgreementsByUserEmail(ctx context.Context, email string) ([]domain.Agreement, error)
}

// AgreementWriter defines write operations for rental agreements.
type AgreementWriter interface {
	// SaveAgreement persists a new agreement. A second active agreement for
	// the same apartment surfaces as apperrors.ErrDuplicate via the partial
	// unique index on agreements(apartment_id).
	SaveAgreement(ctx context.Context, agreement domain.Agreement) error

	// UpdateAgreementStatus patches the status and bill status of an existing
	// agreement. Returns apperrors.ErrNotFound if no row matched; there is no
	// create-on-update.
	UpdateAgreementStatus(ctx context.Context, agreementID string, status domain.AgreementStatus, billStatus domain.BillStatus, updatedAt time.Time) error

	// AcceptAgreement performs the coupled accept writes in one transaction:
	// the agreement moves to accepted, the referenced apartment to booked,
	// and the owning user to member with the accepted date stamped.
	AcceptAgreement(ctx context.Context, agreement domain.Agreement, billStatus domain.BillStatus, acceptedAt time.Time) error
}

// AgreementRepositoryFacade combines all agreement-related repository interfaces.
type AgreementRepositoryFacade interface {
	AgreementReader
	AgreementWriter
}
