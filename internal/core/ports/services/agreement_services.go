package services

import (
	"context"

	"github.com/sdbuildbox/building_management_app/internal/core/domain"
	"github.com/sdbuildbox/building_management_app/internal/dto"
)

// AgreementSvcFacade defines the agreement-store and membership-workflow
// service contract. UpdateAgreementStatus is the workflow core: accepting an
// agreement also books the apartment and promotes the owning user to member,
// in a single transaction.
type AgreementSvcFacade interface {
	CreateAgreement(ctx context.Context, req dto.CreateAgreementRequest) (*domain.Agreement, error)
	ListAgreements(ctx context.Context, limit int, offset int) ([]domain.Agreement, error)
	GetAgreementByID(ctx context.Context, agreementID string) (*domain.Agreement, error)
	ListAgreementsByUserEmail(ctx context.Context, email string) ([]domain.Agreement, error)

	// UpdateAgreementStatus drives the pending -> accepted|rejected state
	// machine and the due/paid billing sub-state. Returns the agreement as it
	// stands after the transition.
	UpdateAgreementStatus(ctx context.Context, agreementID string, status domain.AgreementStatus, billStatus domain.BillStatus) (*domain.Agreement, error)
}
