package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sdbuildbox/building_management_app/internal/apperrors"
	"github.com/sdbuildbox/building_management_app/internal/core/domain"
	portsrepo "github.com/sdbuildbox/building_management_app/internal/core/ports/repositories"
	portssvc "github.com/sdbuildbox/building_management_app/internal/core/ports/services"
	"github.com/sdbuildbox/building_management_app/internal/dto"
)

type agreementService struct {
	agreementRepo portsrepo.AgreementRepositoryFacade
	apartmentRepo portsrepo.ApartmentRepositoryFacade
}

// NewAgreementService creates the agreement and membership-workflow service.
func NewAgreementService(agreementRepo portsrepo.AgreementRepositoryFacade, apartmentRepo portsrepo.ApartmentRepositoryFacade) portssvc.AgreementSvcFacade {
	return &agreementService{
		agreementRepo: agreementRepo,
		apartmentRepo: apartmentRepo,
	}
}

var _ portssvc.AgreementSvcFacade = (*agreementService)(nil)

// CreateAgreement snapshots the apartment's listing fields into the new
// agreement, so later price changes do not move an already-agreed rent.
func (s *agreementService) CreateAgreement(ctx context.Context, req dto.CreateAgreementRequest) (*domain.Agreement, error) {
	apartment, err := s.agreementApartment(ctx, req.ApartmentID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	agreement := domain.Agreement{
		AgreementID: uuid.NewString(),
		UserEmail:   req.UserEmail,
		ApartmentID: apartment.ApartmentID,
		BlockName:   apartment.BlockName,
		FloorNo:     apartment.FloorNo,
		ApartmentNo: apartment.ApartmentNo,
		Rent:        apartment.Rent,
		Status:      domain.AgreementPending,
		BillStatus:  domain.BillDue,
		RequestDate: now,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.agreementRepo.SaveAgreement(ctx, agreement); err != nil {
		return nil, fmt.Errorf("failed to create agreement: %w", err)
	}
	return &agreement, nil
}

func (s *agreementService) agreementApartment(ctx context.Context, apartmentID string) (*domain.Apartment, error) {
	apartment, err := s.apartmentRepo.FindApartmentByID(ctx, apartmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch apartment for agreement: %w", err)
	}
	return apartment, nil
}

func (s *agreementService) ListAgreements(ctx context.Context, limit int, offset int) ([]domain.Agreement, error) {
	agreements, err := s.agreementRepo.FindAgreements(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list agreements: %w", err)
	}
	return agreements, nil
}

func (s *agreementService) GetAgreementByID(ctx context.Context, agreementID string) (*domain.Agreement, error) {
	agreement, err := s.agreementRepo.FindAgreementByID(ctx, agreementID)
	if err != nil {
		return nil, fmt.Errorf("failed to get agreement: %w", err)
	}
	return agreement, nil
}

func (s *agreementService) ListAgreementsByUserEmail(ctx context.Context, email string) ([]domain.Agreement, error) {
	agreements, err := s.agreementRepo.FindAgreementsByUserEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list agreements for user: %w", err)
	}
	return agreements, nil
}

// UpdateAgreementStatus drives the pending -> accepted|rejected state machine.
// Moving into accepted runs the coupled writes in one transaction: agreement
// accepted, apartment booked, owning user promoted to member. Any other
// transition is a plain status patch. Rejection deliberately leaves the
// apartment and user untouched.
func (s *agreementService) UpdateAgreementStatus(ctx context.Context, agreementID string, status domain.AgreementStatus, billStatus domain.BillStatus) (*domain.Agreement, error) {
	agreement, err := s.agreementRepo.FindAgreementByID(ctx, agreementID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch agreement for update: %w", err)
	}

	if !agreement.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("agreement %s cannot move from %s to %s: %w",
			agreementID, agreement.Status, status, apperrors.ErrValidation)
	}

	now := time.Now()
	if status == domain.AgreementAccepted && agreement.Status != domain.AgreementAccepted {
		if err := s.agreementRepo.AcceptAgreement(ctx, *agreement, billStatus, now); err != nil {
			return nil, fmt.Errorf("failed to accept agreement: %w", err)
		}
	} else {
		if err := s.agreementRepo.UpdateAgreementStatus(ctx, agreementID, status, billStatus, now); err != nil {
			return nil, fmt.Errorf("failed to update agreement status: %w", err)
		}
	}

	agreement.Status = status
	agreement.BillStatus = billStatus
	agreement.UpdatedAt = now
	return agreement, nil
}
