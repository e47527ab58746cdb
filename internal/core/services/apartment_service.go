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

type apartmentService struct {
	apartmentRepo portsrepo.ApartmentRepositoryFacade
}

// NewApartmentService creates the listing-store service.
func NewApartmentService(apartmentRepo portsrepo.ApartmentRepositoryFacade) portssvc.ApartmentSvcFacade {
	return &apartmentService{apartmentRepo: apartmentRepo}
}

var _ portssvc.ApartmentSvcFacade = (*apartmentService)(nil)

func (s *apartmentService) CreateApartment(ctx context.Context, req dto.CreateApartmentRequest) (*domain.Apartment, error) {
	now := time.Now()
	apartment := domain.Apartment{
		ApartmentID:   uuid.NewString(),
		ApartmentNo:   req.ApartmentNo,
		BlockName:     req.BlockName,
		FloorNo:       req.FloorNo,
		Rent:          req.Rent,
		ImageURL:      req.ImageURL,
		BookingStatus: domain.BookingAvailable,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.apartmentRepo.SaveApartment(ctx, apartment); err != nil {
		return nil, fmt.Errorf("failed to create apartment: %w", err)
	}
	return &apartment, nil
}

func (s *apartmentService) ListApartments(ctx context.Context, limit int, offset int) ([]domain.Apartment, error) {
	apartments, err := s.apartmentRepo.FindApartments(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list apartments: %w", err)
	}
	return apartments, nil
}

func (s *apartmentService) GetApartmentByID(ctx context.Context, apartmentID string) (*domain.Apartment, error) {
	apartment, err := s.apartmentRepo.FindApartmentByID(ctx, apartmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get apartment: %w", err)
	}
	return apartment, nil
}

func (s *apartmentService) UpdateBookingStatus(ctx context.Context, apartmentID string, status domain.BookingStatus) error {
	if err := s.apartmentRepo.UpdateBookingStatus(ctx, apartmentID, status, time.Now()); err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	return nil
}
