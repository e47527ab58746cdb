package services

import (
	"context"

	"github.com/sdbuildbox/building_management_app/internal/core/domain"
	"github.com/sdbuildbox/building_management_app/internal/dto"
)

// ApartmentSvcFacade defines the listing-store service contract.
type ApartmentSvcFacade interface {
	CreateApartment(ctx context.Context, req dto.CreateApartmentRequest) (*domain.Apartment, error)
	ListApartments(ctx context.Context, limit int, offset int) ([]domain.Apartment, error)
	GetApartmentByID(ctx context.Context, apartmentID string) (*domain.Apartment, error)

	// UpdateBookingStatus patches the booking status of an existing listing.
	UpdateBookingStatus(ctx context.Context, apartmentID string, status domain.BookingStatus) error
}
