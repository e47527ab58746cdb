package repositories

import (
	"context"
	"time"

	"github.com/sdbuildbox/building_management_app/internal/core/domain"
)

// ApartmentReader defines read operations for unit listings.
type ApartmentReader interface {
	// FindApartmentByID retrieves a specific apartment by its ID.
	FindApartmentByID(ctx context.Context, apartmentID string) (*domain.Apartment, error)

	// FindApartments retrieves a paginated list of apartments.
	FindApartments(ctx context.Context, limit int, offset int) ([]domain.Apartment, error)
}

// ApartmentWriter defines write operations for unit listings.
type ApartmentWriter interface {
	// SaveApartment persists a new apartment listing.
	SaveApartment(ctx context.Context, apartment domain.Apartment) error

	// UpdateBookingStatus patches the booking status of an existing apartment.
	// Returns apperrors.ErrNotFound if no row matched.
	UpdateBookingStatus(ctx context.Context, apartmentID string, status domain.BookingStatus, updatedAt time.Time) error
}

// ApartmentRepositoryFacade combines all apartment-related repository interfaces.
type ApartmentRepositoryFacade interface {
	ApartmentReader
	ApartmentWriter
}
