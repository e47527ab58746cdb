package dto

import (
	"time"

	"github.com/sdbuildbox/building_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateApartmentRequest defines the payload for listing a new unit.
type CreateApartmentRequest struct {
	ApartmentNo string          `json:"apartmentNo" binding:"required"`
	BlockName   string          `json:"blockName" binding:"required"`
	FloorNo     int             `json:"floorNo"`
	Rent        decimal.Decimal `json:"rent" binding:"required"`
	ImageURL    string          `json:"imageURL"`
}

// UpdateApartmentRequest defines the booking-status patch.
type UpdateApartmentRequest struct {
	BookingStatus string `json:"bookingStatus" binding:"required,bookingstatus"`
}

// ApartmentResponse is the apartment representation returned to clients.
type ApartmentResponse struct {
	ApartmentID   string          `json:"apartmentID"`
	ApartmentNo   string          `json:"apartmentNo"`
	BlockName     string          `json:"blockName"`
	FloorNo       int             `json:"floorNo"`
	Rent          decimal.Decimal `json:"rent"`
	ImageURL      string          `json:"imageURL,omitempty"`
	BookingStatus string          `json:"bookingStatus"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ListApartmentsResponse wraps the list of apartments.
type ListApartmentsResponse struct {
	Apartments []ApartmentResponse `json:"apartments"`
}

// ToApartmentResponse converts a domain.Apartment to an ApartmentResponse DTO.
func ToApartmentResponse(a *domain.Apartment) ApartmentResponse {
	return ApartmentResponse{
		ApartmentID:   a.ApartmentID,
		ApartmentNo:   a.ApartmentNo,
		BlockName:     a.BlockName,
		FloorNo:       a.FloorNo,
		Rent:          a.Rent,
		ImageURL:      a.ImageURL,
		BookingStatus: string(a.BookingStatus),
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// ToListApartmentsResponse converts a slice of domain.Apartment to ListApartmentsResponse.
func ToListApartmentsResponse(apartments []domain.Apartment) ListApartmentsResponse {
	responses := make([]ApartmentResponse, len(apartments))
	for i := range apartments {
		responses[i] = ToApartmentResponse(&apartments[i])
	}
	return ListApartmentsResponse{Apartments: responses}
}
