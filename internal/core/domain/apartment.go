package domain

import "github.com/shopspring/decimal"

// BookingStatus is the occupancy state of an apartment listing.
type BookingStatus string

const (
	BookingAvailable BookingStatus = "available"
	BookingBooked    BookingStatus = "booked"
)

// IsValid reports whether s is one of the known booking statuses.
func (s BookingStatus) IsValid() bool {
	return s == BookingAvailable || s == BookingBooked
}

// Apartment represents a unit listing.
type Apartment struct {
	ApartmentID   string          `json:"apartmentID"` // Primary Key (UUID)
	ApartmentNo   string          `json:"apartmentNo"`
	BlockName     string          `json:"blockName"`
	FloorNo       int             `json:"floorNo"`
	Rent          decimal.Decimal `json:"rent"`
	ImageURL      string          `json:"imageURL,omitempty"`
	BookingStatus BookingStatus   `json:"bookingStatus"`
	AuditFields
}
