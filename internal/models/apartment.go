package models

import "github.com/shopspring/decimal"

// Apartment is the database row for a unit listing.
type Apartment struct {
	ApartmentID   string          `db:"apartment_id"`
	ApartmentNo   string          `db:"apartment_no"`
	BlockName     string          `db:"block_name"`
	FloorNo       int             `db:"floor_no"`
	Rent          decimal.Decimal `db:"rent"`
	ImageURL      string          `db:"image_url"`
	BookingStatus string          `db:"booking_status"`
	AuditFields
}
