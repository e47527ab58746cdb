package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Agreement is the database row for a rental agreement.
type Agreement struct {
	AgreementID string          `db:"agreement_id"`
	UserEmail   string          `db:"user_email"`
	ApartmentID string          `db:"apartment_id"`
	BlockName   string          `db:"block_name"`
	FloorNo     int             `db:"floor_no"`
	ApartmentNo string          `db:"apartment_no"`
	Rent        decimal.Decimal `db:"rent"`
	Status      string          `db:"status"`
	BillStatus  string          `db:"bill_status"`
	RequestDate time.Time       `db:"request_date"`
	AuditFields
}
