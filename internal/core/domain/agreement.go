package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AgreementStatus is the acceptance state of a rental agreement.
type AgreementStatus string

const (
	AgreementPending  AgreementStatus = "pending"
	AgreementAccepted AgreementStatus = "accepted"
	AgreementRejected AgreementStatus = "rejected"
)

// IsValid reports whether s is one of the known agreement statuses.
func (s AgreementStatus) IsValid() bool {
	switch s {
	case AgreementPending, AgreementAccepted, AgreementRejected:
		return true
	}
	return false
}

// CanTransitionTo reports whether an agreement in status s may move to next.
// Pending agreements may be accepted or rejected. Accepted and rejected are
// terminal; a same-status "transition" is allowed so the billing sub-state
// can change without touching the acceptance state.
func (s AgreementStatus) CanTransitionTo(next AgreementStatus) bool {
	if s == next {
		return true
	}
	return s == AgreementPending && (next == AgreementAccepted || next == AgreementRejected)
}

// BillStatus is the billing sub-state of an accepted agreement.
type BillStatus string

const (
	BillDue  BillStatus = "due"
	BillPaid BillStatus = "paid"
)

// IsValid reports whether b is one of the known bill statuses.
func (b BillStatus) IsValid() bool {
	return b == BillDue || b == BillPaid
}

// Agreement links one user to one apartment, carrying an acceptance status
// and a billing status. The apartment descriptor fields are snapshotted at
// request time so the agreement stays meaningful history once resolved.
type Agreement struct {
	AgreementID string          `json:"agreementID"` // Primary Key (UUID)
	UserEmail   string          `json:"userEmail"`
	ApartmentID string          `json:"apartmentID"` // FK -> Apartment.apartmentID
	BlockName   string          `json:"blockName"`
	FloorNo     int             `json:"floorNo"`
	ApartmentNo string          `json:"apartmentNo"`
	Rent        decimal.Decimal `json:"rent"`
	Status      AgreementStatus `json:"status"`
	BillStatus  BillStatus      `json:"billStatus"`
	RequestDate time.Time       `json:"requestDate"`
	AuditFields
}

// IsActive reports whether the agreement currently claims its apartment.
// Rejected agreements release the unit; pending and accepted ones hold it.
func (a Agreement) IsActive() bool {
	return a.Status == AgreementPending || a.Status == AgreementAccepted
}
