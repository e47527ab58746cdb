package dto

import (
	"time"

	"github.com/sdbuildbox/building_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAgreementRequest defines the payload for requesting an apartment.
// Field names mirror the wire format the web client already sends.
type CreateAgreementRequest struct {
	UserEmail   string `json:"user_email" binding:"required,email"`
	ApartmentID string `json:"apartmentId" binding:"required,uuid"`
}

// UpdateAgreementRequest defines the status/bill-status patch driven by the
// membership workflow.
type UpdateAgreementRequest struct {
	Status     string `json:"status" binding:"required,agreementstatus"`
	BillStatus string `json:"billStatus" binding:"required,billstatus"`
}

// AgreementResponse is the agreement representation returned to clients.
type AgreementResponse struct {
	AgreementID string          `json:"agreementID"`
	UserEmail   string          `json:"user_email"`
	ApartmentID string          `json:"apartmentId"`
	BlockName   string          `json:"blockName"`
	FloorNo     int             `json:"floorNo"`
	ApartmentNo string          `json:"apartmentNo"`
	Rent        decimal.Decimal `json:"rent"`
	Status      string          `json:"status"`
	BillStatus  string          `json:"billStatus"`
	RequestDate time.Time       `json:"requestDate"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ListAgreementsResponse wraps the list of agreements.
type ListAgreementsResponse struct {
	Agreements []AgreementResponse `json:"agreements"`
}

// ToAgreementResponse converts a domain.Agreement to an AgreementResponse DTO.
func ToAgreementResponse(a *domain.Agreement) AgreementResponse {
	return AgreementResponse{
		AgreementID: a.AgreementID,
		UserEmail:   a.UserEmail,
		ApartmentID: a.ApartmentID,
		BlockName:   a.BlockName,
		FloorNo:     a.FloorNo,
		ApartmentNo: a.ApartmentNo,
		Rent:        a.Rent,
		Status:      string(a.Status),
		BillStatus:  string(a.BillStatus),
		RequestDate: a.RequestDate,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// ToListAgreementsResponse converts a slice of domain.Agreement to ListAgreementsResponse.
func ToListAgreementsResponse(agreements []domain.Agreement) ListAgreementsResponse {
	responses := make([]AgreementResponse, len(agreements))
	for i := range agreements {
		responses[i] = ToAgreementResponse(&agreements[i])
	}
	return ListAgreementsResponse{Agreements: responses}
}
