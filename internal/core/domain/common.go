package domain

import "time"

// AuditFields holds standard audit information for domain entities.
// UpdatedAt is stamped at the moment of persistence, not request receipt.
type AuditFields struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
