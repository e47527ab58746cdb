package services

import (
	"context"

	"github.com/sdbuildbox/building_management_app/internal/dto"
)

// TokenSvcFacade defines the credential issuer. Issuance ensures a directory
// record exists for the claimed email before signing, so every credential
// corresponds to a real user row. Revocation is cookie deletion only; there
// is no server-side blacklist.
type TokenSvcFacade interface {
	IssueToken(ctx context.Context, req dto.TokenRequest) (string, error)
}
