package services

import (
	"context"
	"fmt"

	portssvc "github.com/sdbuildbox/building_management_app/internal/core/ports/services"
	"github.com/sdbuildbox/building_management_app/internal/dto"
	"github.com/sdbuildbox/building_management_app/internal/platform/config"
	"github.com/sdbuildbox/building_management_app/internal/utils"
)

type tokenService struct {
	cfg     *config.Config
	userSvc portssvc.UserSvcFacade
}

// NewTokenService creates the credential issuer.
func NewTokenService(cfg *config.Config, userSvc portssvc.UserSvcFacade) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg, userSvc: userSvc}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// IssueToken ensures a directory record exists for the claimed email, then
// signs a credential whose subject is that email. First login therefore
// registers the user as a side effect.
func (s *tokenService) IssueToken(ctx context.Context, req dto.TokenRequest) (string, error) {
	if _, _, err := s.userSvc.EnsureUser(ctx, req.Email, req.Name); err != nil {
		return "", fmt.Errorf("failed to ensure user before issuing token: %w", err)
	}

	token, err := utils.GenerateJWT(req.Email, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}
