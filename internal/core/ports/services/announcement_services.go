package services

import (
	"context"

	"github.com/sdbuildbox/building_management_app/internal/core/domain"
	"github.com/sdbuildbox/building_management_app/internal/dto"
)

// AnnouncementSvcFacade defines the announcement service contract.
type AnnouncementSvcFacade interface {
	CreateAnnouncement(ctx context.Context, req dto.CreateAnnouncementRequest) (*domain.Announcement, error)
	ListAnnouncements(ctx context.Context, limit int, offset int) ([]domain.Announcement, error)
}
