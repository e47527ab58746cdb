package repositories

import (
	"context"

	"github.com/sdbuildbox/building_management_app/internal/core/domain"
)

// AnnouncementRepositoryFacade defines the append-mostly announcement store.
type AnnouncementRepositoryFacade interface {
	SaveAnnouncement(ctx context.Context, announcement domain.Announcement) error
	FindAnnouncements(ctx context.Context, limit int, offset int) ([]domain.Announcement, error)
}
