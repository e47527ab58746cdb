package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sdbuildbox/building_management_app/internal/core/domain"
	portsrepo "github.com/sdbuildbox/building_management_app/internal/core/ports/repositories"
	portssvc "github.com/sdbuildbox/building_management_app/internal/core/ports/services"
	"github.com/sdbuildbox/building_management_app/internal/dto"
)

type announcementService struct {
	announcementRepo portsrepo.AnnouncementRepositoryFacade
}

// NewAnnouncementService creates the announcement service.
func NewAnnouncementService(announcementRepo portsrepo.AnnouncementRepositoryFacade) portssvc.AnnouncementSvcFacade {
	return &announcementService{announcementRepo: announcementRepo}
}

var _ portssvc.AnnouncementSvcFacade = (*announcementService)(nil)

func (s *announcementService) CreateAnnouncement(ctx context.Context, req dto.CreateAnnouncementRequest) (*domain.Announcement, error) {
	now := time.Now()
	announcement := domain.Announcement{
		AnnouncementID: uuid.NewString(),
		Title:          req.Title,
		Description:    req.Description,
		Date:           now,
		CreatedAt:      now,
	}

	if err := s.announcementRepo.SaveAnnouncement(ctx, announcement); err != nil {
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}
	return &announcement, nil
}

func (s *announcementService) ListAnnouncements(ctx context.Context, limit int, offset int) ([]domain.Announcement, error) {
	announcements, err := s.announcementRepo.FindAnnouncements(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	return announcements, nil
}
