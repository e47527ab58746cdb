package dto

import (
	"time"

	"github.com/sdbuildbox/building_management_app/internal/core/domain"
)

// CreateAnnouncementRequest defines the payload for posting an announcement.
type CreateAnnouncementRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// AnnouncementResponse is the announcement representation returned to clients.
type AnnouncementResponse struct {
	AnnouncementID string    `json:"announcementID"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Date           time.Time `json:"date"`
}

// ListAnnouncementsResponse wraps the list of announcements.
type ListAnnouncementsResponse struct {
	Announcements []AnnouncementResponse `json:"announcements"`
}

// ToAnnouncementResponse converts a domain.Announcement to an AnnouncementResponse DTO.
func ToAnnouncementResponse(a *domain.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		AnnouncementID: a.AnnouncementID,
		Title:          a.Title,
		Description:    a.Description,
		Date:           a.Date,
	}
}

// ToListAnnouncementsResponse converts a slice of domain.Announcement to ListAnnouncementsResponse.
func ToListAnnouncementsResponse(announcements []domain.Announcement) ListAnnouncementsResponse {
	responses := make([]AnnouncementResponse, len(announcements))
	for i := range announcements {
		responses[i] = ToAnnouncementResponse(&announcements[i])
	}
	return ListAnnouncementsResponse{Announcements: responses}
}
