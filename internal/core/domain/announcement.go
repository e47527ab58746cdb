package domain

import "time"

// Announcement is an append-mostly notice shown to all tenants.
type Announcement struct {
	AnnouncementID string    `json:"announcementID"` // Primary Key (UUID)
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Date           time.Time `json:"date"` // server-stamped at persistence
	CreatedAt      time.Time `json:"createdAt"`
}
