package models

import "time"

// Announcement is the database row for a tenant-facing notice.
type Announcement struct {
	AnnouncementID string    `db:"announcement_id"`
	Title          string    `db:"title"`
	Description    string    `db:"description"`
	Date           time.Time `db:"date"`
	CreatedAt      time.Time `db:"created_at"`
}
