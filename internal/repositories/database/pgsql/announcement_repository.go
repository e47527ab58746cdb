package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sdbuildbox/building_management_app/internal/core/domain"
	portsrepo "github.com/sdbuildbox/building_management_app/internal/core/ports/repositories"
	"github.com/sdbuildbox/building_management_app/internal/models"
)

type PgxAnnouncementRepository struct {
	BaseRepository
}

func newPgxAnnouncementRepository(pool *pgxpool.Pool) portsrepo.AnnouncementRepositoryFacade {
	return &PgxAnnouncementRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AnnouncementRepositoryFacade = (*PgxAnnouncementRepository)(nil)

func toDomainAnnouncement(m models.Announcement) domain.Announcement {
	return domain.Announcement{
		AnnouncementID: m.AnnouncementID,
		Title:          m.Title,
		Description:    m.Description,
		Date:           m.Date,
		CreatedAt:      m.CreatedAt,
	}
}

func (r *PgxAnnouncementRepository) SaveAnnouncement(ctx context.Context, announcement domain.Announcement) error {
	query := `
        INSERT INTO announcements (announcement_id, title, description, date, created_at)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err := r.Pool.Exec(ctx, query,
		announcement.AnnouncementID,
		announcement.Title,
		announcement.Description,
		announcement.Date,
		announcement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save announcement: %w", err)
	}
	return nil
}

func (r *PgxAnnouncementRepository) FindAnnouncements(ctx context.Context, limit int, offset int) ([]domain.Announcement, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
        SELECT announcement_id, title, description, date, created_at
        FROM announcements
        ORDER BY date DESC
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query announcements: %w", err)
	}
	defer rows.Close()

	announcements := []domain.Announcement{}
	for rows.Next() {
		var m models.Announcement
		err := rows.Scan(
			&m.AnnouncementID,
			&m.Title,
			&m.Description,
			&m.Date,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan announcement row: %w", err)
		}
		announcements = append(announcements, toDomainAnnouncement(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating announcement rows: %w", rows.Err())
	}
	return announcements, nil
}
