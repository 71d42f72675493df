package postgres

import (
	"context"
	"database/sql"

	"weeklyslots/internal/domain"
)

type organizerRepository struct {
	DB *sql.DB
}

func NewOrganizerRepository(db *sql.DB) domain.OrganizerRepository {
	return &organizerRepository{
		DB: db,
	}
}

func (r *organizerRepository) IsOrganizer(ctx context.Context, communityID, userID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM community_organizers
			WHERE community_id = $1 AND user_id = $2
		)
	`
	var ok bool
	if err := r.DB.QueryRowContext(ctx, query, communityID, userID).Scan(&ok); err != nil {
		return false, mapError("check organizer", err)
	}
	return ok, nil
}
