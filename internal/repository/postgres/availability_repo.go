package postgres

import (
	"context"
	"database/sql"

	"weeklyslots/internal/domain"
)

// toggleAvailabilityQuery flips the (user, slot) pair in one statement. Both CTEs read the same
// snapshot, so the insert only runs when nothing was removed. A concurrent insert that wins the
// race makes ours a no-op through ON CONFLICT, and the pair counts as selected either way.
const toggleAvailabilityQuery = `
	WITH removed AS (
		DELETE FROM user_availability
		WHERE user_id = $1 AND slot_id = $2
		RETURNING slot_id
	), added AS (
		INSERT INTO user_availability (user_id, slot_id)
		SELECT $1, $2
		WHERE NOT EXISTS (SELECT 1 FROM removed)
		ON CONFLICT (user_id, slot_id) DO NOTHING
		RETURNING slot_id
	)
	SELECT NOT EXISTS (SELECT 1 FROM removed)
`

type availabilityRepository struct {
	DB *sql.DB
}

func NewAvailabilityRepository(db *sql.DB) domain.AvailabilityRepository {
	return &availabilityRepository{
		DB: db,
	}
}

func (r *availabilityRepository) ListSlotIDsByUserID(ctx context.Context, userID string) ([]string, error) {
	query := `
		SELECT slot_id
		FROM user_availability
		WHERE user_id = $1
		ORDER BY slot_id
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, mapError("list user availability", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, mapError("scan user availability", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list user availability", err)
	}
	return ids, nil
}

func (r *availabilityRepository) ListSlotsByUserID(ctx context.Context, userID string) ([]*domain.TimeSlot, error) {
	query := `
		SELECT s.id, s.community_id, s.day_of_week, s.time_utc::text, s.created_at
		FROM user_availability a
		JOIN time_slots s ON s.id = a.slot_id
		WHERE a.user_id = $1
		ORDER BY s.day_of_week, s.time_utc, s.id
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, mapError("list user slots", err)
	}
	defer rows.Close()

	slots := make([]*domain.TimeSlot, 0)
	for rows.Next() {
		s, err := scanTimeSlot(rows)
		if err != nil {
			return nil, mapError("scan user slot", err)
		}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list user slots", err)
	}
	return slots, nil
}

func (r *availabilityRepository) Toggle(ctx context.Context, userID, slotID string) (bool, error) {
	var selected bool
	if err := r.DB.QueryRowContext(ctx, toggleAvailabilityQuery, userID, slotID).Scan(&selected); err != nil {
		return false, mapError("toggle availability", err)
	}
	return selected, nil
}
