package postgres

import (
	"context"
	"database/sql"
	"errors"

	"weeklyslots/internal/domain"
)

const timeSlotColumns = `id, community_id, day_of_week, time_utc::text, created_at`

type timeSlotRepository struct {
	DB *sql.DB
}

func NewTimeSlotRepository(db *sql.DB) domain.TimeSlotRepository {
	return &timeSlotRepository{
		DB: db,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTimeSlot(row rowScanner) (*domain.TimeSlot, error) {
	s := &domain.TimeSlot{}
	if err := row.Scan(&s.ID, &s.CommunityID, &s.DayOfWeek, &s.TimeUTC, &s.CreatedAt); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *timeSlotRepository) Create(ctx context.Context, slot *domain.TimeSlot) error {
	query := `
		INSERT INTO time_slots (community_id, day_of_week, time_utc, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, slot.CommunityID, int(slot.DayOfWeek), slot.TimeUTC.String(), slot.CreatedAt).
		Scan(&slot.ID)
	return mapError("create time slot", err)
}

func (r *timeSlotRepository) CreateIfAbsent(ctx context.Context, slot *domain.TimeSlot) (bool, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return false, mapError("begin create time slot", err)
	}
	defer tx.Rollback()

	// Serialize idempotent creates per community; duplicates are not prevented by a constraint.
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, slot.CommunityID); err != nil {
		return false, mapError("lock community slots", err)
	}

	query := `
		SELECT ` + timeSlotColumns + `
		FROM time_slots
		WHERE community_id = $1 AND day_of_week = $2 AND time_utc = $3
		ORDER BY id
		LIMIT 1
	`
	existing, err := scanTimeSlot(tx.QueryRowContext(ctx, query, slot.CommunityID, int(slot.DayOfWeek), slot.TimeUTC.String()))
	switch {
	case err == nil:
		if err := tx.Commit(); err != nil {
			return false, mapError("commit create time slot", err)
		}
		*slot = *existing
		return false, nil
	case !errors.Is(err, sql.ErrNoRows):
		return false, mapError("find time slot", err)
	}

	insert := `
		INSERT INTO time_slots (community_id, day_of_week, time_utc, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	if err := tx.QueryRowContext(ctx, insert, slot.CommunityID, int(slot.DayOfWeek), slot.TimeUTC.String(), slot.CreatedAt).
		Scan(&slot.ID); err != nil {
		return false, mapError("create time slot", err)
	}
	if err := tx.Commit(); err != nil {
		return false, mapError("commit create time slot", err)
	}
	return true, nil
}

func (r *timeSlotRepository) GetByID(ctx context.Context, id string) (*domain.TimeSlot, error) {
	query := `
		SELECT ` + timeSlotColumns + `
		FROM time_slots
		WHERE id = $1
	`
	slot, err := scanTimeSlot(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, mapError("get time slot", err)
	}
	return slot, nil
}

func (r *timeSlotRepository) ListByCommunityID(ctx context.Context, communityID string) ([]*domain.TimeSlot, error) {
	query := `
		SELECT ` + timeSlotColumns + `
		FROM time_slots
		WHERE community_id = $1
		ORDER BY day_of_week, time_utc, id
	`
	rows, err := r.DB.QueryContext(ctx, query, communityID)
	if err != nil {
		return nil, mapError("list time slots", err)
	}
	defer rows.Close()

	slots := make([]*domain.TimeSlot, 0)
	for rows.Next() {
		s, err := scanTimeSlot(rows)
		if err != nil {
			return nil, mapError("scan time slot", err)
		}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list time slots", err)
	}
	return slots, nil
}

func (r *timeSlotRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return mapError("begin delete time slot", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM user_availability WHERE slot_id = $1`, id); err != nil {
		return mapError("delete slot availability", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM time_slots WHERE id = $1`, id); err != nil {
		return mapError("delete time slot", err)
	}
	if err := tx.Commit(); err != nil {
		return mapError("commit delete time slot", err)
	}
	return nil
}
