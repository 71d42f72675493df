package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"weeklyslots/internal/calendar"
	"weeklyslots/internal/domain"
)

var slotColumns = []string{"id", "community_id", "day_of_week", "time_utc", "created_at"}

func TestTimeSlotRepository_Create(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO time_slots \(community_id, day_of_week, time_utc, created_at\)`).
					WithArgs("comm-1", 2, "01:30:00", createdAt).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("slot-uuid-1"))
			},
			wantID: "slot-uuid-1",
		},
		{
			name: "unknown community returns ErrNotFound",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO time_slots`).
					WillReturnError(&pq.Error{Code: "23503"})
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "connection failure returns ErrStore",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO time_slots`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: domain.ErrStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewTimeSlotRepository(db)
			slot := domain.NewTimeSlot("comm-1", time.Tuesday, calendar.MustTimeOfDay(1, 30, 0), createdAt)
			err = repo.Create(ctx, slot)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, slot.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTimeSlotRepository_CreateIfAbsent(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	existingAt := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		mock        func(mock sqlmock.Sqlmock)
		wantCreated bool
		wantID      string
		wantAt      time.Time
		wantErr     error
	}{
		{
			name: "inserts when absent",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`SELECT pg_advisory_xact_lock\(hashtext\(\$1\)\)`).
					WithArgs("comm-1").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(`FROM time_slots\s+WHERE community_id = \$1 AND day_of_week = \$2 AND time_utc = \$3`).
					WithArgs("comm-1", 1, "09:00:00").
					WillReturnRows(sqlmock.NewRows(slotColumns))
				mock.ExpectQuery(`INSERT INTO time_slots`).
					WithArgs("comm-1", 1, "09:00:00", createdAt).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("slot-new"))
				mock.ExpectCommit()
			},
			wantCreated: true,
			wantID:      "slot-new",
			wantAt:      createdAt,
		},
		{
			name: "returns existing row",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
					WithArgs("comm-1").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(`FROM time_slots`).
					WithArgs("comm-1", 1, "09:00:00").
					WillReturnRows(sqlmock.NewRows(slotColumns).
						AddRow("slot-old", "comm-1", 1, "09:00:00", existingAt))
				mock.ExpectCommit()
			},
			wantCreated: false,
			wantID:      "slot-old",
			wantAt:      existingAt,
		},
		{
			name: "lookup failure rolls back",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`SELECT pg_advisory_xact_lock`).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(`FROM time_slots`).
					WillReturnError(sql.ErrConnDone)
				mock.ExpectRollback()
			},
			wantErr: domain.ErrStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewTimeSlotRepository(db)
			slot := domain.NewTimeSlot("comm-1", time.Monday, calendar.MustTimeOfDay(9, 0, 0), createdAt)
			created, err := repo.CreateIfAbsent(ctx, slot)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantCreated, created)
			require.Equal(t, tt.wantID, slot.ID)
			require.Equal(t, tt.wantAt, slot.CreatedAt)
			require.Equal(t, time.Monday, slot.DayOfWeek)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTimeSlotRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.TimeSlot
		wantErr error
	}{
		{
			name: "found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, community_id, day_of_week, time_utc::text, created_at\s+FROM time_slots\s+WHERE id = \$1`).
					WithArgs("slot-1").
					WillReturnRows(sqlmock.NewRows(slotColumns).
						AddRow("slot-1", "comm-1", 3, "17:45:00", createdAt))
			},
			want: &domain.TimeSlot{
				ID: "slot-1", CommunityID: "comm-1", DayOfWeek: time.Wednesday,
				TimeUTC: calendar.MustTimeOfDay(17, 45, 0), CreatedAt: createdAt,
			},
		},
		{
			name: "missing returns ErrNotFound",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM time_slots`).
					WithArgs("slot-1").
					WillReturnRows(sqlmock.NewRows(slotColumns))
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "malformed id returns ErrInvalidInput",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM time_slots`).
					WithArgs("slot-1").
					WillReturnError(&pq.Error{Code: "22P02"})
			},
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewTimeSlotRepository(db)
			got, err := repo.GetByID(ctx, "slot-1")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTimeSlotRepository_ListByCommunityID(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		want    []*domain.TimeSlot
		wantErr bool
	}{
		{
			name: "success ordered by day then time",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`WHERE community_id = \$1\s+ORDER BY day_of_week, time_utc, id`).
					WithArgs("comm-1").
					WillReturnRows(sqlmock.NewRows(slotColumns).
						AddRow("s-a", "comm-1", 1, "09:00:00", createdAt).
						AddRow("s-b", "comm-1", 1, "17:00:00", createdAt).
						AddRow("s-c", "comm-1", 3, "09:00:00", createdAt))
			},
			want: []*domain.TimeSlot{
				{ID: "s-a", CommunityID: "comm-1", DayOfWeek: time.Monday, TimeUTC: calendar.MustTimeOfDay(9, 0, 0), CreatedAt: createdAt},
				{ID: "s-b", CommunityID: "comm-1", DayOfWeek: time.Monday, TimeUTC: calendar.MustTimeOfDay(17, 0, 0), CreatedAt: createdAt},
				{ID: "s-c", CommunityID: "comm-1", DayOfWeek: time.Wednesday, TimeUTC: calendar.MustTimeOfDay(9, 0, 0), CreatedAt: createdAt},
			},
		},
		{
			name: "success empty",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM time_slots`).
					WithArgs("comm-1").
					WillReturnRows(sqlmock.NewRows(slotColumns))
			},
			want: []*domain.TimeSlot{},
		},
		{
			name: "query error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM time_slots`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewTimeSlotRepository(db)
			got, err := repo.ListByCommunityID(ctx, "comm-1")
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrStore)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTimeSlotRepository_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "removes availability then slot in one transaction",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`DELETE FROM user_availability WHERE slot_id = \$1`).
					WithArgs("slot-1").
					WillReturnResult(sqlmock.NewResult(0, 3))
				mock.ExpectExec(`DELETE FROM time_slots WHERE id = \$1`).
					WithArgs("slot-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "missing slot is a no-op",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`DELETE FROM user_availability WHERE slot_id = \$1`).
					WithArgs("slot-1").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec(`DELETE FROM time_slots WHERE id = \$1`).
					WithArgs("slot-1").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			},
		},
		{
			name: "slot delete failure rolls back availability cleanup",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`DELETE FROM user_availability WHERE slot_id = \$1`).
					WithArgs("slot-1").
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectExec(`DELETE FROM time_slots WHERE id = \$1`).
					WithArgs("slot-1").
					WillReturnError(sql.ErrConnDone)
				mock.ExpectRollback()
			},
			wantErr: domain.ErrStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewTimeSlotRepository(db)
			err = repo.Delete(ctx, "slot-1")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
