package domain

import (
	"context"
	"time"

	"weeklyslots/internal/calendar"
)

// TimeSlot is a recurring weekly anchor owned by a community. DayOfWeek and TimeUTC are always
// the canonical UTC values; local input is converted before a TimeSlot is built.
// swagger:model TimeSlot
type TimeSlot struct {
	ID          string             `json:"id"`
	CommunityID string             `json:"community_id"`
	DayOfWeek   time.Weekday       `json:"day_of_week" swaggertype:"integer"`
	TimeUTC     calendar.TimeOfDay `json:"time_utc" swaggertype:"string" example:"09:00:00"`
	CreatedAt   time.Time          `json:"created_at"`
}

// NewTimeSlot returns a TimeSlot with the given canonical fields. ID is set by the repository on create.
func NewTimeSlot(communityID string, dayOfWeek time.Weekday, timeUTC calendar.TimeOfDay, createdAt time.Time) *TimeSlot {
	return &TimeSlot{
		CommunityID: communityID,
		DayOfWeek:   dayOfWeek,
		TimeUTC:     timeUTC,
		CreatedAt:   createdAt,
	}
}

// WeekSeconds returns the slot's position in the UTC week.
func (s *TimeSlot) WeekSeconds() int {
	return calendar.WeekSeconds(s.DayOfWeek, s.TimeUTC)
}

// SameAnchor reports whether s and other share community, weekday and time.
func (s *TimeSlot) SameAnchor(other *TimeSlot) bool {
	return s.CommunityID == other.CommunityID && s.DayOfWeek == other.DayOfWeek && s.TimeUTC == other.TimeUTC
}

// TimeSlotRepository defines storage operations for time slots.
type TimeSlotRepository interface {
	Create(ctx context.Context, slot *TimeSlot) error
	// CreateIfAbsent inserts slot unless a slot with the same community, weekday and time
	// exists, in which case slot is overwritten with the existing row and created is false.
	CreateIfAbsent(ctx context.Context, slot *TimeSlot) (created bool, err error)
	GetByID(ctx context.Context, id string) (*TimeSlot, error)
	// ListByCommunityID returns slots ordered by day_of_week, time_utc, id.
	ListByCommunityID(ctx context.Context, communityID string) ([]*TimeSlot, error)
	// Delete removes the slot and every availability row that references it atomically.
	// Deleting a missing slot is not an error.
	Delete(ctx context.Context, id string) error
}

// CreateSlotInput is an organizer's slot request expressed in their local frame.
type CreateSlotInput struct {
	CommunityID   string
	LocalWeekday  time.Weekday
	LocalTime     calendar.TimeOfDay
	OffsetMinutes int
	// Idempotent returns an existing slot with the same canonical anchor instead of
	// inserting a duplicate.
	Idempotent bool
}

// SlotRegistryService defines organizer-facing operations over time slots.
type SlotRegistryService interface {
	// CreateSlot converts the local input to UTC and persists it. created is false only when
	// an idempotent create matched an existing slot.
	CreateSlot(ctx context.Context, in CreateSlotInput) (slot *TimeSlot, created bool, err error)
	ListSlots(ctx context.Context, communityID string) ([]*TimeSlot, error)
	GetSlot(ctx context.Context, slotID string) (*TimeSlot, error)
	DeleteSlot(ctx context.Context, slotID string) error
	// ListSlotsLocal returns the community's slots grouped in the viewer's local week.
	ListSlotsLocal(ctx context.Context, communityID string, offsetMinutes int) (LocalWeek, error)
}
