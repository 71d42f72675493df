package domain

import (
	"context"
	"sort"
	"time"
)

// Availability records that a user is free at a slot. The (UserID, SlotID) pair is unique.
type Availability struct {
	UserID    string    `json:"user_id"`
	SlotID    string    `json:"slot_id"`
	CreatedAt time.Time `json:"created_at"`
}

// SlotIDSet is a set of slot ids.
type SlotIDSet map[string]struct{}

// NewSlotIDSet builds a set from ids.
func NewSlotIDSet(ids ...string) SlotIDSet {
	s := make(SlotIDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is in the set.
func (s SlotIDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the ids in ascending order.
func (s SlotIDSet) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SlotSelection pairs a slot with whether the user has selected it.
type SlotSelection struct {
	Slot     *TimeSlot `json:"slot"`
	Selected bool      `json:"selected"`
}

// AvailabilityRepository defines storage operations for the user/slot relation.
type AvailabilityRepository interface {
	ListSlotIDsByUserID(ctx context.Context, userID string) ([]string, error)
	// ListSlotsByUserID returns the slots the user selected, ordered like ListByCommunityID.
	ListSlotsByUserID(ctx context.Context, userID string) ([]*TimeSlot, error)
	// Toggle flips the pair in a single atomic step and returns the new state. It returns
	// ErrNotFound when the slot does not exist.
	Toggle(ctx context.Context, userID, slotID string) (selected bool, err error)
}

// AvailabilityService defines member-facing operations over the availability matrix.
// Callers must pass the acting user's own id.
type AvailabilityService interface {
	ListUserAvailability(ctx context.Context, userID string) (SlotIDSet, error)
	ListCommunitySlotsWithAvailability(ctx context.Context, userID, communityID string) ([]*SlotSelection, error)
	ToggleSlot(ctx context.Context, userID, slotID string) (bool, error)
	// ListUserAvailableSlots returns the canonical UTC slots the user is free at. This is the
	// read contract for a matcher.
	ListUserAvailableSlots(ctx context.Context, userID string) ([]*TimeSlot, error)
	GetLocalWeek(ctx context.Context, userID, communityID string, offsetMinutes int) (LocalWeek, error)
}
