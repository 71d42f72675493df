package controllers

import (
	"context"
	"io"
	"log/slog"
	"time"

	"weeklyslots/internal/calendar"
	"weeklyslots/internal/domain"
)

const (
	communityA = "5d7c1f9e-2f0a-4a57-9c1e-7e8a3b2d4c61"
	communityB = "9a1e4b2c-6d3f-4e8a-8b7c-1f2e3d4c5b6a"
	slotOne    = "0b6a3f0e-4a77-4b1f-9a43-2b8f1c9d7e10"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

type mockSlotRegistryService struct {
	lastInput domain.CreateSlotInput
	slot      *domain.TimeSlot
	slots     []*domain.TimeSlot
	week      domain.LocalWeek
	created   bool
	getErr    error
	deleted   []string
	err       error
}

func (m *mockSlotRegistryService) CreateSlot(ctx context.Context, in domain.CreateSlotInput) (*domain.TimeSlot, bool, error) {
	m.lastInput = in
	if m.err != nil {
		return nil, false, m.err
	}
	day, tod := calendar.ToUTC(in.LocalWeekday, in.LocalTime, in.OffsetMinutes)
	return &domain.TimeSlot{ID: slotOne, CommunityID: in.CommunityID, DayOfWeek: day, TimeUTC: tod, CreatedAt: time.Now()}, m.created, nil
}

func (m *mockSlotRegistryService) ListSlots(ctx context.Context, communityID string) ([]*domain.TimeSlot, error) {
	return m.slots, m.err
}

func (m *mockSlotRegistryService) GetSlot(ctx context.Context, slotID string) (*domain.TimeSlot, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.slot, nil
}

func (m *mockSlotRegistryService) DeleteSlot(ctx context.Context, slotID string) error {
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, slotID)
	return nil
}

func (m *mockSlotRegistryService) ListSlotsLocal(ctx context.Context, communityID string, offsetMinutes int) (domain.LocalWeek, error) {
	return m.week, m.err
}

type mockAvailabilityService struct {
	userID     string
	set        domain.SlotIDSet
	slots      []*domain.TimeSlot
	selections []*domain.SlotSelection
	week       domain.LocalWeek
	offset     int
	selected   bool
	err        error
}

func (m *mockAvailabilityService) ListUserAvailability(ctx context.Context, userID string) (domain.SlotIDSet, error) {
	m.userID = userID
	return m.set, m.err
}

func (m *mockAvailabilityService) ListCommunitySlotsWithAvailability(ctx context.Context, userID, communityID string) ([]*domain.SlotSelection, error) {
	m.userID = userID
	return m.selections, m.err
}

func (m *mockAvailabilityService) ToggleSlot(ctx context.Context, userID, slotID string) (bool, error) {
	m.userID = userID
	return m.selected, m.err
}

func (m *mockAvailabilityService) ListUserAvailableSlots(ctx context.Context, userID string) ([]*domain.TimeSlot, error) {
	m.userID = userID
	return m.slots, m.err
}

func (m *mockAvailabilityService) GetLocalWeek(ctx context.Context, userID, communityID string, offsetMinutes int) (domain.LocalWeek, error) {
	m.userID = userID
	m.offset = offsetMinutes
	return m.week, m.err
}
