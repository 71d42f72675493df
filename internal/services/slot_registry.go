package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"weeklyslots/internal/calendar"
	"weeklyslots/internal/domain"
)

type slotRegistryService struct {
	slotRepo         domain.TimeSlotRepository
	idempotentCreate bool
}

// NewSlotRegistryService creates a SlotRegistryService. When idempotentCreate is true every
// CreateSlot behaves as if CreateSlotInput.Idempotent were set.
func NewSlotRegistryService(slotRepo domain.TimeSlotRepository, idempotentCreate bool) domain.SlotRegistryService {
	return &slotRegistryService{
		slotRepo:         slotRepo,
		idempotentCreate: idempotentCreate,
	}
}

func (s *slotRegistryService) CreateSlot(ctx context.Context, in domain.CreateSlotInput) (*domain.TimeSlot, bool, error) {
	if err := validateCreateSlot(in); err != nil {
		return nil, false, err
	}

	day, tod := calendar.ToUTC(in.LocalWeekday, in.LocalTime, in.OffsetMinutes)
	slot := domain.NewTimeSlot(in.CommunityID, day, tod, time.Now().UTC())

	if in.Idempotent || s.idempotentCreate {
		created, err := s.slotRepo.CreateIfAbsent(ctx, slot)
		if err != nil {
			return nil, false, fmt.Errorf("create time slot: %w", err)
		}
		return slot, created, nil
	}
	if err := s.slotRepo.Create(ctx, slot); err != nil {
		return nil, false, fmt.Errorf("create time slot: %w", err)
	}
	return slot, true, nil
}

func validateCreateSlot(in domain.CreateSlotInput) error {
	if strings.TrimSpace(in.CommunityID) == "" {
		return domain.NewValidationError("community_id", "is required")
	}
	if !calendar.ValidWeekday(in.LocalWeekday) {
		return domain.NewValidationError("day_of_week", "must be between 0 (Sunday) and 6 (Saturday)")
	}
	if !in.LocalTime.Valid() {
		return domain.NewValidationError("time", "must be between 00:00:00 and 23:59:59")
	}
	return validateOffset(in.OffsetMinutes)
}

func validateOffset(minutes int) error {
	if err := calendar.ValidateOffset(minutes); err != nil {
		return domain.NewValidationError("offset_minutes",
			fmt.Sprintf("must be between %d and %d", calendar.MinOffsetMinutes, calendar.MaxOffsetMinutes))
	}
	return nil
}

func requireID(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return domain.NewValidationError(field, "is required")
	}
	return nil
}

func (s *slotRegistryService) ListSlots(ctx context.Context, communityID string) ([]*domain.TimeSlot, error) {
	if err := requireID("community_id", communityID); err != nil {
		return nil, err
	}
	slots, err := s.slotRepo.ListByCommunityID(ctx, communityID)
	if err != nil {
		return nil, fmt.Errorf("list time slots: %w", err)
	}
	return slots, nil
}

func (s *slotRegistryService) GetSlot(ctx context.Context, slotID string) (*domain.TimeSlot, error) {
	if err := requireID("slot_id", slotID); err != nil {
		return nil, err
	}
	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get time slot: %w", err)
	}
	return slot, nil
}

func (s *slotRegistryService) DeleteSlot(ctx context.Context, slotID string) error {
	if err := requireID("slot_id", slotID); err != nil {
		return err
	}
	if err := s.slotRepo.Delete(ctx, slotID); err != nil {
		return fmt.Errorf("delete time slot: %w", err)
	}
	return nil
}

func (s *slotRegistryService) ListSlotsLocal(ctx context.Context, communityID string, offsetMinutes int) (domain.LocalWeek, error) {
	if err := validateOffset(offsetMinutes); err != nil {
		return nil, err
	}
	slots, err := s.ListSlots(ctx, communityID)
	if err != nil {
		return nil, err
	}
	return ProjectToLocalWeek(slots, offsetMinutes), nil
}
