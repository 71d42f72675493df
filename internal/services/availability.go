package services

import (
	"context"
	"errors"
	"fmt"

	"weeklyslots/internal/domain"
)

type availabilityService struct {
	slotRepo         domain.TimeSlotRepository
	availabilityRepo domain.AvailabilityRepository
}

// NewAvailabilityService creates an AvailabilityService with the given repositories.
func NewAvailabilityService(
	slotRepo domain.TimeSlotRepository,
	availabilityRepo domain.AvailabilityRepository,
) domain.AvailabilityService {
	return &availabilityService{
		slotRepo:         slotRepo,
		availabilityRepo: availabilityRepo,
	}
}

func (s *availabilityService) ListUserAvailability(ctx context.Context, userID string) (domain.SlotIDSet, error) {
	if err := requireID("user_id", userID); err != nil {
		return nil, err
	}
	ids, err := s.availabilityRepo.ListSlotIDsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user availability: %w", err)
	}
	return domain.NewSlotIDSet(ids...), nil
}

func (s *availabilityService) ListCommunitySlotsWithAvailability(ctx context.Context, userID, communityID string) ([]*domain.SlotSelection, error) {
	if err := requireID("community_id", communityID); err != nil {
		return nil, err
	}
	selected, err := s.ListUserAvailability(ctx, userID)
	if err != nil {
		return nil, err
	}
	slots, err := s.slotRepo.ListByCommunityID(ctx, communityID)
	if err != nil {
		return nil, fmt.Errorf("list time slots: %w", err)
	}

	result := make([]*domain.SlotSelection, 0, len(slots))
	for _, slot := range slots {
		result = append(result, &domain.SlotSelection{
			Slot:     slot,
			Selected: selected.Has(slot.ID),
		})
	}
	return result, nil
}

func (s *availabilityService) ToggleSlot(ctx context.Context, userID, slotID string) (bool, error) {
	if err := requireID("user_id", userID); err != nil {
		return false, err
	}
	if err := requireID("slot_id", slotID); err != nil {
		return false, err
	}

	// Reject vanished slots up front; the store also refuses orphans if the slot disappears
	// between this check and the toggle.
	if _, err := s.slotRepo.GetByID(ctx, slotID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, domain.ErrNotFound
		}
		return false, fmt.Errorf("get time slot: %w", err)
	}

	selected, err := s.availabilityRepo.Toggle(ctx, userID, slotID)
	if err != nil {
		return false, fmt.Errorf("toggle availability: %w", err)
	}
	return selected, nil
}

func (s *availabilityService) ListUserAvailableSlots(ctx context.Context, userID string) ([]*domain.TimeSlot, error) {
	if err := requireID("user_id", userID); err != nil {
		return nil, err
	}
	slots, err := s.availabilityRepo.ListSlotsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user slots: %w", err)
	}
	return slots, nil
}

func (s *availabilityService) GetLocalWeek(ctx context.Context, userID, communityID string, offsetMinutes int) (domain.LocalWeek, error) {
	if err := validateOffset(offsetMinutes); err != nil {
		return nil, err
	}
	selections, err := s.ListCommunitySlotsWithAvailability(ctx, userID, communityID)
	if err != nil {
		return nil, err
	}
	return ProjectSelectionsToLocalWeek(selections, offsetMinutes), nil
}
