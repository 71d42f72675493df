package services

import (
	"context"
	"sync"

	"weeklyslots/internal/domain"
)

type mockTimeSlotRepository struct {
	mu          sync.Mutex
	slots       map[string]*domain.TimeSlot
	created     []*domain.TimeSlot
	deleted     []string
	nextID      string
	existing    *domain.TimeSlot
	ifAbsentHit int
	err         error
}

func (m *mockTimeSlotRepository) Create(ctx context.Context, slot *domain.TimeSlot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	slot.ID = m.nextID
	m.created = append(m.created, slot)
	return nil
}

func (m *mockTimeSlotRepository) CreateIfAbsent(ctx context.Context, slot *domain.TimeSlot) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ifAbsentHit++
	if m.err != nil {
		return false, m.err
	}
	if m.existing != nil && m.existing.SameAnchor(slot) {
		*slot = *m.existing
		return false, nil
	}
	slot.ID = m.nextID
	m.created = append(m.created, slot)
	return true, nil
}

func (m *mockTimeSlotRepository) GetByID(ctx context.Context, id string) (*domain.TimeSlot, error) {
	if m.err != nil {
		return nil, m.err
	}
	s, ok := m.slots[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (m *mockTimeSlotRepository) ListByCommunityID(ctx context.Context, communityID string) ([]*domain.TimeSlot, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*domain.TimeSlot
	for _, s := range m.slots {
		if s.CommunityID == communityID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockTimeSlotRepository) Delete(ctx context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, id)
	return nil
}

type mockAvailabilityRepository struct {
	selected map[string][]string
	slots    map[string][]*domain.TimeSlot
	toggled  []string
	state    bool
	err      error
}

func (m *mockAvailabilityRepository) ListSlotIDsByUserID(ctx context.Context, userID string) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.selected[userID], nil
}

func (m *mockAvailabilityRepository) ListSlotsByUserID(ctx context.Context, userID string) ([]*domain.TimeSlot, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.slots[userID], nil
}

func (m *mockAvailabilityRepository) Toggle(ctx context.Context, userID, slotID string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	m.toggled = append(m.toggled, userID+":"+slotID)
	m.state = !m.state
	return m.state, nil
}
