// Package memory is an in-process implementation of the slot, availability and organizer
// repositories. It is used for local runs (STORE_DRIVER=memory) and for tests that exercise
// concurrency. A single mutex makes every operation atomic, matching the guarantees of the
// Postgres implementation.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"weeklyslots/internal/domain"
)

type pair struct {
	a, b string
}

// Store holds communities, organizers, slots and availability in memory.
type Store struct {
	mu           sync.Mutex
	communities  map[string]struct{}
	organizers   map[pair]struct{}
	slots        map[string]domain.TimeSlot
	availability map[pair]domain.Availability
	now          func() time.Time
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		communities:  make(map[string]struct{}),
		organizers:   make(map[pair]struct{}),
		slots:        make(map[string]domain.TimeSlot),
		availability: make(map[pair]domain.Availability),
		now:          time.Now,
	}
}

// AddCommunity registers a community id so slots can reference it.
func (s *Store) AddCommunity(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.communities[id] = struct{}{}
}

// AddOrganizer registers the community (if needed) and grants userID organizer rights on it.
func (s *Store) AddOrganizer(communityID, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.communities[communityID] = struct{}{}
	s.organizers[pair{communityID, userID}] = struct{}{}
}

// AvailabilityCount returns the number of availability rows referencing slotID.
func (s *Store) AvailabilityCount(slotID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for k := range s.availability {
		if k.b == slotID {
			n++
		}
	}
	return n
}

// TimeSlots returns the store as a domain.TimeSlotRepository.
func (s *Store) TimeSlots() domain.TimeSlotRepository { return (*timeSlotRepository)(s) }

// Availability returns the store as a domain.AvailabilityRepository.
func (s *Store) Availability() domain.AvailabilityRepository { return (*availabilityRepository)(s) }

// Organizers returns the store as a domain.OrganizerRepository.
func (s *Store) Organizers() domain.OrganizerRepository { return (*organizerRepository)(s) }

func sortSlots(slots []*domain.TimeSlot) {
	sort.Slice(slots, func(i, j int) bool {
		a, b := slots[i], slots[j]
		if a.WeekSeconds() != b.WeekSeconds() {
			return a.WeekSeconds() < b.WeekSeconds()
		}
		return a.ID < b.ID
	})
}

type timeSlotRepository Store

func (r *timeSlotRepository) Create(ctx context.Context, slot *domain.TimeSlot) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertLocked(slot)
}

func (s *Store) insertLocked(slot *domain.TimeSlot) error {
	if _, ok := s.communities[slot.CommunityID]; !ok {
		return domain.ErrNotFound
	}
	slot.ID = uuid.NewString()
	s.slots[slot.ID] = *slot
	return nil
}

func (r *timeSlotRepository) CreateIfAbsent(ctx context.Context, slot *domain.TimeSlot) (bool, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	var match *domain.TimeSlot
	for _, existing := range s.slots {
		if !existing.SameAnchor(slot) {
			continue
		}
		if match == nil || existing.ID < match.ID {
			e := existing
			match = &e
		}
	}
	if match != nil {
		*slot = *match
		return false, nil
	}
	if err := s.insertLocked(slot); err != nil {
		return false, err
	}
	return true, nil
}

func (r *timeSlotRepository) GetByID(ctx context.Context, id string) (*domain.TimeSlot, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	slot, ok := s.slots[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &slot, nil
}

func (r *timeSlotRepository) ListByCommunityID(ctx context.Context, communityID string) ([]*domain.TimeSlot, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	slots := make([]*domain.TimeSlot, 0)
	for _, slot := range s.slots {
		if slot.CommunityID == communityID {
			sl := slot
			slots = append(slots, &sl)
		}
	}
	sortSlots(slots)
	return slots, nil
}

func (r *timeSlotRepository) Delete(ctx context.Context, id string) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	for k := range s.availability {
		if k.b == id {
			delete(s.availability, k)
		}
	}
	delete(s.slots, id)
	return nil
}

type availabilityRepository Store

func (r *availabilityRepository) ListSlotIDsByUserID(ctx context.Context, userID string) ([]string, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0)
	for k := range s.availability {
		if k.a == userID {
			ids = append(ids, k.b)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (r *availabilityRepository) ListSlotsByUserID(ctx context.Context, userID string) ([]*domain.TimeSlot, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	slots := make([]*domain.TimeSlot, 0)
	for k := range s.availability {
		if k.a != userID {
			continue
		}
		if slot, ok := s.slots[k.b]; ok {
			slots = append(slots, &slot)
		}
	}
	sortSlots(slots)
	return slots, nil
}

func (r *availabilityRepository) Toggle(ctx context.Context, userID, slotID string) (bool, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.slots[slotID]; !ok {
		return false, domain.ErrNotFound
	}
	k := pair{userID, slotID}
	if _, ok := s.availability[k]; ok {
		delete(s.availability, k)
		return false, nil
	}
	s.availability[k] = domain.Availability{UserID: userID, SlotID: slotID, CreatedAt: s.now()}
	return true, nil
}

type organizerRepository Store

func (r *organizerRepository) IsOrganizer(ctx context.Context, communityID, userID string) (bool, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.organizers[pair{communityID, userID}]
	return ok, nil
}
