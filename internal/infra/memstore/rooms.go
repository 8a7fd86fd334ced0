package memstore

import (
	"fmt"
	"sort"
	"sync"

	"hotel-console/internal/domain/pricing"
	"hotel-console/internal/domain/room"
	"hotel-console/internal/pkg/errs"
)

// RoomStore holds the room catalog and the per-room occupancy flags. The
// catalog is fixed at construction; only the flags mutate.
type RoomStore struct {
	mu       sync.RWMutex
	rooms    map[string]*room.Room
	occupied map[string]bool
}

func NewRoomStore(rooms []*room.Room) *RoomStore {
	s := &RoomStore{
		rooms:    make(map[string]*room.Room, len(rooms)),
		occupied: make(map[string]bool, len(rooms)),
	}
	for _, r := range rooms {
		s.rooms[r.Number()] = r
		s.occupied[r.Number()] = false
	}
	return s
}

func (s *RoomStore) Find(number string) (*room.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.rooms[number]
	if !ok {
		return nil, errs.Mark(fmt.Errorf("room %q", number), errs.ErrRoomNotFound)
	}
	return r, nil
}

// RateOf returns the immutable base nightly rate.
func (s *RoomStore) RateOf(number string) (pricing.Money, error) {
	r, err := s.Find(number)
	if err != nil {
		return pricing.Money{}, err
	}
	return r.NightlyRate(), nil
}

// IsAvailable is false for unknown as well as occupied rooms.
func (s *RoomStore) IsAvailable(number string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, known := s.rooms[number]
	return known && !s.occupied[number]
}

// CheckIn asserts the occupancy flag. It is not guarded: callers check
// IsAvailable first, and re-asserting an occupied room is a no-op.
func (s *RoomStore) CheckIn(number string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, known := s.rooms[number]; known {
		s.occupied[number] = true
	}
}

// CheckOut clears the occupancy flag, unguarded like CheckIn.
func (s *RoomStore) CheckOut(number string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, known := s.rooms[number]; known {
		s.occupied[number] = false
	}
}

func (s *RoomStore) ListAvailable() []*room.Room {
	return s.list(false)
}

func (s *RoomStore) ListOccupied() []*room.Room {
	return s.list(true)
}

func (s *RoomStore) list(occupied bool) []*room.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*room.Room, 0, len(s.rooms))
	for number, r := range s.rooms {
		if s.occupied[number] == occupied {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Number() < out[j].Number()
	})
	return out
}

// OccupancyRate is the share of occupied rooms as a percentage. An empty
// store reports 0 by convention; the seeded catalog is never empty.
func (s *RoomStore) OccupancyRate() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.rooms) == 0 {
		return 0
	}

	occupied := 0
	for _, o := range s.occupied {
		if o {
			occupied++
		}
	}
	return float64(occupied) / float64(len(s.rooms)) * 100
}
