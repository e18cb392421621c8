package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"roomfinder/internal/model"

	"github.com/google/uuid"
)

// SnapshotFile is the JSON layout of an exported listing file
type SnapshotFile struct {
	Rooms  []*model.Room `json:"rooms"`
	Messes []*model.Mess `json:"messes"`
}

// LoadSnapshotFile reads listings from a JSON file. The file may hold
// either a SnapshotFile object or a bare array of rooms. Fields of the wrong
// type inside a record decode as absent
func LoadSnapshotFile(path string) (*SnapshotFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read listings file: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var rooms []*model.Room
		if err := json.Unmarshal(trimmed, &rooms); err != nil {
			return nil, fmt.Errorf("failed to parse listings file %s: %w", path, err)
		}
		return &SnapshotFile{Rooms: rooms}, nil
	}

	var snap SnapshotFile
	if err := json.Unmarshal(trimmed, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse listings file %s: %w", path, err)
	}
	return &snap, nil
}

// MemoryStore keeps listings and bookings in process memory. Listing
// slices are returned as-is, including duplicates and nil entries, the
// same way a document store hands back raw records
type MemoryStore struct {
	mu       sync.RWMutex
	rooms    []*model.Room
	messes   []*model.Mess
	bookings map[uuid.UUID]*model.Booking
}

// NewMemoryStore creates a store seeded with the given listings
func NewMemoryStore(rooms []*model.Room, messes []*model.Mess) *MemoryStore {
	return &MemoryStore{
		rooms:    append([]*model.Room(nil), rooms...),
		messes:   append([]*model.Mess(nil), messes...),
		bookings: make(map[uuid.UUID]*model.Booking),
	}
}

// ListRooms returns a copy of the stored room slice
func (s *MemoryStore) ListRooms(ctx context.Context) ([]*model.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*model.Room(nil), s.rooms...), nil
}

// ListMesses returns a copy of the stored mess slice
func (s *MemoryStore) ListMesses(ctx context.Context) ([]*model.Mess, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*model.Mess(nil), s.messes...), nil
}

// CreateRoom appends a room
func (s *MemoryStore) CreateRoom(ctx context.Context, room *model.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms = append(s.rooms, room)
	return nil
}

// DeleteRoom removes every room with the given id
func (s *MemoryStore) DeleteRoom(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]*model.Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		if r != nil && r.ID == id {
			continue
		}
		kept = append(kept, r)
	}
	if len(kept) == len(s.rooms) {
		return ErrNotFound
	}
	s.rooms = kept
	return nil
}

// CreateBooking stores a booking
func (s *MemoryStore) CreateBooking(ctx context.Context, booking *model.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := *booking
	s.bookings[b.ID] = &b
	return nil
}

// ListBookings returns bookings newest first, optionally filtered by status
func (s *MemoryStore) ListBookings(ctx context.Context, status string) ([]model.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookings := []model.Booking{}
	for _, b := range s.bookings {
		if status != "" && b.Status != status {
			continue
		}
		bookings = append(bookings, *b)
	}
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
	return bookings, nil
}

// UpdateBookingStatus sets a booking's status
func (s *MemoryStore) UpdateBookingStatus(ctx context.Context, id uuid.UUID, status string) (*model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	b.Status = status
	b.UpdatedAt = time.Now().UTC()
	updated := *b
	return &updated, nil
}
