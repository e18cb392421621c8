package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"roomfinder/internal/model"
	"roomfinder/internal/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// ErrRoomNotFound is returned when a room id is not in the current snapshot
var ErrRoomNotFound = errors.New("room not found")

// RoomStore is the record source behind the catalog
type RoomStore interface {
	ListRooms(ctx context.Context) ([]*model.Room, error)
	ListMesses(ctx context.Context) ([]*model.Mess, error)
	CreateRoom(ctx context.Context, room *model.Room) error
	DeleteRoom(ctx context.Context, id string) error
}

// Snapshot is an immutable, deduplicated view of the listings at one load.
// Callers must not modify anything reachable from it
type Snapshot struct {
	Version  uuid.UUID
	Rooms    []*model.Room
	Messes   []*model.Mess
	Features []string
	LoadedAt time.Time
}

// Catalog holds the current listing snapshot and swaps it whole on reload
type Catalog struct {
	store RoomStore

	reloadMu sync.Mutex // serializes reloads
	mu       sync.RWMutex
	current  *Snapshot
}

// NewCatalog creates a catalog with an empty snapshot
func NewCatalog(store RoomStore) *Catalog {
	return &Catalog{
		store: store,
		current: &Snapshot{
			Version:  uuid.Nil,
			Rooms:    []*model.Room{},
			Messes:   []*model.Mess{},
			Features: []string{},
		},
	}
}

// Snapshot returns the current snapshot
func (c *Catalog) Snapshot() *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Reload fetches every listing from the store and replaces the snapshot.
// On error the previous snapshot stays in place
func (c *Catalog) Reload(ctx context.Context) (*Snapshot, error) {
	c.reloadMu.Lock()
	defer c.reloadMu.Unlock()

	started := time.Now()

	rooms, err := c.store.ListRooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rooms: %w", err)
	}
	messes, err := c.store.ListMesses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load messes: %w", err)
	}

	dedupedRooms := DeduplicateRooms(rooms)
	snap := &Snapshot{
		Version:  uuid.New(),
		Rooms:    dedupedRooms,
		Messes:   DeduplicateMesses(messes),
		Features: AvailableFeatures(dedupedRooms),
		LoadedAt: time.Now().UTC(),
	}

	c.mu.Lock()
	c.current = snap
	c.mu.Unlock()

	log.Info().
		Str("version", snap.Version.String()).
		Int("rooms", len(snap.Rooms)).
		Int("rooms_dropped", len(rooms)-len(snap.Rooms)).
		Int("rooms_without_id", RoomsWithoutID(snap.Rooms)).
		Int("messes", len(snap.Messes)).
		Int("features", len(snap.Features)).
		Dur("took", time.Since(started)).
		Msg("listing snapshot loaded")

	return snap, nil
}

// StartAutoReload reloads the snapshot every interval until ctx is done.
// Failed reloads are logged and the previous snapshot is kept
func (c *Catalog) StartAutoReload(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := c.Reload(ctx); err != nil {
					log.Warn().Err(err).Msg("scheduled snapshot reload failed")
				}
			}
		}
	}()
}

// Room looks up a room by id in the current snapshot
func (c *Catalog) Room(id string) *model.Room {
	if id == "" {
		return nil
	}
	for _, r := range c.Snapshot().Rooms {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// CreateRoom stores a new room listing and reloads the snapshot
func (c *Catalog) CreateRoom(ctx context.Context, req model.RoomCreateRequest) (*model.Room, error) {
	room := &model.Room{
		ID:        uuid.NewString(),
		Title:     optionalString(req.Title),
		Rent:      req.Rent,
		Gender:    optionalString(req.Gender),
		RoomType:  optionalString(req.RoomType),
		Rooms:     optionalString(req.Rooms),
		Features:  pq.StringArray(req.Features),
		Address:   optionalString(req.Address),
		Contact:   optionalString(req.Contact),
		OwnerName: optionalString(req.OwnerName),
		Images:    pq.StringArray(req.Images),
		CreatedAt: time.Now().UTC(),
	}

	if err := c.store.CreateRoom(ctx, room); err != nil {
		return nil, err
	}
	if _, err := c.Reload(ctx); err != nil {
		return nil, err
	}
	return room, nil
}

// DeleteRoom removes a room listing and reloads the snapshot
func (c *Catalog) DeleteRoom(ctx context.Context, id string) error {
	if err := c.store.DeleteRoom(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRoomNotFound
		}
		return err
	}
	_, err := c.Reload(ctx)
	return err
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
