package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"roomfinder/internal/cache"
	"roomfinder/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// TranslatorSource resolves a Translator for a language code
type TranslatorSource interface {
	Translator(lang string) func(key string) string
}

// ListingService serves filtered views over the catalog snapshot
type ListingService struct {
	catalog     *Catalog
	cache       cache.Client
	cacheTTL    time.Duration
	translators TranslatorSource
}

// NewListingService creates a new listing service. resultCache may be nil
// to disable memoization
func NewListingService(catalog *Catalog, resultCache cache.Client, cacheTTL time.Duration, translators TranslatorSource) *ListingService {
	return &ListingService{
		catalog:     catalog,
		cache:       resultCache,
		cacheTTL:    cacheTTL,
		translators: translators,
	}
}

// Rooms filters the current snapshot. Results are memoized per snapshot
// version, language and criteria
func (s *ListingService) Rooms(ctx context.Context, lang string, criteria model.FilterCriteria) ([]*model.Room, uuid.UUID) {
	snap := s.catalog.Snapshot()
	translate := s.translator(lang)

	if s.cache == nil {
		return FilterRooms(snap.Rooms, criteria, translate), snap.Version
	}

	key := cache.CacheKey("rooms", snap.Version.String(), lang, criteria.CacheKey())
	if rooms, ok := s.cachedRooms(ctx, key, snap); ok {
		return rooms, snap.Version
	}

	rooms := FilterRooms(snap.Rooms, criteria, translate)
	s.storeRooms(ctx, key, snap, rooms)
	return rooms, snap.Version
}

// Messes filters the mess listings of the current snapshot
func (s *ListingService) Messes(criteria model.FilterCriteria) ([]*model.Mess, uuid.UUID) {
	snap := s.catalog.Snapshot()
	return FilterMesses(snap.Messes, criteria), snap.Version
}

// Features returns the available feature labels of the current snapshot
func (s *ListingService) Features() ([]string, uuid.UUID) {
	snap := s.catalog.Snapshot()
	return snap.Features, snap.Version
}

// Room returns a single room from the current snapshot
func (s *ListingService) Room(id string) *model.Room {
	return s.catalog.Room(id)
}

// Categories returns the category enum with labels for lang
func (s *ListingService) Categories(lang string) []model.CategoryOption {
	translate := s.translator(lang)
	options := make([]model.CategoryOption, 0, len(model.Categories))
	for _, c := range model.Categories {
		options = append(options, model.CategoryOption{Value: c, Label: translate(c)})
	}
	return options
}

func (s *ListingService) translator(lang string) Translator {
	if s.translators == nil {
		return IdentityTranslator
	}
	if t := s.translators.Translator(lang); t != nil {
		return t
	}
	return IdentityTranslator
}

// cachedRooms stores positions into the snapshot rather than the rooms
// themselves; the version in the key keeps them valid
func (s *ListingService) cachedRooms(ctx context.Context, key string, snap *Snapshot) ([]*model.Room, bool) {
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Warn().Err(err).Str("key", key).Msg("result cache read failed")
		}
		return nil, false
	}

	var positions []int
	if err := json.Unmarshal(data, &positions); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("discarding malformed cache entry")
		return nil, false
	}

	rooms := make([]*model.Room, 0, len(positions))
	for _, p := range positions {
		if p < 0 || p >= len(snap.Rooms) {
			return nil, false
		}
		rooms = append(rooms, snap.Rooms[p])
	}
	return rooms, true
}

func (s *ListingService) storeRooms(ctx context.Context, key string, snap *Snapshot, rooms []*model.Room) {
	index := make(map[*model.Room]int, len(snap.Rooms))
	for i, r := range snap.Rooms {
		index[r] = i
	}
	positions := make([]int, 0, len(rooms))
	for _, r := range rooms {
		positions = append(positions, index[r])
	}

	data, err := json.Marshal(positions)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, s.cacheTTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("result cache write failed")
	}
}
