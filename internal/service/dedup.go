package service

import (
	"roomfinder/internal/model"
)

// Deduplicate drops records whose key was already seen, keeping the first
// occurrence and the input order. Records with an empty key are always
// kept, and nil records are skipped
func Deduplicate[T any](records []*T, key func(*T) string) []*T {
	seen := make(map[string]struct{}, len(records))
	result := make([]*T, 0, len(records))

	for _, r := range records {
		if r == nil {
			continue
		}
		id := key(r)
		if id == "" {
			result = append(result, r)
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, r)
	}

	return result
}

// DeduplicateRooms removes duplicate rooms by ID
func DeduplicateRooms(rooms []*model.Room) []*model.Room {
	return Deduplicate(rooms, func(r *model.Room) string { return r.ID })
}

// DeduplicateMesses removes duplicate messes by ID
func DeduplicateMesses(messes []*model.Mess) []*model.Mess {
	return Deduplicate(messes, func(m *model.Mess) string { return m.ID })
}

// RoomsWithoutID counts rooms that dedup keeps unconditionally
func RoomsWithoutID(rooms []*model.Room) int {
	n := 0
	for _, r := range rooms {
		if r != nil && r.ID == "" {
			n++
		}
	}
	return n
}
