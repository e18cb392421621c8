package service

import (
	"testing"

	"roomfinder/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestDeduplicateRooms(t *testing.T) {
	tests := []struct {
		name   string
		input  []*model.Room
		titles []string
	}{
		{
			name: "first occurrence wins",
			input: []*model.Room{
				{ID: "1", Title: strPtr("A")},
				{ID: "1", Title: strPtr("B")},
				{ID: "2", Title: strPtr("C")},
			},
			titles: []string{"A", "C"},
		},
		{
			// records without an id are never collapsed
			name: "missing ids are always kept",
			input: []*model.Room{
				{Title: strPtr("X")},
				{Title: strPtr("Y")},
			},
			titles: []string{"X", "Y"},
		},
		{
			name: "nil records are skipped",
			input: []*model.Room{
				nil,
				{ID: "1", Title: strPtr("A")},
				nil,
			},
			titles: []string{"A"},
		},
		{
			name: "order preserved across interleaved duplicates",
			input: []*model.Room{
				{ID: "3", Title: strPtr("c")},
				{ID: "1", Title: strPtr("a")},
				{ID: "3", Title: strPtr("c2")},
				{Title: strPtr("anon")},
				{ID: "2", Title: strPtr("b")},
				{ID: "1", Title: strPtr("a2")},
			},
			titles: []string{"c", "a", "anon", "b"},
		},
		{
			name:   "empty input",
			input:  nil,
			titles: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeduplicateRooms(tt.input)
			titles := make([]string, 0, len(got))
			for _, r := range got {
				titles = append(titles, model.StringValue(r.Title))
			}
			assert.Equal(t, tt.titles, titles)
		})
	}
}

func TestDeduplicateRooms_Idempotent(t *testing.T) {
	input := []*model.Room{
		{ID: "1"}, {ID: "2"}, {ID: "1"}, {}, {}, nil, {ID: "3"}, {ID: "2"},
	}
	once := DeduplicateRooms(input)
	twice := DeduplicateRooms(once)
	assert.Equal(t, once, twice)
}

func TestDeduplicateRooms_DoesNotModifyInput(t *testing.T) {
	input := []*model.Room{{ID: "1"}, {ID: "1"}}
	_ = DeduplicateRooms(input)
	assert.Len(t, input, 2)
}

func TestDeduplicateMesses(t *testing.T) {
	input := []*model.Mess{
		{ID: "m1", Title: strPtr("Annapurna")},
		{ID: "m1", Title: strPtr("Annapurna copy")},
		{Title: strPtr("Unnamed")},
	}
	got := DeduplicateMesses(input)
	assert.Len(t, got, 2)
	assert.Equal(t, "Annapurna", *got[0].Title)
}

func TestRoomsWithoutID(t *testing.T) {
	rooms := []*model.Room{{ID: "1"}, {}, nil, {Title: strPtr("anon")}}
	assert.Equal(t, 2, RoomsWithoutID(rooms))
	assert.Zero(t, RoomsWithoutID(nil))
}
