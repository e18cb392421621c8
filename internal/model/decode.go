package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"
)

// Listing documents come from hand-edited exports and scraped stores, so a
// field of the wrong JSON type decodes as absent instead of failing the
// whole record

// UnmarshalJSON decodes a room, tolerating malformed fields
func (r *Room) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*r = Room{
		ID:        looseID(fields["id"]),
		Title:     looseString(fields["title"]),
		Rent:      looseFloat(fields["rent"]),
		Gender:    looseString(fields["gender"]),
		RoomType:  looseString(fields["roomType"]),
		Rooms:     looseString(fields["rooms"]),
		Features:  looseStrings(fields["features"]),
		Address:   looseString(fields["address"]),
		Contact:   looseString(fields["contact"]),
		OwnerName: looseString(fields["ownerName"]),
		Images:    looseStrings(fields["images"]),
		CreatedAt: looseTime(fields["createdAt"]),
	}
	return nil
}

// UnmarshalJSON decodes a mess, tolerating malformed fields
func (m *Mess) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*m = Mess{
		ID:            looseID(fields["id"]),
		Title:         looseString(fields["title"]),
		MonthlyCharge: looseFloat(fields["monthlyCharge"]),
		Gender:        looseString(fields["gender"]),
		MealTypes:     looseStrings(fields["mealTypes"]),
		Features:      looseStrings(fields["features"]),
		Address:       looseString(fields["address"]),
		Contact:       looseString(fields["contact"]),
		CreatedAt:     looseTime(fields["createdAt"]),
	}
	return nil
}

// looseID accepts a string or a number; anything else is a missing id
func looseID(raw json.RawMessage) string {
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	var n json.Number
	if json.Unmarshal(raw, &n) == nil {
		return n.String()
	}
	return ""
}

func looseString(raw json.RawMessage) *string {
	if isNull(raw) {
		return nil
	}
	var s string
	if json.Unmarshal(raw, &s) != nil {
		return nil
	}
	return &s
}

// looseFloat accepts a number or a numeric string
func looseFloat(raw json.RawMessage) *float64 {
	if isNull(raw) {
		return nil
	}
	var f float64
	if json.Unmarshal(raw, &f) == nil {
		return &f
	}
	var s string
	if json.Unmarshal(raw, &s) != nil {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return &f
}

// looseStrings keeps the string entries of an array and skips the rest
func looseStrings(raw json.RawMessage) pq.StringArray {
	var items []json.RawMessage
	if json.Unmarshal(raw, &items) != nil || items == nil {
		return nil
	}

	out := make(pq.StringArray, 0, len(items))
	for _, item := range items {
		var s string
		if !isNull(item) && json.Unmarshal(item, &s) == nil {
			out = append(out, s)
		}
	}
	return out
}

func looseTime(raw json.RawMessage) time.Time {
	var t time.Time
	if json.Unmarshal(raw, &t) != nil {
		return time.Time{}
	}
	return t
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
