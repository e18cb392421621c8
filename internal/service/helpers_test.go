package service

import (
	"roomfinder/internal/model"
)

func strPtr(s string) *string {
	return &s
}

func float64Ptr(v float64) *float64 {
	return &v
}

func roomIDs(rooms []*model.Room) []string {
	ids := make([]string, 0, len(rooms))
	for _, r := range rooms {
		ids = append(ids, r.ID)
	}
	return ids
}

func sampleRooms() []*model.Room {
	return []*model.Room{
		{
			ID:       "r1",
			Title:    strPtr("Room A near college"),
			Rent:     float64Ptr(5000),
			Gender:   strPtr("boy"),
			RoomType: strPtr("1 RK"),
			Rooms:    strPtr("1 RK"),
			Features: []string{"wifi", "Geyser", "parking"},
		},
		{
			ID:       "r2",
			Title:    strPtr("Girls hostel single room"),
			Rent:     float64Ptr(3500),
			Gender:   strPtr("Girls"),
			RoomType: strPtr("Single Room"),
			Rooms:    strPtr("single room"),
			Features: []string{"Free WiFi", "CCTV"},
		},
		{
			ID:       "r3",
			Title:    strPtr("Spacious 1 BHK flat"),
			Rent:     float64Ptr(9000),
			Gender:   strPtr("Male"),
			RoomType: strPtr("1 BHK"),
			Features: []string{"Parking", "Terrace"},
		},
		{
			ID:       "r4",
			Title:    strPtr("Cot basis room"),
			Gender:   strPtr("boys"),
			RoomType: strPtr("Cot Basis"),
			Rooms:    strPtr("Cot Basis & 1 RK"),
			Features: nil,
		},
	}
}
