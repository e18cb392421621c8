package model

import (
	"time"

	"github.com/lib/pq"
)

// Room categories offered by the listing UI. CategoryAll disables the
// category filter
const (
	CategoryAll        = "All"
	CategorySingleRoom = "Single Room"
	CategoryCotBasis   = "Cot Basis"
	Category1RK        = "1 RK"
	Category1BHK       = "1 BHK"
	Category2BHK       = "2 BHK"
)

// Categories lists the closed category enum in display order
var Categories = []string{
	CategoryAll,
	CategorySingleRoom,
	CategoryCotBasis,
	Category1RK,
	Category1BHK,
	Category2BHK,
}

// Gender selectors understood by the gender filter
const (
	GenderBoy  = "boy"
	GenderGirl = "girl"
)

// Room represents a room listing as stored by the record source.
// Optional text fields are pointers so absence is explicit
type Room struct {
	ID        string         `json:"id" db:"id"`
	Title     *string        `json:"title,omitempty" db:"title"`
	Rent      *float64       `json:"rent,omitempty" db:"rent"`
	Gender    *string        `json:"gender,omitempty" db:"gender"`
	RoomType  *string        `json:"roomType,omitempty" db:"room_type"`
	Rooms     *string        `json:"rooms,omitempty" db:"rooms"`
	Features  pq.StringArray `json:"features,omitempty" db:"features"`
	Address   *string        `json:"address,omitempty" db:"address"`
	Contact   *string        `json:"contact,omitempty" db:"contact"`
	OwnerName *string        `json:"ownerName,omitempty" db:"owner_name"`
	Images    pq.StringArray `json:"images,omitempty" db:"images"`
	CreatedAt time.Time      `json:"createdAt" db:"created_at"`
}

// Mess represents a meal-service listing
type Mess struct {
	ID            string         `json:"id" db:"id"`
	Title         *string        `json:"title,omitempty" db:"title"`
	MonthlyCharge *float64       `json:"monthlyCharge,omitempty" db:"monthly_charge"`
	Gender        *string        `json:"gender,omitempty" db:"gender"`
	MealTypes     pq.StringArray `json:"mealTypes,omitempty" db:"meal_types"`
	Features      pq.StringArray `json:"features,omitempty" db:"features"`
	Address       *string        `json:"address,omitempty" db:"address"`
	Contact       *string        `json:"contact,omitempty" db:"contact"`
	CreatedAt     time.Time      `json:"createdAt" db:"created_at"`
}

// StringValue dereferences an optional string, treating nil as empty
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
