package model

// RoomSearchResponse represents a filtered room listing response
type RoomSearchResponse struct {
	Results []*Room `json:"results"`
	Total   int     `json:"total"`
	Version string  `json:"version"`
	Took    int64   `json:"took_ms"` // Response time in milliseconds
}

// MessSearchResponse represents a filtered mess listing response
type MessSearchResponse struct {
	Results []*Mess `json:"results"`
	Total   int     `json:"total"`
	Version string  `json:"version"`
}

// FeaturesResponse lists the canonical feature labels present in the snapshot
type FeaturesResponse struct {
	Features []string `json:"features"`
	Version  string   `json:"version"`
}

// CategoryOption is a category value paired with its display label
type CategoryOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ReloadResponse reports the snapshot produced by an admin reload
type ReloadResponse struct {
	Version  string `json:"version"`
	Rooms    int    `json:"rooms"`
	Messes   int    `json:"messes"`
	Features int    `json:"features"`
}

// RoomCreateRequest is the admin body for adding a room listing
type RoomCreateRequest struct {
	Title     string   `json:"title" binding:"required"`
	Rent      *float64 `json:"rent,omitempty" binding:"omitempty,gte=0"`
	Gender    string   `json:"gender,omitempty"`
	RoomType  string   `json:"roomType,omitempty"`
	Rooms     string   `json:"rooms,omitempty"`
	Features  []string `json:"features,omitempty"`
	Address   string   `json:"address,omitempty"`
	Contact   string   `json:"contact,omitempty"`
	OwnerName string   `json:"ownerName,omitempty"`
	Images    []string `json:"images,omitempty"`
}
