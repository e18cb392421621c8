package model

import (
	"time"

	"github.com/google/uuid"
)

// Booking inquiry statuses
const (
	BookingPending   = "pending"
	BookingContacted = "contacted"
	BookingConfirmed = "confirmed"
	BookingRejected  = "rejected"
)

// ValidBookingStatus reports whether status is a known booking status
func ValidBookingStatus(status string) bool {
	switch status {
	case BookingPending, BookingContacted, BookingConfirmed, BookingRejected:
		return true
	}
	return false
}

// Booking represents a booking inquiry submitted for a room
type Booking struct {
	ID        uuid.UUID `json:"id" db:"id"`
	RoomID    string    `json:"room_id" db:"room_id"`
	Name      string    `json:"name" db:"name"`
	Phone     string    `json:"phone" db:"phone"`
	Email     *string   `json:"email,omitempty" db:"email"`
	Message   *string   `json:"message,omitempty" db:"message"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// BookingRequest is the body of a booking inquiry submission
type BookingRequest struct {
	RoomID  string `json:"room_id" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email,omitempty" binding:"omitempty,email"`
	Message string `json:"message,omitempty"`
}

// BookingStatusRequest is the body of an admin status change
type BookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
