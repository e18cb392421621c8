package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"roomfinder/internal/model"
	"roomfinder/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	// ErrBookingNotFound is returned when a booking id does not exist
	ErrBookingNotFound = errors.New("booking not found")
	// ErrInvalidStatus is returned for an unknown booking status
	ErrInvalidStatus = errors.New("invalid booking status")
)

// BookingStore persists booking inquiries
type BookingStore interface {
	CreateBooking(ctx context.Context, booking *model.Booking) error
	ListBookings(ctx context.Context, status string) ([]model.Booking, error)
	UpdateBookingStatus(ctx context.Context, id uuid.UUID, status string) (*model.Booking, error)
}

// BookingNotifier tells the admins about a new inquiry
type BookingNotifier interface {
	NotifyBooking(ctx context.Context, booking *model.Booking, room *model.Room) error
}

// BookingService handles booking inquiries and their admin workflow
type BookingService struct {
	store    BookingStore
	catalog  *Catalog
	notifier BookingNotifier
}

// NewBookingService creates a new booking service
func NewBookingService(store BookingStore, catalog *Catalog, notifier BookingNotifier) *BookingService {
	return &BookingService{
		store:    store,
		catalog:  catalog,
		notifier: notifier,
	}
}

// Submit records a pending inquiry for a room in the current snapshot
func (s *BookingService) Submit(ctx context.Context, req *model.BookingRequest) (*model.Booking, error) {
	room := s.catalog.Room(strings.TrimSpace(req.RoomID))
	if room == nil {
		return nil, ErrRoomNotFound
	}

	now := time.Now().UTC()
	booking := &model.Booking{
		ID:        uuid.New(),
		RoomID:    room.ID,
		Name:      strings.TrimSpace(req.Name),
		Phone:     strings.TrimSpace(req.Phone),
		Email:     optionalString(req.Email),
		Message:   optionalString(req.Message),
		Status:    model.BookingPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.CreateBooking(ctx, booking); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyBooking(ctx, booking, room); err != nil {
			log.Warn().Err(err).Str("booking_id", booking.ID.String()).Msg("booking notification failed")
		}
	}

	return booking, nil
}

// List returns bookings, optionally restricted to one status
func (s *BookingService) List(ctx context.Context, status string) ([]model.Booking, error) {
	if status != "" && !model.ValidBookingStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.store.ListBookings(ctx, status)
}

// UpdateStatus moves a booking to a new status
func (s *BookingService) UpdateStatus(ctx context.Context, id string, status string) (*model.Booking, error) {
	bookingID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrBookingNotFound
	}
	if !model.ValidBookingStatus(status) {
		return nil, ErrInvalidStatus
	}

	booking, err := s.store.UpdateBookingStatus(ctx, bookingID, status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	log.Info().Str("booking_id", id).Str("status", status).Msg("booking status updated")
	return booking, nil
}
