package handler

import (
	"errors"
	"net/http"

	"roomfinder/internal/model"
	"roomfinder/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles listing maintenance and the booking workflow
type AdminHandler struct {
	catalog  *service.Catalog
	bookings *service.BookingService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(catalog *service.Catalog, bookings *service.BookingService) *AdminHandler {
	return &AdminHandler{
		catalog:  catalog,
		bookings: bookings,
	}
}

// ListBookings handles GET /api/v1/admin/bookings
func (h *AdminHandler) ListBookings(c *gin.Context) {
	bookings, err := h.bookings.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "total": len(bookings)})
}

// UpdateBooking handles PATCH /api/v1/admin/bookings/:id
func (h *AdminHandler) UpdateBooking(c *gin.Context) {
	var req model.BookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	booking, err := h.bookings.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	switch {
	case errors.Is(err, service.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status. Must be one of: pending, contacted, confirmed, rejected"})
	case errors.Is(err, service.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking: " + err.Error()})
	default:
		c.JSON(http.StatusOK, booking)
	}
}

// Reload handles POST /api/v1/admin/reload
func (h *AdminHandler) Reload(c *gin.Context) {
	snap, err := h.catalog.Reload(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Reload failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.ReloadResponse{
		Version:  snap.Version.String(),
		Rooms:    len(snap.Rooms),
		Messes:   len(snap.Messes),
		Features: len(snap.Features),
	})
}

// CreateRoom handles POST /api/v1/admin/rooms
func (h *AdminHandler) CreateRoom(c *gin.Context) {
	var req model.RoomCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	room, err := h.catalog.CreateRoom(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create room: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, room)
}

// DeleteRoom handles DELETE /api/v1/admin/rooms/:id
func (h *AdminHandler) DeleteRoom(c *gin.Context) {
	err := h.catalog.DeleteRoom(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete room: " + err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
