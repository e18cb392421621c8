package handler

import (
	"errors"
	"net/http"

	"roomfinder/internal/model"
	"roomfinder/internal/service"

	"github.com/gin-gonic/gin"
)

// BookingHandler handles booking inquiry submissions
type BookingHandler struct {
	bookings *service.BookingService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookings *service.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// Submit handles POST /api/v1/bookings
func (h *BookingHandler) Submit(c *gin.Context) {
	var req model.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	booking, err := h.bookings.Submit(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit booking: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, booking)
}
