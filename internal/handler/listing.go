package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"roomfinder/internal/model"
	"roomfinder/internal/service"

	"github.com/gin-gonic/gin"
)

// ListingHandler handles room and mess listing requests
type ListingHandler struct {
	listings        *service.ListingService
	defaultMaxPrice float64
	defaultLanguage string
}

// NewListingHandler creates a new listing handler
func NewListingHandler(listings *service.ListingService, defaultMaxPrice float64, defaultLanguage string) *ListingHandler {
	return &ListingHandler{
		listings:        listings,
		defaultMaxPrice: defaultMaxPrice,
		defaultLanguage: defaultLanguage,
	}
}

// Rooms handles GET /api/v1/rooms
func (h *ListingHandler) Rooms(c *gin.Context) {
	startTime := time.Now()

	criteria, err := h.criteriaFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rooms, version := h.listings.Rooms(c.Request.Context(), h.language(c), criteria)

	c.JSON(http.StatusOK, model.RoomSearchResponse{
		Results: rooms,
		Total:   len(rooms),
		Version: version.String(),
		Took:    time.Since(startTime).Milliseconds(),
	})
}

// Features handles GET /api/v1/rooms/features
func (h *ListingHandler) Features(c *gin.Context) {
	features, version := h.listings.Features()
	c.JSON(http.StatusOK, model.FeaturesResponse{
		Features: features,
		Version:  version.String(),
	})
}

// Categories handles GET /api/v1/rooms/categories
func (h *ListingHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.listings.Categories(h.language(c))})
}

// GetRoom handles GET /api/v1/rooms/:id
func (h *ListingHandler) GetRoom(c *gin.Context) {
	room := h.listings.Room(c.Param("id"))
	if room == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
		return
	}
	c.JSON(http.StatusOK, room)
}

// Messes handles GET /api/v1/messes
func (h *ListingHandler) Messes(c *gin.Context) {
	criteria, err := h.criteriaFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	messes, version := h.listings.Messes(criteria)
	c.JSON(http.StatusOK, model.MessSearchResponse{
		Results: messes,
		Total:   len(messes),
		Version: version.String(),
	})
}

// criteriaFromQuery builds filter criteria from query parameters. An absent
// max_price falls back to the configured default
func (h *ListingHandler) criteriaFromQuery(c *gin.Context) (model.FilterCriteria, error) {
	criteria := model.FilterCriteria{
		SelectedGender: strings.TrimSpace(c.Query("gender")),
		Category:       c.DefaultQuery("category", model.CategoryAll),
		SearchText:     c.Query("q"),
		MaxPrice:       h.defaultMaxPrice,
	}

	if raw, ok := c.GetQuery("max_price"); ok && raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil || maxPrice < 0 {
			return criteria, fmt.Errorf("Invalid query parameter: max_price %q", raw)
		}
		criteria.MaxPrice = maxPrice
	}

	for _, raw := range c.QueryArray("features") {
		for _, label := range strings.Split(raw, ",") {
			label = strings.TrimSpace(label)
			if label == "" {
				continue
			}
			if criteria.FeatureFilters == nil {
				criteria.FeatureFilters = make(map[string]bool)
			}
			criteria.FeatureFilters[label] = true
		}
	}

	return criteria, nil
}

func (h *ListingHandler) language(c *gin.Context) string {
	if lang := strings.TrimSpace(c.Query("lang")); lang != "" {
		return strings.ToLower(lang)
	}
	return h.defaultLanguage
}
