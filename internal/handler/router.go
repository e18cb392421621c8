package handler

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// BuildInfo identifies the running binary
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// RouterConfig holds the HTTP surface settings
type RouterConfig struct {
	AllowedOrigins string
	AdminToken     string
	Build          BuildInfo
}

// NewRouter wires every route onto a new gin engine
func NewRouter(cfg RouterConfig, listings *ListingHandler, bookings *BookingHandler, admin *AdminHandler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger())

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = splitOrigins(cfg.AllowedOrigins)
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", AdminTokenHeader}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":     "healthy",
			"service":    "roomfinder",
			"version":    cfg.Build.Version,
			"build_time": cfg.Build.BuildTime,
			"git_commit": cfg.Build.GitCommit,
		})
	})

	router.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    cfg.Build.Version,
			"build_time": cfg.Build.BuildTime,
			"git_commit": cfg.Build.GitCommit,
		})
	})

	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/rooms", listings.Rooms)
		apiV1.GET("/rooms/features", listings.Features)
		apiV1.GET("/rooms/categories", listings.Categories)
		apiV1.GET("/rooms/:id", listings.GetRoom)
		apiV1.GET("/messes", listings.Messes)

		apiV1.POST("/bookings", bookings.Submit)

		adminGroup := apiV1.Group("/admin", AdminAuth(cfg.AdminToken))
		{
			adminGroup.GET("/bookings", admin.ListBookings)
			adminGroup.PATCH("/bookings/:id", admin.UpdateBooking)
			adminGroup.POST("/reload", admin.Reload)
			adminGroup.POST("/rooms", admin.CreateRoom)
			adminGroup.DELETE("/rooms/:id", admin.DeleteRoom)
		}
	}

	// The frontend is served separately
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "API endpoint not found"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	return router
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
