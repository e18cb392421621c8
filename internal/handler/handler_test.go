package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"roomfinder/internal/cache"
	"roomfinder/internal/i18n"
	"roomfinder/internal/model"
	"roomfinder/internal/repository"
	"roomfinder/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAdminToken = "s3cret"

func strPtr(s string) *string { return &s }

func float64Ptr(v float64) *float64 { return &v }

type testServer struct {
	router  *gin.Engine
	catalog *service.Catalog
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rooms := []*model.Room{
		{ID: "1", Title: strPtr("Room A"), Rent: float64Ptr(5000), Gender: strPtr("boy"),
			RoomType: strPtr("1 RK"), Rooms: strPtr("1 RK"), Features: []string{"wifi"}},
		{ID: "2", Title: strPtr("Girls single room"), Rent: float64Ptr(3500), Gender: strPtr("girls"),
			RoomType: strPtr("Single Room"), Features: []string{"CCTV", "Geyser"}},
		{ID: "1", Title: strPtr("Room A duplicate")},
	}
	messes := []*model.Mess{
		{ID: "m1", Title: strPtr("Annapurna mess"), MonthlyCharge: float64Ptr(2500), Gender: strPtr("boys")},
	}

	store := repository.NewMemoryStore(rooms, messes)
	catalog := service.NewCatalog(store)
	_, err := catalog.Reload(context.Background())
	require.NoError(t, err)

	results := cache.NewMemoryClient(100)
	t.Cleanup(func() { results.Close() })

	listings := service.NewListingService(catalog, results, time.Minute, i18n.Default())
	bookings := service.NewBookingService(store, catalog, nil)

	router := NewRouter(
		RouterConfig{AllowedOrigins: "*", AdminToken: testAdminToken, Build: BuildInfo{Version: "test"}},
		NewListingHandler(listings, 50000, "en"),
		NewBookingHandler(bookings),
		NewAdminHandler(catalog, bookings),
	)
	return &testServer{router: router, catalog: catalog}
}

func (s *testServer) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func admin() map[string]string {
	return map[string]string{AdminTokenHeader: testAdminToken}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]string](t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "test", body["version"])
}

func TestRooms(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"all", "", []string{"1", "2"}},
		{"gender", "?gender=boy", []string{"1"}},
		{"category", "?category=Single%20Room", []string{"2"}},
		{"search", "?q=girls", []string{"2"}},
		{"features", "?features=Wi-Fi", []string{"1"}},
		{"several features", "?features=CCTV%20Camera,Hot%20Water", []string{"2"}},
		{"max price", "?max_price=4000", []string{"2"}},
		{"combined", "?gender=boy&category=1%20RK&q=room&features=Wi-Fi&max_price=6000", []string{"1"}},
		{"combined under price", "?gender=boy&category=1%20RK&q=room&features=Wi-Fi&max_price=4000", []string{}},
		{"translated category", "?category=1%20RK&lang=mr", []string{"1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, http.MethodGet, "/api/v1/rooms"+tt.query, nil, nil)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			resp := decode[model.RoomSearchResponse](t, w)
			ids := []string{}
			for _, r := range resp.Results {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.want, ids)
			assert.Equal(t, len(tt.want), resp.Total)
			assert.Equal(t, s.catalog.Snapshot().Version.String(), resp.Version)
		})
	}
}

func TestRooms_InvalidMaxPrice(t *testing.T) {
	s := newTestServer(t)

	for _, q := range []string{"?max_price=cheap", "?max_price=-1"} {
		w := s.do(t, http.MethodGet, "/api/v1/rooms"+q, nil, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
		assert.Contains(t, w.Body.String(), "max_price")
	}
}

func TestFeaturesAndCategories(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/v1/rooms/features", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	features := decode[model.FeaturesResponse](t, w)
	assert.Equal(t, []string{"CCTV Camera", "Hot Water", "Wi-Fi"}, features.Features)

	w = s.do(t, http.MethodGet, "/api/v1/rooms/categories?lang=mr", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string][]model.CategoryOption](t, w)
	require.Len(t, body["categories"], len(model.Categories))
	assert.Equal(t, model.CategoryAll, body["categories"][0].Value)
	assert.Equal(t, "सर्व", body["categories"][0].Label)
}

func TestGetRoom(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/v1/rooms/1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	room := decode[model.Room](t, w)
	assert.Equal(t, "Room A", *room.Title, "the first duplicate is kept")

	w = s.do(t, http.MethodGet, "/api/v1/rooms/404", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMesses(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/v1/messes?gender=boy", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[model.MessSearchResponse](t, w)
	assert.Equal(t, 1, resp.Total)

	w = s.do(t, http.MethodGet, "/api/v1/messes?gender=girl", nil, nil)
	resp = decode[model.MessSearchResponse](t, w)
	assert.Zero(t, resp.Total)
}

func TestSubmitBooking(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/bookings", model.BookingRequest{RoomID: "1", Name: "Amit", Phone: "98765"}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	booking := decode[model.Booking](t, w)
	assert.Equal(t, model.BookingPending, booking.Status)

	w = s.do(t, http.MethodPost, "/api/v1/bookings", model.BookingRequest{RoomID: "nope", Name: "Amit", Phone: "98765"}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodPost, "/api/v1/bookings", map[string]string{"room_id": "1"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/api/v1/bookings", model.BookingRequest{RoomID: "1", Name: "A", Phone: "1", Email: "not-an-email"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminAuth(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/v1/admin/bookings", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/admin/bookings", nil, map[string]string{AdminTokenHeader: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/admin/bookings", nil, admin())
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminAuth_DisabledWithoutToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", AdminAuth(""), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminBookingWorkflow(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/bookings", model.BookingRequest{RoomID: "2", Name: "Priya", Phone: "1"}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	booking := decode[model.Booking](t, w)

	path := "/api/v1/admin/bookings/" + booking.ID.String()
	w = s.do(t, http.MethodPatch, path, model.BookingStatusRequest{Status: model.BookingConfirmed}, admin())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, model.BookingConfirmed, decode[model.Booking](t, w).Status)

	w = s.do(t, http.MethodPatch, path, model.BookingStatusRequest{Status: "archived"}, admin())
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPatch, "/api/v1/admin/bookings/not-a-uuid", model.BookingStatusRequest{Status: model.BookingRejected}, admin())
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodGet, "/api/v1/admin/bookings?status=confirmed", nil, admin())
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Bookings []model.Booking `json:"bookings"`
		Total    int             `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Total)

	w = s.do(t, http.MethodGet, "/api/v1/admin/bookings?status=archived", nil, admin())
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminRooms(t *testing.T) {
	s := newTestServer(t)
	before := s.catalog.Snapshot().Version

	w := s.do(t, http.MethodPost, "/api/v1/admin/rooms", model.RoomCreateRequest{
		Title: "Terrace 1 BHK", Gender: "male", RoomType: "1 BHK", Features: []string{"Terrace"},
	}, admin())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[model.Room](t, w)
	assert.NotEqual(t, before, s.catalog.Snapshot().Version)

	w = s.do(t, http.MethodGet, "/api/v1/rooms?category=1%20BHK&features=Terrace%20Access", nil, nil)
	resp := decode[model.RoomSearchResponse](t, w)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, created.ID, resp.Results[0].ID)

	w = s.do(t, http.MethodPost, "/api/v1/admin/rooms", map[string]string{"gender": "male"}, admin())
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodDelete, "/api/v1/admin/rooms/"+created.ID, nil, admin())
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(t, http.MethodDelete, "/api/v1/admin/rooms/"+created.ID, nil, admin())
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminReload(t *testing.T) {
	s := newTestServer(t)
	before := s.catalog.Snapshot().Version

	w := s.do(t, http.MethodPost, "/api/v1/admin/reload", nil, admin())
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[model.ReloadResponse](t, w)

	assert.NotEqual(t, before.String(), resp.Version)
	assert.Equal(t, 2, resp.Rooms)
	assert.Equal(t, 1, resp.Messes)
	assert.Equal(t, 3, resp.Features)
}

func TestNoRoute(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/v2/rooms", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "API endpoint not found")
}
