package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rentals/config"
	"rentals/infras/jwt"
	"rentals/infras/memory"
	"rentals/infras/otel/mocks"
	actorRepository "rentals/internal/domains/actor/repository"
	adminService "rentals/internal/domains/admin/service"
	authService "rentals/internal/domains/auth/service"
	listingRepository "rentals/internal/domains/listing/repository"
	listingService "rentals/internal/domains/listing/service"
	reservationRepository "rentals/internal/domains/reservation/repository"
	reservationService "rentals/internal/domains/reservation/service"
	searchService "rentals/internal/domains/search/service"
	adminHandler "rentals/internal/handlers/admin"
	authHandler "rentals/internal/handlers/auth"
	listingHandler "rentals/internal/handlers/listing"
	reservationHandler "rentals/internal/handlers/reservation"
	searchHandler "rentals/internal/handlers/search"
	"rentals/permissions"
	"rentals/shared/cache"
	cacheMocks "rentals/shared/cache/mocks"
	"rentals/shared/constant"
	transport "rentals/transport/http"
	"rentals/transport/http/middleware"
	"rentals/transport/http/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type client struct {
	t       *testing.T
	handler http.Handler
}

func (c *client) do(method, path, token string, body any) (int, map[string]any) {
	c.t.Helper()

	var payload bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&payload).Encode(body))
	}

	req := httptest.NewRequest(method, path, &payload)
	if token != constant.Empty {
		req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)

	var res map[string]any
	require.NoError(c.t, json.Unmarshal(rec.Body.Bytes(), &res), rec.Body.String())

	return rec.Code, res
}

func (c *client) data(method, path, token string, body any, code int) map[string]any {
	c.t.Helper()

	got, res := c.do(method, path, token, body)
	require.Equal(c.t, code, got, res)

	data, ok := res["data"].(map[string]any)
	require.True(c.t, ok, res)

	return data
}

func (c *client) login(email, password string) string {
	c.t.Helper()

	data := c.data(http.MethodPost, "/v1/auth/login", constant.Empty, map[string]any{
		"email":    email,
		"password": password,
	}, http.StatusOK)

	return data["access_token"].(string)
}

func newServer(t *testing.T) *client {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60
	cfg.App.Admin.Name = "Site Admin"
	cfg.App.Admin.Email = "admin@rentals.example"
	cfg.App.Admin.Password = "admin-password"

	otel := mocks.NewOtel()
	redisCache := cacheMocks.NewMockRedisCache(gomock.NewController(t))
	redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil).AnyTimes()

	db := memory.New(otel)
	actors := actorRepository.New()
	listings := listingRepository.New()
	reservations := reservationRepository.New()
	jwtService := jwt.New(cfg, otel)

	auth := authService.New(db, actors, cfg, redisCache, otel, jwtService)
	listing := listingService.New(db, listings, actors, reservations, otel)

	routes := router.New(router.DomainHandlers{
		Auth:        authHandler.New(auth, otel),
		Listing:     listingHandler.New(listing, otel),
		Search:      searchHandler.New(searchService.New(db, listings, otel), otel),
		Reservation: reservationHandler.New(reservationService.New(db, reservations, listings, actors, otel), otel),
		Admin:       adminHandler.New(adminService.New(db, actors, listings, reservations, otel), listing, otel),
	})

	server := transport.New(
		cfg,
		routes,
		middleware.NewAppMiddleware(otel, cfg, redisCache),
		middleware.NewAuthRoleMiddleware(jwtService, otel, permissions.Get(), redisCache),
		auth,
		otel,
	)

	require.NoError(t, auth.Bootstrap(t.Context()))

	return &client{t: t, handler: server.Handler()}
}

func TestServer_BookingLifecycle(t *testing.T) {
	c := newServer(t)

	c.data(http.MethodPost, "/v1/auth/register/owner", constant.Empty, map[string]any{
		"name": "Gareth", "email": "gareth@lets.example", "password": "owner-password",
	}, http.StatusCreated)
	ownerToken := c.login("gareth@lets.example", "owner-password")

	c.data(http.MethodPost, "/v1/auth/register/seeker", constant.Empty, map[string]any{
		"name": "Amira", "email": "amira@uni.example", "password": "seeker-password",
		"university": "Cardiff University", "student_number": "C1234567",
	}, http.StatusCreated)
	seekerToken := c.login("amira@uni.example", "seeker-password")

	property := c.data(http.MethodPost, "/v1/properties", ownerToken, map[string]any{
		"address": "12 Cathays Terrace", "area": "Cathays", "description": "Terraced house",
	}, http.StatusCreated)

	room := c.data(http.MethodPost, "/v1/properties/"+property["id"].(string)+"/rooms", ownerToken, map[string]any{
		"category": "double", "price": 450, "amenities": "desk, wifi",
		"available_from": "2025-01-01", "available_to": "2025-06-30",
	}, http.StatusCreated)
	roomID := room["id"].(string)

	// seekers cannot list rooms
	code, _ := c.do(http.MethodPost, "/v1/properties", seekerToken, map[string]any{
		"address": "1 Fake St", "area": "Roath", "description": "nope",
	})
	assert.Equal(t, http.StatusForbidden, code)

	found := c.data(http.MethodGet, "/v1/rooms/search?area=cathays&start_date=2025-01-10&end_date=2025-01-20", constant.Empty, nil, http.StatusOK)
	assert.EqualValues(t, 1, found["total_data"])

	request := c.data(http.MethodPost, "/v1/requests", seekerToken, map[string]any{
		"room_id": roomID, "start_date": "2025-01-10", "end_date": "2025-01-20",
	}, http.StatusCreated)
	assert.Equal(t, "PENDING", request["status"])

	decision := c.data(http.MethodPost, "/v1/requests/"+request["id"].(string)+"/decision", ownerToken, map[string]any{
		"accept": true,
	}, http.StatusOK)
	assert.NotNil(t, decision["booking"])

	// the stay now blocks overlapping searches and requests
	found = c.data(http.MethodGet, "/v1/rooms/search?start_date=2025-01-15&end_date=2025-01-25", constant.Empty, nil, http.StatusOK)
	assert.EqualValues(t, 0, found["total_data"])

	code, res := c.do(http.MethodPost, "/v1/requests", seekerToken, map[string]any{
		"room_id": roomID, "start_date": "2025-01-15", "end_date": "2025-01-25",
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "room already booked for those dates", res["error"])

	bookings := c.data(http.MethodGet, "/v1/bookings/mine", seekerToken, nil, http.StatusOK)
	assert.EqualValues(t, 1, bookings["total_data"])

	// owners cannot remove a booked room, administrators can
	code, _ = c.do(http.MethodDelete, "/v1/rooms/"+roomID, ownerToken, nil)
	assert.Equal(t, http.StatusConflict, code)

	adminToken := c.login("admin@rentals.example", "admin-password")
	removed := c.data(http.MethodDelete, "/v1/admin/rooms/"+roomID, adminToken, nil, http.StatusOK)
	assert.EqualValues(t, 1, removed["orphaned_bookings"])

	bookings = c.data(http.MethodGet, "/v1/bookings/mine", seekerToken, nil, http.StatusOK)
	assert.EqualValues(t, 1, bookings["total_data"])
}

func TestServer_RequiresToken(t *testing.T) {
	c := newServer(t)

	code, res := c.do(http.MethodGet, "/v1/bookings/mine", constant.Empty, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Missing authorization header", res["error"])
}

func TestServer_Health(t *testing.T) {
	c := newServer(t)

	code, res := c.do(http.MethodGet, "/health", constant.Empty, nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "OK", res["message"])
}

func TestServer_SwaggerDocs(t *testing.T) {
	c := newServer(t)

	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/v1/rooms/search")
}
