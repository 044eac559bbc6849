package admin_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"rentals/infras/otel/mocks"
	actorDto "rentals/internal/domains/actor/model/dto"
	adminMocks "rentals/internal/domains/admin/mocks"
	"rentals/internal/domains/admin/model/dto"
	listingMocks "rentals/internal/domains/listing/mocks"
	"rentals/internal/handlers/admin"
	"rentals/shared/constant"
	"rentals/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (http.Handler, *adminMocks.MockAdmin, *listingMocks.MockListing) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := adminMocks.NewMockAdmin(ctrl)
	listings := listingMocks.NewMockListing(ctrl)
	handler := admin.New(svc, listings, mocks.NewOtel())

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), constant.ContextKeyActorID, "admin-1")
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	handler.Router(router)

	return router, svc, listings
}

func TestHandler_DeactivateActor(t *testing.T) {
	router, svc, _ := newRouter(t)

	svc.EXPECT().
		DeactivateActor(gomock.Any(), "admin-1", "seeker-1").
		Return(actorDto.ActorResponse{ID: "seeker-1", Active: false}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/actors/seeker-1/deactivate", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"active":false`)
}

func TestHandler_RemoveListing(t *testing.T) {
	router, svc, _ := newRouter(t)

	svc.EXPECT().
		RemoveListing(gomock.Any(), "admin-1", "room-1").
		Return(dto.RemoveListingResponse{RoomID: "room-1", PurgedRequests: 2, OrphanedBookings: 1}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/admin/rooms/room-1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"room_id":"room-1","purged_requests":2,"orphaned_bookings":1}}`, rec.Body.String())
}

func TestHandler_ListActorsForbidden(t *testing.T) {
	router, svc, _ := newRouter(t)

	svc.EXPECT().
		ListActors(gomock.Any(), "admin-1").
		Return(actorDto.GetActorsResponse{}, failure.Forbidden("actor is not an administrator"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/actors", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandler_RebuildIndexes(t *testing.T) {
	router, _, listings := newRouter(t)

	listings.EXPECT().RebuildIndexes(gomock.Any()).Return(nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/indexes/rebuild", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
