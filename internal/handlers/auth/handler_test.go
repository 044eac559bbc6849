package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rentals/infras/otel/mocks"
	actorDto "rentals/internal/domains/actor/model/dto"
	serviceMocks "rentals/internal/domains/auth/mocks"
	"rentals/internal/domains/auth/model/dto"
	"rentals/internal/handlers/auth"
	"rentals/shared/constant"
	"rentals/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T, middlewares ...func(http.Handler) http.Handler) (http.Handler, *serviceMocks.MockAuth) {
	t.Helper()

	svc := serviceMocks.NewMockAuth(gomock.NewController(t))
	handler := auth.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Use(middlewares...)
	handler.Router(router)

	return router, svc
}

func TestHandler_RegisterSeeker(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().
		RegisterSeeker(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req dto.RegisterSeekerRequest) (actorDto.ActorResponse, error) {
			assert.Equal(t, "amira@uni.example", req.Email)
			assert.Equal(t, "Cardiff University", req.University)

			return actorDto.ActorResponse{ID: "seeker-1", Role: "seeker"}, nil
		})

	body := `{"name":"Amira","email":"amira@uni.example","password":"correct-horse","university":"Cardiff University","student_number":"C1234567"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/register/seeker", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"seeker-1"`)
}

func TestHandler_RegisterOwnerDuplicateEmail(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().
		RegisterOwner(gomock.Any(), gomock.Any()).
		Return(actorDto.ActorResponse{}, failure.Conflict("email already registered"))

	body := `{"name":"Gareth","email":"gareth@lets.example","password":"correct-horse"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/register/owner", strings.NewReader(body)))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"error":"email already registered"}`, rec.Body.String())
}

func TestHandler_LoginValidation(t *testing.T) {
	router, _ := newRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"not-an-email","password":"x"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "email must be a valid email address")
}

func TestHandler_Logout(t *testing.T) {
	exp := time.Now().Add(time.Hour)

	withToken := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), constant.ContextKeyTokenID, "tid-1")
			ctx = context.WithValue(ctx, constant.ContextKeyTokenExp, exp)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}

	router, svc := newRouter(t, withToken)

	svc.EXPECT().Logout(gomock.Any(), "tid-1", exp).Return(nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_LogoutWithoutToken(t *testing.T) {
	router, _ := newRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
