package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rentals/infras/jwt"
	jwtMocks "rentals/infras/jwt/mocks"
	"rentals/infras/otel/mocks"
	"rentals/permissions"
	"rentals/shared"
	"rentals/shared/cache"
	cacheMocks "rentals/shared/cache/mocks"
	"rentals/shared/constant"
	"rentals/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var testPermissions = &permissions.PermissionData{
	Endpoints: []permissions.Permission{
		{Path: "/rooms/search", Method: http.MethodGet, Skip: true},
		{Path: "/requests", Method: http.MethodPost, Permissions: []string{"seeker"}},
		{Path: "/auth/logout", Method: http.MethodPost, Permissions: []string{}},
	},
}

func newAuthRouter(t *testing.T) (http.Handler, *jwtMocks.MockJWT, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	authRole := middleware.NewAuthRoleMiddleware(mockJWT, mocks.NewOtel(), testPermissions, mockCache)

	echoActor := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actorID, _ := shared.ActorIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(actorID))
	})

	router := chi.NewRouter()
	router.Use(authRole.Auth)
	router.Use(authRole.RBAC)
	router.Get("/rooms/search", echoActor)
	router.Post("/requests", echoActor)
	router.Post("/auth/logout", echoActor)

	return router, mockJWT, mockCache
}

func claims(role string) *jwt.Claims {
	return &jwt.Claims{
		ActorID: "actor-1",
		Email:   "amira@uni.example",
		Role:    role,
		TokenID: "tid-1",
		Type:    jwt.AccessToken,
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestAuth_PublicEndpointSkipsToken(t *testing.T) {
	router, _, _ := newAuthRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms/search", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_MissingHeader(t *testing.T) {
	router, _, _ := newAuthRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/requests", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Missing authorization header"}`, rec.Body.String())
}

func TestAuth_ExpiredToken(t *testing.T) {
	router, mockJWT, _ := newAuthRouter(t)

	mockJWT.EXPECT().ValidateToken(gomock.Any(), "stale", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)

	req := httptest.NewRequest(http.MethodPost, "/requests", nil)
	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer stale")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Token has expired"}`, rec.Body.String())
}

func TestAuth_RoleGate(t *testing.T) {
	tests := []struct {
		name string
		role string
		code int
	}{
		{name: "seeker may submit", role: "seeker", code: http.StatusOK},
		{name: "owner may not submit", role: "owner", code: http.StatusForbidden},
		{name: "administrator may not submit", role: "administrator", code: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockJWT, mockCache := newAuthRouter(t)

			mockJWT.EXPECT().ValidateToken(gomock.Any(), "token", jwt.AccessToken).Return(claims(tt.role), nil)
			mockCache.EXPECT().Get(gomock.Any(), "token:revoked:tid-1", gomock.Any()).Return(cache.Nil)

			req := httptest.NewRequest(http.MethodPost, "/requests", nil)
			req.Header.Set(constant.RequestHeaderAuthorization, "Bearer token")

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.code, rec.Code)

			if tt.code == http.StatusOK {
				assert.Equal(t, "actor-1", rec.Body.String())
			}
		})
	}
}

func TestAuth_RevokedToken(t *testing.T) {
	router, mockJWT, mockCache := newAuthRouter(t)

	mockJWT.EXPECT().ValidateToken(gomock.Any(), "token", jwt.AccessToken).Return(claims("seeker"), nil)
	mockCache.EXPECT().Get(gomock.Any(), "token:revoked:tid-1", gomock.Any()).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer token")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Token has been revoked"}`, rec.Body.String())
}
