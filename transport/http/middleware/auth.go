package middleware

import (
	"context"
	"errors"
	"net/http"
	"slices"

	"rentals/infras/jwt"
	"rentals/infras/otel"
	"rentals/permissions"
	"rentals/shared"
	"rentals/shared/cache"
	"rentals/shared/constant"
	"rentals/shared/failure"
	"rentals/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Auth defines the interface for authentication middleware
type Auth interface {
	Auth(http.Handler) http.Handler
}

// Role defines the interface for role-based access control middleware
type Role interface {
	RBAC(http.Handler) http.Handler
}

// AuthRole combines all middleware interfaces
type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
	cache      cache.RedisCache
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData, cache cache.RedisCache) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		otel:       otel,
		permission: permissions,
		cache:      cache,
	}
}

// endpoint resolves the route pattern of the request, e.g. /v1/rooms/{id}.
func (m *authRoleImpl) endpoint(request *http.Request) (permissions.Permission, string) {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil || m.permission == nil {
		return permissions.Permission{}, request.URL.Path
	}

	path := rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)

	return m.permission.FindPermissions(path, request.Method), path
}

// Auth validates JWT access tokens. Endpoints marked skip in the
// permissions file are public.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")

		permission, path := m.endpoint(request)
		if permission.Skip || (m.permission != nil && m.permission.Skip) {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       path,
			"http.method":     request.Method,
		})

		reject := func(err error) {
			response.WithError(writer, err)

			scope.TraceError(err)
			scope.End()
		}

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader == constant.Empty {
			reject(failure.Unauthorized("Missing authorization header"))

			return
		}

		tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
		if err != nil {
			reject(failure.Unauthorized("Invalid authorization header format"))

			return
		}

		claims, err := m.jwtService.ValidateToken(ctx, tokenString, jwt.AccessToken)
		if err != nil {
			var message string

			switch {
			case errors.Is(err, jwt.ErrExpiredToken):
				message = "Token has expired"
			case errors.Is(err, jwt.ErrInvalidToken):
				message = "Invalid token"
			case errors.Is(err, jwt.ErrInvalidClaim):
				message = "Invalid token claims"
			default:
				message = "Token validation failed"
			}

			reject(failure.Unauthorized(message))

			return
		}

		if m.revoked(ctx, claims.TokenID) {
			reject(failure.Unauthorized("Token has been revoked"))

			return
		}

		ctx = context.WithValue(ctx, constant.ContextKeyActorID, claims.ActorID)
		ctx = context.WithValue(ctx, constant.ContextKeyActorEmail, claims.Email)
		ctx = context.WithValue(ctx, constant.ContextKeyActorRole, claims.Role)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		if claims.ExpiresAt != nil {
			ctx = context.WithValue(ctx, constant.ContextKeyTokenExp, claims.ExpiresAt.Time)
		}

		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// revoked fails open: a cache outage must not lock every actor out.
func (m *authRoleImpl) revoked(ctx context.Context, tokenID string) bool {
	if m.cache == nil || tokenID == constant.Empty {
		return false
	}

	var stored string

	err := m.cache.Get(ctx, shared.BuildCacheKey(constant.CacheKeyRevokedToken, tokenID), &stored)

	switch {
	case err == nil:
		return true
	case errors.Is(err, cache.Nil):
		return false
	default:
		log.Warn().Err(err).Str("token_id", tokenID).Msg("failed to check token revocation")

		return false
	}
}

// RBAC checks if the actor's role is allowed on the endpoint.
// Requires prior authentication via Auth middleware
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "rbac.middleware")

		if m.permission == nil {
			scope.End()
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		permission, _ := m.endpoint(request)
		if m.permission.Skip || permission.Skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		role, _ := request.Context().Value(constant.ContextKeyActorRole).(string)

		// Empty permission lists admit every authenticated role.
		if len(permission.Permissions) > 0 && !slices.Contains(permission.Permissions, role) {
			err := failure.ForbiddenError
			scope.TraceError(err)
			scope.SetAttributes(map[string]any{
				"actor_role":    role,
				"allowed_roles": permission.Permissions,
				"reason":        "role_not_allowed",
			})
			scope.End()
			response.WithError(writer, err)

			return
		}

		scope.End()
		next.ServeHTTP(writer, request)
	})
}
