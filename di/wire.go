//go:build wireinject
// +build wireinject

package di

import (
	"rentals/config"
	"rentals/infras/jwt"
	"rentals/infras/memory"
	"rentals/infras/otel"
	"rentals/infras/redis"
	"rentals/permissions"
	"rentals/shared/cache"
	"rentals/transport/http"
	"rentals/transport/http/middleware"
	"rentals/transport/http/router"

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

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	jwt.New,
	memory.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var repositories = wire.NewSet(
	actorRepository.New,
	listingRepository.New,
	reservationRepository.New,
)

var domains = wire.NewSet(
	authService.New,
	listingService.New,
	searchService.New,
	reservationService.New,
	adminService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	listingHandler.New,
	searchHandler.New,
	reservationHandler.New,
	adminHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		repositories,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
