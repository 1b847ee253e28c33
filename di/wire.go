//go:build wireinject
// +build wireinject

package di

import (
	"reception/config"
	"reception/infras/jwt"
	"reception/infras/kafka"
	"reception/infras/otel"
	"reception/infras/postgres"
	"reception/infras/redis"
	"reception/internal/events"
	"reception/permissions"
	"reception/shared/cache"
	"reception/transport/http"
	"reception/transport/http/middleware"
	"reception/transport/http/router"

	bookingRepository "reception/internal/domains/booking/repository"
	bookingService "reception/internal/domains/booking/service"
	chargeRepository "reception/internal/domains/charge/repository"
	chargeService "reception/internal/domains/charge/service"
	roomRepository "reception/internal/domains/room/repository"
	roomService "reception/internal/domains/room/service"

	bookingHandler "reception/internal/handlers/booking"
	chargeHandler "reception/internal/handlers/charge"
	roomHandler "reception/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	permissions.Get,
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var eventing = wire.NewSet(
	events.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var chargeDomain = wire.NewSet(
	chargeRepository.New,
	chargeService.New,
)

var domains = wire.NewSet(
	bookingDomain,
	roomDomain,
	chargeDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	roomHandler.New,
	chargeHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		eventing,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
