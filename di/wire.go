//go:build wireinject
// +build wireinject

package di

import (
	"voyage/config"
	"voyage/infras/jwt"
	"voyage/infras/kafka"
	"voyage/infras/otel"
	"voyage/infras/postgres"
	"voyage/infras/redis"
	"voyage/permissions"
	"voyage/shared/cache"
	"voyage/transport/http"
	"voyage/transport/http/middleware"
	"voyage/transport/http/router"

	amenityRepository "voyage/internal/domains/amenity/repository"
	amenityService "voyage/internal/domains/amenity/service"
	bookingReference "voyage/internal/domains/booking/reference"
	bookingRepository "voyage/internal/domains/booking/repository"
	bookingService "voyage/internal/domains/booking/service"
	cascadeRepository "voyage/internal/domains/cascade/repository"
	cascadeService "voyage/internal/domains/cascade/service"
	destinationRepository "voyage/internal/domains/destination/repository"
	destinationService "voyage/internal/domains/destination/service"
	hotelRepository "voyage/internal/domains/hotel/repository"
	hotelService "voyage/internal/domains/hotel/service"
	inventoryRepository "voyage/internal/domains/inventory/repository"
	inventoryService "voyage/internal/domains/inventory/service"
	paymentRepository "voyage/internal/domains/payment/repository"
	paymentService "voyage/internal/domains/payment/service"
	reviewRepository "voyage/internal/domains/review/repository"
	reviewService "voyage/internal/domains/review/service"
	roomTypeRepository "voyage/internal/domains/roomtype/repository"
	roomTypeService "voyage/internal/domains/roomtype/service"

	amenityHandler "voyage/internal/handlers/amenity"
	bookingHandler "voyage/internal/handlers/booking"
	destinationHandler "voyage/internal/handlers/destination"
	hotelHandler "voyage/internal/handlers/hotel"
	paymentHandler "voyage/internal/handlers/payment"
	reviewHandler "voyage/internal/handlers/review"
	roomTypeHandler "voyage/internal/handlers/roomtype"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var catalogueDomain = wire.NewSet(
	destinationRepository.New,
	destinationService.New,
	amenityRepository.New,
	amenityService.New,
	hotelRepository.New,
	hotelService.New,
	roomTypeRepository.New,
	roomTypeService.New,
	cascadeRepository.New,
	cascadeService.New,
)

var bookingDomain = wire.NewSet(
	inventoryRepository.New,
	inventoryService.New,
	bookingReference.New,
	bookingRepository.New,
	bookingService.New,
	paymentRepository.New,
	paymentService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var domains = wire.NewSet(
	catalogueDomain,
	bookingDomain,
	reviewDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	destinationHandler.New,
	amenityHandler.New,
	hotelHandler.New,
	roomTypeHandler.New,
	bookingHandler.New,
	paymentHandler.New,
	reviewHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
