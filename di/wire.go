//go:build wireinject
// +build wireinject

package di

import (
	"lodge/config"
	"lodge/infras/jwt"
	"lodge/infras/kafka"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/infras/redis"
	"lodge/permissions"
	"lodge/shared/cache"
	"lodge/transport/http"
	"lodge/transport/http/middleware"
	"lodge/transport/http/router"

	auditRepository "lodge/internal/domains/audit/repository"
	auditService "lodge/internal/domains/audit/service"
	billingService "lodge/internal/domains/billing/service"
	bookingRepository "lodge/internal/domains/booking/repository"
	bookingService "lodge/internal/domains/booking/service"
	customerRepository "lodge/internal/domains/customer/repository"
	customerService "lodge/internal/domains/customer/service"
	inventoryRepository "lodge/internal/domains/inventory/repository"
	inventoryService "lodge/internal/domains/inventory/service"
	ledgerRepository "lodge/internal/domains/ledger/repository"
	ledgerService "lodge/internal/domains/ledger/service"
	roomRepository "lodge/internal/domains/room/repository"
	roomService "lodge/internal/domains/room/service"
	settingsRepository "lodge/internal/domains/settings/repository"
	settingsService "lodge/internal/domains/settings/service"

	auditHandler "lodge/internal/handlers/audit"
	bookingHandler "lodge/internal/handlers/booking"
	customerHandler "lodge/internal/handlers/customer"
	inventoryHandler "lodge/internal/handlers/inventory"
	ledgerHandler "lodge/internal/handlers/ledger"
	roomHandler "lodge/internal/handlers/room"
	settingsHandler "lodge/internal/handlers/settings"

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

var auditDomain = wire.NewSet(
	auditRepository.New,
	auditService.New,
)

var settingsDomain = wire.NewSet(
	settingsRepository.New,
	settingsService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomRepository.NewCategory,
	roomService.New,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
)

var ledgerDomain = wire.NewSet(
	ledgerRepository.NewWallets,
	ledgerRepository.NewEntries,
	ledgerService.New,
)

var inventoryDomain = wire.NewSet(
	inventoryRepository.NewStockItems,
	inventoryRepository.NewLogs,
	inventoryService.New,
)

var billingDomain = wire.NewSet(
	billingService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingRepository.NewService,
	bookingService.New,
)

var domains = wire.NewSet(
	auditDomain,
	settingsDomain,
	roomDomain,
	customerDomain,
	ledgerDomain,
	inventoryDomain,
	billingDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	customerHandler.New,
	bookingHandler.New,
	ledgerHandler.New,
	inventoryHandler.New,
	settingsHandler.New,
	auditHandler.New,
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
