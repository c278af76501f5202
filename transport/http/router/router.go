package router

import (
	"lodge/internal/handlers/audit"
	"lodge/internal/handlers/booking"
	"lodge/internal/handlers/customer"
	"lodge/internal/handlers/inventory"
	"lodge/internal/handlers/ledger"
	"lodge/internal/handlers/room"
	"lodge/internal/handlers/settings"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Room      room.Handler
	Customer  customer.Handler
	Booking   booking.Handler
	Ledger    ledger.Handler
	Inventory inventory.Handler
	Settings  settings.Handler
	Audit     audit.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Customer.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Ledger.Router(routerGroup)
		r.DomainHandlers.Inventory.Router(routerGroup)
		r.DomainHandlers.Settings.Router(routerGroup)
		r.DomainHandlers.Audit.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
