package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"lodge/infras/otel"
	"lodge/internal/domains/billing/model"
	"lodge/internal/domains/billing/surcharge"
	"lodge/internal/domains/billing/tariff"
	bookingModel "lodge/internal/domains/booking/model"
	bookingRepo "lodge/internal/domains/booking/repository"
	customerModel "lodge/internal/domains/customer/model"
	customerRepo "lodge/internal/domains/customer/repository"
	roomModel "lodge/internal/domains/room/model"
	roomRepo "lodge/internal/domains/room/repository"
	settingsService "lodge/internal/domains/settings/service"
	"lodge/shared"
	"lodge/shared/constant"
	"lodge/shared/failure"
)

type Billing interface {
	Calculate(ctx context.Context, bookingID string, asOf time.Time) (model.Bill, error)
	ComposeForBooking(ctx context.Context, booking bookingModel.Booking, services []bookingModel.Service, asOf time.Time, discount, existingDebt int64) (model.Bill, error)
}

type serviceImpl struct {
	bookings  bookingRepo.Booking
	consumed  bookingRepo.Service
	rooms     roomRepo.Room
	category  roomRepo.Category
	customers customerRepo.Customer
	settings  settingsService.Settings
	otel      otel.Otel
}

func New(bookings bookingRepo.Booking, consumed bookingRepo.Service, rooms roomRepo.Room, category roomRepo.Category, customers customerRepo.Customer, settings settingsService.Settings, otel otel.Otel) Billing {
	return &serviceImpl{
		bookings:  bookings,
		consumed:  consumed,
		rooms:     rooms,
		category:  category,
		customers: customers,
		settings:  settings,
		otel:      otel,
	}
}

// Calculate previews the bill for a booking as it stands at the given moment.
// Reading only; nothing about the booking changes.
func (s *serviceImpl) Calculate(ctx context.Context, bookingID string, asOf time.Time) (bill model.Bill, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Calculate")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.bookings.Get(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return bill, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return bill, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	if booking.Status == bookingModel.StatusCancelled {
		return bill, failure.InvalidState("booking is cancelled") //nolint:wrapcheck
	}

	services, err := s.consumed.GetAllForBooking(ctx, bookingID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking services")

		return bill, fmt.Errorf("failed to get booking services: %w", err)
	}

	debt, err := s.existingDebt(ctx, booking)
	if err != nil {
		return bill, err
	}

	return s.ComposeForBooking(ctx, booking, services, asOf, booking.Discount, debt)
}

// existingDebt looks up the guest's outstanding debt so a live bill collects
// it along with the stay. A settled booking keeps its recorded figures, so its
// bill never picks up debt movements that happened afterwards.
func (s *serviceImpl) existingDebt(ctx context.Context, booking bookingModel.Booking) (int64, error) {
	if booking.CustomerID == nil || booking.Status != bookingModel.StatusCheckedIn {
		return 0, nil
	}

	customer, err := s.customers.Get(ctx, shared.FilterByID(*booking.CustomerID, customerModel.FieldID, customerModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer")

		return 0, fmt.Errorf("failed to get customer: %w", err)
	}

	return customer.Debt, nil
}

// ComposeForBooking freezes the configuration snapshot and the category rates,
// then composes the bill for the booking. A settled booking is always billed
// at its recorded checkout time regardless of asOf.
func (s *serviceImpl) ComposeForBooking(ctx context.Context, booking bookingModel.Booking, services []bookingModel.Service, asOf time.Time, discount, existingDebt int64) (bill model.Bill, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ComposeForBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, err := s.rooms.Get(ctx, shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return bill, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return bill, failure.NotFound("room not found") //nolint:wrapcheck
	}

	category, err := s.category.Get(ctx, shared.FilterByID(room.CategoryID, roomModel.CategoryFieldID, roomModel.CategoryTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room category")

		return bill, fmt.Errorf("failed to get room category: %w", err)
	}

	if category.ID == constant.Empty {
		return bill, failure.InsufficientConfig("room has no rate category") //nolint:wrapcheck
	}

	snap, err := s.settings.Snapshot(ctx)
	if err != nil {
		return bill, err
	}

	mode, err := tariff.ParseMode(booking.Mode)
	if err != nil {
		return bill, err
	}

	checkOut := asOf
	if booking.CheckedOutAt != nil {
		checkOut = *booking.CheckedOutAt
	}

	lines := make([]model.ServiceLine, len(services))
	for i, service := range services {
		lines[i] = model.ServiceLine{
			Name:      service.Name,
			Quantity:  service.Quantity,
			UnitPrice: service.UnitPrice,
		}
	}

	return model.Compose(model.ComposeInput{
		Tariff: tariff.Input{
			Mode:         mode,
			CheckIn:      booking.CheckIn,
			CheckOut:     checkOut,
			Rates:        category.Rates(),
			Settings:     snap.Tariff,
			CustomPrice:  booking.CustomPrice,
			CustomReason: booking.CustomPriceReason,
		},
		EarlyBands:         snap.EarlyBands,
		LateBands:          snap.LateBands,
		OccupantFeeEnabled: category.ExtraChargeEnabled,
		Occupancy: surcharge.Occupancy{
			ExtraAdults:   booking.ExtraAdults,
			ExtraChildren: booking.ExtraChildren,
		},
		ExtraAdultRate:     category.ExtraAdultRate,
		ExtraChildRate:     category.ExtraChildRate,
		CustomSurcharge:    booking.CustomSurcharge,
		CustomSurchargeWhy: booking.CustomSurchargeReason,
		Services:           lines,
		ServiceFeePercent:  snap.ServiceFeePercent,
		VatPercent:         snap.VatPercent,
		Discount:           discount,
		Deposit:            booking.Deposit,
		ExistingDebt:       existingDebt,
	})
}
