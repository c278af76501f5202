package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lodge/infras/otel/mocks"
	"lodge/internal/domains/billing/service"
	bookingMocks "lodge/internal/domains/booking/mocks"
	bookingModel "lodge/internal/domains/booking/model"
	customerMocks "lodge/internal/domains/customer/mocks"
	customerModel "lodge/internal/domains/customer/model"
	roomMocks "lodge/internal/domains/room/mocks"
	roomModel "lodge/internal/domains/room/model"
	settingsMocks "lodge/internal/domains/settings/mocks"
	settingsModel "lodge/internal/domains/settings/model"
)

type fixtures struct {
	bookings  *bookingMocks.MockBooking
	consumed  *bookingMocks.MockService
	rooms     *roomMocks.MockRoom
	category  *roomMocks.MockCategory
	customers *customerMocks.MockCustomer
	settings  *settingsMocks.MockSettingsService
}

func newService(t *testing.T) (service.Billing, fixtures) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := fixtures{
		bookings:  bookingMocks.NewMockBooking(ctrl),
		consumed:  bookingMocks.NewMockService(ctrl),
		rooms:     roomMocks.NewMockRoom(ctrl),
		category:  roomMocks.NewMockCategory(ctrl),
		customers: customerMocks.NewMockCustomer(ctrl),
		settings:  settingsMocks.NewMockSettingsService(ctrl),
	}

	svc := service.New(f.bookings, f.consumed, f.rooms, f.category, f.customers, f.settings, mocks.NewOtel())

	return svc, f
}

func snapshot(t *testing.T) settingsModel.Snapshot {
	t.Helper()

	snap, err := settingsModel.Setting{ID: settingsModel.SingletonID, VatPercent: 10, ServiceFeePercent: 5}.Snapshot()
	require.NoError(t, err)

	return snap
}

func TestBillingService_Calculate(t *testing.T) {
	svc, f := newService(t)

	checkIn := time.Date(2025, time.March, 1, 14, 0, 0, 0, time.UTC)
	asOf := time.Date(2025, time.March, 2, 12, 0, 0, 0, time.UTC)

	booking := bookingModel.Booking{
		ID:     "booking-id",
		RoomID: "room-id",
		Mode:   "daily",
		Status: bookingModel.StatusCheckedIn,
		CheckIn: checkIn,
	}

	room := roomModel.Room{ID: "room-id", CategoryID: "category-id"}
	category := roomModel.Category{ID: "category-id", DailyRate: 200000}

	t.Run("composes the bill for a live booking", func(t *testing.T) {
		f.bookings.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		f.consumed.EXPECT().
			GetAllForBooking(gomock.Any(), "booking-id").
			Return([]bookingModel.Service{{Name: "Laundry", Quantity: 1, UnitPrice: 20000}}, nil)

		f.rooms.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(room, nil)

		f.category.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(category, nil)

		f.settings.EXPECT().
			Snapshot(gomock.Any()).
			Return(snapshot(t), nil)

		bill, err := svc.Calculate(context.Background(), "booking-id", asOf)

		require.NoError(t, err)
		assert.Equal(t, int64(200000), bill.RoomCharge)
		assert.Equal(t, int64(20000), bill.ServiceTotal)
		assert.Equal(t, int64(220000), bill.Subtotal)
		assert.Equal(t, int64(11000), bill.ServiceFee)
		assert.Equal(t, int64(23100), bill.Vat)
		assert.Equal(t, int64(254100), bill.Total)
	})

	t.Run("merges outstanding debt for a registered guest", func(t *testing.T) {
		customerID := "customer-id"
		indebted := booking
		indebted.CustomerID = &customerID

		f.bookings.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(indebted, nil)

		f.consumed.EXPECT().
			GetAllForBooking(gomock.Any(), "booking-id").
			Return(nil, nil)

		f.customers.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(customerModel.Customer{ID: customerID, Debt: 40000}, nil)

		f.rooms.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(room, nil)

		f.category.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(category, nil)

		f.settings.EXPECT().
			Snapshot(gomock.Any()).
			Return(snapshot(t), nil)

		bill, err := svc.Calculate(context.Background(), "booking-id", asOf)

		require.NoError(t, err)
		assert.Equal(t, int64(40000), bill.ExistingDebt)
		assert.Equal(t, bill.Total+40000, bill.AmountToPay)
	})

	t.Run("booking not found", func(t *testing.T) {
		f.bookings.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(bookingModel.Booking{}, nil)

		_, err := svc.Calculate(context.Background(), "missing-id", asOf)

		assert.Error(t, err)
	})

	t.Run("cancelled booking cannot be billed", func(t *testing.T) {
		cancelled := booking
		cancelled.Status = bookingModel.StatusCancelled

		f.bookings.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(cancelled, nil)

		_, err := svc.Calculate(context.Background(), "booking-id", asOf)

		assert.Error(t, err)
	})
}

func TestBillingService_ComposeForBooking(t *testing.T) {
	svc, f := newService(t)

	checkIn := time.Date(2025, time.March, 1, 14, 0, 0, 0, time.UTC)
	checkedOut := time.Date(2025, time.March, 2, 12, 0, 0, 0, time.UTC)
	later := time.Date(2025, time.March, 5, 9, 0, 0, 0, time.UTC)

	booking := bookingModel.Booking{
		ID:           "booking-id",
		RoomID:       "room-id",
		Mode:         "daily",
		Status:       bookingModel.StatusCheckedOut,
		CheckIn:      checkIn,
		CheckedOutAt: &checkedOut,
	}

	t.Run("settled booking billed at its recorded checkout time", func(t *testing.T) {
		f.rooms.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomModel.Room{ID: "room-id", CategoryID: "category-id"}, nil)

		f.category.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomModel.Category{ID: "category-id", DailyRate: 200000}, nil)

		f.settings.EXPECT().
			Snapshot(gomock.Any()).
			Return(snapshot(t), nil)

		bill, err := svc.ComposeForBooking(context.Background(), booking, nil, later, 0, 0)

		require.NoError(t, err)
		assert.Equal(t, int64(200000), bill.RoomCharge)
	})

	t.Run("room without category is a configuration failure", func(t *testing.T) {
		f.rooms.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomModel.Room{ID: "room-id", CategoryID: "category-id"}, nil)

		f.category.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomModel.Category{}, nil)

		_, err := svc.ComposeForBooking(context.Background(), booking, nil, later, 0, 0)

		assert.Error(t, err)
	})
}
