package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lodge/config"
	"lodge/infras/otel/mocks"
	"lodge/infras/postgres"
	auditMocks "lodge/internal/domains/audit/mocks"
	billingMocks "lodge/internal/domains/billing/mocks"
	billingModel "lodge/internal/domains/billing/model"
	bookingMocks "lodge/internal/domains/booking/mocks"
	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/service"
	customerMocks "lodge/internal/domains/customer/mocks"
	customerModel "lodge/internal/domains/customer/model"
	inventoryMocks "lodge/internal/domains/inventory/mocks"
	inventoryModel "lodge/internal/domains/inventory/model"
	ledgerMocks "lodge/internal/domains/ledger/mocks"
	ledgerModel "lodge/internal/domains/ledger/model"
	roomMocks "lodge/internal/domains/room/mocks"
	roomModel "lodge/internal/domains/room/model"
	settingsMocks "lodge/internal/domains/settings/mocks"
	settingsModel "lodge/internal/domains/settings/model"
	cacheMocks "lodge/shared/cache/mocks"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
)

type fixtures struct {
	bookings  *bookingMocks.MockBooking
	consumed  *bookingMocks.MockService
	rooms     *roomMocks.MockRoom
	category  *roomMocks.MockCategory
	customers *customerMocks.MockCustomer
	inventory *inventoryMocks.MockInventory
	billing   *billingMocks.MockBilling
	ledger    *ledgerMocks.MockLedger
	audit     *auditMocks.MockAuditService
	settings  *settingsMocks.MockSettingsService
	cache     *cacheMocks.MockRedisCache
}

func newFixtures(ctrl *gomock.Controller) *fixtures {
	return &fixtures{
		bookings:  bookingMocks.NewMockBooking(ctrl),
		consumed:  bookingMocks.NewMockService(ctrl),
		rooms:     roomMocks.NewMockRoom(ctrl),
		category:  roomMocks.NewMockCategory(ctrl),
		customers: customerMocks.NewMockCustomer(ctrl),
		inventory: inventoryMocks.NewMockInventory(ctrl),
		billing:   billingMocks.NewMockBilling(ctrl),
		ledger:    ledgerMocks.NewMockLedger(ctrl),
		audit:     auditMocks.NewMockAuditService(ctrl),
		settings:  settingsMocks.NewMockSettingsService(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}
}

func (f *fixtures) build(db *postgres.Connection) service.Booking {
	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(
		f.bookings,
		f.consumed,
		f.rooms,
		f.category,
		f.customers,
		f.inventory,
		f.billing,
		f.ledger,
		f.audit,
		f.settings,
		db,
		cfg,
		f.cache,
		mocks.NewOtel(),
	)
}

func (f *fixtures) allowCacheInvalidation() {
	f.cache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	f.cache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
}

func newService(t *testing.T) (service.Booking, *fixtures) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := newFixtures(ctrl)

	return f.build(nil), f
}

// newDBService backs the service with a sqlmock connection so flows running
// inside WithTx can be exercised end to end. Repositories stay mocked; the
// database only sees the transaction begin and its outcome.
func newDBService(t *testing.T) (service.Booking, *fixtures, sqlmock.Sqlmock) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	f := newFixtures(ctrl)

	return f.build(&postgres.Connection{Write: sqlx.NewDb(db, "postgres")}), f, dbMock
}

func TestBookingService_CheckoutSettlesOnlyOnce(t *testing.T) {
	svc, f, dbMock := newDBService(t)

	dbMock.ExpectBegin()
	dbMock.ExpectRollback()

	// The ledger mock carries no expectations: any wallet movement during the
	// replayed checkout fails the test.
	f.bookings.EXPECT().
		GetForUpdateTx(gomock.Any(), gomock.Any(), "booking-id").
		Return(model.Booking{ID: "booking-id", Status: model.StatusCheckedOut}, nil)

	_, err := svc.ProcessCheckout(context.Background(), "booking-id", dto.CheckoutRequest{
		PaymentMethod: "cash",
		PaidAmount:    100000,
	})

	require.Error(t, err)
	assert.ErrorContains(t, err, "already settled")
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestBookingService_CheckInConsumesDeskServices(t *testing.T) {
	svc, f, dbMock := newDBService(t)

	dbMock.ExpectBegin()
	dbMock.ExpectCommit()

	f.allowCacheInvalidation()

	snap, err := settingsModel.Setting{ID: settingsModel.SingletonID}.Snapshot()
	require.NoError(t, err)

	f.rooms.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(roomModel.Room{ID: "room-id", CategoryID: "category-id"}, nil)

	f.category.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(roomModel.Category{ID: "category-id", DailyRate: 200000}, nil)

	f.settings.EXPECT().
		Snapshot(gomock.Any()).
		Return(snap, nil)

	f.rooms.EXPECT().
		GetForUpdateTx(gomock.Any(), gomock.Any(), "room-id").
		Return(roomModel.Room{ID: "room-id", Active: true, Status: roomModel.StatusAvailable}, nil)

	f.bookings.EXPECT().
		InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	f.rooms.EXPECT().
		SetStatusTx(gomock.Any(), gomock.Any(), "room-id", roomModel.StatusOccupied, gomock.Any()).
		Return(nil)

	f.inventory.EXPECT().
		ConsumeTx(gomock.Any(), gomock.Any(), "item-id", int64(2), gomock.Any()).
		Return(inventoryModel.StockItem{ID: "item-id", Name: "Mineral Water", Price: 5000, Cost: 3000}, nil)

	f.consumed.EXPECT().
		InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, service model.Service) error {
			assert.Equal(t, "item-id", service.StockItemID)
			assert.Equal(t, int64(2), service.Quantity)
			assert.Equal(t, int64(5000), service.UnitPrice)

			return nil
		})

	f.bookings.EXPECT().
		UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, int64(160000), fields["recognized_amount"])

			return nil
		})

	var propagated []ledgerModel.Event

	f.ledger.EXPECT().
		Propagate(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, event ledgerModel.Event) ([]ledgerModel.Entry, error) {
			propagated = append(propagated, event)

			return nil, nil
		}).
		Times(2)

	f.ledger.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		Times(2)

	f.audit.EXPECT().
		RecordTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	res, err := svc.CheckIn(context.Background(), dto.CheckInRequest{
		RoomID:            "room-id",
		GuestName:         "Walk In",
		Mode:              "daily",
		CustomPrice:       ptr(int64(150000)),
		CustomPriceReason: "corporate rate",
		Services:          []dto.AddServiceRequest{{StockItemID: "item-id", Quantity: 2}},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(160000), res.RecognizedAmount)
	require.Len(t, res.Services, 1)
	assert.Equal(t, int64(10000), res.Services[0].Total)

	types := make([]ledgerModel.EventType, 0, len(propagated))
	for _, event := range propagated {
		types = append(types, event.Type)
	}

	assert.Contains(t, types, ledgerModel.EventServiceSold)
	assert.Contains(t, types, ledgerModel.EventCheckInDebtRecognized)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestBookingService_CheckoutAppliesDeskSurcharge(t *testing.T) {
	svc, f, dbMock := newDBService(t)

	dbMock.ExpectBegin()
	dbMock.ExpectCommit()

	f.allowCacheInvalidation()

	f.bookings.EXPECT().
		GetForUpdateTx(gomock.Any(), gomock.Any(), "booking-id").
		Return(model.Booking{
			ID:                    "booking-id",
			RoomID:                "room-id",
			Status:                model.StatusCheckedIn,
			Mode:                  "daily",
			CustomSurcharge:       10000,
			CustomSurchargeReason: "broken glass",
			RecognizedAmount:      200000,
		}, nil)

	f.consumed.EXPECT().
		GetAllTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)

	f.billing.EXPECT().
		ComposeForBooking(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), int64(0), int64(0)).
		DoAndReturn(func(_ context.Context, booking model.Booking, _ []model.Service, _ time.Time, _, _ int64) (billingModel.Bill, error) {
			// The desk surcharge stacks on what check-in recorded and the
			// fresher reason wins.
			assert.Equal(t, int64(35000), booking.CustomSurcharge)
			assert.Equal(t, "late night cleaning", booking.CustomSurchargeReason)

			return billingModel.Bill{Total: 235000, AmountToPay: 235000}, nil
		})

	f.ledger.EXPECT().
		Propagate(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)

	f.ledger.EXPECT().
		Publish(gomock.Any(), gomock.Any())

	f.bookings.EXPECT().
		UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, int64(35000), fields["custom_surcharge"])
			assert.Equal(t, "late night cleaning", fields["custom_surcharge_reason"])
			assert.Equal(t, "guest kept the key card", fields["notes"])

			return nil
		})

	f.rooms.EXPECT().
		SetStatusTx(gomock.Any(), gomock.Any(), "room-id", roomModel.StatusAvailable, gomock.Any()).
		Return(nil)

	f.audit.EXPECT().
		RecordTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	res, err := svc.ProcessCheckout(context.Background(), "booking-id", dto.CheckoutRequest{
		PaymentMethod:   "cash",
		PaidAmount:      235000,
		Surcharge:       25000,
		SurchargeReason: "late night cleaning",
		Notes:           "guest kept the key card",
	})

	require.NoError(t, err)
	assert.Zero(t, res.DebtRecorded)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestBookingService_RemoveServiceReversesOriginalSale(t *testing.T) {
	svc, f, dbMock := newDBService(t)

	dbMock.ExpectBegin()
	dbMock.ExpectCommit()

	f.allowCacheInvalidation()

	stockID := "item-id"
	sale := []ledgerModel.Entry{
		{
			ID: "sale-in", EventID: "ev1", Wallet: "receivable", Direction: ledgerModel.DirectionIn,
			Amount: 10000, Category: ledgerModel.CategoryServiceSale,
			EventType: string(ledgerModel.EventServiceSold), StockItemID: &stockID,
		},
		{
			ID: "sale-out", EventID: "ev1", Wallet: "revenue", Direction: ledgerModel.DirectionOut,
			Amount: 10000, Category: ledgerModel.CategoryServiceSale,
			EventType: string(ledgerModel.EventServiceSold), StockItemID: &stockID,
		},
	}

	f.bookings.EXPECT().
		GetForUpdateTx(gomock.Any(), gomock.Any(), "booking-id").
		Return(model.Booking{ID: "booking-id", Status: model.StatusCheckedIn, RecognizedAmount: 210000}, nil)

	f.consumed.EXPECT().
		GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(model.Service{ID: "service-id", BookingID: "booking-id", StockItemID: stockID, Quantity: 2, UnitPrice: 5000}, nil)

	f.inventory.EXPECT().
		RestockTx(gomock.Any(), gomock.Any(), stockID, int64(2), "booking-id").
		Return(nil)

	f.consumed.EXPECT().
		DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	f.ledger.EXPECT().
		EntriesForBookingTx(gomock.Any(), gomock.Any(), "booking-id").
		Return(sale, nil)

	f.ledger.EXPECT().
		Propagate(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, event ledgerModel.Event) ([]ledgerModel.Entry, error) {
			require.NoError(t, event.Validate())
			require.Len(t, event.Deltas, 2)

			for i, delta := range event.Deltas {
				assert.Equal(t, sale[i].ID, delta.ReversalOf)
				assert.Equal(t, -sale[i].Signed(), delta.Amount)
			}

			return nil, nil
		})

	f.ledger.EXPECT().
		Publish(gomock.Any(), gomock.Any())

	f.bookings.EXPECT().
		UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, int64(200000), fields["recognized_amount"])

			return nil
		})

	f.audit.EXPECT().
		RecordTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	err := svc.RemoveService(context.Background(), "booking-id", "service-id")

	assert.NoError(t, err)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestBookingService_Get(t *testing.T) {
	svc, f := newService(t)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "cache hit",
			setupMock: func() {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, booking from db",
			setupMock: func() {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{ID: "booking-id", Status: model.StatusCheckedIn}, nil)

				f.consumed.EXPECT().
					GetAllForBooking(gomock.Any(), "booking-id").
					Return([]model.Service{{ID: "service-id", Quantity: 2, UnitPrice: 10000}}, nil)

				f.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			setupMock: func() {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				f.bookings.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.Get(context.Background(), "booking-id")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestBookingService_GetAll(t *testing.T) {
	svc, f := newService(t)

	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	f.bookings.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	f.bookings.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Booking{{ID: "booking-id", Status: model.StatusCheckedIn}}, nil)

	f.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Limit: 10}, gDto.FilterGroup{})

	require.NoError(t, err)
	assert.Len(t, res.Bookings, 1)
	assert.Equal(t, 1, res.TotalData)
}

func TestBookingService_CheckInValidation(t *testing.T) {
	svc, f := newService(t)

	tests := []struct {
		name      string
		req       dto.CheckInRequest
		setupMock func()
	}{
		{
			name: "malformed check_in",
			req: dto.CheckInRequest{
				RoomID:  "room-id",
				Mode:    "daily",
				CheckIn: "yesterday",
			},
			setupMock: func() {},
		},
		{
			name: "expected check-out precedes check-in",
			req: dto.CheckInRequest{
				RoomID:           "room-id",
				Mode:             "daily",
				CheckIn:          "2025-03-02T14:00:00Z",
				ExpectedCheckOut: "2025-03-01T12:00:00Z",
			},
			setupMock: func() {},
		},
		{
			name: "deposit without payment method",
			req: dto.CheckInRequest{
				RoomID:  "room-id",
				Mode:    "daily",
				Deposit: 100000,
			},
			setupMock: func() {},
		},
		{
			name: "customer not found",
			req: dto.CheckInRequest{
				RoomID:     "room-id",
				CustomerID: ptr("customer-id"),
				Mode:       "daily",
			},
			setupMock: func() {
				f.customers.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(customerModel.Customer{}, nil)
			},
		},
		{
			name: "room not found",
			req: dto.CheckInRequest{
				RoomID:    "room-id",
				GuestName: "Walk-in",
				Mode:      "daily",
			},
			setupMock: func() {
				f.rooms.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
		},
		{
			name: "room without rate category",
			req: dto.CheckInRequest{
				RoomID:    "room-id",
				GuestName: "Walk-in",
				Mode:      "daily",
			},
			setupMock: func() {
				f.rooms.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{ID: "room-id", CategoryID: "category-id", Active: true}, nil)

				f.category.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Category{}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.CheckIn(context.Background(), tt.req)

			assert.Error(t, err)
		})
	}
}

func TestBookingService_CalculateBill(t *testing.T) {
	svc, f := newService(t)

	f.billing.EXPECT().
		Calculate(gomock.Any(), "booking-id", gomock.Any()).
		Return(billingModel.Bill{Total: 254100}, nil)

	bill, err := svc.CalculateBill(context.Background(), "booking-id")

	require.NoError(t, err)
	assert.Equal(t, int64(254100), bill.Total)
}

func TestBookingService_RejectsUnknownPaymentMethod(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	err := svc.AddDeposit(ctx, "booking-id", dto.AddDepositRequest{
		Amount:        50000,
		PaymentMethod: "crypto",
	})
	assert.Error(t, err)

	_, err = svc.ProcessCheckout(ctx, "booking-id", dto.CheckoutRequest{
		PaymentMethod: "crypto",
		PaidAmount:    100000,
	})
	assert.Error(t, err)

	err = svc.Cancel(ctx, "booking-id", dto.CancelRequest{
		Reason:               "guest changed plans",
		Penalty:              20000,
		PenaltyPaymentMethod: "crypto",
	})
	assert.Error(t, err)

	err = svc.RepayDebt(ctx, dto.RepayDebtRequest{
		CustomerID:    "customer-id",
		Amount:        50000,
		PaymentMethod: "crypto",
	})
	assert.Error(t, err)
}

func ptr[T any](v T) *T {
	return &v
}
