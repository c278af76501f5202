package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	auditModel "lodge/internal/domains/audit/model"
	auditService "lodge/internal/domains/audit/service"
	billingModel "lodge/internal/domains/billing/model"
	billingService "lodge/internal/domains/billing/service"
	"lodge/internal/domains/billing/tariff"
	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/repository"
	customerModel "lodge/internal/domains/customer/model"
	customerRepo "lodge/internal/domains/customer/repository"
	inventoryService "lodge/internal/domains/inventory/service"
	ledgerModel "lodge/internal/domains/ledger/model"
	ledgerService "lodge/internal/domains/ledger/service"
	roomModel "lodge/internal/domains/room/model"
	roomRepo "lodge/internal/domains/room/repository"
	settingsService "lodge/internal/domains/settings/service"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	CheckIn(ctx context.Context, req dto.CheckInRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	CalculateBill(ctx context.Context, id string) (billingModel.Bill, error)
	AddService(ctx context.Context, id string, req dto.AddServiceRequest) error
	RemoveService(ctx context.Context, id, serviceID string) error
	AddDeposit(ctx context.Context, id string, req dto.AddDepositRequest) error
	ProcessCheckout(ctx context.Context, id string, req dto.CheckoutRequest) (dto.CheckoutResponse, error)
	Cancel(ctx context.Context, id string, req dto.CancelRequest) error
	RepayDebt(ctx context.Context, req dto.RepayDebtRequest) error
}

type serviceImpl struct {
	bookings  repository.Booking
	consumed  repository.Service
	rooms     roomRepo.Room
	category  roomRepo.Category
	customers customerRepo.Customer
	inventory inventoryService.Inventory
	billing   billingService.Billing
	ledger    ledgerService.Ledger
	audit     auditService.Audit
	settings  settingsService.Settings
	db        *postgres.Connection
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	bookings repository.Booking,
	consumed repository.Service,
	rooms roomRepo.Room,
	category roomRepo.Category,
	customers customerRepo.Customer,
	inventory inventoryService.Inventory,
	billing billingService.Billing,
	ledger ledgerService.Ledger,
	audit auditService.Audit,
	settings settingsService.Settings,
	db *postgres.Connection,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		bookings:  bookings,
		consumed:  consumed,
		rooms:     rooms,
		category:  category,
		customers: customers,
		inventory: inventory,
		billing:   billing,
		ledger:    ledger,
		audit:     audit,
		settings:  settings,
		db:        db,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

// CheckIn opens a stay: the room is locked and flipped to occupied, the
// initial room charge is recognized as guest debt, and any deposit goes into
// escrow. All of it commits or none of it does.
func (s *serviceImpl) CheckIn(ctx context.Context, req dto.CheckInRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	checkIn := timezone.Now()
	if req.CheckIn != constant.Empty {
		checkIn, err = timezone.Parse(constant.DateFormat, req.CheckIn)
		if err != nil {
			return res, failure.Validation(fmt.Sprintf("invalid check_in time %q", req.CheckIn)) //nolint:wrapcheck
		}
	}

	var expected *time.Time

	if req.ExpectedCheckOut != constant.Empty {
		parsed, err := timezone.Parse(constant.DateFormat, req.ExpectedCheckOut)
		if err != nil {
			return res, failure.Validation(fmt.Sprintf("invalid expected_check_out time %q", req.ExpectedCheckOut)) //nolint:wrapcheck
		}

		if parsed.Before(checkIn) {
			return res, failure.Validation("expected check-out cannot precede check-in") //nolint:wrapcheck
		}

		expected = &parsed
	}

	if req.Deposit > 0 && req.DepositPaymentMethod == constant.Empty {
		return res, failure.Validation("deposit requires a payment method") //nolint:wrapcheck
	}

	if req.CustomerID != nil {
		customer, err := s.customers.Get(ctx, shared.FilterByID(*req.CustomerID, customerModel.FieldID, customerModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get customer")

			return res, fmt.Errorf("failed to get customer: %w", err)
		}

		if customer.ID == constant.Empty {
			return res, failure.NotFound("customer not found") //nolint:wrapcheck
		}
	}

	booking := req.ToModel(user, checkIn, expected)

	initialCharge, err := s.initialCharge(ctx, booking)
	if err != nil {
		return res, err
	}

	booking.RecognizedAmount = initialCharge

	debtEvent := ledgerModel.NewCheckInDebt(booking.ID, initialCharge, checkIn, user)

	var depositEvent ledgerModel.Event
	if req.Deposit > 0 {
		wallet, err := ledgerModel.WalletForPaymentMethod(req.DepositPaymentMethod)
		if err != nil {
			return res, err
		}

		depositEvent = ledgerModel.NewDepositReceived(booking.ID, wallet, req.Deposit, checkIn, user)
	}

	var (
		serviceEvents    []ledgerModel.Event
		consumedServices []model.Service
		serviceTotal     int64
	)

	err = s.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		room, err := s.rooms.GetForUpdateTx(ctx, tx, req.RoomID)
		if err != nil {
			return err
		}

		if room.ID == constant.Empty {
			return failure.NotFound("room not found") //nolint:wrapcheck
		}

		if !room.Active {
			return failure.InvalidState("room is inactive") //nolint:wrapcheck
		}

		if room.Status != roomModel.StatusAvailable {
			return failure.InvalidState("room is occupied") //nolint:wrapcheck
		}

		if err := s.bookings.InsertTx(ctx, tx, booking); err != nil {
			return err
		}

		if err := s.rooms.SetStatusTx(ctx, tx, room.ID, roomModel.StatusOccupied, user); err != nil {
			return err
		}

		for _, line := range req.Services {
			item, err := s.inventory.ConsumeTx(ctx, tx, line.StockItemID, line.Quantity, booking.ID)
			if err != nil {
				return err
			}

			service := model.Service{
				ID:          uuid.NewString(),
				BookingID:   booking.ID,
				StockItemID: item.ID,
				Name:        item.Name,
				Quantity:    line.Quantity,
				UnitPrice:   item.Price,
				UnitCost:    item.Cost,
				Metadata: gModel.Metadata{
					CreatedAt:  timezone.Now(),
					ModifiedAt: timezone.Now(),
					CreatedBy:  user,
					ModifiedBy: user,
				},
			}

			if err := s.consumed.InsertTx(ctx, tx, service); err != nil {
				return err
			}

			total := service.Total()
			serviceTotal += total

			sold := ledgerModel.NewServiceSold(booking.ID, item.ID, total, checkIn, user)

			if _, err := s.ledger.Propagate(ctx, tx, sold); err != nil {
				return err
			}

			serviceEvents = append(serviceEvents, sold)
			consumedServices = append(consumedServices, service)
		}

		if serviceTotal > 0 {
			fields := map[string]any{
				"recognized_amount":      initialCharge + serviceTotal,
				constant.FieldModifiedAt: timezone.Now(),
				constant.FieldModifiedBy: user,
			}

			if err := s.bookings.UpdateTx(ctx, tx, fields, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
				return err
			}
		}

		if initialCharge > 0 {
			if _, err := s.ledger.Propagate(ctx, tx, debtEvent); err != nil {
				return err
			}
		}

		if req.Deposit > 0 {
			if _, err := s.ledger.Propagate(ctx, tx, depositEvent); err != nil {
				return err
			}
		}

		return s.audit.RecordTx(ctx, tx, auditModel.ActionCheckIn, booking.ID, map[string]any{
			"room_id":        booking.RoomID,
			"mode":           booking.Mode,
			"initial_charge": initialCharge,
			"deposit":        booking.Deposit,
		})
	})
	if err != nil {
		return res, err
	}

	if initialCharge > 0 {
		s.ledger.Publish(ctx, debtEvent)
	}

	if req.Deposit > 0 {
		s.ledger.Publish(ctx, depositEvent)
	}

	for _, sold := range serviceEvents {
		s.ledger.Publish(ctx, sold)
	}

	s.invalidateBookingCaches(ctx, booking.ID)
	s.invalidateRoomCaches(ctx, booking.RoomID)

	booking.RecognizedAmount = initialCharge + serviceTotal

	res.FromModel(booking)
	res.WithServices(consumedServices)

	return res, nil
}

// initialCharge resolves the room charge for the minimal stay being opened.
// Settlement later recognizes only the difference between the final bill and
// this amount.
func (s *serviceImpl) initialCharge(ctx context.Context, booking model.Booking) (int64, error) {
	room, err := s.rooms.Get(ctx, shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		return 0, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return 0, failure.NotFound("room not found") //nolint:wrapcheck
	}

	category, err := s.category.Get(ctx, shared.FilterByID(room.CategoryID, roomModel.CategoryFieldID, roomModel.CategoryTableName))
	if err != nil {
		return 0, fmt.Errorf("failed to get room category: %w", err)
	}

	if category.ID == constant.Empty {
		return 0, failure.InsufficientConfig("room has no rate category") //nolint:wrapcheck
	}

	snap, err := s.settings.Snapshot(ctx)
	if err != nil {
		return 0, err
	}

	mode, err := tariff.ParseMode(booking.Mode)
	if err != nil {
		return 0, err
	}

	checkOut := booking.CheckIn
	if booking.ExpectedCheckOut != nil {
		checkOut = *booking.ExpectedCheckOut
	}

	charge, err := tariff.Resolve(tariff.Input{
		Mode:         mode,
		CheckIn:      booking.CheckIn,
		CheckOut:     checkOut,
		Rates:        category.Rates(),
		Settings:     snap.Tariff,
		CustomPrice:  booking.CustomPrice,
		CustomReason: booking.CustomPriceReason,
	})
	if err != nil {
		return 0, err
	}

	return charge.Amount, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.bookings.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	services, err := s.consumed.GetAllForBooking(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking services")

		return res, fmt.Errorf("failed to get booking services: %w", err)
	}

	res.FromModel(booking)
	res.WithServices(services)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.bookings.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.bookings.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

// CalculateBill previews the bill for an active booking as of now.
func (s *serviceImpl) CalculateBill(ctx context.Context, id string) (bill billingModel.Bill, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CalculateBill")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.billing.Calculate(ctx, id, timezone.Now())
}

// AddService consumes stock for a booking and recognizes the sale. Unit price
// and cost are snapshotted from the item at this moment.
func (s *serviceImpl) AddService(ctx context.Context, id string, req dto.AddServiceRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddService")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var event ledgerModel.Event

	err = s.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		booking, err := s.bookings.GetForUpdateTx(ctx, tx, id)
		if err != nil {
			return err
		}

		if booking.ID == constant.Empty {
			return failure.NotFound("booking not found") //nolint:wrapcheck
		}

		if booking.Status != model.StatusCheckedIn {
			return failure.InvalidState("booking is not checked in") //nolint:wrapcheck
		}

		item, err := s.inventory.ConsumeTx(ctx, tx, req.StockItemID, req.Quantity, id)
		if err != nil {
			return err
		}

		service := model.Service{
			ID:          uuid.NewString(),
			BookingID:   id,
			StockItemID: item.ID,
			Name:        item.Name,
			Quantity:    req.Quantity,
			UnitPrice:   item.Price,
			UnitCost:    item.Cost,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}

		if err := s.consumed.InsertTx(ctx, tx, service); err != nil {
			return err
		}

		total := service.Total()
		event = ledgerModel.NewServiceSold(id, item.ID, total, timezone.Now(), user)

		if _, err := s.ledger.Propagate(ctx, tx, event); err != nil {
			return err
		}

		fields := map[string]any{
			"recognized_amount":      booking.RecognizedAmount + total,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		if err := s.bookings.UpdateTx(ctx, tx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return err
		}

		return s.audit.RecordTx(ctx, tx, auditModel.ActionAddService, id, map[string]any{
			"stock_item_id": item.ID,
			"name":          item.Name,
			"quantity":      req.Quantity,
			"unit_price":    item.Price,
		})
	})
	if err != nil {
		return err
	}

	s.ledger.Publish(ctx, event)
	s.invalidateBookingCaches(ctx, id)

	return nil
}

// RemoveService undoes a consumption: stock goes back on the shelf and the
// recognized sale is backed out.
func (s *serviceImpl) RemoveService(ctx context.Context, id, serviceID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RemoveService")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var event ledgerModel.Event

	err = s.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		booking, err := s.bookings.GetForUpdateTx(ctx, tx, id)
		if err != nil {
			return err
		}

		if booking.ID == constant.Empty {
			return failure.NotFound("booking not found") //nolint:wrapcheck
		}

		if booking.Status != model.StatusCheckedIn {
			return failure.InvalidState("booking is not checked in") //nolint:wrapcheck
		}

		service, err := s.consumed.GetTx(ctx, tx, shared.FilterByID(serviceID, model.ServiceFieldID, model.ServiceTableName))
		if err != nil {
			return err
		}

		if service.ID == constant.Empty || service.BookingID != id {
			return failure.NotFound("booking service not found") //nolint:wrapcheck
		}

		if err := s.inventory.RestockTx(ctx, tx, service.StockItemID, service.Quantity, id); err != nil {
			return err
		}

		if err := s.consumed.DeleteTx(ctx, tx, shared.FilterByID(serviceID, model.ServiceFieldID, model.ServiceTableName)); err != nil {
			return err
		}

		total := service.Total()

		entries, err := s.ledger.EntriesForBookingTx(ctx, tx, id)
		if err != nil {
			return err
		}

		originals := ledgerModel.ServiceSaleEntries(entries, service.StockItemID, total)
		if len(originals) == 0 {
			return failure.InvalidState("no sale entries found for this service") //nolint:wrapcheck
		}

		event, err = ledgerModel.NewServiceRemoved(id, service.StockItemID, originals, timezone.Now(), user)
		if err != nil {
			return err
		}

		if _, err := s.ledger.Propagate(ctx, tx, event); err != nil {
			return err
		}

		fields := map[string]any{
			"recognized_amount":      booking.RecognizedAmount - total,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		if err := s.bookings.UpdateTx(ctx, tx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return err
		}

		return s.audit.RecordTx(ctx, tx, auditModel.ActionRemoveService, id, map[string]any{
			"service_id":    serviceID,
			"stock_item_id": service.StockItemID,
			"quantity":      service.Quantity,
		})
	})
	if err != nil {
		return err
	}

	s.ledger.Publish(ctx, event)
	s.invalidateBookingCaches(ctx, id)

	return nil
}

// AddDeposit escrows a further deposit on an active booking.
func (s *serviceImpl) AddDeposit(ctx context.Context, id string, req dto.AddDepositRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddDeposit")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	wallet, err := ledgerModel.WalletForPaymentMethod(req.PaymentMethod)
	if err != nil {
		return err
	}

	event := ledgerModel.NewDepositReceived(id, wallet, req.Amount, timezone.Now(), user)

	err = s.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		booking, err := s.bookings.GetForUpdateTx(ctx, tx, id)
		if err != nil {
			return err
		}

		if booking.ID == constant.Empty {
			return failure.NotFound("booking not found") //nolint:wrapcheck
		}

		if booking.Status != model.StatusCheckedIn {
			return failure.InvalidState("booking is not checked in") //nolint:wrapcheck
		}

		if _, err := s.ledger.Propagate(ctx, tx, event); err != nil {
			return err
		}

		fields := map[string]any{
			"deposit":                booking.Deposit + req.Amount,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		if err := s.bookings.UpdateTx(ctx, tx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return err
		}

		return s.audit.RecordTx(ctx, tx, auditModel.ActionAddDeposit, id, map[string]any{
			"amount":         req.Amount,
			"payment_method": req.PaymentMethod,
		})
	})
	if err != nil {
		return err
	}

	s.ledger.Publish(ctx, event)
	s.invalidateBookingCaches(ctx, id)

	return nil
}

// ProcessCheckout settles a booking: the final bill is composed, the
// unrecognized remainder is booked, the deposit is released, payment is taken
// and anything left unpaid becomes recorded customer debt. A booking settles
// exactly once; a replay fails without touching any wallet.
func (s *serviceImpl) ProcessCheckout(ctx context.Context, id string, req dto.CheckoutRequest) (res dto.CheckoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ProcessCheckout")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	wallet, err := ledgerModel.WalletForPaymentMethod(req.PaymentMethod)
	if err != nil {
		return res, err
	}

	now := timezone.Now()

	var (
		event  ledgerModel.Event
		roomID string
	)

	err = s.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		booking, err := s.bookings.GetForUpdateTx(ctx, tx, id)
		if err != nil {
			return err
		}

		if booking.ID == constant.Empty {
			return failure.NotFound("booking not found") //nolint:wrapcheck
		}

		if booking.Status == model.StatusCheckedOut {
			return failure.InvalidState("booking is already settled") //nolint:wrapcheck
		}

		if booking.Status != model.StatusCheckedIn {
			return failure.InvalidState("booking is not checked in") //nolint:wrapcheck
		}

		if req.Surcharge > 0 {
			booking.CustomSurcharge += req.Surcharge
			booking.CustomSurchargeReason = req.SurchargeReason
		}

		services, err := s.consumed.GetAllTx(ctx, tx, shared.FilterByID(id, model.ServiceFieldBookingID, model.ServiceTableName))
		if err != nil {
			return err
		}

		// Registered guests settle old debt together with this stay, so the
		// customer row is locked before the bill reads it.
		var customer customerModel.Customer

		if booking.CustomerID != nil {
			customer, err = s.customers.GetForUpdateTx(ctx, tx, *booking.CustomerID)
			if err != nil {
				return err
			}

			if customer.ID == constant.Empty {
				return failure.NotFound("customer not found") //nolint:wrapcheck
			}
		}

		bill, err := s.billing.ComposeForBooking(ctx, booking, services, now, req.Discount, customer.Debt)
		if err != nil {
			return err
		}

		cashIn := req.PaidAmount
		if cashIn > bill.AmountToPay {
			cashIn = bill.AmountToPay
		}

		changeDue := req.PaidAmount - cashIn
		debt := bill.AmountToPay - cashIn

		if debt > 0 && booking.CustomerID == nil {
			return failure.Validation("unpaid balance requires a registered customer") //nolint:wrapcheck
		}

		remainder := bill.Total - booking.RecognizedAmount

		event = ledgerModel.NewCheckoutSettled(id, wallet, remainder, bill.Discount, bill.DepositApplied, bill.DepositRefund, cashIn, now, user)

		if len(event.Deltas) > 0 {
			if _, err := s.ledger.Propagate(ctx, tx, event); err != nil {
				return err
			}
		}

		if booking.CustomerID != nil && debt != customer.Debt {
			if err := s.customers.SetDebtTx(ctx, tx, customer.ID, debt, user); err != nil {
				return err
			}
		}

		fields := map[string]any{
			model.FieldStatus:        model.StatusCheckedOut,
			"checked_out_at":         now,
			"discount":               bill.Discount,
			"payment_method":         req.PaymentMethod,
			"paid_amount":            req.PaidAmount,
			"change_due":             changeDue,
			"debt_recorded":          debt,
			"recognized_amount":      bill.Total,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}

		if req.Surcharge > 0 {
			fields["custom_surcharge"] = booking.CustomSurcharge
			fields["custom_surcharge_reason"] = booking.CustomSurchargeReason
		}

		if req.Notes != constant.Empty {
			fields["notes"] = req.Notes
		}

		if err := s.bookings.UpdateTx(ctx, tx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return err
		}

		if err := s.rooms.SetStatusTx(ctx, tx, booking.RoomID, roomModel.StatusAvailable, user); err != nil {
			return err
		}

		roomID = booking.RoomID

		if err := s.audit.RecordTx(ctx, tx, auditModel.ActionCheckout, id, map[string]any{
			"bill":           bill,
			"payment_method": req.PaymentMethod,
			"paid_amount":    req.PaidAmount,
			"change_due":     changeDue,
			"deposit_refund": bill.DepositRefund,
			"debt_recorded":  debt,
		}); err != nil {
			return err
		}

		res = dto.CheckoutResponse{
			BookingID:     id,
			Bill:          bill,
			PaidAmount:    req.PaidAmount,
			ChangeDue:     changeDue,
			DepositRefund: bill.DepositRefund,
			DebtRecorded:  debt,
			SettledAt:     timezone.Format(now, constant.DateFormat),
		}
		return nil
	})
	if err != nil {
		return res, err
	}

	if len(event.Deltas) > 0 {
		s.ledger.Publish(ctx, event)
	}

	s.invalidateBookingCaches(ctx, id)
	s.invalidateRoomCaches(ctx, roomID)

	return res, nil
}

// Cancel voids an active booking. Every automatic ledger entry it produced is
// reversed, consumed stock goes back on the shelf, and the room frees up. An
// optional penalty is collected as its own event.
func (s *serviceImpl) Cancel(ctx context.Context, id string, req dto.CancelRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := timezone.Now()

	var penaltyWallet ledgerModel.Wallet

	if req.Penalty > 0 {
		penaltyWallet, err = ledgerModel.WalletForPaymentMethod(req.PenaltyPaymentMethod)
		if err != nil {
			return err
		}
	}

	var (
		reversal, penalty ledgerModel.Event
		roomID            string
	)

	err = s.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		booking, err := s.bookings.GetForUpdateTx(ctx, tx, id)
		if err != nil {
			return err
		}

		if booking.ID == constant.Empty {
			return failure.NotFound("booking not found") //nolint:wrapcheck
		}

		if booking.Status != model.StatusCheckedIn {
			return failure.InvalidState("only a checked-in booking can be cancelled") //nolint:wrapcheck
		}

		services, err := s.consumed.GetAllTx(ctx, tx, shared.FilterByID(id, model.ServiceFieldBookingID, model.ServiceTableName))
		if err != nil {
			return err
		}

		for _, service := range services {
			if err := s.inventory.RestockTx(ctx, tx, service.StockItemID, service.Quantity, id); err != nil {
				return err
			}
		}

		if err := s.consumed.DeleteTx(ctx, tx, shared.FilterByID(id, model.ServiceFieldBookingID, model.ServiceTableName)); err != nil {
			return err
		}

		originals, err := s.ledger.EntriesForBookingTx(ctx, tx, id)
		if err != nil {
			return err
		}

		if len(originals) > 0 {
			reversal, err = ledgerModel.NewCancellationReversal(id, originals, now, user)
			if err != nil {
				return err
			}

			if _, err := s.ledger.Propagate(ctx, tx, reversal); err != nil {
				return err
			}
		}

		if req.Penalty > 0 {
			penalty = ledgerModel.NewCancellationPenalty(id, penaltyWallet, req.Penalty, now, user)

			if _, err := s.ledger.Propagate(ctx, tx, penalty); err != nil {
				return err
			}
		}

		fields := map[string]any{
			model.FieldStatus:        model.StatusCancelled,
			"recognized_amount":      int64(0),
			"notes":                  req.Reason,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}

		if err := s.bookings.UpdateTx(ctx, tx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return err
		}

		if err := s.rooms.SetStatusTx(ctx, tx, booking.RoomID, roomModel.StatusAvailable, user); err != nil {
			return err
		}

		roomID = booking.RoomID

		return s.audit.RecordTx(ctx, tx, auditModel.ActionCancel, id, map[string]any{
			"reason":  req.Reason,
			"penalty": req.Penalty,
		})
	})
	if err != nil {
		return err
	}

	if len(reversal.Deltas) > 0 {
		s.ledger.Publish(ctx, reversal)
	}

	if req.Penalty > 0 {
		s.ledger.Publish(ctx, penalty)
	}

	s.invalidateBookingCaches(ctx, id)
	s.invalidateRoomCaches(ctx, roomID)

	return nil
}

// RepayDebt collects previously recorded customer debt against the
// receivable wallet.
func (s *serviceImpl) RepayDebt(ctx context.Context, req dto.RepayDebtRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RepayDebt")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	wallet, err := ledgerModel.WalletForPaymentMethod(req.PaymentMethod)
	if err != nil {
		return err
	}

	event := ledgerModel.NewOwnerDebtRepaid(req.BookingID, wallet, req.Amount, timezone.Now(), user)

	err = s.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		customer, err := s.customers.GetForUpdateTx(ctx, tx, req.CustomerID)
		if err != nil {
			return err
		}

		if customer.ID == constant.Empty {
			return failure.NotFound("customer not found") //nolint:wrapcheck
		}

		if req.Amount > customer.Debt {
			return failure.Validation(fmt.Sprintf("repayment %d exceeds recorded debt %d", req.Amount, customer.Debt)) //nolint:wrapcheck
		}

		if err := s.customers.SetDebtTx(ctx, tx, customer.ID, customer.Debt-req.Amount, user); err != nil {
			return err
		}

		if _, err := s.ledger.Propagate(ctx, tx, event); err != nil {
			return err
		}

		return s.audit.RecordTx(ctx, tx, auditModel.ActionRepayDebt, req.BookingID, map[string]any{
			"customer_id":    req.CustomerID,
			"amount":         req.Amount,
			"payment_method": req.PaymentMethod,
		})
	})
	if err != nil {
		return err
	}

	s.ledger.Publish(ctx, event)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, "customer:get")
		shared.InvalidateCaches(c, s.cache, "customer:gets")
	}()

	return nil
}

func (s *serviceImpl) invalidateBookingCaches(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

func (s *serviceImpl) invalidateRoomCaches(ctx context.Context, roomID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey("room:get", roomID)); err != nil {
			log.Error().Err(err).Msg("failed to delete room cache")
		}

		shared.InvalidateCaches(c, s.cache, "room:gets")
	}()
}
