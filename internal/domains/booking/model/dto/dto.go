package dto

import (
	"time"

	"lodge/internal/domains/billing/model"
	bookingModel "lodge/internal/domains/booking/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"

	"github.com/google/uuid"
)

type CheckInRequest struct {
	RoomID                string  `json:"room_id"                 validate:"required,uuid"`
	CustomerID            *string `json:"customer_id"             validate:"omitempty,uuid"`
	GuestName             string  `json:"guest_name"              validate:"required_without=CustomerID,omitempty,max=100"`
	Mode                  string  `json:"mode"                    validate:"required,oneof=hourly daily overnight"`
	CheckIn               string  `json:"check_in"                validate:"omitempty"`
	ExpectedCheckOut      string  `json:"expected_check_out"      validate:"omitempty"`
	CustomPrice           *int64  `json:"custom_price"            validate:"omitempty,min=0"`
	CustomPriceReason     string  `json:"custom_price_reason"     validate:"required_with=CustomPrice,omitempty,max=500"`
	CustomSurcharge       int64   `json:"custom_surcharge"        validate:"min=0"`
	CustomSurchargeReason string  `json:"custom_surcharge_reason" validate:"omitempty,max=500"`
	ExtraAdults           int     `json:"extra_adults"            validate:"min=0"`
	ExtraChildren         int     `json:"extra_children"          validate:"min=0"`
	Deposit               int64   `json:"deposit"                 validate:"min=0"`
	DepositPaymentMethod  string  `json:"deposit_payment_method"  validate:"omitempty,oneof=cash bank"`
	Notes                 string  `json:"notes"                   validate:"omitempty,max=500"`

	// Services consumed at the desk while checking in, e.g. a welcome drink.
	Services []AddServiceRequest `json:"services" validate:"omitempty,dive"`
}

func (c *CheckInRequest) ToModel(user string, checkIn time.Time, expected *time.Time) bookingModel.Booking {
	return bookingModel.Booking{
		ID:                    uuid.NewString(),
		RoomID:                c.RoomID,
		CustomerID:            c.CustomerID,
		GuestName:             c.GuestName,
		Mode:                  c.Mode,
		Status:                bookingModel.StatusCheckedIn,
		CheckIn:               checkIn,
		ExpectedCheckOut:      expected,
		CustomPrice:           c.CustomPrice,
		CustomPriceReason:     c.CustomPriceReason,
		CustomSurcharge:       c.CustomSurcharge,
		CustomSurchargeReason: c.CustomSurchargeReason,
		ExtraAdults:           c.ExtraAdults,
		ExtraChildren:         c.ExtraChildren,
		Deposit:               c.Deposit,
		Notes:                 c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type AddServiceRequest struct {
	StockItemID string `json:"stock_item_id" validate:"required,uuid"`
	Quantity    int64  `json:"quantity"      validate:"required,gt=0"`
}

type AddDepositRequest struct {
	Amount        int64  `json:"amount"         validate:"required,gt=0"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=cash bank"`
}

type CheckoutRequest struct {
	PaymentMethod   string `json:"payment_method"   validate:"required,oneof=cash bank"`
	PaidAmount      int64  `json:"paid_amount"      validate:"min=0"`
	Discount        int64  `json:"discount"         validate:"min=0"`
	Surcharge       int64  `json:"surcharge"        validate:"min=0"`
	SurchargeReason string `json:"surcharge_reason" validate:"required_with=Surcharge,omitempty,max=500"`
	Notes           string `json:"notes"            validate:"omitempty,max=500"`
}

type CancelRequest struct {
	Reason               string `json:"reason"                 validate:"required,max=500"`
	Penalty              int64  `json:"penalty"                validate:"min=0"`
	PenaltyPaymentMethod string `json:"penalty_payment_method" validate:"required_unless=Penalty 0,omitempty,oneof=cash bank"`
}

type RepayDebtRequest struct {
	CustomerID    string `json:"customer_id"    validate:"required,uuid"`
	BookingID     string `json:"booking_id"     validate:"omitempty,uuid"`
	Amount        int64  `json:"amount"         validate:"required,gt=0"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=cash bank"`
}

type ServiceResponse struct {
	ID          string `json:"id"`
	StockItemID string `json:"stock_item_id"`
	Name        string `json:"name"`
	Quantity    int64  `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
	UnitCost    int64  `json:"unit_cost"`
	Total       int64  `json:"total"`
}

func (s *ServiceResponse) FromModel(mod bookingModel.Service) {
	s.ID = mod.ID
	s.StockItemID = mod.StockItemID
	s.Name = mod.Name
	s.Quantity = mod.Quantity
	s.UnitPrice = mod.UnitPrice
	s.UnitCost = mod.UnitCost
	s.Total = mod.Total()
}

type BookingResponse struct {
	ID                    string            `json:"id"`
	RoomID                string            `json:"room_id"`
	CustomerID            *string           `json:"customer_id,omitempty"`
	GuestName             string            `json:"guest_name"`
	Mode                  string            `json:"mode"`
	Status                string            `json:"status"`
	CheckIn               string            `json:"check_in"`
	ExpectedCheckOut      string            `json:"expected_check_out,omitempty"`
	CheckedOutAt          string            `json:"checked_out_at,omitempty"`
	CustomPrice           *int64            `json:"custom_price,omitempty"`
	CustomPriceReason     string            `json:"custom_price_reason,omitempty"`
	CustomSurcharge       int64             `json:"custom_surcharge"`
	CustomSurchargeReason string            `json:"custom_surcharge_reason,omitempty"`
	ExtraAdults           int               `json:"extra_adults"`
	ExtraChildren         int               `json:"extra_children"`
	Deposit               int64             `json:"deposit"`
	Discount              int64             `json:"discount"`
	PaymentMethod         string            `json:"payment_method,omitempty"`
	PaidAmount            int64             `json:"paid_amount"`
	ChangeDue             int64             `json:"change_due"`
	DebtRecorded          int64             `json:"debt_recorded"`
	RecognizedAmount      int64             `json:"recognized_amount"`
	Notes                 string            `json:"notes,omitempty"`
	Services              []ServiceResponse `json:"services,omitempty"`
	gDto.Metadata
}

func (b *BookingResponse) FromModel(mod bookingModel.Booking) {
	b.ID = mod.ID
	b.RoomID = mod.RoomID
	b.CustomerID = mod.CustomerID
	b.GuestName = mod.GuestName
	b.Mode = mod.Mode
	b.Status = mod.Status
	b.CheckIn = timezone.Format(mod.CheckIn, constant.DateFormat)

	if mod.ExpectedCheckOut != nil {
		b.ExpectedCheckOut = timezone.Format(*mod.ExpectedCheckOut, constant.DateFormat)
	}

	if mod.CheckedOutAt != nil {
		b.CheckedOutAt = timezone.Format(*mod.CheckedOutAt, constant.DateFormat)
	}

	b.CustomPrice = mod.CustomPrice
	b.CustomPriceReason = mod.CustomPriceReason
	b.CustomSurcharge = mod.CustomSurcharge
	b.CustomSurchargeReason = mod.CustomSurchargeReason
	b.ExtraAdults = mod.ExtraAdults
	b.ExtraChildren = mod.ExtraChildren
	b.Deposit = mod.Deposit
	b.Discount = mod.Discount
	b.PaymentMethod = mod.PaymentMethod
	b.PaidAmount = mod.PaidAmount
	b.ChangeDue = mod.ChangeDue
	b.DebtRecorded = mod.DebtRecorded
	b.RecognizedAmount = mod.RecognizedAmount
	b.Notes = mod.Notes
	b.Metadata.FromModel(mod.Metadata)
}

func (b *BookingResponse) WithServices(services []bookingModel.Service) {
	b.Services = make([]ServiceResponse, len(services))
	for i, svc := range services {
		b.Services[i].FromModel(svc)
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (g *GetBookingsResponse) FromModels(models []bookingModel.Booking, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		g.Bookings[i].FromModel(mod)
	}
}

type CheckoutResponse struct {
	BookingID     string     `json:"booking_id"`
	Bill          model.Bill `json:"bill"`
	PaidAmount    int64      `json:"paid_amount"`
	ChangeDue     int64      `json:"change_due"`
	DepositRefund int64      `json:"deposit_refund"`
	DebtRecorded  int64      `json:"debt_recorded"`
	SettledAt     string     `json:"settled_at"`
}
