package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	bookingModel "lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/model/dto"
)

func TestCheckInRequestToModel(t *testing.T) {
	checkIn := time.Date(2025, 3, 1, 14, 0, 0, 0, time.UTC)
	expected := time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC)
	customerID := "customer-id"

	req := dto.CheckInRequest{
		RoomID:               "room-id",
		CustomerID:           &customerID,
		Mode:                 "daily",
		ExtraAdults:          1,
		Deposit:              100000,
		DepositPaymentMethod: "cash",
		Notes:                "late arrival expected",
	}

	mod := req.ToModel("staff-1", checkIn, &expected)

	assert.NotEmpty(t, mod.ID)
	assert.Equal(t, "room-id", mod.RoomID)
	assert.Equal(t, &customerID, mod.CustomerID)
	assert.Equal(t, bookingModel.StatusCheckedIn, mod.Status)
	assert.Equal(t, checkIn, mod.CheckIn)
	assert.Equal(t, &expected, mod.ExpectedCheckOut)
	assert.Equal(t, int64(100000), mod.Deposit)
	assert.Equal(t, "staff-1", mod.CreatedBy)
}

func TestBookingResponseFromModel(t *testing.T) {
	checkedOut := time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC)

	mod := bookingModel.Booking{
		ID:               "booking-id",
		RoomID:           "room-id",
		GuestName:        "Walk-in",
		Mode:             "daily",
		Status:           bookingModel.StatusCheckedOut,
		CheckIn:          time.Date(2025, 3, 1, 14, 0, 0, 0, time.UTC),
		CheckedOutAt:     &checkedOut,
		Deposit:          100000,
		PaidAmount:       260000,
		RecognizedAmount: 265650,
	}

	var res dto.BookingResponse
	res.FromModel(mod)

	assert.Equal(t, "booking-id", res.ID)
	assert.Equal(t, bookingModel.StatusCheckedOut, res.Status)
	assert.NotEmpty(t, res.CheckIn)
	assert.NotEmpty(t, res.CheckedOutAt)
	assert.Empty(t, res.ExpectedCheckOut)
	assert.Equal(t, int64(265650), res.RecognizedAmount)
}

func TestBookingResponseWithServices(t *testing.T) {
	var res dto.BookingResponse

	res.WithServices([]bookingModel.Service{
		{ID: "service-id", Name: "Mineral Water", Quantity: 3, UnitPrice: 10000, UnitCost: 6000},
	})

	assert.Len(t, res.Services, 1)
	assert.Equal(t, int64(30000), res.Services[0].Total)
}

func TestGetBookingsResponseFromModels(t *testing.T) {
	var res dto.GetBookingsResponse

	res.FromModels([]bookingModel.Booking{{ID: "a"}, {ID: "b"}}, 21, 10)

	assert.Len(t, res.Bookings, 2)
	assert.Equal(t, 21, res.TotalData)
	assert.Equal(t, 3, res.TotalPage)
}
