package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lodge/internal/domains/billing/model"
	"lodge/internal/domains/billing/surcharge"
	"lodge/internal/domains/billing/tariff"
)

func dailyInput() model.ComposeInput {
	return model.ComposeInput{
		Tariff: tariff.Input{
			Mode:     tariff.ModeDaily,
			CheckIn:  time.Date(2025, time.March, 1, 14, 0, 0, 0, time.UTC),
			CheckOut: time.Date(2025, time.March, 2, 12, 0, 0, 0, time.UTC),
			Rates:    tariff.Rates{Daily: 200000},
		},
	}
}

func TestComposeFullPipeline(t *testing.T) {
	in := dailyInput()
	in.Services = []model.ServiceLine{
		{Name: "Mineral Water", Quantity: 2, UnitPrice: 5000},
		{Name: "Laundry", Quantity: 1, UnitPrice: 20000},
	}
	in.ServiceFeePercent = 5
	in.VatPercent = 10
	in.Discount = 5650
	in.Deposit = 100000

	bill, err := model.Compose(in)
	require.NoError(t, err)

	assert.Equal(t, int64(200000), bill.RoomCharge)
	assert.Equal(t, int64(30000), bill.ServiceTotal)
	assert.Equal(t, int64(230000), bill.Subtotal)
	assert.Equal(t, int64(11500), bill.ServiceFee)
	assert.Equal(t, int64(24150), bill.Vat)
	assert.Equal(t, int64(265650), bill.Total)
	assert.Equal(t, int64(260000), bill.Receivable())
	assert.Equal(t, int64(100000), bill.DepositApplied)
	assert.Equal(t, int64(160000), bill.AmountToPay)
	assert.NotEmpty(t, bill.Lines)
}

func TestComposeEarlySurcharge(t *testing.T) {
	in := dailyInput()
	in.Tariff.CheckIn = time.Date(2025, time.March, 1, 8, 0, 0, 0, time.UTC)
	in.Tariff.Settings.GraceMinutes = 30
	in.EarlyBands = []surcharge.Band{
		{FromMinute: 0, ToMinute: 180, Percent: 25},
		{FromMinute: 181, ToMinute: 720, Percent: 50},
	}

	bill, err := model.Compose(in)
	require.NoError(t, err)

	// 08:00 arrival against a 14:00 check-in is a 360 minute offset.
	assert.Equal(t, int64(200000), bill.RoomCharge)
	assert.Equal(t, int64(100000), bill.EarlySurcharge)
}

func TestComposeLateSurcharge(t *testing.T) {
	in := dailyInput()
	in.Tariff.CheckOut = time.Date(2025, time.March, 2, 12, 40, 0, 0, time.UTC)
	in.Tariff.Settings.GraceMinutes = 30
	in.LateBands = []surcharge.Band{{FromMinute: 0, ToMinute: 120, Percent: 20}}

	bill, err := model.Compose(in)
	require.NoError(t, err)

	assert.Equal(t, int64(200000), bill.RoomCharge)
	assert.Equal(t, int64(40000), bill.LateSurcharge)
}

func TestComposeOccupantFee(t *testing.T) {
	in := dailyInput()
	in.OccupantFeeEnabled = true
	in.Occupancy = surcharge.Occupancy{ExtraAdults: 1, ExtraChildren: 2}
	in.ExtraAdultRate = 30000
	in.ExtraChildRate = 10000

	bill, err := model.Compose(in)
	require.NoError(t, err)

	assert.Equal(t, int64(50000), bill.OccupantFee)
	assert.Equal(t, int64(250000), bill.Subtotal)
}

func TestComposeMergesExistingDebt(t *testing.T) {
	in := dailyInput()
	in.ExistingDebt = 40000

	bill, err := model.Compose(in)
	require.NoError(t, err)

	assert.Equal(t, int64(200000), bill.Total)
	assert.Equal(t, int64(40000), bill.ExistingDebt)
	assert.Equal(t, int64(240000), bill.Receivable())
	assert.Equal(t, int64(240000), bill.AmountToPay)

	in.ExistingDebt = -40000
	negated, err := model.Compose(in)
	require.NoError(t, err)
	assert.Equal(t, int64(40000), negated.ExistingDebt)
}

func TestComposeDiscountValidation(t *testing.T) {
	in := dailyInput()
	in.Discount = -1

	_, err := model.Compose(in)
	assert.Error(t, err)

	in.Discount = 200001
	_, err = model.Compose(in)
	assert.Error(t, err)
}

func TestComposeCustomSurchargeRequiresReason(t *testing.T) {
	in := dailyInput()
	in.CustomSurcharge = 25000

	_, err := model.Compose(in)
	assert.Error(t, err)

	in.CustomSurchargeWhy = "late night cleaning"

	bill, err := model.Compose(in)
	require.NoError(t, err)
	assert.Equal(t, int64(25000), bill.CustomSurcharge)
}

func TestComposeDepositClampedToReceivable(t *testing.T) {
	in := dailyInput()
	in.Deposit = 500000

	bill, err := model.Compose(in)
	require.NoError(t, err)

	assert.Equal(t, int64(200000), bill.DepositApplied)
	assert.Equal(t, int64(300000), bill.DepositRefund)
	assert.Zero(t, bill.AmountToPay)

	in.Deposit = 200000
	exact, err := model.Compose(in)
	require.NoError(t, err)
	assert.Zero(t, exact.DepositRefund)
}

func TestComposeIsDeterministic(t *testing.T) {
	in := dailyInput()
	in.Services = []model.ServiceLine{{Name: "Snack", Quantity: 3, UnitPrice: 7000}}
	in.ServiceFeePercent = 5
	in.VatPercent = 11

	first, err := model.Compose(in)
	require.NoError(t, err)

	second, err := model.Compose(in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
