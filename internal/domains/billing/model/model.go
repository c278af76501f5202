package model

import (
	"fmt"
	"math"

	"lodge/internal/domains/billing/surcharge"
	"lodge/internal/domains/billing/tariff"
	"lodge/shared/failure"
)

// ServiceLine is one consumed service priced at its snapshot unit price.
type ServiceLine struct {
	Name      string
	Quantity  int64
	UnitPrice int64
}

func (s ServiceLine) Total() int64 {
	return s.Quantity * s.UnitPrice
}

// ComposeInput is everything one bill calculation needs, captured up front so
// the composition itself touches no shared state.
type ComposeInput struct {
	Tariff             tariff.Input
	EarlyBands         []surcharge.Band
	LateBands          []surcharge.Band
	OccupantFeeEnabled bool
	Occupancy          surcharge.Occupancy
	ExtraAdultRate     int64
	ExtraChildRate     int64
	CustomSurcharge    int64
	CustomSurchargeWhy string
	Services           []ServiceLine
	ServiceFeePercent  int
	VatPercent         int
	Discount           int64
	Deposit            int64
	ExistingDebt       int64
}

// Bill is a fully composed bill with the ordered explanation of every figure.
type Bill struct {
	RoomCharge      int64    `json:"room_charge"`
	EarlySurcharge  int64    `json:"early_surcharge"`
	LateSurcharge   int64    `json:"late_surcharge"`
	OccupantFee     int64    `json:"occupant_fee"`
	CustomSurcharge int64    `json:"custom_surcharge"`
	ServiceTotal    int64    `json:"service_total"`
	Subtotal        int64    `json:"subtotal"`
	ServiceFee      int64    `json:"service_fee"`
	Vat             int64    `json:"vat"`
	Total           int64    `json:"total"`
	ExistingDebt    int64    `json:"existing_debt"`
	Discount        int64    `json:"discount"`
	DepositApplied  int64    `json:"deposit_applied"`
	DepositRefund   int64    `json:"deposit_refund"`
	AmountToPay     int64    `json:"amount_to_pay"`
	Lines           []string `json:"lines"`
}

// Receivable is what the guest owes before the escrowed deposit is released.
// Outstanding debt from earlier stays is merged into the amount collected now.
func (b Bill) Receivable() int64 {
	return b.Total + b.ExistingDebt - b.Discount
}

func percentOf(amount int64, percent int) int64 {
	if percent <= 0 {
		return 0
	}

	return int64(math.Round(float64(amount) * float64(percent) / 100))
}

// Compose turns a booking's timing, configuration and consumption into a bill.
// Pure: identical input always composes the identical bill.
func Compose(in ComposeInput) (Bill, error) {
	charge, err := tariff.Resolve(in.Tariff)
	if err != nil {
		return Bill{}, err
	}

	bill := Bill{
		RoomCharge: charge.Amount,
		Lines:      append([]string{}, charge.Lines...),
	}

	if in.Tariff.Mode == tariff.ModeDaily {
		set := in.Tariff.Settings.WithDefaults()

		if early := int(set.CheckInTime) - int(tariff.ClockOf(in.Tariff.CheckIn)); early > 0 {
			amount, line := surcharge.ForOffset(in.Tariff.Rates.Daily, in.EarlyBands, early, "early check-in")

			bill.EarlySurcharge = amount
			if line != "" {
				bill.Lines = append(bill.Lines, line)
			}
		}

		if late := int(tariff.ClockOf(in.Tariff.CheckOut)) - int(set.CheckOutTime); late > 0 {
			amount, line := surcharge.ForOffset(in.Tariff.Rates.Daily, in.LateBands, late, "late check-out")

			bill.LateSurcharge = amount
			if line != "" {
				bill.Lines = append(bill.Lines, line)
			}
		}
	}

	occupantFee, line := surcharge.OccupantFee(in.OccupantFeeEnabled, in.Occupancy, in.ExtraAdultRate, in.ExtraChildRate)

	bill.OccupantFee = occupantFee
	if line != "" {
		bill.Lines = append(bill.Lines, line)
	}

	custom, line, err := surcharge.Custom(in.CustomSurcharge, in.CustomSurchargeWhy)
	if err != nil {
		return Bill{}, err
	}

	bill.CustomSurcharge = custom
	if line != "" {
		bill.Lines = append(bill.Lines, line)
	}

	for _, service := range in.Services {
		bill.ServiceTotal += service.Total()

		bill.Lines = append(bill.Lines, fmt.Sprintf("%s: %d x %d = %d", service.Name, service.Quantity, service.UnitPrice, service.Total()))
	}

	bill.Subtotal = bill.RoomCharge + bill.EarlySurcharge + bill.LateSurcharge + bill.OccupantFee + bill.CustomSurcharge + bill.ServiceTotal

	bill.ServiceFee = percentOf(bill.Subtotal, in.ServiceFeePercent)
	if bill.ServiceFee > 0 {
		bill.Lines = append(bill.Lines, fmt.Sprintf("Service fee %d%% of %d = %d", in.ServiceFeePercent, bill.Subtotal, bill.ServiceFee))
	}

	bill.Vat = percentOf(bill.Subtotal+bill.ServiceFee, in.VatPercent)
	if bill.Vat > 0 {
		bill.Lines = append(bill.Lines, fmt.Sprintf("VAT %d%% of %d = %d", in.VatPercent, bill.Subtotal+bill.ServiceFee, bill.Vat))
	}

	bill.Total = bill.Subtotal + bill.ServiceFee + bill.Vat
	bill.Lines = append(bill.Lines, fmt.Sprintf("Total: %d", bill.Total))

	if in.ExistingDebt != 0 {
		bill.ExistingDebt = in.ExistingDebt
		if bill.ExistingDebt < 0 {
			bill.ExistingDebt = -bill.ExistingDebt
		}

		bill.Lines = append(bill.Lines, fmt.Sprintf("Outstanding debt: +%d", bill.ExistingDebt))
	}

	if in.Discount < 0 {
		return Bill{}, failure.Validation("discount cannot be negative") //nolint:wrapcheck
	}

	if in.Discount > bill.Total {
		return Bill{}, failure.Validation(fmt.Sprintf("discount %d exceeds bill total %d", in.Discount, bill.Total)) //nolint:wrapcheck
	}

	bill.Discount = in.Discount
	if bill.Discount > 0 {
		bill.Lines = append(bill.Lines, fmt.Sprintf("Discount: -%d", bill.Discount))
	}

	bill.DepositApplied = in.Deposit
	if bill.DepositApplied > bill.Receivable() {
		bill.DepositApplied = bill.Receivable()
		bill.DepositRefund = in.Deposit - bill.DepositApplied
	}

	if bill.DepositApplied > 0 {
		bill.Lines = append(bill.Lines, fmt.Sprintf("Deposit applied: -%d", bill.DepositApplied))
	}

	if bill.DepositRefund > 0 {
		bill.Lines = append(bill.Lines, fmt.Sprintf("Deposit refunded: %d", bill.DepositRefund))
	}

	bill.AmountToPay = bill.Receivable() - bill.DepositApplied
	bill.Lines = append(bill.Lines, fmt.Sprintf("Amount to pay: %d", bill.AmountToPay))

	return bill, nil
}
