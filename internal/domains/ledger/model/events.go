package model

import (
	"fmt"
	"time"
)

// NewCheckInDebt recognizes the initial room charge as a receivable at check-in.
func NewCheckInDebt(bookingID string, amount int64, at time.Time, creator string) Event {
	return Event{
		Type:       EventCheckInDebtRecognized,
		OccurredAt: at,
		Creator:    creator,
		BookingID:  bookingID,
		System:     true,
		Deltas: []Delta{
			{Wallet: WalletReceivable, Amount: amount, Category: CategoryRoomCharge},
			{Wallet: WalletRevenue, Amount: -amount, Category: CategoryRoomCharge},
		},
	}
}

// NewDepositReceived records a guest deposit held in escrow until settlement.
func NewDepositReceived(bookingID string, pay Wallet, amount int64, at time.Time, creator string) Event {
	return Event{
		Type:       EventDepositReceived,
		OccurredAt: at,
		Creator:    creator,
		BookingID:  bookingID,
		System:     true,
		Deltas: []Delta{
			{Wallet: pay, Amount: amount, Category: CategoryDeposit},
			{Wallet: WalletEscrow, Amount: -amount, Category: CategoryDeposit},
		},
	}
}

// NewServiceSold recognizes a consumed service as a receivable against the booking.
func NewServiceSold(bookingID, stockItemID string, amount int64, at time.Time, creator string) Event {
	return Event{
		Type:        EventServiceSold,
		OccurredAt:  at,
		Creator:     creator,
		BookingID:   bookingID,
		StockItemID: stockItemID,
		System:      true,
		Deltas: []Delta{
			{Wallet: WalletReceivable, Amount: amount, Category: CategoryServiceSale},
			{Wallet: WalletRevenue, Amount: -amount, Category: CategoryServiceSale},
		},
	}
}

// NewServiceRemoved backs a consumed service out of the receivable before
// settlement. Each delta reverses one entry of the original sale, so the
// correction stays traceable to what it corrects.
func NewServiceRemoved(bookingID, stockItemID string, originals []Entry, at time.Time, creator string) (Event, error) {
	deltas := make([]Delta, 0, len(originals))

	for _, original := range originals {
		wallet, err := ParseWallet(original.Wallet)
		if err != nil {
			return Event{}, fmt.Errorf("ledger entry %s: %w", original.ID, err)
		}

		deltas = append(deltas, Delta{
			Wallet:     wallet,
			Amount:     -original.Signed(),
			Category:   CategoryServiceSale,
			Notes:      "service removed",
			ReversalOf: original.ID,
		})
	}

	return Event{
		Type:        EventServiceSold,
		OccurredAt:  at,
		Creator:     creator,
		BookingID:   bookingID,
		StockItemID: stockItemID,
		System:      true,
		Deltas:      deltas,
	}, nil
}

// ServiceSaleEntries picks the entries of one still-standing sale of the given
// stock item out of a booking's ledger history. Entries already reversed, or
// themselves reversals, are skipped.
func ServiceSaleEntries(entries []Entry, stockItemID string, amount int64) []Entry {
	reversed := map[string]bool{}

	for _, entry := range entries {
		if entry.ReversalOf != nil {
			reversed[*entry.ReversalOf] = true
		}
	}

	byEvent := map[string][]Entry{}
	order := []string{}

	for _, entry := range entries {
		if entry.EventType != string(EventServiceSold) || entry.ReversalOf != nil || reversed[entry.ID] {
			continue
		}

		if entry.StockItemID == nil || *entry.StockItemID != stockItemID || entry.Amount != amount {
			continue
		}

		if _, seen := byEvent[entry.EventID]; !seen {
			order = append(order, entry.EventID)
		}

		byEvent[entry.EventID] = append(byEvent[entry.EventID], entry)
	}

	for _, eventID := range order {
		if len(byEvent[eventID]) == 2 {
			return byEvent[eventID]
		}
	}

	return nil
}

// NewCheckoutSettled finalizes a booking's bill. remainder is the portion of the
// bill total not yet recognized by earlier events, cashIn the money actually
// kept (amount paid minus change), deposit the escrowed amount applied to the
// bill, refund the escrowed surplus paid back to the guest, discount the amount
// forgiven. Whatever of the receivable the guest did not cover stays on the
// Receivable wallet as recorded debt.
func NewCheckoutSettled(bookingID string, pay Wallet, remainder, discount, deposit, refund, cashIn int64, at time.Time, creator string) Event {
	deltas := []Delta{}

	if remainder != 0 {
		deltas = append(deltas,
			Delta{Wallet: WalletReceivable, Amount: remainder, Category: CategorySettlement},
			Delta{Wallet: WalletRevenue, Amount: -remainder, Category: CategorySettlement},
		)
	}

	if discount > 0 {
		deltas = append(deltas,
			Delta{Wallet: WalletRevenue, Amount: discount, Category: CategoryDiscount},
			Delta{Wallet: WalletReceivable, Amount: -discount, Category: CategoryDiscount},
		)
	}

	if deposit > 0 {
		deltas = append(deltas,
			Delta{Wallet: WalletEscrow, Amount: deposit, Category: CategoryDepositApplied},
			Delta{Wallet: WalletReceivable, Amount: -deposit, Category: CategoryDepositApplied},
		)
	}

	if refund > 0 {
		deltas = append(deltas,
			Delta{Wallet: WalletEscrow, Amount: refund, Category: CategoryDepositRefund, Notes: "unused deposit returned"},
			Delta{Wallet: pay, Amount: -refund, Category: CategoryDepositRefund, Notes: "unused deposit returned"},
		)
	}

	if cashIn > 0 {
		deltas = append(deltas,
			Delta{Wallet: pay, Amount: cashIn, Category: CategoryPayment},
			Delta{Wallet: WalletReceivable, Amount: -cashIn, Category: CategoryPayment},
		)
	}

	return Event{
		Type:       EventCheckoutSettled,
		OccurredAt: at,
		Creator:    creator,
		BookingID:  bookingID,
		System:     true,
		Deltas:     deltas,
	}
}

// NewManualTransaction records an operator-entered inflow or outflow. Manual
// entries may later be deleted; everything else is corrected by reversal only.
func NewManualTransaction(direction, category string, wallet Wallet, amount int64, notes string, at time.Time, creator string) Event {
	signed := amount
	if direction == DirectionOut {
		signed = -amount
	}

	return Event{
		Type:       EventManualTransaction,
		OccurredAt: at,
		Creator:    creator,
		System:     false,
		Deltas: []Delta{
			{Wallet: wallet, Amount: signed, Category: category, Notes: notes},
			{Wallet: WalletRevenue, Amount: -signed, Category: category, Notes: notes},
		},
	}
}

// NewInventoryImported books the purchase cost of an inventory import. Only
// paid imports reach the ledger; zero-cost stock additions never do.
func NewInventoryImported(stockItemID string, pay Wallet, paid int64, at time.Time, creator string) Event {
	return Event{
		Type:        EventInventoryImported,
		OccurredAt:  at,
		Creator:     creator,
		StockItemID: stockItemID,
		System:      true,
		Deltas: []Delta{
			{Wallet: pay, Amount: -paid, Category: CategoryInventoryPurchase},
			{Wallet: WalletRevenue, Amount: paid, Category: CategoryInventoryPurchase},
		},
	}
}

// NewOwnerDebtRepaid collects previously recorded guest debt.
func NewOwnerDebtRepaid(bookingID string, pay Wallet, amount int64, at time.Time, creator string) Event {
	return Event{
		Type:       EventOwnerDebtRepaid,
		OccurredAt: at,
		Creator:    creator,
		BookingID:  bookingID,
		System:     true,
		Deltas: []Delta{
			{Wallet: pay, Amount: amount, Category: CategoryDebtRepayment},
			{Wallet: WalletReceivable, Amount: -amount, Category: CategoryDebtRepayment},
		},
	}
}

// NewBalanceAdjusted corrects one wallet balance against revenue, e.g. after a
// physical cash count.
func NewBalanceAdjusted(wallet Wallet, delta int64, notes string, at time.Time, creator string) Event {
	return Event{
		Type:       EventBalanceAdjusted,
		OccurredAt: at,
		Creator:    creator,
		System:     true,
		Deltas: []Delta{
			{Wallet: wallet, Amount: delta, Category: CategoryBalanceAdjustment, Notes: notes},
			{Wallet: WalletRevenue, Amount: -delta, Category: CategoryBalanceAdjustment, Notes: notes},
		},
	}
}

// NewCancellationReversal builds explicit reversal deltas for every automatic
// entry tied to a cancelled booking, restoring each touched wallet to its
// pre-check-in balance.
func NewCancellationReversal(bookingID string, originals []Entry, at time.Time, creator string) (Event, error) {
	deltas := make([]Delta, 0, len(originals))

	for _, original := range originals {
		wallet, err := ParseWallet(original.Wallet)
		if err != nil {
			return Event{}, fmt.Errorf("ledger entry %s: %w", original.ID, err)
		}

		deltas = append(deltas, Delta{
			Wallet:     wallet,
			Amount:     -original.Signed(),
			Category:   CategoryCancellationRevert,
			Notes:      fmt.Sprintf("reversal of %s", original.Category),
			ReversalOf: original.ID,
		})
	}

	return Event{
		Type:       EventBookingCancelled,
		OccurredAt: at,
		Creator:    creator,
		BookingID:  bookingID,
		System:     true,
		Deltas:     deltas,
	}, nil
}

// NewCancellationPenalty charges an optional penalty collected on cancellation.
func NewCancellationPenalty(bookingID string, pay Wallet, amount int64, at time.Time, creator string) Event {
	return Event{
		Type:       EventBookingCancelled,
		OccurredAt: at,
		Creator:    creator,
		BookingID:  bookingID,
		System:     true,
		Deltas: []Delta{
			{Wallet: pay, Amount: amount, Category: CategoryPenalty},
			{Wallet: WalletRevenue, Amount: -amount, Category: CategoryPenalty},
		},
	}
}
