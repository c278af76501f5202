package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lodge/internal/domains/ledger/model"
)

var now = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

func TestEveryConstructorBalances(t *testing.T) {
	tests := []struct {
		name  string
		event model.Event
	}{
		{name: "check-in debt", event: model.NewCheckInDebt("b1", 200000, now, "staff")},
		{name: "deposit received", event: model.NewDepositReceived("b1", model.WalletCash, 50000, now, "staff")},
		{name: "service sold", event: model.NewServiceSold("b1", "s1", 15000, now, "staff")},
		{name: "service removed", event: serviceRemoved(t)},
		{name: "checkout settled", event: model.NewCheckoutSettled("b1", model.WalletBank, 30000, 5000, 50000, 0, 100000, now, "staff")},
		{name: "checkout with refunded deposit", event: model.NewCheckoutSettled("b1", model.WalletCash, 0, 0, 50000, 20000, 0, now, "staff")},
		{name: "checkout with negative remainder", event: model.NewCheckoutSettled("b1", model.WalletCash, -20000, 0, 0, 0, 100000, now, "staff")},
		{name: "manual inflow", event: model.NewManualTransaction(model.DirectionIn, "misc", model.WalletCash, 10000, "found cash", now, "admin")},
		{name: "manual outflow", event: model.NewManualTransaction(model.DirectionOut, "misc", model.WalletBank, 10000, "bank fee", now, "admin")},
		{name: "inventory imported", event: model.NewInventoryImported("s1", model.WalletCash, 120000, now, "admin")},
		{name: "debt repaid", event: model.NewOwnerDebtRepaid("b1", model.WalletCash, 40000, now, "staff")},
		{name: "balance adjusted", event: model.NewBalanceAdjusted(model.WalletCash, -2500, "till count", now, "admin")},
		{name: "cancellation penalty", event: model.NewCancellationPenalty("b1", model.WalletCash, 25000, now, "staff")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.event.Validate())
			assert.Zero(t, tt.event.Net())
		})
	}
}

func TestNewCheckInDebtShape(t *testing.T) {
	event := model.NewCheckInDebt("b1", 200000, now, "staff")

	assert.Equal(t, model.EventCheckInDebtRecognized, event.Type)
	assert.True(t, event.System)
	require.Len(t, event.Deltas, 2)
	assert.Equal(t, model.WalletReceivable, event.Deltas[0].Wallet)
	assert.Equal(t, int64(200000), event.Deltas[0].Amount)
	assert.Equal(t, model.WalletRevenue, event.Deltas[1].Wallet)
	assert.Equal(t, int64(-200000), event.Deltas[1].Amount)
}

func serviceRemoved(t *testing.T) model.Event {
	t.Helper()

	sale := saleEntries("ev1", "s1", 15000)

	event, err := model.NewServiceRemoved("b1", "s1", sale, now, "staff")
	require.NoError(t, err)

	return event
}

func saleEntries(eventID, stockItemID string, amount int64) []model.Entry {
	return []model.Entry{
		{
			ID:          eventID + "-in",
			EventID:     eventID,
			Wallet:      "receivable",
			Direction:   model.DirectionIn,
			Amount:      amount,
			Category:    model.CategoryServiceSale,
			EventType:   string(model.EventServiceSold),
			StockItemID: &stockItemID,
		},
		{
			ID:          eventID + "-out",
			EventID:     eventID,
			Wallet:      "revenue",
			Direction:   model.DirectionOut,
			Amount:      amount,
			Category:    model.CategoryServiceSale,
			EventType:   string(model.EventServiceSold),
			StockItemID: &stockItemID,
		},
	}
}

func TestNewServiceRemovedReferencesOriginalSale(t *testing.T) {
	sale := saleEntries("ev1", "s1", 15000)

	event, err := model.NewServiceRemoved("b1", "s1", sale, now, "staff")
	require.NoError(t, err)
	require.NoError(t, event.Validate())
	require.Len(t, event.Deltas, 2)

	for i, delta := range event.Deltas {
		assert.Equal(t, -sale[i].Signed(), delta.Amount)
		assert.Equal(t, sale[i].ID, delta.ReversalOf)
		assert.Equal(t, model.CategoryServiceSale, delta.Category)
	}
}

func TestServiceSaleEntriesSkipsReversedSales(t *testing.T) {
	first := saleEntries("ev1", "s1", 15000)
	second := saleEntries("ev2", "s1", 15000)
	other := saleEntries("ev3", "s2", 9000)

	entries := append(append(first, second...), other...)

	picked := model.ServiceSaleEntries(entries, "s1", 15000)
	require.Len(t, picked, 2)
	assert.Equal(t, "ev1", picked[0].EventID)

	// Once the first sale is reversed, the next unreversed one is picked.
	reversalOf := first[0].ID
	entries = append(entries, model.Entry{
		ID:         "ev4-in",
		EventID:    "ev4",
		Wallet:     "receivable",
		Direction:  model.DirectionOut,
		Amount:     15000,
		Category:   model.CategoryServiceSale,
		EventType:  string(model.EventServiceSold),
		ReversalOf: &reversalOf,
	})

	picked = model.ServiceSaleEntries(entries, "s1", 15000)
	require.Len(t, picked, 2)
	assert.Equal(t, "ev2", picked[0].EventID)

	assert.Empty(t, model.ServiceSaleEntries(entries, "s9", 15000))
}

func TestNewCheckoutSettledComposition(t *testing.T) {
	event := model.NewCheckoutSettled("b1", model.WalletBank, 30000, 5000, 50000, 0, 100000, now, "staff")

	categories := map[string]int64{}
	for _, d := range event.Deltas {
		if d.Wallet == model.WalletReceivable {
			categories[d.Category] = d.Amount
		}
	}

	assert.Equal(t, int64(30000), categories[model.CategorySettlement])
	assert.Equal(t, int64(-5000), categories[model.CategoryDiscount])
	assert.Equal(t, int64(-50000), categories[model.CategoryDepositApplied])
	assert.Equal(t, int64(-100000), categories[model.CategoryPayment])
}

func TestNewCheckoutSettledOmitsEmptyParts(t *testing.T) {
	event := model.NewCheckoutSettled("b1", model.WalletCash, 0, 0, 0, 0, 80000, now, "staff")

	require.Len(t, event.Deltas, 2)
	assert.Equal(t, model.CategoryPayment, event.Deltas[0].Category)

	event = model.NewCheckoutSettled("b1", model.WalletCash, 0, 0, 0, 0, 0, now, "staff")
	assert.Empty(t, event.Deltas)
}

func TestNewCheckoutSettledRefundsUnusedDeposit(t *testing.T) {
	event := model.NewCheckoutSettled("b1", model.WalletCash, 0, 0, 200000, 300000, 0, now, "staff")

	require.NoError(t, event.Validate())

	byCategory := map[string]map[model.Wallet]int64{}
	for _, d := range event.Deltas {
		if byCategory[d.Category] == nil {
			byCategory[d.Category] = map[model.Wallet]int64{}
		}

		byCategory[d.Category][d.Wallet] = d.Amount
	}

	// The full escrowed amount leaves escrow: the applied part against the
	// receivable, the surplus paid back out of the cash drawer.
	assert.Equal(t, int64(200000), byCategory[model.CategoryDepositApplied][model.WalletEscrow])
	assert.Equal(t, int64(-200000), byCategory[model.CategoryDepositApplied][model.WalletReceivable])
	assert.Equal(t, int64(300000), byCategory[model.CategoryDepositRefund][model.WalletEscrow])
	assert.Equal(t, int64(-300000), byCategory[model.CategoryDepositRefund][model.WalletCash])
}

func TestNewCancellationReversal(t *testing.T) {
	originals := []model.Entry{
		{ID: "e1", Wallet: "receivable", Direction: model.DirectionIn, Amount: 200000, Category: model.CategoryRoomCharge},
		{ID: "e2", Wallet: "revenue", Direction: model.DirectionOut, Amount: 200000, Category: model.CategoryRoomCharge},
		{ID: "e3", Wallet: "cash", Direction: model.DirectionIn, Amount: 50000, Category: model.CategoryDeposit},
		{ID: "e4", Wallet: "escrow", Direction: model.DirectionOut, Amount: 50000, Category: model.CategoryDeposit},
	}

	event, err := model.NewCancellationReversal("b1", originals, now, "staff")
	require.NoError(t, err)
	require.NoError(t, event.Validate())
	require.Len(t, event.Deltas, len(originals))

	for i, delta := range event.Deltas {
		assert.Equal(t, -originals[i].Signed(), delta.Amount)
		assert.Equal(t, originals[i].ID, delta.ReversalOf)
		assert.Equal(t, model.CategoryCancellationRevert, delta.Category)
	}
}

func TestNewCancellationReversalRejectsUnknownWallet(t *testing.T) {
	originals := []model.Entry{{ID: "e1", Wallet: "vault", Direction: model.DirectionIn, Amount: 100}}

	_, err := model.NewCancellationReversal("b1", originals, now, "staff")
	assert.Error(t, err)
}

func TestNewManualTransactionIsNotSystem(t *testing.T) {
	event := model.NewManualTransaction(model.DirectionIn, "misc", model.WalletCash, 1000, "", now, "admin")

	assert.False(t, event.System)
}
