package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lodge/internal/domains/ledger/model"
	"lodge/shared/constant"
)

func TestParseWallet(t *testing.T) {
	for _, wallet := range model.AllWallets() {
		parsed, err := model.ParseWallet(wallet.Code())

		require.NoError(t, err)
		assert.Equal(t, wallet, parsed)
	}

	_, err := model.ParseWallet("vault")
	assert.Error(t, err)
}

func TestAllWalletsOrderIsStable(t *testing.T) {
	want := []model.Wallet{
		model.WalletCash,
		model.WalletBank,
		model.WalletEscrow,
		model.WalletReceivable,
		model.WalletRevenue,
	}

	assert.Equal(t, want, model.AllWallets())
}

func TestWalletForPaymentMethod(t *testing.T) {
	wallet, err := model.WalletForPaymentMethod(constant.PaymentMethodCash)
	require.NoError(t, err)
	assert.Equal(t, model.WalletCash, wallet)

	wallet, err = model.WalletForPaymentMethod(constant.PaymentMethodBank)
	require.NoError(t, err)
	assert.Equal(t, model.WalletBank, wallet)

	_, err = model.WalletForPaymentMethod("crypto")
	assert.Error(t, err)
}

func TestEventValidate(t *testing.T) {
	tests := []struct {
		name    string
		event   model.Event
		wantErr bool
	}{
		{
			name: "balanced pair",
			event: model.Event{
				Type: model.EventManualTransaction,
				Deltas: []model.Delta{
					{Wallet: model.WalletCash, Amount: 1000},
					{Wallet: model.WalletRevenue, Amount: -1000},
				},
			},
		},
		{
			name:    "no deltas",
			event:   model.Event{Type: model.EventManualTransaction},
			wantErr: true,
		},
		{
			name: "zero delta",
			event: model.Event{
				Type: model.EventManualTransaction,
				Deltas: []model.Delta{
					{Wallet: model.WalletCash, Amount: 0},
					{Wallet: model.WalletRevenue, Amount: 0},
				},
			},
			wantErr: true,
		},
		{
			name: "unbalanced",
			event: model.Event{
				Type: model.EventManualTransaction,
				Deltas: []model.Delta{
					{Wallet: model.WalletCash, Amount: 1000},
					{Wallet: model.WalletRevenue, Amount: -900},
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.event.Validate()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEntrySigned(t *testing.T) {
	in := model.Entry{Direction: model.DirectionIn, Amount: 500}
	out := model.Entry{Direction: model.DirectionOut, Amount: 500}

	assert.Equal(t, int64(500), in.Signed())
	assert.Equal(t, int64(-500), out.Signed())
}
