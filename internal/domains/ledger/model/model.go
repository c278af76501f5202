package model

import (
	"fmt"
	"time"

	"lodge/shared/constant"
	"lodge/shared/failure"
	"lodge/shared/model"
)

// Wallet is one of the fixed set of named running balances. The set is closed:
// there are no string-keyed wallets anywhere in the system.
type Wallet int

const (
	WalletCash Wallet = iota + 1
	WalletBank
	WalletEscrow
	WalletReceivable
	WalletRevenue
)

func (w Wallet) Code() string {
	switch w {
	case WalletCash:
		return "cash"
	case WalletBank:
		return "bank"
	case WalletEscrow:
		return "escrow"
	case WalletReceivable:
		return "receivable"
	case WalletRevenue:
		return "revenue"
	default:
		return "unknown"
	}
}

func ParseWallet(code string) (Wallet, error) {
	switch code {
	case "cash":
		return WalletCash, nil
	case "bank":
		return WalletBank, nil
	case "escrow":
		return WalletEscrow, nil
	case "receivable":
		return WalletReceivable, nil
	case "revenue":
		return WalletRevenue, nil
	default:
		return 0, failure.Validation(fmt.Sprintf("unknown wallet %q", code)) //nolint:wrapcheck
	}
}

// AllWallets returns every wallet in deterministic order.
func AllWallets() []Wallet {
	return []Wallet{WalletCash, WalletBank, WalletEscrow, WalletReceivable, WalletRevenue}
}

// WalletForPaymentMethod maps an operator-facing payment method to the wallet
// it settles into.
func WalletForPaymentMethod(method string) (Wallet, error) {
	switch method {
	case constant.PaymentMethodCash:
		return WalletCash, nil
	case constant.PaymentMethodBank:
		return WalletBank, nil
	default:
		return 0, failure.Validation(fmt.Sprintf("unknown payment method %q", method)) //nolint:wrapcheck
	}
}

const (
	WalletTableName  = "wallets"
	WalletEntityName = "wallet"

	WalletFieldCode    = "code"
	WalletFieldName    = "name"
	WalletFieldBalance = "balance"
)

// WalletBalance is the persisted running balance of one wallet.
type WalletBalance struct {
	Code    string `db:"code"`
	Name    string `db:"name"`
	Balance int64  `db:"balance"`
	model.Metadata
}

// EventType identifies the business rule that fixes an event's delta set.
type EventType string

const (
	EventCheckInDebtRecognized EventType = "check_in_debt_recognized"
	EventDepositReceived       EventType = "deposit_received"
	EventServiceSold           EventType = "service_sold"
	EventCheckoutSettled       EventType = "checkout_settled"
	EventManualTransaction     EventType = "manual_transaction"
	EventInventoryImported     EventType = "inventory_imported"
	EventOwnerDebtRepaid       EventType = "owner_debt_repaid"
	EventBalanceAdjusted       EventType = "balance_adjusted"
	EventBookingCancelled      EventType = "booking_cancelled"
)

const (
	CategoryRoomCharge         = "room_charge"
	CategoryDeposit            = "deposit"
	CategoryServiceSale        = "service_sale"
	CategoryPayment            = "payment"
	CategoryDiscount           = "discount"
	CategoryDepositApplied     = "deposit_applied"
	CategoryDepositRefund      = "deposit_refund"
	CategorySettlement         = "settlement"
	CategoryInventoryPurchase  = "inventory_purchase"
	CategoryDebtRepayment      = "debt_repayment"
	CategoryBalanceAdjustment  = "balance_adjustment"
	CategoryCancellationRevert = "cancellation_reversal"
	CategoryPenalty            = "cancellation_penalty"
)

// Delta is one signed wallet movement inside an event.
type Delta struct {
	Wallet     Wallet
	Amount     int64
	Category   string
	Notes      string
	ReversalOf string
}

// Event is one financial fact applied atomically across wallets. For a given
// event type the delta set is fixed by business rule and sums to zero.
type Event struct {
	Type        EventType
	OccurredAt  time.Time
	Creator     string
	BookingID   string
	StockItemID string
	System      bool
	Deltas      []Delta
}

// Net returns the sum of signed deltas. A well-formed event nets to zero.
func (e Event) Net() int64 {
	var net int64
	for _, d := range e.Deltas {
		net += d.Amount
	}

	return net
}

// Validate rejects events whose deltas do not balance.
func (e Event) Validate() error {
	if len(e.Deltas) == 0 {
		return failure.Validation(fmt.Sprintf("event %s has no wallet deltas", e.Type)) //nolint:wrapcheck
	}

	for _, d := range e.Deltas {
		if d.Amount == 0 {
			return failure.Validation(fmt.Sprintf("event %s carries a zero delta for wallet %s", e.Type, d.Wallet.Code())) //nolint:wrapcheck
		}
	}

	if net := e.Net(); net != 0 {
		return failure.Validation(fmt.Sprintf("event %s deltas sum to %d, expected 0", e.Type, net)) //nolint:wrapcheck
	}

	return nil
}

const (
	TableName  = "ledger_entries"
	EntityName = "ledger entry"

	FieldID          = "id"
	FieldEventID     = "event_id"
	FieldWallet      = "wallet"
	FieldDirection   = "direction"
	FieldCategory    = "category"
	FieldAmount      = "amount"
	FieldOccurredAt  = "occurred_at"
	FieldEventType   = "event_type"
	FieldBookingID   = "booking_id"
	FieldStockItemID = "stock_item_id"
	FieldSystem      = "system"
	FieldReversalOf  = "reversal_of"
)

const (
	DirectionIn  = "in"
	DirectionOut = "out"
)

// Entry is one immutable record of a single inflow/outflow against a wallet.
// Never edited after creation; corrections are separate reversal entries
// referencing the original. Entries written by the same event share an
// EventID, so the balanced group can always be reconstructed.
type Entry struct {
	ID          string    `db:"id"`
	EventID     string    `db:"event_id"`
	Wallet      string    `db:"wallet"`
	Direction   string    `db:"direction"`
	Category    string    `db:"category"`
	Amount      int64     `db:"amount"`
	OccurredAt  time.Time `db:"occurred_at"`
	EventType   string    `db:"event_type"`
	BookingID   *string   `db:"booking_id"`
	StockItemID *string   `db:"stock_item_id"`
	System      bool      `db:"system"`
	ReversalOf  *string   `db:"reversal_of"`
	Notes       string    `db:"notes"`
	model.Metadata
}

// Signed returns the entry amount with its direction applied.
func (e Entry) Signed() int64 {
	if e.Direction == DirectionOut {
		return -e.Amount
	}

	return e.Amount
}
