package dto

import (
	"lodge/internal/domains/ledger/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/timezone"
)

type ManualEntryRequest struct {
	Wallet    string `json:"wallet"    validate:"required,oneof=cash bank escrow receivable revenue"`
	Direction string `json:"direction" validate:"required,oneof=in out"`
	Category  string `json:"category"  validate:"required,max=100"`
	Amount    int64  `json:"amount"    validate:"required,gt=0"`
	Notes     string `json:"notes"     validate:"required,max=500"`
}

type AdjustBalanceRequest struct {
	Wallet  string `json:"wallet"  validate:"required,oneof=cash bank escrow receivable revenue"`
	Balance int64  `json:"balance"`
	Notes   string `json:"notes"   validate:"required,max=500"`
}

type WalletBalanceResponse struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Balance int64  `json:"balance"`
}

type BalancesResponse struct {
	Wallets []WalletBalanceResponse `json:"wallets"`
}

func (b *BalancesResponse) FromModels(models []model.WalletBalance) {
	b.Wallets = make([]WalletBalanceResponse, len(models))
	for i, mod := range models {
		b.Wallets[i] = WalletBalanceResponse{
			Code:    mod.Code,
			Name:    mod.Name,
			Balance: mod.Balance,
		}
	}
}

type EntryResponse struct {
	ID          string  `json:"id"`
	EventID     string  `json:"event_id"`
	Wallet      string  `json:"wallet"`
	Direction   string  `json:"direction"`
	Category    string  `json:"category"`
	Amount      int64   `json:"amount"`
	OccurredAt  string  `json:"occurred_at"`
	EventType   string  `json:"event_type"`
	BookingID   *string `json:"booking_id,omitempty"`
	StockItemID *string `json:"stock_item_id,omitempty"`
	System      bool    `json:"system"`
	ReversalOf  *string `json:"reversal_of,omitempty"`
	Notes       string  `json:"notes"`
	gDto.Metadata
}

func (e *EntryResponse) FromModel(mod model.Entry) {
	e.ID = mod.ID
	e.EventID = mod.EventID
	e.Wallet = mod.Wallet
	e.Direction = mod.Direction
	e.Category = mod.Category
	e.Amount = mod.Amount
	e.OccurredAt = timezone.Format(mod.OccurredAt, constant.DateFormat)
	e.EventType = mod.EventType
	e.BookingID = mod.BookingID
	e.StockItemID = mod.StockItemID
	e.System = mod.System
	e.ReversalOf = mod.ReversalOf
	e.Notes = mod.Notes
	e.Metadata.FromModel(mod.Metadata)
}

type GetEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (g *GetEntriesResponse) FromModels(models []model.Entry, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Entries = make([]EntryResponse, len(models))
	for i, mod := range models {
		g.Entries[i].FromModel(mod)
	}
}
