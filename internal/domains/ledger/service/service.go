package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/infras/kafka"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/ledger/model"
	"lodge/internal/domains/ledger/model/dto"
	"lodge/internal/domains/ledger/repository"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

const (
	cacheBalances     = "ledger:balances"
	cacheGetEntries   = "ledger:entries"
	cacheCountEntries = "ledger:entries:count"
)

type Ledger interface {
	Propagate(ctx context.Context, sqltx *sqlx.Tx, event model.Event) ([]model.Entry, error)
	Publish(ctx context.Context, event model.Event)
	EntriesForBookingTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string) ([]model.Entry, error)
	ManualEntry(ctx context.Context, req dto.ManualEntryRequest) error
	DeleteManualEntry(ctx context.Context, id string) error
	AdjustBalance(ctx context.Context, req dto.AdjustBalanceRequest) error
	Balances(ctx context.Context) (dto.BalancesResponse, error)
	GetEntries(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetEntriesResponse, error)
	CountEntries(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type serviceImpl struct {
	wallets repository.Wallets
	entries repository.Entries
	db      *postgres.Connection
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
	kafka   kafka.Client
}

func New(wallets repository.Wallets, entries repository.Entries, db *postgres.Connection, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, kafka kafka.Client) Ledger {
	return &serviceImpl{
		wallets: wallets,
		entries: entries,
		db:      db,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
		kafka:   kafka,
	}
}

// Propagate applies one balanced event inside the caller's transaction. Wallet
// rows are locked in the fixed wallet order before any balance is read, so two
// concurrent events touching the same wallets serialize instead of deadlocking.
// Returns the immutable entries written for the event.
func (s *serviceImpl) Propagate(ctx context.Context, sqltx *sqlx.Tx, event model.Event) (entries []model.Entry, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Propagate")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = event.Validate(); err != nil {
		return nil, err
	}

	creator := event.Creator
	if creator == constant.Empty {
		creator, _ = ctx.Value(constant.ContextKeyUserID).(string)
	}

	occurredAt := event.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = timezone.Now()
	}

	totals := map[model.Wallet]int64{}
	for _, delta := range event.Deltas {
		totals[delta.Wallet] += delta.Amount
	}

	for _, wallet := range model.AllWallets() {
		sum, touched := totals[wallet]
		if !touched {
			continue
		}

		row, err := s.wallets.GetForUpdateTx(ctx, sqltx, wallet.Code())
		if err != nil {
			log.Error().Err(err).Str("wallet", wallet.Code()).Msg("failed to lock wallet")

			return nil, fmt.Errorf("failed to lock wallet %s: %w", wallet.Code(), err)
		}

		if row.Code == constant.Empty {
			return nil, failure.InsufficientConfig(fmt.Sprintf("wallet %s is not seeded", wallet.Code())) //nolint:wrapcheck
		}

		if err := s.wallets.SetBalanceTx(ctx, sqltx, wallet.Code(), row.Balance+sum, creator); err != nil {
			log.Error().Err(err).Str("wallet", wallet.Code()).Msg("failed to update wallet balance")

			return nil, fmt.Errorf("failed to update wallet %s: %w", wallet.Code(), err)
		}
	}

	eventID := uuid.NewString()
	entries = make([]model.Entry, len(event.Deltas))

	for i, delta := range event.Deltas {
		direction := model.DirectionIn
		amount := delta.Amount

		if amount < 0 {
			direction = model.DirectionOut
			amount = -amount
		}

		entries[i] = model.Entry{
			ID:          uuid.NewString(),
			EventID:     eventID,
			Wallet:      delta.Wallet.Code(),
			Direction:   direction,
			Category:    delta.Category,
			Amount:      amount,
			OccurredAt:  occurredAt,
			EventType:   string(event.Type),
			BookingID:   nilIfEmpty(event.BookingID),
			StockItemID: nilIfEmpty(event.StockItemID),
			System:      event.System,
			ReversalOf:  nilIfEmpty(delta.ReversalOf),
			Notes:       delta.Notes,
			Metadata: gModel.Metadata{
				CreatedAt:  occurredAt,
				ModifiedAt: occurredAt,
				CreatedBy:  creator,
				ModifiedBy: creator,
			},
		}
	}

	if err = s.entries.InsertBulkTx(ctx, sqltx, entries); err != nil {
		log.Error().Err(err).Str("eventType", string(event.Type)).Msg("failed to insert ledger entries")

		return nil, fmt.Errorf("failed to insert ledger entries: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheBalances)
		shared.InvalidateCaches(c, s.cache, cacheGetEntries)
		shared.InvalidateCaches(c, s.cache, cacheCountEntries)
	}()

	return entries, nil
}

// Publish emits the event to the ledger topic after its transaction committed.
// Delivery is best effort; the entry log in postgres stays the source of truth.
func (s *serviceImpl) Publish(ctx context.Context, event model.Event) {
	if !s.cfg.Kafka.Enable {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		payload := map[string]any{
			"type":          string(event.Type),
			"occurred_at":   timezone.Format(event.OccurredAt, constant.DateFormat),
			"booking_id":    event.BookingID,
			"stock_item_id": event.StockItemID,
			"net":           event.Net(),
		}

		msg := kafka.Message{Key: string(event.Type), Value: payload}
		if err := s.kafka.SendMessages(c, s.cfg.Kafka.LedgerTopic, msg); err != nil {
			log.Error().Err(err).Str("eventType", string(event.Type)).Msg("failed to publish ledger event")
		}
	}()
}

// EntriesForBookingTx reads the automatic entries tied to a booking inside the
// caller's transaction, for building cancellation reversals.
func (s *serviceImpl) EntriesForBookingTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string) (res []model.Entry, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EntriesForBookingTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldBookingID, Value: bookingID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{ArgName: "system", Field: model.FieldSystem, Value: true, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}

	res, err = s.entries.GetAllTx(ctx, sqltx, filter)
	if err != nil {
		log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to get booking ledger entries")

		return nil, fmt.Errorf("failed to get booking ledger entries: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) ManualEntry(ctx context.Context, req dto.ManualEntryRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ManualEntry")
	defer scope.End()
	defer scope.TraceIfError(err)

	wallet, err := model.ParseWallet(req.Wallet)
	if err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	event := model.NewManualTransaction(req.Direction, req.Category, wallet, req.Amount, req.Notes, timezone.Now(), user)

	err = s.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		_, err := s.Propagate(ctx, tx, event)

		return err
	})
	if err != nil {
		return err
	}

	s.Publish(ctx, event)

	return nil
}

// DeleteManualEntry removes a manual entry together with its balancing
// counterpart and unwinds both wallet balances. Automatic entries are
// immutable and can only be corrected by reversal events.
func (s *serviceImpl) DeleteManualEntry(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteManualEntry")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	err = s.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		matches, err := s.entries.GetAllTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			return err
		}

		if len(matches) == 0 {
			return failure.NotFound("ledger entry not found") //nolint:wrapcheck
		}

		if matches[0].System {
			return failure.InvalidState("only manual entries can be deleted") //nolint:wrapcheck
		}

		group, err := s.entries.GetAllTx(ctx, tx, shared.FilterByID(matches[0].EventID, model.FieldEventID, model.TableName))
		if err != nil {
			return err
		}

		totals := map[string]int64{}
		for _, entry := range group {
			totals[entry.Wallet] -= entry.Signed()
		}

		for _, wallet := range model.AllWallets() {
			sum, touched := totals[wallet.Code()]
			if !touched {
				continue
			}

			row, err := s.wallets.GetForUpdateTx(ctx, tx, wallet.Code())
			if err != nil {
				return err
			}

			if err := s.wallets.SetBalanceTx(ctx, tx, wallet.Code(), row.Balance+sum, user); err != nil {
				return err
			}
		}

		return s.entries.DeleteTx(ctx, tx, shared.FilterByID(matches[0].EventID, model.FieldEventID, model.TableName))
	})
	if err != nil {
		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheBalances)
		shared.InvalidateCaches(c, s.cache, cacheGetEntries)
		shared.InvalidateCaches(c, s.cache, cacheCountEntries)
	}()

	return nil
}

// AdjustBalance reconciles one wallet to a counted balance. The correction is
// itself an event, so the adjustment stays visible in the entry log.
func (s *serviceImpl) AdjustBalance(ctx context.Context, req dto.AdjustBalanceRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AdjustBalance")
	defer scope.End()
	defer scope.TraceIfError(err)

	wallet, err := model.ParseWallet(req.Wallet)
	if err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var event model.Event

	err = s.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		row, err := s.wallets.GetForUpdateTx(ctx, tx, wallet.Code())
		if err != nil {
			return err
		}

		if row.Code == constant.Empty {
			return failure.InsufficientConfig(fmt.Sprintf("wallet %s is not seeded", wallet.Code())) //nolint:wrapcheck
		}

		delta := req.Balance - row.Balance
		if delta == 0 {
			return nil
		}

		event = model.NewBalanceAdjusted(wallet, delta, req.Notes, timezone.Now(), user)

		_, err = s.Propagate(ctx, tx, event)

		return err
	})
	if err != nil {
		return err
	}

	if len(event.Deltas) > 0 {
		s.Publish(ctx, event)
	}

	return nil
}

func (s *serviceImpl) Balances(ctx context.Context) (res dto.BalancesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Balances")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheBalances, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheBalances).Msg("cache hit for wallet balances")

		return res, nil
	}

	params := gDto.QueryParams{SortBy: model.WalletFieldCode, SortDir: "ASC"}

	models, err := s.wallets.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get wallet balances")

		return res, fmt.Errorf("failed to get wallet balances: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheBalances, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save wallet balances to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetEntries(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetEntriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetEntries")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetEntries, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for ledger entries")

		return res, nil
	}

	total, err := s.CountEntries(ctx, filter)
	if err != nil {
		return res, err
	}

	models, err := s.entries.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get ledger entries")

		return res, fmt.Errorf("failed to get ledger entries: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save ledger entries to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) CountEntries(ctx context.Context, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CountEntries")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountEntries, gDto.QueryParams{}, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.entries.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count ledger entries")

		return res, fmt.Errorf("failed to count ledger entries: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save ledger entry count to cache")
		}
	}()

	return res, nil
}

func nilIfEmpty(s string) *string {
	if s == constant.Empty {
		return nil
	}

	return &s
}
