package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/inventory/model"
	"lodge/internal/domains/inventory/model/dto"
	"lodge/internal/domains/inventory/repository"
	ledgerModel "lodge/internal/domains/ledger/model"
	ledgerService "lodge/internal/domains/ledger/service"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

const (
	cacheGetItem   = "inventory:get"
	cacheGetItems  = "inventory:gets"
	cacheCountItem = "inventory:count"
	cacheGetLogs   = "inventory:logs"
)

type Inventory interface {
	CreateItem(ctx context.Context, req dto.CreateItemRequest) error
	GetItems(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetItemsResponse, error)
	GetItem(ctx context.Context, id string) (dto.ItemResponse, error)
	UpdateItem(ctx context.Context, req dto.UpdateItemRequest, id string) error
	DeleteItem(ctx context.Context, id string) error
	Import(ctx context.Context, id string, req dto.ImportRequest) error
	Adjust(ctx context.Context, id string, req dto.AdjustRequest) error
	GetLogs(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetLogsResponse, error)
	ConsumeTx(ctx context.Context, sqltx *sqlx.Tx, id string, quantity int64, bookingID string) (model.StockItem, error)
	RestockTx(ctx context.Context, sqltx *sqlx.Tx, id string, quantity int64, bookingID string) error
}

type serviceImpl struct {
	items  repository.StockItems
	logs   repository.Logs
	ledger ledgerService.Ledger
	db     *postgres.Connection
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
}

func New(items repository.StockItems, logs repository.Logs, ledger ledgerService.Ledger, db *postgres.Connection, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Inventory {
	return &serviceImpl{
		items:  items,
		logs:   logs,
		ledger: ledger,
		db:     db,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
	}
}

func (s *serviceImpl) CreateItem(ctx context.Context, req dto.CreateItemRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.items.Insert(ctx, req.ToModel(user)); err != nil {
		return err
	}

	s.invalidateItemCaches(ctx, constant.Empty)

	return nil
}

func (s *serviceImpl) GetItems(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetItemsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetItems")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetItems, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for stock items")

		return res, nil
	}

	total, err := s.items.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count stock items")

		return res, fmt.Errorf("failed to count stock items: %w", err)
	}

	models, err := s.items.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get stock items")

		return res, fmt.Errorf("failed to get stock items: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save stock items to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetItem(ctx context.Context, id string) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetItem, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for stock item")

		return res, nil
	}

	item, err := s.items.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get stock item")

		return res, fmt.Errorf("failed to get stock item: %w", err)
	}

	if item.ID == constant.Empty {
		return res, failure.NotFound("stock item not found") // nolint:wrapcheck
	}

	res.FromModel(item)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save stock item to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateItem(ctx context.Context, req dto.UpdateItemRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.items.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check stock item existence")

		return fmt.Errorf("failed to check stock item existence: %w", err)
	}

	if !exist {
		return failure.NotFound("stock item not found") //nolint:wrapcheck
	}

	if err := s.items.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update stock item")

		return fmt.Errorf("failed to update stock item: %w", err)
	}

	s.invalidateItemCaches(ctx, id)

	return nil
}

func (s *serviceImpl) DeleteItem(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	item, err := s.items.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get stock item")

		return fmt.Errorf("failed to get stock item: %w", err)
	}

	if item.ID == constant.Empty {
		return failure.NotFound("stock item not found") // nolint:wrapcheck
	}

	if item.Quantity > 0 {
		return failure.InvalidState("stock item still has stock on hand") //nolint:wrapcheck
	}

	if err := s.items.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete stock item")

		return fmt.Errorf("failed to delete stock item: %w", err)
	}

	s.invalidateItemCaches(ctx, id)

	return nil
}

// Import receives a purchase and folds its cost into the weighted-average unit
// cost. Quantity is in purchase units; the conversion factor expands it into
// retail units. Free additions (paid = 0) change the quantity and dilute the
// average cost but never touch the ledger.
func (s *serviceImpl) Import(ctx context.Context, id string, req dto.ImportRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Import")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var event ledgerModel.Event

	if req.Paid > 0 {
		wallet, err := ledgerModel.WalletForPaymentMethod(req.PaymentMethod)
		if err != nil {
			return err
		}

		event = ledgerModel.NewInventoryImported(id, wallet, req.Paid, timezone.Now(), user)
	}

	err = s.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		item, err := s.items.GetForUpdateTx(ctx, tx, id)
		if err != nil {
			return err
		}

		if item.ID == constant.Empty {
			return failure.NotFound("stock item not found") //nolint:wrapcheck
		}

		factor := item.ConversionFactor
		if factor < 1 {
			factor = 1
		}

		added := req.Quantity * factor
		newQuantity := item.Quantity + added

		newCost := item.Cost
		if newQuantity > 0 {
			newCost = int64(math.Round(float64(item.Quantity*item.Cost+req.Paid) / float64(newQuantity)))
		}

		if err := s.items.SetStockTx(ctx, tx, id, newQuantity, newCost, user); err != nil {
			return err
		}

		logEntry := model.Log{
			ID:            uuid.NewString(),
			StockItemID:   id,
			Type:          model.LogTypeImport,
			Change:        added,
			QuantityAfter: newQuantity,
			UnitCost:      newCost,
			Paid:          req.Paid,
			Notes:         req.Notes,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}

		if err := s.logs.InsertTx(ctx, tx, logEntry); err != nil {
			return err
		}

		if req.Paid > 0 {
			if _, err := s.ledger.Propagate(ctx, tx, event); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	if req.Paid > 0 {
		s.ledger.Publish(ctx, event)
	}

	s.invalidateItemCaches(ctx, id)

	return nil
}

// Adjust sets the counted quantity after a physical stock take. The average
// cost is left untouched; only the level changes.
func (s *serviceImpl) Adjust(ctx context.Context, id string, req dto.AdjustRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Adjust")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	err = s.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		item, err := s.items.GetForUpdateTx(ctx, tx, id)
		if err != nil {
			return err
		}

		if item.ID == constant.Empty {
			return failure.NotFound("stock item not found") //nolint:wrapcheck
		}

		if item.Quantity == req.Quantity {
			return nil
		}

		if err := s.items.SetStockTx(ctx, tx, id, req.Quantity, item.Cost, user); err != nil {
			return err
		}

		logEntry := model.Log{
			ID:            uuid.NewString(),
			StockItemID:   id,
			Type:          model.LogTypeAdjustment,
			Change:        req.Quantity - item.Quantity,
			QuantityAfter: req.Quantity,
			UnitCost:      item.Cost,
			Notes:         req.Notes,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}

		return s.logs.InsertTx(ctx, tx, logEntry)
	})
	if err != nil {
		return err
	}

	s.invalidateItemCaches(ctx, id)

	return nil
}

func (s *serviceImpl) GetLogs(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetLogsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetLogs")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetLogs, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for inventory logs")

		return res, nil
	}

	total, err := s.logs.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count inventory logs")

		return res, fmt.Errorf("failed to count inventory logs: %w", err)
	}

	models, err := s.logs.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get inventory logs")

		return res, fmt.Errorf("failed to get inventory logs: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save inventory logs to cache")
		}
	}()

	return res, nil
}

// ConsumeTx takes quantity retail units off the shelf inside the caller's
// transaction and returns the item with its pre-consumption price and cost,
// which the caller snapshots onto the sale.
func (s *serviceImpl) ConsumeTx(ctx context.Context, sqltx *sqlx.Tx, id string, quantity int64, bookingID string) (item model.StockItem, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ConsumeTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	item, err = s.items.GetForUpdateTx(ctx, sqltx, id)
	if err != nil {
		return item, err
	}

	if item.ID == constant.Empty {
		return item, failure.NotFound("stock item not found") //nolint:wrapcheck
	}

	if !item.Active {
		return item, failure.InvalidState("stock item is inactive") //nolint:wrapcheck
	}

	if item.Quantity < quantity {
		return item, failure.InvalidState(fmt.Sprintf("insufficient stock for %s: have %d, need %d", item.Name, item.Quantity, quantity)) //nolint:wrapcheck
	}

	remaining := item.Quantity - quantity

	if err := s.items.SetStockTx(ctx, sqltx, id, remaining, item.Cost, user); err != nil {
		return item, err
	}

	logEntry := model.Log{
		ID:            uuid.NewString(),
		StockItemID:   id,
		Type:          model.LogTypeConsumption,
		Change:        -quantity,
		QuantityAfter: remaining,
		UnitCost:      item.Cost,
		BookingID:     &bookingID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err := s.logs.InsertTx(ctx, sqltx, logEntry); err != nil {
		return item, err
	}

	s.invalidateItemCaches(ctx, id)

	return item, nil
}

// RestockTx puts quantity retail units back, undoing a consumption.
func (s *serviceImpl) RestockTx(ctx context.Context, sqltx *sqlx.Tx, id string, quantity int64, bookingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RestockTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	item, err := s.items.GetForUpdateTx(ctx, sqltx, id)
	if err != nil {
		return err
	}

	if item.ID == constant.Empty {
		return failure.NotFound("stock item not found") //nolint:wrapcheck
	}

	restored := item.Quantity + quantity

	if err := s.items.SetStockTx(ctx, sqltx, id, restored, item.Cost, user); err != nil {
		return err
	}

	logEntry := model.Log{
		ID:            uuid.NewString(),
		StockItemID:   id,
		Type:          model.LogTypeRestock,
		Change:        quantity,
		QuantityAfter: restored,
		UnitCost:      item.Cost,
		BookingID:     &bookingID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err := s.logs.InsertTx(ctx, sqltx, logEntry); err != nil {
		return err
	}

	s.invalidateItemCaches(ctx, id)

	return nil
}

func (s *serviceImpl) invalidateItemCaches(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetItem, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete stock item cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetItems)
		shared.InvalidateCaches(c, s.cache, cacheCountItem)
		shared.InvalidateCaches(c, s.cache, cacheGetLogs)
	}()
}
