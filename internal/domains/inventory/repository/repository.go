package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/inventory/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gRepo "lodge/shared/repository"
	"lodge/shared/timezone"
)

type StockItems interface {
	Insert(ctx context.Context, model model.StockItem) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.StockItem, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.StockItem, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, id string) (model.StockItem, error)
	SetStockTx(ctx context.Context, sqltx *sqlx.Tx, id string, quantity, cost int64, modifiedBy string) error
}

type stockItemsImpl struct {
	gRepo.Repository[model.StockItem]
	db   *postgres.Connection
	otel otel.Otel
}

func NewStockItems(db *postgres.Connection, otel otel.Otel) StockItems {
	return &stockItemsImpl{
		Repository: gRepo.NewRepository[model.StockItem](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *stockItemsImpl) GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, id string) (model.StockItem, error) {
	return r.Repository.GetForUpdateTx(ctx, sqltx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (r *stockItemsImpl) SetStockTx(ctx context.Context, sqltx *sqlx.Tx, id string, quantity, cost int64, modifiedBy string) error {
	fields := map[string]any{
		model.FieldQuantity:      quantity,
		model.FieldCost:          cost,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: modifiedBy,
	}

	return r.UpdateTx(ctx, sqltx, fields, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

type Logs interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Log) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Log, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type logsImpl struct {
	gRepo.Repository[model.Log]
	db   *postgres.Connection
	otel otel.Otel
}

func NewLogs(db *postgres.Connection, otel otel.Otel) Logs {
	return &logsImpl{
		Repository: gRepo.NewRepository[model.Log](model.LogEntityName, model.LogTableName, model.LogFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
