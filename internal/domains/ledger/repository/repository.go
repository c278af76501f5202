package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/ledger/model"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/logger"
	gRepo "lodge/shared/repository"
	"lodge/shared/timezone"
)

type Wallets interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.WalletBalance, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.WalletBalance, error)
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, code string) (model.WalletBalance, error)
	SetBalanceTx(ctx context.Context, sqltx *sqlx.Tx, code string, balance int64, modifiedBy string) error
}

type walletsImpl struct {
	gRepo.Repository[model.WalletBalance]
	db   *postgres.Connection
	otel otel.Otel
}

func NewWallets(db *postgres.Connection, otel otel.Otel) Wallets {
	return &walletsImpl{
		Repository: gRepo.NewRepository[model.WalletBalance](model.WalletEntityName, model.WalletTableName, model.WalletFieldCode, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *walletsImpl) GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, code string) (model.WalletBalance, error) {
	return r.Repository.GetForUpdateTx(ctx, sqltx, shared.FilterByID(code, model.WalletFieldCode, model.WalletTableName)) //nolint:wrapcheck
}

func (r *walletsImpl) SetBalanceTx(ctx context.Context, sqltx *sqlx.Tx, code string, balance int64, modifiedBy string) error {
	fields := map[string]any{
		model.WalletFieldBalance: balance,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: modifiedBy,
	}

	return r.UpdateTx(ctx, sqltx, fields, shared.FilterByID(code, model.WalletFieldCode, model.WalletTableName)) //nolint:wrapcheck
}

type Entries interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Entry, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Entry, error)
	GetAllTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) ([]model.Entry, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, entries []model.Entry) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
	SumByWallet(ctx context.Context, filter gDto.FilterGroup) (map[string]int64, error)
}

type entriesImpl struct {
	gRepo.Repository[model.Entry]
	db   *postgres.Connection
	otel otel.Otel
}

func NewEntries(db *postgres.Connection, otel otel.Otel) Entries {
	return &entriesImpl{
		Repository: gRepo.NewRepository[model.Entry](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type walletSum struct {
	Wallet string `db:"wallet"`
	Total  int64  `db:"total"`
}

// SumByWallet returns the signed sum of matching entries grouped per wallet.
// Used to cross-check persisted wallet balances against the entry log.
func (r *entriesImpl) SumByWallet(ctx context.Context, filter gDto.FilterGroup) (map[string]int64, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".ledger entry.SumByWallet")
	defer scope.End()

	where, args := r.BuildWhereClause(ctx, filter)

	query := fmt.Sprintf(
		"SELECT wallet, COALESCE(SUM(CASE WHEN direction = 'in' THEN amount ELSE -amount END), 0) AS total FROM %s %s GROUP BY wallet",
		model.TableName, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var rows []walletSum

	prepare, err := r.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (ledger entry): %w", err)
	}
	defer prepare.Close()

	if err := prepare.SelectContext(ctx, &rows, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to sum entries per wallet: %w", err)
	}

	sums := make(map[string]int64, len(rows))
	for _, row := range rows {
		sums[row.Wallet] = row.Total
	}

	return sums, nil
}
