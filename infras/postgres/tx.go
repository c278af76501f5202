package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"lodge/shared/constant"
	"lodge/shared/failure"
)

// WithTx runs fn inside a single write transaction. The transaction commits only
// when fn returns nil; any error rolls back every change made inside it.
func (c *Connection) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := c.Write.BeginTxx(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()

			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("failed to rollback transaction")
		}

		return TranslateError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit transaction")

		return TranslateError(fmt.Errorf("failed to commit transaction: %w", err))
	}

	return nil
}

// TranslateError maps low-level postgres failures onto the service failure
// taxonomy so callers never leak driver error codes.
func TranslateError(err error) error {
	var pqErr *pq.Error

	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case constant.PqErrorCodeLockNotAvail,
			constant.PqErrorCodeSerialization,
			constant.PqErrorCodeDeadlock:
			return failure.ConcurrencyConflict("another operator is modifying the same record, please retry") //nolint:wrapcheck
		case constant.PqErrorCodeUniqueViolation:
			return failure.Conflict("record already exists") //nolint:wrapcheck
		}
	}

	return err
}
