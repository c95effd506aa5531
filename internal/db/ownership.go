package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/wallfit/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CheckOwner locks the record row for the rest of the transaction and
// verifies it belongs to userID. Missing (or malformed) ids yield notFoundErr,
// records owned by someone else yield model.ErrForbidden.
func CheckOwner(ctx context.Context, tx pgx.Tx, table, id, userID string, notFoundErr error) error {
	if uuid.Validate(id) != nil {
		return notFoundErr
	}

	var ownerID string
	err := tx.QueryRow(ctx,
		fmt.Sprintf(`SELECT user_id FROM %s WHERE id = $1 FOR UPDATE`, pgx.Identifier{table}.Sanitize()),
		id,
	).Scan(&ownerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return notFoundErr
	}
	if err != nil {
		return fmt.Errorf("select %s owner: %w", table, err)
	}

	if ownerID != userID {
		return model.ErrForbidden
	}
	return nil
}

type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// InTx runs fn inside a transaction, committing on success and rolling back
// when fn or the commit fails.
func InTx(ctx context.Context, beginner TxBeginner, fn func(tx pgx.Tx) error) (err error) {
	tx, err := beginner.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	return fn(tx)
}
