package weight

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/wallfit/internal/db"
	"github.com/2beens/wallfit/internal/model"
	"github.com/2beens/wallfit/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrEntryNotFound = errors.New("weight entry not found")

const entryColumns = `id, user_id, weight, date, notes, created_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) List(ctx context.Context, userID string) (_ []model.WeightEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weight.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("user", userID))

	rows, err := r.db.Query(ctx, `
		SELECT `+entryColumns+`
		FROM weight_entries
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query weight entries: %w", err)
	}

	entries, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.WeightEntry])
	if err != nil {
		return nil, fmt.Errorf("collect weight entries: %w", err)
	}
	return entries, nil
}

func (r *Repo) Add(ctx context.Context, entry *model.WeightEntry) (_ *model.WeightEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weight.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	now := time.Now().UTC()
	if err := entry.Validate(now); err != nil {
		return nil, err
	}

	added := *entry
	added.ID = uuid.NewString()
	added.CreatedAt = now

	if _, err := r.db.Exec(ctx, `
		INSERT INTO weight_entries (id, user_id, weight, date, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		added.ID, added.UserID, added.Weight, added.Date, added.Notes, added.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("insert weight entry: %w", err)
	}

	return &added, nil
}

func (r *Repo) Update(ctx context.Context, userID string, entry *model.WeightEntry) (_ *model.WeightEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weight.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("id", entry.ID))

	if err := entry.Validate(time.Now().UTC()); err != nil {
		return nil, err
	}

	var updated *model.WeightEntry
	err = db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := db.CheckOwner(ctx, tx, "weight_entries", entry.ID, userID, ErrEntryNotFound); err != nil {
			return err
		}

		rows, err := tx.Query(ctx, `
			UPDATE weight_entries
			SET weight = $1, date = $2, notes = $3
			WHERE id = $4
			RETURNING `+entryColumns,
			entry.Weight, entry.Date, entry.Notes, entry.ID,
		)
		if err != nil {
			return fmt.Errorf("update weight entry: %w", err)
		}
		updated, err = pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.WeightEntry])
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *Repo) Delete(ctx context.Context, userID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weight.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("id", id))

	return db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := db.CheckOwner(ctx, tx, "weight_entries", id, userID, ErrEntryNotFound); err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, `DELETE FROM weight_entries WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete weight entry: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrEntryNotFound
		}
		return nil
	})
}
