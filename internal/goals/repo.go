package goals

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

var ErrGoalNotFound = errors.New("goal not found")

const goalColumns = `id, user_id, type, target_value, current_value, deadline, status, title, description, created_at, updated_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) List(ctx context.Context, userID string) (_ []model.Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("user", userID))

	rows, err := r.db.Query(ctx, `
		SELECT `+goalColumns+`
		FROM goals
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query goals: %w", err)
	}

	goals, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Goal])
	if err != nil {
		return nil, fmt.Errorf("collect goals: %w", err)
	}
	return goals, nil
}

// Add stores a new goal. Progress starts at zero and the goal starts active.
func (r *Repo) Add(ctx context.Context, goal *model.Goal) (_ *model.Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	added := *goal
	added.ID = uuid.NewString()
	added.CurrentValue = 0
	added.Status = model.GoalStatusActive
	added.CreatedAt = time.Now().UTC()
	added.UpdatedAt = nil
	if err := added.Validate(); err != nil {
		return nil, err
	}

	if _, err := r.db.Exec(ctx, `
		INSERT INTO goals (id, user_id, type, target_value, current_value, deadline, status, title, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		added.ID, added.UserID, added.Type, added.TargetValue, added.CurrentValue,
		added.Deadline, added.Status, added.Title, added.Description, added.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("insert goal: %w", err)
	}

	return &added, nil
}

func (r *Repo) Update(ctx context.Context, userID string, goal *model.Goal) (_ *model.Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("id", goal.ID))

	if err := goal.Validate(); err != nil {
		return nil, err
	}

	var updated *model.Goal
	err = db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := db.CheckOwner(ctx, tx, "goals", goal.ID, userID, ErrGoalNotFound); err != nil {
			return err
		}

		rows, err := tx.Query(ctx, `
			UPDATE goals
			SET type = $1, target_value = $2, current_value = $3, deadline = $4, status = $5,
			    title = $6, description = $7, updated_at = $8
			WHERE id = $9
			RETURNING `+goalColumns,
			goal.Type, goal.TargetValue, goal.CurrentValue, goal.Deadline, goal.Status,
			goal.Title, goal.Description, time.Now().UTC(), goal.ID,
		)
		if err != nil {
			return fmt.Errorf("update goal: %w", err)
		}
		updated, err = pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.Goal])
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *Repo) Delete(ctx context.Context, userID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("id", id))

	return db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := db.CheckOwner(ctx, tx, "goals", id, userID, ErrGoalNotFound); err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, `DELETE FROM goals WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete goal: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrGoalNotFound
		}
		return nil
	})
}
