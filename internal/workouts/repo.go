package workouts

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

var ErrWorkoutNotFound = errors.New("workout not found")

const workoutColumns = `id, user_id, type, duration, calories, created_at, updated_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) List(ctx context.Context, userID string) (_ []model.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("user", userID))

	rows, err := r.db.Query(ctx, `
		SELECT `+workoutColumns+`
		FROM workouts
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query workouts: %w", err)
	}

	workouts, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Workout])
	if err != nil {
		return nil, fmt.Errorf("collect workouts: %w", err)
	}
	return workouts, nil
}

func (r *Repo) Add(ctx context.Context, workout *model.Workout) (_ *model.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := workout.Validate(); err != nil {
		return nil, err
	}

	added := *workout
	added.ID = uuid.NewString()
	added.CreatedAt = time.Now().UTC()
	added.UpdatedAt = nil

	if _, err := r.db.Exec(ctx, `
		INSERT INTO workouts (id, user_id, type, duration, calories, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		added.ID, added.UserID, added.Type, added.Duration, added.Calories, added.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("insert workout: %w", err)
	}

	return &added, nil
}

// AddMany inserts all workouts for userID in one transaction. Either every
// workout is stored or none is.
func (r *Repo) AddMany(ctx context.Context, userID string, workouts []model.Workout) (_ []model.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add_many")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("count", len(workouts)))

	now := time.Now().UTC()
	added := make([]model.Workout, 0, len(workouts))
	batch := &pgx.Batch{}
	for _, w := range workouts {
		w.UserID = userID
		if err := w.Validate(); err != nil {
			return nil, err
		}
		w.ID = uuid.NewString()
		w.CreatedAt = now
		w.UpdatedAt = nil
		batch.Queue(`
			INSERT INTO workouts (id, user_id, type, duration, calories, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, w.ID, w.UserID, w.Type, w.Duration, w.Calories, w.CreatedAt)
		added = append(added, w)
	}
	if len(added) == 0 {
		return added, nil
	}

	err = db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert workouts batch: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return added, nil
}

// Update replaces type, duration and calories of a workout owned by userID.
func (r *Repo) Update(ctx context.Context, userID string, workout *model.Workout) (_ *model.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("id", workout.ID))

	if err := workout.Validate(); err != nil {
		return nil, err
	}

	var updated *model.Workout
	err = db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := db.CheckOwner(ctx, tx, "workouts", workout.ID, userID, ErrWorkoutNotFound); err != nil {
			return err
		}

		rows, err := tx.Query(ctx, `
			UPDATE workouts
			SET type = $1, duration = $2, calories = $3, updated_at = $4
			WHERE id = $5
			RETURNING `+workoutColumns,
			workout.Type, workout.Duration, workout.Calories, time.Now().UTC(), workout.ID,
		)
		if err != nil {
			return fmt.Errorf("update workout: %w", err)
		}
		updated, err = pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.Workout])
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *Repo) Delete(ctx context.Context, userID, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("id", id))

	return db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := db.CheckOwner(ctx, tx, "workouts", id, userID, ErrWorkoutNotFound); err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, `DELETE FROM workouts WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete workout: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrWorkoutNotFound
		}
		return nil
	})
}
