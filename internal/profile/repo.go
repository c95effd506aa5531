package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/wallfit/internal/db"
	"github.com/2beens/wallfit/internal/model"
	"github.com/2beens/wallfit/internal/telemetry/tracing"
	"github.com/2beens/wallfit/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrUsernameTaken = errors.New("username already taken")

const profileColumns = `id, username, avatar_url, weight, height, goal, activity_level, created_at, updated_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// GetOrCreate returns the user's profile, creating an empty one on first access.
func (r *Repo) GetOrCreate(ctx context.Context, userID string) (_ *model.Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.getorcreate")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("user", userID))

	if _, err := r.db.Exec(ctx, `
		INSERT INTO profiles (id, created_at)
		VALUES ($1, $2)
		ON CONFLICT (id) DO NOTHING
	`, userID, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("ensure profile: %w", err)
	}

	rows, err := r.db.Query(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("query profile: %w", err)
	}
	profile, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.Profile])
	if err != nil {
		return nil, fmt.Errorf("collect profile: %w", err)
	}
	return profile, nil
}

// Upsert replaces the editable profile fields, creating the profile when absent.
func (r *Repo) Upsert(ctx context.Context, profile *model.Profile) (_ *model.Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.upsert")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := profile.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	rows, err := r.db.Query(ctx, `
		INSERT INTO profiles (id, username, avatar_url, weight, height, goal, activity_level, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE
		SET username = EXCLUDED.username,
		    avatar_url = EXCLUDED.avatar_url,
		    weight = EXCLUDED.weight,
		    height = EXCLUDED.height,
		    goal = EXCLUDED.goal,
		    activity_level = EXCLUDED.activity_level,
		    updated_at = $8
		RETURNING `+profileColumns,
		profile.ID, profile.Username, profile.AvatarURL, profile.Weight, profile.Height,
		profile.Goal, profile.ActivityLevel, now,
	)
	if err != nil {
		return nil, mapWriteErr("upsert profile", err)
	}

	upserted, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.Profile])
	if err != nil {
		return nil, mapWriteErr("upsert profile", err)
	}
	return upserted, nil
}

func (r *Repo) SetWeight(ctx context.Context, userID string, weight float64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.setweight")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	now := time.Now().UTC()
	if _, err := r.db.Exec(ctx, `
		INSERT INTO profiles (id, weight, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET weight = EXCLUDED.weight, updated_at = $3
	`, userID, weight, now); err != nil {
		return mapWriteErr("set profile weight", err)
	}
	return nil
}

// Delete removes the user's workouts and then the profile itself, in one
// transaction. Deleting a profile that does not exist is not an error.
func (r *Repo) Delete(ctx context.Context, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	return db.InTx(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM workouts WHERE user_id = $1`, userID)
		if err != nil {
			return fmt.Errorf("delete workouts: %w", err)
		}
		span.SetAttributes(attribute.Int64("workouts", tag.RowsAffected()))

		if _, err := tx.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, userID); err != nil {
			return fmt.Errorf("delete profile: %w", err)
		}
		return nil
	})
}
