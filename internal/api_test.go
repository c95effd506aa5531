//go:build integration_test || all_tests

package internal_test

import (
	"net/http"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/wallfit/internal/dashboard"
	"github.com/2beens/wallfit/internal/db"
	"github.com/2beens/wallfit/internal/goals"
	"github.com/2beens/wallfit/internal/model"
	"github.com/2beens/wallfit/internal/profile"
	"github.com/2beens/wallfit/internal/weight"
	"github.com/2beens/wallfit/internal/workouts"
)

func (s *IntegrationTestSuite) TestUnauthorized() {
	t := s.T()

	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/health", "", nil, nil))
	assert.Equal(t, http.StatusUnauthorized, s.do(http.MethodGet, "/api/workouts", "", nil, nil))

	var readiness map[string]any
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/health/ready", "", nil, &readiness))
	assert.Equal(t, "OK", readiness["status"])
}

func (s *IntegrationTestSuite) TestAuthMe() {
	t := s.T()
	userID := uuid.NewString()

	var me map[string]string
	require.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/auth/me", userID, nil, &me))
	assert.Equal(t, userID, me["id"])
	assert.Equal(t, userID+"@wallfit.test", me["email"])
}

func (s *IntegrationTestSuite) TestWorkouts() {
	t := s.T()
	owner, stranger := uuid.NewString(), uuid.NewString()

	var list []model.Workout
	require.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/workouts", owner, nil, &list))
	assert.Empty(t, list)

	var added model.Workout
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/api/workouts", owner, map[string]any{
		"type": "Cardio", "duration": 30, "calories": 250,
	}, &added))
	assert.Equal(t, owner, added.UserID)
	assert.NoError(t, uuid.Validate(added.ID))

	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPost, "/api/workouts", owner, map[string]any{
		"type": "Cardio", "duration": 0, "calories": 250,
	}, nil))

	update := map[string]any{"type": "Running", "duration": 45, "calories": 400}
	assert.Equal(t, http.StatusForbidden, s.do(http.MethodPut, "/api/workouts/"+added.ID, stranger, update, nil))
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodPut, "/api/workouts/"+uuid.NewString(), owner, update, nil))
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodPut, "/api/workouts/not-a-uuid", owner, update, nil))

	var updated model.Workout
	require.Equal(t, http.StatusOK, s.do(http.MethodPut, "/api/workouts/"+added.ID, owner, update, &updated))
	assert.Equal(t, "Running", updated.Type)
	assert.NotNil(t, updated.UpdatedAt)

	var (
		storedCalories  int
		storedCreatedAt time.Time
	)
	require.NoError(t, s.DB.QueryRow(
		`SELECT calories, created_at FROM workouts WHERE id = $1`, added.ID,
	).Scan(&storedCalories, &storedCreatedAt))
	assert.Equal(t, 400, storedCalories)
	assert.Equal(t, added.CreatedAt.Unix(), storedCreatedAt.Unix())

	assert.Equal(t, http.StatusForbidden, s.do(http.MethodDelete, "/api/workouts/"+added.ID, stranger, nil, nil))
	assert.Equal(t, http.StatusNoContent, s.do(http.MethodDelete, "/api/workouts/"+added.ID, owner, nil, nil))
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodDelete, "/api/workouts/"+added.ID, owner, nil, nil))

	var remaining int
	require.NoError(t, s.DB.QueryRow(`SELECT count(*) FROM workouts WHERE id = $1`, added.ID).Scan(&remaining))
	assert.Zero(t, remaining)

	var estimate workouts.EstimateResponse
	require.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/workouts/estimate?duration=45", owner, nil, &estimate))
	assert.Equal(t, 315, estimate.Calories)
}

func (s *IntegrationTestSuite) TestGoals() {
	t := s.T()
	owner := uuid.NewString()
	deadline := time.Now().AddDate(0, 1, 0).Format(model.DateLayout)

	var added goals.GoalView
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/api/goals", owner, map[string]any{
		"type": "workouts", "target_value": 20, "deadline": deadline, "title": "Twenty sessions",
	}, &added))
	assert.Equal(t, model.GoalStatusActive, added.Status)
	assert.Zero(t, added.CurrentValue)

	require.Equal(t, http.StatusOK, s.do(http.MethodPut, "/api/goals/"+added.ID, owner, map[string]any{
		"type": "workouts", "target_value": 20, "deadline": deadline,
		"current_value": 20, "status": "completed",
	}, nil))

	var active, completed []goals.GoalView
	require.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/goals?status=active", owner, nil, &active))
	require.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/goals?status=completed", owner, nil, &completed))
	assert.Empty(t, active)
	require.Len(t, completed, 1)
	assert.InDelta(t, 100.0, completed[0].Progress, 0.001)
	assert.False(t, completed[0].Overdue)

	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/api/goals?status=archived", owner, nil, nil))
	assert.Equal(t, http.StatusNoContent, s.do(http.MethodDelete, "/api/goals/"+added.ID, owner, nil, nil))
}

func (s *IntegrationTestSuite) TestWeightFollowsProfile() {
	t := s.T()
	owner := uuid.NewString()
	today := time.Now().Format(model.DateLayout)
	lastWeek := time.Now().AddDate(0, 0, -7).Format(model.DateLayout)

	var latest, older model.WeightEntry
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/api/weight", owner, map[string]any{
		"weight": 80.5, "date": today,
	}, &latest))
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/api/weight", owner, map[string]any{
		"weight": 82, "date": lastWeek,
	}, &older))

	var resp profile.Response
	require.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/profile", owner, nil, &resp))
	require.NotNil(t, resp.Profile.Weight)
	assert.Equal(t, 80.5, *resp.Profile.Weight)

	// editing an older entry keeps the profile on the latest one
	require.Equal(t, http.StatusOK, s.do(http.MethodPut, "/api/weight/"+older.ID, owner, map[string]any{
		"weight": 83, "date": lastWeek,
	}, nil))
	require.Equal(t, http.StatusOK, s.do(http.MethodPut, "/api/weight/"+latest.ID, owner, map[string]any{
		"weight": 79.5, "date": today,
	}, nil))
	require.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/profile", owner, nil, &resp))
	assert.Equal(t, 79.5, *resp.Profile.Weight)

	var trend weight.TrendResponse
	require.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/weight/trend", owner, nil, &trend))
	require.NotNil(t, trend.Change)
	assert.InDelta(t, -3.5, trend.Change.Change, 0.001)
	assert.Len(t, trend.Series, 2)

	require.Equal(t, http.StatusNoContent, s.do(http.MethodDelete, "/api/weight/"+latest.ID, owner, nil, nil))
	require.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/profile", owner, nil, &resp))
	assert.Equal(t, 83.0, *resp.Profile.Weight)
}

func (s *IntegrationTestSuite) TestProfileLifecycle() {
	t := s.T()
	owner, other := uuid.NewString(), uuid.NewString()
	username := gofakeit.Username()

	var resp profile.Response
	require.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/profile", owner, nil, &resp))
	require.NotNil(t, resp.Profile)
	assert.Equal(t, owner, resp.Profile.ID)
	assert.Zero(t, resp.Stats.TotalWorkouts)

	var updated model.Profile
	require.Equal(t, http.StatusOK, s.do(http.MethodPut, "/api/profile", owner, map[string]any{
		"username": username, "height": 181.5,
	}, &updated))
	assert.Equal(t, username, *updated.Username)

	assert.Equal(t, http.StatusConflict, s.do(http.MethodPut, "/api/profile", other, map[string]any{
		"username": username,
	}, nil))
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodPut, "/api/profile", other, map[string]any{
		"username": "x",
	}, nil))

	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/api/programs/4/start", owner, nil, nil))
	require.Equal(t, http.StatusCreated, s.do(http.MethodPost, "/api/workouts", other, map[string]any{
		"type": "Yoga", "duration": 60, "calories": 200,
	}, nil))

	var overview dashboard.Overview
	require.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/stats", owner, nil, &overview))
	assert.Equal(t, 3, overview.TotalWorkouts)
	assert.Equal(t, 665, overview.TotalCalories)
	assert.Equal(t, 1, overview.Streak)

	require.Equal(t, http.StatusNoContent, s.do(http.MethodDelete, "/api/profile", owner, nil, nil))

	var ownerWorkouts, otherWorkouts, profiles int
	require.NoError(t, s.DB.QueryRow(`SELECT count(*) FROM workouts WHERE user_id = $1`, owner).Scan(&ownerWorkouts))
	require.NoError(t, s.DB.QueryRow(`SELECT count(*) FROM workouts WHERE user_id = $1`, other).Scan(&otherWorkouts))
	require.NoError(t, s.DB.QueryRow(`SELECT count(*) FROM profiles WHERE id = $1`, owner).Scan(&profiles))
	assert.Zero(t, ownerWorkouts)
	assert.Equal(t, 1, otherWorkouts)
	assert.Zero(t, profiles)

	// deleting again is not an error
	assert.Equal(t, http.StatusNoContent, s.do(http.MethodDelete, "/api/profile", owner, nil, nil))
}

func (s *IntegrationTestSuite) TestSchemaRollback() {
	t := s.T()

	tableExists := func(table string) bool {
		var exists bool
		require.NoError(t, s.DB.QueryRow(`SELECT to_regclass($1) IS NOT NULL`, "public."+table).Scan(&exists))
		return exists
	}

	require.True(t, tableExists("workouts"))
	require.NoError(t, db.MigrateDown(s.pool))
	for _, table := range []string{"profiles", "workouts", "goals", "weight_entries"} {
		assert.False(t, tableExists(table), table)
	}

	require.NoError(t, db.Migrate(s.pool))
	assert.True(t, tableExists("workouts"))
	assert.True(t, tableExists("weight_entries"))
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/workouts", uuid.NewString(), nil, nil))
}
