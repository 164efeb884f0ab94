package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/2beens/workoutsheet/internal/workout"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction(
			"github.com/go-redis/redis/v8/internal/pool.(*ConnPool).reaper",
		),
	)
}

func fakePlan() *workout.Plan {
	ex := workout.Exercise{
		MuscleGroup: gofakeit.RandomString([]string{"Chest", "Back", "Legs"}),
		Name:        gofakeit.Word(),
		Rest:        "2'",
		PlannedSets: "3",
		PlannedReps: "8-10",
		Sets: []workout.Set{
			{Load: "80", Reps: "10", Intensity: "RIR 1-2"},
			{Load: "80", Reps: "9"},
		},
	}
	return &workout.Plan{
		Days: []workout.Day{
			{Label: "DAY 1", Exercises: []workout.Exercise{ex}},
			{Label: "DAY 2", Exercises: []workout.Exercise{}},
		},
	}
}

func cachedJson(t *testing.T, worksheet string, plan *workout.Plan) []byte {
	t.Helper()
	b, err := json.Marshal(cachedPlan{Worksheet: worksheet, Plan: plan})
	require.NoError(t, err)
	return b
}

func TestStore_PutGet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()
	store := NewStore(db, time.Hour)
	ctx := context.Background()
	plan := fakePlan()

	mock.ExpectSet(planKeyPrefix+"tkn", cachedJson(t, "W1", plan), time.Hour).SetVal("OK")
	require.NoError(t, store.Put(ctx, "tkn", "W1", plan))

	mock.ExpectGet(planKeyPrefix + "tkn").SetVal(string(cachedJson(t, "W1", plan)))
	got, err := store.Get(ctx, "tkn", "W1")
	require.NoError(t, err)
	assert.Equal(t, plan, got)

	// another worksheet is a miss
	mock.ExpectGet(planKeyPrefix + "tkn").SetVal(string(cachedJson(t, "W1", plan)))
	_, err = store.Get(ctx, "tkn", "W2")
	assert.ErrorIs(t, err, ErrNotCached)

	mock.ExpectGet(planKeyPrefix + "other").RedisNil()
	_, err = store.Get(ctx, "other", "W1")
	assert.ErrorIs(t, err, ErrNotCached)

	mock.ExpectGet(planKeyPrefix + "tkn").SetErr(errors.New("redis down"))
	_, err = store.Get(ctx, "tkn", "W1")
	assert.ErrorContains(t, err, "redis down")
	assert.NotErrorIs(t, err, ErrNotCached)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Patch(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()
	store := NewStore(db, time.Hour)
	ctx := context.Background()
	plan := fakePlan()
	name := plan.Days[0].Exercises[0].Name

	upd := workout.SetUpdate{Day: "DAY 1", Exercise: name, SetIndex: 1, Load: "82.5", Intensity: "FAIL"}
	patched := fakePlanCopy(t, plan)
	patched.Days[0].Exercises[0].Sets[1].Load = "82.5"
	patched.Days[0].Exercises[0].Sets[1].Intensity = "FAIL"

	mock.ExpectGet(planKeyPrefix + "tkn").SetVal(string(cachedJson(t, "W1", plan)))
	mock.ExpectSet(planKeyPrefix+"tkn", cachedJson(t, "W1", patched), time.Hour).SetVal("OK")
	ok, err := store.Patch(ctx, "tkn", "W1", upd)
	require.NoError(t, err)
	assert.True(t, ok)

	// set outside the cached plan: nothing stored
	mock.ExpectGet(planKeyPrefix + "tkn").SetVal(string(cachedJson(t, "W1", plan)))
	ok, err = store.Patch(ctx, "tkn", "W1", workout.SetUpdate{Day: "DAY 1", Exercise: name, SetIndex: 3, Load: "1"})
	require.NoError(t, err)
	assert.False(t, ok)

	mock.ExpectGet(planKeyPrefix + "tkn").RedisNil()
	ok, err = store.Patch(ctx, "tkn", "W1", upd)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Clear(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()
	store := NewStore(db, time.Hour)

	mock.ExpectDel(planKeyPrefix + "tkn").SetVal(1)
	require.NoError(t, store.Clear(context.Background(), "tkn"))

	mock.ExpectDel(planKeyPrefix + "tkn").SetErr(errors.New("boom"))
	assert.ErrorContains(t, store.Clear(context.Background(), "tkn"), "boom")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func fakePlanCopy(t *testing.T, plan *workout.Plan) *workout.Plan {
	t.Helper()
	b, err := json.Marshal(plan)
	require.NoError(t, err)
	cp := &workout.Plan{}
	require.NoError(t, json.Unmarshal(b, cp))
	return cp
}
