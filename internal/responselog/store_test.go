package responselog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aruiz/qagate/internal/quality"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "responses.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func scoredRecord(question string, overall float64, passes bool) *Record {
	return &Record{
		Question:     question,
		Answer:       "an answer",
		StatusCode:   200,
		ResponseTime: 0.5,
		Safe:         true,
		SafetyReason: "safe",
		Scores: &quality.ScoreBreakdown{
			StructuralScore: 1.0,
			ContentScore:    0.8,
			SemanticScore:   0.7,
			OverallScore:    overall,
			PassesThreshold: passes,
			Threshold:       0.85,
			Weights:         quality.DefaultWeights(),
		},
	}
}

func TestStore_SaveAssignsIDAndTimestamp(t *testing.T) {
	store := newTestStore(t)

	rec := scoredRecord("q1", 0.9, true)
	require.NoError(t, store.Save(context.Background(), rec))

	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.Timestamp.IsZero())
}

func TestStore_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rec := scoredRecord("How do I mock a database?", 0.864, true)
	rec.Timestamp = time.Date(2026, 8, 30, 12, 0, 0, 123456789, time.UTC)
	require.NoError(t, store.Save(ctx, rec))

	got, err := store.Get(ctx, rec.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, rec.ID, got.ID)
	assert.True(t, got.Timestamp.Equal(rec.Timestamp))
	assert.Equal(t, rec.Question, got.Question)
	assert.Equal(t, rec.Answer, got.Answer)
	assert.Equal(t, 200, got.StatusCode)
	assert.InDelta(t, 0.5, got.ResponseTime, 1e-9)
	assert.True(t, got.Safe)
	assert.Equal(t, "safe", got.SafetyReason)

	require.NotNil(t, got.Scores)
	assert.InDelta(t, 0.864, got.Scores.OverallScore, 1e-9)
	assert.True(t, got.Scores.PassesThreshold)
	assert.Equal(t, quality.DefaultWeights(), got.Scores.Weights)
}

func TestStore_GetMissing(t *testing.T) {
	store := newTestStore(t)

	got, err := store.Get(context.Background(), "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_SaveWithoutScores(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rec := &Record{Question: "q", Answer: "a", StatusCode: 500, ResponseTime: 1.2}
	require.NoError(t, store.Save(ctx, rec))

	got, err := store.Get(ctx, rec.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.Scores)
	assert.False(t, got.Safe)
}

func TestStore_ListNewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	for i := range 3 {
		rec := scoredRecord("q", 0.9, true)
		rec.ID = string(rune('a' + i))
		rec.Timestamp = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, store.Save(ctx, rec))
	}

	records, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "c", records[0].ID)
	assert.Equal(t, "a", records[2].ID)

	limited, err := store.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestStore_Summarize(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	empty, err := store.Summarize(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.TotalResponses)

	require.NoError(t, store.Save(ctx, scoredRecord("q1", 0.9, true)))
	require.NoError(t, store.Save(ctx, scoredRecord("q2", 0.7, false)))
	require.NoError(t, store.Save(ctx, &Record{Question: "q3", Answer: "a", StatusCode: 200}))

	sum, err := store.Summarize(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, sum.TotalResponses)
	assert.Equal(t, 1, sum.Passed)
	// Unscored records do not drag the average down.
	assert.InDelta(t, 0.8, sum.AverageOverall, 1e-9)
	assert.NotEmpty(t, sum.Path)
}

func TestStore_OpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "responses.db")

	first, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, first.Save(context.Background(), scoredRecord("q", 0.9, true)))
	require.NoError(t, first.Close())

	second, err := Open(path)
	require.NoError(t, err)
	defer second.Close()

	records, err := second.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestDefaultDBPath_EnvOverride(t *testing.T) {
	want := filepath.Join(t.TempDir(), "custom", "log.db")
	t.Setenv("QAGATE_DB", want)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.DirExists(t, filepath.Dir(got))
}

func TestDefaultDBPath_XDGDataHome(t *testing.T) {
	t.Setenv("QAGATE_DB", "")
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataHome, "qagate", "responses.db"), got)
}
