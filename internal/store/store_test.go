package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizkit/internal/scoring"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func sampleAttempt(id string, completed time.Time) *Attempt {
	return &Attempt{
		ID:             id,
		StageID:        "newborn-0-6",
		TotalCorrect:   3,
		TotalQuestions: 4,
		Percentage:     75,
		TierName:       "Solid",
		TierEmoji:      "🌟",
		Categories: []scoring.CategoryScore{
			{ID: "sleep", Name: "Sleep", Icon: "😴", Correct: 2, Total: 2},
			{ID: "feeding", Name: "Feeding", Icon: "🍼", Correct: 1, Total: 2},
		},
		CompletedAt: completed,
	}
}

func TestAttemptRoundtrip(t *testing.T) {
	st := openTestStore(t)
	repo := st.Attempts()
	ctx := context.Background()

	now := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, sampleAttempt("a1", now)))

	got, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)

	a := got[0]
	assert.Equal(t, "a1", a.ID)
	assert.Equal(t, "newborn-0-6", a.StageID)
	assert.Equal(t, 3, a.TotalCorrect)
	assert.Equal(t, 4, a.TotalQuestions)
	assert.Equal(t, 75, a.Percentage)
	assert.Equal(t, "Solid", a.TierName)
	assert.Equal(t, "🌟", a.TierEmoji)
	require.Len(t, a.Categories, 2)
	assert.Equal(t, "sleep", a.Categories[0].ID)
	assert.Equal(t, 2, a.Categories[0].Correct)
	assert.True(t, a.CompletedAt.Equal(now))
}

func TestRecent_NewestFirstAndLimited(t *testing.T) {
	st := openTestStore(t)
	repo := st.Attempts()
	ctx := context.Background()

	base := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"a1", "a2", "a3"} {
		require.NoError(t, repo.Save(ctx, sampleAttempt(id, base.Add(time.Duration(i)*time.Hour))))
	}

	got, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a3", got[0].ID)
	assert.Equal(t, "a2", got[1].ID)
}

func TestRecent_Empty(t *testing.T) {
	st := openTestStore(t)
	got, err := st.Attempts().Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOpen_CreatesSchemaIdempotently(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reopen.db")

	first, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, first.Attempts().Save(context.Background(), sampleAttempt("a1", time.Now().UTC())))
	require.NoError(t, first.Close())

	second, err := Open(path)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.Attempts().Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestDefaultDBPath_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom", "quiz.db")
	t.Setenv("QUIZKIT_DB", path)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, path, got)
	assert.DirExists(t, filepath.Dir(path))
}

func TestDefaultDBPath_XDG(t *testing.T) {
	t.Setenv("QUIZKIT_DB", "")
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataHome, "quizkit", "quizkit.db"), got)
}
