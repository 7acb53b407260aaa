package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestWeakPointsSeededOnFirstList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	points, err := s.WeakPoints().List(ctx)
	require.NoError(t, err)
	require.Len(t, points, 8)

	// Weakest first.
	for i := 1; i < len(points); i++ {
		assert.GreaterOrEqual(t, points[i-1].WeaknessLevel, points[i].WeaknessLevel)
	}
	assert.Equal(t, "Algebraic Equations", points[0].Name)
	assert.Equal(t, 85, points[0].WeaknessLevel)

	// A second List must not reseed.
	again, err := s.WeakPoints().List(ctx)
	require.NoError(t, err)
	assert.Len(t, again, 8)
}

func TestWeakPointUpdateInPlace(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.WeakPoints().List(ctx)
	require.NoError(t, err)

	p, err := s.WeakPoints().Get(ctx, "2")
	require.NoError(t, err)
	require.NotNil(t, p)

	p.WeaknessLevel = 44
	p.QuestionsAnswered += 5
	p.CorrectRate = 56
	require.NoError(t, s.WeakPoints().Update(ctx, *p))

	got, err := s.WeakPoints().Get(ctx, "2")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 44, got.WeaknessLevel)
	assert.Equal(t, 23, got.QuestionsAnswered)

	points, err := s.WeakPoints().List(ctx)
	require.NoError(t, err)
	assert.Len(t, points, 8, "update must never add or remove rows")
}

func TestWeakPointUpdateMissing(t *testing.T) {
	s := openTestStore(t)
	err := s.WeakPoints().Update(context.Background(), WeakPoint{ID: "nope"})
	assert.Error(t, err)
}

func TestRecordsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, rec := range []Record{
		{ID: "a", Topic: "Quadratic Functions", Difficulty: "Medium", TotalQuestions: 5, CorrectAnswers: 3, Accuracy: 60, TimeSpentMinutes: 4, Date: "2026-08-30T10:00:00Z"},
		{ID: "b", Topic: "Complex Numbers", Difficulty: "Hard", TotalQuestions: 5, CorrectAnswers: 2, Accuracy: 40, TimeSpentMinutes: 6, Date: "2026-08-31T10:00:00Z",
			Questions: []RecordQuestion{{ID: "q1", Question: "Compute i^2", UserAnswer: "-1", CorrectAnswer: "-1", IsCorrect: true, Explanation: "By definition."}}},
		{ID: "c", Topic: "Probability Theory", Difficulty: "Easy", TotalQuestions: 5, CorrectAnswers: 5, Accuracy: 100, TimeSpentMinutes: 3, Date: "2026-09-01T10:00:00Z"},
	} {
		require.NoError(t, s.Records().Append(ctx, rec))
	}

	records, err := s.Records().List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "c", records[0].ID)
	assert.Equal(t, "b", records[1].ID)
	assert.Equal(t, "a", records[2].ID)

	// Questions survive the JSON round trip.
	require.Len(t, records[1].Questions, 1)
	assert.True(t, records[1].Questions[0].IsCorrect)

	limited, err := s.Records().List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	n, err := s.Records().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestSessionSnapshotRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	type snap struct {
		Topic string `json:"topic"`
		Index int    `json:"index"`
	}

	var out snap
	found, err := s.Sessions().Load(ctx, &out)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Sessions().Save(ctx, snap{Topic: "Integration Techniques", Index: 2}))

	found, err = s.Sessions().Load(ctx, &out)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Integration Techniques", out.Topic)
	assert.Equal(t, 2, out.Index)

	require.NoError(t, s.Sessions().Clear(ctx))
	found, err = s.Sessions().Load(ctx, &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestResetWipesEverything(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.WeakPoints().List(ctx)
	require.NoError(t, err)
	require.NoError(t, s.Records().Append(ctx, Record{
		ID: "a", Topic: "Trigonometric Identities", Difficulty: "Medium",
		TotalQuestions: 5, CorrectAnswers: 4, Accuracy: 80,
		TimeSpentMinutes: 3, Date: "2026-08-30T10:00:00Z",
	}))
	require.NoError(t, s.Sessions().Save(ctx, map[string]int{"index": 1}))

	require.NoError(t, s.Reset(ctx))

	n, err := s.Records().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	var out map[string]int
	found, err := s.Sessions().Load(ctx, &out)
	require.NoError(t, err)
	assert.False(t, found)

	// Weak points reseed on the next List.
	points, err := s.WeakPoints().List(ctx)
	require.NoError(t, err)
	assert.Len(t, points, 8)
}

func TestSessionSnapshotMalformedCleared(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.DB().ExecContext(ctx, `INSERT INTO session_snapshot (id, data) VALUES (1, 'not json')`)
	require.NoError(t, err)

	var out struct{ Topic string }
	found, err := s.Sessions().Load(ctx, &out)
	require.NoError(t, err)
	assert.False(t, found)

	var count int
	require.NoError(t, s.DB().QueryRowContext(ctx, `SELECT COUNT(*) FROM session_snapshot`).Scan(&count))
	assert.Zero(t, count, "malformed snapshot must be cleared")
}
