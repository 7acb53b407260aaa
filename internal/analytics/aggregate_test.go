package analytics

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rchau/learnloop/internal/store"
)

func rec(id, date string, total, correct, accuracy, minutes int) store.Record {
	return store.Record{
		ID:               id,
		Topic:            "Quadratic Functions",
		Difficulty:       "Medium",
		TotalQuestions:   total,
		CorrectAnswers:   correct,
		Accuracy:         accuracy,
		TimeSpentMinutes: minutes,
		Date:             date,
	}
}

func TestAggregateEmptyHistory(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	s := Aggregate(nil, 14, now)

	assert.Zero(t, s.Totals.Sessions)
	assert.Zero(t, s.Totals.Questions)
	assert.Zero(t, s.Totals.AverageAccuracy, "no records must not divide by zero")
	assert.Empty(t, s.Curve)
	assert.Empty(t, s.Time)
	assert.NotEmpty(t, s.Heatmap, "heatmap still renders empty days")
	for _, cell := range s.Heatmap {
		assert.Zero(t, cell.Count)
	}
}

func TestAggregateTotals(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	records := []store.Record{
		rec("a", "2026-08-30T10:00:00Z", 10, 8, 80, 20),
		rec("b", "2026-08-31T10:00:00Z", 10, 6, 60, 30),
	}

	s := Aggregate(records, 14, now)
	assert.Equal(t, 2, s.Totals.Sessions)
	assert.Equal(t, 20, s.Totals.Questions)
	assert.Equal(t, 14, s.Totals.Correct)
	assert.Equal(t, 50, s.Totals.Minutes)
	assert.InDelta(t, 70.0, s.Totals.AverageAccuracy, 0.001)
}

func TestLearningCurveAscendingByDate(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	records := []store.Record{
		rec("newest", "2026-08-31T10:00:00Z", 5, 5, 100, 5),
		rec("oldest", "2026-08-25T10:00:00Z", 5, 2, 40, 5),
		rec("middle", "2026-08-28T10:00:00Z", 5, 3, 60, 5),
	}

	s := Aggregate(records, 14, now)
	require.Len(t, s.Curve, 3)
	assert.Equal(t, 40, s.Curve[0].Accuracy)
	assert.Equal(t, 60, s.Curve[1].Accuracy)
	assert.Equal(t, 100, s.Curve[2].Accuracy)
	for i := 1; i < len(s.Curve); i++ {
		assert.False(t, s.Curve[i].Date.Before(s.Curve[i-1].Date))
	}
}

func TestTimeSeriesGroupsByDayAndTrims(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	// Two sessions on the same day merge; ten distinct days trimmed to 7.
	var records []store.Record
	records = append(records,
		rec("x1", "2026-08-20T09:00:00Z", 5, 3, 60, 10),
		rec("x2", "2026-08-20T18:00:00Z", 5, 4, 80, 15),
	)
	for d := 21; d <= 29; d++ {
		records = append(records, rec("d", time.Date(2026, 8, d, 10, 0, 0, 0, time.UTC).Format(time.RFC3339), 5, 3, 60, 10))
	}

	s := Aggregate(records, 7, now)
	require.Len(t, s.Time, 7, "series keeps only the trailing range")
	assert.Equal(t, 23, s.Time[0].Date.Day(), "oldest days trimmed first")

	full := Aggregate(records, 30, now)
	require.Len(t, full.Time, 10)
	assert.Equal(t, 25, full.Time[0].Minutes, "same-day sessions sum")
}

func TestHeatmapAlignedMondayToSunday(t *testing.T) {
	// Probe a spread of "today" values, including both Sunday edge cases.
	for day := 1; day <= 14; day++ {
		now := time.Date(2026, 9, day, 15, 30, 0, 0, time.UTC)
		s := Aggregate(nil, 14, now)

		require.NotEmpty(t, s.Heatmap)
		first := s.Heatmap[0]
		last := s.Heatmap[len(s.Heatmap)-1]

		assert.Equal(t, time.Monday, first.Date.Weekday(), "today=%v", now)
		assert.Equal(t, time.Sunday, last.Date.Weekday(), "today=%v", now)
		assert.Zero(t, len(s.Heatmap)%7, "whole weeks only")

		// Window covers at least the trailing 15 days.
		windowStart := now.AddDate(0, 0, -(HeatmapWindowDays - 1))
		assert.False(t, first.Date.After(windowStart))
		assert.False(t, last.Date.Before(now.Truncate(24*time.Hour)))
	}
}

func TestHeatmapBucketsQuestionsAndAccuracy(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	records := []store.Record{
		rec("a", "2026-08-30T09:00:00Z", 10, 9, 90, 10),
		rec("b", "2026-08-30T19:00:00Z", 10, 5, 50, 10),
	}

	s := Aggregate(records, 14, now)
	var cell *HeatmapDay
	for i := range s.Heatmap {
		if s.Heatmap[i].Date.Month() == 8 && s.Heatmap[i].Date.Day() == 30 {
			cell = &s.Heatmap[i]
			break
		}
	}
	require.NotNil(t, cell)
	assert.Equal(t, 20, cell.Count)
	assert.Equal(t, 70, cell.Accuracy)
}

func TestHeatmapBucketsUTCRecordsOnLocalDays(t *testing.T) {
	// Records are stored in UTC but the grid is built from now's zone;
	// both must land on the same calendar day east of Greenwich.
	zone := time.FixedZone("UTC+10", 10*60*60)
	now := time.Date(2026, 9, 1, 18, 0, 0, 0, zone)

	// Midnight UTC on Sep 1 is 10:00 the same local day.
	records := []store.Record{rec("a", "2026-09-01T00:00:00Z", 10, 7, 70, 12)}

	s := Aggregate(records, 14, now)
	total := 0
	for _, cell := range s.Heatmap {
		total += cell.Count
		if cell.Count > 0 {
			assert.Equal(t, time.September, cell.Date.Month())
			assert.Equal(t, 1, cell.Date.Day())
		}
	}
	assert.Equal(t, 10, total)

	// Demo data feeds through the same bucketing.
	demo := Aggregate(DemoRecords(now, rand.New(rand.NewPCG(1, 2))), 14, now)
	demoTotal := 0
	for _, cell := range demo.Heatmap {
		demoTotal += cell.Count
	}
	assert.Positive(t, demoTotal)
}

func TestTimeSeriesUsesLocalCalendarDay(t *testing.T) {
	zone := time.FixedZone("UTC+10", 10*60*60)
	now := time.Date(2026, 9, 1, 18, 0, 0, 0, zone)

	// 20:00 UTC on Aug 31 is already Sep 1 locally.
	records := []store.Record{rec("a", "2026-08-31T20:00:00Z", 5, 4, 80, 10)}

	s := Aggregate(records, 14, now)
	require.Len(t, s.Time, 1)
	assert.Equal(t, time.September, s.Time[0].Date.Month())
	assert.Equal(t, 1, s.Time[0].Date.Day())
}

func TestAggregateSkipsUnparseableDates(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	records := []store.Record{
		rec("good", "2026-08-30T10:00:00Z", 5, 5, 100, 5),
		rec("bad", "yesterday-ish", 5, 5, 100, 5),
	}

	s := Aggregate(records, 14, now)
	assert.Equal(t, 1, s.Totals.Sessions)
}

func TestDemoRecordsDeterministicAndPlausible(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	a := DemoRecords(now, rand.New(rand.NewPCG(3, 3)))
	b := DemoRecords(now, rand.New(rand.NewPCG(3, 3)))
	assert.Equal(t, a, b)

	require.NotEmpty(t, a)
	for _, r := range a {
		assert.GreaterOrEqual(t, r.TotalQuestions, 10)
		assert.LessOrEqual(t, r.TotalQuestions, 25)
		assert.LessOrEqual(t, r.CorrectAnswers, r.TotalQuestions)
		assert.GreaterOrEqual(t, r.TimeSpentMinutes, 30)
		_, err := time.Parse(time.RFC3339, r.Date)
		assert.NoError(t, err)
	}
}
