// Package analytics derives read-only views of the practice history:
// learning curve, time-per-day series, activity heatmap and totals.
package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/rchau/learnloop/internal/store"
)

// HeatmapWindowDays is the trailing window the heatmap covers before
// alignment to whole weeks.
const HeatmapWindowDays = 15

// CurvePoint is one session on the learning curve, ordered by date.
type CurvePoint struct {
	Date      time.Time
	Accuracy  int
	Questions int
}

// TimePoint is total practice minutes on one calendar day.
type TimePoint struct {
	Date    time.Time
	Minutes int
}

// HeatmapDay is one cell of the activity heatmap. Count is total
// questions answered that day; zero marks a rest day.
type HeatmapDay struct {
	Date     time.Time
	Count    int
	Accuracy int
}

// Totals aggregates the whole history.
type Totals struct {
	Sessions        int
	Questions       int
	Correct         int
	Minutes         int
	AverageAccuracy float64
}

// Summary bundles everything the stats views render.
type Summary struct {
	Curve     []CurvePoint
	Time      []TimePoint
	Heatmap   []HeatmapDay
	Totals    Totals
	RangeDays int
}

// Aggregate computes all analytics views in one pass over the records.
// rangeDays bounds the time series (7, 14, 30 or 90 in the UI; any
// positive value works). Records with unparseable dates are skipped.
//
// Records are stored in UTC; every view buckets by calendar day in
// now's zone, so a session lands on the day the user experienced it
// and the heatmap grid (also derived from now) shares the same keys.
func Aggregate(records []store.Record, rangeDays int, now time.Time) Summary {
	var parsed []datedRecord
	for _, rec := range records {
		t, err := time.Parse(time.RFC3339, rec.Date)
		if err != nil {
			continue
		}
		parsed = append(parsed, datedRecord{rec: rec, date: t.In(now.Location())})
	}
	sort.SliceStable(parsed, func(i, j int) bool { return parsed[i].date.Before(parsed[j].date) })

	s := Summary{RangeDays: rangeDays}

	// Learning curve: one point per session, ascending by date.
	for _, d := range parsed {
		s.Curve = append(s.Curve, CurvePoint{
			Date:      d.date,
			Accuracy:  d.rec.Accuracy,
			Questions: d.rec.TotalQuestions,
		})
	}

	// Time series: minutes summed per calendar day, trailing rangeDays
	// entries only.
	byDay := make(map[time.Time]int)
	for _, d := range parsed {
		day := truncateToDay(d.date)
		byDay[day] += d.rec.TimeSpentMinutes
	}
	days := make([]time.Time, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	if rangeDays > 0 && len(days) > rangeDays {
		days = days[len(days)-rangeDays:]
	}
	for _, day := range days {
		s.Time = append(s.Time, TimePoint{Date: day, Minutes: byDay[day]})
	}

	// Heatmap over the trailing window, padded to whole weeks.
	s.Heatmap = heatmap(parsed, now)

	// Totals.
	for _, d := range parsed {
		s.Totals.Sessions++
		s.Totals.Questions += d.rec.TotalQuestions
		s.Totals.Correct += d.rec.CorrectAnswers
		s.Totals.Minutes += d.rec.TimeSpentMinutes
	}
	if s.Totals.Questions > 0 {
		s.Totals.AverageAccuracy = 100 * float64(s.Totals.Correct) / float64(s.Totals.Questions)
	}

	return s
}

type datedRecord struct {
	rec  store.Record
	date time.Time
}

func heatmap(parsed []datedRecord, now time.Time) []HeatmapDay {
	today := truncateToDay(now)
	start := today.AddDate(0, 0, -(HeatmapWindowDays - 1))

	// Pull the start back to Monday and push the end out to Sunday so
	// the grid renders whole weeks.
	start = start.AddDate(0, 0, -daysSinceMonday(start))
	end := today.AddDate(0, 0, daysUntilSunday(today))

	questions := make(map[time.Time]int)
	correct := make(map[time.Time]int)
	for _, d := range parsed {
		day := truncateToDay(d.date)
		questions[day] += d.rec.TotalQuestions
		correct[day] += d.rec.CorrectAnswers
	}

	var cells []HeatmapDay
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		cell := HeatmapDay{Date: day, Count: questions[day]}
		if cell.Count > 0 {
			cell.Accuracy = int(math.Round(100 * float64(correct[day]) / float64(cell.Count)))
		}
		cells = append(cells, cell)
	}
	return cells
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func daysSinceMonday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 6 // Sunday
	}
	return wd - 1
}

func daysUntilSunday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 0
	}
	return 7 - wd
}
