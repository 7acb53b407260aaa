package analytics

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/rchau/learnloop/internal/practice"
	"github.com/rchau/learnloop/internal/store"
)

var demoTopics = []string{
	"Algebraic Equations",
	"Quadratic Functions",
	"Trigonometric Identities",
	"Calculus Derivatives",
	"Integration Techniques",
	"Probability Theory",
}

// DemoRecords fabricates a dense 15-day practice history so the stats
// views have something to show before real records exist. Accuracy
// trends upward over the window to look like genuine improvement. The
// rng is injected so tests stay deterministic.
func DemoRecords(now time.Time, rng *rand.Rand) []store.Record {
	var records []store.Record
	start := truncateToDay(now).AddDate(0, 0, -(HeatmapWindowDays - 1))

	for i := 0; i < HeatmapWindowDays; i++ {
		day := start.AddDate(0, 0, i)
		skip := rng.Float64()

		switch day.Weekday() {
		case time.Saturday, time.Sunday:
			if skip > 0.9 {
				continue
			}
		default:
			if skip > 0.98 {
				continue
			}
		}

		progress := float64(i) / float64(HeatmapWindowDays)
		baseAccuracy := 60 + progress*20
		variance := (rng.Float64() - 0.5) * 12

		sessions := 1
		if rng.Float64() > 0.6 {
			sessions = 2
		}

		for s := 0; s < sessions; s++ {
			total := 10 + rng.IntN(16)
			target := math.Min(95, math.Max(50, baseAccuracy+variance))
			correct := int(math.Round(float64(total) * target / 100))

			minutes := int(50 - progress*8 + (rng.Float64()-0.5)*40)
			if minutes < 30 {
				minutes = 30
			}

			topic := demoTopics[rng.IntN(len(demoTopics))]
			records = append(records, store.Record{
				ID:               fmt.Sprintf("demo-%d-%d", i, s),
				Topic:            topic,
				Difficulty:       "Medium",
				TotalQuestions:   total,
				CorrectAnswers:   correct,
				Accuracy:         practice.Accuracy(correct, total),
				TimeSpentMinutes: minutes,
				Date:             day.Add(time.Duration(9+s*5) * time.Hour).UTC().Format(time.RFC3339),
			})
		}
	}
	return records
}
