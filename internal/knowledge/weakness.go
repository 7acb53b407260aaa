package knowledge

import (
	"math"
	"math/rand/v2"
)

// WeaknessEstimate is a simulated proficiency snapshot for a topic.
// Higher WeaknessLevel means weaker; CorrectRate correlates inversely.
type WeaknessEstimate struct {
	WeaknessLevel     int // 0-100
	CorrectRate       int // 0-100
	QuestionsAnswered int
}

// SimulateWeakness derives a weakness estimate from a topic's
// prerequisite count. Prerequisite depth stands in for difficulty until
// real mastery data accumulates; the estimate is seed data, not a
// contract. The rng is injected so callers can make it deterministic.
func SimulateWeakness(prereqCount int, rng *rand.Rand) WeaknessEstimate {
	base := float64(prereqCount)*15 + rng.Float64()*30
	weakness := int(math.Round(base))
	if weakness > 95 {
		weakness = 95
	}

	rate := int(math.Round(float64(100-weakness) + rng.Float64()*20))
	if rate > 95 {
		rate = 95
	}
	if rate < 10 {
		rate = 10
	}

	return WeaknessEstimate{
		WeaknessLevel:     weakness,
		CorrectRate:       rate,
		QuestionsAnswered: 5 + rng.IntN(20),
	}
}
