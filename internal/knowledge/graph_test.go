package knowledge

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rchau/learnloop/internal/corpus"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func testRecords(t *testing.T) []corpus.Record {
	t.Helper()
	records, err := corpus.Load()
	require.NoError(t, err)
	require.NotEmpty(t, records)
	return records
}

func TestValidateTable(t *testing.T) {
	require.NoError(t, ValidateTable())
}

func TestGenerateEmptyCorpus(t *testing.T) {
	g := Generate(nil, testRNG())
	assert.Empty(t, g.Nodes)
	assert.Empty(t, g.Links)
}

func TestGenerateNodeSetMatchesTopics(t *testing.T) {
	records := testRecords(t)
	g := Generate(records, testRNG())

	topics := corpus.Topics(records)
	require.Len(t, g.Nodes, len(topics))
	for i, topic := range topics {
		assert.Equal(t, topic, g.Nodes[i].ID)
	}

	seen := make(map[string]bool)
	for _, n := range g.Nodes {
		assert.False(t, seen[n.ID], "duplicate node %q", n.ID)
		seen[n.ID] = true
	}
}

func TestGenerateWeaknessBounds(t *testing.T) {
	g := Generate(testRecords(t), testRNG())
	for _, n := range g.Nodes {
		assert.GreaterOrEqual(t, n.WeaknessLevel, 0, "node %q", n.ID)
		assert.LessOrEqual(t, n.WeaknessLevel, 95, "node %q", n.ID)
		assert.GreaterOrEqual(t, n.CorrectRate, 10, "node %q", n.ID)
		assert.LessOrEqual(t, n.CorrectRate, 95, "node %q", n.ID)
		assert.GreaterOrEqual(t, n.QuestionsAnswered, 5, "node %q", n.ID)
		assert.Less(t, n.QuestionsAnswered, 25, "node %q", n.ID)
	}
}

func TestGenerateFollowupsInversePrerequisites(t *testing.T) {
	g := Generate(testRecords(t), testRNG())

	byID := make(map[string]Node, len(g.Nodes))
	for _, n := range g.Nodes {
		byID[n.ID] = n
	}

	for _, n := range g.Nodes {
		for _, prereq := range n.Prerequisites {
			p, ok := byID[prereq]
			if !ok {
				continue // prerequisite outside the corpus
			}
			assert.Contains(t, p.Followups, n.ID,
				"%q should list %q as a followup", prereq, n.ID)
		}
		for _, followup := range n.Followups {
			f, ok := byID[followup]
			require.True(t, ok, "followup %q of %q missing from graph", followup, n.ID)
			assert.Contains(t, f.Prerequisites, n.ID,
				"%q should list %q as a prerequisite", followup, n.ID)
		}
	}
}

func TestGenerateNoDuplicateLinkPairs(t *testing.T) {
	g := Generate(testRecords(t), testRNG())

	seen := make(map[[2]string]bool)
	for _, l := range g.Links {
		key := [2]string{l.SourceID, l.TargetID}
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		assert.False(t, seen[key], "duplicate link pair %v", key)
		seen[key] = true
		assert.NotEqual(t, l.SourceID, l.TargetID, "self link on %q", l.SourceID)
	}
}

func TestGenerateLinkEndpointsExist(t *testing.T) {
	g := Generate(testRecords(t), testRNG())

	ids := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		ids[n.ID] = true
	}
	for _, l := range g.Links {
		assert.True(t, ids[l.SourceID], "dangling source %q", l.SourceID)
		assert.True(t, ids[l.TargetID], "dangling target %q", l.TargetID)
	}
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	records := testRecords(t)
	g1 := Generate(records, rand.New(rand.NewPCG(7, 7)))
	g2 := Generate(records, rand.New(rand.NewPCG(7, 7)))
	assert.Equal(t, g1, g2)
}

func TestWeakestNodes(t *testing.T) {
	g := Generate(testRecords(t), testRNG())

	weakest := g.WeakestNodes(5)
	require.Len(t, weakest, 5)
	for i := 1; i < len(weakest); i++ {
		assert.GreaterOrEqual(t, weakest[i-1].WeaknessLevel, weakest[i].WeaknessLevel)
	}

	all := g.WeakestNodes(0)
	assert.Len(t, all, len(g.Nodes))
}

func TestRelated(t *testing.T) {
	g := Generate(testRecords(t), testRNG())

	prereqs, _, current := g.Related("quadratic function")
	require.NotNil(t, current)
	assert.Equal(t, "quadratic function", current.ID)

	prereqIDs := make([]string, 0, len(prereqs))
	for _, p := range prereqs {
		prereqIDs = append(prereqIDs, p.ID)
	}
	assert.Contains(t, prereqIDs, "linear functions")
	assert.Contains(t, prereqIDs, "exponents")

	_, _, missing := g.Related("no such topic")
	assert.Nil(t, missing)
}

func TestSimulateWeaknessScalesWithPrerequisites(t *testing.T) {
	// With zero random noise the floor is prereqCount*15; sample enough
	// draws to confirm the floor and ceiling hold.
	rng := testRNG()
	for i := 0; i < 200; i++ {
		est := SimulateWeakness(3, rng)
		assert.GreaterOrEqual(t, est.WeaknessLevel, 45)
		assert.LessOrEqual(t, est.WeaknessLevel, 75)
	}
	for i := 0; i < 200; i++ {
		est := SimulateWeakness(10, rng)
		assert.Equal(t, 95, est.WeaknessLevel, "weakness must cap at 95")
	}
}
