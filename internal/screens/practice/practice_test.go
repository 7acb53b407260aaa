package practice

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	engine "github.com/rchau/learnloop/internal/practice"
	"github.com/rchau/learnloop/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func loadedScreen(t *testing.T, st *store.Store) *PracticeScreen {
	t.Helper()
	s := New(st)
	msg := s.Init()()
	updated, _ := s.Update(msg)
	return updated.(*PracticeScreen)
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestSelectionStartsGeneration(t *testing.T) {
	st := openTestStore(t)
	s := loadedScreen(t, st)

	require.Equal(t, phaseSelection, s.phase)
	require.NotEmpty(t, s.points)

	updated, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*PracticeScreen)

	assert.Equal(t, phaseGenerating, s.phase)
	assert.NotNil(t, cmd)
}

func TestGenerationPipelineReachesQuestions(t *testing.T) {
	st := openTestStore(t)
	s := loadedScreen(t, st)

	updated, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*PracticeScreen)

	for step := 1; step <= len(genSteps); step++ {
		updated, _ = s.Update(genTickMsg{Step: step})
		s = updated.(*PracticeScreen)
	}

	require.Equal(t, phaseQuestion, s.phase)
	require.NotNil(t, s.eng)
	_, total := s.eng.Progress()
	assert.Equal(t, 5, total)
}

func TestStaleGenTickIgnored(t *testing.T) {
	st := openTestStore(t)
	s := loadedScreen(t, st)

	updated, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*PracticeScreen)

	updated, _ = s.Update(genTickMsg{Step: 3})
	s = updated.(*PracticeScreen)

	assert.Equal(t, phaseGenerating, s.phase)
	assert.Equal(t, 0, s.genIndex)
}

func TestFullSessionPersistsAndFolds(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	before, err := st.WeakPoints().List(ctx)
	require.NoError(t, err)

	s := loadedScreen(t, st)
	updated, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*PracticeScreen)
	for step := 1; step <= len(genSteps); step++ {
		updated, _ = s.Update(genTickMsg{Step: step})
		s = updated.(*PracticeScreen)
	}
	require.Equal(t, phaseQuestion, s.phase)
	pointID := s.eng.Point().ID

	// Answer every question with option 1, dismissing feedback each time.
	for i := 0; i < 5; i++ {
		updated, _ = s.Update(keyPress('1'))
		s = updated.(*PracticeScreen)
		require.True(t, s.showingFeedback, "question %d", i)

		updated, cmd := s.Update(keyPress(' '))
		s = updated.(*PracticeScreen)

		if i == 4 {
			require.NotNil(t, cmd)
			updated, _ = s.Update(cmd())
			s = updated.(*PracticeScreen)
		}
	}

	require.Equal(t, phaseAnalysis, s.phase)
	assert.Equal(t, 5, s.record.TotalQuestions)

	recs, err := st.Records().List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, s.record.Accuracy, recs[0].Accuracy)

	// Weak point updated with folded results.
	after, err := st.WeakPoints().Get(ctx, pointID)
	require.NoError(t, err)
	var orig store.WeakPoint
	for _, p := range before {
		if p.ID == pointID {
			orig = p
		}
	}
	assert.Equal(t, orig.QuestionsAnswered+5, after.QuestionsAnswered)

	// Resume snapshot cleared.
	var snap engine.Snapshot
	ok, err := st.Sessions().Load(ctx, &snap)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSnapshotResumesMidSession(t *testing.T) {
	st := openTestStore(t)

	s := loadedScreen(t, st)
	updated, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*PracticeScreen)
	for step := 1; step <= len(genSteps); step++ {
		updated, _ = s.Update(genTickMsg{Step: step})
		s = updated.(*PracticeScreen)
	}

	// Answer two questions, persisting the snapshot each time.
	for i := 0; i < 2; i++ {
		updated, cmd := s.Update(keyPress('1'))
		s = updated.(*PracticeScreen)
		require.NotNil(t, cmd)
		_ = cmd() // run the snapshot save
		updated, _ = s.Update(keyPress(' '))
		s = updated.(*PracticeScreen)
	}

	// A fresh screen resumes at question 3.
	resumed := loadedScreen(t, st)
	require.Equal(t, phaseQuestion, resumed.phase)
	require.NotNil(t, resumed.eng)
	current, _ := resumed.eng.Progress()
	assert.Equal(t, 3, current)
}

func TestEmptyAnswerDoesNotAdvance(t *testing.T) {
	st := openTestStore(t)
	s := loadedScreen(t, st)
	updated, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*PracticeScreen)
	for step := 1; step <= len(genSteps); step++ {
		updated, _ = s.Update(genTickMsg{Step: step})
		s = updated.(*PracticeScreen)
	}

	// Force the short-answer path by clearing the option list.
	q, ok := s.eng.Current()
	require.True(t, ok)
	if q.Type == engine.MultipleChoice {
		// Curated sets are multiple choice; an empty submission is
		// impossible there, so exercise the engine rule directly.
		_, accepted := s.eng.Submit("")
		assert.False(t, accepted)
		current, _ := s.eng.Progress()
		assert.Equal(t, 1, current, "rejected answer must not advance")
	}
}
