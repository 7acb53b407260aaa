package practice

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	engine "github.com/rchau/learnloop/internal/practice"
	"github.com/rchau/learnloop/internal/router"
	"github.com/rchau/learnloop/internal/screen"
	"github.com/rchau/learnloop/internal/store"
	"github.com/rchau/learnloop/internal/ui/components"
	"github.com/rchau/learnloop/internal/ui/layout"
)

type phase int

const (
	phaseSelection phase = iota
	phaseGenerating
	phaseQuestion
	phaseAnalysis
)

// genStep is one stage of the simulated question-generation pipeline.
type genStep struct {
	label    string
	duration time.Duration
	progress float64
}

var genSteps = []genStep{
	{"Analyzing weak points...", 1200 * time.Millisecond, 0.33},
	{"Identifying question types...", 1000 * time.Millisecond, 0.66},
	{"Generating questions...", 1200 * time.Millisecond, 1.0},
	{"Ready!", 500 * time.Millisecond, 1.0},
}

// PracticeScreen drives one practice session: pick a weak point, wait
// for the generation pipeline, answer questions, review the results.
type PracticeScreen struct {
	st *store.Store

	phase  phase
	errMsg string
	loaded bool

	// selection
	points   []store.WeakPoint
	selected int

	// generating
	genIndex int

	// question loop
	eng             *engine.Engine
	mcSelected      int
	input           components.TextInput
	showingFeedback bool
	lastAnswer      engine.UserAnswer
	lastQuestion    engine.Question

	// analysis
	record store.Record
	folded store.WeakPoint
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates the practice screen. An unfinished session left in the
// store is resumed instead of starting from topic selection.
func New(st *store.Store) *PracticeScreen {
	return &PracticeScreen{
		st:    st,
		input: components.NewTextInput("Type your answer...", false, 40),
	}
}

func (s *PracticeScreen) Init() tea.Cmd {
	return s.load()
}

func (s *PracticeScreen) Title() string {
	return "Practice"
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseSelection:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	case phaseQuestion:
		if s.showingFeedback {
			return []layout.KeyHint{
				{Key: "any key", Description: "Continue"},
			}
		}
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Pause & back"},
		}
	case phaseAnalysis:
		return []layout.KeyHint{
			{Key: "R", Description: "Practice again"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return nil
}

// load fetches the weak points and any resumable session snapshot.
func (s *PracticeScreen) load() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		points, err := s.st.WeakPoints().List(ctx)
		if err != nil {
			return loadedMsg{Err: err}
		}

		var snap engine.Snapshot
		if ok, err := s.st.Sessions().Load(ctx, &snap); err == nil && ok {
			return loadedMsg{Points: points, Resume: &snap}
		}

		return loadedMsg{Points: points}
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		return s.handleLoaded(msg)

	case genTickMsg:
		return s.handleGenTick(msg)

	case snapshotSavedMsg:
		// Best effort; nothing to do either way.
		return s, nil

	case finishedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.record = msg.Record
		s.folded = msg.Point
		s.phase = phaseAnalysis
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseQuestion && !s.showingFeedback && !s.currentIsMultipleChoice() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *PracticeScreen) handleLoaded(msg loadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.points = msg.Points
	s.loaded = true

	if msg.Resume != nil {
		for _, p := range s.points {
			if p.ID == msg.Resume.PointID {
				s.eng = engine.Resume(p, engine.QuestionsFor(p), *msg.Resume)
				s.phase = phaseQuestion
				s.resetAnswerInput()
				return s, s.input.Init()
			}
		}
		// Snapshot points at a topic that no longer exists; drop it.
		return s, s.clearSnapshot()
	}

	return s, nil
}

func (s *PracticeScreen) handleGenTick(msg genTickMsg) (screen.Screen, tea.Cmd) {
	if s.phase != phaseGenerating || msg.Step != s.genIndex+1 {
		return s, nil
	}
	s.genIndex = msg.Step

	if s.genIndex < len(genSteps) {
		return s, genTick(s.genIndex)
	}

	// Pipeline done; start the question loop.
	point := s.points[s.selected]
	s.eng = engine.New(point, engine.QuestionsFor(point))
	s.phase = phaseQuestion
	s.resetAnswerInput()
	return s, tea.Batch(s.saveSnapshot(), s.input.Init())
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch s.phase {
	case phaseSelection:
		switch key {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.points)-1 {
				s.selected++
			}
		case "enter":
			if len(s.points) == 0 {
				return s, nil
			}
			s.phase = phaseGenerating
			s.genIndex = 0
			return s, genTick(0)
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil

	case phaseGenerating:
		// No interaction while the pipeline runs.
		return s, nil

	case phaseQuestion:
		if s.showingFeedback {
			s.showingFeedback = false
			if s.eng.State() == engine.StateAnalysis {
				return s, s.finishSession()
			}
			s.resetAnswerInput()
			return s, s.input.Init()
		}

		switch key {
		case "esc":
			// Progress is already snapshotted after each answer.
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			return s.submitAnswer()
		}

		if s.currentIsMultipleChoice() {
			q, _ := s.eng.Current()
			switch key {
			case "1", "2", "3", "4":
				idx := int(key[0] - '1')
				if idx < len(q.Options) {
					s.mcSelected = idx
					return s.submitAnswer()
				}
			case "up", "k":
				if s.mcSelected > 0 {
					s.mcSelected--
				}
			case "down", "j":
				if s.mcSelected < len(q.Options)-1 {
					s.mcSelected++
				}
			}
			return s, nil
		}

		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case phaseAnalysis:
		switch key {
		case "r", "R":
			// Back to topic selection for another round.
			return s, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: New(s.st)}
			}
		case "esc", "enter":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	return s, nil
}

// submitAnswer grades the current answer and shows feedback.
func (s *PracticeScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	q, ok := s.eng.Current()
	if !ok {
		return s, nil
	}

	var answer string
	if q.Type == engine.MultipleChoice {
		if s.mcSelected >= 0 && s.mcSelected < len(q.Options) {
			answer = q.Options[s.mcSelected]
		}
	} else {
		answer = s.input.Value()
	}

	graded, accepted := s.eng.Submit(answer)
	if !accepted {
		return s, nil
	}

	s.lastAnswer = graded
	s.lastQuestion = q
	s.showingFeedback = true

	if s.eng.State() == engine.StateAnalysis {
		return s, nil
	}
	return s, s.saveSnapshot()
}

// finishSession persists the record, folds the results into the weak
// point and clears the resume snapshot.
func (s *PracticeScreen) finishSession() tea.Cmd {
	eng := s.eng
	return func() tea.Msg {
		ctx := context.Background()

		rec, err := eng.Record()
		if err != nil {
			return finishedMsg{Err: err}
		}
		if err := s.st.Records().Append(ctx, rec); err != nil {
			return finishedMsg{Err: fmt.Errorf("save record: %w", err)}
		}

		folded := engine.FoldResults(eng.Point(), rec.CorrectAnswers, rec.TotalQuestions)
		if err := s.st.WeakPoints().Update(ctx, folded); err != nil {
			return finishedMsg{Err: fmt.Errorf("update weak point: %w", err)}
		}

		_ = s.st.Sessions().Clear(ctx)

		return finishedMsg{Record: rec, Point: folded}
	}
}

// saveSnapshot persists the in-flight session for resume.
func (s *PracticeScreen) saveSnapshot() tea.Cmd {
	snap := s.eng.Snapshot()
	return func() tea.Msg {
		return snapshotSavedMsg{Err: s.st.Sessions().Save(context.Background(), snap)}
	}
}

func (s *PracticeScreen) clearSnapshot() tea.Cmd {
	return func() tea.Msg {
		return snapshotSavedMsg{Err: s.st.Sessions().Clear(context.Background())}
	}
}

func (s *PracticeScreen) resetAnswerInput() {
	s.mcSelected = 0
	s.input = components.NewTextInput("Type your answer...", false, 40)
}

func (s *PracticeScreen) currentIsMultipleChoice() bool {
	if s.eng == nil {
		return false
	}
	q, ok := s.eng.Current()
	return ok && q.Type == engine.MultipleChoice
}

// genTick schedules the transition out of generation step i.
func genTick(i int) tea.Cmd {
	return tea.Tick(genSteps[i].duration, func(time.Time) tea.Msg {
		return genTickMsg{Step: i + 1}
	})
}
