package practice

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/rchau/learnloop/internal/store"
)

// State is the practice flow phase. A session starts answering
// immediately; Selection exists so screens can round-trip the full flow
// through one type.
type State string

const (
	StateSelection State = "selection"
	StatePractice  State = "practice"
	StateAnalysis  State = "analysis"
)

// Engine drives one practice session: it serves questions in order,
// grades submitted answers, and produces the final record. It is not
// safe for concurrent use.
type Engine struct {
	point     store.WeakPoint
	questions []Question
	index     int
	answers   []UserAnswer
	state     State

	startedAt       time.Time
	questionStarted time.Time
	now             func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the engine's time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New starts a session for the given weak point and question set.
func New(point store.WeakPoint, questions []Question, opts ...Option) *Engine {
	e := &Engine{
		point:     point,
		questions: questions,
		state:     StatePractice,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.startedAt = e.now()
	e.questionStarted = e.startedAt
	return e
}

// State returns the current flow phase.
func (e *Engine) State() State { return e.state }

// Point returns the weak point this session targets.
func (e *Engine) Point() store.WeakPoint { return e.point }

// Current returns the question awaiting an answer. ok is false once the
// session has moved to analysis.
func (e *Engine) Current() (q Question, ok bool) {
	if e.state != StatePractice || e.index >= len(e.questions) {
		return Question{}, false
	}
	return e.questions[e.index], true
}

// Progress reports the 1-based position of the current question and the
// session length.
func (e *Engine) Progress() (current, total int) {
	pos := e.index + 1
	if pos > len(e.questions) {
		pos = len(e.questions)
	}
	return pos, len(e.questions)
}

// Answers returns the graded answers so far.
func (e *Engine) Answers() []UserAnswer { return e.answers }

// CorrectCount returns how many answers were correct so far.
func (e *Engine) CorrectCount() int {
	n := 0
	for _, a := range e.answers {
		if a.IsCorrect {
			n++
		}
	}
	return n
}

// Submit grades an answer against the current question. An empty answer
// is rejected without advancing. Grading is exact string equality. The
// final submission moves the session to analysis.
func (e *Engine) Submit(answer string) (graded UserAnswer, accepted bool) {
	if answer == "" || e.state != StatePractice {
		return UserAnswer{}, false
	}
	q := e.questions[e.index]
	now := e.now()

	graded = UserAnswer{
		QuestionID:    q.ID,
		Answer:        answer,
		IsCorrect:     answer == q.CorrectAnswer,
		TimeSpentSecs: int(now.Sub(e.questionStarted) / time.Second),
	}
	e.answers = append(e.answers, graded)

	if e.index < len(e.questions)-1 {
		e.index++
		e.questionStarted = now
	} else {
		e.state = StateAnalysis
	}
	return graded, true
}

// Record builds the practice record for a finished session. Elapsed
// time is rounded to whole minutes with a floor of one minute.
func (e *Engine) Record() (store.Record, error) {
	if e.state != StateAnalysis {
		return store.Record{}, fmt.Errorf("session still in progress")
	}

	total := len(e.questions)
	correct := e.CorrectCount()

	minutes := int(math.Round(e.now().Sub(e.startedAt).Minutes()))
	if minutes < 1 {
		minutes = 1
	}

	rec := store.Record{
		ID:               uuid.NewString(),
		Topic:            e.point.Name,
		Difficulty:       DifficultyFor(e.point.WeaknessLevel),
		TotalQuestions:   total,
		CorrectAnswers:   correct,
		Accuracy:         Accuracy(correct, total),
		TimeSpentMinutes: minutes,
		Date:             e.now().UTC().Format(time.RFC3339),
	}
	for i, q := range e.questions {
		rec.Questions = append(rec.Questions, store.RecordQuestion{
			ID:            q.ID,
			Question:      q.Prompt,
			UserAnswer:    e.answers[i].Answer,
			CorrectAnswer: q.CorrectAnswer,
			IsCorrect:     e.answers[i].IsCorrect,
			Explanation:   q.Explanation,
		})
	}
	return rec, nil
}

// Accuracy is the session score as a rounded percentage. Zero questions
// yield zero rather than a division error.
func Accuracy(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}

// FoldResults folds a finished session into a weak point's cumulative
// stats. The new correct rate is the running average over all questions
// ever answered; weakness is its complement, floored at zero. Stats
// accumulate across sessions and are never reset.
func FoldResults(p store.WeakPoint, correct, total int) store.WeakPoint {
	answered := p.QuestionsAnswered + total
	if answered == 0 {
		return p
	}

	newRate := (float64(p.CorrectRate)*float64(p.QuestionsAnswered) + float64(correct)) / float64(answered)
	newWeakness := math.Max(0, 100-newRate)

	p.QuestionsAnswered = answered
	p.CorrectRate = int(math.Round(newRate))
	p.WeaknessLevel = int(math.Round(newWeakness))
	return p
}
