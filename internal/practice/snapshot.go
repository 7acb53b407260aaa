package practice

import (
	"time"

	"github.com/rchau/learnloop/internal/store"
)

// Snapshot is the serializable form of an in-flight session, persisted
// through the store so an interrupted run can pick up where it left
// off. Questions are not stored; they are rebuilt from the weak point.
type Snapshot struct {
	PointID   string       `json:"pointId"`
	Index     int          `json:"index"`
	Answers   []UserAnswer `json:"answers"`
	StartedAt time.Time    `json:"startedAt"`
}

// Snapshot captures the engine's resumable state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		PointID:   e.point.ID,
		Index:     e.index,
		Answers:   e.answers,
		StartedAt: e.startedAt,
	}
}

// Resume rebuilds an engine from a snapshot. The per-question timer
// restarts at resume time; the session start time is restored so the
// total stays honest. A snapshot whose index is out of range for the
// rebuilt question set is ignored and a fresh session starts instead.
func Resume(point store.WeakPoint, questions []Question, snap Snapshot, opts ...Option) *Engine {
	e := New(point, questions, opts...)
	if snap.Index < 0 || snap.Index >= len(questions) || len(snap.Answers) != snap.Index {
		return e
	}
	e.index = snap.Index
	e.answers = snap.Answers
	e.startedAt = snap.StartedAt
	e.questionStarted = e.now()
	return e
}
