package practice

import (
	"github.com/rchau/learnloop/internal/store"

	engine "github.com/rchau/learnloop/internal/practice"
)

// loadedMsg carries the weak-point list and, when an unfinished session
// was left behind, the snapshot to resume from.
type loadedMsg struct {
	Points []store.WeakPoint
	Resume *engine.Snapshot
	Err    error
}

// genTickMsg advances the simulated generation pipeline by one step.
type genTickMsg struct {
	Step int
}

// snapshotSavedMsg reports a background snapshot write. Failures are
// not fatal; the session continues without resume protection.
type snapshotSavedMsg struct {
	Err error
}

// finishedMsg carries the persisted record once the session is over.
type finishedMsg struct {
	Record store.Record
	Point  store.WeakPoint
	Err    error
}
