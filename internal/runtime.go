package internal

// sharedStore is the process-wide dependency store. Every goroutine's
// runtime mutates it under its lock; only the active-effect pointer is
// goroutine-local.
var sharedStore = NewStore()

// Runtime binds one goroutine's tracker to the shared store.
type Runtime struct {
	tracker *Tracker
	store   *Store
}

func NewRuntime() *Runtime {
	return &Runtime{
		tracker: NewTracker(),
		store:   sharedStore,
	}
}

// Untrack runs fn with dependency tracking paused on this goroutine.
func (r *Runtime) Untrack(fn func()) {
	r.tracker.RunUntracked(fn)
}

// Forget drops every subscription record for target from the store.
// Forgetting an unknown target is a no-op.
func (r *Runtime) Forget(target any) {
	r.store.forget(target)
}
