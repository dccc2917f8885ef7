package internal

// Effect is a wrapped computation that reruns whenever one of the
// (target, key) pairs it read on its previous run is written.
type Effect struct {
	fn func() any

	active bool

	// the effect that was active when this one started running; the
	// goroutine's active-effect pointer is restored to it when Run returns
	parent *Effect

	// dependency sets this effect currently belongs to. Each entry is the
	// same instance held by the store, so cleanup is one removal per set.
	subs []*depSet

	onTrack   func(TrackEvent)
	onTrigger func(TriggerEvent)
}

// NewEffect wraps fn in an active effect and runs it once so its first
// dependency set is established eagerly.
func (r *Runtime) NewEffect(fn func() any, opts ...EffectOption) *Effect {
	e := &Effect{
		fn:     fn,
		active: true,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.Run()

	return e
}

// Run executes the computation and returns its result.
//
// An inactive effect invokes the computation directly, without tracking.
// An active effect first drops every subscription from its previous run,
// then runs the computation as the goroutine's active effect, repopulating
// its subscriptions through Track as it reads.
func (e *Effect) Run() any {
	if !e.active {
		return e.fn()
	}

	r := GetRuntime()

	r.store.detach(e)

	return r.tracker.RunWithEffect(e, e.fn)
}

// Stop deactivates the effect. One final cleanup removes it from the store,
// so no later write can notify it; Run degrades to direct invocation.
// Stopping twice is a no-op.
func (e *Effect) Stop() {
	if !e.active {
		return
	}

	GetRuntime().store.detach(e)
	e.active = false
}

// dropSet removes one set from the subscription list. Called by the store
// when a forgotten target takes its dependency sets away.
func (e *Effect) dropSet(set *depSet) {
	for i, s := range e.subs {
		if s == set {
			e.subs = append(e.subs[:i], e.subs[i+1:]...)
			return
		}
	}
}
