package internal

// Tracker holds the "current effect" pointer for one goroutine.
// Reads reported while an effect is installed here subscribe that effect.
type Tracker struct {
	tracking bool

	activeEffect *Effect

	// depth of nested Trigger calls, used for the cascade warning
	cascadeDepth int
}

func NewTracker() *Tracker {
	return &Tracker{
		tracking: true,
	}
}

// RunWithEffect installs e as the active effect for the duration of fn.
// The previous active effect is saved on e and restored on every exit path,
// including a panic propagating out of fn.
func (t *Tracker) RunWithEffect(e *Effect, fn func() any) any {
	e.parent = t.activeEffect
	t.activeEffect = e
	defer func() { t.activeEffect = e.parent }()

	return fn()
}

// RunUntracked runs fn with subscription recording paused. The active effect
// stays in place, so the self-trigger guard still applies to writes.
func (t *Tracker) RunUntracked(fn func()) {
	prev := t.tracking
	t.tracking = false
	defer func() { t.tracking = prev }()

	fn()
}

func (t *Tracker) ShouldTrack() bool {
	return t.activeEffect != nil && t.tracking
}
