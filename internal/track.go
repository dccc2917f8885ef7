package internal

// Track subscribes the goroutine's active effect, if any, to (target, key).
// Reads outside any effect, or while tracking is paused, subscribe nothing.
// Repeated reads of the same key within one run are idempotent.
func (r *Runtime) Track(target, key any, op AccessOp) {
	if !r.tracker.ShouldTrack() {
		return
	}
	e := r.tracker.activeEffect

	r.store.mu.Lock()
	set := r.store.depSetFor(target, key)
	added := set.add(e)
	if added {
		e.subs = append(e.subs, set)
	}
	r.store.mu.Unlock()

	if !added {
		return
	}

	traceLog.Trace().
		Str("op", string(op)).
		Interface("key", key).
		Msg("track")

	if e.onTrack != nil {
		e.onTrack(TrackEvent{Target: target, Key: key, Op: op})
	}
}
