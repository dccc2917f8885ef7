package internal

// cascadeWarnDepth is the nesting depth of Trigger calls past which a
// warning is logged once per crossing. Purely diagnostic: a runaway effect
// chain is left to exhaust the stack.
const cascadeWarnDepth = 100

// Trigger reruns every subscriber of (target, key) except the effect
// currently active on this goroutine. Subscribers run synchronously, in
// subscription order, against a snapshot taken on entry; mutations to the
// live set by earlier reruns don't change which effects this call notifies.
func (r *Runtime) Trigger(target, key, newValue, oldValue any, op MutationOp) {
	r.store.mu.Lock()
	set := r.store.lookup(target, key)
	var subs []*Effect
	if set != nil {
		subs = set.snapshot()
	}
	r.store.mu.Unlock()

	if len(subs) == 0 {
		return
	}

	traceLog.Trace().
		Str("op", string(op)).
		Interface("key", key).
		Int("subscribers", len(subs)).
		Msg("trigger")

	r.tracker.cascadeDepth++
	if r.tracker.cascadeDepth == cascadeWarnDepth {
		traceLog.Warn().
			Int("depth", r.tracker.cascadeDepth).
			Interface("key", key).
			Msg("deep trigger cascade, possible effect loop")
	}
	defer func() { r.tracker.cascadeDepth-- }()

	for _, e := range subs {
		// an effect that writes a key it also reads must not rerun itself
		if e == r.tracker.activeEffect {
			continue
		}

		if e.onTrigger != nil {
			e.onTrigger(TriggerEvent{
				Target:   target,
				Key:      key,
				Op:       op,
				NewValue: newValue,
				OldValue: oldValue,
			})
		}

		e.Run()
	}
}
