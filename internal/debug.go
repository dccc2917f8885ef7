package internal

import "github.com/rs/zerolog"

// TrackEvent describes a new subscription recorded for an effect. Hooks see
// it after the store is updated; repeat reads of an already-subscribed key
// produce no event.
type TrackEvent struct {
	Target any
	Key    any
	Op     AccessOp
}

// TriggerEvent describes the write about to rerun an effect.
type TriggerEvent struct {
	Target   any
	Key      any
	Op       MutationOp
	NewValue any
	OldValue any
}

type EffectOption func(*Effect)

func OnTrack(fn func(TrackEvent)) EffectOption {
	return func(e *Effect) { e.onTrack = fn }
}

func OnTrigger(fn func(TriggerEvent)) EffectOption {
	return func(e *Effect) { e.onTrigger = fn }
}

// traceLog records track/trigger activity. Discards everything until
// SetTraceLogger installs a real logger.
var traceLog = zerolog.Nop()

func SetTraceLogger(l zerolog.Logger) {
	traceLog = l
}
