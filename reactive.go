// Package reactive implements a dependency-tracking runtime: effects rerun
// automatically whenever the pieces of state they last read are written,
// without declaring those dependencies up front.
//
// The package contains no interception layer of its own. Whatever makes
// state observable (proxied structs, instrumented maps, store wrappers) must
// call NotifyRead on every property read and NotifyWrite after every
// property write, passing the target object and a stable per-property key.
package reactive

import (
	"github.com/rs/zerolog"

	"github.com/aguillem/reactive/internal"
)

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}

type Effect[T any] struct {
	effect *internal.Effect
}

// NewEffect wraps computation in a reactive effect and runs it once
// immediately to establish its first dependency set. From then on the effect
// reruns whenever one of the (target, key) pairs it read on its previous run
// is written.
func NewEffect[T any](computation func() T, opts ...EffectOption) *Effect[T] {
	return &Effect[T]{
		internal.GetRuntime().NewEffect(func() any {
			return computation()
		}, opts...),
	}
}

// Rerun re-invokes the computation and returns its result. On an active
// effect this is a full tracked run, replacing the dependency set; on a
// stopped effect the computation runs directly, without tracking.
func (e *Effect[T]) Rerun() T {
	return as[T](e.effect.Run())
}

// Stop deactivates the effect and removes all its subscriptions. A stopped
// effect is never notified again; Rerun still works, untracked.
func (e *Effect[T]) Stop() {
	e.effect.Stop()
}

// NotifyRead records a property read on a tracked object. The interception
// layer must call it synchronously during every read, before returning the
// value. Reads outside any effect subscribe nothing.
func NotifyRead(target, key any) {
	internal.GetRuntime().Track(target, key, internal.AccessGet)
}

// NotifyReadOp is NotifyRead with an explicit access type, for interception
// layers that distinguish gets from existence checks and iteration. The
// engine subscribes identically for all of them.
func NotifyReadOp(target, key any, op AccessOp) {
	internal.GetRuntime().Track(target, key, op)
}

// NotifyWrite reruns every effect that read (target, key) on its previous
// run, except the effect performing the write. The interception layer must
// call it after the underlying value has been updated, so reruns observe the
// new value. Both values are informational; deciding whether a write is a
// no-op is the interception layer's job.
func NotifyWrite(target, key, newValue, oldValue any) {
	internal.GetRuntime().Trigger(target, key, newValue, oldValue, internal.MutationSet)
}

// NotifyWriteOp is NotifyWrite with an explicit mutation type.
func NotifyWriteOp(target, key, newValue, oldValue any, op MutationOp) {
	internal.GetRuntime().Trigger(target, key, newValue, oldValue, op)
}

// Untrack runs fn with dependency tracking paused: reads inside subscribe
// nothing, while writes still notify as usual.
func Untrack[T any](fn func() T) T {
	var result T
	internal.GetRuntime().Untrack(func() { result = fn() })
	return result
}

// Forget drops every subscription record for target. Go has no weak map
// keyed on arbitrary objects, so the store would otherwise pin tracked
// objects forever; whoever owns a tracked object calls Forget when disposing
// of it. Forgetting an unknown target is a no-op.
func Forget(target any) {
	internal.GetRuntime().Forget(target)
}

// SetTraceLogger installs a logger for track/trigger tracing. Events are
// logged at trace level; a warning is emitted when a write cascade nests
// suspiciously deep. By default everything is discarded.
func SetTraceLogger(l zerolog.Logger) {
	internal.SetTraceLogger(l)
}

// AccessOp classifies a read reported through NotifyReadOp.
type AccessOp = internal.AccessOp

// MutationOp classifies a write reported through NotifyWriteOp.
type MutationOp = internal.MutationOp

const (
	AccessGet     = internal.AccessGet
	AccessHas     = internal.AccessHas
	AccessIterate = internal.AccessIterate

	MutationSet    = internal.MutationSet
	MutationAdd    = internal.MutationAdd
	MutationDelete = internal.MutationDelete
)

// TrackEvent describes a new subscription recorded for an effect.
type TrackEvent = internal.TrackEvent

// TriggerEvent describes the write about to rerun an effect.
type TriggerEvent = internal.TriggerEvent

type EffectOption = internal.EffectOption

// OnTrack registers a debug hook invoked each time the effect records a new
// dependency. Repeat reads of an already-subscribed key produce no event.
func OnTrack(fn func(TrackEvent)) EffectOption {
	return internal.OnTrack(fn)
}

// OnTrigger registers a debug hook invoked on the effect just before a write
// notification reruns it.
func OnTrigger(fn func(TriggerEvent)) EffectOption {
	return internal.OnTrigger(fn)
}
