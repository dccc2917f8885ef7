package internal

import (
	"slices"
	"sync"
)

// Store is the process-wide dependency store: for every tracked target
// object, a mapping from property key to the set of effects whose last run
// read that key.
//
// Go has no weak map keyed on arbitrary objects, so entries are dropped
// through an explicit Forget call instead of garbage collection.
type Store struct {
	mu sync.Mutex

	targets map[any]map[any]*depSet
}

func NewStore() *Store {
	return &Store{
		targets: make(map[any]map[any]*depSet),
	}
}

// depSetFor returns the subscriber set for (target, key), creating the
// per-target mapping and the set lazily.
func (s *Store) depSetFor(target, key any) *depSet {
	keys, ok := s.targets[target]
	if !ok {
		keys = make(map[any]*depSet)
		s.targets[target] = keys
	}

	set, ok := keys[key]
	if !ok {
		set = &depSet{}
		keys[key] = set
	}

	return set
}

// lookup returns the subscriber set for (target, key), or nil if either the
// target or the key was never tracked.
func (s *Store) lookup(target, key any) *depSet {
	keys, ok := s.targets[target]
	if !ok {
		return nil
	}

	return keys[key]
}

// detach removes e from every dependency set it belongs to and clears its
// subscription list. Runs to completion before anything else touches the
// store, so a rerun never keeps subscriptions from a previous run.
func (s *Store) detach(e *Effect) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, set := range e.subs {
		set.remove(e)
	}
	e.subs = nil
}

// forget drops every subscription record for target. Member effects lose the
// corresponding entries from their subscription lists so later cleanups don't
// touch dead sets.
func (s *Store) forget(target any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys, ok := s.targets[target]
	if !ok {
		return
	}

	for _, set := range keys {
		for _, e := range set.effects {
			e.dropSet(set)
		}
		set.effects = nil
	}

	delete(s.targets, target)
}

// depSet is an insertion-ordered set of effects subscribed to one
// (target, key) pair. The same instance is shared between the store and the
// subscription list of each member effect.
type depSet struct {
	effects []*Effect
}

// add appends e if not already a member. Reports whether e was added.
func (s *depSet) add(e *Effect) bool {
	if slices.Contains(s.effects, e) {
		return false
	}

	s.effects = append(s.effects, e)
	return true
}

func (s *depSet) remove(e *Effect) {
	if index := slices.Index(s.effects, e); index != -1 {
		s.effects = slices.Delete(s.effects, index, index+1)
	}
}

// snapshot clones the members for iteration. Notified effects unsubscribe
// and resubscribe themselves mid-notification, so iterating the live slice
// would skip or double-run subscribers.
func (s *depSet) snapshot() []*Effect {
	return slices.Clone(s.effects)
}
