package reactive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrack(t *testing.T) {
	t.Run("reads outside an effect subscribe nothing", func(t *testing.T) {
		s := newState(map[string]any{"a": 1})

		assert.Equal(t, 1, s.get("a"))

		// nothing to notify, defined no-op
		assert.NotPanics(t, func() {
			s.set("a", 2)
		})
	})

	t.Run("repeat reads of one key subscribe once", func(t *testing.T) {
		runs := 0
		tracked := 0

		s := newState(map[string]any{"a": 1})

		NewEffect(func() any {
			runs++
			s.get("a")
			s.get("a")
			s.get("a")
			return nil
		}, OnTrack(func(TrackEvent) { tracked++ }))

		require.Equal(t, 1, runs)
		assert.Equal(t, 1, tracked)

		// a single subscription means a single rerun per write
		s.set("a", 2)
		assert.Equal(t, 2, runs)
		assert.Equal(t, 2, tracked)
	})

	t.Run("same key on different targets is tracked separately", func(t *testing.T) {
		runs := 0

		s1 := newState(map[string]any{"a": 1})
		s2 := newState(map[string]any{"a": 1})

		NewEffect(func() any {
			runs++
			s1.get("a")
			return nil
		})

		s2.set("a", 2)
		require.Equal(t, 1, runs)

		s1.set("a", 2)
		assert.Equal(t, 2, runs)
	})

	t.Run("access type does not change subscription behavior", func(t *testing.T) {
		runs := 0

		s := newState(map[string]any{"a": 1})

		NewEffect(func() any {
			runs++
			NotifyReadOp(s, "a", AccessHas)
			return nil
		})

		s.set("a", 2)

		assert.Equal(t, 2, runs)
	})

	t.Run("tracks non-string keys", func(t *testing.T) {
		runs := 0

		s := newState(nil)

		NewEffect(func() any {
			runs++
			NotifyReadOp(s, 42, AccessGet)
			return nil
		})

		NotifyWrite(s, 42, "new", "old")

		assert.Equal(t, 2, runs)
	})
}
