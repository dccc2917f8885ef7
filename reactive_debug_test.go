package reactive

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugHooks(t *testing.T) {
	t.Run("track hook fires once per new dependency", func(t *testing.T) {
		events := []TrackEvent{}

		s := newState(map[string]any{"a": 1, "b": 2})

		NewEffect(func() any {
			s.get("a")
			s.get("a")
			s.get("b")
			return nil
		}, OnTrack(func(ev TrackEvent) {
			events = append(events, ev)
		}))

		require.Len(t, events, 2)
		assert.Equal(t, "a", events[0].Key)
		assert.Equal(t, "b", events[1].Key)
		assert.Equal(t, AccessGet, events[0].Op)
		assert.Equal(t, s, events[0].Target)
	})

	t.Run("trigger hook fires before each notified rerun", func(t *testing.T) {
		log := []string{}

		s := newState(map[string]any{"a": 1})

		NewEffect(func() any {
			s.get("a")
			log = append(log, "run")
			return nil
		}, OnTrigger(func(ev TriggerEvent) {
			log = append(log, "trigger")
		}))

		s.set("a", 2)

		assert.Equal(t, []string{"run", "trigger", "run"}, log)
	})

	t.Run("trigger hook does not fire on the self-guarded effect", func(t *testing.T) {
		triggered := 0

		s := newState(map[string]any{"x": 0})

		NewEffect(func() any {
			s.set("x", s.get("x").(int)+1)
			return nil
		}, OnTrigger(func(TriggerEvent) { triggered++ }))

		assert.Equal(t, 0, triggered)
	})
}

func TestTraceLogger(t *testing.T) {
	t.Run("logs track and trigger events at trace level", func(t *testing.T) {
		var buf bytes.Buffer
		SetTraceLogger(zerolog.New(&buf).Level(zerolog.TraceLevel))
		defer SetTraceLogger(zerolog.Nop())

		s := newState(map[string]any{"a": 1})

		NewEffect(func() any {
			s.get("a")
			return nil
		})
		s.set("a", 2)

		out := buf.String()
		assert.Contains(t, out, `"message":"track"`)
		assert.Contains(t, out, `"message":"trigger"`)
		assert.Contains(t, out, `"key":"a"`)
	})

	t.Run("silent by default", func(t *testing.T) {
		s := newState(map[string]any{"a": 1})

		assert.NotPanics(t, func() {
			NewEffect(func() any {
				s.get("a")
				return nil
			})
			s.set("a", 2)
		})
	})
}
