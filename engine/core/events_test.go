package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventFireStopsAtHandled(t *testing.T) {
	es := NewEventSystem(4)
	var calls []string

	require.NoError(t, es.Register(EventCodeKeyPressed, "first", func(e Event) bool {
		calls = append(calls, "first")
		return e.Key == KeyF1
	}))
	require.NoError(t, es.Register(EventCodeKeyPressed, "second", func(e Event) bool {
		calls = append(calls, "second")
		return true
	}))

	assert.True(t, es.Fire(Event{Code: EventCodeKeyPressed, Key: KeyF1}))
	assert.Equal(t, []string{"first"}, calls)

	calls = nil
	assert.True(t, es.Fire(Event{Code: EventCodeKeyPressed, Key: KeyA}))
	assert.Equal(t, []string{"first", "second"}, calls)

	assert.False(t, es.Fire(Event{Code: EventCodeResized}))
}

func TestEventRegisterDuplicate(t *testing.T) {
	es := NewEventSystem(4)
	noop := func(Event) bool { return false }

	require.NoError(t, es.Register(EventCodeResized, "listener", noop))
	assert.ErrorIs(t, es.Register(EventCodeResized, "listener", noop), ErrDuplicate)
	assert.ErrorIs(t, es.Register(EventCodeResized, "other", nil), ErrOutOfRange)

	require.NoError(t, es.Unregister(EventCodeResized, "listener"))
	assert.ErrorIs(t, es.Unregister(EventCodeResized, "listener"), ErrNotFound)
}

func TestEventQueueDispatch(t *testing.T) {
	es := NewEventSystem(2)
	var keys []KeyCode
	require.NoError(t, es.Register(EventCodeKeyPressed, es, func(e Event) bool {
		keys = append(keys, e.Key)
		return e.Key != KeyB
	}))

	require.NoError(t, es.Queue(Event{Code: EventCodeKeyPressed, Key: KeyA}))
	require.NoError(t, es.Queue(Event{Code: EventCodeKeyPressed, Key: KeyB}))
	assert.Error(t, es.Queue(Event{Code: EventCodeKeyPressed, Key: KeyC}))
	assert.Equal(t, 2, es.Pending())

	assert.Equal(t, 1, es.Dispatch())
	assert.Equal(t, []KeyCode{KeyA, KeyB}, keys)
	assert.Zero(t, es.Pending())

	require.NoError(t, es.Queue(Event{Code: EventCodeKeyPressed, Key: KeyC}))
	es.Clear()
	assert.Zero(t, es.Dispatch())
}

func TestEventUnregisterDuringFire(t *testing.T) {
	es := NewEventSystem(DefaultEventQueueSize)
	var calls []string
	require.NoError(t, es.Register(EventCodeMouseMoved, "once", func(e Event) bool {
		calls = append(calls, "once")
		require.NoError(t, es.Unregister(EventCodeMouseMoved, "once"))
		return false
	}))
	require.NoError(t, es.Register(EventCodeMouseMoved, "second", func(e Event) bool {
		calls = append(calls, "second")
		return false
	}))
	require.NoError(t, es.Register(EventCodeMouseMoved, "third", func(e Event) bool {
		calls = append(calls, "third")
		return false
	}))

	assert.False(t, es.Fire(Event{Code: EventCodeMouseMoved}))
	assert.Equal(t, []string{"once", "second", "third"}, calls)

	calls = nil
	es.Fire(Event{Code: EventCodeMouseMoved})
	assert.Equal(t, []string{"second", "third"}, calls)
}
