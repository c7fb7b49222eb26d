package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputStateKeyTransitions(t *testing.T) {
	es := NewEventSystem(8)
	is := NewInputState(es)

	is.ProcessKey(KeyA, true)
	// repeated presses do not queue events
	is.ProcessKey(KeyA, true)
	assert.True(t, is.IsKeyDown(KeyA))
	assert.False(t, is.WasKeyDown(KeyA))
	assert.Equal(t, 1, es.Pending())

	is.Update()
	assert.True(t, is.WasKeyDown(KeyA))

	is.ProcessKey(KeyA, false)
	assert.True(t, is.IsKeyUp(KeyA))
	assert.Equal(t, 2, es.Pending())

	var codes []EventCode
	for _, code := range []EventCode{EventCodeKeyPressed, EventCodeKeyReleased} {
		_ = es.Register(code, t, func(e Event) bool {
			codes = append(codes, e.Code)
			return true
		})
	}
	es.Dispatch()
	assert.Equal(t, []EventCode{EventCodeKeyPressed, EventCodeKeyReleased}, codes)
}

func TestInputStateMouse(t *testing.T) {
	is := NewInputState(nil)

	is.ProcessMouseMove(10, 20)
	is.Update()
	is.ProcessMouseMove(15, 18)
	dx, dy := is.MouseDelta()
	assert.Equal(t, 5.0, dx)
	assert.Equal(t, -2.0, dy)

	is.ProcessMouseWheel(0, 1)
	is.ProcessMouseWheel(0, 2)
	_, sy := is.ScrollDelta()
	assert.Equal(t, 3.0, sy)
	is.Update()
	_, sy = is.ScrollDelta()
	assert.Zero(t, sy)

	is.ProcessButton(ButtonLeft, true)
	assert.True(t, is.IsButtonDown(ButtonLeft))
	assert.False(t, is.WasButtonDown(ButtonLeft))
	assert.False(t, is.IsButtonDown(ButtonMaxButtons))
}
