package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClock(t *testing.T) {
	now := 10.0
	c := NewClock(func() float64 { return now })

	c.Update()
	assert.Zero(t, c.Elapsed(), "stopped clock does not advance")

	c.Start()
	now = 10.5
	c.Update()
	assert.InDelta(t, 0.5, c.Delta(), 1e-9)
	now = 10.75
	c.Update()
	assert.InDelta(t, 0.25, c.Delta(), 1e-9)
	assert.InDelta(t, 0.75, c.Elapsed(), 1e-9)

	c.Stop()
	now = 20
	c.Update()
	assert.InDelta(t, 0.75, c.Elapsed(), 1e-9)
	assert.False(t, c.Running())
}

func TestMetrics(t *testing.T) {
	m := NewMetrics()
	for i := 0; i < 61; i++ {
		m.Update(1.0 / 60.0)
	}
	fps, frameTime := m.Frame()
	assert.InDelta(t, 60, fps, 1)
	assert.InDelta(t, 1000.0/60.0, frameTime, 1e-6)
}

func TestStateManager(t *testing.T) {
	sm := NewStateManager()
	assert.Equal(t, GameStateActive, sm.Current())
	assert.True(t, sm.TogglePause())
	assert.Equal(t, GameStatePaused, sm.Current())
	assert.True(t, sm.TogglePause())
	assert.Equal(t, GameStateActive, sm.Current())

	sm.Set(GameStateMenu)
	assert.False(t, sm.TogglePause())
	assert.Equal(t, GameStateActive, sm.Previous())
}
