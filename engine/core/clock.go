package core

import "time"

// TimeSource returns the current time in seconds. The platform window
// provides one; NewClock falls back to the wall clock.
type TimeSource func() float64

type Clock struct {
	source    TimeSource
	startTime float64
	lastTime  float64
	elapsed   float64
	delta     float64
	running   bool
}

func NewClock(source TimeSource) *Clock {
	if source == nil {
		origin := time.Now()
		source = func() float64 { return time.Since(origin).Seconds() }
	}
	return &Clock{source: source}
}

// Starts the clock. Resets elapsed time.
func (c *Clock) Start() {
	now := c.source()
	c.startTime = now
	c.lastTime = now
	c.elapsed = 0
	c.delta = 0
	c.running = true
}

// Updates the clock. Should be called once per frame before reading Delta
// or Elapsed. Has no effect on stopped clocks.
func (c *Clock) Update() {
	if !c.running {
		return
	}
	now := c.source()
	c.delta = now - c.lastTime
	c.lastTime = now
	c.elapsed = now - c.startTime
}

// Stops the clock. Does not reset elapsed time.
func (c *Clock) Stop() {
	c.running = false
}

func (c *Clock) Running() bool {
	return c.running
}

// Elapsed is the time in seconds since Start.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

// Delta is the time in seconds between the last two updates.
func (c *Clock) Delta() float64 {
	return c.delta
}
