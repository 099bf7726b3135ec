package timing

// FrameTiming is the time information for a single frame.
type FrameTiming struct {
	// CurrentTime is the window clock reading for this frame, in seconds.
	CurrentTime float64
	// DeltaTime is the time since the previous frame in seconds. Zero on the first frame and
	// never negative.
	DeltaTime float32
}

// FrameClock turns monotonic clock readings into per-frame deltas.
// The zero value is ready to use.
type FrameClock struct {
	previous float64
	started  bool
	frames   uint64
}

// NewFrameClock creates a FrameClock with no previous sample.
//
// Returns:
//   - *FrameClock: the clock
func NewFrameClock() *FrameClock {
	return &FrameClock{}
}

// Tick records a clock reading and returns the timing for the frame.
// The first tick has no previous sample and yields a zero delta. A reading that goes
// backwards is clamped to a zero delta.
//
// Parameters:
//   - now: the current clock reading in seconds
//
// Returns:
//   - FrameTiming: the current time and elapsed delta
func (c *FrameClock) Tick(now float64) FrameTiming {
	t := FrameTiming{CurrentTime: now}
	if c.started {
		t.DeltaTime = float32(max(now-c.previous, 0))
	}
	c.previous = now
	c.started = true
	c.frames++
	return t
}

// Frames returns how many ticks have been recorded.
//
// Returns:
//   - uint64: the frame count
func (c *FrameClock) Frames() uint64 {
	return c.frames
}

// Reset forgets the previous sample so the next Tick yields a zero delta again.
func (c *FrameClock) Reset() {
	c.started = false
	c.previous = 0
}
