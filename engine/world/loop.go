package world

import "time"

// Loop drives a World at a fixed tick rate from wall-clock frame calls,
// the same accumulator pattern the teacher's fixed-timestep game loop
// uses to keep simulation deterministic regardless of render framerate.
type Loop struct {
	World       *World
	TickRate    float64
	Playing     bool
	accumulator float64
	lastTime    time.Time
}

// NewLoop returns a loop over w ticking at tickRate ticks per second,
// initially paused.
func NewLoop(w *World, tickRate float64) *Loop {
	return &Loop{World: w, TickRate: tickRate, lastTime: time.Now()}
}

// Play starts or resumes ticking.
func (l *Loop) Play() {
	l.Playing = true
	l.lastTime = time.Now()
}

// Pause stops ticking without losing the accumulator.
func (l *Loop) Pause() {
	l.Playing = false
}

// Advance should be called once per render frame; it runs as many fixed
// ticks as the elapsed wall-clock time demands, capping a single call's
// catch-up to avoid a spiral of death after a stall.
func (l *Loop) Advance() {
	now := time.Now()
	frameTime := now.Sub(l.lastTime).Seconds()
	l.lastTime = now
	if frameTime > 0.25 {
		frameTime = 0.25
	}
	if !l.Playing {
		return
	}
	dt := 1.0 / l.TickRate
	l.accumulator += frameTime
	for l.accumulator >= dt {
		l.World.Tick(dt)
		l.accumulator -= dt
	}
}
