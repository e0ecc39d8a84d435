// Package loop runs the fixed-rate simulation clock.
package loop

import (
	"context"
	"log/slog"
	"time"
)

// Advancer is the simulation surface the loop drives. Advance receives
// elapsed wall-clock milliseconds; Done reports that the simulation has
// ended and the loop may stop.
type Advancer interface {
	Advance(elapsedMs int)
	Done() bool
}

// Loop calls an Advancer at a fixed interval. When the process stalls
// (debugger, suspended laptop, starved scheduler), the backlog is capped
// at MaxCatchUp intervals and the rest of the lost time is discarded
// instead of being replayed as a burst.
type Loop struct {
	interval   time.Duration
	maxCatchUp int
	target     Advancer
}

// New builds a loop. Non-positive arguments fall back to sane values.
func New(intervalMs, maxCatchUp int, target Advancer) *Loop {
	if intervalMs <= 0 {
		intervalMs = 100
	}
	if maxCatchUp <= 0 {
		maxCatchUp = 5
	}
	return &Loop{
		interval:   time.Duration(intervalMs) * time.Millisecond,
		maxCatchUp: maxCatchUp,
		target:     target,
	}
}

// Run ticks until the context is canceled or the target reports done.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			elapsed := now.Sub(last)
			last = now

			cap := time.Duration(l.maxCatchUp) * l.interval
			if elapsed > cap {
				slog.Warn("tick backlog capped",
					"elapsed_ms", elapsed.Milliseconds(),
					"cap_ms", cap.Milliseconds())
				elapsed = cap
			}

			l.target.Advance(int(elapsed.Milliseconds()))
			if l.target.Done() {
				return nil
			}
		}
	}
}
