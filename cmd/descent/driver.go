package main

import (
	"log/slog"
	"sync"

	"github.com/hollowmire/descent/internal/ai"
	"github.com/hollowmire/descent/internal/game/combat"
	"github.com/hollowmire/descent/internal/model"
)

// driver plays the run headless: it keeps auto-attack engaged, casts
// powers when they are affordable, and resolves pending choices. The
// mutex serializes the tick loop against autosave snapshots.
type driver struct {
	mu      sync.Mutex
	session *combat.Session
}

func newDriver(s *combat.Session) *driver {
	s.StartAttackTick()
	return &driver{session: s}
}

// Advance moves the simulation and then applies the autoplay policy.
func (d *driver) Advance(elapsedMs int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.session.Advance(elapsedMs)
	d.autoplay()

	for _, line := range d.session.DrainLogs() {
		slog.Info(line)
	}
	d.session.DrainEvents()
}

// Done reports whether the run ended.
func (d *driver) Done() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.session.Over()
}

// Snapshot returns the current state for persistence.
func (d *driver) Snapshot() (model.GameState, bool, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.session.State(), d.session.Over(), d.session.Victory()
}

func (d *driver) autoplay() {
	if d.session.Over() {
		return
	}
	st := d.session.State()

	if st.Player.PendingStanceEnhancement != "" {
		choice := ai.PickEnhancement(st.Player)
		if err := d.session.SelectStanceEnhancement(choice); err != nil {
			slog.Warn("enhancement pick failed", "choice", choice, "err", err)
		}
	}

	if id, ok := ai.PickPower(st.Player); ok {
		// Cast errors here are routine (race with cost reduction
		// expiring); they are debug noise, not failures.
		if err := d.session.UsePower(id); err != nil {
			slog.Debug("power cast skipped", "power", id, "err", err)
		}
	}
}
