// Package ai holds the headless autoplay policy: which power to cast
// next and which boss enhancement to take. The policy only reads
// snapshots; the session applies its picks.
package ai

import (
	"log/slog"

	"github.com/hollowmire/descent/internal/game/path"
	"github.com/hollowmire/descent/internal/model"
)

var debugLogging bool

// EnableDebugLogging turns per-decision debug logs on or off.
func EnableDebugLogging(enabled bool) {
	debugLogging = enabled
}

// PickPower returns the next power worth casting: healing first when
// hurt, otherwise the most expensive ready power the pool can cover.
// ok=false means hold the resource.
func PickPower(p model.Player) (string, bool) {
	reduction := path.CostReduction(p.Resource)

	// Emergency heal below a third of max health.
	if p.Current.MaxHealth > 0 && float64(p.Health)/float64(p.Current.MaxHealth) < 0.34 {
		if id, ok := pickByEffect(p, model.PowerHeal, reduction); ok {
			return id, true
		}
	}

	best := ""
	bestCost := -1.0
	for _, pw := range p.Powers {
		if !pw.Ready() || pw.Effect == model.PowerHeal {
			continue
		}
		cost := pw.Cost * (1.0 - reduction)
		if cost > p.Resource.Current {
			continue
		}
		// Don't burn a pool that is about to arm a special.
		if holdsForSpecial(p.Resource, cost) {
			continue
		}
		if cost > bestCost {
			best, bestCost = pw.ID, cost
		}
	}
	if best == "" {
		return "", false
	}
	if debugLogging {
		slog.Debug("autoplay picks power", "power", best, "cost", bestCost)
	}
	return best, true
}

func pickByEffect(p model.Player, effect model.PowerEffect, reduction float64) (string, bool) {
	for _, pw := range p.Powers {
		if pw.Effect != effect || !pw.Ready() {
			continue
		}
		if pw.Cost*(1.0-reduction) <= p.Resource.Current {
			return pw.ID, true
		}
	}
	return "", false
}

// holdsForSpecial reports whether spending cost would walk the pool
// away from an almost-armed special threshold.
func holdsForSpecial(r model.PathResource, cost float64) bool {
	for _, t := range r.Thresholds {
		if !t.Kind.IsSpecial() {
			continue
		}
		if r.Current >= t.Value*0.8 && r.Current-cost < t.Value {
			return true
		}
	}
	return false
}

// PickEnhancement chooses a boss enhancement: defensive when the path
// is fragile, aggressive otherwise.
func PickEnhancement(p model.Player) string {
	if p.Current.MaxHealth < 100 {
		return "iron_skin"
	}
	return "sharpened_edge"
}
