// Package path drives the per-path resource economy: event-driven
// generation, idle decay and value thresholds.
package path

import (
	"log/slog"
	"math"

	"github.com/hollowmire/descent/internal/model"
)

// Gain applies one generation event and clamps. Returns the updated
// resource and the amount actually generated.
func Gain(r model.PathResource, ev model.ResourceEvent) (model.PathResource, float64) {
	amount := r.Gen.Amount(ev)
	if amount <= 0 {
		return r, 0
	}
	before := r.Current
	r.Current += amount
	r.Clamp()
	return r, r.Current - before
}

// Spend pays a cost. Returns ok=false (and the unchanged resource) if
// the pool can't cover it.
func Spend(r model.PathResource, amount float64) (model.PathResource, bool) {
	if amount < 0 {
		amount = 0
	}
	if r.Current < amount {
		return r, false
	}
	r.Current -= amount
	r.Clamp()
	return r, true
}

// DecayTick advances idle decay by elapsed wall-clock time. Decay
// accumulates sub-interval remainders so slow tick rates don't lose
// time. Out-of-combat-only decay is suspended while in combat.
func DecayTick(r model.PathResource, elapsedMs int, inCombat bool) model.PathResource {
	if r.Decay == nil || elapsedMs <= 0 {
		return r
	}
	if r.Decay.OutOfCombatOnly && inCombat {
		// A paused economy also drops its carry, so re-entering idle
		// never charges for combat time.
		r.DecayCarryMs = 0
		return r
	}

	interval := r.Decay.TickIntervalMs
	if interval <= 0 {
		slog.Warn("resource decay has no interval, skipping",
			"resource", r.Type.String())
		return r
	}

	r.DecayCarryMs += elapsedMs
	for r.DecayCarryMs >= interval && r.Current > 0 {
		r.DecayCarryMs -= interval
		r.Current -= r.Decay.Rate
	}
	r.Clamp()
	return r
}

// Active returns every threshold whose value has been reached. Multiple
// thresholds sharing one value all report active together.
func Active(r model.PathResource) []model.Threshold {
	var out []model.Threshold
	for _, t := range r.Thresholds {
		if r.Current >= t.Value {
			out = append(out, t)
		}
	}
	return out
}

// DamageBonus returns the combined damage multiplier from active
// continuous thresholds. Bonuses stack multiplicatively. Degenerate
// values are logged and replaced with 1.0 rather than propagated.
func DamageBonus(r model.PathResource) float64 {
	mult := 1.0
	for _, t := range Active(r) {
		if t.Kind != model.ThresholdDamageBonus {
			continue
		}
		f := 1.0 + t.Amount
		if math.IsNaN(f) || math.IsInf(f, 0) || f < 1.0 {
			slog.Warn("degenerate threshold damage bonus, using 1.0",
				"resource", r.Type.String(), "value", t.Value, "amount", t.Amount)
			f = 1.0
		}
		mult *= f
	}
	return mult
}

// CostReduction returns the combined power-cost reduction fraction from
// active thresholds, capped below full-free.
func CostReduction(r model.PathResource) float64 {
	keep := 1.0
	for _, t := range Active(r) {
		if t.Kind != model.ThresholdCostReduction {
			continue
		}
		f := t.Amount
		if math.IsNaN(f) || f < 0 || f > 1 {
			slog.Warn("degenerate threshold cost reduction, ignoring",
				"resource", r.Type.String(), "value", t.Value, "amount", t.Amount)
			continue
		}
		keep *= 1.0 - f
	}
	reduction := 1.0 - keep
	if reduction > 0.9 {
		reduction = 0.9
	}
	return reduction
}

// TakeSpecial consumes a one-shot special threshold of the given kind
// if it is active. The whole pool is spent on consumption. Returns the
// updated resource, the threshold and whether it fired.
func TakeSpecial(r model.PathResource, kind model.ThresholdKind) (model.PathResource, model.Threshold, bool) {
	if !kind.IsSpecial() {
		return r, model.Threshold{}, false
	}
	for _, t := range Active(r) {
		if t.Kind != kind {
			continue
		}
		r.Current = 0
		r.DecayCarryMs = 0
		return r, t, true
	}
	return r, model.Threshold{}, false
}

// HasSpecial reports whether a one-shot special of the given kind is
// currently armed.
func HasSpecial(r model.PathResource, kind model.ThresholdKind) bool {
	for _, t := range Active(r) {
		if t.Kind == kind {
			return true
		}
	}
	return false
}
