// Package status applies and ticks status effects and stat debuffs on
// either combatant. All functions are functional: they return updated
// slices and never mutate their inputs.
package status

import (
	"fmt"
	"math"
	"slices"

	"github.com/hollowmire/descent/internal/model"
)

// TickResult is what one turn-start pass over a status list produced.
type TickResult struct {
	Damage   int
	Statuses []model.StatusEffect
	Logs     []string
}

// TickTurnStart deals poison/bleed tick damage, then decrements every
// status and prunes the expired ones.
func TickTurnStart(statuses []model.StatusEffect) TickResult {
	var res TickResult
	if len(statuses) == 0 {
		return res
	}

	out := make([]model.StatusEffect, 0, len(statuses))
	for _, s := range statuses {
		if s.Kind == model.StatusPoison || s.Kind == model.StatusBleed {
			if s.Magnitude > 0 {
				res.Damage += s.Magnitude
				res.Logs = append(res.Logs,
					fmt.Sprintf("%s deals %d damage", s.Kind, s.Magnitude))
			}
		}
		s.RemainingTurns--
		if s.RemainingTurns > 0 {
			out = append(out, s)
		}
	}
	res.Statuses = out
	return res
}

// Apply adds a status effect. Re-applying the same (kind, source)
// refreshes the entry in place instead of stacking a second one.
func Apply(statuses []model.StatusEffect, s model.StatusEffect) []model.StatusEffect {
	for i, existing := range statuses {
		if existing.Kind == s.Kind && existing.Source == s.Source {
			out := slices.Clone(statuses)
			out[i] = s
			return out
		}
	}
	return append(slices.Clone(statuses), s)
}

// Has reports whether a status of the given kind is active.
func Has(statuses []model.StatusEffect, kind model.StatusKind) bool {
	for _, s := range statuses {
		if s.Kind == kind && s.RemainingTurns > 0 {
			return true
		}
	}
	return false
}

// SlowFactor returns the speed multiplier from active slow effects.
// Multiple slows multiply, same as stat debuffs.
func SlowFactor(statuses []model.StatusEffect) float64 {
	out := 1.0
	for _, s := range statuses {
		if s.Kind == model.StatusSlow && s.RemainingTurns > 0 && s.Magnitude > 0 {
			out *= 1.0 - float64(s.Magnitude)/100.0
		}
	}
	if out < 0 {
		out = 0
	}
	return out
}

// ApplyDebuff adds a stat debuff. Debuffs are keyed by (stat, source):
// the same source refreshes its entry's duration and reduction, a new
// source gets its own entry.
func ApplyDebuff(debuffs []model.StatDebuff, d model.StatDebuff) []model.StatDebuff {
	for i, existing := range debuffs {
		if existing.Stat == d.Stat && existing.Source == d.Source {
			out := slices.Clone(debuffs)
			out[i] = d
			return out
		}
	}
	return append(slices.Clone(debuffs), d)
}

// TickDebuffs decrements remaining turns and prunes expired entries.
func TickDebuffs(debuffs []model.StatDebuff) []model.StatDebuff {
	if len(debuffs) == 0 {
		return debuffs
	}
	out := make([]model.StatDebuff, 0, len(debuffs))
	for _, d := range debuffs {
		d.RemainingTurns--
		if d.RemainingTurns > 0 {
			out = append(out, d)
		}
	}
	return out
}

// EffectiveStat applies every active debuff on a stat multiplicatively:
// floor(base · Π(1 - reduction_i)).
func EffectiveStat(base int, stat model.Stat, debuffs []model.StatDebuff) int {
	if len(debuffs) == 0 {
		return base
	}
	factor := 1.0
	for _, d := range debuffs {
		if d.Stat != stat || d.RemainingTurns <= 0 {
			continue
		}
		r := d.Reduction
		if r < 0 {
			r = 0
		}
		if r > 1 {
			r = 1
		}
		factor *= 1.0 - r
	}
	return int(math.Floor(float64(base) * factor))
}
