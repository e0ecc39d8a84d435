// Package stance manages the passive-path stance set: one active
// stance per player, switch cooldowns, and modifier aggregation.
package stance

import (
	"fmt"
	"log/slog"

	"github.com/hollowmire/descent/internal/data"
	"github.com/hollowmire/descent/internal/model"
)

// Switch replaces the active stance. It is a no-op when the path has
// one stance or fewer, when the switch cooldown is still counting
// down, or when the id names no stance on the player's path (caller
// misuse, logged). Returns the updated player and whether the stance
// changed.
func Switch(p model.Player, stanceID string) (model.Player, bool) {
	def := data.MustPathDef(p.PathID)
	if len(def.Stances) <= 1 {
		return p, false
	}
	if p.StanceCooldownMs > 0 {
		slog.Debug("stance switch blocked by cooldown",
			"path", p.PathID, "remaining_ms", p.StanceCooldownMs)
		return p, false
	}
	if stanceID == p.StanceID {
		return p, false
	}

	st, ok := data.StanceFor(p.PathID, stanceID)
	if !ok {
		slog.Warn("unknown stance id, ignoring switch",
			"path", p.PathID, "stance", stanceID)
		return p, false
	}

	p.StanceID = st.ID
	cd := st.SwitchCooldownMs
	if cd <= 0 {
		cd = data.DefaultStanceCooldownMs
	}
	p.StanceCooldownMs = cd
	return p, true
}

// TickCooldown pays elapsed wall-clock time off the switch cooldown.
func TickCooldown(p model.Player, elapsedMs int) model.Player {
	if p.StanceCooldownMs > 0 {
		p.StanceCooldownMs -= elapsedMs
		if p.StanceCooldownMs < 0 {
			p.StanceCooldownMs = 0
		}
	}
	return p
}

// Modifiers returns the active stance's effect list plus the player's
// chosen stance enhancement. The active stance id is state this package
// owns, so a failed lookup is a content bug and panics.
func Modifiers(p model.Player) []model.StanceEffect {
	st, ok := data.StanceFor(p.PathID, p.StanceID)
	if !ok {
		panic(fmt.Sprintf("stance: player stance %q not defined on path %q", p.StanceID, p.PathID))
	}
	out := make([]model.StanceEffect, 0, len(st.Effects)+1)
	out = append(out, st.Effects...)
	if p.StanceEnhancementID != "" {
		ef, ok := data.GetStanceEnhancement(p.StanceEnhancementID)
		if !ok {
			panic(fmt.Sprintf("stance: unknown enhancement %q", p.StanceEnhancementID))
		}
		out = append(out, ef...)
	}
	return out
}

// BehaviorWeight sums a behavior's weight across the active stance's
// behavior_modifier effects only.
func BehaviorWeight(effects []model.StanceEffect, b model.Behavior) float64 {
	total := 0.0
	for _, ef := range effects {
		if ef.Kind == model.StanceBehaviorModifier && ef.Behavior == b {
			total += ef.Weight
		}
	}
	return total
}

// DamageBonus sums the damage_modifier percents of the active stance's
// effects into a multiplier.
func DamageBonus(effects []model.StanceEffect) float64 {
	total := 0.0
	for _, ef := range effects {
		if ef.Kind == model.StanceDamageModifier {
			total += ef.Percent
		}
	}
	return 1.0 + total
}
