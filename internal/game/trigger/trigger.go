// Package trigger dispatches item effects on combat events.
package trigger

import (
	"fmt"

	"github.com/hollowmire/descent/internal/game/scaling"
	"github.com/hollowmire/descent/internal/model"
)

// BuffTurns is how long a triggered buff lasts.
const BuffTurns = 3

// DebuffTurns is how long a triggered enemy debuff lasts.
const DebuffTurns = 3

// Result aggregates everything a trigger pass produced. Player is a
// fresh value; the caller replaces its snapshot with it.
type Result struct {
	Player           model.Player
	AdditionalDamage int
	Logs             []string

	// EnemyDebuffs are debuff effects for the orchestrator to apply to
	// the current enemy.
	EnemyDebuffs []model.StatDebuff

	// CheatedDeath is set when an on_lethal_damage effect fired; the
	// orchestrator converts the killing blow into a survival at the
	// effect's health fraction.
	CheatedDeath bool
	CheatFrac    float64
}

// Process scans every equipped item whose effect subscribes to the
// trigger, rolls each one's own chance (default 1), and applies the
// successes non-destructively. Multiple items may fire on the same
// trigger in one call. damage is the attack damage known so far; it
// feeds fraction-based effects such as lifesteal.
func Process(tr model.Trigger, p model.Player, damage int) Result {
	res := Result{Player: p}

	for _, slot := range []model.Slot{model.SlotWeapon, model.SlotArmor, model.SlotAccessory} {
		it, ok := p.Equipped[slot]
		if !ok || it.Effect == nil || it.Effect.Trigger != tr {
			continue
		}
		chance := it.Effect.Chance
		if chance == 0 {
			chance = 1
		}
		if !scaling.RollChance(chance) {
			continue
		}
		res = applyEffect(res, it, damage)
	}

	return res
}

func applyEffect(res Result, it model.Item, damage int) Result {
	ef := *it.Effect

	switch ef.Kind {
	case model.EffectHeal:
		amount := int(ef.Value)
		if ef.Trigger == model.TriggerOnDamageDealt && ef.Value < 1 {
			// Fractional heal values leech off the final damage.
			amount = int(float64(damage) * ef.Value)
		}
		if amount > 0 {
			res.Player = res.Player.Heal(amount)
			res.Logs = append(res.Logs, fmt.Sprintf("%s heals you for %d", it.Name, amount))
		}

	case model.EffectDamage:
		switch ef.Trigger {
		case model.TriggerOnDamaged:
			// Retaliation damage goes straight at the enemy, not into
			// the player's attack.
			res.AdditionalDamage += int(ef.Value)
			res.Logs = append(res.Logs, fmt.Sprintf("%s lashes back for %d", it.Name, int(ef.Value)))
		default:
			res.AdditionalDamage += int(ef.Value)
			res.Logs = append(res.Logs, fmt.Sprintf("%s adds %d damage", it.Name, int(ef.Value)))
		}

	case model.EffectResource:
		r := res.Player.Resource
		r.Current += ef.Value
		r.Clamp()
		res.Player.Resource = r
		res.Logs = append(res.Logs,
			fmt.Sprintf("%s grants %d %s", it.Name, int(ef.Value), r.Type))

	case model.EffectBuff:
		bonus := model.StatBonus{
			Power: int(ef.Value * float64(res.Player.Current.Power)),
		}
		if bonus.Power < 1 {
			bonus.Power = 1
		}
		res.Player = res.Player.WithBuff(model.Buff{
			Name:           it.Name,
			Bonus:          bonus,
			RemainingTurns: BuffTurns,
		})
		res.Logs = append(res.Logs, fmt.Sprintf("%s empowers you (+%d power)", it.Name, bonus.Power))

	case model.EffectDebuff:
		res.EnemyDebuffs = append(res.EnemyDebuffs, model.StatDebuff{
			Stat:           model.StatPower,
			Reduction:      ef.Value,
			RemainingTurns: DebuffTurns,
			Source:         it.Name,
		})
		res.Logs = append(res.Logs, fmt.Sprintf("%s weakens the enemy", it.Name))

	case model.EffectSpecial:
		if ef.Trigger == model.TriggerOnLethalDamage {
			frac := ef.Value
			if frac <= 0 || frac > 1 {
				frac = 0.3
			}
			res.CheatedDeath = true
			res.CheatFrac = frac
			res.Logs = append(res.Logs, fmt.Sprintf("%s refuses to let you die", it.Name))
		}
	}

	return res
}
