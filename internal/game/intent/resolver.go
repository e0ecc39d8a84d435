// Package intent decides an enemy's next action each tick.
package intent

import (
	"fmt"
	"math/rand/v2"

	"github.com/hollowmire/descent/internal/game/scaling"
	"github.com/hollowmire/descent/internal/model"
)

// PoisonTurns is how long an ability-applied poison/bleed runs.
const PoisonTurns = 3

// Next picks the enemy's next action. Ready abilities are shuffled and
// rolled in turn against their own chance; the first success wins. The
// shuffle keeps a single high-chance ability from deterministically
// dominating while still honoring each ability's independent
// probability. If nothing is ready or nothing lands, the enemy falls
// back to a basic attack for its power.
func Next(e *model.Enemy) model.Intent {
	ready := make([]model.Ability, 0, len(e.Abilities))
	for _, a := range e.Abilities {
		if a.CurrentCooldown == 0 {
			ready = append(ready, a)
		}
	}

	rand.Shuffle(len(ready), func(i, j int) {
		ready[i], ready[j] = ready[j], ready[i]
	})

	for _, a := range ready {
		if !scaling.RollChance(a.Chance) {
			continue
		}
		return abilityIntent(e, a)
	}

	return basicAttack(e)
}

func basicAttack(e *model.Enemy) model.Intent {
	return model.Intent{
		Kind:        model.IntentAttack,
		Damage:      e.Power,
		Description: "attacks",
	}
}

func abilityIntent(e *model.Enemy, a model.Ability) model.Intent {
	in := model.Intent{
		Kind:      model.IntentAbility,
		AbilityID: a.ID,
	}

	scaled := int(float64(e.Power) * a.Magnitude)
	if scaled < 1 {
		scaled = 1
	}

	switch a.Kind {
	case model.AbilityDamage:
		in.Damage = scaled
		in.Description = fmt.Sprintf("winds up %s for %d", a.ID, scaled)
	case model.AbilityDoubleStrike:
		in.Damage = scaled * 2
		in.Description = fmt.Sprintf("prepares to strike twice for %d each", scaled)
	case model.AbilityPoison:
		in.Damage = e.Power / 2
		in.PoisonTotal = scaled * PoisonTurns
		in.Description = fmt.Sprintf("readies %s (%d over %d turns)", a.ID, in.PoisonTotal, PoisonTurns)
	case model.AbilityStun:
		in.Damage = scaled
		in.Description = "rears back for a stunning blow"
	case model.AbilityHeal:
		in.Description = "gathers itself to mend"
	case model.AbilityEnrage:
		in.Description = "works itself into a frenzy"
	case model.AbilityShield:
		in.Description = "raises a shield"
	case model.AbilitySlow:
		in.Damage = e.Power / 2
		in.Description = "aims to hamstring"
	default:
		// Unknown kind would be a content bug; fall back to an attack
		// rather than crash mid-run.
		return basicAttack(e)
	}

	return in
}
