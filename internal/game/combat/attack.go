package combat

import (
	"github.com/hollowmire/descent/internal/game/path"
	"github.com/hollowmire/descent/internal/game/scaling"
	"github.com/hollowmire/descent/internal/game/stance"
	"github.com/hollowmire/descent/internal/game/status"
	"github.com/hollowmire/descent/internal/game/trigger"
	"github.com/hollowmire/descent/internal/model"
)

func slowFactor(statuses []model.StatusEffect) float64 {
	return status.SlowFactor(statuses)
}

func applyEnemyDebuff(debuffs []model.StatDebuff, d model.StatDebuff) []model.StatDebuff {
	return status.ApplyDebuff(debuffs, d)
}

// playerTurn is one full player action: turn-start effects, then the
// attack itself, then hit effects and death handling.
func (s *Session) playerTurn() {
	s.playerTurnStart()
	if s.over || s.state.Enemy.IsDying {
		return
	}

	if s.state.Player.Stunned() {
		s.log("You are stunned and lose your attack.")
		return
	}

	s.resolvePlayerAttack()
}

// playerTurnStart ticks the player's own statuses, buff durations and
// turn-start item effects.
func (s *Session) playerTurnStart() {
	s.runTriggers(model.TriggerTurnStart, 0)

	p := s.state.Player
	res := status.TickTurnStart(p.Statuses)
	p.Statuses = res.Statuses
	for _, l := range res.Logs {
		s.log("%s", l)
	}
	if res.Damage > 0 && !s.debug.Invincible() {
		p = p.Damage(res.Damage)
	}
	p.Debuffs = status.TickDebuffs(p.Debuffs)

	if len(p.Buffs) > 0 {
		buffs := make([]model.Buff, 0, len(p.Buffs))
		for _, b := range p.Buffs {
			b.RemainingTurns--
			if b.RemainingTurns > 0 {
				buffs = append(buffs, b)
			}
		}
		p.Buffs = buffs
	}
	s.state.Player = p
	s.recalcPlayer()

	if s.state.Player.IsDead() {
		s.playerDefeated("succumbed to wounds")
	}
}

// resolvePlayerAttack runs one attack: crit roll, item effect
// composition (on_crit first, then on_hit, lifesteal last), stance and
// resource bonuses, armor mitigation, and kill handling.
func (s *Session) resolvePlayerAttack() {
	p := s.state.Player
	e := &s.state.Enemy

	s.emit(model.EventAttack, "player", 0, false, "You attack")

	// Enemies sidestep rarely; speed makes them slipperier.
	enemyDodge := scaling.DodgeChance(0.03, e.Speed*slowFactor(e.Statuses))
	if scaling.RollChance(enemyDodge) {
		s.emit(model.EventDodge, e.Name, 0, false, e.Name+" dodges")
		s.log("%s slips away from your attack.", e.Name)
		return
	}

	effPower := status.EffectiveStat(p.Current.Power, model.StatPower, p.Debuffs)

	// Guaranteed-crit special: armed at the resource cap, consumed by
	// this attack, adds its burst multiplier on top of the crit.
	burst := 1.0
	crit := s.debug.ForceCrit() || scaling.RollChance(p.Current.CritChance)
	if res, t, ok := path.TakeSpecial(p.Resource, model.ThresholdSpecialGuaranteedCrit); ok {
		p.Resource = res
		s.state.Player = p
		crit = true
		if t.Amount > 1 {
			burst = t.Amount
		}
		s.log("Your charges detonate in a guaranteed critical!")
	}

	dmg := scaling.AttackDamage(effPower, crit, p.Current.CritDamage)
	dmg = int(float64(dmg) * burst)

	// Crit effects resolve first so their delta feeds the hit pass.
	if crit {
		res := s.runTriggers(model.TriggerOnCrit, dmg)
		dmg += res.AdditionalDamage
	}
	hitRes := s.runTriggers(model.TriggerOnHit, dmg)
	dmg += hitRes.AdditionalDamage

	stanceFx := stance.Modifiers(s.state.Player)
	dmg = int(float64(dmg) * stance.DamageBonus(stanceFx) * path.DamageBonus(s.state.Player.Resource))

	// Execute special: finishes a weakened enemy outright and resets
	// every power cooldown.
	if path.HasSpecial(s.state.Player.Resource, model.ThresholdSpecialExecute) {
		if res, t, ok := path.TakeSpecial(s.state.Player.Resource, model.ThresholdSpecialExecute); ok && s.state.Enemy.HealthFrac() <= t.Amount {
			p = s.state.Player
			p.Resource = res
			powers := make([]model.Power, len(p.Powers))
			copy(powers, p.Powers)
			for i := range powers {
				powers[i].RemainingCooldownMs = 0
			}
			p.Powers = powers
			s.state.Player = p

			killed := s.state.Enemy.Health
			s.state.Enemy.ApplyDamage(killed)
			s.emit(model.EventHit, "player", killed, true, "Execute!")
			s.log("You execute %s!", s.state.Enemy.Name)
			s.enemyKilled()
			return
		}
	}

	effArmor := status.EffectiveStat(s.state.Enemy.Armor, model.StatArmor, s.state.Enemy.Debuffs)
	dmg = scaling.MitigateDamage(dmg, effArmor)

	// A raised shield absorbs one hit at half damage.
	if s.state.Enemy.IsShielded {
		dmg /= 2
		if dmg < 1 {
			dmg = 1
		}
		s.state.Enemy.IsShielded = false
		s.log("%s's shield shatters.", s.state.Enemy.Name)
	}

	applied := s.state.Enemy.ApplyDamage(dmg)
	s.emit(model.EventHit, "player", applied, crit, "")

	// Resource economy for landing the hit.
	p = s.state.Player
	p.Resource, _ = path.Gain(p.Resource, model.ResourceOnHit)
	if crit {
		p.Resource, _ = path.Gain(p.Resource, model.ResourceOnCrit)
	}
	s.state.Player = p

	// Stance lifesteal.
	if ls := stance.BehaviorWeight(stanceFx, model.BehaviorLifesteal); ls > 0 {
		heal := int(float64(applied) * ls)
		if heal > 0 {
			s.state.Player = s.state.Player.Heal(heal)
		}
	}

	// Thorned enemies return a cut of what they take.
	for _, m := range s.state.Enemy.Modifiers {
		if m.Reflect > 0 && applied > 0 && !s.debug.Invincible() {
			back := int(float64(applied) * m.Reflect)
			if back > 0 {
				s.state.Player = s.state.Player.Damage(back)
				s.log("%s's thorns tear you for %d.", s.state.Enemy.Name, back)
			}
		}
	}

	// Lifesteal-style effects fire last, once final damage is known.
	s.runTriggers(model.TriggerOnDamageDealt, applied)

	if s.state.Enemy.IsDying {
		s.enemyKilled()
		return
	}
	if s.state.Player.IsDead() {
		s.playerDefeated("killed by " + s.state.Enemy.Name)
	}
}

// resolvePowerDamage applies a damage power to the enemy.
func (s *Session) resolvePowerDamage(pw model.Power) {
	p := s.state.Player
	effPower := status.EffectiveStat(p.Current.Power, model.StatPower, p.Debuffs)

	dmg := int(float64(effPower) * pw.Magnitude * scaling.RandomDamageMultiplier())
	dmg = int(float64(dmg) * path.DamageBonus(p.Resource))

	effArmor := status.EffectiveStat(s.state.Enemy.Armor, model.StatArmor, s.state.Enemy.Debuffs)
	dmg = scaling.MitigateDamage(dmg, effArmor)

	applied := s.state.Enemy.ApplyDamage(dmg)
	s.emit(model.EventHit, pw.Name, applied, false, "")
	s.log("%s hits %s for %d.", pw.Name, s.state.Enemy.Name, applied)

	if s.state.Enemy.IsDying {
		s.enemyKilled()
	}
}

// playerDefeated ends the run.
func (s *Session) playerDefeated(cause string) {
	if s.debug.Invincible() {
		s.state.Player = s.state.Player.WithHealth(1)
		return
	}
	s.over = true
	s.victory = false
	s.emit(model.EventDeath, "player", 0, false, cause)
	s.log("You fall. The dungeon claims another.")
}

// handleLethalDamage routes incoming killing blows through
// on_lethal_damage effects before accepting death. Returns the updated
// player and whether death was averted.
func (s *Session) handleLethalDamage(p model.Player, incoming int) (model.Player, bool) {
	if incoming < p.Health {
		return p.Damage(incoming), true
	}
	res := trigger.Process(model.TriggerOnLethalDamage, p, incoming)
	for _, l := range res.Logs {
		s.log("%s", l)
	}
	if res.CheatedDeath {
		p = res.Player.WithHealth(int(float64(res.Player.Current.MaxHealth) * res.CheatFrac))
		return p, true
	}
	return p.WithHealth(0), false
}
