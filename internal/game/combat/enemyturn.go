package combat

import (
	"github.com/hollowmire/descent/internal/game/intent"
	"github.com/hollowmire/descent/internal/game/path"
	"github.com/hollowmire/descent/internal/game/scaling"
	"github.com/hollowmire/descent/internal/game/stance"
	"github.com/hollowmire/descent/internal/game/status"
	"github.com/hollowmire/descent/internal/model"
)

// enemyTurn is one full enemy action: its own status tick, passive
// modifiers, intent execution, then cooldown bookkeeping and the next
// telegraphed intent.
func (s *Session) enemyTurn() {
	e := &s.state.Enemy
	if e.IsDying || s.over {
		return
	}

	res := status.TickTurnStart(e.Statuses)
	e.Statuses = res.Statuses
	for _, l := range res.Logs {
		s.log("%s suffers: %s.", e.Name, l)
	}
	if res.Damage > 0 {
		e.ApplyDamage(res.Damage)
		if e.IsDying {
			s.log("%s succumbs to its wounds.", e.Name)
			s.enemyKilled()
			return
		}
	}

	for _, m := range e.Modifiers {
		if m.RegenFrac > 0 {
			healed := e.Heal(int(float64(e.MaxHealth) * m.RegenFrac))
			if healed > 0 {
				s.log("%s knits its flesh back together (+%d).", e.Name, healed)
			}
		}
		if m.EnrageBelow > 0 && !e.IsEnraged && e.HealthFrac() <= m.EnrageBelow {
			e.IsEnraged = true
			e.Power = int(float64(e.Power) * model.SafeMultiplier(m.EnragePower))
			s.log("%s flies into a rage!", e.Name)
		}
	}

	if e.Stunned() {
		s.log("%s is stunned and loses its turn.", e.Name)
	} else {
		s.executeIntent()
		if s.over || s.state.Enemy.IsDying {
			return
		}
	}

	s.finishEnemyTurn()
}

// executeIntent resolves the telegraphed action against the player.
func (s *Session) executeIntent() {
	e := &s.state.Enemy
	in := e.Intent

	if in.Kind == model.IntentAttack {
		s.emit(model.EventAttack, e.Name, 0, false, e.Name+" attacks")
		s.enemyHit(in.Damage)
		return
	}

	a := s.startAbilityCooldown(in.AbilityID)
	if a == nil {
		// Stale intent after generation edge cases; attack instead.
		s.enemyHit(e.Power)
		return
	}
	s.emit(model.EventAttack, e.Name, 0, false, e.Name+" uses "+a.ID)

	switch a.Kind {
	case model.AbilityDamage:
		s.enemyHit(in.Damage)

	case model.AbilityDoubleStrike:
		per := in.Damage / 2
		s.enemyHit(per)
		if !s.over {
			s.enemyHit(per)
		}

	case model.AbilityPoison:
		s.enemyHit(in.Damage)
		if !s.over {
			perTurn := in.PoisonTotal / intent.PoisonTurns
			if perTurn < 1 {
				perTurn = 1
			}
			p := s.state.Player
			p.Statuses = status.Apply(p.Statuses, model.StatusEffect{
				Kind:           model.StatusPoison,
				Magnitude:      perTurn,
				RemainingTurns: intent.PoisonTurns,
				Source:         a.ID,
			})
			s.state.Player = p
			s.log("Venom seeps into your veins (%d per turn).", perTurn)
		}

	case model.AbilityStun:
		s.enemyHit(in.Damage)
		if !s.over {
			p := s.state.Player
			p.Statuses = status.Apply(p.Statuses, model.StatusEffect{
				Kind:           model.StatusStun,
				RemainingTurns: 2,
				Source:         a.ID,
			})
			s.state.Player = p
			s.log("You are stunned!")
		}

	case model.AbilitySlow:
		s.enemyHit(in.Damage)
		if !s.over {
			p := s.state.Player
			p.Statuses = status.Apply(p.Statuses, model.StatusEffect{
				Kind:           model.StatusSlow,
				Magnitude:      int(a.Magnitude * 100),
				RemainingTurns: 3,
				Source:         a.ID,
			})
			s.state.Player = p
			s.log("Your legs are hamstrung; you slow down.")
		}

	case model.AbilityHeal:
		healed := e.Heal(int(float64(e.MaxHealth) * a.Magnitude))
		s.log("%s mends itself (+%d).", e.Name, healed)

	case model.AbilityEnrage:
		e.Power = int(float64(e.Power) * (1.0 + a.Magnitude))
		s.log("%s grows stronger!", e.Name)

	case model.AbilityShield:
		e.IsShielded = true
		s.log("%s raises a shield.", e.Name)

	default:
		s.enemyHit(in.Damage)
	}
}

// enemyHit lands one enemy hit on the player: dodge, stance auto-block,
// armor mitigation, lethal-damage handling, then retaliation effects.
func (s *Session) enemyHit(base int) {
	if base < 1 {
		base = 1
	}
	e := &s.state.Enemy
	p := s.state.Player

	if scaling.RollChance(p.Current.Dodge) {
		s.emit(model.EventDodge, "player", 0, false, "You dodge")
		s.log("You dodge %s's attack.", e.Name)
		return
	}

	stanceFx := stance.Modifiers(p)
	if bw := stance.BehaviorWeight(stanceFx, model.BehaviorAutoBlock); bw > 0 && scaling.RollChance(bw) {
		p.Resource, _ = path.Gain(p.Resource, model.ResourceOnBlock)
		s.state.Player = p
		s.log("You block %s's attack.", e.Name)
		return
	}

	dmg := int(float64(base) * scaling.RandomDamageMultiplier())
	effArmor := status.EffectiveStat(p.Current.Armor, model.StatArmor, p.Debuffs)
	dmg = scaling.MitigateDamage(dmg, effArmor)

	if s.debug.Invincible() {
		dmg = 0
	}

	survived := true
	if dmg > 0 {
		p, survived = s.handleLethalDamage(p, dmg)
	}
	s.state.Player = p
	s.emit(model.EventHit, e.Name, dmg, false, "")
	s.log("%s hits you for %d.", e.Name, dmg)

	if !survived {
		s.playerDefeated("killed by " + e.Name)
		return
	}

	// Vampiric enemies drink from what they deal.
	for _, m := range e.Modifiers {
		if m.Lifesteal > 0 && dmg > 0 {
			healed := e.Heal(int(float64(dmg) * m.Lifesteal))
			if healed > 0 {
				s.log("%s drinks deep (+%d).", e.Name, healed)
			}
		}
	}

	// Being hit is an economy event, then item retaliation, then the
	// stance's counter/reflect responses.
	p = s.state.Player
	p.Resource, _ = path.Gain(p.Resource, model.ResourceOnDamaged)
	s.state.Player = p

	res := s.runTriggers(model.TriggerOnDamaged, dmg)
	if res.AdditionalDamage > 0 {
		applied := s.state.Enemy.ApplyDamage(res.AdditionalDamage)
		s.emit(model.EventHit, "player", applied, false, "retaliation")
	}

	if rf := stance.BehaviorWeight(stanceFx, model.BehaviorReflect); rf > 0 && dmg > 0 {
		back := int(float64(dmg) * rf)
		if back > 0 {
			applied := s.state.Enemy.ApplyDamage(back)
			s.log("You turn %d damage back on %s.", applied, e.Name)
		}
	}
	if cw := stance.BehaviorWeight(stanceFx, model.BehaviorCounter); cw > 0 && scaling.RollChance(cw) {
		counter := scaling.MitigateDamage(
			int(float64(s.state.Player.Current.Power)*scaling.RandomDamageMultiplier()),
			status.EffectiveStat(s.state.Enemy.Armor, model.StatArmor, s.state.Enemy.Debuffs))
		applied := s.state.Enemy.ApplyDamage(counter)
		s.emit(model.EventHit, "player", applied, false, "counter")
		s.log("You counterattack for %d.", applied)
	}

	if s.state.Enemy.IsDying {
		s.enemyKilled()
	}
}

// startAbilityCooldown puts the named ability on cooldown and returns
// it, or nil if the enemy no longer has it.
func (s *Session) startAbilityCooldown(id string) *model.Ability {
	e := &s.state.Enemy
	for i := range e.Abilities {
		if e.Abilities[i].ID == id {
			e.Abilities[i].CurrentCooldown = e.Abilities[i].Cooldown
			return &e.Abilities[i]
		}
	}
	return nil
}

// finishEnemyTurn pays down ability cooldowns and debuff durations and
// telegraphs the next intent.
func (s *Session) finishEnemyTurn() {
	e := &s.state.Enemy
	if e.IsDying {
		return
	}
	for i := range e.Abilities {
		if e.Abilities[i].CurrentCooldown > 0 {
			e.Abilities[i].CurrentCooldown--
		}
	}
	e.Debuffs = status.TickDebuffs(e.Debuffs)
	e.Intent = intent.Next(e)
}
