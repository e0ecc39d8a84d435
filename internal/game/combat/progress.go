package combat

import (
	"log/slog"

	"github.com/hollowmire/descent/internal/data"
	"github.com/hollowmire/descent/internal/game/path"
	"github.com/hollowmire/descent/internal/game/reward"
	"github.com/hollowmire/descent/internal/model"
)

// Per-level growth on leveling up. Leveling also heals to full.
const (
	levelHealthGrowth = 6
	levelPowerGrowth  = 1
)

// spawnEnemy generates the current room's opponent and fires
// combat-start item effects.
func (s *Session) spawnEnemy() {
	s.state.Enemy = *s.gen.Generate(s.state.Floor, s.state.Room, s.state.RoomsPerFloor, &s.theme)
	s.enemyCarryMs = 0

	// In-combat tracks attack engagement, so disengaging the tick is
	// what lets idle-only resource decay run.
	p := s.state.Player
	p.InCombat = s.attacking
	s.state.Player = p

	s.log("%s emerges.", s.state.Enemy.Name)
	s.runTriggers(model.TriggerCombatStart, 0)
}

// enemyKilled settles a kill: economy events, rewards, drops, level
// ups, then room/floor advancement.
func (s *Session) enemyKilled() {
	e := s.state.Enemy
	s.emit(model.EventDeath, e.Name, 0, false, e.Name+" dies")
	s.log("%s is slain.", e.Name)

	p := s.state.Player
	p.Resource, _ = path.Gain(p.Resource, model.ResourceOnKill)

	// A full-heal special armed at the kill moment spends itself here.
	if res, _, ok := path.TakeSpecial(p.Resource, model.ThresholdSpecialFullHeal); ok {
		p.Resource = res
		p = p.WithHealth(p.Current.MaxHealth)
		s.log("Your %s surges and restores you completely!", p.Resource.Type)
	}
	s.state.Player = p

	s.runTriggers(model.TriggerOnKill, 0)

	s.grantRewards(e)
	s.rollKillDrop(e)

	if e.IsBoss() {
		p = s.state.Player
		p.PendingStanceEnhancement = "available"
		s.state.Player = p
		s.log("The boss's fall leaves power in the air. Choose an enhancement.")
	}

	if e.IsFinalBoss() {
		s.over = true
		s.victory = true
		s.log("The Hollow Sovereign is destroyed. The descent is over.")
		slog.Info("run won", "floor", s.state.Floor, "level", s.state.Player.Level)
		return
	}

	s.advanceRoom()
}

// grantRewards pays out XP and gold, penalized when over-leveled, and
// resolves level ups.
func (s *Session) grantRewards(e model.Enemy) {
	p := s.state.Player
	xp := reward.ApplyLevelPenalty(e.XPReward, p.Level, s.state.Floor)
	gold := reward.ApplyLevelPenalty(e.GoldReward, p.Level, s.state.Floor)

	p.XP += xp
	p.Gold += gold
	s.log("You gain %d experience and %d gold.", xp, gold)

	newLevel := data.LevelForXP(p.XP, p.Level)
	leveled := newLevel > p.Level
	for p.Level < newLevel {
		p.Level++
		p.Base.MaxHealth += levelHealthGrowth
		p.Base.Power += levelPowerGrowth
		s.log("You reach level %d!", p.Level)
	}
	s.state.Player = p
	if leveled {
		s.recalcPlayer()
		// Leveling restores the player fully.
		s.state.Player = s.state.Player.WithHealth(s.state.Player.Current.MaxHealth)
	}
}

// rollKillDrop rolls the kill's item drop and applies the equip policy:
// a strictly better rarity in the slot is equipped, anything else is
// salvaged for gold.
func (s *Session) rollKillDrop(e model.Enemy) {
	it, pity, dropped := reward.RollDrop(e.Tier, s.state.Floor, s.state.Pity, s.cfg.Rates)
	s.state.Pity = pity
	if !dropped {
		return
	}

	p := s.state.Player
	current, has := p.Item(it.Slot)
	if !has || it.Rarity > current.Rarity {
		p = p.WithItem(it)
		s.state.Player = p
		s.recalcPlayer()
		s.log("You equip %s (%s).", it.Name, it.Rarity)
		return
	}

	salvage := 5 * (int(it.Rarity) + 1)
	p.Gold += salvage
	s.state.Player = p
	s.log("You salvage %s for %d gold.", it.Name, salvage)
}

// advanceRoom moves to the next room, rolling over floors and themes.
func (s *Session) advanceRoom() {
	s.state.Room++
	if s.state.Room > s.state.RoomsPerFloor {
		s.state.Room = 1
		s.state.Floor++
		s.theme = data.RandomTheme()
		s.log("You descend to floor %d: %s.", s.state.Floor, s.theme.Name)
		slog.Info("floor reached", "floor", s.state.Floor, "theme", s.theme.ID)
	}

	s.spawnEnemy()
}
