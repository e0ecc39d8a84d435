// Package combat composes the simulation: it owns the player/enemy
// pair and resolves one tick at a time. External callers read immutable
// snapshots and send back discrete intents; nothing in here performs
// I/O or suspends.
package combat

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/hollowmire/descent/internal/config"
	"github.com/hollowmire/descent/internal/data"
	"github.com/hollowmire/descent/internal/game/enemygen"
	"github.com/hollowmire/descent/internal/game/path"
	"github.com/hollowmire/descent/internal/game/scaling"
	"github.com/hollowmire/descent/internal/game/stance"
	"github.com/hollowmire/descent/internal/game/trigger"
	"github.com/hollowmire/descent/internal/model"
)

// Attack pacing: a combatant at speed 1.0 acts once per interval.
const baseAttackIntervalMs = 1500

// Session is one run of the simulator. It is single-threaded: callers
// drive it through Advance and the intent methods from one goroutine.
type Session struct {
	cfg   config.Sim
	gen   *enemygen.Generator
	debug *DebugController

	state model.GameState
	theme model.FloorTheme

	attacking     bool
	attackCarryMs int
	enemyCarryMs  int

	over    bool
	victory bool

	events []model.CombatEvent
	logs   []string
}

// NewSession starts a run for the given path. An unknown path id is a
// caller error, not a content bug, so it returns an error instead of
// panicking.
func NewSession(cfg config.Sim, pathID string, dbg *DebugController) (*Session, error) {
	def, ok := data.GetPathDef(pathID)
	if !ok {
		return nil, fmt.Errorf("unknown path %q", pathID)
	}

	s := &Session{
		cfg:   cfg,
		gen:   enemygen.New(scaling.ForMode(cfg.ScalingMode), cfg.FinalFloor, cfg.Rates),
		debug: dbg,
	}

	p := model.Player{
		PathID:   def.ID,
		Level:    1,
		Base:     def.BaseStats,
		Powers:   slices.Clone(def.Powers),
		Resource: def.Resource,
		StanceID: def.Stances[0].ID,
	}
	p.Current = p.Derive(stance.Modifiers(p))
	p.Health = p.Current.MaxHealth

	s.state = model.GameState{
		Player:        p,
		Floor:         1,
		Room:          1,
		RoomsPerFloor: max(cfg.RoomsPerFloor, 1),
	}
	s.theme = data.RandomTheme()
	s.spawnEnemy()

	slog.Info("run started", "path", def.ID, "theme", s.theme.ID)
	return s, nil
}

// Cfg returns the session's configuration.
func (s *Session) Cfg() config.Sim { return s.cfg }

// State returns a snapshot of the whole game state. Slices inside are
// not deep-copied; callers treat snapshots as read-only.
func (s *Session) State() model.GameState { return s.state }

// Over reports whether the run has ended.
func (s *Session) Over() bool { return s.over }

// Victory reports whether the run ended with the final boss dead.
func (s *Session) Victory() bool { return s.victory }

// DrainEvents returns and clears the pending combat events. The feed
// drives animation only; it never feeds back into the simulation.
func (s *Session) DrainEvents() []model.CombatEvent {
	out := s.events
	s.events = nil
	return out
}

// DrainLogs returns and clears pending combat log lines.
func (s *Session) DrainLogs() []string {
	out := s.logs
	s.logs = nil
	return out
}

// StartAttackTick engages auto-attacking.
func (s *Session) StartAttackTick() {
	s.attacking = true
	s.state.Player.InCombat = true
}

// StopAttackTick disengages auto-attacking. With the tick disengaged
// the player counts as out of combat, so idle-only resource decay
// starts running.
func (s *Session) StopAttackTick() {
	s.attacking = false
	s.state.Player.InCombat = false
}

// SwitchStance attempts a stance switch; a cooldown or a single-stance
// path makes it a no-op. Returns whether the stance changed.
func (s *Session) SwitchStance(stanceID string) bool {
	p, changed := stance.Switch(s.state.Player, stanceID)
	if changed {
		p.Current = p.Derive(stance.Modifiers(p))
		s.log("You settle into the %s stance.", stanceID)
	}
	s.state.Player = p
	return changed
}

// ApplyUpgrade spends gold on a shop upgrade. Unknown ids and
// insufficient gold are caller errors.
func (s *Session) ApplyUpgrade(upgradeID string) error {
	def, ok := data.GetUpgradeDef(upgradeID)
	if !ok {
		return fmt.Errorf("unknown upgrade %q", upgradeID)
	}
	p := s.state.Player
	if p.Gold < def.Cost {
		return fmt.Errorf("upgrade %q costs %d gold, have %d", upgradeID, def.Cost, p.Gold)
	}
	p.Gold -= def.Cost

	if def.MagnitudeBump > 0 {
		powers := slices.Clone(p.Powers)
		idx := 0
		if def.PowerID != "" {
			idx = slices.IndexFunc(powers, func(pw model.Power) bool { return pw.ID == def.PowerID })
			if idx < 0 {
				return fmt.Errorf("upgrade %q targets unknown power %q", upgradeID, def.PowerID)
			}
		}
		powers[idx].UpgradeLevel++
		powers[idx].Magnitude += def.MagnitudeBump
		p.Powers = powers
	} else {
		p.Base = p.Base.Add(def.Bonus)
	}

	p.Current = p.Derive(stance.Modifiers(p))
	if p.Health > p.Current.MaxHealth {
		p.Health = p.Current.MaxHealth
	}
	s.state.Player = p
	slog.Info("upgrade applied", "upgrade", upgradeID, "gold_left", p.Gold)
	return nil
}

// SelectStanceEnhancement resolves a pending boss-kill enhancement
// offer.
func (s *Session) SelectStanceEnhancement(choiceID string) error {
	p := s.state.Player
	if p.PendingStanceEnhancement == "" {
		return fmt.Errorf("no stance enhancement pending")
	}
	if _, ok := data.GetStanceEnhancement(choiceID); !ok {
		return fmt.Errorf("unknown stance enhancement %q", choiceID)
	}
	p.StanceEnhancementID = choiceID
	p.PendingStanceEnhancement = ""
	p.Current = p.Derive(stance.Modifiers(p))
	s.state.Player = p
	s.log("Your stance is enhanced: %s.", choiceID)
	return nil
}

// UsePower casts a player power, paying its (threshold-reduced)
// resource cost and starting its cooldown.
func (s *Session) UsePower(powerID string) error {
	p := s.state.Player
	idx := slices.IndexFunc(p.Powers, func(pw model.Power) bool { return pw.ID == powerID })
	if idx < 0 {
		return fmt.Errorf("unknown power %q", powerID)
	}
	pw := p.Powers[idx]
	if !pw.Ready() {
		return fmt.Errorf("power %q is on cooldown", powerID)
	}

	cost := pw.Cost * (1.0 - path.CostReduction(p.Resource))
	res, ok := path.Spend(p.Resource, cost)
	if !ok {
		return fmt.Errorf("power %q costs %.0f %s, have %.0f",
			powerID, cost, p.Resource.Type, p.Resource.Current)
	}
	p.Resource = res

	powers := slices.Clone(p.Powers)
	powers[idx].RemainingCooldownMs = pw.CooldownMs
	p.Powers = powers

	s.state.Player = p
	s.emit(model.EventPowerCast, pw.Name, 0, false, fmt.Sprintf("You cast %s", pw.Name))

	switch pw.Effect {
	case model.PowerDamage:
		s.resolvePowerDamage(pw)
	case model.PowerHeal:
		heal := int(float64(s.state.Player.Current.MaxHealth) * pw.Magnitude)
		s.state.Player = s.state.Player.Heal(heal)
		s.log("%s restores %d health.", pw.Name, heal)
	case model.PowerBuff:
		bonus := model.StatBonus{Power: int(pw.Magnitude * float64(s.state.Player.Current.Power))}
		s.state.Player = s.state.Player.WithBuff(model.Buff{
			Name: pw.Name, Bonus: bonus, RemainingTurns: trigger.BuffTurns,
		})
		s.recalcPlayer()
		s.log("%s empowers you.", pw.Name)
	}

	// Cast-driven economy: resource from the cast itself, then item
	// effects that key off casting.
	p = s.state.Player
	p.Resource, _ = path.Gain(p.Resource, model.ResourceOnPowerUse)
	s.state.Player = p
	s.runTriggers(model.TriggerOnPowerCast, 0)
	return nil
}

// Advance moves the simulation forward by elapsed wall-clock
// milliseconds. Cooldowns and decay are time-based, so a paused loop
// simply stops calling Advance and nothing is penalized.
func (s *Session) Advance(elapsedMs int) {
	if s.over || elapsedMs <= 0 {
		return
	}

	s.tickClocks(elapsedMs)

	if s.attacking && !s.state.Enemy.IsDying {
		s.attackCarryMs += elapsedMs
		interval := s.playerAttackIntervalMs()
		for s.attackCarryMs >= interval && !s.over && !s.state.Enemy.IsDying {
			s.attackCarryMs -= interval
			s.playerTurn()
			interval = s.playerAttackIntervalMs()
		}
	}

	if !s.state.Enemy.IsDying && !s.over {
		s.enemyCarryMs += elapsedMs
		interval := s.enemyAttackIntervalMs()
		for s.enemyCarryMs >= interval && !s.over && !s.state.Enemy.IsDying {
			s.enemyCarryMs -= interval
			s.enemyTurn()
			interval = s.enemyAttackIntervalMs()
		}
	}
}

func (s *Session) tickClocks(elapsedMs int) {
	p := s.state.Player
	if len(p.Powers) > 0 {
		powers := slices.Clone(p.Powers)
		for i := range powers {
			if powers[i].RemainingCooldownMs > 0 {
				powers[i].RemainingCooldownMs -= elapsedMs
				if powers[i].RemainingCooldownMs < 0 {
					powers[i].RemainingCooldownMs = 0
				}
			}
		}
		p.Powers = powers
	}
	p = stance.TickCooldown(p, elapsedMs)
	p.Resource = path.DecayTick(p.Resource, elapsedMs, p.InCombat)
	s.state.Player = p
}

func (s *Session) playerAttackIntervalMs() int {
	speed := s.state.Player.Current.Speed
	if speed <= 0 {
		speed = 1.0
	}
	return int(float64(baseAttackIntervalMs) / speed)
}

func (s *Session) enemyAttackIntervalMs() int {
	e := &s.state.Enemy
	speed := e.Speed * slowFactor(e.Statuses)
	if speed <= 0.1 {
		speed = 0.1
	}
	return int(float64(baseAttackIntervalMs) / speed)
}

// recalcPlayer re-derives current stats after buffs/items change,
// clamping health to the possibly-smaller max.
func (s *Session) recalcPlayer() {
	p := s.state.Player
	p.Current = p.Derive(stance.Modifiers(p))
	if p.Health > p.Current.MaxHealth {
		p.Health = p.Current.MaxHealth
	}
	s.state.Player = p
}

func (s *Session) emit(kind model.EventKind, source string, amount int, crit bool, text string) {
	s.events = append(s.events, model.CombatEvent{
		Kind:   kind,
		At:     time.Now(),
		Source: source,
		Amount: amount,
		Crit:   crit,
		Text:   text,
	})
}

func (s *Session) log(format string, args ...any) {
	s.logs = append(s.logs, fmt.Sprintf(format, args...))
}

// runTriggers runs an item-trigger pass and folds the result back into
// session state. Returns the trigger result for callers that need the
// damage delta.
func (s *Session) runTriggers(tr model.Trigger, damage int) trigger.Result {
	res := trigger.Process(tr, s.state.Player, damage)
	s.state.Player = res.Player
	for _, d := range res.EnemyDebuffs {
		s.state.Enemy.Debuffs = applyEnemyDebuff(s.state.Enemy.Debuffs, d)
	}
	for _, l := range res.Logs {
		s.log("%s", l)
	}
	return res
}
