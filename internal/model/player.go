package model

import "slices"

// PowerEffect is what a player power does on cast.
type PowerEffect int8

const (
	PowerDamage PowerEffect = iota
	PowerHeal
	PowerBuff
)

// Power is a player active. Cooldowns are wall-clock milliseconds, paid
// down by the tick loop.
type Power struct {
	ID                  string
	Name                string
	Cost                float64
	CooldownMs          int
	RemainingCooldownMs int
	Effect              PowerEffect
	Magnitude           float64
	UpgradeLevel        int
}

// Ready reports whether the power is off cooldown.
func (p Power) Ready() bool { return p.RemainingCooldownMs <= 0 }

// Buff is a timed stat bonus on the player.
type Buff struct {
	Name           string
	Bonus          StatBonus
	RemainingTurns int
}

// Player is the run-scoped player character. It is treated as a value:
// combat code updates a copy and returns it, callers replace the whole
// snapshot. Slice and map fields must be cloned before mutation; the
// With* helpers below do that.
type Player struct {
	PathID string
	Level  int
	XP     int
	Gold   int

	Health  int
	Base    Stats
	Current Stats

	Equipped map[Slot]Item
	Buffs    []Buff
	Statuses []StatusEffect
	Debuffs  []StatDebuff
	Powers   []Power

	Resource PathResource

	StanceID                 string
	StanceCooldownMs         int
	PendingStanceEnhancement string
	StanceEnhancementID      string

	InCombat bool
}

// Item returns the equipped item for a slot.
func (p Player) Item(slot Slot) (Item, bool) {
	it, ok := p.Equipped[slot]
	return it, ok
}

// WithItem returns a copy with the slot replaced (map cloned).
func (p Player) WithItem(it Item) Player {
	eq := make(map[Slot]Item, len(p.Equipped)+1)
	for s, v := range p.Equipped {
		eq[s] = v
	}
	eq[it.Slot] = it
	p.Equipped = eq
	return p
}

// WithBuff returns a copy with the buff appended (slice cloned).
func (p Player) WithBuff(b Buff) Player {
	p.Buffs = append(slices.Clone(p.Buffs), b)
	return p
}

// WithHealth returns a copy with health clamped to [0, max].
func (p Player) WithHealth(h int) Player {
	if h < 0 {
		h = 0
	}
	if h > p.Current.MaxHealth {
		h = p.Current.MaxHealth
	}
	p.Health = h
	return p
}

// Heal returns a copy healed by amount, clamped to max health.
func (p Player) Heal(amount int) Player {
	if amount <= 0 {
		return p
	}
	return p.WithHealth(p.Health + amount)
}

// Damage returns a copy with health reduced, floored at 0.
func (p Player) Damage(amount int) Player {
	if amount <= 0 {
		return p
	}
	return p.WithHealth(p.Health - amount)
}

// IsDead reports whether health reached 0.
func (p Player) IsDead() bool { return p.Health <= 0 }

// Stunned reports whether a stun status is active.
func (p Player) Stunned() bool {
	for _, s := range p.Statuses {
		if s.Kind == StatusStun && s.RemainingTurns > 0 {
			return true
		}
	}
	return false
}

// Derive recomputes the current stat block from base stats, equipped
// item bonuses (including passive item effects), active buffs and the
// active stance's stat/damage lines.
// Debuffs are not folded in here: they multiply at read time so that
// expiry never needs a recompute (see the status package).
func (p Player) Derive(stanceEffects []StanceEffect) Stats {
	out := p.Base
	for _, it := range p.Equipped {
		out = out.Add(it.Bonus)
	}
	// Passive item effects are standing modifiers, not event-driven
	// ones: folding them in here means equipping, salvaging and
	// level-ups all pick them up with no duration to track. The
	// fraction reads off the item-inclusive block so two passives
	// never depend on map iteration order.
	withItems := out
	for _, it := range p.Equipped {
		ef := it.Effect
		if ef == nil || ef.Trigger != TriggerPassive || ef.Kind != EffectBuff {
			continue
		}
		bonus := int(ef.Value * float64(withItems.Power))
		if bonus < 1 {
			bonus = 1
		}
		out.Power += bonus
		out.Armor += int(ef.Value * float64(withItems.Armor))
	}
	for _, b := range p.Buffs {
		out = out.Add(b.Bonus)
	}
	for _, ef := range stanceEffects {
		if ef.Kind != StanceStatModifier {
			continue
		}
		switch ef.Stat {
		case StatPower:
			out.Power += int(ef.Flat + float64(out.Power)*ef.Percent)
		case StatArmor:
			out.Armor += int(ef.Flat + float64(out.Armor)*ef.Percent)
		case StatMaxHealth:
			out.MaxHealth += int(ef.Flat + float64(out.MaxHealth)*ef.Percent)
		case StatSpeed:
			out.Speed += ef.Flat + out.Speed*ef.Percent
		case StatCritChance:
			out.CritChance += ef.Flat + ef.Percent
		case StatCritDamage:
			out.CritDamage += ef.Flat + ef.Percent
		case StatDodge:
			out.Dodge += ef.Flat + ef.Percent
		}
	}
	out.CritChance = ClampChance(out.CritChance)
	out.Dodge = ClampChance(out.Dodge)
	if out.CritDamage < 1 {
		out.CritDamage = 1
	}
	if out.MaxHealth < 1 {
		out.MaxHealth = 1
	}
	if out.Power < 1 {
		out.Power = 1
	}
	if out.Armor < 0 {
		out.Armor = 0
	}
	return out
}
