package model

// Tier is the enemy rarity/strength class.
type Tier int8

const (
	TierCommon Tier = iota
	TierUncommon
	TierRare
	TierBoss
	TierFinalBoss
)

func (t Tier) String() string {
	switch t {
	case TierCommon:
		return "common"
	case TierUncommon:
		return "uncommon"
	case TierRare:
		return "rare"
	case TierBoss:
		return "boss"
	case TierFinalBoss:
		return "final-boss"
	default:
		return "unknown"
	}
}

// IsBoss reports whether the tier is boss or final boss.
func (t Tier) IsBoss() bool { return t == TierBoss || t == TierFinalBoss }

// AbilityKind enumerates what an enemy ability does when it lands.
type AbilityKind int8

const (
	AbilityDamage AbilityKind = iota
	AbilityPoison
	AbilityStun
	AbilityHeal
	AbilityEnrage
	AbilityShield
	AbilityDoubleStrike
	AbilitySlow
)

func (k AbilityKind) String() string {
	switch k {
	case AbilityDamage:
		return "damage"
	case AbilityPoison:
		return "poison"
	case AbilityStun:
		return "stun"
	case AbilityHeal:
		return "heal"
	case AbilityEnrage:
		return "enrage"
	case AbilityShield:
		return "shield"
	case AbilityDoubleStrike:
		return "double_strike"
	case AbilitySlow:
		return "slow"
	default:
		return "unknown"
	}
}

// Ability is an enemy attack option. Magnitude scales off the enemy's
// power, Cooldown counts turns, Chance is the per-roll success
// probability when the ability is ready.
type Ability struct {
	ID              string
	Kind            AbilityKind
	Magnitude       float64
	Cooldown        int
	CurrentCooldown int
	Chance          float64
}

// Modifier is a named bundle of passive effects attached to rare/boss
// enemies. Zero fields are inert, so a single struct covers every
// modifier in the pool.
type Modifier struct {
	Name        string
	Lifesteal   float64 // vampiric: fraction of dealt damage healed
	Reflect     float64 // thorned: fraction of taken damage returned
	SpeedMult   float64 // swift: speed multiplier (0 = unused)
	ArmorMult   float64 // armored: armor multiplier (0 = unused)
	EnrageBelow float64 // berserking: health fraction that triggers enrage
	EnragePower float64 // berserking: power multiplier while enraged
	RegenFrac   float64 // regenerating: max-health fraction healed per turn
}

// IntentKind says what the enemy will do on its next turn.
type IntentKind int8

const (
	IntentAttack IntentKind = iota
	IntentAbility
)

// Intent is the enemy's decided next action, cached so the presentation
// layer can telegraph it before it resolves.
type Intent struct {
	Kind        IntentKind
	AbilityID   string
	Damage      int
	PoisonTotal int
	Description string
}

// Enemy is one generated opponent. Created once per room, mutated by
// combat resolution, logically destroyed via IsDying when health hits 0
// (removal after the death animation is the renderer's concern).
type Enemy struct {
	Name       string // full display name: modifiers + combo prefix + base
	BaseName   string
	Tier       Tier
	Health     int
	MaxHealth  int
	Power      int
	Armor      int
	Speed      float64
	Abilities  []Ability
	Modifiers  []Modifier
	Debuffs    []StatDebuff
	Statuses   []StatusEffect
	Intent     Intent
	XPReward   int
	GoldReward int

	IsShielded bool
	IsEnraged  bool
	IsDying    bool
}

// IsBoss reports whether the enemy is a boss-tier opponent.
func (e *Enemy) IsBoss() bool { return e.Tier.IsBoss() }

// IsFinalBoss reports whether the enemy is the run-ending boss.
func (e *Enemy) IsFinalBoss() bool { return e.Tier == TierFinalBoss }

// Stunned reports whether a stun status is active.
func (e *Enemy) Stunned() bool {
	for _, s := range e.Statuses {
		if s.Kind == StatusStun && s.RemainingTurns > 0 {
			return true
		}
	}
	return false
}

// HealthFrac returns current health as a fraction of max.
func (e *Enemy) HealthFrac() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return float64(e.Health) / float64(e.MaxHealth)
}

// ApplyDamage reduces health, floors at 0 and flips IsDying on the
// killing blow. Returns the damage actually applied.
func (e *Enemy) ApplyDamage(amount int) int {
	if amount <= 0 || e.IsDying {
		return 0
	}
	if amount > e.Health {
		amount = e.Health
	}
	e.Health -= amount
	if e.Health <= 0 {
		e.Health = 0
		e.IsDying = true
	}
	return amount
}

// Heal restores health up to max. Returns the amount actually healed.
func (e *Enemy) Heal(amount int) int {
	if amount <= 0 || e.IsDying {
		return 0
	}
	if e.Health+amount > e.MaxHealth {
		amount = e.MaxHealth - e.Health
	}
	e.Health += amount
	return amount
}
