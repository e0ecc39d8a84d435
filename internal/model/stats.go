package model

import "math"

// Stat identifies a single combat statistic that buffs and debuffs can
// target.
type Stat int8

const (
	StatPower Stat = iota
	StatArmor
	StatSpeed
	StatMaxHealth
	StatCritChance
	StatCritDamage
	StatDodge
)

func (s Stat) String() string {
	switch s {
	case StatPower:
		return "power"
	case StatArmor:
		return "armor"
	case StatSpeed:
		return "speed"
	case StatMaxHealth:
		return "maxHealth"
	case StatCritChance:
		return "critChance"
	case StatCritDamage:
		return "critDamage"
	case StatDodge:
		return "dodge"
	default:
		return "unknown"
	}
}

// Stats is the full stat block shared by players and enemies.
// CritChance and Dodge are probabilities in [0,1]; CritDamage is a
// damage multiplier (2.0 = double damage).
type Stats struct {
	MaxHealth  int
	Power      int
	Armor      int
	Speed      float64
	CritChance float64
	CritDamage float64
	Dodge      float64
}

// StatBonus is a partial stat block contributed by an item or buff.
// Zero fields contribute nothing.
type StatBonus struct {
	MaxHealth  int
	Power      int
	Armor      int
	Speed      float64
	CritChance float64
	CritDamage float64
	Dodge      float64
}

// Add returns s with the bonus applied.
func (s Stats) Add(b StatBonus) Stats {
	s.MaxHealth += b.MaxHealth
	s.Power += b.Power
	s.Armor += b.Armor
	s.Speed += b.Speed
	s.CritChance += b.CritChance
	s.CritDamage += b.CritDamage
	s.Dodge += b.Dodge
	return s
}

// Get returns the value of a single stat as float64.
func (s Stats) Get(stat Stat) float64 {
	switch stat {
	case StatPower:
		return float64(s.Power)
	case StatArmor:
		return float64(s.Armor)
	case StatSpeed:
		return s.Speed
	case StatMaxHealth:
		return float64(s.MaxHealth)
	case StatCritChance:
		return s.CritChance
	case StatCritDamage:
		return s.CritDamage
	case StatDodge:
		return s.Dodge
	default:
		return 0
	}
}

// ClampChance clamps a probability to [0,1].
func ClampChance(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// SafeMultiplier guards stat math against NaN/Inf and degenerate
// multipliers. Anything non-finite or below the floor collapses to 1.0
// so a bad data value cannot poison every downstream formula.
func SafeMultiplier(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 1.0
	}
	return v
}
