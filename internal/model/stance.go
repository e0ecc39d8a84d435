package model

// StanceEffectKind classifies one effect line of a passive stance.
type StanceEffectKind int8

const (
	StanceStatModifier StanceEffectKind = iota
	StanceDamageModifier
	StanceBehaviorModifier
)

// Behavior is a weighted combat behavior granted by a stance.
type Behavior int8

const (
	BehaviorReflect Behavior = iota
	BehaviorCounter
	BehaviorAutoBlock
	BehaviorLifesteal
)

func (b Behavior) String() string {
	switch b {
	case BehaviorReflect:
		return "reflect"
	case BehaviorCounter:
		return "counter"
	case BehaviorAutoBlock:
		return "auto_block"
	case BehaviorLifesteal:
		return "lifesteal"
	default:
		return "unknown"
	}
}

// StanceEffect is one modifier line. Stat lines use Stat/Flat/Percent,
// damage lines use Percent, behavior lines use Behavior/Weight.
type StanceEffect struct {
	Kind     StanceEffectKind
	Stat     Stat
	Flat     float64
	Percent  float64
	Behavior Behavior
	Weight   float64
}

// PassiveStance is one profile from a path's fixed stance set. Exactly
// one stance is active per passive-path player at any time.
type PassiveStance struct {
	ID               string
	Name             string
	Effects          []StanceEffect
	SwitchCooldownMs int
}
