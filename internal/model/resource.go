package model

// ResourceType is the per-path combat resource.
type ResourceType int8

const (
	ResourceMana ResourceType = iota
	ResourceFury
	ResourceArcaneCharges
	ResourceMomentum
	ResourceZeal
)

func (t ResourceType) String() string {
	switch t {
	case ResourceMana:
		return "mana"
	case ResourceFury:
		return "fury"
	case ResourceArcaneCharges:
		return "arcane_charges"
	case ResourceMomentum:
		return "momentum"
	case ResourceZeal:
		return "zeal"
	default:
		return "unknown"
	}
}

// ResourceEvent is a combat event that generates path resource.
type ResourceEvent int8

const (
	ResourceOnHit ResourceEvent = iota
	ResourceOnCrit
	ResourceOnDamaged
	ResourceOnKill
	ResourceOnPowerUse
	ResourceOnBlock
)

func (e ResourceEvent) String() string {
	switch e {
	case ResourceOnHit:
		return "onHit"
	case ResourceOnCrit:
		return "onCrit"
	case ResourceOnDamaged:
		return "onDamaged"
	case ResourceOnKill:
		return "onKill"
	case ResourceOnPowerUse:
		return "onPowerUse"
	case ResourceOnBlock:
		return "onBlock"
	default:
		return "unknown"
	}
}

// Generation maps resource events to the flat amount each one grants.
// Zero means the event does not generate for this path.
type Generation struct {
	OnHit      float64
	OnCrit     float64
	OnDamaged  float64
	OnKill     float64
	OnPowerUse float64
	OnBlock    float64
}

// Amount returns the gain for one event.
func (g Generation) Amount(e ResourceEvent) float64 {
	switch e {
	case ResourceOnHit:
		return g.OnHit
	case ResourceOnCrit:
		return g.OnCrit
	case ResourceOnDamaged:
		return g.OnDamaged
	case ResourceOnKill:
		return g.OnKill
	case ResourceOnPowerUse:
		return g.OnPowerUse
	case ResourceOnBlock:
		return g.OnBlock
	default:
		return 0
	}
}

// Decay pulls an idle resource back toward zero: Rate points every
// TickIntervalMs of wall-clock time, optionally only while out of
// combat.
type Decay struct {
	Rate            float64
	TickIntervalMs  int
	OutOfCombatOnly bool
}

// ThresholdKind classifies what a resource threshold grants.
// DamageBonus and CostReduction are continuous (active while current ≥
// value); the Special* kinds fire once on the action that consumes them.
type ThresholdKind int8

const (
	ThresholdDamageBonus ThresholdKind = iota
	ThresholdCostReduction
	ThresholdSpecialExecute
	ThresholdSpecialGuaranteedCrit
	ThresholdSpecialFullHeal
)

func (k ThresholdKind) String() string {
	switch k {
	case ThresholdDamageBonus:
		return "damage_bonus"
	case ThresholdCostReduction:
		return "cost_reduction"
	case ThresholdSpecialExecute:
		return "execute"
	case ThresholdSpecialGuaranteedCrit:
		return "guaranteed_crit"
	case ThresholdSpecialFullHeal:
		return "full_heal"
	default:
		return "unknown"
	}
}

// IsSpecial reports whether the threshold is a one-shot effect.
func (k ThresholdKind) IsSpecial() bool {
	return k == ThresholdSpecialExecute ||
		k == ThresholdSpecialGuaranteedCrit ||
		k == ThresholdSpecialFullHeal
}

// Threshold activates when the resource reaches Value. Multiple
// thresholds may share a Value; all of them are active together.
type Threshold struct {
	Value  float64
	Kind   ThresholdKind
	Amount float64 // bonus multiplier / reduction fraction / effect parameter
}

// PathResource is a player's class resource pool.
type PathResource struct {
	Type       ResourceType
	Current    float64
	Max        float64
	Gen        Generation
	Decay      *Decay
	Thresholds []Threshold

	// DecayCarryMs accumulates elapsed time between decay ticks.
	DecayCarryMs int
}

// Clamp forces Current into [0, Max].
func (r *PathResource) Clamp() {
	if r.Current < 0 {
		r.Current = 0
	}
	if r.Current > r.Max {
		r.Current = r.Max
	}
}

// AtMax reports whether the pool is full.
func (r *PathResource) AtMax() bool { return r.Max > 0 && r.Current >= r.Max }
