package model

// StatusKind enumerates status effects a combatant can suffer.
type StatusKind int8

const (
	StatusPoison StatusKind = iota
	StatusBleed
	StatusStun
	StatusSlow
)

func (k StatusKind) String() string {
	switch k {
	case StatusPoison:
		return "poison"
	case StatusBleed:
		return "bleed"
	case StatusStun:
		return "stun"
	case StatusSlow:
		return "slow"
	default:
		return "unknown"
	}
}

// StatusEffect is a timed condition on a combatant. Magnitude is damage
// per turn for poison/bleed and a percent reduction for slow; stun
// ignores it.
type StatusEffect struct {
	Kind           StatusKind
	Magnitude      int
	RemainingTurns int
	Source         string
}

// StatDebuff reduces one stat multiplicatively. Debuffs are keyed by
// (Stat, Source): re-applying the same source refreshes duration in
// place, distinct sources each contribute their own (1 - Reduction)
// factor.
type StatDebuff struct {
	Stat           Stat
	Reduction      float64 // fraction in (0,1), e.g. 0.25 = -25%
	RemainingTurns int
	Source         string
}
