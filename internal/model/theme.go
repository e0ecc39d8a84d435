package model

// FloorTheme is a read-only modifier bundle applied during enemy
// generation. Multipliers of 0 are treated as 1.0 by the generator.
type FloorTheme struct {
	ID   string
	Name string

	HealthMult float64
	PowerMult  float64
	ArmorMult  float64
	SpeedMult  float64

	// FavoredAbilities are picked before the rest of the pool when the
	// theme is active.
	FavoredAbilities []string

	// ExtraAbilityChance is the probability of granting one ability
	// beyond the floor-gated count.
	ExtraAbilityChance float64

	// TierBias shifts the in-floor tier thresholds: positive values make
	// uncommon/rare enemies appear earlier in the floor.
	TierBias float64
}
