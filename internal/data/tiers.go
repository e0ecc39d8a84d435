package data

import "github.com/hollowmire/descent/internal/model"

// TierBase is the floor-1 stat block a tier starts from, before
// difficulty scaling and themes.
type TierBase struct {
	Health int
	Power  int
	Armor  int
	Speed  float64

	// RewardMult scales the tier's XP/gold payout.
	RewardMult float64
}

var tierBase = map[model.Tier]TierBase{
	model.TierCommon:   {Health: 40, Power: 8, Armor: 2, Speed: 1.0, RewardMult: 1.0},
	model.TierUncommon: {Health: 65, Power: 11, Armor: 4, Speed: 1.0, RewardMult: 1.4},
	model.TierRare:     {Health: 95, Power: 14, Armor: 6, Speed: 1.05, RewardMult: 2.0},
	model.TierBoss:     {Health: 180, Power: 18, Armor: 9, Speed: 1.05, RewardMult: 3.5},
}

// GetTierBase returns the base block for a tier. Final boss has no
// procedural base; asking for it is a content bug.
func GetTierBase(t model.Tier) TierBase {
	base, ok := tierBase[t]
	if !ok {
		panic("data: no tier base for " + t.String())
	}
	return base
}
