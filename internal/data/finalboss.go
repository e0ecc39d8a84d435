package data

import "github.com/hollowmire/descent/internal/model"

// FinalBossFloor is the floor whose last room spawns the run-ending
// boss instead of a procedural enemy.
const FinalBossFloor = 5

// NewFinalBoss builds the hand-authored final boss. Stats and abilities
// are fixed; the generator never touches them.
func NewFinalBoss() *model.Enemy {
	abilities := []model.Ability{
		NewAbility(MustAbilityDef("heavy_blow")),
		NewAbility(MustAbilityDef("stunning_roar")),
		NewAbility(MustAbilityDef("enrage")),
	}
	return &model.Enemy{
		Name:       "Vornath, the Hollow Sovereign",
		BaseName:   "Vornath, the Hollow Sovereign",
		Tier:       model.TierFinalBoss,
		Health:     1200,
		MaxHealth:  1200,
		Power:      48,
		Armor:      22,
		Speed:      1.0,
		Abilities:  abilities,
		XPReward:   500,
		GoldReward: 400,
	}
}
