// Package reward computes XP/gold payouts and item drops.
package reward

import (
	"math/rand/v2"

	"github.com/hollowmire/descent/internal/config"
	"github.com/hollowmire/descent/internal/data"
	"github.com/hollowmire/descent/internal/game/scaling"
	"github.com/hollowmire/descent/internal/model"
)

// Reward formula terms: base + per-floor + per-room, tier-multiplied.
const (
	xpBase     = 10
	xpPerFloor = 8
	xpPerRoom  = 3

	goldBase     = 8
	goldPerFloor = 6
	goldPerRoom  = 2

	// goldVariance randomizes gold within ±25%.
	goldVariance = 0.25

	// Level penalty: payouts shrink for every level the player is ahead
	// of the floor's expected level, but never below the minimum.
	levelsPerFloor     = 2
	penaltyPerLevel    = 0.1
	minPenaltyMultiple = 0.25

	// baseDropChance is the non-boss chance that a kill drops an item.
	baseDropChance = 0.35
)

// XP returns an enemy's experience reward.
func XP(floor, room int, tierMult float64, rates config.Rates) int {
	xp := float64(xpBase+xpPerFloor*(floor-1)+xpPerRoom*(room-1)) * tierMult
	xp *= positiveOr(rates.XPMultiplier, 1.0)
	if xp < 1 {
		xp = 1
	}
	return int(xp)
}

// Gold returns an enemy's gold reward, randomized within the variance
// band.
func Gold(floor, room int, tierMult float64, rates config.Rates) int {
	gold := float64(goldBase+goldPerFloor*(floor-1)+goldPerRoom*(room-1)) * tierMult
	spread := 1.0 - goldVariance + rand.Float64()*2*goldVariance
	gold *= spread * positiveOr(rates.GoldMultiplier, 1.0)
	if gold < 1 {
		gold = 1
	}
	return int(gold)
}

// LevelPenalty returns the payout multiplier for a player of the given
// level on the given floor. Over-leveled players earn less, floored at
// the minimum multiplier.
func LevelPenalty(playerLevel, floor int) float64 {
	expected := floor * levelsPerFloor
	over := playerLevel - expected
	if over <= 0 {
		return 1.0
	}
	penalty := 1.0 - penaltyPerLevel*float64(over)
	if penalty < minPenaltyMultiple {
		return minPenaltyMultiple
	}
	return penalty
}

// ApplyLevelPenalty scales a payout by the level penalty.
func ApplyLevelPenalty(amount, playerLevel, floor int) int {
	out := int(float64(amount) * LevelPenalty(playerLevel, floor))
	if out < 1 && amount > 0 {
		out = 1
	}
	return out
}

// Rarity boundaries on the shifted roll. Lower rolls are better; the
// bands correspond to the cumulative distribution
// common 50% / uncommon 25% / rare 15% / epic 8% / legendary 2%.
const (
	legendaryBand = 0.02
	epicBand      = 0.10
	rareBand      = 0.25
	uncommonBand  = 0.50
)

// RarityForRoll maps a raw roll in [0,1) to a rarity tier after
// subtracting the pity shift. The shift clamps at 0, so the same raw
// roll always yields an equal-or-higher tier with pity active.
func RarityForRoll(roll, shift float64) model.Rarity {
	r := roll - shift
	if r < 0 {
		r = 0
	}
	switch {
	case r < legendaryBand:
		return model.RarityLegendary
	case r < epicBand:
		return model.RarityEpic
	case r < rareBand:
		return model.RarityRare
	case r < uncommonBand:
		return model.RarityUncommon
	default:
		return model.RarityCommon
	}
}

// RollRarity rolls an item rarity with the pity counter applied.
// The counter resets to 0 on rare-or-better and increments by 1
// otherwise; once it reaches the configured threshold, the roll is
// shifted toward rare+.
func RollRarity(pity int, rates config.Rates) (model.Rarity, int) {
	shift := 0.0
	if rates.PityThreshold > 0 && pity >= rates.PityThreshold {
		shift = rates.PityShift
	}
	rarity := RarityForRoll(rand.Float64(), shift)
	if rarity >= model.RarityRare {
		return rarity, 0
	}
	return rarity, pity + 1
}

// RollDrop rolls whether a kill drops an item and, if so, generates
// it. Bosses always drop. Returns the item, the updated pity counter
// and whether anything dropped.
func RollDrop(tier model.Tier, floor, pity int, rates config.Rates) (model.Item, int, bool) {
	chance := baseDropChance * positiveOr(rates.DropChanceMultiplier, 1.0)
	if tier.IsBoss() {
		chance = 1.0
	}
	if !scaling.RollChance(chance) {
		return model.Item{}, pity, false
	}

	rarity, pity := RollRarity(pity, rates)
	return GenerateItem(randomSlot(), rarity, floor), pity, true
}

// GenerateItem builds an item of the given slot and rarity, scaled
// mildly by floor.
func GenerateItem(slot model.Slot, rarity model.Rarity, floor int) model.Item {
	tpl := data.GetItemTemplate(slot)

	scale := data.RarityStatScale(rarity) * (1.0 + 0.1*float64(floor-1))
	bonus := model.StatBonus{
		MaxHealth:  int(float64(tpl.Base.MaxHealth) * scale),
		Power:      int(float64(tpl.Base.Power) * scale),
		Armor:      int(float64(tpl.Base.Armor) * scale),
		Speed:      tpl.Base.Speed * scale,
		CritChance: tpl.Base.CritChance * scale,
		CritDamage: tpl.Base.CritDamage * scale,
		Dodge:      tpl.Base.Dodge * scale,
	}

	it := model.Item{
		Name:   tpl.Names[rand.IntN(len(tpl.Names))],
		Slot:   slot,
		Rarity: rarity,
		Bonus:  bonus,
	}

	if rarity >= data.EffectRarityFloor && len(tpl.Effects) > 0 {
		ef := tpl.Effects[rand.IntN(len(tpl.Effects))]
		ef.Value *= data.RarityStatScale(rarity)
		it.Effect = &ef
	}

	return it
}

func randomSlot() model.Slot {
	return model.Slot(rand.IntN(3))
}

func positiveOr(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}
