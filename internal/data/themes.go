package data

import (
	"math/rand/v2"

	"github.com/hollowmire/descent/internal/model"
)

// floorThemes are the rotation of floor flavors. Multipliers bias the
// generator without replacing its scaling.
var floorThemes = []model.FloorTheme{
	{
		ID: "catacombs", Name: "Catacombs",
		HealthMult: 1.1, PowerMult: 0.95, ArmorMult: 1.1, SpeedMult: 0.9,
		FavoredAbilities:   []string{"bone_shield", "mend"},
		ExtraAbilityChance: 0.1,
	},
	{
		ID: "verminfall", Name: "Verminfall Warrens",
		HealthMult: 0.9, PowerMult: 1.0, ArmorMult: 0.85, SpeedMult: 1.2,
		FavoredAbilities:   []string{"venom_spit", "rend"},
		ExtraAbilityChance: 0.15,
		TierBias:           0.05,
	},
	{
		ID: "forge", Name: "Sunken Forge",
		HealthMult: 1.0, PowerMult: 1.15, ArmorMult: 1.2, SpeedMult: 0.85,
		FavoredAbilities:   []string{"heavy_blow", "stunning_roar"},
		ExtraAbilityChance: 0.1,
	},
	{
		ID: "blood_pits", Name: "Blood Pits",
		HealthMult: 1.05, PowerMult: 1.2, ArmorMult: 0.9, SpeedMult: 1.05,
		FavoredAbilities:   []string{"enrage", "double_strike"},
		ExtraAbilityChance: 0.2,
		TierBias:           0.1,
	},
}

// GetTheme returns a theme by id, ok=false if unknown.
func GetTheme(id string) (model.FloorTheme, bool) {
	for _, t := range floorThemes {
		if t.ID == id {
			return t, true
		}
	}
	return model.FloorTheme{}, false
}

// RandomTheme picks a theme for a new floor.
func RandomTheme() model.FloorTheme {
	return floorThemes[rand.IntN(len(floorThemes))]
}

// ThemeCount returns the number of authored themes.
func ThemeCount() int { return len(floorThemes) }
