package data

import "github.com/hollowmire/descent/internal/model"

// modifierPool holds the modifier bundles rare and boss enemies can
// roll. Field meanings are documented on model.Modifier.
var modifierPool = []model.Modifier{
	{Name: "Vampiric", Lifesteal: 0.3},
	{Name: "Thorned", Reflect: 0.25},
	{Name: "Swift", SpeedMult: 1.3},
	{Name: "Armored", ArmorMult: 1.5},
	{Name: "Berserking", EnrageBelow: 0.35, EnragePower: 1.5},
	{Name: "Regenerating", RegenFrac: 0.05},
}

// ModifierPool returns a copy of the modifier pool.
func ModifierPool() []model.Modifier {
	out := make([]model.Modifier, len(modifierPool))
	copy(out, modifierPool)
	return out
}
