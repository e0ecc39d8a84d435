package data

import (
	"slices"
	"strings"

	"github.com/hollowmire/descent/internal/model"
)

// tierNames are the base name pools per tier. Final boss is
// hand-authored in finalboss.go and has no pool.
var tierNames = map[model.Tier][]string{
	model.TierCommon: {
		"Rat Swarm", "Cave Spider", "Skeleton", "Mud Crawler", "Gloom Bat",
	},
	model.TierUncommon: {
		"Ghoul", "Hollow Knight", "Fungal Brute", "Pit Stalker",
	},
	model.TierRare: {
		"Crypt Warden", "Flesh Golem", "Shade Weaver",
	},
	model.TierBoss: {
		"Bone Tyrant", "Abyss Matron", "The Chained One",
	},
}

// TierNames returns the name pool for a tier (nil for final boss).
func TierNames(t model.Tier) []string {
	pool := tierNames[t]
	out := make([]string, len(pool))
	copy(out, pool)
	return out
}

// comboPrefixes maps a sorted, "+"-joined ability id set to a bespoke
// display prefix. Unmatched combinations get no prefix.
var comboPrefixes = map[string]string{
	"double_strike+enrage":      "Berserker",
	"rend+venom_spit":           "Plaguebearer",
	"heavy_blow+stunning_roar":  "Crusher",
	"bone_shield+mend":          "Warded",
	"double_strike+hamstring":   "Lacerating",
	"enrage+heavy_blow":         "Rampaging",
	"mend+venom_spit":           "Festering",
	"bone_shield+stunning_roar": "Bulwark",
}

// ComboPrefix looks up the display prefix for a set of ability ids.
// Returns "" when the combination has no bespoke prefix.
func ComboPrefix(abilityIDs []string) string {
	if len(abilityIDs) < 2 {
		return ""
	}
	ids := slices.Clone(abilityIDs)
	slices.Sort(ids)
	return comboPrefixes[strings.Join(ids, "+")]
}
