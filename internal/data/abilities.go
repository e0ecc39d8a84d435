package data

import (
	"fmt"

	"github.com/hollowmire/descent/internal/model"
)

// AbilityDef is the static definition behind one enemy ability.
// PowerCost is the stat-multiplier fraction an enemy pays for being
// granted the ability.
type AbilityDef struct {
	ID        string
	Kind      model.AbilityKind
	Magnitude float64 // scales off enemy power
	Cooldown  int     // turns
	Chance    float64 // per-roll success chance when ready
	PowerCost float64
}

// abilityTable holds every enemy ability keyed by id.
var abilityTable = map[string]AbilityDef{
	"heavy_blow": {
		ID: "heavy_blow", Kind: model.AbilityDamage,
		Magnitude: 1.6, Cooldown: 3, Chance: 0.5, PowerCost: 0.06,
	},
	"double_strike": {
		ID: "double_strike", Kind: model.AbilityDoubleStrike,
		Magnitude: 0.7, Cooldown: 2, Chance: 0.45, PowerCost: 0.05,
	},
	"venom_spit": {
		ID: "venom_spit", Kind: model.AbilityPoison,
		Magnitude: 0.35, Cooldown: 3, Chance: 0.4, PowerCost: 0.05,
	},
	"rend": {
		ID: "rend", Kind: model.AbilityPoison,
		Magnitude: 0.45, Cooldown: 4, Chance: 0.35, PowerCost: 0.06,
	},
	"stunning_roar": {
		ID: "stunning_roar", Kind: model.AbilityStun,
		Magnitude: 0.8, Cooldown: 5, Chance: 0.3, PowerCost: 0.08,
	},
	"enrage": {
		ID: "enrage", Kind: model.AbilityEnrage,
		Magnitude: 0.5, Cooldown: 6, Chance: 0.35, PowerCost: 0.07,
	},
	"mend": {
		ID: "mend", Kind: model.AbilityHeal,
		Magnitude: 0.2, Cooldown: 4, Chance: 0.4, PowerCost: 0.05,
	},
	"bone_shield": {
		ID: "bone_shield", Kind: model.AbilityShield,
		Magnitude: 0.5, Cooldown: 5, Chance: 0.35, PowerCost: 0.06,
	},
	"hamstring": {
		ID: "hamstring", Kind: model.AbilitySlow,
		Magnitude: 0.3, Cooldown: 4, Chance: 0.4, PowerCost: 0.04,
	},
}

// abilityOrder keeps selection deterministic before shuffling.
var abilityOrder = []string{
	"heavy_blow", "double_strike", "venom_spit", "rend",
	"stunning_roar", "enrage", "mend", "bone_shield", "hamstring",
}

// AbilityIDs returns every ability id in table order.
func AbilityIDs() []string {
	out := make([]string, len(abilityOrder))
	copy(out, abilityOrder)
	return out
}

// GetAbilityDef returns an ability definition, ok=false if unknown.
func GetAbilityDef(id string) (AbilityDef, bool) {
	def, ok := abilityTable[id]
	return def, ok
}

// MustAbilityDef returns an ability definition or panics. Use only for
// ids that come from content tables, where a miss is a data bug.
func MustAbilityDef(id string) AbilityDef {
	def, ok := abilityTable[id]
	if !ok {
		panic(fmt.Sprintf("data: unknown ability %q", id))
	}
	return def
}

// NewAbility instantiates a runtime ability from its definition.
func NewAbility(def AbilityDef) model.Ability {
	return model.Ability{
		ID:        def.ID,
		Kind:      def.Kind,
		Magnitude: def.Magnitude,
		Cooldown:  def.Cooldown,
		Chance:    def.Chance,
	}
}
