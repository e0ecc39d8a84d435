package data

import (
	"fmt"

	"github.com/hollowmire/descent/internal/model"
)

// ItemTemplate is the static recipe an item drop is rolled from: a name
// pool, a base stat bonus scaled by rarity, and an optional effect pool.
type ItemTemplate struct {
	Slot    model.Slot
	Names   []string
	Base    model.StatBonus
	Effects []model.ItemEffect
}

var itemTemplates = map[model.Slot]ItemTemplate{
	model.SlotWeapon: {
		Slot:  model.SlotWeapon,
		Names: []string{"Rusted Blade", "Cleaver", "Warpick", "Runed Edge", "Fang Dagger"},
		Base:  model.StatBonus{Power: 4, CritChance: 0.01},
		Effects: []model.ItemEffect{
			{Trigger: model.TriggerOnCrit, Kind: model.EffectDamage, Value: 6, Chance: 1,
				Description: "critical hits tear for bonus damage"},
			{Trigger: model.TriggerOnHit, Kind: model.EffectDamage, Value: 3, Chance: 0.3,
				Description: "chance to strike twice for bonus damage"},
			{Trigger: model.TriggerOnKill, Kind: model.EffectResource, Value: 10, Chance: 1,
				Description: "kills restore resource"},
			{Trigger: model.TriggerOnDamageDealt, Kind: model.EffectHeal, Value: 0.1, Chance: 1,
				Description: "leeches a fraction of damage dealt"},
		},
	},
	model.SlotArmor: {
		Slot:  model.SlotArmor,
		Names: []string{"Patched Jerkin", "Scale Hauberk", "Bone Plate", "Warded Mail"},
		Base:  model.StatBonus{Armor: 3, MaxHealth: 8},
		Effects: []model.ItemEffect{
			{Trigger: model.TriggerOnDamaged, Kind: model.EffectDamage, Value: 4, Chance: 0.5,
				Description: "spines lash attackers"},
			{Trigger: model.TriggerOnDamaged, Kind: model.EffectResource, Value: 5, Chance: 1,
				Description: "taking hits builds resource"},
			{Trigger: model.TriggerOnLethalDamage, Kind: model.EffectSpecial, Value: 0.3, Chance: 1,
				Description: "cheats death once per combat"},
			{Trigger: model.TriggerTurnStart, Kind: model.EffectHeal, Value: 2, Chance: 1,
				Description: "mends slowly each turn"},
		},
	},
	model.SlotAccessory: {
		Slot:  model.SlotAccessory,
		Names: []string{"Cracked Idol", "Ember Ring", "Witchbone Charm", "Hollow Locket"},
		Base:  model.StatBonus{CritChance: 0.02, Dodge: 0.01},
		Effects: []model.ItemEffect{
			{Trigger: model.TriggerCombatStart, Kind: model.EffectBuff, Value: 0.1, Chance: 1,
				Description: "surges with power as combat begins"},
			{Trigger: model.TriggerOnPowerCast, Kind: model.EffectHeal, Value: 5, Chance: 1,
				Description: "casting knits wounds"},
			{Trigger: model.TriggerPassive, Kind: model.EffectBuff, Value: 0.05, Chance: 1,
				Description: "hums with a constant ward"},
			{Trigger: model.TriggerOnHit, Kind: model.EffectResource, Value: 3, Chance: 1,
				Description: "strikes channel resource"},
		},
	},
}

// GetItemTemplate returns the template for a slot. Every slot must have
// a template; a miss is a content bug and panics.
func GetItemTemplate(slot model.Slot) ItemTemplate {
	tpl, ok := itemTemplates[slot]
	if !ok {
		panic(fmt.Sprintf("data: no item template for slot %v", slot))
	}
	return tpl
}

// RarityStatScale maps rarity to the multiplier applied to a template's
// base stat bonus.
func RarityStatScale(r model.Rarity) float64 {
	switch r {
	case model.RarityCommon:
		return 1.0
	case model.RarityUncommon:
		return 1.5
	case model.RarityRare:
		return 2.2
	case model.RarityEpic:
		return 3.2
	case model.RarityLegendary:
		return 4.5
	default:
		return 1.0
	}
}

// EffectRarityFloor is the minimum rarity at which items roll an
// effect.
const EffectRarityFloor = model.RarityUncommon

// UpgradeDef is a shop purchase: either a permanent stat bonus or a
// power upgrade (+1 level, +MagnitudeBump magnitude). An empty PowerID
// on a power upgrade targets the path's primary power.
type UpgradeDef struct {
	ID            string
	Name          string
	Cost          int
	Bonus         model.StatBonus
	PowerID       string
	MagnitudeBump float64
}

var upgradeTable = map[string]UpgradeDef{
	"whetstone":    {ID: "whetstone", Name: "Whetstone", Cost: 50, Bonus: model.StatBonus{Power: 2}},
	"tonic":        {ID: "tonic", Name: "Hardening Tonic", Cost: 60, Bonus: model.StatBonus{MaxHealth: 15}},
	"drillwork":    {ID: "drillwork", Name: "Drillwork", Cost: 80, Bonus: model.StatBonus{CritChance: 0.03}},
	"empower_1":    {ID: "empower_1", Name: "Empowered Strike", Cost: 100, PowerID: "", MagnitudeBump: 0.3},
	"ward_etching": {ID: "ward_etching", Name: "Ward Etching", Cost: 70, Bonus: model.StatBonus{Armor: 3}},
}

// GetUpgradeDef returns an upgrade definition, ok=false if unknown.
func GetUpgradeDef(id string) (UpgradeDef, bool) {
	def, ok := upgradeTable[id]
	return def, ok
}
