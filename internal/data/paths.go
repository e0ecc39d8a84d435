package data

import (
	"fmt"

	"github.com/hollowmire/descent/internal/model"
)

// PathDef is the static definition of one class path: base stats, its
// resource economy, stance set and starting powers.
type PathDef struct {
	ID        string
	Name      string
	BaseStats model.Stats
	Resource  model.PathResource
	Stances   []model.PassiveStance
	Powers    []model.Power
}

// DefaultStanceCooldownMs applies when a stance does not set its own
// switch cooldown.
const DefaultStanceCooldownMs = 5000

var pathTable = map[string]PathDef{
	"arcanist": {
		ID: "arcanist", Name: "Arcanist",
		BaseStats: model.Stats{
			MaxHealth: 80, Power: 14, Armor: 3, Speed: 1.0,
			CritChance: 0.1, CritDamage: 2.0, Dodge: 0.05,
		},
		Resource: model.PathResource{
			Type: model.ResourceArcaneCharges, Max: 10,
			Gen: model.Generation{OnHit: 1, OnPowerUse: 2},
			Thresholds: []model.Threshold{
				{Value: 5, Kind: model.ThresholdCostReduction, Amount: 0.25},
				{Value: 10, Kind: model.ThresholdSpecialGuaranteedCrit, Amount: 2.0},
			},
		},
		Stances: []model.PassiveStance{
			{
				ID: "channeling", Name: "Channeling",
				Effects: []model.StanceEffect{
					{Kind: model.StanceStatModifier, Stat: model.StatCritChance, Percent: 0.05},
				},
				SwitchCooldownMs: DefaultStanceCooldownMs,
			},
		},
		Powers: []model.Power{
			{ID: "arc_bolt", Name: "Arc Bolt", Cost: 3, CooldownMs: 2000,
				Effect: model.PowerDamage, Magnitude: 2.2},
			{ID: "mana_shell", Name: "Mana Shell", Cost: 4, CooldownMs: 8000,
				Effect: model.PowerBuff, Magnitude: 0.3},
		},
	},
	"berserker": {
		ID: "berserker", Name: "Berserker",
		BaseStats: model.Stats{
			MaxHealth: 110, Power: 16, Armor: 5, Speed: 0.95,
			CritChance: 0.08, CritDamage: 2.2, Dodge: 0.03,
		},
		Resource: model.PathResource{
			Type: model.ResourceFury, Max: 100,
			Gen: model.Generation{OnHit: 6, OnDamaged: 10, OnCrit: 4},
			Decay: &model.Decay{
				Rate: 5, TickIntervalMs: 2000, OutOfCombatOnly: true,
			},
			Thresholds: []model.Threshold{
				{Value: 50, Kind: model.ThresholdDamageBonus, Amount: 0.15},
				{Value: 100, Kind: model.ThresholdDamageBonus, Amount: 0.3},
				{Value: 100, Kind: model.ThresholdSpecialFullHeal},
			},
		},
		Stances: []model.PassiveStance{
			{
				ID: "bloodrush", Name: "Bloodrush",
				Effects: []model.StanceEffect{
					{Kind: model.StanceStatModifier, Stat: model.StatPower, Percent: 0.15},
					{Kind: model.StanceBehaviorModifier, Behavior: model.BehaviorLifesteal, Weight: 0.1},
				},
				SwitchCooldownMs: DefaultStanceCooldownMs,
			},
		},
		Powers: []model.Power{
			{ID: "cleave", Name: "Cleave", Cost: 30, CooldownMs: 3000,
				Effect: model.PowerDamage, Magnitude: 1.8},
			{ID: "war_cry", Name: "War Cry", Cost: 40, CooldownMs: 10000,
				Effect: model.PowerBuff, Magnitude: 0.25},
		},
	},
	"duelist": {
		ID: "duelist", Name: "Duelist",
		BaseStats: model.Stats{
			MaxHealth: 90, Power: 13, Armor: 4, Speed: 1.15,
			CritChance: 0.15, CritDamage: 2.0, Dodge: 0.1,
		},
		Resource: model.PathResource{
			Type: model.ResourceMomentum, Max: 100,
			Gen: model.Generation{OnHit: 8, OnCrit: 12},
			Decay: &model.Decay{
				Rate: 4, TickIntervalMs: 1000,
			},
			Thresholds: []model.Threshold{
				{Value: 40, Kind: model.ThresholdDamageBonus, Amount: 0.1},
				{Value: 80, Kind: model.ThresholdDamageBonus, Amount: 0.25},
				{Value: 100, Kind: model.ThresholdSpecialExecute, Amount: 0.25},
			},
		},
		Stances: []model.PassiveStance{
			{
				ID: "flow", Name: "Flow",
				Effects: []model.StanceEffect{
					{Kind: model.StanceStatModifier, Stat: model.StatDodge, Percent: 0.08},
					{Kind: model.StanceBehaviorModifier, Behavior: model.BehaviorCounter, Weight: 0.2},
				},
				SwitchCooldownMs: DefaultStanceCooldownMs,
			},
			{
				ID: "surge", Name: "Surge",
				Effects: []model.StanceEffect{
					{Kind: model.StanceStatModifier, Stat: model.StatSpeed, Percent: 0.15},
					{Kind: model.StanceDamageModifier, Percent: 0.1},
				},
				SwitchCooldownMs: 8000,
			},
		},
		Powers: []model.Power{
			{ID: "flurry", Name: "Flurry", Cost: 35, CooldownMs: 4000,
				Effect: model.PowerDamage, Magnitude: 2.0},
			{ID: "second_wind", Name: "Second Wind", Cost: 50, CooldownMs: 12000,
				Effect: model.PowerHeal, Magnitude: 0.3},
		},
	},
	"zealot": {
		ID: "zealot", Name: "Zealot",
		BaseStats: model.Stats{
			MaxHealth: 100, Power: 14, Armor: 6, Speed: 1.0,
			CritChance: 0.08, CritDamage: 2.0, Dodge: 0.05,
		},
		Resource: model.PathResource{
			Type: model.ResourceZeal, Max: 100,
			Gen: model.Generation{OnHit: 5, OnDamaged: 6, OnBlock: 10},
			Thresholds: []model.Threshold{
				{Value: 60, Kind: model.ThresholdDamageBonus, Amount: 0.2},
				{Value: 100, Kind: model.ThresholdCostReduction, Amount: 0.5},
				{Value: 100, Kind: model.ThresholdSpecialFullHeal},
			},
		},
		Stances: []model.PassiveStance{
			{
				ID: "devotion", Name: "Devotion",
				Effects: []model.StanceEffect{
					{Kind: model.StanceStatModifier, Stat: model.StatArmor, Percent: 0.2},
					{Kind: model.StanceBehaviorModifier, Behavior: model.BehaviorAutoBlock, Weight: 0.15},
				},
				SwitchCooldownMs: DefaultStanceCooldownMs,
			},
			{
				ID: "wrath", Name: "Wrath",
				Effects: []model.StanceEffect{
					{Kind: model.StanceStatModifier, Stat: model.StatPower, Percent: 0.12},
					{Kind: model.StanceBehaviorModifier, Behavior: model.BehaviorReflect, Weight: 0.1},
				},
				SwitchCooldownMs: DefaultStanceCooldownMs,
			},
		},
		Powers: []model.Power{
			{ID: "smite", Name: "Smite", Cost: 30, CooldownMs: 3500,
				Effect: model.PowerDamage, Magnitude: 1.7},
			{ID: "benediction", Name: "Benediction", Cost: 45, CooldownMs: 9000,
				Effect: model.PowerHeal, Magnitude: 0.25},
		},
	},
	"wanderer": {
		ID: "wanderer", Name: "Wanderer",
		BaseStats: model.Stats{
			MaxHealth: 95, Power: 12, Armor: 4, Speed: 1.05,
			CritChance: 0.1, CritDamage: 2.0, Dodge: 0.06,
		},
		Resource: model.PathResource{
			Type: model.ResourceMana, Max: 100,
			Gen: model.Generation{OnHit: 4, OnKill: 20},
		},
		Stances: []model.PassiveStance{
			{
				ID: "balance", Name: "Balance",
				Effects:          nil,
				SwitchCooldownMs: DefaultStanceCooldownMs,
			},
		},
		Powers: []model.Power{
			{ID: "spark", Name: "Spark", Cost: 20, CooldownMs: 2500,
				Effect: model.PowerDamage, Magnitude: 1.6},
			{ID: "mend_wounds", Name: "Mend Wounds", Cost: 35, CooldownMs: 7000,
				Effect: model.PowerHeal, Magnitude: 0.2},
		},
	},
}

// PathIDs returns every path id.
func PathIDs() []string {
	return []string{"arcanist", "berserker", "duelist", "zealot", "wanderer"}
}

// GetPathDef returns a path definition, ok=false if unknown.
func GetPathDef(id string) (PathDef, bool) {
	def, ok := pathTable[id]
	return def, ok
}

// MustPathDef returns a path definition or panics on a content bug.
func MustPathDef(id string) PathDef {
	def, ok := pathTable[id]
	if !ok {
		panic(fmt.Sprintf("data: unknown path %q", id))
	}
	return def
}

// StanceFor returns a stance definition from a path, ok=false if the
// path has no stance with that id.
func StanceFor(pathID, stanceID string) (model.PassiveStance, bool) {
	def, ok := pathTable[pathID]
	if !ok {
		return model.PassiveStance{}, false
	}
	for _, st := range def.Stances {
		if st.ID == stanceID {
			return st, true
		}
	}
	return model.PassiveStance{}, false
}

// stanceEnhancements are the pick-one bonuses offered on boss kills.
// The chosen enhancement rides along with the active stance's effects.
var stanceEnhancements = map[string][]model.StanceEffect{
	"sharpened_edge": {
		{Kind: model.StanceDamageModifier, Percent: 0.08},
	},
	"iron_skin": {
		{Kind: model.StanceStatModifier, Stat: model.StatArmor, Percent: 0.1},
	},
	"bloodletting": {
		{Kind: model.StanceBehaviorModifier, Behavior: model.BehaviorLifesteal, Weight: 0.05},
	},
}

// GetStanceEnhancement returns the effects of an enhancement choice,
// ok=false if the choice id is unknown.
func GetStanceEnhancement(id string) ([]model.StanceEffect, bool) {
	ef, ok := stanceEnhancements[id]
	return ef, ok
}
