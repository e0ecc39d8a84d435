package model

// Slot is an equipment slot. A player holds at most one item per slot.
type Slot int8

const (
	SlotWeapon Slot = iota
	SlotArmor
	SlotAccessory
)

func (s Slot) String() string {
	switch s {
	case SlotWeapon:
		return "weapon"
	case SlotArmor:
		return "armor"
	case SlotAccessory:
		return "accessory"
	default:
		return "unknown"
	}
}

// Rarity orders item quality from common to legendary.
type Rarity int8

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityEpic
	RarityLegendary
)

func (r Rarity) String() string {
	switch r {
	case RarityCommon:
		return "common"
	case RarityUncommon:
		return "uncommon"
	case RarityRare:
		return "rare"
	case RarityEpic:
		return "epic"
	case RarityLegendary:
		return "legendary"
	default:
		return "unknown"
	}
}

// Trigger is a combat event item and path effects subscribe to.
// A closed enum so an invalid trigger is a compile error, not a silent
// no-op.
type Trigger int8

const (
	TriggerOnHit Trigger = iota
	TriggerOnCrit
	TriggerOnKill
	TriggerOnDamaged
	TriggerCombatStart
	TriggerTurnStart
	TriggerPassive
	TriggerOnDamageDealt
	TriggerOnLethalDamage
	TriggerOnPowerCast
	TriggerOnDeath
)

func (t Trigger) String() string {
	switch t {
	case TriggerOnHit:
		return "on_hit"
	case TriggerOnCrit:
		return "on_crit"
	case TriggerOnKill:
		return "on_kill"
	case TriggerOnDamaged:
		return "on_damaged"
	case TriggerCombatStart:
		return "combat_start"
	case TriggerTurnStart:
		return "turn_start"
	case TriggerPassive:
		return "passive"
	case TriggerOnDamageDealt:
		return "on_damage_dealt"
	case TriggerOnLethalDamage:
		return "on_lethal_damage"
	case TriggerOnPowerCast:
		return "on_power_cast"
	case TriggerOnDeath:
		return "on_death"
	default:
		return "unknown"
	}
}

// EffectKind is what a triggered effect does.
type EffectKind int8

const (
	EffectHeal EffectKind = iota
	EffectDamage
	EffectResource
	EffectBuff
	EffectDebuff
	EffectSpecial
)

func (k EffectKind) String() string {
	switch k {
	case EffectHeal:
		return "heal"
	case EffectDamage:
		return "damage"
	case EffectResource:
		return "resource"
	case EffectBuff:
		return "buff"
	case EffectDebuff:
		return "debuff"
	case EffectSpecial:
		return "special"
	default:
		return "unknown"
	}
}

// ItemEffect is the single optional triggered effect an item carries.
// Chance of 0 means "always" (defaulted to 1 at roll time).
type ItemEffect struct {
	Trigger     Trigger
	Kind        EffectKind
	Value       float64
	Chance      float64
	Description string
}

// Item is one piece of equipment. Immutable once generated.
type Item struct {
	Name   string
	Slot   Slot
	Rarity Rarity
	Bonus  StatBonus
	Effect *ItemEffect
}
