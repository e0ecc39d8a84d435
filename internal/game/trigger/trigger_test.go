package trigger

import (
	"testing"

	"github.com/hollowmire/descent/internal/data"
	"github.com/hollowmire/descent/internal/model"
)

func testPlayer(items ...model.Item) model.Player {
	def := data.MustPathDef("berserker")
	p := model.Player{
		PathID:   def.ID,
		Level:    1,
		Base:     def.BaseStats,
		Resource: def.Resource,
		StanceID: def.Stances[0].ID,
	}
	p.Current = p.Base
	p.Health = p.Current.MaxHealth
	for _, it := range items {
		p = p.WithItem(it)
	}
	return p
}

func weaponWith(ef model.ItemEffect) model.Item {
	return model.Item{
		Name: "Test Blade", Slot: model.SlotWeapon,
		Rarity: model.RarityRare, Effect: &ef,
	}
}

func TestProcess_OnHitDamage(t *testing.T) {
	p := testPlayer(weaponWith(model.ItemEffect{
		Trigger: model.TriggerOnHit, Kind: model.EffectDamage, Value: 6, Chance: 1,
	}))
	res := Process(model.TriggerOnHit, p, 20)
	if res.AdditionalDamage != 6 {
		t.Errorf("expected +6 damage, got %d", res.AdditionalDamage)
	}
}

func TestProcess_IgnoresOtherTriggers(t *testing.T) {
	p := testPlayer(weaponWith(model.ItemEffect{
		Trigger: model.TriggerOnCrit, Kind: model.EffectDamage, Value: 6, Chance: 1,
	}))
	res := Process(model.TriggerOnHit, p, 20)
	if res.AdditionalDamage != 0 {
		t.Errorf("on_crit effect must not fire on on_hit, got %d", res.AdditionalDamage)
	}
}

func TestProcess_FractionalLeechUsesDamage(t *testing.T) {
	p := testPlayer(weaponWith(model.ItemEffect{
		Trigger: model.TriggerOnDamageDealt, Kind: model.EffectHeal, Value: 0.1, Chance: 1,
	}))
	p.Health = 10
	res := Process(model.TriggerOnDamageDealt, p, 50)
	if res.Player.Health != 15 {
		t.Errorf("10%% of 50 damage should heal 5, health=%d", res.Player.Health)
	}
}

func TestProcess_ResourceEffectClamps(t *testing.T) {
	p := testPlayer(weaponWith(model.ItemEffect{
		Trigger: model.TriggerOnKill, Kind: model.EffectResource, Value: 50, Chance: 1,
	}))
	p.Resource.Current = p.Resource.Max - 10
	res := Process(model.TriggerOnKill, p, 0)
	if res.Player.Resource.Current != p.Resource.Max {
		t.Errorf("resource must clamp at max %v, got %v", p.Resource.Max, res.Player.Resource.Current)
	}
}

func TestProcess_BuffScalesOffPower(t *testing.T) {
	p := testPlayer(model.Item{
		Name: "Idol", Slot: model.SlotAccessory, Rarity: model.RarityRare,
		Effect: &model.ItemEffect{
			Trigger: model.TriggerCombatStart, Kind: model.EffectBuff, Value: 0.1, Chance: 1,
		},
	})
	res := Process(model.TriggerCombatStart, p, 0)
	if len(res.Player.Buffs) != 1 {
		t.Fatalf("expected one buff, got %d", len(res.Player.Buffs))
	}
	b := res.Player.Buffs[0]
	if b.Bonus.Power < 1 || b.RemainingTurns != BuffTurns {
		t.Errorf("buff should add power for %d turns, got %+v", BuffTurns, b)
	}
}

func TestProcess_DebuffTargetsEnemy(t *testing.T) {
	p := testPlayer(weaponWith(model.ItemEffect{
		Trigger: model.TriggerOnHit, Kind: model.EffectDebuff, Value: 0.2, Chance: 1,
	}))
	res := Process(model.TriggerOnHit, p, 0)
	if len(res.EnemyDebuffs) != 1 {
		t.Fatalf("expected one enemy debuff, got %d", len(res.EnemyDebuffs))
	}
	d := res.EnemyDebuffs[0]
	if d.Stat != model.StatPower || d.Reduction != 0.2 || d.RemainingTurns != DebuffTurns {
		t.Errorf("unexpected debuff %+v", d)
	}
}

func TestProcess_CheatDeath(t *testing.T) {
	p := testPlayer(model.Item{
		Name: "Hollow Locket", Slot: model.SlotArmor, Rarity: model.RarityEpic,
		Effect: &model.ItemEffect{
			Trigger: model.TriggerOnLethalDamage, Kind: model.EffectSpecial, Value: 0.3, Chance: 1,
		},
	})
	res := Process(model.TriggerOnLethalDamage, p, 999)
	if !res.CheatedDeath || res.CheatFrac != 0.3 {
		t.Errorf("expected cheat death at 0.3, got %+v", res)
	}
}

func TestProcess_CheatDeathDegenerateFraction(t *testing.T) {
	p := testPlayer(model.Item{
		Name: "Cracked Locket", Slot: model.SlotArmor, Rarity: model.RarityEpic,
		Effect: &model.ItemEffect{
			Trigger: model.TriggerOnLethalDamage, Kind: model.EffectSpecial, Value: 2.5, Chance: 1,
		},
	})
	res := Process(model.TriggerOnLethalDamage, p, 999)
	if res.CheatFrac != 0.3 {
		t.Errorf("out-of-range fraction should default to 0.3, got %.2f", res.CheatFrac)
	}
}

func TestProcess_ZeroChanceDefaultsToAlways(t *testing.T) {
	p := testPlayer(weaponWith(model.ItemEffect{
		Trigger: model.TriggerOnHit, Kind: model.EffectDamage, Value: 2, Chance: 0,
	}))
	for range 20 {
		res := Process(model.TriggerOnHit, p, 0)
		if res.AdditionalDamage != 2 {
			t.Fatal("zero chance means unset and must fire every time")
		}
	}
}

func TestProcess_MultipleItemsFireTogether(t *testing.T) {
	p := testPlayer(
		weaponWith(model.ItemEffect{
			Trigger: model.TriggerOnHit, Kind: model.EffectDamage, Value: 3, Chance: 1,
		}),
		model.Item{
			Name: "Ember Ring", Slot: model.SlotAccessory, Rarity: model.RarityRare,
			Effect: &model.ItemEffect{
				Trigger: model.TriggerOnHit, Kind: model.EffectResource, Value: 3, Chance: 1,
			},
		},
	)
	before := p.Resource.Current
	res := Process(model.TriggerOnHit, p, 0)
	if res.AdditionalDamage != 3 {
		t.Errorf("weapon effect should fire, got %d", res.AdditionalDamage)
	}
	if res.Player.Resource.Current != before+3 {
		t.Errorf("accessory effect should fire in the same pass")
	}
}
