package data

import (
	"testing"

	"github.com/hollowmire/descent/internal/model"
)

func TestAbilityTableIntegrity(t *testing.T) {
	ids := AbilityIDs()
	if len(ids) == 0 {
		t.Fatal("ability pool must not be empty")
	}
	for _, id := range ids {
		def, ok := GetAbilityDef(id)
		if !ok {
			t.Fatalf("listed ability %q missing from table", id)
		}
		if def.ID != id {
			t.Errorf("ability %q has mismatched id %q", id, def.ID)
		}
		if def.Chance <= 0 || def.Chance > 1 {
			t.Errorf("ability %q chance %.2f outside (0,1]", id, def.Chance)
		}
		if def.Cooldown < 1 {
			t.Errorf("ability %q cooldown %d below 1", id, def.Cooldown)
		}
		if def.PowerCost < 0 || def.PowerCost > 0.5 {
			t.Errorf("ability %q power cost %.2f outside [0, 0.5]", id, def.PowerCost)
		}
	}
}

func TestNewAbility_StartsReady(t *testing.T) {
	a := NewAbility(MustAbilityDef("heavy_blow"))
	if a.CurrentCooldown != 0 {
		t.Errorf("fresh abilities start off cooldown, got %d", a.CurrentCooldown)
	}
}

func TestMustAbilityDef_PanicsOnUnknown(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("unknown ability must panic")
		}
	}()
	MustAbilityDef("no_such_ability")
}

func TestPathTableIntegrity(t *testing.T) {
	for _, id := range PathIDs() {
		def, ok := GetPathDef(id)
		if !ok {
			t.Fatalf("listed path %q missing", id)
		}
		if len(def.Stances) == 0 {
			t.Errorf("path %q has no stances", id)
		}
		if len(def.Powers) == 0 {
			t.Errorf("path %q has no powers", id)
		}
		if def.Resource.Max <= 0 {
			t.Errorf("path %q resource max %.0f not positive", id, def.Resource.Max)
		}
		for _, th := range def.Resource.Thresholds {
			if th.Value > def.Resource.Max {
				t.Errorf("path %q threshold at %.0f beyond max %.0f", id, th.Value, def.Resource.Max)
			}
		}
		if _, ok := StanceFor(id, def.Stances[0].ID); !ok {
			t.Errorf("path %q first stance unresolvable", id)
		}
	}
}

func TestStanceEnhancements(t *testing.T) {
	for _, id := range []string{"sharpened_edge", "iron_skin", "bloodletting"} {
		ef, ok := GetStanceEnhancement(id)
		if !ok || len(ef) == 0 {
			t.Errorf("enhancement %q missing or empty", id)
		}
	}
	if _, ok := GetStanceEnhancement("bogus"); ok {
		t.Error("unknown enhancement should not resolve")
	}
}

func TestItemTemplates_AllSlots(t *testing.T) {
	for _, slot := range []model.Slot{model.SlotWeapon, model.SlotArmor, model.SlotAccessory} {
		tpl := GetItemTemplate(slot)
		if len(tpl.Names) == 0 {
			t.Errorf("slot %v has no name pool", slot)
		}
		if len(tpl.Effects) == 0 {
			t.Errorf("slot %v has no effect pool", slot)
		}
	}
}

func TestRarityStatScale_Monotonic(t *testing.T) {
	prev := 0.0
	for r := model.RarityCommon; r <= model.RarityLegendary; r++ {
		s := RarityStatScale(r)
		if s <= prev {
			t.Fatalf("scale must grow with rarity: %v -> %.2f after %.2f", r, s, prev)
		}
		prev = s
	}
}

func TestExperienceTable(t *testing.T) {
	prev := -1
	for lvl := 1; lvl <= MaxPlayerLevel; lvl++ {
		xp := XPForLevel(lvl)
		if xp <= prev {
			t.Fatalf("XP requirement must grow: level %d needs %d after %d", lvl, xp, prev)
		}
		prev = xp
	}
}

func TestLevelForXP(t *testing.T) {
	if got := LevelForXP(0, 1); got != 1 {
		t.Errorf("no XP stays level 1, got %d", got)
	}
	if got := LevelForXP(XPForLevel(3), 1); got < 3 {
		t.Errorf("exact level-3 XP should reach level 3, got %d", got)
	}
	// Levels never regress even when XP says otherwise.
	if got := LevelForXP(0, 5); got != 5 {
		t.Errorf("levels must not regress, got %d", got)
	}
}

func TestComboPrefix(t *testing.T) {
	if got := ComboPrefix([]string{"enrage", "double_strike"}); got == "" {
		t.Error("known combo should produce a prefix regardless of order")
	}
	if got := ComboPrefix([]string{"heavy_blow"}); got != "" {
		t.Errorf("single ability has no combo prefix, got %q", got)
	}
	if got := ComboPrefix(nil); got != "" {
		t.Errorf("no abilities has no prefix, got %q", got)
	}
}

func TestTierBase_Monotonic(t *testing.T) {
	tiers := []model.Tier{model.TierCommon, model.TierUncommon, model.TierRare, model.TierBoss}
	prev := TierBase{}
	for i, tier := range tiers {
		base := GetTierBase(tier)
		if i > 0 && (base.Health <= prev.Health || base.RewardMult <= prev.RewardMult) {
			t.Errorf("tier %v should outclass the previous tier: %+v vs %+v", tier, base, prev)
		}
		prev = base
	}
}

func TestThemes(t *testing.T) {
	if ThemeCount() == 0 {
		t.Fatal("theme table must not be empty")
	}
	th := RandomTheme()
	if th.ID == "" || th.Name == "" {
		t.Errorf("random theme incomplete: %+v", th)
	}
	for _, id := range th.FavoredAbilities {
		if _, ok := GetAbilityDef(id); !ok {
			t.Errorf("theme %q favors unknown ability %q", th.ID, id)
		}
	}
}

func TestFinalBoss(t *testing.T) {
	b := NewFinalBoss()
	if !b.IsFinalBoss() {
		t.Error("authored boss must be final-boss tier")
	}
	if b.Health != b.MaxHealth || b.Health <= 0 {
		t.Errorf("boss spawns at full health: %+v", b)
	}
	if len(b.Abilities) == 0 {
		t.Error("final boss carries an authored kit")
	}
}

func TestUpgradeTable(t *testing.T) {
	for _, id := range []string{"whetstone", "tonic", "drillwork", "empower_1", "ward_etching"} {
		def, ok := GetUpgradeDef(id)
		if !ok {
			t.Fatalf("upgrade %q missing", id)
		}
		if def.Cost <= 0 {
			t.Errorf("upgrade %q must cost gold", id)
		}
	}
}
