package status

import (
	"testing"

	"github.com/hollowmire/descent/internal/model"
)

func TestTickTurnStart_PoisonDamagesAndExpires(t *testing.T) {
	statuses := []model.StatusEffect{
		{Kind: model.StatusPoison, Magnitude: 5, RemainingTurns: 2, Source: "venom_spit"},
	}

	res := TickTurnStart(statuses)
	if res.Damage != 5 {
		t.Errorf("first tick should deal 5, got %d", res.Damage)
	}
	if len(res.Statuses) != 1 {
		t.Fatalf("poison should survive first tick, got %d statuses", len(res.Statuses))
	}

	res = TickTurnStart(res.Statuses)
	if res.Damage != 5 {
		t.Errorf("second tick should deal 5, got %d", res.Damage)
	}
	if len(res.Statuses) != 0 {
		t.Errorf("poison should expire after its turns, got %d statuses", len(res.Statuses))
	}
}

func TestTickTurnStart_StunDealsNoDamage(t *testing.T) {
	res := TickTurnStart([]model.StatusEffect{
		{Kind: model.StatusStun, RemainingTurns: 2, Source: "stunning_roar"},
	})
	if res.Damage != 0 {
		t.Errorf("stun must not deal damage, got %d", res.Damage)
	}
	if len(res.Statuses) != 1 {
		t.Errorf("stun should tick down, not vanish, got %d statuses", len(res.Statuses))
	}
}

func TestApply_SameSourceRefreshes(t *testing.T) {
	statuses := Apply(nil, model.StatusEffect{
		Kind: model.StatusPoison, Magnitude: 3, RemainingTurns: 1, Source: "venom_spit",
	})
	statuses = Apply(statuses, model.StatusEffect{
		Kind: model.StatusPoison, Magnitude: 4, RemainingTurns: 3, Source: "venom_spit",
	})

	if len(statuses) != 1 {
		t.Fatalf("same kind+source must refresh, not stack: got %d entries", len(statuses))
	}
	if statuses[0].Magnitude != 4 || statuses[0].RemainingTurns != 3 {
		t.Errorf("refresh must take the new values, got %+v", statuses[0])
	}
}

func TestApply_DifferentSourceStacks(t *testing.T) {
	statuses := Apply(nil, model.StatusEffect{
		Kind: model.StatusPoison, Magnitude: 3, RemainingTurns: 2, Source: "venom_spit",
	})
	statuses = Apply(statuses, model.StatusEffect{
		Kind: model.StatusPoison, Magnitude: 5, RemainingTurns: 2, Source: "rend",
	})
	if len(statuses) != 2 {
		t.Errorf("different sources must coexist, got %d entries", len(statuses))
	}
}

func TestSlowFactor_Multiplicative(t *testing.T) {
	statuses := []model.StatusEffect{
		{Kind: model.StatusSlow, Magnitude: 50, RemainingTurns: 2, Source: "a"},
		{Kind: model.StatusSlow, Magnitude: 50, RemainingTurns: 2, Source: "b"},
	}
	if got := SlowFactor(statuses); got != 0.25 {
		t.Errorf("two 50%% slows should multiply to 0.25, got %.3f", got)
	}
	if got := SlowFactor(nil); got != 1.0 {
		t.Errorf("no slows means factor 1.0, got %.3f", got)
	}
}

func TestApplyDebuff_RefreshAndStack(t *testing.T) {
	d := ApplyDebuff(nil, model.StatDebuff{
		Stat: model.StatPower, Reduction: 0.2, RemainingTurns: 2, Source: "charm",
	})
	d = ApplyDebuff(d, model.StatDebuff{
		Stat: model.StatPower, Reduction: 0.3, RemainingTurns: 3, Source: "charm",
	})
	if len(d) != 1 || d[0].Reduction != 0.3 {
		t.Fatalf("same stat+source must refresh: %+v", d)
	}

	d = ApplyDebuff(d, model.StatDebuff{
		Stat: model.StatPower, Reduction: 0.1, RemainingTurns: 2, Source: "ring",
	})
	if len(d) != 2 {
		t.Errorf("different sources must stack, got %d", len(d))
	}
}

func TestEffectiveStat_MultiplicativeFloor(t *testing.T) {
	debuffs := []model.StatDebuff{
		{Stat: model.StatPower, Reduction: 0.5, RemainingTurns: 1, Source: "a"},
		{Stat: model.StatPower, Reduction: 0.5, RemainingTurns: 1, Source: "b"},
	}
	// 100 · 0.5 · 0.5 = 25
	if got := EffectiveStat(100, model.StatPower, debuffs); got != 25 {
		t.Errorf("expected 25, got %d", got)
	}
	// Debuffs on another stat don't apply.
	if got := EffectiveStat(100, model.StatArmor, debuffs); got != 100 {
		t.Errorf("armor untouched by power debuffs, got %d", got)
	}
}

func TestTickDebuffs_Prunes(t *testing.T) {
	d := TickDebuffs([]model.StatDebuff{
		{Stat: model.StatPower, Reduction: 0.2, RemainingTurns: 1, Source: "a"},
		{Stat: model.StatPower, Reduction: 0.2, RemainingTurns: 3, Source: "b"},
	})
	if len(d) != 1 || d[0].Source != "b" {
		t.Errorf("expired debuff should be pruned: %+v", d)
	}
}
