package path

import (
	"testing"

	"github.com/hollowmire/descent/internal/data"
	"github.com/hollowmire/descent/internal/model"
)

func furyResource() model.PathResource {
	return data.MustPathDef("berserker").Resource
}

func momentumResource() model.PathResource {
	return data.MustPathDef("duelist").Resource
}

func TestGain_ClampsAtMax(t *testing.T) {
	r := furyResource()
	r.Current = r.Max - 2

	r, gained := Gain(r, model.ResourceOnDamaged) // +10
	if r.Current != r.Max {
		t.Errorf("resource must clamp at max %.0f, got %.0f", r.Max, r.Current)
	}
	if gained != 2 {
		t.Errorf("actual gain should report the clamped amount, got %.0f", gained)
	}
}

func TestGain_UnmappedEventGeneratesNothing(t *testing.T) {
	r := furyResource() // fury has no onBlock generation
	r, gained := Gain(r, model.ResourceOnBlock)
	if gained != 0 || r.Current != 0 {
		t.Errorf("unmapped event must not generate, got %.0f", gained)
	}
}

func TestSpend(t *testing.T) {
	r := furyResource()
	r.Current = 50

	r, ok := Spend(r, 30)
	if !ok || r.Current != 20 {
		t.Errorf("spend should succeed, current=%.0f", r.Current)
	}
	if _, ok := Spend(r, 21); ok {
		t.Error("spend past the pool must fail")
	}
}

func TestDecayTick_CarriesRemainder(t *testing.T) {
	r := momentumResource() // 4 per 1000ms, decays in combat too
	r.Current = 20

	r = DecayTick(r, 500, true)
	if r.Current != 20 {
		t.Errorf("half an interval must not decay, got %.0f", r.Current)
	}
	r = DecayTick(r, 500, true)
	if r.Current != 16 {
		t.Errorf("carried time should complete the interval, got %.0f", r.Current)
	}
}

func TestDecayTick_OutOfCombatOnlySuspends(t *testing.T) {
	r := furyResource() // decays only out of combat
	r.Current = 50

	r = DecayTick(r, 10000, true)
	if r.Current != 50 {
		t.Errorf("fury must not decay in combat, got %.0f", r.Current)
	}
	if r.DecayCarryMs != 0 {
		t.Errorf("combat time must not accrue decay carry, got %d", r.DecayCarryMs)
	}

	r = DecayTick(r, 4000, false)
	if r.Current != 40 {
		t.Errorf("two idle intervals should drain 10, got %.0f", r.Current)
	}
}

func TestDecayTick_FloorsAtZero(t *testing.T) {
	r := momentumResource()
	r.Current = 3
	r = DecayTick(r, 10000, true)
	if r.Current != 0 {
		t.Errorf("decay must floor at 0, got %.0f", r.Current)
	}
}

func TestActive_SharedValueThresholds(t *testing.T) {
	r := furyResource() // 100 carries damage bonus AND full heal
	r.Current = 100

	active := Active(r)
	if len(active) != 3 {
		t.Fatalf("at 100 fury all three thresholds are active, got %d", len(active))
	}
}

func TestDamageBonus_Stacks(t *testing.T) {
	r := furyResource()

	r.Current = 0
	if got := DamageBonus(r); got != 1.0 {
		t.Errorf("empty pool means no bonus, got %.3f", got)
	}

	r.Current = 50
	if got := DamageBonus(r); got != 1.15 {
		t.Errorf("first threshold gives 1.15, got %.3f", got)
	}

	r.Current = 100
	want := 1.15 * 1.30
	if got := DamageBonus(r); got < want-0.001 || got > want+0.001 {
		t.Errorf("both thresholds multiply to %.3f, got %.3f", want, got)
	}
}

func TestCostReduction_Caps(t *testing.T) {
	r := model.PathResource{
		Type: model.ResourceZeal, Max: 100, Current: 100,
		Thresholds: []model.Threshold{
			{Value: 10, Kind: model.ThresholdCostReduction, Amount: 0.9},
			{Value: 20, Kind: model.ThresholdCostReduction, Amount: 0.9},
		},
	}
	if got := CostReduction(r); got != 0.9 {
		t.Errorf("cost reduction must cap at 0.9, got %.3f", got)
	}
}

func TestTakeSpecial_ConsumesWholePool(t *testing.T) {
	r := furyResource()
	r.Current = 100

	r, th, ok := TakeSpecial(r, model.ThresholdSpecialFullHeal)
	if !ok {
		t.Fatal("full heal should be armed at 100 fury")
	}
	if th.Kind != model.ThresholdSpecialFullHeal {
		t.Errorf("wrong threshold consumed: %+v", th)
	}
	if r.Current != 0 {
		t.Errorf("consuming a special spends the whole pool, got %.0f", r.Current)
	}
}

func TestTakeSpecial_NotArmed(t *testing.T) {
	r := furyResource()
	r.Current = 99
	if _, _, ok := TakeSpecial(r, model.ThresholdSpecialFullHeal); ok {
		t.Error("special below its value must not fire")
	}
}

func TestTakeSpecial_RejectsContinuousKinds(t *testing.T) {
	r := furyResource()
	r.Current = 100
	if _, _, ok := TakeSpecial(r, model.ThresholdDamageBonus); ok {
		t.Error("continuous thresholds are not consumable")
	}
}

func TestHasSpecial(t *testing.T) {
	r := momentumResource()
	r.Current = 100
	if !HasSpecial(r, model.ThresholdSpecialExecute) {
		t.Error("execute should be armed at 100 momentum")
	}
	r.Current = 50
	if HasSpecial(r, model.ThresholdSpecialExecute) {
		t.Error("execute must not be armed at 50 momentum")
	}
}
