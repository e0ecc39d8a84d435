package combat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hollowmire/descent/internal/config"
	"github.com/hollowmire/descent/internal/model"
)

func testSession(t *testing.T, pathID string) *Session {
	t.Helper()
	s, err := NewSession(config.DefaultSim(), pathID, NewDebugController())
	require.NoError(t, err)
	return s
}

func TestNewSession_UnknownPath(t *testing.T) {
	_, err := NewSession(config.DefaultSim(), "necromancer", NewDebugController())
	assert.Error(t, err)
}

func TestNewSession_InitialState(t *testing.T) {
	s := testSession(t, "berserker")
	st := s.State()

	assert.Equal(t, 1, st.Floor)
	assert.Equal(t, 1, st.Room)
	assert.Equal(t, st.Player.Current.MaxHealth, st.Player.Health)
	assert.False(t, st.Enemy.IsDying)
	assert.NotEmpty(t, st.Enemy.Name)
	assert.False(t, s.Over())
}

func TestUsePower_UnknownAndCooling(t *testing.T) {
	s := testSession(t, "berserker")

	assert.Error(t, s.UsePower("fireball"))

	s.state.Player.Resource.Current = 100
	require.NoError(t, s.UsePower("cleave"))
	// Immediately again: cooldown blocks it.
	assert.Error(t, s.UsePower("cleave"))
}

func TestUsePower_SpendsResource(t *testing.T) {
	s := testSession(t, "berserker")
	s.state.Player.Resource.Current = 45

	require.NoError(t, s.UsePower("cleave")) // cost 30
	assert.InDelta(t, 15+s.state.Player.Resource.Gen.OnPowerUse, s.state.Player.Resource.Current, 0.001)
}

func TestUsePower_InsufficientResource(t *testing.T) {
	s := testSession(t, "berserker")
	s.state.Player.Resource.Current = 5
	assert.Error(t, s.UsePower("cleave"))
}

func TestUsePower_CostReductionThreshold(t *testing.T) {
	s := testSession(t, "arcanist") // 25% cost cut at 5 charges
	s.state.Player.Resource.Current = 5

	require.NoError(t, s.UsePower("arc_bolt")) // cost 3 -> 2.25
	want := 5 - 2.25 + s.state.Player.Resource.Gen.OnPowerUse
	assert.InDelta(t, want, s.state.Player.Resource.Current, 0.001)
}

func TestUsePower_HealRestores(t *testing.T) {
	s := testSession(t, "duelist")
	s.state.Player = s.state.Player.WithHealth(10)
	s.state.Player.Resource.Current = 60

	require.NoError(t, s.UsePower("second_wind")) // 30% of max health
	max := s.state.Player.Current.MaxHealth
	assert.Equal(t, 10+int(float64(max)*0.3), s.state.Player.Health)
}

func TestSwitchStance(t *testing.T) {
	s := testSession(t, "duelist")

	assert.True(t, s.SwitchStance("surge"))
	assert.Equal(t, "surge", s.state.Player.StanceID)

	// Cooldown blocks the way back.
	assert.False(t, s.SwitchStance("flow"))

	s.state.Player.StanceCooldownMs = 0
	assert.True(t, s.SwitchStance("flow"))
}

func TestApplyUpgrade(t *testing.T) {
	s := testSession(t, "berserker")

	assert.Error(t, s.ApplyUpgrade("golden_hammer"))
	assert.Error(t, s.ApplyUpgrade("whetstone")) // no gold yet

	s.state.Player.Gold = 200
	basePower := s.state.Player.Base.Power
	require.NoError(t, s.ApplyUpgrade("whetstone"))
	assert.Equal(t, basePower+2, s.state.Player.Base.Power)
	assert.Equal(t, 150, s.state.Player.Gold)
}

func TestApplyUpgrade_PowerUpgrade(t *testing.T) {
	s := testSession(t, "berserker")
	s.state.Player.Gold = 200

	before := s.state.Player.Powers[0]
	require.NoError(t, s.ApplyUpgrade("empower_1"))
	after := s.state.Player.Powers[0]

	assert.Equal(t, before.UpgradeLevel+1, after.UpgradeLevel)
	assert.InDelta(t, before.Magnitude+0.3, after.Magnitude, 0.001)
}

func TestSelectStanceEnhancement(t *testing.T) {
	s := testSession(t, "zealot")

	assert.Error(t, s.SelectStanceEnhancement("iron_skin")) // nothing pending

	s.state.Player.PendingStanceEnhancement = "available"
	assert.Error(t, s.SelectStanceEnhancement("bogus"))
	require.NoError(t, s.SelectStanceEnhancement("iron_skin"))
	assert.Equal(t, "iron_skin", s.state.Player.StanceEnhancementID)
	assert.Empty(t, s.state.Player.PendingStanceEnhancement)
}

func TestEnemyKilled_FullHealSpecial(t *testing.T) {
	s := testSession(t, "berserker")
	s.state.Player = s.state.Player.WithHealth(20)
	s.state.Player.Resource.Current = 100 // full-heal armed
	maxBefore := s.state.Player.Current.MaxHealth

	s.state.Enemy.ApplyDamage(s.state.Enemy.Health)
	s.enemyKilled()

	p := s.state.Player
	assert.Equal(t, maxBefore, p.Health, "armed full heal fires on the kill")
	assert.Equal(t, 0.0, p.Resource.Current, "special consumes the whole pool")
}

func TestEnemyKilled_AdvancesRooms(t *testing.T) {
	s := testSession(t, "wanderer")

	room := s.state.Room
	s.state.Enemy.ApplyDamage(s.state.Enemy.Health)
	s.enemyKilled()

	assert.Equal(t, room+1, s.state.Room)
	assert.False(t, s.state.Enemy.IsDying, "next room spawns a live enemy")
	assert.Positive(t, s.state.Player.XP)
	assert.Positive(t, s.state.Player.Gold)
}

func TestEnemyKilled_FloorRollsOver(t *testing.T) {
	s := testSession(t, "wanderer")
	s.state.Room = s.state.RoomsPerFloor
	s.spawnEnemy()

	s.state.Enemy.ApplyDamage(s.state.Enemy.Health)
	s.enemyKilled()

	assert.Equal(t, 2, s.state.Floor)
	assert.Equal(t, 1, s.state.Room)
}

func TestEnemyKilled_BossOffersEnhancement(t *testing.T) {
	s := testSession(t, "zealot")
	s.state.Room = s.state.RoomsPerFloor
	s.spawnEnemy()
	require.True(t, s.state.Enemy.IsBoss())

	s.state.Enemy.ApplyDamage(s.state.Enemy.Health)
	s.enemyKilled()

	assert.NotEmpty(t, s.state.Player.PendingStanceEnhancement)
}

func TestEnemyKilled_FinalBossEndsRun(t *testing.T) {
	s := testSession(t, "berserker")
	s.state.Floor = s.cfg.FinalFloor
	s.state.Room = s.state.RoomsPerFloor
	s.spawnEnemy()
	require.True(t, s.state.Enemy.IsFinalBoss())

	s.state.Enemy.ApplyDamage(s.state.Enemy.Health)
	s.enemyKilled()

	assert.True(t, s.Over())
	assert.True(t, s.Victory())
}

func TestHandleLethalDamage_CheatDeath(t *testing.T) {
	s := testSession(t, "zealot")
	p := s.state.Player.WithItem(model.Item{
		Name: "Hollow Locket", Slot: model.SlotArmor, Rarity: model.RarityEpic,
		Effect: &model.ItemEffect{
			Trigger: model.TriggerOnLethalDamage, Kind: model.EffectSpecial, Value: 0.3, Chance: 1,
		},
	})
	p = p.WithHealth(5)

	p, survived := s.handleLethalDamage(p, 999)
	assert.True(t, survived)
	assert.Equal(t, int(float64(p.Current.MaxHealth)*0.3), p.Health)
}

func TestHandleLethalDamage_NoEscape(t *testing.T) {
	s := testSession(t, "wanderer")
	p := s.state.Player.WithHealth(5)

	p, survived := s.handleLethalDamage(p, 999)
	assert.False(t, survived)
	assert.Zero(t, p.Health)
}

func TestAdvance_InvinciblePlayerDescends(t *testing.T) {
	dbg := NewDebugController()
	dbg.SetInvincible(true)
	s, err := NewSession(config.DefaultSim(), "berserker", dbg)
	require.NoError(t, err)

	s.StartAttackTick()
	for i := 0; i < 4000 && s.state.Floor < 2; i++ {
		s.Advance(250)
	}
	assert.GreaterOrEqual(t, s.state.Floor, 2, "an unkillable player must clear floor 1")
	assert.False(t, s.Over())
}

func TestAdvance_TicksPowerCooldowns(t *testing.T) {
	s := testSession(t, "berserker")
	s.state.Player.Resource.Current = 100
	require.NoError(t, s.UsePower("cleave"))

	cd := s.state.Player.Powers[0].RemainingCooldownMs
	require.Positive(t, cd)

	s.StopAttackTick()
	s.Advance(cd)
	assert.True(t, s.state.Player.Powers[0].Ready())
}

func TestAdvance_NoTimeNoChange(t *testing.T) {
	s := testSession(t, "wanderer")
	before := s.State()
	s.Advance(0)
	s.Advance(-50)
	assert.Equal(t, before.Floor, s.state.Floor)
	assert.Equal(t, before.Player.Health, s.state.Player.Health)
}

func TestRecalc_PassiveAccessoryIsStanding(t *testing.T) {
	s := testSession(t, "berserker")
	powerBefore := s.state.Player.Current.Power

	s.state.Player = s.state.Player.WithItem(model.Item{
		Name: "Witchbone Charm", Slot: model.SlotAccessory, Rarity: model.RarityEpic,
		Effect: &model.ItemEffect{
			Trigger: model.TriggerPassive, Kind: model.EffectBuff, Value: 0.05, Chance: 1,
		},
	})
	s.recalcPlayer()

	assert.Greater(t, s.state.Player.Current.Power, powerBefore,
		"a passive effect raises current stats the moment it is equipped")
	assert.Empty(t, s.state.Player.Buffs, "no timed buff is involved")

	// It keeps contributing across turns instead of expiring.
	s.state.Enemy.Health = 100000
	s.state.Enemy.MaxHealth = 100000
	s.state.Enemy.Speed = 0
	s.playerTurn()
	assert.Greater(t, s.state.Player.Current.Power, powerBefore)
}

func TestPlayerAttack_CritThenHitEffectsCompose(t *testing.T) {
	dbg := NewDebugController()
	dbg.SetForceCrit(true)
	s, err := NewSession(config.DefaultSim(), "berserker", dbg)
	require.NoError(t, err)

	p := s.state.Player.WithItem(model.Item{
		Name: "Runed Edge", Slot: model.SlotWeapon, Rarity: model.RarityRare,
		Effect: &model.ItemEffect{
			Trigger: model.TriggerOnCrit, Kind: model.EffectDamage, Value: 6, Chance: 1,
		},
	})
	p = p.WithItem(model.Item{
		Name: "Witchbone Charm", Slot: model.SlotAccessory, Rarity: model.RarityRare,
		Effect: &model.ItemEffect{
			Trigger: model.TriggerOnHit, Kind: model.EffectDamage, Value: 3, Chance: 1,
		},
	})
	s.state.Player = p
	s.recalcPlayer()

	s.state.Enemy.Health = 100000
	s.state.Enemy.MaxHealth = 100000
	s.state.Enemy.Speed = 0 // dodge chance bottoms out at zero
	before := s.state.Enemy.Health

	s.DrainLogs()
	s.resolvePlayerAttack()

	logs := s.DrainLogs()
	critIdx, hitIdx := -1, -1
	for i, l := range logs {
		if strings.Contains(l, "Runed Edge") {
			critIdx = i
		}
		if strings.Contains(l, "Witchbone Charm") {
			hitIdx = i
		}
	}
	require.NotEqual(t, -1, critIdx, "crit effect must fire on a forced crit, logs=%v", logs)
	require.NotEqual(t, -1, hitIdx, "hit effect must fire on the same attack, logs=%v", logs)
	assert.Less(t, critIdx, hitIdx, "crit effect resolves before the hit effect")
	assert.Positive(t, before-s.state.Enemy.Health)
}

func TestStopAttackTick_RunsIdleDecay(t *testing.T) {
	s := testSession(t, "berserker") // fury decays out of combat only
	s.state.Enemy.ApplyDamage(s.state.Enemy.Health)
	s.StartAttackTick()
	s.state.Player.Resource.Current = 50

	s.Advance(4000)
	assert.InDelta(t, 50, s.state.Player.Resource.Current, 0.001,
		"fury holds while the attack tick is engaged")

	s.StopAttackTick()
	s.Advance(4000) // two decay intervals at rate 5
	assert.InDelta(t, 40, s.state.Player.Resource.Current, 0.001)
}

func TestDrainFeeds(t *testing.T) {
	s := testSession(t, "wanderer")
	// Spawning logged at least one line.
	assert.NotEmpty(t, s.DrainLogs())
	assert.Empty(t, s.DrainLogs(), "drain clears the buffer")
}
