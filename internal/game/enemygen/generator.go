// Package enemygen builds procedural enemies for floor rooms.
package enemygen

import (
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/hollowmire/descent/internal/config"
	"github.com/hollowmire/descent/internal/data"
	"github.com/hollowmire/descent/internal/game/intent"
	"github.com/hollowmire/descent/internal/game/reward"
	"github.com/hollowmire/descent/internal/game/scaling"
	"github.com/hollowmire/descent/internal/model"
)

const (
	maxFloor             = 100
	defaultRoomsPerFloor = 5

	// Ability power costs are capped so an enemy never discounts more
	// than half its stats away.
	minAbilityDiscount = 0.5
)

// Generator builds enemies. The scaling strategy is fixed at
// construction; there is no per-call curve switching.
type Generator struct {
	strategy   scaling.Strategy
	finalFloor int
	rates      config.Rates
}

// New creates a Generator.
func New(strategy scaling.Strategy, finalFloor int, rates config.Rates) *Generator {
	if finalFloor < 1 {
		finalFloor = data.FinalBossFloor
	}
	return &Generator{strategy: strategy, finalFloor: finalFloor, rates: rates}
}

// Generate builds the enemy for one room. Out-of-range inputs are
// clamped and logged as anomalies; they never fail the call. A nil
// theme applies no theme.
func (g *Generator) Generate(floor, room, roomsPerFloor int, theme *model.FloorTheme) *model.Enemy {
	floor, room, roomsPerFloor = sanitize(floor, room, roomsPerFloor)

	// The last room of the final floor is always the authored boss,
	// regardless of RNG.
	if floor == g.finalFloor && room == roomsPerFloor {
		boss := data.NewFinalBoss()
		boss.Intent = intent.Next(boss)
		return boss
	}

	tier := tierFor(room, roomsPerFloor, theme)
	base := data.GetTierBase(tier)

	difficulty := g.strategy.Difficulty(floor, room)
	mult := scaling.FanOut(difficulty)

	abilities, abilityIDs, discount := g.rollAbilities(floor, tier, theme)
	modifiers := rollModifiers(tier)

	e := &model.Enemy{
		BaseName:  pickName(tier),
		Tier:      tier,
		Abilities: abilities,
		Modifiers: modifiers,
	}
	e.Name = composeName(e.BaseName, modifiers, abilityIDs)

	health := float64(base.Health) * mult.Health * discount
	power := float64(base.Power) * mult.Power * discount
	armor := float64(base.Armor) * mult.Armor * discount
	speed := base.Speed + mult.SpeedBonus

	// Theme multipliers apply last.
	if theme != nil {
		health *= model.SafeMultiplier(theme.HealthMult)
		power *= model.SafeMultiplier(theme.PowerMult)
		armor *= model.SafeMultiplier(theme.ArmorMult)
		speed *= model.SafeMultiplier(theme.SpeedMult)
	}

	// Modifier stat bundles.
	for _, m := range modifiers {
		if m.SpeedMult > 0 {
			speed *= m.SpeedMult
		}
		if m.ArmorMult > 0 {
			armor *= m.ArmorMult
		}
	}

	e.MaxHealth = atLeast(int(health), 1)
	e.Health = e.MaxHealth
	e.Power = atLeast(int(power), 1)
	e.Armor = atLeast(int(armor), 0)
	e.Speed = speed

	e.XPReward = reward.XP(floor, room, base.RewardMult, g.rates)
	e.GoldReward = reward.Gold(floor, room, base.RewardMult, g.rates)

	e.Intent = intent.Next(e)
	return e
}

// sanitize clamps raw inputs, logging anything out of range.
func sanitize(floor, room, roomsPerFloor int) (int, int, int) {
	if roomsPerFloor < 1 {
		slog.Warn("invalid roomsPerFloor, using default",
			"roomsPerFloor", roomsPerFloor,
			"default", defaultRoomsPerFloor)
		roomsPerFloor = defaultRoomsPerFloor
	}
	if floor < 1 || floor > maxFloor {
		clamped := min(max(floor, 1), maxFloor)
		slog.Warn("floor out of range, clamped", "floor", floor, "clamped", clamped)
		floor = clamped
	}
	if room < 1 {
		slog.Warn("room out of range, clamped", "room", room, "clamped", 1)
		room = 1
	}
	if room > roomsPerFloor {
		slog.Warn("room beyond floor end, capped",
			"room", room, "roomsPerFloor", roomsPerFloor)
		room = roomsPerFloor
	}
	return floor, room, roomsPerFloor
}

// tierFor selects the tier from room position within the floor:
// thresholds at 40%/70% and the last room. Theme bias shifts the
// thresholds earlier.
func tierFor(room, roomsPerFloor int, theme *model.FloorTheme) model.Tier {
	if room == roomsPerFloor {
		return model.TierBoss
	}
	frac := float64(room) / float64(roomsPerFloor)
	bias := 0.0
	if theme != nil {
		bias = theme.TierBias
	}
	switch {
	case frac > 0.7-bias:
		return model.TierRare
	case frac > 0.4-bias:
		return model.TierUncommon
	default:
		return model.TierCommon
	}
}

func pickName(tier model.Tier) string {
	pool := data.TierNames(tier)
	if len(pool) == 0 {
		panic("enemygen: empty name pool for tier " + tier.String())
	}
	return pool[rand.IntN(len(pool))]
}

// rollModifiers grants rare enemies exactly one modifier and bosses
// one or two. Lower tiers get none.
func rollModifiers(tier model.Tier) []model.Modifier {
	var count int
	switch tier {
	case model.TierRare:
		count = 1
	case model.TierBoss:
		count = 1 + rand.IntN(2)
	default:
		return nil
	}

	pool := data.ModifierPool()
	rand.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	return pool[:count]
}

// rollAbilities picks a floor-gated number of abilities from the pool
// and returns them with their ids and the stat discount their summed
// power costs impose.
func (g *Generator) rollAbilities(floor int, tier model.Tier, theme *model.FloorTheme) ([]model.Ability, []string, float64) {
	count := abilityCount(floor)
	if theme != nil && scaling.RollChance(theme.ExtraAbilityChance) {
		count++
	}
	if count == 0 {
		return nil, nil, 1.0
	}

	candidates := abilityCandidates(theme)
	if count > len(candidates) {
		count = len(candidates)
	}

	abilities := make([]model.Ability, 0, count)
	ids := make([]string, 0, count)
	totalCost := 0.0
	for _, id := range candidates[:count] {
		def := data.MustAbilityDef(id)
		abilities = append(abilities, data.NewAbility(def))
		ids = append(ids, id)
		totalCost += def.PowerCost
	}

	discount := 1.0 - totalCost
	if discount < minAbilityDiscount {
		slog.Warn("ability power cost exceeded cap, clamping",
			"totalCost", totalCost, "floor", floor, "tier", tier.String())
		discount = minAbilityDiscount
	}
	return abilities, ids, discount
}

// abilityCount gates how many abilities a floor grants: early floors a
// low chance of one, late floors a guaranteed two to three.
func abilityCount(floor int) int {
	switch {
	case floor <= 1:
		if rand.Float64() < 0.3 {
			return 1
		}
		return 0
	case floor == 2:
		n := 1
		if rand.Float64() < 0.3 {
			n++
		}
		return n
	case floor == 3:
		n := 1
		if rand.Float64() < 0.6 {
			n++
		}
		return n
	default:
		n := 2
		if rand.Float64() < 0.5 {
			n++
		}
		return n
	}
}

// abilityCandidates orders the ability pool for selection: the theme's
// favored abilities first (shuffled), then the shuffled remainder.
func abilityCandidates(theme *model.FloorTheme) []string {
	all := data.AbilityIDs()
	if theme == nil || len(theme.FavoredAbilities) == 0 {
		rand.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
		return all
	}

	favored := make(map[string]bool, len(theme.FavoredAbilities))
	for _, id := range theme.FavoredAbilities {
		favored[id] = true
	}

	head := make([]string, 0, len(favored))
	tail := make([]string, 0, len(all))
	for _, id := range all {
		if favored[id] {
			head = append(head, id)
		} else {
			tail = append(tail, id)
		}
	}
	rand.Shuffle(len(head), func(i, j int) { head[i], head[j] = head[j], head[i] })
	rand.Shuffle(len(tail), func(i, j int) { tail[i], tail[j] = tail[j], tail[i] })
	return append(head, tail...)
}

// composeName builds "[modifier name(s)] [combo prefix] [base name]".
func composeName(base string, modifiers []model.Modifier, abilityIDs []string) string {
	var parts []string
	for _, m := range modifiers {
		parts = append(parts, m.Name)
	}
	if prefix := data.ComboPrefix(abilityIDs); prefix != "" {
		parts = append(parts, prefix)
	}
	parts = append(parts, base)
	return strings.Join(parts, " ")
}

func atLeast(v, floor int) int {
	if v < floor {
		return floor
	}
	return v
}
