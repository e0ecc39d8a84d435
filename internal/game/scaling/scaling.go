// Package scaling holds the pure stat and difficulty formulas. Nothing
// here keeps state; every function maps inputs to a value.
package scaling

import (
	"log/slog"
	"math/rand/v2"

	"github.com/hollowmire/descent/internal/model"
)

// Strategy computes the raw difficulty multiplier for a floor/room
// position. The strategy is picked once when the enemy generator is
// constructed; there is no runtime branching between curves.
type Strategy interface {
	Difficulty(floor, room int) float64
}

// Linear is the legacy curve: 1 + perFloor·(floor-1) + perRoom·(room-1).
type Linear struct {
	PerFloor float64
	PerRoom  float64
}

// Difficulty implements Strategy.
func (l Linear) Difficulty(floor, room int) float64 {
	return 1.0 + l.PerFloor*float64(floor-1) + l.PerRoom*float64(room-1)
}

// floorCurve is the authored per-floor multiplier table for the
// exponential strategy. Floors past the table extend by the tail ratio.
var floorCurve = []float64{1.0, 1.35, 1.85, 2.5, 3.4}

// Exponential combines the per-floor table with linear per-room
// scaling.
type Exponential struct {
	PerRoom float64
}

// Difficulty implements Strategy.
func (e Exponential) Difficulty(floor, room int) float64 {
	base := floorMult(floor)
	return base * (1.0 + e.PerRoom*float64(room-1))
}

func floorMult(floor int) float64 {
	if floor < 1 {
		floor = 1
	}
	if floor <= len(floorCurve) {
		return floorCurve[floor-1]
	}
	// Extend beyond the table by the last authored ratio.
	last := floorCurve[len(floorCurve)-1]
	ratio := last / floorCurve[len(floorCurve)-2]
	out := last
	for i := len(floorCurve); i < floor; i++ {
		out *= ratio
	}
	return out
}

// Default tuning for the two strategies.
const (
	DefaultPerFloor = 0.35
	DefaultPerRoom  = 0.08
)

// ForMode returns the strategy for a config mode string. An unknown
// mode is caller misuse: it is logged and defaulted, never fatal.
func ForMode(mode string) Strategy {
	switch mode {
	case "linear":
		return Linear{PerFloor: DefaultPerFloor, PerRoom: DefaultPerRoom}
	case "", "exponential":
		return Exponential{PerRoom: DefaultPerRoom}
	default:
		slog.Warn("unknown scaling mode, using exponential", "mode", mode)
		return Exponential{PerRoom: DefaultPerRoom}
	}
}

// StatMultipliers fans a single difficulty value out per stat so
// late-game enemies don't scale uniformly spongy. Health grows fastest,
// armor slowest; speed scales additively.
type StatMultipliers struct {
	Health     float64
	Power      float64
	Armor      float64
	SpeedBonus float64
}

// Per-stat growth rates applied to (difficulty - 1).
const (
	healthRate = 1.0
	powerRate  = 0.8
	armorRate  = 0.55
	speedRate  = 0.04
)

// FanOut converts a difficulty multiplier into per-stat multipliers.
func FanOut(difficulty float64) StatMultipliers {
	d := model.SafeMultiplier(difficulty) - 1.0
	return StatMultipliers{
		Health:     1.0 + d*healthRate,
		Power:      1.0 + d*powerRate,
		Armor:      1.0 + d*armorRate,
		SpeedBonus: d * speedRate,
	}
}

// MitigateDamage applies armor to a raw damage value. Armor reduces
// multiplicatively (100 armor halves damage); damage never drops below
// 1.
func MitigateDamage(raw, armor int) int {
	if raw <= 0 {
		return 0
	}
	if armor < 0 {
		armor = 0
	}
	out := int(float64(raw) * 100.0 / (100.0 + float64(armor)))
	if out < 1 {
		out = 1
	}
	return out
}

// RandomDamageMultiplier returns the ±10% variance applied to every
// damage roll.
func RandomDamageMultiplier() float64 {
	const random = 10
	return float64(rand.IntN(2*random))/100.0 + 1.0 - float64(random)/100.0
}

// AttackDamage computes one attack's damage before item/resource
// deltas: power × variance × optional crit multiplier.
func AttackDamage(power int, crit bool, critDamage float64) int {
	if power < 1 {
		power = 1
	}
	dmg := float64(power) * RandomDamageMultiplier()
	if crit {
		if critDamage < 1 {
			critDamage = 1
		}
		dmg *= critDamage
	}
	if dmg < 1 {
		dmg = 1
	}
	return int(dmg)
}

// DodgeChance derives the effective dodge probability: base dodge plus
// a bonus for speed above 1.0, clamped to [0, 0.75] so nothing becomes
// unhittable.
func DodgeChance(base, speed float64) float64 {
	out := base + (speed-1.0)*0.1
	if out < 0 {
		return 0
	}
	if out > 0.75 {
		return 0.75
	}
	return out
}

// RollChance rolls one probability in [0,1].
func RollChance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return rand.Float64() < p
}
