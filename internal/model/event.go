package model

import "time"

// EventKind classifies a combat event emitted for the presentation
// layer. Events drive animation only; they never feed back into the
// simulation.
type EventKind int8

const (
	EventAttack EventKind = iota
	EventPowerCast
	EventHit
	EventDeath
	EventDodge
)

func (k EventKind) String() string {
	switch k {
	case EventAttack:
		return "attack"
	case EventPowerCast:
		return "power-cast"
	case EventHit:
		return "hit"
	case EventDeath:
		return "death"
	case EventDodge:
		return "dodge"
	default:
		return "unknown"
	}
}

// CombatEvent is one timestamped entry in the event feed.
type CombatEvent struct {
	Kind   EventKind
	At     time.Time
	Source string
	Amount int
	Crit   bool
	Text   string
}

// GameState is the whole persisted simulation state: the current
// player/enemy pair plus run counters. External callers read and
// replace it as a unit.
type GameState struct {
	Player        Player
	Enemy         Enemy
	Floor         int
	Room          int
	RoomsPerFloor int
	Pity          int
}
