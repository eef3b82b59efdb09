package system

import (
	"time"

	"github.com/younwookim/gemrun/internal/domain/entity"
)

// KillCause tells how a hostile died
type KillCause int

const (
	KilledByStomp KillCause = iota
	KilledByProjectile
)

// String returns the string representation of the kill cause
func (c KillCause) String() string {
	switch c {
	case KilledByStomp:
		return "stomp"
	case KilledByProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}

// DeathCause tells why the actor was killed
type DeathCause int

const (
	DeathFell DeathCause = iota
	DeathHostile
)

// String returns the string representation of the death cause
func (c DeathCause) String() string {
	switch c {
	case DeathFell:
		return "fell"
	case DeathHostile:
		return "hostile"
	default:
		return "unknown"
	}
}

type CollectedEvent struct {
	Position entity.Vec2
	Points   int
}

type HostileKilledEvent struct {
	ID       entity.EntityID
	Variant  string
	Position entity.Vec2
	Cause    KillCause
}

type ProjectileFiredEvent struct {
	Position  entity.Vec2
	Direction entity.Vec2
}

type ExitReachedEvent struct {
	Exit      entity.Vec2
	Remaining time.Duration
}

type ActorKilledEvent struct {
	Cause DeathCause
}

// EventSink receives level side effects for audio and animation collaborators.
// Implementations must return promptly; the simulation calls them mid-tick.
type EventSink interface {
	Collected(CollectedEvent)
	HostileKilled(HostileKilledEvent)
	ProjectileFired(ProjectileFiredEvent)
	ExitReached(ExitReachedEvent)
	ActorKilled(ActorKilledEvent)
}

// NopSink discards every event
type NopSink struct{}

func (NopSink) Collected(CollectedEvent)             {}
func (NopSink) HostileKilled(HostileKilledEvent)     {}
func (NopSink) ProjectileFired(ProjectileFiredEvent) {}
func (NopSink) ExitReached(ExitReachedEvent)         {}
func (NopSink) ActorKilled(ActorKilledEvent)         {}

// EventLog keeps every event in order of arrival
type EventLog struct {
	Collections []CollectedEvent
	Kills       []HostileKilledEvent
	Shots       []ProjectileFiredEvent
	Exits       []ExitReachedEvent
	Deaths      []ActorKilledEvent
}

func (l *EventLog) Collected(e CollectedEvent)             { l.Collections = append(l.Collections, e) }
func (l *EventLog) HostileKilled(e HostileKilledEvent)     { l.Kills = append(l.Kills, e) }
func (l *EventLog) ProjectileFired(e ProjectileFiredEvent) { l.Shots = append(l.Shots, e) }
func (l *EventLog) ExitReached(e ExitReachedEvent)         { l.Exits = append(l.Exits, e) }
func (l *EventLog) ActorKilled(e ActorKilledEvent)         { l.Deaths = append(l.Deaths, e) }
