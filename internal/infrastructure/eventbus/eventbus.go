// Package eventbus queues level events and dispatches them outside the tick.
package eventbus

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/younwookim/gemrun/internal/application/system"
)

var (
	collectedEvent       = events.NewEventType[system.CollectedEvent]()
	hostileKilledEvent   = events.NewEventType[system.HostileKilledEvent]()
	projectileFiredEvent = events.NewEventType[system.ProjectileFiredEvent]()
	exitReachedEvent     = events.NewEventType[system.ExitReachedEvent]()
	actorKilledEvent     = events.NewEventType[system.ActorKilledEvent]()
)

// Bus is a system.EventSink that publishes into a donburi world.
// Publishing only queues; subscribers run on Flush.
type Bus struct {
	world donburi.World
}

// New creates a bus with its own world, so buses never share subscribers
func New() *Bus {
	return &Bus{world: donburi.NewWorld()}
}

func (b *Bus) Collected(e system.CollectedEvent) { collectedEvent.Publish(b.world, e) }

func (b *Bus) HostileKilled(e system.HostileKilledEvent) { hostileKilledEvent.Publish(b.world, e) }

func (b *Bus) ProjectileFired(e system.ProjectileFiredEvent) {
	projectileFiredEvent.Publish(b.world, e)
}

func (b *Bus) ExitReached(e system.ExitReachedEvent) { exitReachedEvent.Publish(b.world, e) }

func (b *Bus) ActorKilled(e system.ActorKilledEvent) { actorKilledEvent.Publish(b.world, e) }

// Flush dispatches every queued event to its subscribers
func (b *Bus) Flush() {
	events.ProcessAllEvents(b.world)
}

func (b *Bus) OnCollected(fn func(system.CollectedEvent)) {
	collectedEvent.Subscribe(b.world, func(_ donburi.World, e system.CollectedEvent) { fn(e) })
}

func (b *Bus) OnHostileKilled(fn func(system.HostileKilledEvent)) {
	hostileKilledEvent.Subscribe(b.world, func(_ donburi.World, e system.HostileKilledEvent) { fn(e) })
}

func (b *Bus) OnProjectileFired(fn func(system.ProjectileFiredEvent)) {
	projectileFiredEvent.Subscribe(b.world, func(_ donburi.World, e system.ProjectileFiredEvent) { fn(e) })
}

func (b *Bus) OnExitReached(fn func(system.ExitReachedEvent)) {
	exitReachedEvent.Subscribe(b.world, func(_ donburi.World, e system.ExitReachedEvent) { fn(e) })
}

func (b *Bus) OnActorKilled(fn func(system.ActorKilledEvent)) {
	actorKilledEvent.Subscribe(b.world, func(_ donburi.World, e system.ActorKilledEvent) { fn(e) })
}

// Forward subscribes sink to every event type
func (b *Bus) Forward(sink system.EventSink) {
	b.OnCollected(sink.Collected)
	b.OnHostileKilled(sink.HostileKilled)
	b.OnProjectileFired(sink.ProjectileFired)
	b.OnExitReached(sink.ExitReached)
	b.OnActorKilled(sink.ActorKilled)
}
