// Package ecs provides ECS adapters for dragarea.
package ecs

import (
	"github.com/phanxgames/dragarea"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for drag area events.
// Subscribe to it in ECS systems to receive drag, pan and click events.
var InteractionEventType = events.NewEventType[dragarea.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Events are published to InteractionEventType and delivered by
// ProcessEvents.
func NewDonburiStore(world donburi.World) dragarea.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event dragarea.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

// SubscribeType subscribes fn to events of a single type.
func SubscribeType(world donburi.World, typ dragarea.EventType, fn func(donburi.World, dragarea.InteractionEvent)) {
	InteractionEventType.Subscribe(world, func(w donburi.World, e dragarea.InteractionEvent) {
		if e.Type == typ {
			fn(w, e)
		}
	})
}
