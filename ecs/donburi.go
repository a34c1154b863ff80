package ecs

import (
	"github.com/phanxgames/dimension"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for dimension interaction
// events. Subscribe to this in your ECS systems to receive pointer, click and
// scroll events.
var InteractionEventType = events.NewEventType[dimension.InteractionEvent]()

// RevealEventType is the Donburi event type published once per reveal unit,
// when it fires.
var RevealEventType = events.NewEventType[dimension.RevealEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Events are published to InteractionEventType and RevealEventType and can
// be consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) dimension.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event dimension.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

func (s *donburiStore) EmitReveal(event dimension.RevealEvent) {
	RevealEventType.Publish(s.world, event)
}
