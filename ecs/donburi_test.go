package ecs

import (
	"testing"
	"time"

	"github.com/phanxgames/dimension"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []dimension.InteractionEvent
	InteractionEventType.Subscribe(world, func(w donburi.World, e dimension.InteractionEvent) {
		received = append(received, e)
	})

	store.EmitEvent(dimension.InteractionEvent{
		Type:     dimension.EventPointerDown,
		EntityID: 42,
		GlobalX:  100,
		GlobalY:  200,
		Button:   dimension.MouseButtonLeft,
	})
	store.EmitEvent(dimension.InteractionEvent{
		Type:       dimension.EventScroll,
		ScrollFrom: 0,
		ScrollTo:   120,
	})

	// Events are queued — process them.
	InteractionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != dimension.EventPointerDown || e0.EntityID != 42 {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.GlobalX != 100 || e0.GlobalY != 200 {
		t.Errorf("event 0 position: (%v,%v)", e0.GlobalX, e0.GlobalY)
	}
	e1 := received[1]
	if e1.Type != dimension.EventScroll || e1.ScrollTo != 120 {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiStore_EmitReveal(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []dimension.RevealEvent
	RevealEventType.Subscribe(world, func(w donburi.World, e dimension.RevealEvent) {
		received = append(received, e)
	})

	store.EmitReveal(dimension.RevealEvent{EntityID: 7, Name: "hero-text", Mode: dimension.TriggerOnMount})
	RevealEventType.ProcessEvents(world)

	if len(received) != 1 || received[0].EntityID != 7 || received[0].Name != "hero-text" {
		t.Fatalf("unexpected reveal events: %+v", received)
	}
}

func TestDonburiStore_ImplementsEntityStore(t *testing.T) {
	world := donburi.NewWorld()
	var store dimension.EntityStore = NewDonburiStore(world)
	_ = store // compile-time interface check
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	InteractionEventType.Subscribe(world, func(w donburi.World, e dimension.InteractionEvent) {
		count1++
	})
	InteractionEventType.Subscribe(world, func(w donburi.World, e dimension.InteractionEvent) {
		count2++
	})

	store.EmitEvent(dimension.InteractionEvent{Type: dimension.EventClick})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestScene_PublishesRevealsOnce(t *testing.T) {
	world := donburi.NewWorld()
	scene := dimension.NewScene(800, 600)
	scene.SetEntityStore(NewDonburiStore(world))

	hero := dimension.NewRect("hero", 200, 100, dimension.ColorWhite)
	hero.EntityID = 9
	scene.Root().AddChild(hero)
	scene.Reveal(hero, dimension.RevealSpec{Mode: dimension.TriggerOnMount, Duration: 500 * time.Millisecond})

	var fired []dimension.RevealEvent
	RevealEventType.Subscribe(world, func(w donburi.World, e dimension.RevealEvent) {
		fired = append(fired, e)
	})

	for i := 0; i < 10; i++ {
		scene.Step(time.Duration(i) * 16 * time.Millisecond)
	}
	events.ProcessAllEvents(world)

	if len(fired) != 1 {
		t.Fatalf("expected 1 reveal event, got %d", len(fired))
	}
	if fired[0].EntityID != 9 || fired[0].At != 0 {
		t.Errorf("reveal event: %+v", fired[0])
	}
}

func TestScene_PublishesScroll(t *testing.T) {
	world := donburi.NewWorld()
	scene := dimension.NewScene(800, 600)
	scene.SetEntityStore(NewDonburiStore(world))
	scene.Viewport().ContentHeight = 2000

	var got []dimension.InteractionEvent
	InteractionEventType.Subscribe(world, func(w donburi.World, e dimension.InteractionEvent) {
		got = append(got, e)
	})

	scene.Step(0)
	scene.InjectScroll(2)
	scene.Step(16 * time.Millisecond)
	events.ProcessAllEvents(world)

	if len(got) != 1 || got[0].Type != dimension.EventScroll || got[0].ScrollTo != 120 {
		t.Fatalf("unexpected events: %+v", got)
	}
}
