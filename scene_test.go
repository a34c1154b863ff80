package dimension

import (
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewScene(t *testing.T) {
	s := NewScene(800, 600)
	if s.root == nil {
		t.Fatal("root should not be nil")
	}
	if s.root.Name != "root" {
		t.Errorf("root.Name = %q, want %q", s.root.Name, "root")
	}
	if s.root.Type != NodeTypeContainer {
		t.Errorf("root.Type = %d, want NodeTypeContainer", s.root.Type)
	}
	if s.Viewport().Width != 800 || s.Viewport().Height != 600 {
		t.Errorf("viewport = %vx%v, want 800x600", s.Viewport().Width, s.Viewport().Height)
	}
	if s.Logger() == nil {
		t.Error("Logger should never be nil")
	}
}

func TestSceneRoot(t *testing.T) {
	s := NewScene(800, 600)
	if s.Root() != s.root {
		t.Error("Root() should return the internal root node")
	}
}

func TestSceneSetEntityStore(t *testing.T) {
	s := NewScene(800, 600)
	s.SetEntityStore(nil) // should not panic
	if s.store != nil {
		t.Error("store should be nil")
	}
}

func TestSceneSetLoggerNil(t *testing.T) {
	s := NewScene(800, 600)
	s.SetLogger(nil)
	if s.Logger() == nil {
		t.Error("SetLogger(nil) should install a no-op logger")
	}
}

func TestSceneSetDebugMode(t *testing.T) {
	s := NewScene(800, 600)
	s.SetDebugMode(true)
	if !s.debug || !globalDebug {
		t.Error("debug should be true")
	}
	s.SetDebugMode(false)
	if s.debug || globalDebug {
		t.Error("debug should be false")
	}
}

// --- Clock ---

func TestStepMountsOnce(t *testing.T) {
	s := NewScene(800, 600)
	if s.Mounted() {
		t.Fatal("scene should not be mounted before the first step")
	}
	s.Step(0)
	if !s.Mounted() {
		t.Fatal("scene should be mounted after the first step")
	}
	s.Step(16 * time.Millisecond)
	if s.Frames() != 2 {
		t.Errorf("Frames = %d, want 2", s.Frames())
	}
}

func TestStepClampsBackwardsTime(t *testing.T) {
	s := NewScene(800, 600)
	s.Step(time.Second)
	s.Step(500 * time.Millisecond)
	if s.Now() != time.Second {
		t.Errorf("Now = %v, want 1s", s.Now())
	}
}

func TestUpdateAdvancesOneTick(t *testing.T) {
	s := NewScene(800, 600)
	s.Update()
	s.Update()
	if s.Now() <= 0 {
		t.Errorf("Now = %v, want > 0 after two updates", s.Now())
	}
	if s.Frames() != 2 {
		t.Errorf("Frames = %d, want 2", s.Frames())
	}
}

func TestOnUpdateReceivesDelta(t *testing.T) {
	s := NewScene(800, 600)
	var got []time.Duration
	n := NewContainer("ticker")
	n.OnUpdate = func(dt time.Duration) { got = append(got, dt) }
	s.Root().AddChild(n)

	s.Step(0)
	s.Step(20 * time.Millisecond)
	s.Step(50 * time.Millisecond)

	want := []time.Duration{0, 20 * time.Millisecond, 30 * time.Millisecond}
	if len(got) != len(want) {
		t.Fatalf("OnUpdate calls = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("dt[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

// --- Reveal reporting ---

type recordingStore struct {
	interactions []InteractionEvent
	reveals      []RevealEvent
}

func (r *recordingStore) EmitEvent(e InteractionEvent) { r.interactions = append(r.interactions, e) }
func (r *recordingStore) EmitReveal(e RevealEvent)     { r.reveals = append(r.reveals, e) }

func TestRevealReportedOnceToStoreAndLog(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	s := NewScene(800, 600)
	s.SetLogger(zap.New(core))
	store := &recordingStore{}
	s.SetEntityStore(store)

	card := NewRect("card", 100, 100, ColorWhite)
	card.EntityID = 3
	card.SetPosition(0, 1000)
	s.Root().AddChild(card)
	s.Viewport().ContentHeight = 2000
	s.Reveal(card, RevealSpec{Mode: TriggerOnViewportEnter, Duration: 500 * time.Millisecond})

	s.Step(0)
	if len(store.reveals) != 0 {
		t.Fatalf("off-screen card fired early: %+v", store.reveals)
	}

	s.Viewport().SetScroll(600)
	s.Step(100 * time.Millisecond)
	s.Viewport().SetScroll(0)
	s.Step(200 * time.Millisecond)
	s.Viewport().SetScroll(600)
	s.Step(300 * time.Millisecond)

	if len(store.reveals) != 1 {
		t.Fatalf("reveal events = %d, want 1", len(store.reveals))
	}
	ev := store.reveals[0]
	if ev.EntityID != 3 || ev.Name != "card" || ev.Mode != TriggerOnViewportEnter || ev.At != 100*time.Millisecond {
		t.Errorf("reveal event = %+v", ev)
	}
	if n := logs.FilterMessage("reveal fired").Len(); n != 1 {
		t.Errorf("reveal log entries = %d, want 1", n)
	}
}
