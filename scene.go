package dimension

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, interaction and reveal events are forwarded to it.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
	EmitReveal(event RevealEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type     EventType
	EntityID uint32
	Name     string
	GlobalX  float64
	GlobalY  float64
	LocalX   float64
	LocalY   float64
	Button   MouseButton
	// Scroll fields (valid for EventScroll)
	ScrollFrom float64
	ScrollTo   float64
}

// RevealEvent reports that a reveal unit fired.
type RevealEvent struct {
	EntityID uint32
	Name     string
	Mode     TriggerMode
	At       time.Duration
}

const defaultCommandCap = 256

// Scene is the top-level object that owns the node tree, the viewport, the
// animation bindings, input state and render buffers.
//
// Time is explicit: Step takes a timestamp measured from scene start and
// every animation samples that value. Update is the Ebitengine entry point
// and advances the clock by one tick per call.
type Scene struct {
	root     *Node
	viewport *Viewport
	observer Observer
	store    EntityStore
	logger   *zap.Logger
	debug    bool

	// ClearColor fills the screen before drawing when its alpha is non-zero.
	ClearColor Color
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	// Clock
	now     time.Duration
	mounted bool
	frames  uint64

	// Animation
	reveals []*RevealBinding
	ambient []*OscillatorBinding

	// Render state
	commands []RenderCommand
	sortBuf  []RenderCommand

	// Input state
	handlers    handlerRegistry
	pointer     pointerState
	injectQueue []syntheticEvent

	// Tooling
	testRunner      *TestRunner
	screenshotQueue []string
	updateFunc      func() error
}

// NewScene creates a new scene with a pre-created root container and a
// viewport of the given screen size.
func NewScene(width, height float64) *Scene {
	root := NewContainer("root")
	return &Scene{
		root:          root,
		viewport:      newViewport(width, height),
		logger:        zap.NewNop(),
		ScreenshotDir: "screenshots",
		commands:      make([]RenderCommand, 0, defaultCommandCap),
		sortBuf:       make([]RenderCommand, 0, defaultCommandCap),
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Viewport returns the scene's scrolling viewport.
func (s *Scene) Viewport() *Viewport {
	return s.viewport
}

// Observer returns the scene's intersection observer.
func (s *Scene) Observer() *Observer {
	return &s.observer
}

// Now returns the timestamp of the last Step.
func (s *Scene) Now() time.Duration {
	return s.now
}

// Mounted reports whether the scene has taken its first step.
func (s *Scene) Mounted() bool {
	return s.mounted
}

// Frames returns the number of steps taken.
func (s *Scene) Frames() uint64 {
	return s.frames
}

// Logger returns the scene's logger. Never nil.
func (s *Scene) Logger() *zap.Logger {
	return s.logger
}

// SetLogger sets the logger used for reveal, asset and debug output.
// A nil logger disables logging.
func (s *Scene) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	s.logger = l
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetUpdateFunc sets a callback run by Run before every Update.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, deep trees are reported and per-frame timing stats are
// logged at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
	if enabled {
		debugLogger = s.logger
	}
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool

// Update advances the scene clock by one tick (1/TPS) and steps it.
func (s *Scene) Update() {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = 60
	}
	s.Step(s.now + time.Second/time.Duration(tps))
}

// Step runs one frame at timestamp now: scripted steps, input, viewport
// animation, node update hooks, the mount notification (first step only),
// the intersection check and finally every animation binding. Timestamps
// earlier than the previous step are clamped to it.
func (s *Scene) Step(now time.Duration) {
	if now < s.now {
		now = s.now
	}
	dt := now - s.now
	s.now = now

	// Refresh first so hit testing sees nodes added since the last step.
	updateWorldTransform(s.root, identityTransform, 1.0, LayerContent, false)

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	prevScroll := s.viewport.ScrollY
	s.processInput()
	s.viewport.update(dt)
	s.fireScroll(prevScroll)
	runUpdateHooks(s.root, dt)

	updateWorldTransform(s.root, identityTransform, 1.0, LayerContent, false)

	if !s.mounted {
		s.mounted = true
		for _, b := range s.reveals {
			b.Unit.Mount(now)
		}
	}
	s.observer.check(s.root, s.viewport, now)
	s.applyAnimations(now)

	// Bindings moved nodes; refresh so hit testing and drawing agree.
	updateWorldTransform(s.root, identityTransform, 1.0, LayerContent, false)
	s.frames++
}

// runUpdateHooks calls OnUpdate on every node that has one.
func runUpdateHooks(n *Node, dt time.Duration) {
	if n.OnUpdate != nil {
		n.OnUpdate(dt)
	}
	for _, c := range n.children {
		runUpdateHooks(c, dt)
	}
}

// reportReveal logs a fired unit and forwards it to the entity store.
func (s *Scene) reportReveal(b *RevealBinding) {
	ev := RevealEvent{
		EntityID: b.Node.EntityID,
		Name:     b.Node.Name,
		Mode:     b.Unit.Mode(),
		At:       b.Unit.FiredAt(),
	}
	s.logger.Debug("reveal fired",
		zap.String("node", ev.Name),
		zap.Stringer("mode", ev.Mode),
		zap.Duration("at", ev.At),
		zap.Duration("delay", b.Unit.Spec().Delay))
	if s.store != nil {
		s.store.EmitReveal(ev)
	}
}
