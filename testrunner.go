package dimension

import (
	"fmt"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	Notch  float64 `yaml:"notches,omitempty"`
	Key    string  `yaml:"key,omitempty"`
	Node   string  `yaml:"node,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
	Millis int     `yaml:"ms,omitempty"`
}

// testScript is the top-level structure for a test script.
type testScript struct {
	Steps []testStep `yaml:"steps"`
}

// scriptKeys maps script key names to the keys the viewport reacts to.
var scriptKeys = map[string]ebiten.Key{
	"down":     ebiten.KeyArrowDown,
	"up":       ebiten.KeyArrowUp,
	"pagedown": ebiten.KeyPageDown,
	"pageup":   ebiten.KeyPageUp,
	"space":    ebiten.KeySpace,
	"home":     ebiten.KeyHome,
	"end":      ebiten.KeyEnd,
}

// TestRunner sequences injected input, scrolls, screenshots and reveal
// assertions across frames for automated visual testing. Attach to a Scene
// via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	waitUntil time.Duration
	done      bool
	failures  []string
}

// LoadTestScript parses a YAML (or JSON) test script and returns a TestRunner
// ready to be attached to a Scene via SetTestRunner.
func LoadTestScript(data []byte) (*TestRunner, error) {
	var script testScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

func (st testStep) validate() error {
	switch st.Action {
	case "screenshot", "click", "scroll", "scrollTo", "wait":
		return nil
	case "key":
		if _, ok := scriptKeys[strings.ToLower(st.Key)]; !ok {
			return fmt.Errorf("unknown key %q", st.Key)
		}
		return nil
	case "expectRevealed", "expectHidden":
		if st.Node == "" {
			return fmt.Errorf("%s needs a node name", st.Action)
		}
		return nil
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
}

// SetTestRunner attaches a TestRunner to the scene. The runner's step method
// is called from Scene.Step before processInput each frame.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Failures returns the messages of every failed expectation so far.
func (r *TestRunner) Failures() []string {
	return r.failures
}

// step advances the test runner by one frame. Called from Scene.Step.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if s.now < r.waitUntil {
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		s.Screenshot(st.Label)
	case "click":
		s.InjectClick(st.X, st.Y)
	case "scroll":
		s.InjectScroll(st.Notch)
	case "scrollTo":
		s.viewport.ScrollTo(st.Y, time.Duration(st.Millis)*time.Millisecond, nil)
	case "key":
		s.InjectKey(scriptKeys[strings.ToLower(st.Key)])
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
		if st.Millis > 0 {
			r.waitUntil = s.now + time.Duration(st.Millis)*time.Millisecond
		}
	case "expectRevealed", "expectHidden":
		r.expect(s, st)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && s.now >= r.waitUntil && len(s.injectQueue) == 0 {
		r.done = true
	}
}

// expect checks the reveal state of the named node.
func (r *TestRunner) expect(s *Scene, st testStep) {
	want := st.Action == "expectRevealed"
	var got, found bool
	for _, b := range s.reveals {
		if b.Node.Name == st.Node {
			found = true
			got = b.Unit.Fired()
			break
		}
	}
	var msg string
	switch {
	case !found:
		msg = fmt.Sprintf("%s: no reveal bound to node %q", st.Action, st.Node)
	case got != want:
		msg = fmt.Sprintf("%s: node %q fired=%v at %v", st.Action, st.Node, got, s.now)
	default:
		return
	}
	r.failures = append(r.failures, msg)
	s.logger.Warn("test script expectation failed", zap.String("detail", msg))
}
