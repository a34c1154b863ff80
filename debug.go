package dimension

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// debugStats holds per-frame timing and draw-call metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	traverseTime time.Duration
	sortTime     time.Duration
	submitTime   time.Duration
	commandCount int
	batchCount   int
}

// debugLog writes timing and draw-call stats to the scene logger.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	s.logger.Debug("frame",
		zap.Uint64("frame", s.frames),
		zap.Duration("traverse", stats.traverseTime),
		zap.Duration("sort", stats.sortTime),
		zap.Duration("submit", stats.submitTime),
		zap.Duration("total", stats.traverseTime+stats.sortTime+stats.submitTime),
		zap.Int("commands", stats.commandCount),
		zap.Int("batches", stats.batchCount))
}

// debugLogger receives tree warnings from node operations, which have no
// Scene pointer. SetDebugMode points it at the scene's logger.
var debugLogger = zap.NewNop()

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("dimension debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		debugLogger.Warn("tree depth exceeds threshold",
			zap.Int("depth", depth),
			zap.Int("threshold", debugMaxTreeDepth),
			zap.String("node", n.Name))
	}
}
