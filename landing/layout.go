package landing

import (
	"math"

	"github.com/phanxgames/dimension"
)

// Layout constants, in pixels.
const (
	maxContainer  = 1280.0
	containerPad  = 24.0
	wideBreak     = 768.0
	headerHeight  = 64.0
	mainTop       = 96.0
	heroMinScreen = 0.8

	heroGap       = 40.0
	heroFramePad  = 16.0
	heroImageWide = 384.0
	heroImageTall = 288.0

	sectionPad      = 80.0
	contactPad      = 64.0
	footerPad       = 40.0
	featureGap      = 32.0
	cardPad         = 24.0
	iconPlate       = 48.0
	iconSize        = 24.0
	caseGap         = 32.0
	caseRowGap      = 64.0
	caseImageHeight = 256.0
	buttonPadX      = 24.0
	buttonPadY      = 12.0
	buttonGap       = 16.0
	navGap          = 24.0

	shadowBlur  = 24.0
	shadowDrop  = 16.0
	blobTexture = 160
	blobBlur    = 12
)

// grid computes the centered container and its columns for a window width.
type grid struct {
	screenW float64
	left    float64 // container content left edge
	width   float64 // container content width
	wide    bool
}

func newGrid(screenW float64) grid {
	outer := math.Min(screenW, maxContainer)
	return grid{
		screenW: screenW,
		left:    (screenW-outer)/2 + containerPad,
		width:   math.Max(outer-2*containerPad, 1),
		wide:    screenW >= wideBreak,
	}
}

// columns splits the container into n equal columns separated by gap and
// returns each column's x and the column width. Narrow layouts always get
// one column.
func (g grid) columns(n int, gap float64) (xs []float64, w float64) {
	if !g.wide || n < 1 {
		n = 1
	}
	w = (g.width - gap*float64(n-1)) / float64(n)
	xs = make([]float64, n)
	for i := range xs {
		xs[i] = g.left + float64(i)*(w+gap)
	}
	return xs, w
}

// text creates a text node wrapped at wrap pixels (0 = no wrap).
func text(name, s string, font *dimension.Font, c dimension.Color, wrap float64, align dimension.TextAlign) *dimension.Node {
	n := dimension.NewText(name, s, font)
	n.Text.Color = c
	n.Text.Align = align
	if wrap > 0 {
		n.SetWrapWidth(wrap)
	}
	return n
}

// stack places nodes top to bottom inside parent starting at y with the
// given gaps after each node (missing gaps are zero) and returns the bottom.
func stack(parent *dimension.Node, x, y float64, nodes []*dimension.Node, gaps ...float64) float64 {
	for i, n := range nodes {
		n.SetPosition(x, y)
		parent.AddChild(n)
		y += n.Height
		if i < len(gaps) {
			y += gaps[i]
		}
	}
	return y
}
