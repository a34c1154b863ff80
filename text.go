package dimension

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// --- Font ---

// Font wraps Ebitengine's text/v2 for TrueType font rendering at a fixed size.
type Font struct {
	face   *text.GoTextFace
	source *text.GoTextFaceSource
	size   float64
	lh     float64 // cached line height
}

// LoadFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadFont(ttfData []byte, size float64) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("dimension: failed to parse TTF data: %w", err)
	}
	return newFont(source, size), nil
}

func newFont(source *text.GoTextFaceSource, size float64) *Font {
	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}
	m := face.Metrics()
	return &Font{
		face:   face,
		source: source,
		size:   size,
		lh:     m.HAscent + m.HDescent + m.HLineGap,
	}
}

var (
	regularSource *text.GoTextFaceSource
	boldSource    *text.GoTextFaceSource
)

// DefaultFont returns the bundled Go font at size. The font sources are
// parsed on first use and shared.
func DefaultFont(size float64, bold bool) *Font {
	if bold {
		if boldSource == nil {
			boldSource = mustSource(gobold.TTF)
		}
		return newFont(boldSource, size)
	}
	if regularSource == nil {
		regularSource = mustSource(goregular.TTF)
	}
	return newFont(regularSource, size)
}

func mustSource(ttf []byte) *text.GoTextFaceSource {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		panic("dimension: bundled font: " + err.Error())
	}
	return src
}

// Size returns the font size in pixels.
func (f *Font) Size() float64 {
	return f.size
}

// MeasureString returns the width and height of the rendered text.
func (f *Font) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *Font) LineHeight() float64 {
	return f.lh
}

// Face returns the underlying GoTextFace for direct text/v2 rendering.
func (f *Font) Face() *text.GoTextFace {
	return f.face
}

func (f *Font) advance(s string) float64 {
	return text.Advance(s, f.face)
}

// --- TextBlock ---

// TextBlock holds text content, formatting, and cached layout state.
type TextBlock struct {
	Content   string
	Font      *Font
	Align     TextAlign
	WrapWidth float64 // 0 = no wrapping
	Color     Color
	// LineSpacing scales the font's line height; 0 means 1.
	LineSpacing float64

	// Cached layout (unexported)
	layoutDirty bool
	lines       []string
	measuredW   float64
	measuredH   float64

	// Rendering cache (unexported)
	image      *ebiten.Image
	imageDirty bool
}

// lineHeight returns the effective line height for this text block.
func (tb *TextBlock) lineHeight() float64 {
	if tb.Font == nil {
		return 0
	}
	if tb.LineSpacing > 0 {
		return tb.Font.LineHeight() * tb.LineSpacing
	}
	return tb.Font.LineHeight()
}

// Measure lays the text out if needed and returns its box. A wrapped block
// is as wide as its wrap width so alignment has room to act.
func (tb *TextBlock) Measure() (w, h float64) {
	tb.layout()
	return tb.measuredW, tb.measuredH
}

// Lines returns the laid-out lines.
func (tb *TextBlock) Lines() []string {
	return tb.layout()
}

// Invalidate forces re-layout and re-render on the next use.
func (tb *TextBlock) Invalidate() {
	tb.layoutDirty = true
}

// layout recomputes line breaks if dirty. Returns the cached lines.
func (tb *TextBlock) layout() []string {
	if !tb.layoutDirty {
		return tb.lines
	}
	tb.layoutDirty = false
	tb.imageDirty = true
	tb.lines = tb.lines[:0]
	tb.measuredW, tb.measuredH = 0, 0

	if tb.Font == nil || tb.Content == "" {
		return tb.lines
	}

	for _, para := range strings.Split(tb.Content, "\n") {
		if tb.WrapWidth <= 0 {
			tb.lines = append(tb.lines, para)
			continue
		}
		tb.lines = tb.wrapParagraph(tb.lines, para)
	}

	for _, line := range tb.lines {
		if w := tb.Font.advance(line); w > tb.measuredW {
			tb.measuredW = w
		}
	}
	if tb.WrapWidth > 0 {
		tb.measuredW = tb.WrapWidth
	}
	tb.measuredH = float64(len(tb.lines)) * tb.lineHeight()
	return tb.lines
}

// wrapParagraph greedily breaks para at spaces so no line exceeds the wrap
// width. A single word wider than the wrap width gets a line of its own.
func (tb *TextBlock) wrapParagraph(lines []string, para string) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return append(lines, "")
	}
	cur := words[0]
	for _, w := range words[1:] {
		candidate := cur + " " + w
		if tb.Font.advance(candidate) <= tb.WrapWidth {
			cur = candidate
			continue
		}
		lines = append(lines, cur)
		cur = w
	}
	return append(lines, cur)
}

// --- Text rendering helpers (used by render.go) ---

// renderImage returns the cached white image of the laid-out text,
// re-rendering it only when content or layout changed.
func (tb *TextBlock) renderImage() *ebiten.Image {
	lines := tb.layout()
	if tb.measuredW <= 0 || tb.measuredH <= 0 {
		return nil
	}
	if !tb.imageDirty && tb.image != nil {
		return tb.image
	}
	tb.imageDirty = false

	w := int(tb.measuredW) + 1
	h := int(tb.measuredH) + 1
	if tb.image != nil {
		b := tb.image.Bounds()
		if b.Dx() != w || b.Dy() != h {
			tb.image.Deallocate()
			tb.image = ebiten.NewImage(w, h)
		} else {
			tb.image.Clear()
		}
	} else {
		tb.image = ebiten.NewImage(w, h)
	}

	lh := tb.lineHeight()
	for i, line := range lines {
		op := &text.DrawOptions{}
		x := 0.0
		switch tb.Align {
		case TextAlignCenter:
			x = tb.measuredW / 2
			op.PrimaryAlign = text.AlignCenter
		case TextAlignRight:
			x = tb.measuredW
			op.PrimaryAlign = text.AlignEnd
		}
		op.GeoM.Translate(x, float64(i)*lh)
		text.Draw(tb.image, line, tb.Font.face, op)
	}
	return tb.image
}

// SetTextColor changes a text node's color. The cached glyph image is white
// and tinted at draw time, so no re-render is needed.
func (n *Node) SetTextColor(c Color) {
	if n.Text == nil {
		return
	}
	n.Text.Color = c
}
