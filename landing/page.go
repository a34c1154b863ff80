// Package landing composes the landing page scene from a content registry:
// background blobs, header, hero, feature grid, case studies, contact and
// footer, with every entrance bound to a reveal unit.
package landing

import (
	"errors"
	"fmt"
	"image"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/phanxgames/dimension"
	"github.com/phanxgames/dimension/content"
)

// DefaultScrollDuration is how long a nav link scroll takes.
const DefaultScrollDuration = 600 * time.Millisecond

// Options configures Compose. The zero value is usable.
type Options struct {
	// Assets resolves image references. Nil shows placeholders.
	Assets *dimension.AssetLoader
	Logger *zap.Logger
	// Theme overrides DefaultTheme.
	Theme *Theme
	// Year is printed in the footer; 0 means the current year.
	Year int
	// ScrollDuration is the nav link scroll time; 0 means
	// DefaultScrollDuration.
	ScrollDuration time.Duration
}

// CaseUnits are the reveal units of one case study row.
type CaseUnits struct {
	Side  content.Side
	Image *dimension.RevealUnit
	Text  *dimension.RevealUnit
}

// Page is a composed landing page.
type Page struct {
	Scene   *dimension.Scene
	Content *content.Registry

	Hero      *dimension.RevealUnit
	HeroImage *dimension.RevealUnit
	Features  []*dimension.RevealUnit
	Cases     []CaseUnits
	Contact   *dimension.RevealUnit
	Ambient   [2]*dimension.Oscillator

	// Anchors maps section anchors to the scroll position that brings the
	// section just under the header, limited to the scroll range.
	Anchors map[string]float64
	// Height is the full content height.
	Height float64

	scrollDuration time.Duration
	logger         *zap.Logger
}

// ScrollTo animates the viewport to the named section.
func (p *Page) ScrollTo(anchor string) error {
	y, ok := p.Anchors[anchor]
	if !ok {
		return fmt.Errorf("scroll to: unknown anchor %q", anchor)
	}
	p.Scene.Viewport().ScrollTo(y, p.scrollDuration, nil)
	p.logger.Debug("scroll to anchor", zap.String("anchor", anchor), zap.Float64("y", y))
	return nil
}

// composer carries layout state while the page is built.
type composer struct {
	scene  *dimension.Scene
	page   *Page
	reg    *content.Registry
	theme  Theme
	fonts  Fonts
	grid   grid
	assets *dimension.AssetLoader
	year   int

	screenH    float64
	background *dimension.Node
	content    *dimension.Node
	overlay    *dimension.Node
	y          float64
}

// Compose builds the page into scene's root. The scene's viewport size
// decides the layout; its content height is set to the page height.
func Compose(scene *dimension.Scene, reg *content.Registry, opts Options) (*Page, error) {
	if scene == nil {
		return nil, errors.New("compose: nil scene")
	}
	if reg == nil {
		return nil, errors.New("compose: nil content")
	}
	if err := reg.Validate(); err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	theme := DefaultTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}
	assets := opts.Assets
	if assets == nil {
		assets = dimension.NewAssetLoader(nil, logger)
	}
	year := opts.Year
	if year == 0 {
		year = time.Now().Year()
	}
	scrollDuration := opts.ScrollDuration
	if scrollDuration <= 0 {
		scrollDuration = DefaultScrollDuration
	}

	vp := scene.Viewport()
	g := newGrid(vp.Width)
	c := &composer{
		scene: scene,
		page: &Page{
			Scene:          scene,
			Content:        reg,
			Anchors:        make(map[string]float64, len(content.Anchors)),
			scrollDuration: scrollDuration,
			logger:         logger,
		},
		reg:        reg,
		theme:      theme,
		fonts:      DefaultFonts(g.wide),
		grid:       g,
		assets:     assets,
		year:       year,
		screenH:    vp.Height,
		background: dimension.NewContainer("background-layer"),
		content:    dimension.NewContainer("content"),
		overlay:    dimension.NewContainer("header"),
	}
	c.background.Layer = dimension.LayerBackground
	c.overlay.Layer = dimension.LayerOverlay
	scene.Root().AddChildren(c.background, c.content, c.overlay)

	c.composeBackground()
	c.composeHero()
	c.composeFeatures()
	c.composeCases()
	c.composeContact()
	c.composeFooter()
	c.composeHeader()

	c.page.Height = c.y
	vp.ContentHeight = c.y
	for name, y := range c.page.Anchors {
		c.page.Anchors[name] = math.Min(y, vp.MaxScroll())
	}
	scene.ClearColor = theme.Background[2]

	logger.Info("page composed",
		zap.String("brand", reg.Brand),
		zap.Float64("height", c.y),
		zap.Bool("wide", g.wide),
		zap.Int("reveals", len(scene.RevealBindings())))
	return c.page, nil
}

// anchor records a section whose top edge is at top.
func (c *composer) anchor(name string, top float64) {
	c.page.Anchors[name] = math.Max(0, top-headerHeight)
}

func (c *composer) composeBackground() {
	w, h := c.grid.screenW, c.screenH
	bg := dimension.NewImage("background",
		dimension.GradientImage(4, 256, c.theme.Background[:]...), w, h)
	c.background.AddChild(bg)

	blobA := dimension.NewImage("blob-a", softBlob(c.theme.BlobA), 600, 600)
	blobA.SetPosition(-80, 40)
	blobA.CenterPivot()
	c.background.AddChild(blobA)

	blobB := dimension.NewImage("blob-b", softBlob(c.theme.BlobB), 700, 700)
	blobB.SetPosition(w-700, h+160-700)
	blobB.CenterPivot()
	c.background.AddChild(blobB)

	c.page.Ambient[0] = dimension.OscillatorA()
	c.page.Ambient[1] = dimension.OscillatorB()
	c.scene.Oscillate(blobA, c.page.Ambient[0])
	c.scene.Oscillate(blobB, c.page.Ambient[1])
}

// softBlob renders a small gradient disc and blurs it. The node stretches
// it to its full size, which softens it further.
func softBlob(colors [2]dimension.Color) *ebiten.Image {
	return dimension.ApplyFilters(dimension.BlobImage(blobTexture, colors[0], colors[1]),
		dimension.NewBlurFilter(blobBlur))
}

func (c *composer) composeHero() {
	top := mainTop
	c.page.Anchors[content.AnchorHome] = 0
	xs, colW := c.grid.columns(2, heroGap)
	f, t := c.fonts, c.theme
	hero := c.reg.Hero

	textBox := dimension.NewContainer("hero-text")
	textH := stack(textBox, 0, 0, []*dimension.Node{
		text("hero-headline", hero.Headline, f.Display, t.Text, colW, dimension.TextAlignLeft),
		text("hero-tagline", hero.Tagline, f.Display, t.Accent, colW, dimension.TextAlignLeft),
		text("hero-body", hero.Body, f.Body, t.Muted, colW, dimension.TextAlignLeft),
	}, 0, 16)
	textBox.Width, textBox.Height = colW, textH

	imgH := heroImageTall
	if c.grid.wide {
		imgH = heroImageWide
	}
	frameH := imgH + 2*heroFramePad
	frame := dimension.NewContainer("hero-image")
	frame.Width, frame.Height = colW, frameH
	shadow := dimension.NewImage("hero-shadow",
		dimension.ShadowImage(int(colW), int(frameH), 12, shadowBlur, t.Shadow),
		colW+2*shadowBlur, frameH+2*shadowBlur)
	shadow.SetPosition(-shadowBlur, -shadowBlur+shadowDrop)
	frame.AddChild(shadow)
	frame.AddChild(dimension.NewPanel("hero-frame", colW, frameH, 12, t.Surface))
	photo := c.coverImage("hero-photo", hero.Image, colW-2*heroFramePad, imgH)
	photo.SetPosition(heroFramePad, heroFramePad)
	frame.AddChild(photo)

	var sectionH float64
	if c.grid.wide {
		rowH := math.Max(textH, frameH)
		sectionH = math.Max(heroMinScreen*c.screenH, rowH)
		textBox.SetPosition(xs[0], top+(sectionH-textH)/2)
		frame.SetPosition(xs[1], top+(sectionH-frameH)/2)
	} else {
		stackH := textH + heroGap + frameH
		sectionH = math.Max(heroMinScreen*c.screenH, stackH)
		y := top + (sectionH-stackH)/2
		textBox.SetPosition(xs[0], y)
		frame.SetPosition(xs[0], y+textH+heroGap)
	}
	frame.CenterPivot()
	c.content.AddChildren(textBox, frame)

	c.page.Hero = c.scene.Reveal(textBox, HeroTextReveal())
	c.page.HeroImage = c.scene.Reveal(frame, HeroImageReveal())
	c.y = top + sectionH
}

func (c *composer) composeFeatures() {
	c.anchor(content.AnchorFeatures, c.y)
	c.y += sectionPad
	xs, colW := c.grid.columns(3, featureGap)
	f, t := c.fonts, c.theme
	innerW := colW - 2*cardPad

	items := c.reg.FeatureItems()
	cards := make([]*dimension.Node, len(items))
	heights := make([]float64, len(items))
	rowH := 0.0
	for i, it := range items {
		card := dimension.NewContainer(fmt.Sprintf("feature-%d", i))
		plate := dimension.NewPanel(fmt.Sprintf("feature-%d-plate", i), iconPlate, iconPlate, 6, t.IconPlate)
		icon := dimension.NewImage(fmt.Sprintf("feature-%d-icon", i), IconImage(it.Icon), iconSize, iconSize)
		icon.SetPosition((iconPlate-iconSize)/2, (iconPlate-iconSize)/2)
		plate.AddChild(icon)

		body := dimension.NewContainer(fmt.Sprintf("feature-%d-body", i))
		innerH := stack(body, 0, 0, []*dimension.Node{
			plate,
			text(fmt.Sprintf("feature-%d-title", i), it.Title, f.CardTitle, t.Text, innerW, dimension.TextAlignLeft),
			text(fmt.Sprintf("feature-%d-desc", i), it.Description, f.Small, t.Muted, innerW, dimension.TextAlignLeft),
		}, 16, 8)
		body.SetPosition(cardPad, cardPad)
		card.AddChild(body)

		cards[i] = card
		heights[i] = innerH + 2*cardPad
		rowH = math.Max(rowH, heights[i])
	}

	for i, card := range cards {
		h := heights[i]
		if c.grid.wide {
			h = rowH
			card.SetPosition(xs[i%len(xs)], c.y)
		} else {
			card.SetPosition(xs[0], c.y)
			c.y += h
			if i < len(cards)-1 {
				c.y += featureGap
			}
		}
		card.Width, card.Height = colW, h
		panel := dimension.NewPanel(fmt.Sprintf("feature-%d-panel", i), colW, h, 12, t.Surface)
		panel.ZIndex = -1
		card.AddChild(panel)
		c.content.AddChild(card)
		c.page.Features = append(c.page.Features, c.scene.Reveal(card, FeatureReveal(i)))
	}
	if c.grid.wide && len(cards) > 0 {
		c.y += rowH
	}
	c.y += sectionPad
}

func (c *composer) composeCases() {
	c.anchor(content.AnchorCases, c.y)
	c.y += sectionPad
	xs, colW := c.grid.columns(2, caseGap)
	f, t := c.fonts, c.theme

	cases := c.reg.Cases()
	for i, cs := range cases {
		side := content.SideFor(i)
		img := c.coverImage(fmt.Sprintf("case-%d-image", i), cs.Image, colW, caseImageHeight)

		box := dimension.NewContainer(fmt.Sprintf("case-%d-text", i))
		nodes := []*dimension.Node{
			text(fmt.Sprintf("case-%d-title", i), cs.Title, f.Heading, t.Text, colW, dimension.TextAlignLeft),
			text(fmt.Sprintf("case-%d-summary", i), cs.Summary, f.Body, t.Muted, colW, dimension.TextAlignLeft),
		}
		gaps := []float64{12, 16}
		for j, p := range cs.Points {
			nodes = append(nodes, text(fmt.Sprintf("case-%d-point-%d", i, j), "•  "+p, f.Body, t.Muted, colW, dimension.TextAlignLeft))
			gaps = append(gaps, 4)
		}
		textH := stack(box, 0, 0, nodes, gaps[:len(nodes)-1]...)
		box.Width, box.Height = colW, textH

		var rowH float64
		if c.grid.wide {
			rowH = math.Max(caseImageHeight, textH)
			img.SetPosition(xs[0], c.y+(rowH-caseImageHeight)/2)
			box.SetPosition(xs[1], c.y+(rowH-textH)/2)
		} else {
			rowH = caseImageHeight + caseGap + textH
			img.SetPosition(xs[0], c.y)
			box.SetPosition(xs[0], c.y+caseImageHeight+caseGap)
		}
		c.content.AddChildren(img, box)

		c.page.Cases = append(c.page.Cases, CaseUnits{
			Side:  side,
			Image: c.scene.Reveal(img, CaseImageReveal(side)),
			Text:  c.scene.Reveal(box, CaseTextReveal()),
		})
		c.y += rowH
		if i < len(cases)-1 {
			c.y += caseRowGap
		}
	}
	c.y += sectionPad
}

func (c *composer) composeContact() {
	c.anchor(content.AnchorContact, c.y)
	c.y += contactPad
	g, f, t := c.grid, c.fonts, c.theme
	ct := c.reg.Contact

	heading := text("contact-heading", ct.Heading, f.Heading, t.Text, g.width, dimension.TextAlignCenter)
	heading.SetPosition(g.left, c.y)
	c.content.AddChild(heading)
	c.page.Contact = c.scene.Reveal(heading, ContactReveal())
	c.y += heading.Height + 16

	body := text("contact-body", ct.Body, f.Body, t.Muted, g.width, dimension.TextAlignCenter)
	body.SetPosition(g.left, c.y)
	c.content.AddChild(body)
	c.y += body.Height + 24

	primary := c.button("contact-primary", ct.Primary, t.OnButton, func(w, h float64) *dimension.Node {
		return dimension.NewPanel("contact-primary-fill", w, h, 8, t.Button)
	})
	secondary := c.button("contact-secondary", ct.Secondary, t.Text, func(w, h float64) *dimension.Node {
		return dimension.NewImage("contact-secondary-border",
			dimension.OutlineImage(int(math.Ceil(w)), int(math.Ceil(h)), 8, 1, t.Border), w, h)
	})
	total := primary.Width + buttonGap + secondary.Width
	x := g.left + (g.width-total)/2
	primary.SetPosition(x, c.y)
	secondary.SetPosition(x+primary.Width+buttonGap, c.y)
	c.content.AddChildren(primary, secondary)
	c.y += math.Max(primary.Height, secondary.Height) + contactPad
}

// button builds a padded, hoverable label over a backdrop made by fill.
func (c *composer) button(name, label string, fg dimension.Color, fill func(w, h float64) *dimension.Node) *dimension.Node {
	lbl := text(name+"-label", label, c.fonts.Button, fg, 0, dimension.TextAlignLeft)
	w, h := lbl.Width+2*buttonPadX, lbl.Height+2*buttonPadY
	btn := dimension.NewContainer(name)
	btn.Width, btn.Height = w, h
	btn.AddChild(fill(w, h))
	lbl.SetPosition(buttonPadX, buttonPadY)
	btn.AddChild(lbl)

	btn.Interactable = true
	btn.OnPointerEnter = func(dimension.PointerContext) { btn.SetAlpha(0.85) }
	btn.OnPointerLeave = func(dimension.PointerContext) { btn.SetAlpha(1) }
	return btn
}

func (c *composer) composeFooter() {
	g, f, t := c.grid, c.fonts, c.theme
	border := dimension.NewRect("footer-border", g.screenW, 1, t.Border)
	border.SetPosition(0, c.y)
	c.content.AddChild(border)
	c.y += footerPad

	line := text("footer", FooterText(c.year, c.reg.Footer.Owner), f.Small, t.Faint, g.width, dimension.TextAlignCenter)
	line.SetPosition(g.left, c.y)
	c.content.AddChild(line)
	c.y += line.Height + footerPad
}

// FooterText formats the copyright line.
func FooterText(year int, owner string) string {
	return fmt.Sprintf("© %d — %s", year, owner)
}

func (c *composer) composeHeader() {
	g, f, t := c.grid, c.fonts, c.theme
	bar := dimension.NewRect("header-bar", g.screenW, headerHeight, t.Background[1].WithAlpha(0.85))
	sheen := dimension.NewRect("header-sheen", g.screenW, headerHeight, t.Surface)
	c.overlay.AddChildren(bar, sheen)
	c.overlay.Width, c.overlay.Height = g.screenW, headerHeight

	brand := text("brand", c.reg.Brand, f.Brand, t.Text, 0, dimension.TextAlignLeft)
	brand.SetPosition(g.left, (headerHeight-brand.Height)/2)
	c.overlay.AddChild(brand)

	if !g.wide {
		return
	}
	x := g.left + g.width
	for i := len(c.reg.Nav) - 1; i >= 0; i-- {
		link := c.reg.Nav[i]
		n := text("nav-"+link.Anchor, link.Label, f.Nav, t.Text, 0, dimension.TextAlignLeft)
		x -= n.Width
		n.SetPosition(x, (headerHeight-n.Height)/2)
		x -= navGap

		anchor := link.Anchor
		n.Interactable = true
		n.OnClick = func(dimension.ClickContext) {
			if err := c.page.ScrollTo(anchor); err != nil {
				c.page.logger.Warn("nav link", zap.Error(err))
			}
		}
		n.OnPointerEnter = func(dimension.PointerContext) { n.SetTextColor(t.Accent) }
		n.OnPointerLeave = func(dimension.PointerContext) { n.SetTextColor(t.Text) }
		c.overlay.AddChild(n)
	}
}

// coverImage creates an image node of w x h showing ref cropped to fill
// the box without distortion.
func (c *composer) coverImage(name, ref string, w, h float64) *dimension.Node {
	return dimension.NewImage(name, cover(c.assets.Image(ref), w, h), w, h)
}

// cover returns the centered sub-image of img with the aspect ratio w:h.
func cover(img *ebiten.Image, w, h float64) *ebiten.Image {
	if w <= 0 || h <= 0 {
		return img
	}
	b := img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	want := w / h
	r := b
	if iw/ih > want {
		cw := int(math.Round(ih * want))
		x0 := b.Min.X + (b.Dx()-cw)/2
		r = image.Rect(x0, b.Min.Y, x0+cw, b.Max.Y)
	} else {
		ch := int(math.Round(iw / want))
		y0 := b.Min.Y + (b.Dy()-ch)/2
		r = image.Rect(b.Min.X, y0, b.Max.X, y0+ch)
	}
	if r.Empty() {
		return img
	}
	return img.SubImage(r).(*ebiten.Image)
}
