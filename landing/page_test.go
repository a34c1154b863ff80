package landing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/dimension"
	"github.com/phanxgames/dimension/content"
)

const frame = time.Second / 60

func composeDefault(t *testing.T, w, h float64) (*dimension.Scene, *Page) {
	t.Helper()
	reg, err := content.Default()
	require.NoError(t, err)
	scene := dimension.NewScene(w, h)
	page, err := Compose(scene, reg, Options{Year: 2026})
	require.NoError(t, err)
	return scene, page
}

func TestFeatureDelay(t *testing.T) {
	for i := 0; i < 6; i++ {
		assert.Equal(t, time.Duration(i)*120*time.Millisecond, FeatureDelay(i))
		assert.Equal(t, FeatureDelay(i), FeatureReveal(i).Delay)
	}
}

func TestCaseImageOffsetAlternates(t *testing.T) {
	for i := 0; i < 5; i++ {
		off := CaseImageOffset(content.SideFor(i))
		if i%2 == 0 {
			assert.Equal(t, dimension.Vec2{X: -30}, off, "index %d", i)
		} else {
			assert.Equal(t, dimension.Vec2{X: 30}, off, "index %d", i)
		}
	}
}

func TestCompose_Structure(t *testing.T) {
	scene, page := composeDefault(t, 1280, 720)

	require.Len(t, page.Features, 3)
	require.Len(t, page.Cases, 2)
	assert.Equal(t, content.SideLeft, page.Cases[0].Side)
	assert.Equal(t, content.SideRight, page.Cases[1].Side)

	for i, u := range page.Features {
		assert.Equal(t, dimension.TriggerOnViewportEnter, u.Mode())
		assert.Equal(t, FeatureDelay(i), u.Spec().Delay)
	}
	assert.Equal(t, dimension.TriggerOnMount, page.Hero.Mode())
	assert.Equal(t, dimension.TriggerOnMount, page.HeroImage.Mode())
	assert.Greater(t, page.HeroImage.Spec().Delay, page.Hero.Spec().Delay)
	assert.Equal(t, -30.0, page.Cases[0].Image.Spec().Offset.X)
	assert.Equal(t, 30.0, page.Cases[1].Image.Spec().Offset.X)

	// hero text, hero image, 3 features, 2x2 case units, contact heading
	assert.Len(t, scene.RevealBindings(), 10)
	assert.Equal(t, page.Height, scene.Viewport().ContentHeight)
	assert.Greater(t, page.Height, 720.0)

	footer := scene.Root().FindChild("footer")
	require.NotNil(t, footer)
	assert.Equal(t, "© 2026 — Aftab", footer.Text.Content)

	for _, a := range content.Anchors {
		_, ok := page.Anchors[a]
		assert.True(t, ok, "anchor %s", a)
	}
	assert.Less(t, page.Anchors[content.AnchorFeatures], page.Anchors[content.AnchorCases])
	assert.Less(t, page.Anchors[content.AnchorCases], page.Anchors[content.AnchorContact])
}

func TestCompose_CaseSidesFromIndex(t *testing.T) {
	reg := &content.Registry{
		Brand: "Literal",
		Hero:  content.Hero{Headline: "Built in Go"},
		CaseStudies: []content.CaseStudy{
			{Title: "first", Points: []string{"a"}, Side: content.SideRight},
			{Title: "second", Points: []string{"b"}, Side: content.SideLeft},
			{Title: "third", Points: []string{"c"}},
		},
	}
	scene := dimension.NewScene(1280, 720)
	page, err := Compose(scene, reg, Options{Year: 2026})
	require.NoError(t, err)

	require.Len(t, page.Cases, 3)
	wantSides := []content.Side{content.SideLeft, content.SideRight, content.SideLeft}
	wantX := []float64{-30, 30, -30}
	for i, cu := range page.Cases {
		assert.Equal(t, wantSides[i], cu.Side, "case %d", i)
		assert.Equal(t, wantX[i], cu.Image.Spec().Offset.X, "case %d", i)
	}
}

func TestCompose_NarrowStacksColumns(t *testing.T) {
	_, wide := composeDefault(t, 1280, 720)
	scene, narrow := composeDefault(t, 480, 800)

	assert.Greater(t, narrow.Height, wide.Height)
	// The header hides nav links on narrow screens.
	assert.Nil(t, scene.Root().FindChild("nav-features"))

	a := scene.Root().FindChild("feature-0")
	b := scene.Root().FindChild("feature-1")
	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.Equal(t, a.X, b.X)
	assert.Greater(t, b.Y, a.Y)
}

func TestCompose_Errors(t *testing.T) {
	reg, err := content.Default()
	require.NoError(t, err)

	_, err = Compose(nil, reg, Options{})
	assert.Error(t, err)

	_, err = Compose(dimension.NewScene(800, 600), nil, Options{})
	assert.Error(t, err)

	bad := *reg
	bad.Nav = []content.NavLink{{Label: "Blog", Anchor: "blog"}}
	_, err = Compose(dimension.NewScene(800, 600), &bad, Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compose:")
}

func TestPage_ScrollTo(t *testing.T) {
	scene, page := composeDefault(t, 1280, 720)
	scene.Step(0)

	require.NoError(t, page.ScrollTo(content.AnchorCases))
	assert.True(t, scene.Viewport().Scrolling())

	now := time.Duration(0)
	for i := 0; i < 120; i++ {
		now += frame
		scene.Step(now)
	}
	assert.InDelta(t, page.Anchors[content.AnchorCases], scene.Viewport().ScrollY, 0.5)

	assert.Error(t, page.ScrollTo("pricing"))
}

func TestPage_NavClickScrolls(t *testing.T) {
	scene, page := composeDefault(t, 1280, 720)
	scene.Step(0)

	nav := scene.Root().FindChild("nav-contact")
	require.NotNil(t, nav)
	b := nav.WorldBounds()
	scene.InjectClick(b.X+b.Width/2, b.Y+b.Height/2)

	now := time.Duration(0)
	for i := 0; i < 90; i++ {
		now += frame
		scene.Step(now)
	}
	assert.InDelta(t, page.Anchors[content.AnchorContact], scene.Viewport().ScrollY, 0.5)
}

// Mount shows the hero at once; scrolling the third feature card into view
// fires it with a 240ms delay; scrolling away never hides it again.
func TestEndToEnd_RevealSequence(t *testing.T) {
	scene, page := composeDefault(t, 1280, 720)
	card := page.Features[2]

	scene.Step(0)
	assert.Equal(t, dimension.StateVisible, page.Hero.State())
	assert.False(t, card.Fired(), "feature cards start below the fold")

	now := frame
	scene.Step(now)
	assert.Greater(t, page.Hero.Sample(now).Opacity, 0.0)

	node := scene.Root().FindChild("feature-2")
	require.NotNil(t, node)
	scene.Viewport().SetScroll(node.Y - 700)
	now += frame
	scene.Step(now)

	require.True(t, card.Fired())
	assert.Equal(t, now, card.FiredAt())
	assert.Equal(t, 240*time.Millisecond, card.RevealStart()-card.FiredAt())
	assert.Equal(t, 0.0, card.Sample(now+239*time.Millisecond).Opacity)
	assert.Greater(t, card.Sample(now+300*time.Millisecond).Opacity, 0.0)

	scene.Viewport().SetScroll(0)
	for i := 0; i < 120; i++ {
		now += frame
		scene.Step(now)
	}
	assert.Equal(t, 1, card.Fires())
	assert.Equal(t, dimension.StateVisible, card.State())
	assert.Equal(t, 1.0, node.Alpha)

	scene.Viewport().SetScroll(node.Y - 700)
	now += frame
	scene.Step(now)
	assert.Equal(t, 1, card.Fires())
}

func TestAmbientBoundToBlobs(t *testing.T) {
	scene, page := composeDefault(t, 1280, 720)
	blob := scene.Root().FindChild("blob-a")
	require.NotNil(t, blob)

	scene.Step(0)
	x0, r0 := blob.X, blob.Rotation
	scene.Step(3 * time.Second)
	assert.NotEqual(t, x0, blob.X)
	assert.NotEqual(t, r0, blob.Rotation)
	assert.Equal(t, 12*time.Second, page.Ambient[0].Period)
	assert.Equal(t, 14*time.Second, page.Ambient[1].Period)
}
