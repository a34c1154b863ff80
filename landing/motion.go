package landing

import (
	"time"

	"github.com/phanxgames/dimension"
	"github.com/phanxgames/dimension/content"
)

// Reveal timings.
const (
	FeatureStagger = 120 * time.Millisecond
	HeroImageDelay = 60 * time.Millisecond
	CaseTextDelay  = 100 * time.Millisecond
	caseSlide      = 30.0
)

// FeatureDelay returns the reveal delay of the feature card at index, so
// siblings cascade in index order.
func FeatureDelay(index int) time.Duration {
	return time.Duration(index) * FeatureStagger
}

// CaseImageOffset returns the initial offset of a case study image: it
// slides in from the left on Left rows and from the right on Right rows.
func CaseImageOffset(side content.Side) dimension.Vec2 {
	if side == content.SideRight {
		return dimension.Vec2{X: caseSlide}
	}
	return dimension.Vec2{X: -caseSlide}
}

// HeroTextReveal rises the hero copy into place on mount.
func HeroTextReveal() dimension.RevealSpec {
	return dimension.RevealSpec{
		Mode:     dimension.TriggerOnMount,
		Offset:   dimension.Vec2{Y: 30},
		Duration: 900 * time.Millisecond,
	}
}

// HeroImageReveal grows the hero image from 98% on mount, just after the
// text.
func HeroImageReveal() dimension.RevealSpec {
	return dimension.RevealSpec{
		Mode:     dimension.TriggerOnMount,
		Scale:    0.98,
		Duration: 1000 * time.Millisecond,
		Delay:    HeroImageDelay,
	}
}

// FeatureReveal rises the feature card at index when it scrolls into view.
func FeatureReveal(index int) dimension.RevealSpec {
	return dimension.RevealSpec{
		Mode:     dimension.TriggerOnViewportEnter,
		Offset:   dimension.Vec2{Y: 20},
		Duration: 500 * time.Millisecond,
		Delay:    FeatureDelay(index),
	}
}

// CaseImageReveal slides a case study image in from its side.
func CaseImageReveal(side content.Side) dimension.RevealSpec {
	return dimension.RevealSpec{
		Mode:     dimension.TriggerOnViewportEnter,
		Offset:   CaseImageOffset(side),
		Duration: 700 * time.Millisecond,
	}
}

// CaseTextReveal rises a case study's copy shortly after its image.
func CaseTextReveal() dimension.RevealSpec {
	return dimension.RevealSpec{
		Mode:     dimension.TriggerOnViewportEnter,
		Offset:   dimension.Vec2{Y: 20},
		Duration: 700 * time.Millisecond,
		Delay:    CaseTextDelay,
	}
}

// ContactReveal rises the contact heading.
func ContactReveal() dimension.RevealSpec {
	return dimension.RevealSpec{
		Mode:     dimension.TriggerOnViewportEnter,
		Offset:   dimension.Vec2{Y: 20},
		Duration: 600 * time.Millisecond,
	}
}
