// Package content holds the static copy of the landing page: navigation,
// hero, feature items, case studies, contact and footer. A registry is pure
// data; it is loaded once and never mutated.
package content

import (
	"errors"
	"fmt"
	"strings"
)

// IconRef names one of the built-in feature icons.
type IconRef uint8

const (
	IconZap IconRef = iota
	IconPalette
	IconAccessibility
)

var iconNames = [...]string{
	IconZap:           "zap",
	IconPalette:       "palette",
	IconAccessibility: "accessibility",
}

func (i IconRef) String() string {
	if int(i) < len(iconNames) {
		return iconNames[i]
	}
	return fmt.Sprintf("IconRef(%d)", i)
}

// MarshalText implements encoding.TextMarshaler.
func (i IconRef) MarshalText() ([]byte, error) {
	if int(i) >= len(iconNames) {
		return nil, fmt.Errorf("unknown icon %d", i)
	}
	return []byte(iconNames[i]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *IconRef) UnmarshalText(b []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(b)))
	for ref, n := range iconNames {
		if n == name {
			*i = IconRef(ref)
			return nil
		}
	}
	return fmt.Errorf("unknown icon %q", string(b))
}

// Side is the horizontal direction a case study slides in from.
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// SideFor returns the side for the case study at index: Left for even
// indices, Right for odd ones.
func SideFor(index int) Side {
	if index%2 == 0 {
		return SideLeft
	}
	return SideRight
}

// FeatureItem is one card in the feature grid.
type FeatureItem struct {
	Icon        IconRef `yaml:"icon"`
	Title       string  `yaml:"title"`
	Description string  `yaml:"description"`
}

// CaseStudy is one alternating image and text row.
type CaseStudy struct {
	Title   string   `yaml:"title"`
	Image   string   `yaml:"image"`
	Summary string   `yaml:"summary"`
	Points  []string `yaml:"points"`
	// Side is derived from the position in the registry, never read.
	Side Side `yaml:"-"`
}

// Hero is the first section of the page.
type Hero struct {
	Headline string `yaml:"headline"`
	Tagline  string `yaml:"tagline"`
	Body     string `yaml:"body"`
	Image    string `yaml:"image"`
}

// Contact is the closing call to action.
type Contact struct {
	Heading   string `yaml:"heading"`
	Body      string `yaml:"body"`
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
}

// NavLink is a header link scrolling to a section anchor.
type NavLink struct {
	Label  string `yaml:"label"`
	Anchor string `yaml:"anchor"`
}

// Footer holds the copyright owner.
type Footer struct {
	Owner string `yaml:"owner"`
}

// Section anchors a nav link may point at.
const (
	AnchorHome     = "home"
	AnchorFeatures = "features"
	AnchorCases    = "cases"
	AnchorContact  = "contact"
)

// Anchors lists the known section anchors in page order.
var Anchors = []string{AnchorHome, AnchorFeatures, AnchorCases, AnchorContact}

// Registry is the complete, ordered page content.
type Registry struct {
	Brand       string        `yaml:"brand"`
	Nav         []NavLink     `yaml:"nav"`
	Hero        Hero          `yaml:"hero"`
	Features    []FeatureItem `yaml:"features"`
	CaseStudies []CaseStudy   `yaml:"caseStudies"`
	Contact     Contact       `yaml:"contact"`
	Footer      Footer        `yaml:"footer"`
}

// FeatureItems returns a copy of the feature items in display order.
func (r *Registry) FeatureItems() []FeatureItem {
	return append([]FeatureItem(nil), r.Features...)
}

// Cases returns a copy of the case studies in display order.
func (r *Registry) Cases() []CaseStudy {
	out := make([]CaseStudy, len(r.CaseStudies))
	for i, c := range r.CaseStudies {
		c.Points = append([]string(nil), c.Points...)
		c.Side = SideFor(i)
		out[i] = c
	}
	return out
}

// assignSides sets every case study's side from its index.
func (r *Registry) assignSides() {
	for i := range r.CaseStudies {
		r.CaseStudies[i].Side = SideFor(i)
	}
}

// Validate reports every problem with the registry at once.
func (r *Registry) Validate() error {
	var errs []error
	if strings.TrimSpace(r.Brand) == "" {
		errs = append(errs, errors.New("brand is empty"))
	}
	if strings.TrimSpace(r.Hero.Headline) == "" {
		errs = append(errs, errors.New("hero: headline is empty"))
	}
	for i, l := range r.Nav {
		if strings.TrimSpace(l.Label) == "" {
			errs = append(errs, fmt.Errorf("nav %d: label is empty", i))
		}
		if !knownAnchor(l.Anchor) {
			errs = append(errs, fmt.Errorf("nav %d: unknown anchor %q", i, l.Anchor))
		}
	}
	for i, f := range r.Features {
		if strings.TrimSpace(f.Title) == "" {
			errs = append(errs, fmt.Errorf("feature %d: title is empty", i))
		}
	}
	for i, c := range r.CaseStudies {
		if strings.TrimSpace(c.Title) == "" {
			errs = append(errs, fmt.Errorf("case study %d: title is empty", i))
		}
		if len(c.Points) == 0 {
			errs = append(errs, fmt.Errorf("case study %d (%s): no points", i, c.Title))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid content: %w", err)
	}
	return nil
}

func knownAnchor(a string) bool {
	for _, k := range Anchors {
		if a == k {
			return true
		}
	}
	return false
}
