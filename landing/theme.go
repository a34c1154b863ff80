package landing

import "github.com/phanxgames/dimension"

// Theme holds the page palette.
type Theme struct {
	// Background runs top to bottom behind everything.
	Background [3]dimension.Color

	Text      dimension.Color
	Muted     dimension.Color // body copy
	Faint     dimension.Color // footer
	Accent    dimension.Color // tagline, link hover
	Button    dimension.Color // primary call to action
	OnButton  dimension.Color
	Surface   dimension.Color // cards, header, hero frame
	IconPlate dimension.Color
	Border    dimension.Color
	Shadow    dimension.Color // behind the hero frame

	// BlobA and BlobB are the gradient ends of the two ambient blobs. Their
	// alpha is the blob opacity.
	BlobA [2]dimension.Color
	BlobB [2]dimension.Color
}

// DefaultTheme returns the dark navy palette with cyan accents.
func DefaultTheme() Theme {
	white := dimension.ColorWhite
	return Theme{
		Background: [3]dimension.Color{
			dimension.HexColor("#071023"),
			dimension.HexColor("#0b1220"),
			dimension.HexColor("#05060a"),
		},
		Text:      white,
		Muted:     dimension.HexColor("#d1d5db"),
		Faint:     dimension.HexColor("#9ca3af"),
		Accent:    dimension.HexColor("#67e8f9"),
		Button:    dimension.HexColor("#06b6d4"),
		OnButton:  dimension.HexColor("#000000"),
		Surface:   white.WithAlpha(0.05),
		IconPlate: white.WithAlpha(0.10),
		Border:    white.WithAlpha(0.10),
		Shadow:    dimension.HexColor("#000000").WithAlpha(0.5),
		BlobA: [2]dimension.Color{
			dimension.HexColor("#00e0ff").WithAlpha(0.3),
			dimension.HexColor("#7b61ff").WithAlpha(0.3),
		},
		BlobB: [2]dimension.Color{
			dimension.HexColor("#ff7bd6").WithAlpha(0.2),
			dimension.HexColor("#ffb86b").WithAlpha(0.2),
		},
	}
}

// Fonts holds the faces used on the page.
type Fonts struct {
	Brand     *dimension.Font
	Nav       *dimension.Font
	Display   *dimension.Font
	Body      *dimension.Font
	Small     *dimension.Font
	CardTitle *dimension.Font
	Heading   *dimension.Font
	Button    *dimension.Font
}

// DefaultFonts returns the Go font faces sized for the layout. Wide layouts
// get the larger display size.
func DefaultFonts(wide bool) Fonts {
	display := 36.0
	if wide {
		display = 60
	}
	return Fonts{
		Brand:     dimension.DefaultFont(18, true),
		Nav:       dimension.DefaultFont(14, false),
		Display:   dimension.DefaultFont(display, true),
		Body:      dimension.DefaultFont(16, false),
		Small:     dimension.DefaultFont(14, false),
		CardTitle: dimension.DefaultFont(16, true),
		Heading:   dimension.DefaultFont(24, true),
		Button:    dimension.DefaultFont(16, true),
	}
}
