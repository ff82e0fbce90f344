package dashboard

import "github.com/fvall/claydash/internal/draw"

// Named colours used by the scheme.
var (
	SteelBlue         = draw.RGB(70, 130, 180)
	LightSteelBlue    = draw.RGB(176, 196, 222)
	DarkSteelBlue     = draw.RGB(57, 105, 145)
	VeryDarkSteelBlue = draw.RGB(46, 85, 117)
	Tomato            = draw.RGB(255, 99, 71)
	Lavender          = draw.RGB(230, 230, 250)
)

// ButtonColors are the fills of one kind of button.
type ButtonColors struct {
	Default draw.Color
	Pressed draw.Color
	Hover   draw.Color
}

// SchemeUI is the fixed colour, spacing and font table of the dashboard.
type SchemeUI struct {
	Canvas struct {
		Background draw.Color
		Padding    float32
		ChildGap   float32
	}
	Header struct {
		Button      ButtonColors
		Background  draw.Color
		Border      draw.Color
		BorderWidth float32
		Height      float32
		ChildGap    float32
		FontSize    float32
	}
	Content struct {
		ChildGap float32
	}
	Sidebar struct {
		Button     ButtonColors
		Menu       ButtonColors
		Background draw.Color
		Line       draw.Color
		FontSize   float32
	}
	Chart struct {
		Background draw.Color
		Fill       draw.Color
		Line       draw.Color
		Axis       draw.Color
		Padding    float32
		ChildGap   float32
	}
	Font struct {
		BaseSize     float32
		GlyphCount   int
		GlyphPadding int
		ItemSize     float32
	}
}

// Scheme is the table every layout and render call reads.
var Scheme = func() SchemeUI {
	var s SchemeUI

	s.Canvas.Background = SteelBlue
	s.Canvas.Padding = 16
	s.Canvas.ChildGap = 16

	s.Header.Button = ButtonColors{Default: SteelBlue, Pressed: draw.RGB(240, 140, 140), Hover: DarkSteelBlue}
	s.Header.Background = LightSteelBlue
	s.Header.Border = DarkSteelBlue
	s.Header.BorderWidth = 4
	s.Header.Height = 50
	s.Header.ChildGap = 16
	s.Header.FontSize = 36

	s.Content.ChildGap = 12

	s.Sidebar.Button = ButtonColors{Default: SteelBlue, Pressed: draw.RGB(50, 50, 50), Hover: DarkSteelBlue}
	s.Sidebar.Menu = ButtonColors{Default: DarkSteelBlue, Pressed: draw.RGB(190, 90, 190), Hover: VeryDarkSteelBlue}
	s.Sidebar.Background = LightSteelBlue
	s.Sidebar.Line = VeryDarkSteelBlue
	s.Sidebar.FontSize = 26

	s.Chart.Background = Lavender
	s.Chart.Fill = LightSteelBlue
	s.Chart.Line = Tomato
	s.Chart.Axis = draw.Black
	s.Chart.Padding = 20
	s.Chart.ChildGap = 8

	s.Font.BaseSize = 48
	s.Font.GlyphCount = 95
	s.Font.GlyphPadding = 2
	s.Font.ItemSize = 24
	return s
}()
