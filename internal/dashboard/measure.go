package dashboard

import (
	"log"

	"github.com/fvall/claydash/internal/layout"
	"github.com/fvall/claydash/internal/typeface"
)

// MeasureText returns the layout measurer for f. Widths are the sum of
// glyph advances scaled from the font's base size; the height is the font
// size. Control characters and glyphs the font lacks are skipped. An
// invalid font measures every string as zero.
func MeasureText(f *typeface.Typeface) layout.MeasureTextFunc {
	return func(text string, cfg layout.TextConfig) layout.Dimensions {
		if !f.Valid() {
			log.Printf("[ERROR] Font is invalid, cannot measure %q", text)
			return layout.Dimensions{}
		}

		var width float64
		for _, r := range text {
			if r <= 31 {
				continue
			}
			adv, ok := f.Advance(r)
			if !ok {
				continue
			}
			width += adv
		}

		scale := float64(cfg.FontSize) / f.BaseSize()
		return layout.Dimensions{
			Width:  float32(width * scale),
			Height: cfg.FontSize,
		}
	}
}
