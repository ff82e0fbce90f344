// Package typeface loads the dashboard font and answers glyph metric
// queries for text measurement. Every backend draws from the same font
// bytes so measured and drawn text agree.
package typeface

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	// DefaultBaseSize is the pixel size glyph metrics are taken at.
	DefaultBaseSize = 48
	// GlyphCount is the number of printable ASCII glyphs backends load.
	GlyphCount = 95
	// GlyphPadding is the atlas padding backends use around each glyph.
	GlyphPadding = 2
)

// ErrInvalidFont is returned when font data cannot be used for drawing.
var ErrInvalidFont = errors.New("invalid font")

// Typeface is a parsed font plus a cache of sized faces.
type Typeface struct {
	name     string
	data     []byte
	font     *opentype.Font
	baseSize float64
	base     font.Face

	mu    sync.Mutex
	faces map[float64]font.Face
}

// Load parses TTF/OTF data and validates that it can draw printable ASCII.
func Load(name string, data []byte, baseSize float64) (*Typeface, error) {
	if baseSize <= 0 {
		baseSize = DefaultBaseSize
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrInvalidFont, name, err)
	}
	if f.NumGlyphs() == 0 {
		return nil, fmt.Errorf("%w: %s has no glyphs", ErrInvalidFont, name)
	}

	t := &Typeface{
		name:     name,
		data:     data,
		font:     f,
		baseSize: baseSize,
		faces:    make(map[float64]font.Face),
	}
	t.base, err = t.Face(baseSize)
	if err != nil {
		return nil, err
	}
	if _, ok := t.base.GlyphAdvance('A'); !ok {
		return nil, fmt.Errorf("%w: %s cannot draw ASCII text", ErrInvalidFont, name)
	}
	return t, nil
}

// Default loads the bundled Go Regular font.
func Default() (*Typeface, error) {
	return Load("goregular", goregular.TTF, DefaultBaseSize)
}

// Valid reports whether t can answer metric queries.
func (t *Typeface) Valid() bool {
	return t != nil && t.base != nil
}

// Name is the label the font was loaded under.
func (t *Typeface) Name() string { return t.name }

// Bytes returns the raw font data for backends that load it themselves.
func (t *Typeface) Bytes() []byte { return t.data }

// BaseSize is the size glyph metrics are reported at.
func (t *Typeface) BaseSize() float64 { return t.baseSize }

// Face returns a face rendering at size pixels, creating it on first use.
func (t *Typeface) Face(size float64) (font.Face, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if face, ok := t.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(t.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: sizing %s at %g: %v", ErrInvalidFont, t.name, size, err)
	}
	t.faces[size] = face
	return face, nil
}

// Advance returns the horizontal advance of r at the base size. Glyphs
// without an advance fall back to the width of their bounds plus their
// left bearing. ok is false when the font has no glyph for r.
func (t *Typeface) Advance(r rune) (float64, bool) {
	if !t.Valid() {
		return 0, false
	}
	if adv, ok := t.base.GlyphAdvance(r); ok && adv > 0 {
		return toFloat(adv), true
	}
	bounds, _, ok := t.base.GlyphBounds(r)
	if !ok {
		return 0, false
	}
	return toFloat(bounds.Max.X-bounds.Min.X) + toFloat(bounds.Min.X), true
}

// Close releases the cached faces.
func (t *Typeface) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	var errs []error
	for size, face := range t.faces {
		if err := face.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(t.faces, size)
	}
	t.base = nil
	return errors.Join(errs...)
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
