// Package fonttest provides a deterministic in-memory font for engine
// tests.
//
// Every glyph is a fixed-width block by default, and tests can script
// per-glyph advances, bounding boxes, variant chains and assembly
// parts, which no real font exposes predictably. That makes metric
// assertions exact: a five-letter word is exactly five advances wide.
package fonttest

import (
	"github.com/rivo/uniseg"

	"github.com/nguillot/SwiftMath/font"
)

// Font is a scripted metrics provider. The zero value is not usable;
// create one with New and mutate the exported maps before layout.
type Font struct {
	// EmSize is the em size in layout units.
	EmSize float64

	// GlyphAdvance is the default advance of every glyph.
	GlyphAdvance float64

	// GlyphAscent and GlyphDescent bound the default glyph ink box.
	GlyphAscent  float64
	GlyphDescent float64

	// Table is returned by Constants. Tests overwrite individual
	// fields to force specific shift and gap arithmetic.
	Table *font.Constants

	// Per-glyph overrides.
	Advances    map[font.GlyphID]float64
	Boxes       map[font.GlyphID]font.Rect
	Corrections map[font.GlyphID]float64
	Attachments map[font.GlyphID]float64

	// Variant chains and assemblies, keyed by base glyph.
	Variants  map[font.GlyphID][]font.GlyphID
	HVariants map[font.GlyphID][]font.GlyphID
	Parts     map[font.GlyphID][]font.AssemblyPart

	// Missing marks runes the font pretends not to cover.
	Missing map[rune]bool

	// LimitOps marks glyphs reported as limit operators.
	LimitOps map[font.GlyphID]bool
}

var _ font.Font = (*Font)(nil)

// New creates a scripted font at the given em size. Defaults: every
// glyph advances half an em, with ink 0.7 em above and 0.2 em below
// the baseline.
func New(size float64) *Font {
	return &Font{
		EmSize:       size,
		GlyphAdvance: 0.5 * size,
		GlyphAscent:  0.7 * size,
		GlyphDescent: 0.2 * size,
		Table:        font.DefaultConstants(size),
		Advances:     map[font.GlyphID]float64{},
		Boxes:        map[font.GlyphID]font.Rect{},
		Corrections:  map[font.GlyphID]float64{},
		Attachments:  map[font.GlyphID]float64{},
		Variants:     map[font.GlyphID][]font.GlyphID{},
		HVariants:    map[font.GlyphID][]font.GlyphID{},
		Parts:        map[font.GlyphID][]font.AssemblyPart{},
		Missing:      map[rune]bool{},
		LimitOps:     map[font.GlyphID]bool{},
	}
}

// GID returns the glyph id fonttest assigns to a rune: the rune value
// itself, so tests can name glyphs by character, including math
// alphanumerics outside the basic plane.
func GID(r rune) font.GlyphID { return font.GlyphID(r) }

// Size implements font.Font.
func (f *Font) Size() float64 { return f.EmSize }

// WithSize implements font.Font. All scripted metrics scale linearly.
func (f *Font) WithSize(size float64) font.Font {
	if size == f.EmSize {
		return f
	}
	k := size / f.EmSize
	s := New(size)
	s.GlyphAdvance = f.GlyphAdvance * k
	s.GlyphAscent = f.GlyphAscent * k
	s.GlyphDescent = f.GlyphDescent * k
	s.Table = f.Table.Scaled(k)
	for g, v := range f.Advances {
		s.Advances[g] = v * k
	}
	for g, b := range f.Boxes {
		s.Boxes[g] = font.Rect{MinX: b.MinX * k, MinY: b.MinY * k, MaxX: b.MaxX * k, MaxY: b.MaxY * k}
	}
	for g, v := range f.Corrections {
		s.Corrections[g] = v * k
	}
	for g, v := range f.Attachments {
		s.Attachments[g] = v * k
	}
	for g, v := range f.Variants {
		s.Variants[g] = v
	}
	for g, v := range f.HVariants {
		s.HVariants[g] = v
	}
	for g, p := range f.Parts {
		parts := make([]font.AssemblyPart, len(p))
		for i, part := range p {
			part.StartConnector *= k
			part.EndConnector *= k
			part.FullAdvance *= k
			parts[i] = part
		}
		s.Parts[g] = parts
	}
	for r, v := range f.Missing {
		s.Missing[r] = v
	}
	for g, v := range f.LimitOps {
		s.LimitOps[g] = v
	}
	return s
}

// Constants implements font.Font.
func (f *Font) Constants() *font.Constants { return f.Table }

// GlyphForRune implements font.Font.
func (f *Font) GlyphForRune(r rune) font.GlyphID {
	if f.Missing[r] {
		return 0
	}
	return GID(r)
}

// Advance implements font.Font.
func (f *Font) Advance(g font.GlyphID) float64 {
	if g == 0 {
		return 0
	}
	if v, ok := f.Advances[g]; ok {
		return v
	}
	return f.GlyphAdvance
}

// BoundingBox implements font.Font.
func (f *Font) BoundingBox(g font.GlyphID) font.Rect {
	if g == 0 {
		return font.Rect{}
	}
	if b, ok := f.Boxes[g]; ok {
		return b
	}
	return font.Rect{
		MinX: 0,
		MaxX: f.Advance(g),
		MaxY: f.GlyphAscent,
		MinY: -f.GlyphDescent,
	}
}

// MeasureRun implements font.Font. Advances add per rune; vertical
// bounds are the union of per-glyph boxes.
func (f *Font) MeasureRun(text string) font.RunMetrics {
	var m font.RunMetrics
	for _, r := range text {
		g := f.GlyphForRune(r)
		m.Advance += f.Advance(g)
		b := f.BoundingBox(g)
		if b.MaxY > m.Ascent {
			m.Ascent = b.MaxY
		}
		if -b.MinY > m.Descent {
			m.Descent = -b.MinY
		}
	}
	return m
}

// ItalicCorrection implements font.Font.
func (f *Font) ItalicCorrection(g font.GlyphID) float64 {
	return f.Corrections[g]
}

// TopAccentAttachment implements font.Font.
func (f *Font) TopAccentAttachment(g font.GlyphID) float64 {
	if v, ok := f.Attachments[g]; ok {
		return v
	}
	return f.Advance(g) / 2
}

// VerticalVariants implements font.Font.
func (f *Font) VerticalVariants(g font.GlyphID) []font.GlyphID {
	return f.Variants[g]
}

// HorizontalVariants implements font.Font.
func (f *Font) HorizontalVariants(g font.GlyphID) []font.GlyphID {
	return f.HVariants[g]
}

// VerticalAssemblyParts implements font.Font.
func (f *Font) VerticalAssemblyParts(g font.GlyphID) []font.AssemblyPart {
	return f.Parts[g]
}

// IsLimitOperator implements font.Font.
func (f *Font) IsLimitOperator(g font.GlyphID) bool { return f.LimitOps[g] }

// LineBreakBefore implements font.Font. Grapheme-cluster walk, same
// contract as the opentype provider.
func (f *Font) LineBreakBefore(text string, width float64) int {
	state := -1
	rest := text
	fit := 0
	used := 0.0
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		used += f.MeasureRun(cluster).Advance
		if used > width {
			break
		}
		fit += len(cluster)
	}
	return fit
}
