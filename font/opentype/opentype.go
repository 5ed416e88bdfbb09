// Package opentype implements the engine's font contract on top of
// real OpenType/TrueType fonts using go-text/typesetting.
//
// Run measurement goes through HarfBuzz shaping so that kerning and
// ligatures are reflected in layout widths. Math-specific data the
// library does not expose (variant chains, assembly parts, italic
// correction) degrades to the documented fallbacks: the engine then
// uses the base glyph as its own best variant and positions scripts
// without correction.
package opentype

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	otfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"github.com/rivo/uniseg"
	"golang.org/x/image/math/fixed"

	"github.com/nguillot/SwiftMath/font"
)

// shaperPool pools HarfbuzzShaper instances. A HarfbuzzShaper carries
// internal buffers and is not safe for concurrent use, but reusing one
// across sequential calls avoids reallocating them.
var shaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// Font is a sized handle over a parsed OpenType font.
//
// The parsed *otfont.Font and the size cache are shared between
// handles produced by WithSize; the per-handle otfont.Face is not safe
// for concurrent use, matching the engine's one-goroutine-per-layout
// contract.
type Font struct {
	parsed *otfont.Font
	face   *otfont.Face
	size   float64
	upem   float64
	sizes  *sizeCache

	constants *font.Constants
}

var _ font.Font = (*Font)(nil)

// New parses OpenType/TrueType font data and returns a handle at the
// given em size.
func New(data []byte, size float64) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	if size <= 0 {
		return nil, fmt.Errorf("opentype: invalid size %v", size)
	}
	face, err := otfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("opentype: parse font: %w", err)
	}
	cache := &sizeCache{handles: map[float64]*Font{}}
	f := newSized(face.Font, size, cache)
	cache.handles[size] = f
	return f, nil
}

func newSized(parsed *otfont.Font, size float64, sizes *sizeCache) *Font {
	f := &Font{
		parsed: parsed,
		face:   otfont.NewFace(parsed),
		size:   size,
		upem:   float64(parsed.Upem()),
		sizes:  sizes,
	}
	f.constants = f.readConstants()
	return f
}

// Size implements font.Font.
func (f *Font) Size() float64 { return f.size }

// WithSize implements font.Font. The parsed font is shared and derived
// handles are memoized, so the repeated script-size derivations during
// layout hit the cache instead of rebuilding constants.
func (f *Font) WithSize(size float64) font.Font {
	if size == f.size {
		return f
	}
	if h, ok := f.sizes.get(size); ok {
		return h
	}
	return f.sizes.create(f.parsed, size)
}

// sizeCache memoizes the handles derived from one parsed font, keyed
// by em size. Double-checked under an RWMutex: the read path is the
// common one once the handful of script sizes exist.
type sizeCache struct {
	mu      sync.RWMutex
	handles map[float64]*Font
}

func (c *sizeCache) get(size float64) (*Font, bool) {
	c.mu.RLock()
	h, ok := c.handles[size]
	c.mu.RUnlock()
	return h, ok
}

func (c *sizeCache) create(parsed *otfont.Font, size float64) *Font {
	c.mu.Lock()
	defer c.mu.Unlock()
	if h, ok := c.handles[size]; ok {
		return h
	}
	h := newSized(parsed, size, c)
	c.handles[size] = h
	return h
}

// Constants implements font.Font.
func (f *Font) Constants() *font.Constants { return f.constants }

// readConstants builds the constants table, starting from em-relative
// defaults and overriding the general metrics with what the font
// actually reports.
func (f *Font) readConstants() *font.Constants {
	c := font.DefaultConstants(f.size)
	if ext, ok := f.face.FontHExtents(); ok {
		c.Ascent = f.scale(float64(ext.Ascender))
		c.Descent = -f.scale(float64(ext.Descender))
	}
	if gid, ok := f.face.NominalGlyph('x'); ok {
		if ext, ok := f.face.GlyphExtents(gid); ok {
			c.XHeight = f.scale(float64(ext.YBearing))
			// The math axis sits at half the x-height in fonts that
			// carry no MATH table.
			c.AxisHeight = c.XHeight / 2
		}
	}
	if gid, ok := f.face.NominalGlyph('H'); ok {
		if ext, ok := f.face.GlyphExtents(gid); ok {
			c.CapHeight = f.scale(float64(ext.YBearing))
		}
	}
	return c
}

// scale converts a design-unit value to layout units.
func (f *Font) scale(v float64) float64 {
	if f.upem == 0 {
		return 0
	}
	return v * f.size / f.upem
}

// GlyphForRune implements font.Font.
func (f *Font) GlyphForRune(r rune) font.GlyphID {
	gid, ok := f.face.NominalGlyph(r)
	if !ok {
		return 0
	}
	return font.GlyphID(gid)
}

// Advance implements font.Font.
func (f *Font) Advance(g font.GlyphID) float64 {
	return f.scale(float64(f.face.HorizontalAdvance(otfont.GID(g))))
}

// BoundingBox implements font.Font.
func (f *Font) BoundingBox(g font.GlyphID) font.Rect {
	ext, ok := f.face.GlyphExtents(otfont.GID(g))
	if !ok {
		return font.Rect{}
	}
	// XBearing/YBearing locate the top-left of the ink box; Width is
	// positive and Height negative (extents run downward).
	minX := f.scale(float64(ext.XBearing))
	maxY := f.scale(float64(ext.YBearing))
	return font.Rect{
		MinX: minX,
		MaxX: minX + f.scale(float64(ext.Width)),
		MaxY: maxY,
		MinY: maxY + f.scale(float64(ext.Height)),
	}
}

// MeasureRun implements font.Font. The run is shaped as a single LTR
// unit through HarfBuzz, so kerning and ligatures affect the advance.
func (f *Font) MeasureRun(text string) font.RunMetrics {
	if text == "" {
		return font.RunMetrics{}
	}
	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      f.face,
		Size:      floatToFixed(f.size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	shaper := shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := shaper.Shape(input)
	shaperPool.Put(shaper)

	return font.RunMetrics{
		Advance: fixedToFloat(out.Advance),
		Ascent:  fixedToFloat(out.GlyphBounds.Ascent),
		Descent: -fixedToFloat(out.GlyphBounds.Descent),
	}
}

// ItalicCorrection implements font.Font. Not exposed by the parser;
// the engine treats zero as "no correction".
func (f *Font) ItalicCorrection(font.GlyphID) float64 { return 0 }

// TopAccentAttachment implements font.Font. Without MATH data the
// attachment point is the advance midpoint.
func (f *Font) TopAccentAttachment(g font.GlyphID) float64 {
	return f.Advance(g) / 2
}

// VerticalVariants implements font.Font. No MATH variant data is
// available through the parser; the engine falls back to the base
// glyph.
func (f *Font) VerticalVariants(font.GlyphID) []font.GlyphID { return nil }

// HorizontalVariants implements font.Font.
func (f *Font) HorizontalVariants(font.GlyphID) []font.GlyphID { return nil }

// VerticalAssemblyParts implements font.Font.
func (f *Font) VerticalAssemblyParts(font.GlyphID) []font.AssemblyPart { return nil }

// IsLimitOperator implements font.Font. Matches the conventional
// limit-taking operators by code point.
func (f *Font) IsLimitOperator(g font.GlyphID) bool {
	for _, r := range limitOperators {
		if gid, ok := f.face.NominalGlyph(r); ok && font.GlyphID(gid) == g {
			return true
		}
	}
	return false
}

// limitOperators are the big operators that take limits in display
// style: the n-ary family plus coproduct, excluding integrals.
var limitOperators = []rune{
	'∑', '∏', '∐', '⋀', '⋁', '⋂', '⋃', '⨀', '⨁', '⨂', '⨄', '⨆',
}

// LineBreakBefore implements font.Font. It walks grapheme clusters and
// returns the byte index after the last cluster whose cumulative
// advance still fits, so a break never lands inside a cluster.
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

// detectScript returns the script of the first non-space rune,
// defaulting to Latin.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 size to 26.6 fixed point.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a 26.6 fixed-point value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
