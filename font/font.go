// Package font defines the metrics-provider contract consumed by the
// layout engine.
//
// The engine never touches font files itself: it asks a Font for glyph
// metrics, math constants, glyph variants and assembly parts, and
// accepts whatever comes back. Two implementations ship with this
// module:
//
//   - font/opentype: real OpenType fonts via go-text/typesetting
//   - font/fonttest: deterministic scripted metrics for tests
package font

// GlyphID is a font-specific glyph index. Zero is the missing glyph.
type GlyphID uint32

// Rect is a glyph bounding box relative to the glyph origin on the
// baseline. MaxY extends upward (ascent), MinY downward (negative for
// descenders).
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// RunMetrics describes a measured text run.
type RunMetrics struct {
	// Advance is the total advance width of the run.
	Advance float64

	// Ascent is the maximum extent above the baseline.
	Ascent float64

	// Descent is the maximum extent below the baseline, as a positive
	// value.
	Descent float64
}

// AssemblyPart is one piece of an extensible glyph assembly.
type AssemblyPart struct {
	Glyph GlyphID

	// StartConnector and EndConnector are the lengths of the regions
	// that may overlap with the previous and next part.
	StartConnector float64
	EndConnector   float64

	// FullAdvance is the part's total extent along the assembly axis.
	FullAdvance float64

	// IsExtender marks parts that may be repeated to reach a target
	// size.
	IsExtender bool
}

// Font is the metrics provider handle the engine lays out against.
//
// A Font is bound to a specific size; WithSize derives handles for
// script scaling. Implementations need not be safe for concurrent use:
// the engine is single-threaded within one layout call and callers
// must not share one layout invocation across goroutines.
type Font interface {
	// Size returns the em size in layout units.
	Size() float64

	// WithSize returns a handle for the same font at a different size.
	WithSize(size float64) Font

	// Constants returns the math constants table scaled to Size.
	Constants() *Constants

	// GlyphForRune returns the glyph for a rune, or 0 if the font has
	// none.
	GlyphForRune(r rune) GlyphID

	// Advance returns the horizontal advance of a glyph.
	Advance(g GlyphID) float64

	// BoundingBox returns the glyph's ink box relative to its origin.
	BoundingBox(g GlyphID) Rect

	// MeasureRun measures a text run, shaped as one unit.
	MeasureRun(text string) RunMetrics

	// ItalicCorrection returns the italic correction of a glyph.
	ItalicCorrection(g GlyphID) float64

	// TopAccentAttachment returns the horizontal position of the
	// glyph's accent attachment point, measured from the glyph origin.
	TopAccentAttachment(g GlyphID) float64

	// VerticalVariants returns successively taller variants of a
	// glyph, ordered by increasing height. The base glyph itself is
	// not included. May be empty.
	VerticalVariants(g GlyphID) []GlyphID

	// HorizontalVariants returns successively wider variants of a
	// glyph, ordered by increasing width. May be empty.
	HorizontalVariants(g GlyphID) []GlyphID

	// VerticalAssemblyParts returns the extensible parts for building
	// an arbitrarily tall version of a glyph, bottom to top. Empty when
	// the glyph is not extensible.
	VerticalAssemblyParts(g GlyphID) []AssemblyPart

	// IsLimitOperator reports whether the glyph conventionally renders
	// its scripts as limits in display style (the ∑ family, not ∫).
	IsLimitOperator(g GlyphID) bool

	// LineBreakBefore suggests the byte index of the last sensible
	// break point in text whose prefix advance fits within width.
	// Returns 0 when not even the first grapheme fits.
	LineBreakBefore(text string, width float64) int
}

// MuWidth converts a length in mu (1/18 em) to layout units for the
// given font.
func MuWidth(f Font, mu float64) float64 {
	return mu * f.Constants().MathUnit
}
