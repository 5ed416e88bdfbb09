package typeset

import (
	"github.com/nguillot/SwiftMath/atom"
	"github.com/nguillot/SwiftMath/font"
)

// Point is a 2D position. Coordinates are y-up: positive Y is above
// the baseline.
type Point struct {
	X, Y float64
}

// Geometry is the shared base of every box: its size, its position
// within the parent, and bookkeeping for the drawing layer.
//
// Ascent, Descent and Width are fixed at construction. Position is
// assigned exactly once, by the parent, after the parent's own layout
// is known; boxes are otherwise immutable.
type Geometry struct {
	// Position is the box origin (left edge, baseline) relative to
	// the parent box origin.
	Position Point

	// Width is the horizontal extent from the origin.
	Width float64

	// Ascent is the extent above the baseline.
	Ascent float64

	// Descent is the extent below the baseline, as a positive value.
	Descent float64

	// Range locates the box in the original source string.
	Range atom.Range

	// Color is an optional local color override ("#rrggbb" or
	// "#aarrggbb"); empty means inherit.
	Color string

	// HasScript marks a box that carries attached sub/superscripts.
	HasScript bool
}

// Geom returns the box geometry. It is the single accessor the Box
// interface requires.
func (g *Geometry) Geom() *Geometry { return g }

// Height returns ascent + descent.
func (g *Geometry) Height() float64 { return g.Ascent + g.Descent }

// Box is a positioned, sized node of the layout output tree.
type Box interface {
	Geom() *Geometry

	// Children returns the immediate sub-boxes, with positions
	// relative to this box's origin. Leaf boxes return nil.
	Children() []Box
}

// TextRun is a run of glyphs sharing one font and style, drawn left to
// right from the origin.
type TextRun struct {
	Geometry

	// Text is the styled nucleus text of the run.
	Text string

	// Font is the sized font the run was measured with.
	Font font.Font
}

// Children implements Box.
func (*TextRun) Children() []Box { return nil }

// newTextRun measures text and builds a run box. Position is left to
// the caller.
func newTextRun(f font.Font, text string, rng atom.Range, color string) *TextRun {
	m := f.MeasureRun(text)
	return &TextRun{
		Geometry: Geometry{
			Width:   m.Advance,
			Ascent:  m.Ascent,
			Descent: m.Descent,
			Range:   rng,
			Color:   color,
		},
		Text: text,
		Font: f,
	}
}

// GlyphBox is a single glyph, optionally shifted down from the
// baseline (large operators and delimiters are centered on the math
// axis this way).
type GlyphBox struct {
	Geometry

	Glyph font.GlyphID
	Font  font.Font

	// ShiftDown is how far below the baseline the glyph origin sits.
	// The geometry already accounts for it.
	ShiftDown float64
}

// Children implements Box.
func (*GlyphBox) Children() []Box { return nil }

// AssemblyGlyph is one positioned part of a glyph assembly.
type AssemblyGlyph struct {
	Glyph font.GlyphID

	// Offset is the part's distance from the assembly bottom.
	Offset float64
}

// GlyphAssembly approximates one oversized glyph with a stack of
// extensible parts, bottom to top.
type GlyphAssembly struct {
	Geometry

	Font  font.Font
	Parts []AssemblyGlyph

	// ShiftDown mirrors GlyphBox.ShiftDown.
	ShiftDown float64
}

// Children implements Box.
func (*GlyphAssembly) Children() []Box { return nil }

// RuleBox is a horizontal rule (fraction bars, overlines, underlines).
type RuleBox struct {
	Geometry

	// Thickness is the rule thickness; the rule's vertical center is
	// at the box origin.
	Thickness float64
}

// Children implements Box.
func (*RuleBox) Children() []Box { return nil }

// FractionBox owns a numerator and a denominator, vertically arranged
// around an optional bar on the math axis.
type FractionBox struct {
	Geometry

	Numerator   Box
	Denominator Box

	// BarPosition is the height of the bar center above the baseline
	// (the math axis). BarThickness is zero for rule-less stacks.
	BarPosition  float64
	BarThickness float64
}

// Children implements Box.
func (b *FractionBox) Children() []Box { return []Box{b.Numerator, b.Denominator} }

// RadicalBox owns a radicand, the radical sign glyph and an optional
// degree.
type RadicalBox struct {
	Geometry

	Radicand Box

	// Sign is the radical glyph or assembly, already positioned.
	Sign Box

	// Degree is the optional root index, already positioned. Nil when
	// absent.
	Degree Box

	// RuleThickness is the thickness of the overbar; the bar's top
	// edge sits at the sign's top.
	RuleThickness float64
}

// Children implements Box.
func (b *RadicalBox) Children() []Box {
	children := []Box{b.Radicand, b.Sign}
	if b.Degree != nil {
		children = append(children, b.Degree)
	}
	return children
}

// LargeOpLimitsBox is a large operator with limits placed above and/or
// below the nucleus.
type LargeOpLimitsBox struct {
	Geometry

	Nucleus Box

	// UpperLimit and LowerLimit may be nil.
	UpperLimit Box
	LowerLimit Box

	// UpperGap and LowerGap are the clearances between the nucleus
	// and the limits.
	UpperGap float64
	LowerGap float64
}

// Children implements Box.
func (b *LargeOpLimitsBox) Children() []Box {
	children := []Box{b.Nucleus}
	if b.UpperLimit != nil {
		children = append(children, b.UpperLimit)
	}
	if b.LowerLimit != nil {
		children = append(children, b.LowerLimit)
	}
	return children
}

// Composite is an ordered group of boxes. Its geometry is the union of
// its children's bounds.
type Composite struct {
	Geometry

	// Background is an optional background color behind the whole
	// composite; empty means none.
	Background string

	children []Box
}

// Children implements Box.
func (c *Composite) Children() []Box { return c.children }

// newComposite groups boxes whose positions are already set, computing
// the union geometry.
func newComposite(boxes []Box, rng atom.Range) *Composite {
	c := &Composite{children: boxes}
	c.Range = rng
	for _, b := range boxes {
		g := b.Geom()
		if right := g.Position.X + g.Width; right > c.Width {
			c.Width = right
		}
		if top := g.Position.Y + g.Ascent; top > c.Ascent {
			c.Ascent = top
		}
		if bottom := g.Descent - g.Position.Y; bottom > c.Descent {
			c.Descent = bottom
		}
	}
	return c
}
