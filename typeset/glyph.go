package typeset

import (
	"github.com/nguillot/SwiftMath/atom"
	"github.com/nguillot/SwiftMath/font"
)

// Delimiter sizing constants from the reference algorithm: a delimiter
// must cover at least delimiterFactor/500 of the enclosed content's
// axis-relative height, or fall short of twice that height by at most
// delimiterShortfall layout units.
const (
	delimiterFactor    = 901
	delimiterShortfall = 5
)

// glyphHeight returns the total ink height of a glyph.
func glyphHeight(f font.Font, g font.GlyphID) float64 {
	b := f.BoundingBox(g)
	return b.Height()
}

// findVariant walks the ordered vertical variants of a base glyph and
// returns the first one at least height tall, or the tallest
// available. The second result reports whether the height was met.
func findVariant(f font.Font, base font.GlyphID, height float64) (font.GlyphID, bool) {
	best := base
	bestHeight := glyphHeight(f, base)
	if bestHeight >= height {
		return base, true
	}
	for _, v := range f.VerticalVariants(base) {
		h := glyphHeight(f, v)
		if h > bestHeight {
			best, bestHeight = v, h
		}
		if h >= height {
			return v, true
		}
	}
	return best, bestHeight >= height
}

// makeGlyphBox builds a box for a single glyph with its natural
// metrics.
func makeGlyphBox(ctx renderContext, g font.GlyphID, rng atom.Range) *GlyphBox {
	b := ctx.font.BoundingBox(g)
	return &GlyphBox{
		Geometry: Geometry{
			Width:   ctx.font.Advance(g),
			Ascent:  b.MaxY,
			Descent: -b.MinY,
			Range:   rng,
			Color:   ctx.runColor(),
		},
		Glyph: g,
		Font:  ctx.font,
	}
}

// glyphWithHeight returns a box rendering the base glyph at a total
// height of at least height: the first sufficient variant, else an
// assembly from extensible parts, else the tallest variant there is.
// The box baseline still matches the glyph's natural metrics; callers
// reposition it (axis centering, radical alignment) afterwards.
func glyphWithHeight(ctx renderContext, base font.GlyphID, height float64, rng atom.Range) Box {
	variant, ok := findVariant(ctx.font, base, height)
	if ok {
		logger().Debug("typeset: delimiter variant selected",
			"base", int(base), "variant", int(variant))
		return makeGlyphBox(ctx, variant, rng)
	}
	parts := ctx.font.VerticalAssemblyParts(base)
	if len(parts) == 0 {
		// Nothing extensible; the tallest variant has to do.
		return makeGlyphBox(ctx, variant, rng)
	}
	if asm := constructAssembly(ctx, parts, height, rng); asm != nil {
		return asm
	}
	return makeGlyphBox(ctx, variant, rng)
}

// constructAssembly builds an oversized glyph from extensible parts.
//
// Parts are stacked bottom to top. Extender parts are repeated r
// times, r growing until the maximum achievable height (every adjacent
// overlap at its minimum) covers the target. The required total
// overlap is then distributed evenly across all connectors, each
// clamped to its pair's connector lengths.
func constructAssembly(ctx renderContext, parts []font.AssemblyPart, height float64, rng atom.Range) *GlyphAssembly {
	minOverlap := ctx.constants().MinConnectorOverlap

	for repeats := 1; repeats <= maxExtenderRepeats; repeats++ {
		expanded := expandParts(parts, repeats)
		if len(expanded) < 2 {
			// A single part cannot stretch; force extenders in.
			continue
		}
		var full float64
		for _, p := range expanded {
			full += p.FullAdvance
		}
		connectors := len(expanded) - 1
		maxHeight := full - float64(connectors)*minOverlap
		if maxHeight < height {
			continue
		}

		// Required total overlap, split evenly per connector and
		// clamped to what each adjacent pair allows.
		per := (full - height) / float64(connectors)
		glyphs := make([]AssemblyGlyph, len(expanded))
		offset := 0.0
		for i, p := range expanded {
			if i > 0 {
				overlap := clampOverlap(per, minOverlap, expanded[i-1], p)
				offset -= overlap
			}
			glyphs[i] = AssemblyGlyph{Glyph: p.Glyph, Offset: offset}
			offset += p.FullAdvance
		}
		total := offset

		logger().Debug("typeset: glyph assembly constructed",
			"parts", len(expanded), "height", total)
		return &GlyphAssembly{
			Geometry: Geometry{
				Width:   assemblyWidth(ctx.font, expanded),
				Ascent:  total,
				Descent: 0,
				Range:   rng,
				Color:   ctx.runColor(),
			},
			Font:  ctx.font,
			Parts: glyphs,
		}
	}
	return nil
}

// maxExtenderRepeats bounds assembly growth; beyond this the target
// height is unreasonable for any real expression.
const maxExtenderRepeats = 64

// expandParts repeats every extender part r times, preserving order.
func expandParts(parts []font.AssemblyPart, r int) []font.AssemblyPart {
	out := make([]font.AssemblyPart, 0, len(parts)*r)
	for _, p := range parts {
		if p.IsExtender {
			for i := 0; i < r; i++ {
				out = append(out, p)
			}
		} else {
			out = append(out, p)
		}
	}
	return out
}

// clampOverlap limits the even-distribution overlap to the connector
// lengths of the adjacent pair, and never below the font minimum.
func clampOverlap(want, minOverlap float64, lower, upper font.AssemblyPart) float64 {
	o := want
	if o > lower.EndConnector {
		o = lower.EndConnector
	}
	if o > upper.StartConnector {
		o = upper.StartConnector
	}
	if o < minOverlap {
		o = minOverlap
	}
	return o
}

// assemblyWidth is the widest part advance.
func assemblyWidth(f font.Font, parts []font.AssemblyPart) float64 {
	w := 0.0
	for _, p := range parts {
		if a := f.Advance(p.Glyph); a > w {
			w = a
		}
	}
	return w
}

// delimiterTargetHeight computes the required delimiter height for
// enclosing content: cover at least delimiterFactor/500 of the
// axis-relative content height, or miss 2x by at most the shortfall.
func delimiterTargetHeight(g *Geometry, axisHeight float64) float64 {
	content := max(g.Ascent-axisHeight, g.Descent+axisHeight)
	d1 := content * delimiterFactor / 500
	d2 := 2*content - delimiterShortfall
	return max(d1, d2)
}

// centerOnAxis repositions a glyph or assembly box so its ink is
// vertically centered on the math axis, adjusting ascent/descent and
// the recorded shift.
func centerOnAxis(b Box, axisHeight float64) Box {
	g := b.Geom()
	// Move the ink so that its midpoint lands on the axis.
	down := g.Ascent - (g.Height()/2 + axisHeight)
	switch v := b.(type) {
	case *GlyphBox:
		v.ShiftDown += down
	case *GlyphAssembly:
		v.ShiftDown += down
	}
	g.Ascent -= down
	g.Descent += down
	return b
}

// makeDelimiter lays out a delimiter character sized for the given
// content geometry and centers it on the axis. Returns nil when the
// font has no glyph for the character.
func makeDelimiter(ctx renderContext, delim string, content *Geometry, rng atom.Range) Box {
	if delim == "" || delim == "." {
		// "." is the conventional empty delimiter.
		return nil
	}
	r := []rune(delim)[0]
	g := ctx.font.GlyphForRune(r)
	if g == 0 {
		logger().Warn("typeset: no delimiter glyph", "delimiter", delim)
		return nil
	}
	axis := ctx.constants().AxisHeight
	target := delimiterTargetHeight(content, axis)
	box := glyphWithHeight(ctx, g, target, rng)
	return centerOnAxis(box, axis)
}
