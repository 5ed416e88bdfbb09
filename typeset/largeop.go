package typeset

import (
	"unicode/utf8"

	"github.com/nguillot/SwiftMath/atom"
	"github.com/nguillot/SwiftMath/font"
)

// makeLargeOperator lays out a big operator atom (TeX rule 13),
// including its scripts: either as limits above and below the nucleus
// or attached beside it via the ordinary script renderer.
func makeLargeOperator(ctx renderContext, a *atom.Atom) Box {
	c := ctx.constants()

	// Multi-character operators (lim, max, ...) are ordinary text
	// runs; only single glyphs take the enlarged display variant.
	if utf8.RuneCountInString(a.Nucleus) != 1 {
		base := newTextRun(ctx.font, a.Nucleus, a.Range, ctx.runColor())
		if showLimits(ctx, a, 0) {
			return makeLimits(ctx, a, base, 0)
		}
		return attachScripts(ctx, base, a, 0)
	}

	r, _ := utf8.DecodeRuneInString(a.Nucleus)
	glyph := ctx.font.GlyphForRune(r)
	if glyph == 0 {
		logger().Warn("typeset: font has no glyph for operator", "nucleus", a.Nucleus)
		return nil
	}
	if ctx.displayStyle() {
		glyph = largerVariant(ctx.font, glyph)
	}
	delta := ctx.font.ItalicCorrection(glyph)

	box := makeGlyphBox(ctx, glyph, a.Range)
	// Center the operator on the math axis.
	down := 0.5*(box.Ascent-box.Descent) - c.AxisHeight
	box.ShiftDown += down
	box.Ascent -= down
	box.Descent += down

	if showLimits(ctx, a, glyph) {
		return makeLimits(ctx, a, box, delta)
	}
	if a.Subscript != nil {
		// The italic correction is absorbed as spacing before the
		// subscript instead of operator width.
		box.Width -= delta
	}
	return attachScripts(ctx, box, a, delta)
}

// showLimits decides whether scripts render above/below the nucleus.
// Limits never render in script styles.
func showLimits(ctx renderContext, a *atom.Atom, glyph font.GlyphID) bool {
	if !a.HasScripts() || ctx.style.IsScript() {
		return false
	}
	mode := atom.LimitsDefault
	if a.LargeOp != nil {
		mode = a.LargeOp.Limits
	}
	switch mode {
	case atom.LimitsAlways:
		return true
	case atom.LimitsNever:
		return false
	default:
		return ctx.displayStyle() && glyph != 0 && ctx.font.IsLimitOperator(glyph)
	}
}

// largerVariant returns the first vertical variant taller than the
// base glyph, or the base itself when the font offers none.
func largerVariant(f font.Font, base font.GlyphID) font.GlyphID {
	baseHeight := glyphHeight(f, base)
	for _, v := range f.VerticalVariants(base) {
		if glyphHeight(f, v) > baseHeight {
			return v
		}
	}
	return base
}

// makeLimits stacks the superscript above and the subscript below the
// nucleus. The limits are laid out in script style (lower limit
// cramped) and shifted horizontally by half the italic correction.
func makeLimits(ctx renderContext, a *atom.Atom, nucleus Box, delta float64) Box {
	c := ctx.constants()
	nucleusGeom := nucleus.Geom()
	nucleusGeom.HasScript = true

	var upper, lower *Composite
	if a.Superscript != nil {
		upper = layoutList(ctx.superscriptContext(), a.Superscript)
	}
	if a.Subscript != nil {
		lower = layoutList(ctx.subscriptContext(), a.Subscript)
	}

	width := nucleusGeom.Width
	if upper != nil && upper.Width > width {
		width = upper.Width
	}
	if lower != nil && lower.Width > width {
		width = lower.Width
	}
	nucleusGeom.Position = Point{X: (width - nucleusGeom.Width) / 2}

	box := &LargeOpLimitsBox{
		Geometry: Geometry{
			Width:     width,
			Ascent:    nucleusGeom.Ascent,
			Descent:   nucleusGeom.Descent,
			Range:     a.Range,
			Color:     ctx.color,
			HasScript: true,
		},
		Nucleus: nucleus,
	}

	if upper != nil {
		gap := max(c.UpperLimitGapMin, c.UpperLimitBaselineRiseMin-upper.Descent)
		baseline := nucleusGeom.Ascent + gap + upper.Descent
		upper.Position = Point{
			X: (width-upper.Width)/2 + delta/2,
			Y: baseline,
		}
		box.UpperLimit = upper
		box.UpperGap = gap
		box.Ascent = baseline + upper.Ascent
	}
	if lower != nil {
		gap := max(c.LowerLimitGapMin, c.LowerLimitBaselineDropMin-lower.Ascent)
		baseline := nucleusGeom.Descent + gap + lower.Ascent
		lower.Position = Point{
			X: (width-lower.Width)/2 - delta/2,
			Y: -baseline,
		}
		box.LowerLimit = lower
		box.LowerGap = gap
		box.Descent = baseline + lower.Descent
	}
	return box
}
