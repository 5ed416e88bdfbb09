package typeset

import (
	"github.com/nguillot/SwiftMath/atom"
)

// makeFraction lays out a fraction or stack atom (TeX rules 15a-15e).
//
// Numerator and denominator are laid out as independent sub-layouts in
// the parent's style (continued fractions force display style), the
// denominator cramped. Shift-ups start from the constants selected by
// (hasRule, display) and grow until the minimum gaps clear.
func makeFraction(ctx renderContext, a *atom.Atom) Box {
	data := a.Fraction
	c := ctx.constants()

	num := layoutList(ctx.numeratorContext(data.Continued), data.Numerator)
	den := layoutList(ctx.denominatorContext(data.Continued), data.Denominator)

	axis := c.AxisHeight
	display := ctx.displayStyle() || data.Continued

	var thickness, shiftUp, shiftDown, numGapMin, denGapMin float64
	if data.HasRule {
		thickness = c.FractionRuleThickness
		if display {
			shiftUp = c.FractionNumeratorDisplayStyleShiftUp
			shiftDown = c.FractionDenominatorDisplayStyleShiftDown
			numGapMin = c.FractionNumDisplayStyleGapMin
			denGapMin = c.FractionDenomDisplayStyleGapMin
		} else {
			shiftUp = c.FractionNumeratorShiftUp
			shiftDown = c.FractionDenominatorShiftDown
			numGapMin = c.FractionNumeratorGapMin
			denGapMin = c.FractionDenominatorGapMin
		}
	} else {
		if display {
			shiftUp = c.StackTopDisplayStyleShiftUp
			shiftDown = c.StackBottomDisplayStyleShiftDown
			numGapMin = c.StackDisplayStyleGapMin
		} else {
			shiftUp = c.StackTopShiftUp
			shiftDown = c.StackBottomShiftDown
			numGapMin = c.StackGapMin
		}
	}

	if data.HasRule {
		// Numerator bottom must clear the bar top by numGapMin.
		if gap := (shiftUp - num.Descent) - (axis + thickness/2); gap < numGapMin {
			shiftUp += numGapMin - gap
		}
		// Denominator top must clear the bar bottom by denGapMin.
		if gap := (axis - thickness/2) - (den.Ascent - shiftDown); gap < denGapMin {
			shiftDown += denGapMin - gap
		}
	} else {
		// No bar: the clearance between numerator bottom and
		// denominator top splits the shortfall evenly.
		if gap := (shiftUp - num.Descent) - (den.Ascent - shiftDown); gap < numGapMin {
			half := (numGapMin - gap) / 2
			shiftUp += half
			shiftDown += half
		}
	}

	width := max(num.Width, den.Width)
	num.Position = Point{X: (width - num.Width) / 2, Y: shiftUp}
	den.Position = Point{X: (width - den.Width) / 2, Y: -shiftDown}

	frac := &FractionBox{
		Geometry: Geometry{
			Width:   width,
			Ascent:  shiftUp + num.Ascent,
			Descent: shiftDown + den.Descent,
			Range:   a.Range,
			Color:   ctx.color,
		},
		Numerator:    num,
		Denominator:  den,
		BarPosition:  axis,
		BarThickness: thickness,
	}

	if data.LeftDelimiter == "" && data.RightDelimiter == "" {
		return frac
	}
	return wrapInDelimiters(ctx, frac, data.LeftDelimiter, data.RightDelimiter, a.Range)
}

// wrapInDelimiters surrounds a box with sized delimiter glyphs in a
// horizontal composite.
func wrapInDelimiters(ctx renderContext, inner Box, left, right string, rng atom.Range) Box {
	boxes := make([]Box, 0, 3)
	x := 0.0
	if l := makeDelimiter(ctx, left, inner.Geom(), rng); l != nil {
		l.Geom().Position = Point{X: x}
		x += l.Geom().Width
		boxes = append(boxes, l)
	}
	inner.Geom().Position = Point{X: x}
	x += inner.Geom().Width
	boxes = append(boxes, inner)
	if r := makeDelimiter(ctx, right, inner.Geom(), rng); r != nil {
		r.Geom().Position = Point{X: x}
		boxes = append(boxes, r)
	}
	return newComposite(boxes, rng)
}
