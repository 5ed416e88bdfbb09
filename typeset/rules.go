package typeset

import (
	"github.com/nguillot/SwiftMath/atom"
)

// makeOverline draws a rule over its inner list (TeX rule 9): a
// clearance of three rule thicknesses between the content top and the
// rule, and one extra thickness of air above it.
func makeOverline(ctx renderContext, a *atom.Atom) Box {
	inner := layoutList(ctx.child().withCramped(true), a.Line.Inner)
	t := ctx.constants().OverbarRuleThickness

	rule := &RuleBox{
		Geometry: Geometry{
			Position: Point{Y: inner.Ascent + 3*t + t/2},
			Width:    inner.Width,
			Ascent:   t / 2,
			Descent:  t / 2,
			Range:    a.Range,
			Color:    ctx.color,
		},
		Thickness: t,
	}
	composed := newComposite([]Box{inner, rule}, a.Range)
	composed.Ascent = inner.Ascent + 5*t
	composed.Color = ctx.color
	return composed
}

// makeUnderline is the mirror of makeOverline (TeX rule 10).
func makeUnderline(ctx renderContext, a *atom.Atom) Box {
	inner := layoutList(ctx.child(), a.Line.Inner)
	t := ctx.constants().UnderbarRuleThickness

	rule := &RuleBox{
		Geometry: Geometry{
			Position: Point{Y: -(inner.Descent + 3*t + t/2)},
			Width:    inner.Width,
			Ascent:   t / 2,
			Descent:  t / 2,
			Range:    a.Range,
			Color:    ctx.color,
		},
		Thickness: t,
	}
	composed := newComposite([]Box{inner, rule}, a.Range)
	composed.Descent = inner.Descent + 5*t
	composed.Color = ctx.color
	return composed
}

// makeInner lays out a delimited group: the inner list with sized
// boundary delimiters on either side.
func makeInner(ctx renderContext, a *atom.Atom) Box {
	inner := layoutList(ctx.child(), a.Inner.Inner)

	var left, right string
	if b := a.Inner.Left; b != nil {
		if b.Kind != atom.KindBoundary {
			logger().Error("typeset: non-boundary atom as left delimiter", "kind", b.Kind.String())
		}
		left = b.Nucleus
	}
	if b := a.Inner.Right; b != nil {
		if b.Kind != atom.KindBoundary {
			logger().Error("typeset: non-boundary atom as right delimiter", "kind", b.Kind.String())
		}
		right = b.Nucleus
	}
	if left == "" && right == "" {
		return inner
	}
	return wrapInDelimiters(ctx, inner, left, right, a.Range)
}

// makeColor lays out a color-wrapping atom. KindColor propagates the
// color into every produced box, KindTextColor into glyph runs and
// glyph boxes only, and KindColorBox records a background color on the
// composite.
func makeColor(ctx renderContext, a *atom.Atom) Box {
	sub := ctx.child()
	switch a.Kind {
	case atom.KindColor:
		sub = sub.withColor(a.Color.Color)
	case atom.KindTextColor:
		sub = sub.withTextColor(a.Color.Color)
	}
	inner := layoutList(sub, a.Color.Inner)
	if a.Kind == atom.KindColorBox {
		inner.Background = a.Color.Color
	}
	return inner
}
