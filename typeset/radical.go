package typeset

import (
	"github.com/nguillot/SwiftMath/atom"
)

// radicalSign is the base radical character.
const radicalSign = '√'

// makeRadical lays out a root (TeX rule 11). The radicand is always
// cramped; the sign glyph is sized to clear it, and any excess glyph
// height is returned to the clearance so the radicand sits visually
// centered under the bar.
func makeRadical(ctx renderContext, a *atom.Atom) Box {
	c := ctx.constants()

	radicand := layoutList(ctx.radicandContext(), a.Radical.Radicand)

	clearance := c.RadicalVerticalGap
	if ctx.displayStyle() {
		clearance = c.RadicalDisplayStyleVerticalGap
	}
	thickness := c.RadicalRuleThickness

	base := ctx.font.GlyphForRune(radicalSign)
	if base == 0 {
		logger().Warn("typeset: font has no radical glyph")
		return radicand
	}

	target := radicand.Height() + clearance + thickness
	sign := glyphWithHeight(ctx, base, target, a.Range)
	signGeom := sign.Geom()

	// A taller-than-needed glyph gives half its excess back to the
	// clearance so the radicand centers under the bar.
	if excess := signGeom.Height() - target; excess > 0 {
		clearance += excess / 2
	}

	// The sign's top edge sits thickness+clearance above the
	// radicand's ascent line.
	signAscent := radicand.Ascent + clearance + thickness
	shiftDown := signGeom.Ascent - signAscent
	switch v := sign.(type) {
	case *GlyphBox:
		v.ShiftDown += shiftDown
	case *GlyphAssembly:
		v.ShiftDown += shiftDown
	}
	signGeom.Ascent -= shiftDown
	signGeom.Descent += shiftDown

	signWidth := signGeom.Width
	radicand.Position = Point{X: signWidth}

	box := &RadicalBox{
		Geometry: Geometry{
			Width:   signWidth + radicand.Width,
			Ascent:  signAscent + c.RadicalExtraAscender,
			Descent: max(signGeom.Descent, radicand.Descent),
			Range:   a.Range,
			Color:   ctx.color,
		},
		Radicand:      radicand,
		Sign:          sign,
		RuleThickness: thickness,
	}

	if a.Radical.Degree.IsEmpty() {
		return box
	}
	return attachDegree(ctx, box, a)
}

// attachDegree places the root index above-left of the sign, raised by
// the font's degree-raise fraction of the radical height, and shifts
// the sign and radicand right to make room.
func attachDegree(ctx renderContext, box *RadicalBox, a *atom.Atom) Box {
	c := ctx.constants()
	degree := layoutList(ctx.degreeContext(), a.Radical.Degree)

	kernBefore := c.RadicalKernBeforeDegree
	kernAfter := c.RadicalKernAfterDegree
	raise := c.RadicalDegreeBottomRaisePercent * (box.Ascent + box.Descent)

	shift := kernBefore + degree.Width + kernAfter
	if shift < 0 {
		shift = 0
	}
	degree.Position = Point{X: kernBefore, Y: raise - box.Descent}
	box.Sign.Geom().Position.X += shift
	box.Radicand.Geom().Position.X += shift

	box.Degree = degree
	box.Width += shift
	if top := degree.Position.Y + degree.Ascent; top > box.Ascent {
		box.Ascent = top
	}
	return box
}
