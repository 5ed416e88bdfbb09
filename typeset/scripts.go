package typeset

import (
	"github.com/nguillot/SwiftMath/atom"
)

// attachScripts places an atom's sub/superscripts against an already
// laid out base box (TeX rule 18) and returns the composed box.
//
// delta is the italic correction of the base glyph: the superscript is
// shifted right by it, the subscript is not. For bases that are not a
// simple glyph run, a baseline heuristic from the base's own metrics
// raises the floor of both shifts.
func attachScripts(ctx renderContext, base Box, a *atom.Atom, delta float64) Box {
	if !a.HasScripts() {
		return base
	}
	c := ctx.constants()
	baseGeom := base.Geom()
	baseGeom.HasScript = true

	var sup, sub *Composite
	if a.Superscript != nil {
		sup = layoutList(ctx.superscriptContext(), a.Superscript)
	}
	if a.Subscript != nil {
		sub = layoutList(ctx.subscriptContext(), a.Subscript)
	}

	// Baseline heuristic for compound bases: scripts track the base's
	// own extent rather than the font defaults.
	_, simple := base.(*TextRun)
	var heuristicRise, heuristicDrop float64
	if !simple {
		heuristicRise = baseGeom.Ascent - c.SuperscriptBaselineDropMax
		heuristicDrop = baseGeom.Descent + c.SubscriptBaselineDropMin
	}

	shiftUpConst := c.SuperscriptShiftUp
	if ctx.cramped {
		shiftUpConst = c.SuperscriptShiftUpCramped
	}

	var shiftUp, shiftDown float64
	switch {
	case sup == nil:
		shiftDown = max(c.SubscriptShiftDown,
			sub.Ascent-c.SubscriptTopMax,
			heuristicDrop)
	case sub == nil:
		shiftUp = max(shiftUpConst,
			sup.Descent+c.SuperscriptBottomMin,
			heuristicRise)
	default:
		shiftUp = max(shiftUpConst,
			sup.Descent+c.SuperscriptBottomMin,
			heuristicRise)
		shiftDown = max(c.SubscriptShiftDown,
			sub.Ascent-c.SubscriptTopMax,
			heuristicDrop)
		// The scripts must clear each other vertically; grow the
		// subscript drop first, then trade part of it back into
		// superscript rise if the superscript bottom would sink past
		// its allowed maximum.
		gap := (shiftUp - sup.Descent) - (sub.Ascent - shiftDown)
		if gap < c.SubSuperscriptGapMin {
			shiftDown += c.SubSuperscriptGapMin - gap
			if excess := c.SuperscriptBottomMaxWithSubscript - (shiftUp - sup.Descent); excess > 0 {
				shiftUp += excess
				shiftDown -= excess
			}
		}
	}

	boxes := []Box{base}
	baseWidth := baseGeom.Width
	scriptWidth := 0.0
	if sup != nil {
		sup.Position = Point{X: baseWidth + delta, Y: shiftUp}
		scriptWidth = delta + sup.Width
		boxes = append(boxes, sup)
	}
	if sub != nil {
		sub.Position = Point{X: baseWidth, Y: -shiftDown}
		if sub.Width > scriptWidth {
			scriptWidth = sub.Width
		}
		boxes = append(boxes, sub)
	}

	composed := newComposite(boxes, a.Range)
	composed.Width = baseWidth + scriptWidth + c.SpaceAfterScript
	composed.HasScript = true
	return composed
}
