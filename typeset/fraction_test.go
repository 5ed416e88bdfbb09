package typeset

import (
	"testing"

	"github.com/nguillot/SwiftMath/atom"
)

func fracAtom(hasRule bool) *atom.Atom {
	return &atom.Atom{
		Kind: atom.KindFraction,
		Fraction: &atom.FractionData{
			Numerator:   atom.NewList(&atom.Atom{Kind: atom.KindNumber, Nucleus: "1"}),
			Denominator: atom.NewList(&atom.Atom{Kind: atom.KindNumber, Nucleus: "2"}),
			HasRule:     hasRule,
		},
	}
}

func displayCtx() renderContext {
	return newContext(testFont(), Options{Style: atom.StyleDisplay})
}

func textCtx() renderContext {
	return newContext(testFont(), Options{Style: atom.StyleText})
}

func TestMakeFractionDisplay(t *testing.T) {
	// Display shifts already clear the gap minima: the numerator sits
	// at FractionNumeratorDisplayStyleShiftUp, the denominator at
	// FractionDenominatorDisplayStyleShiftDown.
	box := makeFraction(displayCtx(), fracAtom(true))
	frac, ok := box.(*FractionBox)
	if !ok {
		t.Fatalf("makeFraction returned %T, want *FractionBox", box)
	}
	if !approx(frac.Numerator.Geom().Position.Y, 12.186) {
		t.Errorf("numerator Y = %v, want 12.186", frac.Numerator.Geom().Position.Y)
	}
	if !approx(frac.Denominator.Geom().Position.Y, -12.348) {
		t.Errorf("denominator Y = %v, want -12.348", frac.Denominator.Geom().Position.Y)
	}
	if !approx(frac.Width, 9) {
		t.Errorf("width = %v, want 9", frac.Width)
	}
	if !approx(frac.Ascent, 12.186+12.6) {
		t.Errorf("ascent = %v, want %v", frac.Ascent, 12.186+12.6)
	}
	if !approx(frac.Descent, 12.348+3.6) {
		t.Errorf("descent = %v, want %v", frac.Descent, 12.348+3.6)
	}
	if !approx(frac.BarPosition, 4.5) || !approx(frac.BarThickness, 0.72) {
		t.Errorf("bar = (%v, %v), want (4.5, 0.72)", frac.BarPosition, frac.BarThickness)
	}
}

func TestMakeFractionTextGapEnforcement(t *testing.T) {
	// In text style the base shifts leave the parts overlapping the
	// bar region, so both grow until the gap minima (0.72) clear:
	// shiftUp 7.092 -> 9.18, shiftDown 6.21 -> 9.18.
	box := makeFraction(textCtx(), fracAtom(true))
	frac := box.(*FractionBox)
	if !approx(frac.Numerator.Geom().Position.Y, 9.18) {
		t.Errorf("numerator Y = %v, want 9.18", frac.Numerator.Geom().Position.Y)
	}
	if !approx(frac.Denominator.Geom().Position.Y, -9.18) {
		t.Errorf("denominator Y = %v, want -9.18", frac.Denominator.Geom().Position.Y)
	}
	// The achieved gaps equal the minima exactly.
	numGap := (9.18 - 3.6) - (4.5 + 0.36)
	if !approx(numGap, 0.72) {
		t.Errorf("numerator gap = %v, want 0.72", numGap)
	}
}

func TestMakeStackDisplay(t *testing.T) {
	box := makeFraction(displayCtx(), fracAtom(false))
	frac := box.(*FractionBox)
	if frac.BarThickness != 0 {
		t.Errorf("stack bar thickness = %v, want 0", frac.BarThickness)
	}
	if !approx(frac.Numerator.Geom().Position.Y, 12.186) {
		t.Errorf("top Y = %v, want 12.186", frac.Numerator.Geom().Position.Y)
	}
	if !approx(frac.Denominator.Geom().Position.Y, -12.348) {
		t.Errorf("bottom Y = %v, want -12.348", frac.Denominator.Geom().Position.Y)
	}
}

func TestMakeStackTextSplitsShortfall(t *testing.T) {
	// Text-style stack: the clearance shortfall is split evenly, so
	// both shifts grow by the same amount (2.079).
	box := makeFraction(textCtx(), fracAtom(false))
	frac := box.(*FractionBox)
	if !approx(frac.Numerator.Geom().Position.Y, 10.071) {
		t.Errorf("top Y = %v, want 10.071", frac.Numerator.Geom().Position.Y)
	}
	if !approx(frac.Denominator.Geom().Position.Y, -8.289) {
		t.Errorf("bottom Y = %v, want -8.289", frac.Denominator.Geom().Position.Y)
	}
	gap := (10.071 - 3.6) - (12.6 - 8.289)
	if !approx(gap, 2.16) {
		t.Errorf("stack gap = %v, want the 2.16 minimum", gap)
	}
}

func TestMakeFractionCentersNarrowPart(t *testing.T) {
	a := fracAtom(true)
	a.Fraction.Numerator = atom.NewList(
		&atom.Atom{Kind: atom.KindNumber, Nucleus: "1"},
	)
	a.Fraction.Denominator = atom.NewList(
		&atom.Atom{Kind: atom.KindNumber, Nucleus: "24"},
	)
	frac := makeFraction(displayCtx(), a).(*FractionBox)
	if !approx(frac.Width, 18) {
		t.Fatalf("width = %v, want 18", frac.Width)
	}
	if !approx(frac.Numerator.Geom().Position.X, 4.5) {
		t.Errorf("narrow numerator X = %v, want 4.5", frac.Numerator.Geom().Position.X)
	}
	if !approx(frac.Denominator.Geom().Position.X, 0) {
		t.Errorf("denominator X = %v, want 0", frac.Denominator.Geom().Position.X)
	}
}

func TestMakeFractionContinuedForcesDisplay(t *testing.T) {
	a := fracAtom(true)
	a.Fraction.Continued = true
	frac := makeFraction(textCtx(), a).(*FractionBox)
	// Display constants apply even though the context is text style.
	if !approx(frac.Numerator.Geom().Position.Y, 12.186) {
		t.Errorf("continued numerator Y = %v, want 12.186",
			frac.Numerator.Geom().Position.Y)
	}
}

func TestMakeFractionDelimited(t *testing.T) {
	a := fracAtom(true)
	a.Fraction.LeftDelimiter = "("
	a.Fraction.RightDelimiter = ")"
	box := makeFraction(displayCtx(), a)
	comp, ok := box.(*Composite)
	if !ok {
		t.Fatalf("delimited fraction is %T, want *Composite", box)
	}
	if len(comp.Children()) != 3 {
		t.Fatalf("children = %d, want delimiter + fraction + delimiter",
			len(comp.Children()))
	}
	if !approx(comp.Width, 27) {
		t.Errorf("width = %v, want 27", comp.Width)
	}
}

func TestMakeFractionEmptyDelimiter(t *testing.T) {
	a := fracAtom(true)
	a.Fraction.LeftDelimiter = "."
	a.Fraction.RightDelimiter = ")"
	box := makeFraction(displayCtx(), a)
	comp, ok := box.(*Composite)
	if !ok {
		t.Fatalf("delimited fraction is %T, want *Composite", box)
	}
	// "." is the empty delimiter: only the right paren is added.
	if len(comp.Children()) != 2 {
		t.Errorf("children = %d, want 2", len(comp.Children()))
	}
}
