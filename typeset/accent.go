package typeset

import (
	"unicode/utf8"

	"github.com/nguillot/SwiftMath/atom"
	"github.com/nguillot/SwiftMath/font"
)

// makeAccent lays out an accented sub-expression (TeX rule 12). The
// accent glyph is the widest-enough horizontal variant of the atom's
// nucleus, skewed so its attachment point lines up with the accentee's.
func makeAccent(ctx renderContext, a *atom.Atom) Box {
	accentee := layoutList(ctx.child().withCramped(true), a.Accent.Accentee)
	if a.Nucleus == "" {
		return accentee
	}
	r, _ := utf8.DecodeRuneInString(a.Nucleus)
	accentGlyph := ctx.font.GlyphForRune(r)
	if accentGlyph == 0 {
		logger().Warn("typeset: font has no accent glyph", "nucleus", a.Nucleus)
		return accentee
	}

	// A single accented character keeps its scripts: they detach from
	// the accent atom, the bare character is accented, and the
	// scripts reattach to the composed box.
	var scripts *atom.Atom
	if singleCharAccentee(a) && a.HasScripts() {
		scripts = a
		bare := innerAtom(a).Copy()
		bare.Subscript = nil
		bare.Superscript = nil
		accentee = layoutList(ctx.child(), atom.NewList(bare))
	}

	variant := widestVariant(ctx.font, accentGlyph, accentee.Width)
	skew := accenteeSkew(ctx, a, accentee, scripts != nil) - ctx.font.TopAccentAttachment(variant)

	c := ctx.constants()
	delta := min(accentee.Ascent, c.AccentBaseHeight)
	accentBox := makeGlyphBox(ctx, variant, a.Range)
	accentBox.Position = Point{X: skew, Y: accentee.Ascent - delta}

	accentee.Position = Point{}
	composed := newComposite([]Box{accentee, accentBox}, a.Range)
	composed.Width = accentee.Width
	composed.Ascent = max(accentee.Ascent, accentee.Ascent-delta+accentBox.Ascent)
	composed.Descent = accentee.Descent

	if scripts != nil {
		return attachScripts(ctx, composed, scripts, 0)
	}
	return composed
}

// singleCharAccentee reports whether the accentee is one unscripted or
// self-scripted character atom.
func singleCharAccentee(a *atom.Atom) bool {
	inner := innerAtom(a)
	return inner != nil && utf8.RuneCountInString(inner.Nucleus) == 1
}

// innerAtom returns the accentee's only atom, or nil.
func innerAtom(a *atom.Atom) *atom.Atom {
	if a.Accent == nil || a.Accent.Accentee.Len() != 1 {
		return nil
	}
	return a.Accent.Accentee.Atoms[0]
}

// widestVariant returns the narrowest horizontal variant at least
// width wide, else the widest available.
func widestVariant(f font.Font, base font.GlyphID, width float64) font.GlyphID {
	best := base
	bestWidth := f.BoundingBox(base).Width()
	if bestWidth >= width {
		return base
	}
	for _, v := range f.HorizontalVariants(base) {
		w := f.BoundingBox(v).Width()
		if w >= width {
			return v
		}
		if w > bestWidth {
			best, bestWidth = v, w
		}
	}
	return best
}

// accenteeSkew is the horizontal alignment point of the accentee: the
// base character's top accent attachment for a single plain character
// (including one whose scripts were detached), the geometric center
// otherwise.
func accenteeSkew(ctx renderContext, a *atom.Atom, accentee *Composite, detached bool) float64 {
	if singleCharAccentee(a) {
		inner := innerAtom(a)
		if detached || !inner.HasScripts() {
			r, _ := utf8.DecodeRuneInString(inner.Nucleus)
			if g := ctx.font.GlyphForRune(r); g != 0 {
				return ctx.font.TopAccentAttachment(g)
			}
		}
	}
	return accentee.Width / 2
}
