package typeset

import (
	"testing"

	"github.com/nguillot/SwiftMath/atom"
	"github.com/nguillot/SwiftMath/font"
	"github.com/nguillot/SwiftMath/font/fonttest"
)

const hatAccent = "̂"

func accentAtom(accentee ...*atom.Atom) *atom.Atom {
	return &atom.Atom{
		Kind:    atom.KindAccent,
		Nucleus: hatAccent,
		Accent:  &atom.AccentData{Accentee: atom.NewList(accentee...)},
	}
}

func TestMakeAccent(t *testing.T) {
	f := testFont()
	f.Attachments[fonttest.GID('x')] = 3
	ctx := newContext(f, Options{Style: atom.StyleDisplay})

	box := makeAccent(ctx, accentAtom(ord("x")))
	comp, ok := box.(*Composite)
	if !ok {
		t.Fatalf("makeAccent returned %T, want *Composite", box)
	}
	if len(comp.Children()) != 2 {
		t.Fatalf("children = %d, want accentee + accent", len(comp.Children()))
	}
	accent := comp.Children()[1].(*GlyphBox)
	// Skew aligns attachment points: the base's 3 minus the accent's
	// default midpoint 4.5.
	if !approx(accent.Position.X, -1.5) {
		t.Errorf("accent X = %v, want -1.5", accent.Position.X)
	}
	// The accent drops onto tall accentees: it rides at the ascent
	// minus min(ascent, AccentBaseHeight) = 12.6 - 8.1.
	if !approx(accent.Position.Y, 4.5) {
		t.Errorf("accent Y = %v, want 4.5", accent.Position.Y)
	}
	if !approx(comp.Ascent, 12.6-8.1+12.6) {
		t.Errorf("ascent = %v, want 17.1", comp.Ascent)
	}
	if !approx(comp.Width, 9) {
		t.Errorf("width = %v, want the accentee width 9", comp.Width)
	}
}

func TestMakeAccentShortAccentee(t *testing.T) {
	// An accentee shorter than AccentBaseHeight pulls the accent all
	// the way down to its ascent.
	f := testFont()
	short := fonttest.GID('x')
	f.Boxes[short] = font.Rect{MaxX: 9, MaxY: 5, MinY: 0}
	ctx := newContext(f, Options{Style: atom.StyleDisplay})

	comp := makeAccent(ctx, accentAtom(ord("x"))).(*Composite)
	accent := comp.Children()[1].(*GlyphBox)
	// delta = min(5, 8.1) = 5, so the accent sits on the baseline.
	if !approx(accent.Position.Y, 0) {
		t.Errorf("accent Y = %v, want 0", accent.Position.Y)
	}
}

func TestMakeAccentWideAccentee(t *testing.T) {
	f := testFont()
	wide := font.GlyphID(0x3200)
	base := fonttest.GID([]rune(hatAccent)[0])
	f.HVariants[base] = []font.GlyphID{wide}
	f.Boxes[wide] = font.Rect{MaxX: 30, MaxY: 12.6, MinY: 0}
	f.Advances[wide] = 30
	ctx := newContext(f, Options{Style: atom.StyleDisplay})

	comp := makeAccent(ctx, accentAtom(ord("abc"))).(*Composite)
	accent := comp.Children()[1].(*GlyphBox)
	if accent.Glyph != wide {
		t.Errorf("accent glyph = %d, want the wide variant %d", accent.Glyph, wide)
	}
}

func TestMakeAccentEmptyNucleus(t *testing.T) {
	a := accentAtom(ord("x"))
	a.Nucleus = ""
	box := makeAccent(displayCtx(), a)
	// No accent character: the accentee passes through.
	if len(box.Children()) != 1 {
		t.Errorf("children = %d, want just the accentee run", len(box.Children()))
	}
}

func TestMakeAccentMissingGlyph(t *testing.T) {
	f := testFont()
	f.Missing[[]rune(hatAccent)[0]] = true
	ctx := newContext(f, Options{Style: atom.StyleDisplay})
	box := makeAccent(ctx, accentAtom(ord("x")))
	if len(box.Children()) != 1 {
		t.Errorf("children = %d, want the bare accentee", len(box.Children()))
	}
}

func TestMakeAccentScriptsReattach(t *testing.T) {
	a := accentAtom(ord("x"))
	a.Superscript = atom.NewList(&atom.Atom{Kind: atom.KindNumber, Nucleus: "2"})
	box := makeAccent(displayCtx(), a)
	comp, ok := box.(*Composite)
	if !ok {
		t.Fatalf("scripted accent is %T, want *Composite", box)
	}
	if !comp.HasScript {
		t.Error("HasScript = false, want true")
	}
	// Wider than the bare accentee: script plus trailing space.
	if !approx(comp.Width, 9+6.3+1.008) {
		t.Errorf("width = %v, want %v", comp.Width, 9+6.3+1.008)
	}
}
