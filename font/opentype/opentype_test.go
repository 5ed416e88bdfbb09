package opentype

import (
	"errors"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/nguillot/SwiftMath/font"
)

func TestNew(t *testing.T) {
	f, err := New(goregular.TTF, 24)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := f.Size(); got != 24 {
		t.Errorf("Size() = %v, want 24", got)
	}
	c := f.Constants()
	if c.Ascent <= 0 {
		t.Errorf("Ascent = %v, want > 0", c.Ascent)
	}
	if c.XHeight <= 0 || c.XHeight >= 24 {
		t.Errorf("XHeight = %v, want in (0, 24)", c.XHeight)
	}
	if c.AxisHeight != c.XHeight/2 {
		t.Errorf("AxisHeight = %v, want half of XHeight %v", c.AxisHeight, c.XHeight)
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New(nil, 24); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("New(nil) error = %v, want ErrEmptyFontData", err)
	}
	if _, err := New(goregular.TTF, 0); err == nil {
		t.Error("New(size 0) error = nil, want error")
	}
	if _, err := New([]byte("not a font"), 24); err == nil {
		t.Error("New(garbage) error = nil, want parse error")
	}
}

func TestGlyphMetrics(t *testing.T) {
	f, err := New(goregular.TTF, 24)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	g := f.GlyphForRune('A')
	if g == 0 {
		t.Fatal("GlyphForRune('A') = 0")
	}
	if adv := f.Advance(g); adv <= 0 || adv > 24 {
		t.Errorf("Advance('A') = %v, want in (0, 24]", adv)
	}
	b := f.BoundingBox(g)
	if b.MaxY <= 0 {
		t.Errorf("BoundingBox('A').MaxY = %v, want > 0", b.MaxY)
	}
	if b.Height() <= 0 {
		t.Errorf("BoundingBox('A').Height() = %v, want > 0", b.Height())
	}
	// A glyph below the baseline.
	if gy := f.GlyphForRune('y'); gy != 0 {
		if by := f.BoundingBox(gy); by.MinY >= 0 {
			t.Errorf("BoundingBox('y').MinY = %v, want < 0", by.MinY)
		}
	}
	// Unmapped code point.
	if got := f.GlyphForRune('\U000E0000'); got != 0 {
		t.Errorf("GlyphForRune(unmapped) = %d, want 0", got)
	}
}

func TestMeasureRunShaped(t *testing.T) {
	f, err := New(goregular.TTF, 24)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if m := f.MeasureRun(""); m.Advance != 0 {
		t.Errorf("empty run advance = %v, want 0", m.Advance)
	}
	one := f.MeasureRun("a")
	two := f.MeasureRun("aa")
	if one.Advance <= 0 {
		t.Fatalf("single glyph advance = %v, want > 0", one.Advance)
	}
	if two.Advance <= one.Advance {
		t.Errorf("two-glyph advance %v not greater than one-glyph %v", two.Advance, one.Advance)
	}
	if one.Ascent <= 0 || one.Descent < 0 {
		t.Errorf("run metrics = %+v, want positive ascent", one)
	}
}

func TestWithSize(t *testing.T) {
	f, err := New(goregular.TTF, 20)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	half := f.WithSize(10)
	g := f.GlyphForRune('m')
	ratio := half.Advance(g) / f.Advance(g)
	if ratio < 0.49 || ratio > 0.51 {
		t.Errorf("advance ratio after WithSize = %v, want 0.5", ratio)
	}
	// Same-size derivation is the identity.
	if font.Font(f) != f.WithSize(20) {
		t.Error("WithSize(same) allocated a new handle")
	}
}

func TestWithSizeCachesHandles(t *testing.T) {
	f, err := New(goregular.TTF, 20)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if f.WithSize(14) != f.WithSize(14) {
		t.Error("repeated WithSize(14) built distinct handles")
	}
	// Round trips land back on the memoized handles.
	if f.WithSize(14).WithSize(20) != font.Font(f) {
		t.Error("WithSize round trip did not return the original handle")
	}
}

func TestIsLimitOperator(t *testing.T) {
	f, err := New(goregular.TTF, 24)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	sum := f.GlyphForRune('∑')
	integral := f.GlyphForRune('∫')
	if sum != 0 && !f.IsLimitOperator(sum) {
		t.Error("IsLimitOperator('∑') = false, want true")
	}
	if integral != 0 && f.IsLimitOperator(integral) {
		t.Error("IsLimitOperator('∫') = true, want false")
	}
}

func TestLineBreakBefore(t *testing.T) {
	f, err := New(goregular.TTF, 24)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	text := "abcdef"
	full := f.MeasureRun(text).Advance
	fit := f.LineBreakBefore(text, full/2)
	if fit <= 0 || fit >= len(text) {
		t.Errorf("LineBreakBefore at half width = %d, want interior index", fit)
	}
	if got := f.LineBreakBefore(text, full+1); got != len(text) {
		t.Errorf("LineBreakBefore with room = %d, want %d", got, len(text))
	}
	if got := f.LineBreakBefore(text, 0.01); got != 0 {
		t.Errorf("LineBreakBefore(tiny) = %d, want 0", got)
	}
}
