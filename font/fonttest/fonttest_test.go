package fonttest

import (
	"math"
	"testing"

	"github.com/nguillot/SwiftMath/font"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestGIDSupplementaryPlane(t *testing.T) {
	// Math alphanumerics live above U+FFFF; their glyph ids must not
	// alias basic-plane runes.
	italic := GID('𝑥')
	if italic != font.GlyphID(0x1D465) {
		t.Errorf("GID('𝑥') = %#x, want %#x", italic, 0x1D465)
	}
	if italic == GID(0xD465) {
		t.Error("glyph id aliases the truncated rune value")
	}
}

func TestDefaults(t *testing.T) {
	f := New(18)
	if got := f.Size(); got != 18 {
		t.Errorf("Size() = %v, want 18", got)
	}
	g := f.GlyphForRune('x')
	if g == 0 {
		t.Fatal("GlyphForRune('x') = 0")
	}
	if got := f.Advance(g); !approx(got, 9) {
		t.Errorf("Advance = %v, want 9", got)
	}
	b := f.BoundingBox(g)
	if !approx(b.MaxY, 12.6) || !approx(b.MinY, -3.6) {
		t.Errorf("BoundingBox = %+v, want MaxY 12.6, MinY -3.6", b)
	}
}

func TestMeasureRun(t *testing.T) {
	f := New(18)
	m := f.MeasureRun("abcde")
	if !approx(m.Advance, 45) {
		t.Errorf("Advance = %v, want 45", m.Advance)
	}
	if !approx(m.Ascent, 12.6) || !approx(m.Descent, 3.6) {
		t.Errorf("Ascent/Descent = %v/%v, want 12.6/3.6", m.Ascent, m.Descent)
	}
}

func TestOverrides(t *testing.T) {
	f := New(18)
	g := GID('w')
	f.Advances[g] = 20
	f.Corrections[g] = 1.5
	f.Attachments[g] = 7
	f.Missing['q'] = true
	f.LimitOps[GID('∑')] = true

	if got := f.Advance(g); got != 20 {
		t.Errorf("Advance override = %v, want 20", got)
	}
	if got := f.ItalicCorrection(g); got != 1.5 {
		t.Errorf("ItalicCorrection = %v, want 1.5", got)
	}
	if got := f.TopAccentAttachment(g); got != 7 {
		t.Errorf("TopAccentAttachment = %v, want 7", got)
	}
	if got := f.GlyphForRune('q'); got != 0 {
		t.Errorf("missing rune glyph = %d, want 0", got)
	}
	if !f.IsLimitOperator(GID('∑')) {
		t.Error("IsLimitOperator('∑') = false, want true")
	}
	if f.IsLimitOperator(GID('∫')) {
		t.Error("IsLimitOperator('∫') = true, want false")
	}
}

func TestWithSize(t *testing.T) {
	f := New(20)
	f.Advances[GID('w')] = 16
	f.Parts[GID('(')] = []font.AssemblyPart{
		{Glyph: GID('('), FullAdvance: 10, EndConnector: 2},
	}
	half := f.WithSize(10).(*Font)
	if got := half.Size(); got != 10 {
		t.Errorf("Size() = %v, want 10", got)
	}
	if got := half.Advance(GID('w')); !approx(got, 8) {
		t.Errorf("scaled override advance = %v, want 8", got)
	}
	if got := half.Advance(GID('x')); !approx(got, 5) {
		t.Errorf("scaled default advance = %v, want 5", got)
	}
	if got := half.Table.MathUnit; !approx(got, 10.0/18) {
		t.Errorf("scaled MathUnit = %v, want %v", got, 10.0/18)
	}
	parts := half.VerticalAssemblyParts(GID('('))
	if len(parts) != 1 || !approx(parts[0].FullAdvance, 5) {
		t.Errorf("scaled parts = %+v, want FullAdvance 5", parts)
	}
	// Same size returns the receiver unchanged.
	if f.WithSize(20) != font.Font(f) {
		t.Error("WithSize(same) allocated a new handle")
	}
}

func TestLineBreakBefore(t *testing.T) {
	f := New(18)
	tests := []struct {
		name  string
		text  string
		width float64
		want  int
	}{
		{"all fits", "abc", 100, 3},
		{"partial", "abcdef", 30, 3},
		{"nothing fits", "abc", 5, 0},
		{"empty", "", 50, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.LineBreakBefore(tt.text, tt.width)
			if got != tt.want {
				t.Errorf("LineBreakBefore(%q, %v) = %d, want %d", tt.text, tt.width, got, tt.want)
			}
		})
	}
}
