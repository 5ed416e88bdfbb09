package font

import (
	"math"
	"testing"
)

func TestDefaultConstants(t *testing.T) {
	c := DefaultConstants(18)
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"MathUnit", c.MathUnit, 1},
		{"AxisHeight", c.AxisHeight, 4.5},
		{"ScriptScaleDown", c.ScriptScaleDown, 0.7},
		{"ScriptScriptScaleDown", c.ScriptScriptScaleDown, 0.5},
		{"FractionRuleThickness", c.FractionRuleThickness, 0.72},
		{"RadicalDegreeBottomRaisePercent", c.RadicalDegreeBottomRaisePercent, 0.6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.want) > 1e-9 {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestConstantsScaled(t *testing.T) {
	c := DefaultConstants(10)
	s := c.Scaled(2)
	if math.Abs(s.AxisHeight-2*c.AxisHeight) > 1e-9 {
		t.Errorf("scaled AxisHeight = %v, want %v", s.AxisHeight, 2*c.AxisHeight)
	}
	if math.Abs(s.MathUnit-2*c.MathUnit) > 1e-9 {
		t.Errorf("scaled MathUnit = %v, want %v", s.MathUnit, 2*c.MathUnit)
	}
	// Ratios do not scale.
	if s.ScriptScaleDown != c.ScriptScaleDown {
		t.Errorf("scaled ScriptScaleDown = %v, want %v", s.ScriptScaleDown, c.ScriptScaleDown)
	}
	if s.RadicalDegreeBottomRaisePercent != c.RadicalDegreeBottomRaisePercent {
		t.Errorf("scaled raise percent = %v, want %v",
			s.RadicalDegreeBottomRaisePercent, c.RadicalDegreeBottomRaisePercent)
	}
	// The original is untouched.
	if c.AxisHeight != DefaultConstants(10).AxisHeight {
		t.Error("Scaled mutated the receiver")
	}
}

func TestRect(t *testing.T) {
	r := Rect{MinX: 1, MinY: -2, MaxX: 4, MaxY: 5}
	if got := r.Width(); got != 3 {
		t.Errorf("Width() = %v, want 3", got)
	}
	if got := r.Height(); got != 7 {
		t.Errorf("Height() = %v, want 7", got)
	}
}
