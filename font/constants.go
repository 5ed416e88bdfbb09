package font

// Constants is the per-font math constants table, scaled to a specific
// em size. The field set and naming follow the OpenType MATH constants
// the values are typically read from; providers without MATH data fill
// the table from DefaultConstants.
type Constants struct {
	// General metrics.
	Ascent    float64
	Descent   float64 // positive, below baseline
	XHeight   float64
	CapHeight float64

	// AxisHeight is the height of the math axis above the baseline.
	// Operators, delimiters and tables are centered on it.
	AxisHeight float64

	// MathUnit is one mu: 1/18 of the em. Inter-element spacing is
	// expressed in mu.
	MathUnit float64

	// Script scaling.
	ScriptScaleDown       float64 // multiplier, e.g. 0.7
	ScriptScriptScaleDown float64 // multiplier, e.g. 0.5

	// Fractions (ruled).
	FractionRuleThickness                    float64
	FractionNumeratorDisplayStyleShiftUp     float64
	FractionNumeratorShiftUp                 float64
	FractionDenominatorDisplayStyleShiftDown float64
	FractionDenominatorShiftDown             float64
	FractionNumDisplayStyleGapMin            float64
	FractionNumeratorGapMin                  float64
	FractionDenomDisplayStyleGapMin          float64
	FractionDenominatorGapMin                float64

	// Stacks (rule-less fractions).
	StackTopDisplayStyleShiftUp      float64
	StackTopShiftUp                  float64
	StackBottomDisplayStyleShiftDown float64
	StackBottomShiftDown             float64
	StackDisplayStyleGapMin          float64
	StackGapMin                      float64

	// Radicals.
	RadicalRuleThickness            float64
	RadicalVerticalGap              float64
	RadicalDisplayStyleVerticalGap  float64
	RadicalExtraAscender            float64
	RadicalKernBeforeDegree         float64
	RadicalKernAfterDegree          float64
	RadicalDegreeBottomRaisePercent float64 // fraction of radical height

	// Scripts.
	SubscriptShiftDown                float64
	SubscriptTopMax                   float64
	SubscriptBaselineDropMin          float64
	SuperscriptShiftUp                float64
	SuperscriptShiftUpCramped         float64
	SuperscriptBottomMin              float64
	SuperscriptBaselineDropMax        float64
	SubSuperscriptGapMin              float64
	SuperscriptBottomMaxWithSubscript float64
	SpaceAfterScript                  float64

	// Limits on large operators.
	UpperLimitGapMin          float64
	UpperLimitBaselineRiseMin float64
	LowerLimitGapMin          float64
	LowerLimitBaselineDropMin float64

	// Accents.
	AccentBaseHeight float64

	// Rules (overline/underline share the fraction rule thickness in
	// most fonts; kept separate so providers can override).
	OverbarRuleThickness  float64
	UnderbarRuleThickness float64

	// Glyph assembly.
	MinConnectorOverlap float64
}

// DefaultConstants returns a constants table for an em size, with
// values proportioned after the Latin Modern Math defaults. Providers
// backed by real MATH tables overwrite what they can read; the rest
// keeps these fallbacks.
func DefaultConstants(size float64) *Constants {
	return &Constants{
		Ascent:    0.800 * size,
		Descent:   0.200 * size,
		XHeight:   0.431 * size,
		CapHeight: 0.683 * size,

		AxisHeight: 0.250 * size,
		MathUnit:   size / 18,

		ScriptScaleDown:       0.7,
		ScriptScriptScaleDown: 0.5,

		FractionRuleThickness:                    0.040 * size,
		FractionNumeratorDisplayStyleShiftUp:     0.677 * size,
		FractionNumeratorShiftUp:                 0.394 * size,
		FractionDenominatorDisplayStyleShiftDown: 0.686 * size,
		FractionDenominatorShiftDown:             0.345 * size,
		FractionNumDisplayStyleGapMin:            0.120 * size,
		FractionNumeratorGapMin:                  0.040 * size,
		FractionDenomDisplayStyleGapMin:          0.120 * size,
		FractionDenominatorGapMin:                0.040 * size,

		StackTopDisplayStyleShiftUp:      0.677 * size,
		StackTopShiftUp:                  0.444 * size,
		StackBottomDisplayStyleShiftDown: 0.686 * size,
		StackBottomShiftDown:             0.345 * size,
		StackDisplayStyleGapMin:          0.280 * size,
		StackGapMin:                      0.120 * size,

		RadicalRuleThickness:            0.040 * size,
		RadicalVerticalGap:              0.050 * size,
		RadicalDisplayStyleVerticalGap:  0.148 * size,
		RadicalExtraAscender:            0.040 * size,
		RadicalKernBeforeDegree:         0.278 * size,
		RadicalKernAfterDegree:          -0.556 * size,
		RadicalDegreeBottomRaisePercent: 0.60,

		SubscriptShiftDown:                0.150 * size,
		SubscriptTopMax:                   0.345 * size,
		SubscriptBaselineDropMin:          0.200 * size,
		SuperscriptShiftUp:                0.363 * size,
		SuperscriptShiftUpCramped:         0.289 * size,
		SuperscriptBottomMin:              0.108 * size,
		SuperscriptBaselineDropMax:        0.250 * size,
		SubSuperscriptGapMin:              0.160 * size,
		SuperscriptBottomMaxWithSubscript: 0.345 * size,
		SpaceAfterScript:                  0.056 * size,

		UpperLimitGapMin:          0.111 * size,
		UpperLimitBaselineRiseMin: 0.200 * size,
		LowerLimitGapMin:          0.167 * size,
		LowerLimitBaselineDropMin: 0.600 * size,

		AccentBaseHeight: 0.450 * size,

		OverbarRuleThickness:  0.040 * size,
		UnderbarRuleThickness: 0.040 * size,

		MinConnectorOverlap: 0.020 * size,
	}
}

// Scaled returns a copy of the table with every length multiplied by
// factor. Ratio fields (scale-downs, degree raise percent) are kept.
func (c *Constants) Scaled(factor float64) *Constants {
	s := *c
	scale := func(v *float64) { *v *= factor }
	for _, v := range []*float64{
		&s.Ascent, &s.Descent, &s.XHeight, &s.CapHeight,
		&s.AxisHeight, &s.MathUnit,
		&s.FractionRuleThickness,
		&s.FractionNumeratorDisplayStyleShiftUp, &s.FractionNumeratorShiftUp,
		&s.FractionDenominatorDisplayStyleShiftDown, &s.FractionDenominatorShiftDown,
		&s.FractionNumDisplayStyleGapMin, &s.FractionNumeratorGapMin,
		&s.FractionDenomDisplayStyleGapMin, &s.FractionDenominatorGapMin,
		&s.StackTopDisplayStyleShiftUp, &s.StackTopShiftUp,
		&s.StackBottomDisplayStyleShiftDown, &s.StackBottomShiftDown,
		&s.StackDisplayStyleGapMin, &s.StackGapMin,
		&s.RadicalRuleThickness, &s.RadicalVerticalGap,
		&s.RadicalDisplayStyleVerticalGap, &s.RadicalExtraAscender,
		&s.RadicalKernBeforeDegree, &s.RadicalKernAfterDegree,
		&s.SubscriptShiftDown, &s.SubscriptTopMax, &s.SubscriptBaselineDropMin,
		&s.SuperscriptShiftUp, &s.SuperscriptShiftUpCramped,
		&s.SuperscriptBottomMin, &s.SuperscriptBaselineDropMax,
		&s.SubSuperscriptGapMin, &s.SuperscriptBottomMaxWithSubscript,
		&s.SpaceAfterScript,
		&s.UpperLimitGapMin, &s.UpperLimitBaselineRiseMin,
		&s.LowerLimitGapMin, &s.LowerLimitBaselineDropMin,
		&s.AccentBaseHeight,
		&s.OverbarRuleThickness, &s.UnderbarRuleThickness,
		&s.MinConnectorOverlap,
	} {
		scale(v)
	}
	return &s
}
