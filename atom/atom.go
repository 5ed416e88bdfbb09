package atom

import "strings"

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Kind identifies the category of a math atom.
// The category drives both inter-element spacing and renderer dispatch.
type Kind uint8

const (
	// KindOrdinary is a plain symbol run (identifiers, folded words).
	KindOrdinary Kind = iota
	// KindNumber is a numeric literal. Only present before normalization;
	// Normalize folds it into KindOrdinary.
	KindNumber
	// KindVariable is a single-letter identifier. Only present before
	// normalization; Normalize restyles and folds it into KindOrdinary.
	KindVariable
	// KindBinaryOperator is an infix operator such as + or ×.
	KindBinaryOperator
	// KindUnaryOperator is a prefix operator. Only present before
	// normalization; the layout algorithm has no unary category.
	KindUnaryOperator
	// KindRelation is a relational operator such as = or ≤.
	KindRelation
	// KindOpen is opening punctuation such as ( or [.
	KindOpen
	// KindClose is closing punctuation such as ) or ].
	KindClose
	// KindPunctuation is separating punctuation such as a comma.
	KindPunctuation
	// KindFraction is a numerator/denominator pair, with or without a bar.
	KindFraction
	// KindRadical is a root sign with a radicand and an optional degree.
	KindRadical
	// KindLargeOperator is a big operator such as ∑ or ∫.
	KindLargeOperator
	// KindInner is a sub-expression enclosed by boundary delimiters.
	KindInner
	// KindAccent is an accented sub-expression.
	KindAccent
	// KindUnderline draws a rule under its inner list.
	KindUnderline
	// KindOverline draws a rule over its inner list.
	KindOverline
	// KindTable is a grid of cell lists (matrices, aligned equations).
	KindTable
	// KindColor recolors the boxes produced from its inner list.
	KindColor
	// KindTextColor recolors only the glyph runs of its inner list.
	KindTextColor
	// KindColorBox recolors the background behind its inner list.
	KindColorBox
	// KindSpace is an explicit horizontal space in mu (1/18 em).
	KindSpace
	// KindStyleChange switches the line style for the rest of the list.
	KindStyleChange
	// KindPlaceholder is an empty input slot, drawn as a dotted square.
	KindPlaceholder
	// KindBoundary is a delimiter owned by a KindInner atom. It is only
	// legal as InnerData.Left or InnerData.Right.
	KindBoundary
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindOrdinary:
		return "Ordinary"
	case KindNumber:
		return "Number"
	case KindVariable:
		return "Variable"
	case KindBinaryOperator:
		return "BinaryOperator"
	case KindUnaryOperator:
		return "UnaryOperator"
	case KindRelation:
		return "Relation"
	case KindOpen:
		return "Open"
	case KindClose:
		return "Close"
	case KindPunctuation:
		return "Punctuation"
	case KindFraction:
		return "Fraction"
	case KindRadical:
		return "Radical"
	case KindLargeOperator:
		return "LargeOperator"
	case KindInner:
		return "Inner"
	case KindAccent:
		return "Accent"
	case KindUnderline:
		return "Underline"
	case KindOverline:
		return "Overline"
	case KindTable:
		return "Table"
	case KindColor:
		return "Color"
	case KindTextColor:
		return "TextColor"
	case KindColorBox:
		return "ColorBox"
	case KindSpace:
		return "Space"
	case KindStyleChange:
		return "StyleChange"
	case KindPlaceholder:
		return "Placeholder"
	case KindBoundary:
		return "Boundary"
	default:
		return unknownStr
	}
}

// LineStyle is the TeX line style an expression is laid out in.
// Each successive style renders smaller and tighter.
type LineStyle uint8

const (
	// StyleDisplay is full-size display math.
	StyleDisplay LineStyle = iota
	// StyleText is inline math.
	StyleText
	// StyleScript is first-level sub/superscript size.
	StyleScript
	// StyleScriptScript is second-level (and deeper) script size.
	StyleScriptScript
)

// String returns the string representation of the line style.
func (s LineStyle) String() string {
	switch s {
	case StyleDisplay:
		return "Display"
	case StyleText:
		return "Text"
	case StyleScript:
		return "Script"
	case StyleScriptScript:
		return "ScriptScript"
	default:
		return unknownStr
	}
}

// Inc returns the next smaller style, saturating at ScriptScript.
func (s LineStyle) Inc() LineStyle {
	if s >= StyleScriptScript {
		return StyleScriptScript
	}
	return s + 1
}

// IsScript reports whether the style is Script or ScriptScript.
func (s LineStyle) IsScript() bool { return s >= StyleScript }

// FontStyle selects the math alphabet used to respell variables and
// numbers during normalization.
type FontStyle uint8

const (
	// FontStyleDefault renders variables in math italic and numbers upright.
	FontStyleDefault FontStyle = iota
	// FontStyleRoman renders everything upright.
	FontStyleRoman
	// FontStyleBold renders in bold upright.
	FontStyleBold
	// FontStyleCaligraphic renders letters in the script alphabet.
	FontStyleCaligraphic
	// FontStyleTypewriter renders in the monospace alphabet.
	FontStyleTypewriter
	// FontStyleItalic renders in math italic.
	FontStyleItalic
	// FontStyleSansSerif renders in the sans-serif alphabet.
	FontStyleSansSerif
	// FontStyleFraktur renders letters in the fraktur alphabet.
	FontStyleFraktur
	// FontStyleBlackboard renders letters in the double-struck alphabet.
	FontStyleBlackboard
	// FontStyleBoldItalic renders in bold math italic.
	FontStyleBoldItalic
)

// String returns the string representation of the font style.
func (f FontStyle) String() string {
	switch f {
	case FontStyleDefault:
		return "Default"
	case FontStyleRoman:
		return "Roman"
	case FontStyleBold:
		return "Bold"
	case FontStyleCaligraphic:
		return "Caligraphic"
	case FontStyleTypewriter:
		return "Typewriter"
	case FontStyleItalic:
		return "Italic"
	case FontStyleSansSerif:
		return "SansSerif"
	case FontStyleFraktur:
		return "Fraktur"
	case FontStyleBlackboard:
		return "Blackboard"
	case FontStyleBoldItalic:
		return "BoldItalic"
	default:
		return unknownStr
	}
}

// Range is a character index range into the original source string,
// used for error reporting and selection mapping.
type Range struct {
	Start  int
	Length int
}

// End returns the exclusive end index of the range.
func (r Range) End() int { return r.Start + r.Length }

// Union returns the smallest range covering both r and o.
// A zero-length range is treated as absent.
func (r Range) Union(o Range) Range {
	if r.Length == 0 {
		return o
	}
	if o.Length == 0 {
		return r
	}
	start := min(r.Start, o.Start)
	end := max(r.End(), o.End())
	return Range{Start: start, Length: end - start}
}

// ColumnAlignment controls horizontal cell placement within a table column.
type ColumnAlignment uint8

const (
	// AlignLeft places the cell at the column's left edge.
	AlignLeft ColumnAlignment = iota
	// AlignCenter centers the cell in the column.
	AlignCenter
	// AlignRight places the cell at the column's right edge.
	AlignRight
)

// String returns the string representation of the alignment.
func (a ColumnAlignment) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return unknownStr
	}
}

// FractionData is the payload of a KindFraction atom.
type FractionData struct {
	Numerator   *List
	Denominator *List

	// HasRule selects a ruled fraction; false produces a plain stack
	// (binomials, atop).
	HasRule bool

	// LeftDelimiter and RightDelimiter, when non-empty, wrap the fraction
	// in sized delimiter glyphs (e.g. binomial parentheses).
	LeftDelimiter  string
	RightDelimiter string

	// Continued forces display style onto both parts (\cfrac).
	Continued bool
}

// RadicalData is the payload of a KindRadical atom.
type RadicalData struct {
	Radicand *List

	// Degree is the optional root index (the 3 in a cube root).
	Degree *List
}

// LimitsMode controls where a large operator's scripts are placed.
type LimitsMode uint8

const (
	// LimitsDefault places limits above/below in display style for
	// operators the font flags as limit operators, beside otherwise.
	LimitsDefault LimitsMode = iota
	// LimitsAlways places limits above/below in display and text style.
	LimitsAlways
	// LimitsNever always attaches scripts beside the operator.
	LimitsNever
)

// String returns the string representation of the limits mode.
func (m LimitsMode) String() string {
	switch m {
	case LimitsDefault:
		return "Default"
	case LimitsAlways:
		return "Always"
	case LimitsNever:
		return "Never"
	default:
		return unknownStr
	}
}

// LargeOpData is the payload of a KindLargeOperator atom.
type LargeOpData struct {
	Limits LimitsMode
}

// InnerData is the payload of a KindInner atom. Left and Right, when
// present, must be KindBoundary atoms.
type InnerData struct {
	Left  *Atom
	Right *Atom
	Inner *List
}

// AccentData is the payload of a KindAccent atom. The accent character
// itself is the atom's nucleus.
type AccentData struct {
	Accentee *List
}

// LineData is the payload of a KindUnderline or KindOverline atom.
type LineData struct {
	Inner *List
}

// TableData is the payload of a KindTable atom.
type TableData struct {
	// Cells is indexed rows-first; every cell is a complete sub-list.
	Cells [][]*List

	// Alignments holds one alignment per column. Missing trailing
	// entries default to AlignCenter.
	Alignments []ColumnAlignment

	// ColumnSpacing is the inter-column gap in mu (1/18 em).
	ColumnSpacing float64

	// RowSpacing is the additional openup between rows, as a multiple
	// of the jot (baseline unit).
	RowSpacing float64
}

// ColorData is the payload of the color atom kinds.
type ColorData struct {
	// Color is a hex color string of the form "#rrggbb" or "#aarrggbb".
	Color string
	Inner *List
}

// Atom is one node of the input math expression tree.
//
// Atoms are produced by an external parser and are immutable during
// layout, with two exceptions owned by Normalize: a kind may be folded
// (Variable/Number/UnaryOperator become Ordinary) and adjacent plain
// ordinaries may be fused. Kind-specific payload pointers are non-nil
// exactly when the kind requires them.
type Atom struct {
	Kind    Kind
	Nucleus string

	// Subscript and Superscript, when non-nil, are complete sub-lists.
	Subscript   *List
	Superscript *List

	// Range locates the atom in the original source string.
	Range Range

	// FontStyle selects the alphabet used when Normalize respells the
	// nucleus of a Variable or Number atom.
	FontStyle FontStyle

	// Payloads, keyed by Kind.
	Fraction *FractionData
	Radical  *RadicalData
	LargeOp  *LargeOpData
	Inner    *InnerData
	Accent   *AccentData
	Line     *LineData
	Table    *TableData
	Color    *ColorData

	// Mu is the width of a KindSpace atom in mu (1/18 em).
	Mu float64

	// Style is the target style of a KindStyleChange atom.
	Style LineStyle

	// Fused holds the original atoms folded into this one by
	// normalization, preserving their individual source ranges.
	Fused []*Atom
}

// HasScripts reports whether the atom carries a subscript or superscript.
func (a *Atom) HasScripts() bool {
	return a.Subscript != nil || a.Superscript != nil
}

// Copy returns a shallow copy of the atom. Sub-lists and payloads are
// shared; Normalize copies atoms before retyping them so the parser's
// tree stays intact.
func (a *Atom) Copy() *Atom {
	c := *a
	return &c
}

// String returns a compact debug representation of the atom.
func (a *Atom) String() string {
	var b strings.Builder
	b.WriteString(a.Kind.String())
	if a.Nucleus != "" {
		b.WriteString("(")
		b.WriteString(a.Nucleus)
		b.WriteString(")")
	}
	if a.Superscript != nil {
		b.WriteString("^")
	}
	if a.Subscript != nil {
		b.WriteString("_")
	}
	return b.String()
}
