package typeset

import (
	"sync"

	"github.com/nguillot/SwiftMath/atom"
	"github.com/nguillot/SwiftMath/font"
)

// spaceCategory is the inter-element spacing category of an atom.
// Rows of the spacing matrix are the left atom's category; columns the
// right atom's. Radical exists only as a row: as a right operand a
// radical spaces like an ordinary.
type spaceCategory uint8

const (
	catOrdinary spaceCategory = iota
	catOperator               // large operators
	catBinary
	catRelation
	catOpen
	catClose
	catPunctuation
	catInner // fractions and delimited groups
	catRadical

	numColumns = catRadical // radical has no column
)

// spaceKind is one cell of the spacing matrix. The ns* kinds collapse
// to zero in script styles and cramped runs.
type spaceKind uint8

const (
	spaceInvalid spaceKind = iota
	spaceNone
	spaceThin
	spaceNSThin
	spaceNSMedium
	spaceNSThick
)

// mu returns the spacing in mu (1/18 em), before script collapsing.
func (s spaceKind) mu() float64 {
	switch s {
	case spaceThin, spaceNSThin:
		return 3
	case spaceNSMedium:
		return 4
	case spaceNSThick:
		return 5
	default:
		return 0
	}
}

// scriptSensitive reports whether the spacing collapses in script
// styles and cramped runs.
func (s spaceKind) scriptSensitive() bool {
	return s == spaceNSThin || s == spaceNSMedium || s == spaceNSThick
}

// spacingMatrix builds the inter-element spacing matrix once. It is
// immutable after construction; sync.OnceValue guards the one-time
// build against concurrent first use.
var spacingMatrix = sync.OnceValue(func() [][]spaceKind {
	const (
		x  = spaceInvalid
		n  = spaceNone
		t  = spaceThin
		nt = spaceNSThin
		nm = spaceNSMedium
		nk = spaceNSThick
	)
	// Columns: ordinary, operator, binary, relation, open, close,
	// punctuation, inner.
	return [][]spaceKind{
		catOrdinary:    {n, t, nm, nk, n, n, n, nt},
		catOperator:    {t, t, x, nk, n, n, n, nt},
		catBinary:      {nm, nm, x, x, nm, x, x, nm},
		catRelation:    {nk, nk, x, n, nk, n, n, nk},
		catOpen:        {n, n, x, n, n, n, n, n},
		catClose:       {n, t, nm, nk, n, n, n, nt},
		catPunctuation: {nt, nt, x, nt, nt, nt, nt, nt},
		catInner:       {nt, t, nm, nk, nt, n, nt, nt},
		catRadical:     {nt, t, nm, nk, nt, n, nt, nt},
	}
})

// category maps an atom kind to its spacing category. The second
// result is false for kinds that take no part in spacing (spaces,
// style changes).
func category(k atom.Kind) (spaceCategory, bool) {
	switch k {
	case atom.KindOrdinary, atom.KindPlaceholder:
		return catOrdinary, true
	case atom.KindLargeOperator:
		return catOperator, true
	case atom.KindBinaryOperator:
		return catBinary, true
	case atom.KindRelation:
		return catRelation, true
	case atom.KindOpen:
		return catOpen, true
	case atom.KindClose:
		return catClose, true
	case atom.KindPunctuation:
		return catPunctuation, true
	case atom.KindFraction, atom.KindInner, atom.KindUnderline,
		atom.KindOverline, atom.KindTable, atom.KindColor,
		atom.KindTextColor, atom.KindColorBox, atom.KindAccent:
		return catInner, true
	case atom.KindRadical:
		return catRadical, true
	default:
		return catOrdinary, false
	}
}

// interElementSpace returns the gap inserted between two adjacent
// categories, in layout units. An invalid pair is a data error in the
// normalized list; it is reported and rendered with no space rather
// than aborting the pass.
func interElementSpace(left, right spaceCategory, style atom.LineStyle, cramped bool, f font.Font) float64 {
	if right >= numColumns {
		// Radical as a right operand spaces like an ordinary.
		right = catOrdinary
	}
	kind := spacingMatrix()[left][right]
	if kind == spaceInvalid {
		logger().Error("typeset: invalid spacing category pair",
			"left", int(left), "right", int(right))
		return 0
	}
	if kind.scriptSensitive() && (style.IsScript() || cramped) {
		return 0
	}
	return font.MuWidth(f, kind.mu())
}
