package typeset

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/nguillot/SwiftMath/atom"
)

// BreakConfig holds the line-breaking heuristics. The thresholds and
// penalties are tuning values without a deeper derivation; they are
// exposed so callers can calibrate them against real content.
type BreakConfig struct {
	// OverflowRatio is the fraction of MaxWidth by which a projected
	// line may overshoot before the break happens immediately instead
	// of being scored against look-ahead candidates.
	OverflowRatio float64

	// LookAhead is how many upcoming atoms are inspected for a
	// strictly better break point.
	LookAhead int

	// LookAheadBudgetRatio bounds the look-ahead: scanning stops once
	// the cumulative width passes MaxWidth*(1+LookAheadBudgetRatio).
	LookAheadBudgetRatio float64

	// Break penalties by the category of the atom the line would end
	// with. Lower is better.
	PenaltyBinary        float64
	PenaltyRelation      float64
	PenaltyPunctuation   float64
	PenaltyOrdinary      float64
	PenaltyDelimiter     float64
	PenaltyLargeOperator float64
	PenaltyDefault       float64
}

// DefaultBreakConfig returns the stock heuristics.
func DefaultBreakConfig() BreakConfig {
	return BreakConfig{
		OverflowRatio:        0.20,
		LookAhead:            3,
		LookAheadBudgetRatio: 0.30,
		PenaltyBinary:        0,
		PenaltyRelation:      0,
		PenaltyPunctuation:   0,
		PenaltyOrdinary:      10,
		PenaltyDelimiter:     100,
		PenaltyLargeOperator: 150,
		PenaltyDefault:       50,
	}
}

// penaltyAfter scores ending the line after an atom of the given kind.
func (c BreakConfig) penaltyAfter(k atom.Kind) float64 {
	switch k {
	case atom.KindBinaryOperator:
		return c.PenaltyBinary
	case atom.KindRelation:
		return c.PenaltyRelation
	case atom.KindPunctuation:
		return c.PenaltyPunctuation
	case atom.KindOrdinary:
		return c.PenaltyOrdinary
	case atom.KindOpen, atom.KindClose:
		return c.PenaltyDelimiter
	case atom.KindLargeOperator, atom.KindUnaryOperator:
		return c.PenaltyLargeOperator
	default:
		return c.PenaltyDefault
	}
}

// appendPlain accumulates a plain atom into the text buffer, deciding
// line breaks first when a width constraint is active.
func (ts *typesetter) appendPlain(i int, atoms []*atom.Atom) {
	a := atoms[i]
	text := nucleusText(a)
	cat, _ := category(a.Kind)
	sp := ts.spaceBefore(cat)
	w := ts.ctx.font.MeasureRun(text).Advance

	if ts.ctx.maxWidth > 0 && ts.forceBreakAfter < 0 {
		ts.considerBreak(i, atoms, sp, w)
		if !ts.havePrev {
			// The break emptied the line; no leading space.
			sp = 0
		}
	}

	if sp != 0 {
		ts.flush()
		ts.cursorX += sp
	}
	if ts.buf.Len() == 0 {
		ts.bufStart = ts.cursorX
		ts.bufRange = a.Range
	} else {
		ts.bufRange = ts.bufRange.Union(a.Range)
	}
	ts.buf.WriteString(text)
	ts.bufSpans = append(ts.bufSpans, bufSpan{end: ts.buf.Len(), atom: a})
	ts.cursorX = ts.bufStart + ts.ctx.font.MeasureRun(ts.buf.String()).Advance
	ts.prevCat, ts.havePrev = cat, true

	// A pending deferred break already accepted this overshoot.
	if ts.ctx.maxWidth > 0 && ts.forceBreakAfter < 0 {
		ts.splitOverflowingBuffer()
	}
}

// considerBreak decides whether to break before atoms[i]. Far
// overshoots break immediately; moderate ones are scored against up to
// LookAhead upcoming plain atoms, deferring the break to a strictly
// better point within the width budget.
func (ts *typesetter) considerBreak(i int, atoms []*atom.Atom, sp, w float64) {
	if !ts.lineOccupied() {
		// A break never triggers on an empty line.
		return
	}
	maxW := ts.ctx.maxWidth
	projected := ts.cursorX + sp + w
	if projected <= maxW {
		return
	}
	if projected > maxW*(1+ts.cfg.OverflowRatio) {
		ts.finishLine()
		return
	}

	// Penalty of breaking right here, i.e. after the previous atom.
	best := ts.cfg.PenaltyDefault
	if i > 0 {
		best = ts.cfg.penaltyAfter(atoms[i-1].Kind)
	}
	bestAt := -1
	budget := maxW * (1 + ts.cfg.LookAheadBudgetRatio)
	cum := projected
	for j := i; j < len(atoms) && j < i+ts.cfg.LookAhead; j++ {
		if j > i {
			if !isPlainText(atoms[j]) {
				break
			}
			cum += ts.ctx.font.MeasureRun(nucleusText(atoms[j])).Advance
			if cum > budget {
				break
			}
		}
		if p := ts.cfg.penaltyAfter(atoms[j].Kind); p < best {
			best, bestAt = p, j
		}
	}
	if bestAt < 0 {
		ts.finishLine()
		return
	}
	logger().Debug("typeset: line break deferred", "from", i, "to", bestAt)
	ts.forceBreakAfter = bestAt
}

// splitOverflowingBuffer handles a buffer that no longer fits the
// line. If other boxes share the line, the whole buffer moves to a
// fresh line first; a buffer that alone exceeds the width is split at
// a safe point inside the accumulated text.
func (ts *typesetter) splitOverflowingBuffer() {
	maxW := ts.ctx.maxWidth
	for ts.buf.Len() > 0 && ts.cursorX > maxW {
		if len(ts.cur) > 0 {
			// Break before the buffer: the flushed boxes form the
			// completed line and the buffer restarts at the margin.
			width := ts.cursorX - ts.bufStart
			ts.pushLine()
			ts.cursorX = width
			ts.havePrev = true
			continue
		}
		text := ts.buf.String()
		idx := ts.ctx.font.LineBreakBefore(text, maxW-ts.bufStart)
		idx = ts.safeBreakIndex(text, idx)
		if idx <= 0 {
			// No safe split point; let the line overflow.
			return
		}
		prefix := text[:idx]
		suffix := strings.TrimLeft(text[idx:], " ")
		trimmed := len(text) - idx - len(suffix)

		run := newTextRun(ts.ctx.font, prefix, ts.bufRange, ts.ctx.runColor())
		run.Position = Point{X: ts.bufStart}
		ts.cur = append(ts.cur, run)
		ts.rebuildBuffer(suffix, idx+trimmed)
		ts.pushLine()
		ts.cursorX = ts.ctx.font.MeasureRun(suffix).Advance
		if suffix == "" {
			return
		}
		ts.havePrev = true
	}
}

// rebuildBuffer replaces the buffer content with the unplaced suffix,
// shifting the recorded atom spans by the removed byte count.
func (ts *typesetter) rebuildBuffer(suffix string, removed int) {
	spans := ts.bufSpans
	ts.buf.Reset()
	ts.bufSpans = nil
	ts.buf.WriteString(suffix)
	for _, s := range spans {
		if s.end <= removed {
			continue
		}
		ts.bufSpans = append(ts.bufSpans, bufSpan{end: s.end - removed, atom: s.atom})
	}
	ts.bufStart = 0
}

// safeBreakIndex walks break candidates at or before idx until one
// neither splits a word atom between letters, nor lands inside a
// number, nor falls mid-grapheme. Returns 0 when no safe point exists.
func (ts *typesetter) safeBreakIndex(text string, idx int) int {
	if idx <= 0 || idx >= len(text) {
		return idx
	}
	for _, b := range graphemeBoundaries(text, idx) {
		if ts.splitsWord(text, b) {
			continue
		}
		if splitsNumber(text, b) {
			continue
		}
		return b
	}
	return 0
}

// graphemeBoundaries returns the grapheme cluster boundaries of text
// that are <= limit, in descending order, excluding 0.
func graphemeBoundaries(text string, limit int) []int {
	var bounds []int
	state := -1
	rest := text
	pos := 0
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		pos += len(cluster)
		if pos > limit {
			break
		}
		if pos < len(text) {
			bounds = append(bounds, pos)
		}
	}
	// Descending: prefer the latest feasible break.
	for i, j := 0, len(bounds)-1; i < j; i, j = i+1, j-1 {
		bounds[i], bounds[j] = bounds[j], bounds[i]
	}
	return bounds
}

// splitsWord reports whether breaking at byte offset b would separate
// two letters belonging to the same multi-character atom.
func (ts *typesetter) splitsWord(text string, b int) bool {
	prev, _ := utf8.DecodeLastRuneInString(text[:b])
	next, _ := utf8.DecodeRuneInString(text[b:])
	if !unicode.IsLetter(prev) || !unicode.IsLetter(next) {
		return false
	}
	// Letters on both sides: forbidden when they share an atom.
	start := 0
	for _, s := range ts.bufSpans {
		if b > start && b < s.end {
			return true
		}
		start = s.end
	}
	// Span data missing (defensive); treat adjacent letters as one
	// word.
	return len(ts.bufSpans) == 0
}

// numberSeparators are the decimal and grouping separators protected
// inside numbers: period, comma, apostrophes, narrow no-break space.
func isNumberSeparator(r rune) bool {
	switch r {
	case '.', ',', '\'', '\u2019', '\u202f':
		return true
	}
	return false
}

// splitsNumber reports whether breaking at byte offset b lands inside
// a decimal or thousands-grouped number such as 1,234.56.
func splitsNumber(text string, b int) bool {
	prev, _ := utf8.DecodeLastRuneInString(text[:b])
	next, _ := utf8.DecodeRuneInString(text[b:])
	switch {
	case unicode.IsDigit(prev) && unicode.IsDigit(next):
		return true
	case unicode.IsDigit(prev) && isNumberSeparator(next):
		// 1|,234 is fine only if no digit follows the separator.
		afterSep := text[b+utf8.RuneLen(next):]
		r, _ := utf8.DecodeRuneInString(afterSep)
		return unicode.IsDigit(r)
	case isNumberSeparator(prev) && unicode.IsDigit(next):
		// 1,|234: inside when a digit precedes the separator.
		beforeSep := text[:b-utf8.RuneLen(prev)]
		r, _ := utf8.DecodeLastRuneInString(beforeSep)
		return unicode.IsDigit(r)
	}
	return false
}
