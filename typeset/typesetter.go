package typeset

import (
	"strings"

	"github.com/nguillot/SwiftMath/atom"
	"github.com/nguillot/SwiftMath/font"
)

// Options configures one layout call.
type Options struct {
	// Style is the initial line style.
	Style atom.LineStyle

	// Cramped suppresses the usual upward shifts (denominator-like
	// rendering of the whole expression).
	Cramped bool

	// Spaced inserts inter-element spacing before the first atom, as
	// if an open delimiter preceded the list.
	Spaced bool

	// MaxWidth enables line breaking when positive; 0 lays out one
	// unconstrained line.
	MaxWidth float64

	// LineLimit truncates the output to at most this many visual
	// lines when positive, ending the last kept line with an
	// ellipsis.
	LineLimit int

	// LineSpacing is the minimum vertical gap between the descent of
	// one line and the ascent of the next.
	LineSpacing float64

	// Break holds the line-breaking heuristics; the zero value is
	// replaced by DefaultBreakConfig.
	Break BreakConfig
}

// DefaultOptions returns options for unconstrained display-style
// layout.
func DefaultOptions() Options {
	return Options{
		Style: atom.StyleDisplay,
		Break: DefaultBreakConfig(),
	}
}

// Layout converts a math expression list into a positioned box tree.
//
// The returned composite's children carry absolute positions:
// horizontal within their line, vertical at their line's baseline
// (y-up, first baseline at 0). A nil font returns ErrNoFont; a nil or
// empty list returns an empty composite. Per-atom failures skip the
// atom, so partial output is always structurally valid.
func Layout(list *atom.List, f font.Font, opts Options) (*Composite, error) {
	if f == nil {
		return nil, ErrNoFont
	}
	if opts.Break == (BreakConfig{}) {
		opts.Break = DefaultBreakConfig()
	}
	ctx := newContext(f, opts)
	ts := newTypesetter(ctx, opts.Break, opts.LineSpacing)
	ts.run(list)
	out := ts.assemble(list.Range())
	if opts.LineLimit > 0 {
		out = truncateToLines(out, ctx, opts.LineLimit, opts.MaxWidth)
	}
	return out, nil
}

// layoutList is the recursive entry renderers use for sub-layouts
// (fraction parts, radicands, scripts, table cells). Sub-layouts are
// never width constrained.
func layoutList(ctx renderContext, list *atom.List) *Composite {
	if ctx.depth > maxDepth {
		logger().Warn("typeset: recursion depth ceiling reached")
		return newComposite(nil, list.Range())
	}
	ts := newTypesetter(ctx, DefaultBreakConfig(), 0)
	ts.run(list)
	return ts.assemble(list.Range())
}

// line is one completed visual line of boxes with line-local
// positions.
type line struct {
	boxes   []Box
	width   float64
	ascent  float64
	descent float64
}

// typesetter is the mutable layout state for one list: a running
// cursor, a text accumulation buffer and the boxes of the line under
// construction. One typesetter serves exactly one layout invocation.
type typesetter struct {
	ctx         renderContext
	cfg         BreakConfig
	lineSpacing float64

	// Current line.
	cur     []Box
	cursorX float64

	// Text accumulation buffer. The buffer holds consecutive plain
	// atoms with no spacing between them; flush is the only way it
	// becomes a box.
	buf      strings.Builder
	bufStart float64
	bufRange atom.Range
	// bufSpans records the buffer byte offset where each accumulated
	// atom ends, for word-integrity checks at break time.
	bufSpans []bufSpan

	prevCat  spaceCategory
	havePrev bool

	// forceBreakAfter is the index of an atom after which a deferred
	// line break fires; -1 when no break is pending.
	forceBreakAfter int

	lines []line
}

type bufSpan struct {
	end  int // byte offset in buf where the atom's text ends
	atom *atom.Atom
}

func newTypesetter(ctx renderContext, cfg BreakConfig, lineSpacing float64) *typesetter {
	return &typesetter{
		ctx:             ctx,
		cfg:             cfg,
		lineSpacing:     lineSpacing,
		forceBreakAfter: -1,
	}
}

// run normalizes and dispatches the list left to right.
func (ts *typesetter) run(list *atom.List) {
	atoms := atom.Normalize(list).Atoms
	for i := 0; i < len(atoms); i++ {
		ts.dispatch(i, atoms)
		if ts.forceBreakAfter == i {
			ts.finishLine()
		}
	}
	ts.flush()
}

// dispatch routes one atom to the text path or to its renderer.
func (ts *typesetter) dispatch(i int, atoms []*atom.Atom) {
	a := atoms[i]
	switch a.Kind {
	case atom.KindSpace:
		ts.flush()
		ts.cursorX += font.MuWidth(ts.ctx.font, a.Mu)
		return
	case atom.KindStyleChange:
		ts.flush()
		ts.ctx = ts.ctx.withStyle(a.Style)
		return
	case atom.KindBoundary:
		logger().Error("typeset: boundary atom outside a delimited group")
		return
	}

	if isPlainText(a) {
		ts.appendPlain(i, atoms)
		return
	}

	box := ts.renderAtom(a)
	if box == nil {
		// Renderer could not produce a box; skip the atom so the
		// rest of the expression still lays out.
		return
	}
	cat, _ := category(a.Kind)
	sp := ts.spaceBefore(cat)

	if ts.ctx.maxWidth > 0 && ts.lineOccupied() &&
		ts.cursorX+sp+box.Geom().Width > ts.ctx.maxWidth {
		ts.finishLine()
		sp = 0
	}

	ts.flush()
	ts.cursorX += sp
	box.Geom().Position = Point{X: ts.cursorX}
	ts.cur = append(ts.cur, box)
	ts.cursorX += box.Geom().Width
	ts.prevCat, ts.havePrev = cat, true
}

// placeholderRune is drawn for an empty input slot.
const placeholderRune = '□'

// nucleusText returns the text an atom's nucleus renders as.
func nucleusText(a *atom.Atom) string {
	if a.Kind == atom.KindPlaceholder && a.Nucleus == "" {
		return string(placeholderRune)
	}
	return a.Nucleus
}

// isPlainText reports whether the atom renders as part of a glyph run
// with no specialized box.
func isPlainText(a *atom.Atom) bool {
	if a.HasScripts() {
		return false
	}
	switch a.Kind {
	case atom.KindOrdinary, atom.KindBinaryOperator, atom.KindRelation,
		atom.KindOpen, atom.KindClose, atom.KindPunctuation,
		atom.KindPlaceholder:
		return true
	default:
		return false
	}
}

// renderAtom dispatches a specialized atom to its renderer.
func (ts *typesetter) renderAtom(a *atom.Atom) Box {
	ctx := ts.ctx
	switch a.Kind {
	case atom.KindFraction:
		return ts.withScripts(a, makeFraction(ctx, a))
	case atom.KindRadical:
		return ts.withScripts(a, makeRadical(ctx, a))
	case atom.KindLargeOperator:
		// Handles its own scripts (limits or beside).
		return makeLargeOperator(ctx, a)
	case atom.KindInner:
		return ts.withScripts(a, makeInner(ctx, a))
	case atom.KindAccent:
		// Script reattachment is part of accent composition.
		return makeAccent(ctx, a)
	case atom.KindUnderline:
		return ts.withScripts(a, makeUnderline(ctx, a))
	case atom.KindOverline:
		return ts.withScripts(a, makeOverline(ctx, a))
	case atom.KindTable:
		return ts.withScripts(a, makeTable(ctx, a))
	case atom.KindColor, atom.KindTextColor, atom.KindColorBox:
		return ts.withScripts(a, makeColor(ctx, a))
	default:
		// Plain atom carrying scripts: its nucleus becomes the base
		// run, with the last glyph's italic correction as the
		// superscript offset.
		run := newTextRun(ctx.font, nucleusText(a), a.Range, ctx.runColor())
		return attachScripts(ctx, run, a, ts.nucleusCorrection(a))
	}
}

// withScripts attaches an atom's scripts to a rendered box when
// present.
func (ts *typesetter) withScripts(a *atom.Atom, box Box) Box {
	if box == nil || !a.HasScripts() {
		return box
	}
	return attachScripts(ts.ctx, box, a, 0)
}

// nucleusCorrection returns the italic correction of the nucleus' last
// glyph.
func (ts *typesetter) nucleusCorrection(a *atom.Atom) float64 {
	runes := []rune(nucleusText(a))
	if len(runes) == 0 {
		return 0
	}
	g := ts.ctx.font.GlyphForRune(runes[len(runes)-1])
	if g == 0 {
		return 0
	}
	return ts.ctx.font.ItalicCorrection(g)
}

// spaceBefore returns the inter-element space inserted before an atom
// of the given category. The first atom of a list gets no space unless
// the context is spaced.
func (ts *typesetter) spaceBefore(cat spaceCategory) float64 {
	left := ts.prevCat
	if !ts.havePrev {
		if !ts.ctx.spaced || len(ts.lines) > 0 || ts.lineOccupied() {
			return 0
		}
		left = catOpen
	}
	return interElementSpace(left, cat, ts.ctx.style, ts.ctx.cramped, ts.ctx.font)
}

// lineOccupied reports whether the current line has any content.
func (ts *typesetter) lineOccupied() bool {
	return len(ts.cur) > 0 || ts.buf.Len() > 0
}

// flush converts the accumulation buffer into a text run box. It is
// the only way buffered text becomes a box.
func (ts *typesetter) flush() {
	if ts.buf.Len() == 0 {
		return
	}
	run := newTextRun(ts.ctx.font, ts.buf.String(), ts.bufRange, ts.ctx.runColor())
	run.Position = Point{X: ts.bufStart}
	ts.cur = append(ts.cur, run)
	ts.cursorX = ts.bufStart + run.Width
	ts.resetBuffer()
}

func (ts *typesetter) resetBuffer() {
	ts.buf.Reset()
	ts.bufSpans = ts.bufSpans[:0]
	ts.bufRange = atom.Range{}
}

// finishLine completes the current line, buffer included.
func (ts *typesetter) finishLine() {
	ts.flush()
	ts.pushLine()
}

// pushLine records the current boxes as a completed line and resets
// the cursor. The buffer, if any, survives onto the new line.
func (ts *typesetter) pushLine() {
	if len(ts.cur) > 0 {
		l := line{boxes: ts.cur}
		for _, b := range ts.cur {
			g := b.Geom()
			if right := g.Position.X + g.Width; right > l.width {
				l.width = right
			}
			if top := g.Position.Y + g.Ascent; top > l.ascent {
				l.ascent = top
			}
			if bottom := g.Descent - g.Position.Y; bottom > l.descent {
				l.descent = bottom
			}
		}
		ts.lines = append(ts.lines, l)
		ts.cur = nil
	}
	ts.cursorX = 0
	ts.bufStart = 0
	ts.havePrev = false
	ts.forceBreakAfter = -1
}

// assemble stacks the completed lines vertically and returns the final
// composite. Each line's height comes from the actual extents of its
// boxes, with the configured minimum inter-line spacing between lines.
func (ts *typesetter) assemble(rng atom.Range) *Composite {
	if len(ts.cur) > 0 || ts.buf.Len() > 0 {
		ts.finishLine()
	}
	var boxes []Box
	baseline := 0.0
	for i, l := range ts.lines {
		if i > 0 {
			baseline -= ts.lines[i-1].descent + ts.lineSpacing + l.ascent
		}
		for _, b := range l.boxes {
			b.Geom().Position.Y += baseline
			boxes = append(boxes, b)
		}
	}
	return newComposite(boxes, rng)
}
