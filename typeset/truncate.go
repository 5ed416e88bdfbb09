package typeset

import (
	"math"
	"sort"

	"github.com/rivo/uniseg"
)

const ellipsisRune = '…'

// truncateToLines limits a laid-out composite to at most limit visual
// lines. Lines past the limit are dropped, the last kept line is
// trimmed to leave room for a trailing ellipsis, and the ellipsis run
// is appended at the cut. A composite within the limit is returned
// unchanged.
func truncateToLines(out *Composite, ctx renderContext, limit int, maxWidth float64) *Composite {
	lines := clusterLines(out.Children(), baselineTolerance(ctx.font.Size()))
	if len(lines) <= limit {
		return out
	}
	logger().Debug("typeset: truncating output", "lines", len(lines), "limit", limit)

	var kept []Box
	for _, l := range lines[:limit-1] {
		kept = append(kept, l...)
	}

	ell := ellipsisText(ctx)
	ellWidth := ctx.font.MeasureRun(ell).Advance
	budget := math.Inf(1)
	if maxWidth > 0 {
		budget = maxWidth - ellWidth
	}

	last := lines[limit-1]
	baseline := last[0].Geom().Position.Y
	cut := 0.0
	for _, b := range last {
		g := b.Geom()
		if g.Position.X+g.Width <= budget {
			kept = append(kept, b)
			if right := g.Position.X + g.Width; right > cut {
				cut = right
			}
			continue
		}
		if run, ok := b.(*TextRun); ok && g.Position.X < budget {
			if fit := fitRunPrefix(ctx, run, budget-g.Position.X); fit != nil {
				kept = append(kept, fit)
				cut = fit.Position.X + fit.Width
			}
		}
		break
	}

	er := newTextRun(ctx.font, ell, out.Range, ctx.runColor())
	er.Position = Point{X: cut, Y: baseline}
	kept = append(kept, er)
	return newComposite(kept, out.Range)
}

// baselineTolerance is the vertical slack used when grouping boxes
// into visual lines. Script and limit boxes sit off their line's
// baseline, so an exact match would scatter them into phantom lines.
func baselineTolerance(size float64) float64 {
	return math.Max(1, size/4)
}

// clusterLines groups top-level boxes into visual lines by their
// vertical position, top line first.
func clusterLines(boxes []Box, tol float64) [][]Box {
	if len(boxes) == 0 {
		return nil
	}
	sorted := make([]Box, len(boxes))
	copy(sorted, boxes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Geom().Position.Y > sorted[j].Geom().Position.Y
	})
	var lines [][]Box
	lineY := sorted[0].Geom().Position.Y
	cur := []Box{sorted[0]}
	for _, b := range sorted[1:] {
		y := b.Geom().Position.Y
		if lineY-y > tol {
			lines = append(lines, cur)
			cur = nil
			lineY = y
		}
		cur = append(cur, b)
	}
	lines = append(lines, cur)
	// Left to right within each line, so the budget walk sees boxes
	// in visual order even when they sit off-baseline within the
	// tolerance.
	for _, l := range lines {
		sort.SliceStable(l, func(i, j int) bool {
			return l[i].Geom().Position.X < l[j].Geom().Position.X
		})
	}
	return lines
}

// ellipsisText returns the horizontal ellipsis, or three periods when
// the font has no glyph for it.
func ellipsisText(ctx renderContext) string {
	if ctx.font.GlyphForRune(ellipsisRune) != 0 {
		return string(ellipsisRune)
	}
	return "..."
}

// fitRunPrefix returns a copy of run trimmed at a grapheme cluster
// boundary so its width is at most width, or nil when not even the
// first cluster fits.
func fitRunPrefix(ctx renderContext, run *TextRun, width float64) *TextRun {
	bounds := clusterEnds(run.Text)
	// Binary search for the longest fitting prefix.
	n := sort.Search(len(bounds), func(i int) bool {
		return ctx.font.MeasureRun(run.Text[:bounds[i]]).Advance > width
	})
	if n == 0 {
		return nil
	}
	fit := newTextRun(ctx.font, run.Text[:bounds[n-1]], run.Range, run.Color)
	fit.Position = run.Position
	return fit
}

// clusterEnds returns the byte offset past each grapheme cluster of
// text, in order.
func clusterEnds(text string) []int {
	var ends []int
	state := -1
	rest := text
	pos := 0
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		pos += len(cluster)
		ends = append(ends, pos)
	}
	return ends
}
