package typeset

import (
	"github.com/nguillot/SwiftMath/atom"
	"github.com/nguillot/SwiftMath/font"
)

// Row stacking multipliers, relative to the em size: consecutive
// baselines sit baselineSkip apart unless the rows would close within
// lineSkipLimit of each other, in which case lineSkip of air is used
// instead. openup rows add jot-sized increments.
const (
	baselineSkipMultiplier = 1.2
	lineSkipMultiplier     = 0.1
	jotMultiplier          = 0.3
)

// makeTable lays out a grid of cells (matrices, cases, aligned rows)
// in two passes: measure all cells, then place them on per-row
// baselines with per-column alignment, and center the whole grid on
// the math axis.
func makeTable(ctx renderContext, a *atom.Atom) Box {
	data := a.Table
	if len(data.Cells) == 0 {
		return newComposite(nil, a.Range)
	}

	// Pass 1: lay out every cell independently; no width constraint
	// propagates into cells. Track per-column maxima.
	cells := make([][]*Composite, len(data.Cells))
	var colWidths []float64
	for i, row := range data.Cells {
		cells[i] = make([]*Composite, len(row))
		for j, cell := range row {
			laid := layoutList(ctx.child(), cell)
			cells[i][j] = laid
			for len(colWidths) <= j {
				colWidths = append(colWidths, 0)
			}
			if laid.Width > colWidths[j] {
				colWidths[j] = laid.Width
			}
		}
	}

	size := ctx.font.Size()
	baselineSkip := baselineSkipMultiplier * size
	lineSkip := lineSkipMultiplier * size
	lineSkipLimit := lineSkip
	openup := data.RowSpacing * jotMultiplier * size
	colGap := font.MuWidth(ctx.font, data.ColumnSpacing)

	// Pass 2: place cells row by row.
	var boxes []Box
	var baseline float64
	var prevDescent float64
	for i, row := range cells {
		rowAscent, rowDescent := 0.0, 0.0
		for _, cell := range row {
			if cell.Ascent > rowAscent {
				rowAscent = cell.Ascent
			}
			if cell.Descent > rowDescent {
				rowDescent = cell.Descent
			}
		}

		if i > 0 {
			drop := baselineSkip + openup
			if drop-prevDescent-rowAscent < lineSkipLimit {
				drop = prevDescent + rowAscent + lineSkip + openup
			}
			baseline -= drop
		}

		x := 0.0
		for j, cell := range row {
			cell.Position = Point{
				X: x + alignmentFactor(data, j)*(colWidths[j]-cell.Width),
				Y: baseline,
			}
			x += colWidths[j] + colGap
			boxes = append(boxes, cell)
		}
		prevDescent = rowDescent
	}

	table := newComposite(boxes, a.Range)
	// Center the grid on the math axis.
	shift := 0.5*(table.Ascent-table.Descent) - ctx.constants().AxisHeight
	for _, b := range table.children {
		b.Geom().Position.Y -= shift
	}
	table.Ascent -= shift
	table.Descent += shift
	table.Color = ctx.color
	return table
}

// alignmentFactor maps a column's alignment to the fraction of free
// space placed before the cell. Missing alignments center.
func alignmentFactor(data *atom.TableData, col int) float64 {
	align := atom.AlignCenter
	if col < len(data.Alignments) {
		align = data.Alignments[col]
	}
	switch align {
	case atom.AlignLeft:
		return 0
	case atom.AlignRight:
		return 1
	default:
		return 0.5
	}
}
