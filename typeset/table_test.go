package typeset

import (
	"testing"

	"github.com/nguillot/SwiftMath/atom"
)

func tableAtom(rows [][]string) *atom.Atom {
	data := &atom.TableData{}
	for _, row := range rows {
		var cells []*atom.List
		for _, s := range row {
			cells = append(cells, atom.NewList(ord(s)))
		}
		data.Cells = append(data.Cells, cells)
	}
	return &atom.Atom{Kind: atom.KindTable, Table: data}
}

func TestMakeTableGrid(t *testing.T) {
	a := tableAtom([][]string{{"a", "b"}, {"c", "d"}})
	a.Table.ColumnSpacing = 18

	box := makeTable(displayCtx(), a).(*Composite)
	cells := box.Children()
	if len(cells) != 4 {
		t.Fatalf("cells = %d, want 4", len(cells))
	}
	if !approx(box.Width, 36) {
		t.Errorf("width = %v, want 2 columns of 9 plus an 18 unit gap", box.Width)
	}
	// Baselines 21.6 apart, grid centered on the axis at 4.5.
	if !approx(cells[0].Geom().Position.Y, 10.8) {
		t.Errorf("row 0 Y = %v, want 10.8", cells[0].Geom().Position.Y)
	}
	if !approx(cells[2].Geom().Position.Y, -10.8) {
		t.Errorf("row 1 Y = %v, want -10.8", cells[2].Geom().Position.Y)
	}
	if !approx(cells[1].Geom().Position.X, 27) {
		t.Errorf("column 1 X = %v, want 27", cells[1].Geom().Position.X)
	}
	if !approx(box.Ascent, 23.4) {
		t.Errorf("ascent = %v, want 23.4", box.Ascent)
	}
	if !approx(box.Descent, 14.4) {
		t.Errorf("descent = %v, want 14.4", box.Descent)
	}
}

func TestMakeTableAlignment(t *testing.T) {
	tests := []struct {
		name  string
		align []atom.ColumnAlignment
		wantX float64
	}{
		{"right", []atom.ColumnAlignment{atom.AlignRight}, 9},
		{"left", []atom.ColumnAlignment{atom.AlignLeft}, 0},
		{"default center", nil, 4.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := tableAtom([][]string{{"a"}, {"ab"}})
			a.Table.Alignments = tt.align
			box := makeTable(displayCtx(), a).(*Composite)
			// The one-glyph cell floats inside the 18 unit column.
			if got := box.Children()[0].Geom().Position.X; !approx(got, tt.wantX) {
				t.Errorf("narrow cell X = %v, want %v", got, tt.wantX)
			}
		})
	}
}

func TestMakeTableRowSpacing(t *testing.T) {
	a := tableAtom([][]string{{"a"}, {"b"}})
	a.Table.RowSpacing = 1

	box := makeTable(displayCtx(), a).(*Composite)
	rows := box.Children()
	// One jot of openup widens the 21.6 baseline skip to 27.
	gap := rows[0].Geom().Position.Y - rows[1].Geom().Position.Y
	if !approx(gap, 27) {
		t.Errorf("baseline gap = %v, want 27", gap)
	}
}

func TestMakeTableLineSkip(t *testing.T) {
	// A tall second row pushes past the baseline skip; the rows then
	// close up to one lineSkip of air instead.
	a := tableAtom([][]string{{"a"}, {"b"}})
	a.Table.Cells[1][0] = atom.NewList(fracAtom(true))

	box := makeTable(displayCtx(), a).(*Composite)
	rows := box.Children()
	gap := rows[0].Geom().Position.Y - rows[1].Geom().Position.Y
	// 3.6 descent + 24.786 fraction ascent + 1.8 of air.
	if !approx(gap, 30.186) {
		t.Errorf("baseline gap = %v, want 30.186", gap)
	}
}

func TestMakeTableEmpty(t *testing.T) {
	box := makeTable(displayCtx(), tableAtom(nil)).(*Composite)
	if len(box.Children()) != 0 {
		t.Errorf("children = %d, want none", len(box.Children()))
	}
}
