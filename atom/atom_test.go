package atom

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindOrdinary, "Ordinary"},
		{KindNumber, "Number"},
		{KindVariable, "Variable"},
		{KindBinaryOperator, "BinaryOperator"},
		{KindUnaryOperator, "UnaryOperator"},
		{KindRelation, "Relation"},
		{KindOpen, "Open"},
		{KindClose, "Close"},
		{KindPunctuation, "Punctuation"},
		{KindFraction, "Fraction"},
		{KindRadical, "Radical"},
		{KindLargeOperator, "LargeOperator"},
		{KindInner, "Inner"},
		{KindAccent, "Accent"},
		{KindUnderline, "Underline"},
		{KindOverline, "Overline"},
		{KindTable, "Table"},
		{KindColor, "Color"},
		{KindTextColor, "TextColor"},
		{KindColorBox, "ColorBox"},
		{KindSpace, "Space"},
		{KindStyleChange, "StyleChange"},
		{KindPlaceholder, "Placeholder"},
		{KindBoundary, "Boundary"},
		{Kind(99), unknownStr},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := tt.kind.String()
			if got != tt.want {
				t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestLineStyleInc(t *testing.T) {
	tests := []struct {
		style LineStyle
		want  LineStyle
	}{
		{StyleDisplay, StyleText},
		{StyleText, StyleScript},
		{StyleScript, StyleScriptScript},
		{StyleScriptScript, StyleScriptScript},
	}
	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			got := tt.style.Inc()
			if got != tt.want {
				t.Errorf("%v.Inc() = %v, want %v", tt.style, got, tt.want)
			}
		})
	}
}

func TestLineStyleIsScript(t *testing.T) {
	tests := []struct {
		style LineStyle
		want  bool
	}{
		{StyleDisplay, false},
		{StyleText, false},
		{StyleScript, true},
		{StyleScriptScript, true},
	}
	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			got := tt.style.IsScript()
			if got != tt.want {
				t.Errorf("%v.IsScript() = %v, want %v", tt.style, got, tt.want)
			}
		})
	}
}

func TestRangeUnion(t *testing.T) {
	tests := []struct {
		name string
		a, b Range
		want Range
	}{
		{"disjoint", Range{0, 2}, Range{5, 3}, Range{0, 8}},
		{"adjacent", Range{0, 2}, Range{2, 2}, Range{0, 4}},
		{"overlapping", Range{0, 4}, Range{2, 4}, Range{0, 6}},
		{"contained", Range{0, 10}, Range{3, 2}, Range{0, 10}},
		{"reversed order", Range{5, 3}, Range{0, 2}, Range{0, 8}},
		{"zero left", Range{}, Range{3, 2}, Range{3, 2}},
		{"zero right", Range{3, 2}, Range{}, Range{3, 2}},
		{"both zero", Range{}, Range{}, Range{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Union(tt.b)
			if got != tt.want {
				t.Errorf("%+v.Union(%+v) = %+v, want %+v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestHasScripts(t *testing.T) {
	tests := []struct {
		name string
		atom *Atom
		want bool
	}{
		{"none", &Atom{Kind: KindOrdinary, Nucleus: "x"}, false},
		{"subscript", &Atom{Kind: KindOrdinary, Nucleus: "x", Subscript: NewList()}, true},
		{"superscript", &Atom{Kind: KindOrdinary, Nucleus: "x", Superscript: NewList()}, true},
		{"both", &Atom{Kind: KindOrdinary, Nucleus: "x", Subscript: NewList(), Superscript: NewList()}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.atom.HasScripts()
			if got != tt.want {
				t.Errorf("HasScripts() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestListRange(t *testing.T) {
	l := NewList(
		&Atom{Kind: KindOrdinary, Nucleus: "a", Range: Range{0, 1}},
		&Atom{Kind: KindBinaryOperator, Nucleus: "+", Range: Range{1, 1}},
		&Atom{Kind: KindOrdinary, Nucleus: "b", Range: Range{2, 1}},
	)
	got := l.Range()
	want := Range{0, 3}
	if got != want {
		t.Errorf("Range() = %+v, want %+v", got, want)
	}
}

func TestListNilSafety(t *testing.T) {
	var l *List
	if got := l.Len(); got != 0 {
		t.Errorf("nil list Len() = %d, want 0", got)
	}
	if !l.IsEmpty() {
		t.Error("nil list IsEmpty() = false, want true")
	}
	if got := l.Range(); got != (Range{}) {
		t.Errorf("nil list Range() = %+v, want zero", got)
	}
}
