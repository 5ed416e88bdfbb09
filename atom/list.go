package atom

// List is an ordered sequence of atoms forming one (sub-)expression.
//
// A well-formed list's atom ranges are contiguous and non-overlapping
// over the original source, and every attached sub-list satisfies the
// same invariant recursively.
type List struct {
	Atoms []*Atom
}

// NewList creates a list from the given atoms.
func NewList(atoms ...*Atom) *List {
	return &List{Atoms: atoms}
}

// Append adds atoms to the end of the list.
func (l *List) Append(atoms ...*Atom) {
	l.Atoms = append(l.Atoms, atoms...)
}

// Len returns the number of atoms in the list.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Atoms)
}

// IsEmpty reports whether the list is nil or has no atoms.
func (l *List) IsEmpty() bool { return l.Len() == 0 }

// Range returns the union of all atom ranges in the list.
func (l *List) Range() Range {
	var r Range
	if l == nil {
		return r
	}
	for _, a := range l.Atoms {
		r = r.Union(a.Range)
	}
	return r
}

// String returns a compact debug representation of the list.
func (l *List) String() string {
	if l == nil {
		return ""
	}
	s := ""
	for i, a := range l.Atoms {
		if i > 0 {
			s += " "
		}
		s += a.String()
	}
	return s
}
