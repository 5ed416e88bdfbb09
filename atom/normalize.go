package atom

// Normalize prepares a parsed list for layout. It applies, in order:
//
//  1. Variable and Number atoms have their nuclei respelled into the
//     atom's font style alphabet and are retyped Ordinary.
//  2. UnaryOperator atoms are retyped Ordinary; the layout algorithm
//     has no unary category.
//  3. Adjacent Ordinary atoms without scripts are fused into a single
//     Ordinary atom whose nucleus is the concatenation, so identifiers
//     and words never get category spacing inserted inside them.
//
// The input list is not mutated; atoms that change are copied, others
// are shared. Fused atoms record their originals in Atom.Fused so
// source ranges stay recoverable. Normalize is idempotent.
func Normalize(list *List) *List {
	if list == nil {
		return NewList()
	}
	out := NewList()
	var prev *Atom
	for _, a := range list.Atoms {
		cur := a
		switch a.Kind {
		case KindVariable, KindNumber:
			cur = a.Copy()
			cur.Nucleus = styledNucleus(a.Nucleus, a.Kind, a.FontStyle)
			cur.Kind = KindOrdinary
		case KindUnaryOperator:
			cur = a.Copy()
			cur.Kind = KindOrdinary
		}

		if prev != nil && canFuse(prev, cur) {
			if len(prev.Fused) == 0 {
				// First fusion into this run: replace the shared atom
				// with a copy so the parser's tree stays untouched.
				orig := prev
				prev = prev.Copy()
				prev.Fused = append(prev.Fused, orig)
				out.Atoms[len(out.Atoms)-1] = prev
			}
			fuse(prev, cur)
			continue
		}
		out.Append(cur)
		prev = cur
	}
	return out
}

// canFuse reports whether two adjacent atoms may be merged into one run.
// Only plain ordinaries without scripts fuse; an atom carrying scripts
// must stay separate so the script renderer sees its true base.
func canFuse(prev, cur *Atom) bool {
	return prev.Kind == KindOrdinary && cur.Kind == KindOrdinary &&
		!prev.HasScripts() && !cur.HasScripts()
}

// fuse folds cur into prev, keeping the original atoms for index
// bookkeeping. prev is always a copy by the time fusion happens.
func fuse(prev, cur *Atom) {
	if len(cur.Fused) > 0 {
		prev.Fused = append(prev.Fused, cur.Fused...)
	} else {
		prev.Fused = append(prev.Fused, cur)
	}
	prev.Nucleus += cur.Nucleus
	prev.Range = prev.Range.Union(cur.Range)
}
