// Package typeset converts math expression trees into positioned box
// trees, following the box-generation algorithm of TeX Appendix G.
//
// The pipeline has three stages:
//
//   - atom.Normalize folds parser-level kinds into layout categories
//   - a typesetter walks the list left to right, delegating fractions,
//     radicals, scripts, large operators, delimiters, accents and
//     tables to kind-specific renderers
//   - the resulting boxes are assembled into lines, optionally broken
//     at a maximum width and truncated to a line limit
//
// Layout is a pure function of (tree, font, options): there is no
// incremental update, a box tree is rebuilt wholesale when any input
// changes. Coordinates are y-up with the baseline at y=0; ascent
// extends above the baseline and descent (positive) below it.
//
// # Example usage
//
//	f, err := opentype.New(fontData, 20)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	list := parseExpression(src) // external parser
//	box, err := typeset.Layout(list, f, typeset.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	paint(box) // walk box.Children() in the drawing layer
package typeset
