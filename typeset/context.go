package typeset

import (
	"github.com/nguillot/SwiftMath/atom"
	"github.com/nguillot/SwiftMath/font"
)

// maxDepth is the recursion ceiling for nested sub-layouts. Exceeding
// it yields an empty box for the subtree instead of overflowing the
// stack.
const maxDepth = 256

// renderContext is the immutable per-call style bundle threaded through the
// renderers. Child contexts are derived with the with* methods, never
// mutated in place.
type renderContext struct {
	// base is the font at its original size; fonts for script styles
	// are derived from it so scale factors never compound.
	base font.Font

	// font is the style-scaled font all measurements use.
	font font.Font

	style   atom.LineStyle
	cramped bool

	// spaced forces inter-element spacing before the first atom of a
	// list, as if an open delimiter preceded it.
	spaced bool

	// maxWidth enables line breaking when positive. Only the
	// top-level list wraps; derived contexts clear it.
	maxWidth float64

	// color is the inherited color override for produced boxes.
	color string

	// textColor is the inherited color override for glyph-carrying
	// boxes only; rules, bars and containers keep color.
	textColor string

	depth int
}

// newContext builds the top-level context from layout options.
func newContext(f font.Font, opts Options) renderContext {
	ctx := renderContext{
		base:     f,
		style:    opts.Style,
		cramped:  opts.Cramped,
		spaced:   opts.Spaced,
		maxWidth: opts.MaxWidth,
	}
	ctx.font = styledFont(f, opts.Style)
	return ctx
}

// styledFont returns the font scaled for a line style.
func styledFont(base font.Font, style atom.LineStyle) font.Font {
	c := base.Constants()
	switch style {
	case atom.StyleScript:
		return base.WithSize(base.Size() * c.ScriptScaleDown)
	case atom.StyleScriptScript:
		return base.WithSize(base.Size() * c.ScriptScriptScaleDown)
	default:
		return base
	}
}

// constants returns the math constants of the style-scaled font.
func (c renderContext) constants() *font.Constants { return c.font.Constants() }

// displayStyle reports whether the context is full display style.
func (c renderContext) displayStyle() bool { return c.style == atom.StyleDisplay }

// child returns a copy prepared for a sub-layout: one level deeper,
// without width constraint or list-level spacing.
func (c renderContext) child() renderContext {
	c.depth++
	c.maxWidth = 0
	c.spaced = false
	return c
}

// withStyle derives a context in the given line style.
func (c renderContext) withStyle(style atom.LineStyle) renderContext {
	c.style = style
	c.font = styledFont(c.base, style)
	return c
}

// withCramped derives a cramped (or explicitly uncramped) context.
func (c renderContext) withCramped(cramped bool) renderContext {
	c.cramped = cramped
	return c
}

// withColor derives a context whose produced boxes carry a color
// override.
func (c renderContext) withColor(color string) renderContext {
	c.color = color
	return c
}

// withTextColor derives a context recoloring glyph runs and glyph
// boxes only.
func (c renderContext) withTextColor(color string) renderContext {
	c.textColor = color
	return c
}

// runColor is the color applied to glyph-carrying boxes.
func (c renderContext) runColor() string {
	if c.textColor != "" {
		return c.textColor
	}
	return c.color
}

// scriptStyle returns the style scripts are laid out in: script for
// display/text, scriptscript beyond.
func (c renderContext) scriptStyle() atom.LineStyle {
	if c.style <= atom.StyleText {
		return atom.StyleScript
	}
	return atom.StyleScriptScript
}

// superscriptContext derives the context for a superscript: script
// style, cramped iff the parent is cramped.
func (c renderContext) superscriptContext() renderContext {
	return c.child().withStyle(c.scriptStyle())
}

// subscriptContext derives the context for a subscript: script style,
// always cramped.
func (c renderContext) subscriptContext() renderContext {
	return c.child().withStyle(c.scriptStyle()).withCramped(true)
}

// numeratorContext keeps the parent style so fraction content does not
// shrink relative to surrounding text; continued fractions force
// display style.
func (c renderContext) numeratorContext(continued bool) renderContext {
	ctx := c.child()
	if continued {
		ctx = ctx.withStyle(atom.StyleDisplay)
	}
	return ctx
}

// denominatorContext is the numerator context, cramped.
func (c renderContext) denominatorContext(continued bool) renderContext {
	return c.numeratorContext(continued).withCramped(true)
}

// radicandContext derives the always-cramped context for a radicand.
func (c renderContext) radicandContext() renderContext {
	return c.child().withCramped(true)
}

// degreeContext derives the scriptscript context for a root degree.
func (c renderContext) degreeContext() renderContext {
	return c.child().withStyle(atom.StyleScriptScript)
}
