package typeset

import "errors"

// Sentinel errors for the typeset package.
var (
	// ErrNoFont is returned when Layout is called without a font.
	// There is no degraded rendering without metrics; the caller must
	// treat this as "cannot lay out".
	ErrNoFont = errors.New("typeset: no font")
)
