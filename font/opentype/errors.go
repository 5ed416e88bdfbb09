package opentype

import "errors"

// Sentinel errors for the opentype package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("opentype: empty font data")
)
