package atom

import "strings"

// Math alphanumeric mapping (Unicode block U+1D400–U+1D7FF).
//
// Each alphabet is addressed by the code point of its capital 'A',
// small 'a', digit '0', Greek capital alpha and Greek small alpha.
// A zero base means the alphabet has no such range and the rune is
// left unchanged. Code points that predate the block (the "holes",
// e.g. PLANCK CONSTANT for italic h) are fixed up afterwards.
type alphabet struct {
	upper      rune
	lower      rune
	digit      rune
	greekUpper rune
	greekLower rune
}

var alphabets = map[FontStyle]alphabet{
	FontStyleBold:        {upper: 0x1D400, lower: 0x1D41A, digit: 0x1D7CE, greekUpper: 0x1D6A8, greekLower: 0x1D6C2},
	FontStyleItalic:      {upper: 0x1D434, lower: 0x1D44E, greekUpper: 0x1D6E2, greekLower: 0x1D6FC},
	FontStyleBoldItalic:  {upper: 0x1D468, lower: 0x1D482, greekUpper: 0x1D71C, greekLower: 0x1D736},
	FontStyleCaligraphic: {upper: 0x1D49C, lower: 0x1D4B6},
	FontStyleFraktur:     {upper: 0x1D504, lower: 0x1D51E},
	FontStyleBlackboard:  {upper: 0x1D538, lower: 0x1D552, digit: 0x1D7D8},
	FontStyleSansSerif:   {upper: 0x1D5A0, lower: 0x1D5BA, digit: 0x1D7E2},
	FontStyleTypewriter:  {upper: 0x1D670, lower: 0x1D68A, digit: 0x1D7F6},
}

// holes maps naively-computed code points to their canonical letterlike
// equivalents. The math alphanumeric block reserves these slots because
// the characters were encoded earlier elsewhere.
var holes = map[rune]rune{
	0x1D455: 0x210E, // italic h -> PLANCK CONSTANT
	0x1D49D: 0x212C, // script B
	0x1D4A0: 0x2130, // script E
	0x1D4A1: 0x2131, // script F
	0x1D4A3: 0x210B, // script H
	0x1D4A4: 0x2110, // script I
	0x1D4A7: 0x2112, // script L
	0x1D4A8: 0x2133, // script M
	0x1D4AD: 0x211B, // script R
	0x1D4BA: 0x212F, // script e
	0x1D4BC: 0x210A, // script g
	0x1D4C4: 0x2134, // script o
	0x1D506: 0x212D, // fraktur C
	0x1D50B: 0x210C, // fraktur H
	0x1D50C: 0x2111, // fraktur I
	0x1D515: 0x211C, // fraktur R
	0x1D51D: 0x2128, // fraktur Z
	0x1D53A: 0x2102, // double-struck C
	0x1D53F: 0x210D, // double-struck H
	0x1D545: 0x2115, // double-struck N
	0x1D547: 0x2119, // double-struck P
	0x1D548: 0x211A, // double-struck Q
	0x1D549: 0x211D, // double-struck R
	0x1D551: 0x2124, // double-struck Z
}

// StyledRune maps a rune to the given math alphabet, leaving runes the
// alphabet does not cover unchanged. FontStyleRoman is the identity.
func StyledRune(r rune, style FontStyle) rune {
	if style == FontStyleRoman || style == FontStyleDefault {
		return r
	}
	ab, ok := alphabets[style]
	if !ok {
		return r
	}
	var mapped rune
	switch {
	case r >= 'A' && r <= 'Z' && ab.upper != 0:
		mapped = ab.upper + (r - 'A')
	case r >= 'a' && r <= 'z' && ab.lower != 0:
		mapped = ab.lower + (r - 'a')
	case r >= '0' && r <= '9' && ab.digit != 0:
		mapped = ab.digit + (r - '0')
	case r >= 0x0391 && r <= 0x03A9 && ab.greekUpper != 0:
		mapped = ab.greekUpper + (r - 0x0391)
	case r >= 0x03B1 && r <= 0x03C9 && ab.greekLower != 0:
		mapped = ab.greekLower + (r - 0x03B1)
	default:
		return r
	}
	if fixed, ok := holes[mapped]; ok {
		return fixed
	}
	return mapped
}

// styledNucleus respells a nucleus for the given atom kind and style.
// Under the default style, variables render in math italic while
// numbers stay upright, matching the usual math convention.
func styledNucleus(nucleus string, kind Kind, style FontStyle) string {
	if style == FontStyleDefault {
		if kind == KindNumber {
			return nucleus
		}
		style = FontStyleItalic
	}
	var b strings.Builder
	b.Grow(len(nucleus) * 2)
	for _, r := range nucleus {
		b.WriteRune(StyledRune(r, style))
	}
	return b.String()
}
