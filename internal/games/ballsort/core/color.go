// Package core provides the puzzle engine for Ball Sort.
// This package is UI-agnostic and deterministic given a seeded RNG.
package core

import (
	"strings"
	"unicode"
)

// Color identifies a ball color. Colors are compared for equality only.
type Color string

const (
	Red    Color = "red"
	Blue   Color = "blue"
	Green  Color = "green"
	Yellow Color = "yellow"
	Purple Color = "purple"
	Orange Color = "orange"
	Teal   Color = "teal"
	Pink   Color = "pink"
	Brown  Color = "brown"
)

// String returns the string representation of a color.
func (c Color) String() string {
	return string(c)
}

// Char returns a single character representation of the color for ASCII rendering.
func (c Color) Char() rune {
	switch c {
	case Red:
		return 'R'
	case Blue:
		return 'B'
	case Green:
		return 'G'
	case Yellow:
		return 'Y'
	case Purple:
		return 'P'
	case Orange:
		return 'O'
	case Teal:
		return 'T'
	case Pink:
		return 'K'
	case Brown:
		return 'N'
	default:
		return '?'
	}
}

// ParseColor converts a color name or glyph to a Color.
// Returns false if the string is not part of the palette.
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range Palette() {
		if s == string(c) || (len(s) == 1 && unicode.ToUpper(rune(s[0])) == c.Char()) {
			return c, true
		}
	}
	return "", false
}

// Palette returns every color a level may use, in display order.
func Palette() []Color {
	return []Color{Red, Blue, Green, Yellow, Purple, Orange, Teal, Pink, Brown}
}
