// Package match3 implements the tile-matching engine: the token grid, run detection,
// clearing and scoring, gravity refill and swap validation.
// It is UI-agnostic and deterministic for a given random source.
package match3

import "strings"

// Token identifies the kind of candy in a cell. Kinds carry no state beyond identity.
type Token uint8

// Empty marks a cleared cell waiting for gravity to refill it.
const Empty Token = 0

// Token kinds, in palette order.
const (
	Blue Token = iota + 1
	Orange
	Purple
	Red
	Yellow
	Green
)

// Kinds is the size of the token palette.
const Kinds = 6

// String returns the token name.
func (t Token) String() string {
	switch t {
	case Empty:
		return "empty"
	case Blue:
		return "blue"
	case Orange:
		return "orange"
	case Purple:
		return "purple"
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	default:
		return "unknown"
	}
}

// Char returns the single-character glyph used in grid dumps.
func (t Token) Char() rune {
	switch t {
	case Empty:
		return '.'
	case Blue:
		return 'B'
	case Orange:
		return 'O'
	case Purple:
		return 'P'
	case Red:
		return 'R'
	case Yellow:
		return 'Y'
	case Green:
		return 'G'
	default:
		return '?'
	}
}

// Valid reports whether t is one of the palette kinds.
func (t Token) Valid() bool {
	return t >= Blue && t <= Green
}

// ParseToken converts a name or glyph ("red", "R", ".") to a Token.
func ParseToken(s string) (Token, bool) {
	switch strings.ToLower(s) {
	case "empty", ".":
		return Empty, true
	case "blue", "b":
		return Blue, true
	case "orange", "o":
		return Orange, true
	case "purple", "p":
		return Purple, true
	case "red", "r":
		return Red, true
	case "yellow", "y":
		return Yellow, true
	case "green", "g":
		return Green, true
	default:
		return Empty, false
	}
}

// AllTokens returns the palette kinds in order.
func AllTokens() []Token {
	return []Token{Blue, Orange, Purple, Red, Yellow, Green}
}
