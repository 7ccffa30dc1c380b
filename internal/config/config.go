// Package config loads the YAML game configuration for the match-3 board: engine
// pacing, board cell size and the token palette.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-crush/internal/core"
	"github.com/vovakirdan/tui-crush/internal/match3"
)

// CrushConfig is the full game configuration.
type CrushConfig struct {
	Engine  EngineConfig   `yaml:"engine"`
	Board   BoardConfig    `yaml:"board"`
	Palette []PaletteEntry `yaml:"palette"`
}

// EngineConfig controls the driver.
type EngineConfig struct {
	TickIntervalMS int    `yaml:"tick_interval_ms"` // Time between engine steps
	Cascade        string `yaml:"cascade"`          // "paced" or "settle"
}

// BoardConfig controls how the board is drawn.
type BoardConfig struct {
	CellWidth  int  `yaml:"cell_width"`  // Screen columns per board cell
	CellHeight int  `yaml:"cell_height"` // Screen rows per board cell
	ShowHints  bool `yaml:"show_hints"`  // Allow the hint key
}

// PaletteEntry is how one token kind looks on screen.
type PaletteEntry struct {
	Name  string `yaml:"name"`  // Token name, see match3.ParseToken
	Glyph string `yaml:"glyph"` // Single character drawn in the cell
	Color string `yaml:"color"` // core.ParseColor name
}

// Limits enforced by Validate.
const (
	MinTickIntervalMS = 10
	MaxTickIntervalMS = 5000
	MaxCellWidth      = 8
	MaxCellHeight     = 4
)

// Validate checks ranges and that the palette covers every token kind once.
func (c CrushConfig) Validate() error {
	var errs []error

	if c.Engine.TickIntervalMS < MinTickIntervalMS || c.Engine.TickIntervalMS > MaxTickIntervalMS {
		errs = append(errs, fmt.Errorf("engine.tick_interval_ms %d out of range [%d, %d]",
			c.Engine.TickIntervalMS, MinTickIntervalMS, MaxTickIntervalMS))
	}
	if _, err := match3.ParseCascadePolicy(c.Engine.Cascade); err != nil {
		errs = append(errs, fmt.Errorf("engine.cascade: %w", err))
	}
	if c.Board.CellWidth < 1 || c.Board.CellWidth > MaxCellWidth {
		errs = append(errs, fmt.Errorf("board.cell_width %d out of range [1, %d]", c.Board.CellWidth, MaxCellWidth))
	}
	if c.Board.CellHeight < 1 || c.Board.CellHeight > MaxCellHeight {
		errs = append(errs, fmt.Errorf("board.cell_height %d out of range [1, %d]", c.Board.CellHeight, MaxCellHeight))
	}

	if len(c.Palette) != match3.Kinds {
		errs = append(errs, fmt.Errorf("palette has %d entries, expected %d", len(c.Palette), match3.Kinds))
	}
	seen := make(map[match3.Token]bool)
	for i, p := range c.Palette {
		tok, ok := match3.ParseToken(p.Name)
		if !ok || !tok.Valid() {
			errs = append(errs, fmt.Errorf("palette[%d]: unknown token %q", i, p.Name))
			continue
		}
		if seen[tok] {
			errs = append(errs, fmt.Errorf("palette[%d]: duplicate token %q", i, p.Name))
		}
		seen[tok] = true
		if utf8.RuneCountInString(p.Glyph) != 1 {
			errs = append(errs, fmt.Errorf("palette[%d]: glyph %q must be one character", i, p.Glyph))
		}
		if _, ok := core.ParseColor(p.Color); !ok {
			errs = append(errs, fmt.Errorf("palette[%d]: unknown color %q", i, p.Color))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid crush config: %w", errors.Join(errs...))
	}
	return nil
}

// TickInterval returns the engine step period.
func (c CrushConfig) TickInterval() time.Duration {
	return time.Duration(c.Engine.TickIntervalMS) * time.Millisecond
}

// CascadePolicy returns the parsed cascade policy, paced when unset or invalid.
func (c CrushConfig) CascadePolicy() match3.CascadePolicy {
	p, err := match3.ParseCascadePolicy(c.Engine.Cascade)
	if err != nil {
		return match3.CascadePaced
	}
	return p
}

// Style is a resolved palette entry.
type Style struct {
	Glyph rune
	Color core.Color
}

// Styles resolves the palette into a lookup indexed by token. Unknown or missing
// entries fall back to the token's glyph in the default color.
func (c CrushConfig) Styles() [match3.Kinds + 1]Style {
	var out [match3.Kinds + 1]Style
	for _, tok := range match3.AllTokens() {
		out[tok] = Style{Glyph: tok.Char()}
	}
	out[match3.Empty] = Style{Glyph: ' '}

	for _, p := range c.Palette {
		tok, ok := match3.ParseToken(p.Name)
		if !ok || !tok.Valid() {
			continue
		}
		s := out[tok]
		if r, _ := utf8.DecodeRuneInString(p.Glyph); r != utf8.RuneError {
			s.Glyph = r
		}
		if col, ok := core.ParseColor(p.Color); ok {
			s.Color = col
		}
		out[tok] = s
	}
	return out
}
