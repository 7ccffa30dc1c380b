package config

import (
	_ "embed"
)

//go:embed defaults/crush.yaml
var defaultCrushYAML []byte

// DefaultCrushConfig returns the built-in configuration. It matches the embedded
// defaults/crush.yaml and is used when even that fails to parse.
func DefaultCrushConfig() CrushConfig {
	return CrushConfig{
		Engine: EngineConfig{
			TickIntervalMS: 100,
			Cascade:        "paced",
		},
		Board: BoardConfig{
			CellWidth:  4,
			CellHeight: 2,
			ShowHints:  true,
		},
		Palette: []PaletteEntry{
			{Name: "blue", Glyph: "●", Color: "blue"},
			{Name: "orange", Glyph: "◆", Color: "orange"},
			{Name: "purple", Glyph: "▲", Color: "magenta"},
			{Name: "red", Glyph: "■", Color: "red"},
			{Name: "yellow", Glyph: "★", Color: "yellow"},
			{Name: "green", Glyph: "♣", Color: "green"},
		},
	}
}
