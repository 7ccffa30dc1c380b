package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-crush/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "crush")
	s.DrawText(1, 1, "●◆")

	if got, expected := RenderScreen(s), s.String(); got != expected {
		t.Errorf("RenderScreen() = %q, expected %q", got, expected)
	}
}

func TestRenderScreenStyled(t *testing.T) {
	s := core.NewScreen(8, 3)
	s.SetColor(0, 0, '●', core.ColorBlue)
	s.SetColor(1, 0, '■', core.ColorRed)
	s.SetColor(2, 0, '■', core.ColorRed)
	s.Highlight(core.NewRect(0, 1, 4, 1))
	s.SetColor(0, 2, '?', core.Color(200)) // Unknown colors fall back to default

	out := RenderScreen(s)

	if lines := strings.Count(out, "\n"); lines != 2 {
		t.Errorf("RenderScreen() has %d line breaks, expected 2", lines)
	}
	for _, r := range []string{"●", "■■", "?"} {
		if !strings.Contains(out, r) {
			t.Errorf("RenderScreen() missing %q", r)
		}
	}
}

func TestCellStyle(t *testing.T) {
	if !cellStyle(core.ColorRed, true).GetReverse() {
		t.Error("cellStyle(reverse) not reversed")
	}
	if cellStyle(core.ColorRed, false).GetReverse() {
		t.Error("cellStyle() reversed")
	}
	if cellStyle(core.ColorRed, true).GetForeground() != colorStyles[core.ColorRed].GetForeground() {
		t.Error("reverse lost the foreground color")
	}
}
