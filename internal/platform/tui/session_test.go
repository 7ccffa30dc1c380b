package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-crush/internal/storage"
)

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected SessionModel", next)
	}
	return sm, cmd
}

func TestSessionFlow(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), "ann")

	m, cmd := sessionUpdate(t, m, keyMsg("enter"))
	if m.screen != screenGame {
		t.Fatalf("screen = %v after select, expected game", m.screen)
	}
	if cmd == nil {
		t.Error("starting a game did not schedule a tick")
	}

	m, _ = sessionUpdate(t, m, keyMsg("b"))
	if m.screen != screenMenu || m.quitting {
		t.Fatalf("screen = %v, quitting = %v after back, expected menu", m.screen, m.quitting)
	}

	m, _ = sessionUpdate(t, m, keyMsg("tab"))
	if m.screen != screenScores {
		t.Fatalf("screen = %v after tab, expected scores", m.screen)
	}

	m, _ = sessionUpdate(t, m, keyMsg("esc"))
	if m.screen != screenMenu || m.quitting {
		t.Fatalf("screen = %v, quitting = %v after scoreboard back, expected menu", m.screen, m.quitting)
	}

	m, cmd = sessionUpdate(t, m, keyMsg("q"))
	if !m.quitting || cmd == nil {
		t.Error("q did not quit the session")
	}
	if m.View() != "" {
		t.Error("View() not empty after quit")
	}
}

func TestSessionQuitFromGame(t *testing.T) {
	m := NewSessionModel(nil, testRuntime(), "ann")
	m, _ = sessionUpdate(t, m, keyMsg("enter"))
	m, cmd := sessionUpdate(t, m, keyMsg("q"))

	if !m.quitting || cmd == nil {
		t.Error("q in a game did not quit the session")
	}
}

func TestMenuShowsHighScore(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveResult(storage.Result{GameID: stubID, Player: "ann", Score: 42}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	view := NewMenuModel(store, testRuntime()).View()
	if !strings.Contains(view, "Stub") || !strings.Contains(view, "42") {
		t.Errorf("menu view misses the mode or its best score:\n%s", view)
	}
}

func TestScoreboardShowsScores(t *testing.T) {
	store := openTestStore(t)
	for _, r := range []storage.Result{
		{GameID: stubID, Player: "ann", Score: 30, Moves: 4},
		{GameID: stubID, Player: "bob", Score: 12, Moves: 2},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	view := m.View()
	for _, want := range []string{"ann", "bob", "30", "7.5", "6.0", "2 games"} {
		if !strings.Contains(view, want) {
			t.Errorf("scoreboard view misses %q:\n%s", want, view)
		}
	}

	next, _ := m.Update(keyMsg("b"))
	if sb := next.(ScoreboardModel); !sb.IsGoingBack() || sb.IsQuitting() {
		t.Error("b should leave the scoreboard without quitting")
	}
}

func TestPerMove(t *testing.T) {
	tests := []struct {
		score, moves int
		expected     string
	}{
		{0, 0, "-"},
		{12, 0, "-"},
		{12, 3, "4.0"},
		{25, 4, "6.2"},
	}

	for _, tt := range tests {
		if got := perMove(tt.score, tt.moves); got != tt.expected {
			t.Errorf("perMove(%d, %d) = %q, expected %q", tt.score, tt.moves, got, tt.expected)
		}
	}
}

func TestScoreboardEmptyStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)
	view := m.View()
	if !strings.Contains(view, "No scores recorded yet.") || !strings.Contains(view, "no games yet") {
		t.Errorf("empty scoreboard view:\n%s", view)
	}

	next, _ := m.Update(keyMsg("tab"))
	if sb := next.(ScoreboardModel); sb.mode != 0 {
		t.Errorf("mode = %d after tab with one mode, expected 0", sb.mode)
	}
}
