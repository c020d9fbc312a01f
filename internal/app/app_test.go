package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/snek/internal/config"
	"github.com/vinser/snek/internal/model/about"
	"github.com/vinser/snek/internal/model/play"
	"github.com/vinser/snek/internal/point"
)

func newApp(t *testing.T) Model {
	t.Helper()
	cfg := config.Default()
	cfg.StartX, cfg.StartY = 2, 2
	m, err := New(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return am, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Direction = "sideways"
	if _, err := New(cfg, nil); err == nil {
		t.Fatal("New accepted a bad direction")
	}
}

func TestPlayReceivesTicks(t *testing.T) {
	m := newApp(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if got := m.play.Chain().Position(); got != point.New(20, 20) {
		t.Fatalf("head at %v", got)
	}
	m, _ = update(t, m, m.Init()())
	if got := m.play.Chain().Position(); got != point.New(10, 20) {
		t.Fatalf("head at %v after a tick", got)
	}
	if !strings.Contains(m.View(), "Length: 3") {
		t.Error("gameplay view missing header")
	}
}

func TestAboutPausesPlay(t *testing.T) {
	m := newApp(t)
	m, _ = update(t, m, runes("?"))
	if m.status != statusAbout || !m.play.Paused() {
		t.Fatalf("status = %d, paused = %v", m.status, m.play.Paused())
	}
	if !strings.Contains(m.View(), "About") {
		t.Error("about view not shown")
	}
	m, cmd := update(t, m, about.CloseAboutMsg{})
	if m.status != statusGameplay || m.play.Paused() {
		t.Fatalf("status = %d, paused = %v", m.status, m.play.Paused())
	}
	if _, ok := cmd().(play.TickMsg); !ok {
		t.Error("closing about did not restart ticking")
	}
}

func TestAboutKeepsPause(t *testing.T) {
	m := newApp(t)
	m, _ = update(t, m, runes("p"))
	m, _ = update(t, m, runes("?"))
	m, cmd := update(t, m, about.CloseAboutMsg{})
	if !m.play.Paused() || cmd != nil {
		t.Error("closing about resumed a paused game")
	}
}

func TestQuit(t *testing.T) {
	m := newApp(t)
	m, cmd := update(t, m, runes("q"))
	if m.status != statusQuitting || cmd == nil {
		t.Fatalf("status = %d", m.status)
	}
	if !strings.Contains(m.View(), "3 segments in 0 moves") {
		t.Errorf("quit view:\n%s", m.View())
	}
	_, cmd = update(t, m, runes("q"))
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("second q did not quit")
	}
}

func TestCtrlC(t *testing.T) {
	m := newApp(t)
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c did not quit")
	}
}

func TestMuteWithoutSound(t *testing.T) {
	m := newApp(t)
	m, cmd := update(t, m, runes("m"))
	if cmd != nil || m.status != statusGameplay {
		t.Error("mute toggle misbehaved without a sound manager")
	}
}
