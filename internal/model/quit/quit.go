package quit

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/snek/internal/render"
)

const quitPeriod = 1500 * time.Millisecond

type Model struct {
	length     int
	ticks      int
	quitUntil  time.Time
	termWidth  int
	termHeight int
}

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type TimedoutMsg struct{}

func timedoutCmd() tea.Cmd {
	return func() tea.Msg {
		return TimedoutMsg{}
	}
}

// New returns the farewell screen for a snake of the given length.
func New(length, ticks int) Model {
	return Model{
		length:    length,
		ticks:     ticks,
		quitUntil: time.Now().Add(quitPeriod),
	}
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); !ok {
		return m, nil
	}
	if time.Now().After(m.quitUntil) {
		return m, timedoutCmd()
	}
	return m, tick()
}

const footer = "Bye!"

func (m Model) View() string {
	content := fmt.Sprintf("\nYour snake grew to %d segments in %d moves.\n", m.length, m.ticks)
	return render.Page("See you", content, footer, 40, 8, m.termWidth, m.termHeight)
}
