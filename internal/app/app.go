package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/snek/internal/config"
	"github.com/vinser/snek/internal/logger"
	"github.com/vinser/snek/internal/model/about"
	"github.com/vinser/snek/internal/model/play"
	"github.com/vinser/snek/internal/model/quit"
	"github.com/vinser/snek/internal/sound"
)

type status uint

const (
	statusGameplay status = iota
	statusAbout
	statusQuitting
)

type Model struct {
	status       status
	config       *config.Config
	soundManager *sound.Manager
	// models
	play  play.Model
	about about.Model
	quit  quit.Model
	// pause state to restore when the about page closes
	wasPaused bool
	// terminal size cache
	termWidth  int
	termHeight int
}

// New builds the app for cfg. sm may be nil when no audio device is available.
func New(cfg *config.Config, sm *sound.Manager) (Model, error) {
	chain, err := cfg.NewChain()
	if err != nil {
		return Model{}, err
	}
	if cfg.Mute {
		sm.Mute()
	}
	logger.Log.Infow("snake placed",
		"head", chain.Position(), "dir", chain.Direction(), "len", chain.Len(),
		"cell", chain.CellSize(), "tick", cfg.Tick)
	return Model{
		status:       statusGameplay,
		config:       cfg,
		soundManager: sm,
		play:         play.New(chain, sm, cfg.Tick),
	}, nil
}

func (m Model) Init() tea.Cmd {
	return m.play.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q": // show the farewell screen, then quit
			if m.status == statusQuitting {
				return m, tea.Quit
			}
			m.status = statusQuitting
			m.quit = quit.New(m.play.Chain().Len(), m.play.Ticks())
			m.quit.SetSize(m.termWidth, m.termHeight)
			m.play, _ = m.play.SetPaused(true)
			logger.Log.Infow("quitting", "len", m.play.Chain().Len(), "ticks", m.play.Ticks())
			return m, m.quit.Init()
		case "m": // mute/unmute
			if m.soundManager.Muted() {
				m.soundManager.Unmute()
			} else {
				m.soundManager.Mute()
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		// Always remember the latest terminal size
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.play, cmd = m.play.Update(play.WindowSizeMsg{Width: msg.Width, Height: msg.Height})
		m.about.SetSize(msg.Width, msg.Height)
		m.quit.SetSize(msg.Width, msg.Height)
		return m, tea.Batch(cmd, tea.ClearScreen)
	}

	switch m.status {
	case statusGameplay:
		if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "?" {
			m.status = statusAbout
			m.wasPaused = m.play.Paused()
			m.play, _ = m.play.SetPaused(true)
			m.about = about.New()
			m.about.SetSize(m.termWidth, m.termHeight)
			return m, m.about.Init()
		}
		m.play, cmd = m.play.Update(msg)
	case statusAbout:
		switch msg.(type) {
		case about.CloseAboutMsg:
			m.status = statusGameplay
			m.play, cmd = m.play.SetPaused(m.wasPaused)
		default:
			m.about, cmd = m.about.Update(msg)
		}
	case statusQuitting:
		switch msg.(type) {
		case quit.TimedoutMsg:
			return m, tea.Quit
		default:
			m.quit, cmd = m.quit.Update(msg)
		}
	}
	return m, cmd
}

func (m Model) View() string {
	switch m.status {
	case statusGameplay:
		return m.play.View()
	case statusAbout:
		return m.about.View()
	case statusQuitting:
		return m.quit.View()
	}
	return ""
}
