package about

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/snek/internal/embeddata"
	"github.com/vinser/snek/internal/logger"
	"github.com/vinser/snek/internal/render"
)

const (
	defaultWidth  = 72
	defaultHeight = 20
	pageChrome    = 3 // top bar, title and footer
)

type Model struct {
	width      int
	height     int
	termWidth  int
	termHeight int

	viewport viewport.Model
}

type CloseAboutMsg struct{}

func closeAboutCmd() tea.Cmd {
	return func() tea.Msg {
		return CloseAboutMsg{}
	}
}

func New() Model {
	width := max(defaultWidth, lipgloss.Width(footer))
	bytes, err := embeddata.ReadAboutMD()
	if err != nil {
		logger.Log.Errorw("about page not embedded", "err", err)
		bytes = []byte("# snek")
	}

	vp := viewport.New(width, defaultHeight-pageChrome)
	vp.Style = lipgloss.NewStyle()
	const glamourGutter = 2
	vp.SetContent(glamContent(string(bytes), width, vp.Style.GetHorizontalFrameSize(), glamourGutter))

	return Model{
		width:    width,
		height:   defaultHeight,
		viewport: vp,
	}
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
	if defaultHeight > height {
		m.height = max(height, pageChrome+1)
	} else {
		m.height = defaultHeight
	}
	m.viewport.Height = m.height - pageChrome
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "?":
			return m, closeAboutCmd()
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

const footer = "↑ ↓ — scroll, esc — back, q — quit"

func (m Model) View() string {
	return render.Page("About", m.viewport.View(), footer, m.width, m.height, m.termWidth, m.termHeight)
}

func glamContent(content string, width, frame, gutter int) string {
	renderWidth := width - frame - gutter
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(renderWidth),
	)
	if err != nil {
		return content //noop
	}
	str, err := r.Render(content)
	if err != nil {
		return content //noop
	}
	return str
}
