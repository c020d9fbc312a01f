package play

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/snek/internal/logger"
	"github.com/vinser/snek/internal/point"
	"github.com/vinser/snek/internal/render"
	"github.com/vinser/snek/internal/snake"
	"github.com/vinser/snek/internal/sound"
	"github.com/vinser/snek/internal/style"
)

const (
	cellChars    = 2 // terminal columns per grid cell
	headerRows   = 2
	footerRows   = 1
	barRows      = 1
	scrollMargin = 3 // cells kept between the head and the viewport edge
)

// Viewport represents the visible window over the unbounded grid, in cells.
type Viewport struct {
	StartX, StartY int
	Width, Height  int
}

// TerminalDimensions holds the terminal size information
type TerminalDimensions struct {
	Width  int
	Height int
}

type Model struct {
	chain        *snake.Chain
	soundManager *sound.Manager
	interval     time.Duration
	tag          int
	ticks        int
	lastMoved    point.Point // direction of the head's last step
	paused       bool
	terminal     TerminalDimensions
	viewport     Viewport
}

// TickMsg advances the chain by one step.
// Ticks carrying a stale tag are dropped, so pausing never leaves two tick loops running.
type TickMsg struct {
	Time time.Time
	tag  int
}

func tick(interval time.Duration, tag int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, tag: tag}
	})
}

// WindowSizeMsg is a message sent when the terminal is resized.
type WindowSizeMsg struct {
	Width  int
	Height int
}

// New returns a new play model driving chain every interval.
func New(chain *snake.Chain, sm *sound.Manager, interval time.Duration) Model {
	m := Model{
		chain:        chain,
		soundManager: sm,
		interval:     interval,
		lastMoved:    chain.Direction(),
		terminal:     TerminalDimensions{Width: 80, Height: 24}, // Default minimal size
	}
	m.resizeViewport()
	m.centerViewportOnHead()
	return m
}

func (m Model) Init() tea.Cmd {
	return tick(m.interval, m.tag)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case WindowSizeMsg:
		m.terminal.Width = msg.Width
		m.terminal.Height = msg.Height
		m.resizeViewport()
		m.centerViewportOnHead()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		if msg.tag != m.tag || m.paused {
			return m, nil
		}
		m.step()
		return m, tick(m.interval, m.tag)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()
	if key == "p" {
		m.playSound(sound.PAUSE)
		return m.SetPaused(!m.paused)
	}
	if m.paused {
		return m, nil
	}

	switch key {
	case "g", " ":
		m.chain.Grow()
		m.playSound(sound.GROW)
		logger.Log.Infow("snake grew", "len", m.chain.Len(), "tail", m.chain.Tail().Position())
		return m, nil
	}

	dir, ok := keyDirection(key)
	if !ok || dir == m.chain.Direction() {
		return m, nil
	}
	// Turning back onto the neck would fold the head into the body.
	if m.chain.Len() > 1 && dir == point.Reverse(m.lastMoved) {
		return m, nil
	}
	if err := m.chain.SetDirection(dir); err != nil {
		logger.Log.Errorw("direction rejected", "dir", dir, "err", err)
		return m, nil
	}
	m.playSound(sound.TURN)
	return m, nil
}

func (m Model) playSound(name string) {
	if err := m.soundManager.Play(name); err != nil {
		logger.Log.Debugw("sound not played", "name", name, "err", err)
	}
}

// SetPaused stops or restarts the tick loop.
func (m Model) SetPaused(paused bool) (Model, tea.Cmd) {
	if m.paused == paused {
		return m, nil
	}
	m.paused = paused
	m.tag++
	logger.Log.Infow("pause toggled", "paused", m.paused, "ticks", m.ticks)
	if m.paused {
		return m, nil
	}
	return m, tick(m.interval, m.tag)
}

// keyDirection maps arrow keys and wasd to a direction.
func keyDirection(key string) (point.Point, bool) {
	switch key {
	case "up", "w", "W":
		return point.Up, true
	case "down", "s", "S":
		return point.Down, true
	case "left", "a", "A":
		return point.Left, true
	case "right", "d", "D":
		return point.Right, true
	}
	return point.None, false
}

// step runs one chain update and scrolls the view after the head.
func (m *Model) step() {
	m.chain.Update()
	m.lastMoved = m.chain.Direction()
	m.ticks++
	m.followHead()
	logger.Log.Debugw("tick", "n", m.ticks, "head", m.chain.Position(), "dir", point.Name(m.lastMoved))
}

func (m Model) Chain() *snake.Chain {
	return m.chain
}

func (m Model) Paused() bool {
	return m.paused
}

func (m Model) Ticks() int {
	return m.ticks
}

func (m Model) Viewport() Viewport {
	return m.viewport
}

// cellOf converts a grid position to the cell holding it.
func (m Model) cellOf(p point.Point) point.Point {
	size := m.chain.CellSize()
	return point.New(floorDiv(p.X, size), floorDiv(p.Y, size))
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// resizeViewport fits the viewport to the terminal.
func (m *Model) resizeViewport() {
	m.viewport.Width = max(m.terminal.Width/cellChars, 1)
	m.viewport.Height = max(m.terminal.Height-headerRows-footerRows-barRows, 1)
}

// centerViewportOnHead centers the viewport on the head's cell.
func (m *Model) centerViewportOnHead() {
	head := m.cellOf(m.chain.Position())
	m.viewport.StartX = head.X - m.viewport.Width/2
	m.viewport.StartY = head.Y - m.viewport.Height/2
}

// followHead recenters once the head gets too close to an edge.
func (m *Model) followHead() {
	head := m.cellOf(m.chain.Position())
	marginX := min(scrollMargin, m.viewport.Width/2)
	marginY := min(scrollMargin, m.viewport.Height/2)
	if head.X < m.viewport.StartX+marginX || head.X >= m.viewport.StartX+m.viewport.Width-marginX ||
		head.Y < m.viewport.StartY+marginY || head.Y >= m.viewport.StartY+m.viewport.Height-marginY {
		m.centerViewportOnHead()
	}
}

// View returns the play field with header and footer.
func (m Model) View() string {
	var sb strings.Builder
	width := m.viewport.Width * cellChars

	sb.WriteString(render.Bar(width))
	sb.WriteString("\n")
	sb.WriteString(m.headerText())
	sb.WriteString("\n")
	m.renderField(&sb)
	sb.WriteString(m.footerText(width))
	return sb.String()
}

func (m Model) headerText() string {
	head := m.chain.Head()
	line1 := fmt.Sprintf("Length: %d  Ticks: %d", m.chain.Len(), m.ticks)
	line2 := fmt.Sprintf("Head: %v  Heading: %s  Tail: %v", head.Position(), point.Name(head.Direction()), m.chain.Tail().Position())
	if m.paused {
		return style.PlayHeader.Render(line1) + "  " + style.Paused.Render("PAUSED") + "\n" + style.Title.Render(line2)
	}
	return style.PlayHeader.Render(line1) + "\n" + style.Title.Render(line2)
}

// renderField draws every visible cell, segments over grid dots.
func (m Model) renderField(sb *strings.Builder) {
	sprites := make(map[point.Point]string, m.chain.Len())
	parts := m.chain.Parts()
	// Draw from the tail so the head wins when segments overlap.
	for i := len(parts) - 1; i >= 0; i-- {
		c := m.cellOf(parts[i].Position())
		if i == 0 {
			sprites[c] = style.SnakeHead.Render(headSprite(parts[i].Direction()))
		} else {
			sprites[c] = style.BodyShade(i).Render("██")
		}
	}
	dot := style.GridDot.Render("· ")
	for y := m.viewport.StartY; y < m.viewport.StartY+m.viewport.Height; y++ {
		for x := m.viewport.StartX; x < m.viewport.StartX+m.viewport.Width; x++ {
			if s, ok := sprites[point.New(x, y)]; ok {
				sb.WriteString(s)
			} else {
				sb.WriteString(dot)
			}
		}
		sb.WriteRune('\n')
	}
}

func headSprite(dir point.Point) string {
	switch dir {
	case point.Up:
		return "▲▲"
	case point.Down:
		return "▼▼"
	case point.Left:
		return "◀◀"
	case point.Right:
		return "▶▶"
	}
	return "██"
}

func (m Model) footerText(width int) string {
	var footer string
	if m.paused {
		footer = "p — resume, ? — help, q — quit"
	} else {
		footer = "← ↑ ↓ → — steer, g — grow, p — pause, m — mute, ? — help, q — quit"
	}
	if pad := width - len([]rune(footer)); pad > 0 {
		footer += strings.Repeat("/", pad)
	}
	return style.Footer.Render(footer)
}
