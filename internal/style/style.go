package style

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Play field
	SnakeHead  = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true) // Bright yellow
	GridDot    = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	PlayHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82")) // Green
	Paused     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("204"))

	// Page styles
	TopPattern = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))            // Pinkish-reddish purple
	Title      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("228")) // Bright yellow
	Content    = lipgloss.NewStyle()
	Footer     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type RGB struct {
	R int
	G int
	B int
}

var RGBColor = map[string]RGB{
	"green":  {0, 255, 0},
	"yellow": {255, 255, 0},
}

// GenerateHexColor generates hexadcimal string for a given RGB values. r, g, b sould be in the range 0-255
// Format: #RRGGBB
func GenerateHexColor(r, g, b int) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

const (
	fadeMin  = 96
	fadeStep = 12
)

// BodyShade fades a body segment's color the further it is from the head.
func BodyShade(index int) lipgloss.Style {
	c := RGBColor["green"]
	g := c.G - index*fadeStep
	if g < fadeMin {
		g = fadeMin
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(GenerateHexColor(c.R, g, c.B)))
}
