package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/snek/internal/style"
)

// Bar renders the slash pattern drawn above every page.
func Bar(width int) string {
	if width < 0 {
		width = 0
	}
	return style.TopPattern.Render(strings.Repeat("/", width))
}

// Page renders page with title at the top, content block and footer at the bottom.
// Style of content is left intact.
func Page(title, renderedContent, footer string, width, height, termWidth, termHeight int) string {
	renderedTopPattern := Bar(width)
	renderedTitle := style.Title.Render(title)
	renderedFooter := style.Footer.Render(footer)

	// Content is centered vertically in whatever the title and footer leave over
	availableHeight := height - lipgloss.Height(renderedTopPattern) - lipgloss.Height(renderedTitle) - lipgloss.Height(renderedFooter)
	centeredContent := lipgloss.PlaceVertical(availableHeight, lipgloss.Center, renderedContent)

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		renderedTopPattern,
		renderedTitle,
		centeredContent,
		renderedFooter,
	)
	if termWidth > 0 && termHeight > 0 {
		return lipgloss.Place(termWidth, termHeight, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}
