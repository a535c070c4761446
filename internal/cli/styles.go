package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/wolfman30/slot-booking/internal/form"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	failureStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

func renderNotice(n form.Notice) string {
	if n.OK() {
		return successStyle.Render(n.Text)
	}
	return failureStyle.Render("[" + string(n.Kind) + "] " + n.Text)
}
