package splitview

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Pane         lipgloss.Style
	FocusedPane  lipgloss.Style
	Gutter       lipgloss.Style
	ActiveGutter lipgloss.Style
	Status       lipgloss.Style
}

func DefaultStyles() Styles {
	pane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Align(lipgloss.Center, lipgloss.Center)
	return Styles{
		Pane: pane,
		FocusedPane: pane.
			BorderForeground(lipgloss.Color("212")),
		Gutter: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		ActiveGutter: lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
	}
}
