package output

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("244"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	upStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
	downStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	// Cores por status, alinhadas às cores dos badges do painel web
	statusStyles = map[string]lipgloss.Style{
		"New":         lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		"Contacted":   lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		"Qualified":   lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		"Proposal":    lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
		"Active":      lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		"Prospect":    lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		"Inactive":    lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		"On Track":    lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		"At Risk":     lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		"Confirmed":   lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		"Lost":        lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		"Closed Won":  lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		"Closed Lost": lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
	}

	bandStyles = map[string]lipgloss.Style{
		"high":     lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		"medium":   lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		"low":      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		"very-low": lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}

	urgencyStyles = map[string]lipgloss.Style{
		"Overdue":         lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		"Due This Month":  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		"Due Next Month":  lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		"Due in 3 Months": lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		"Future Renewals": lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
	}
)

// DisableColor remove todo o estilo da saída
func DisableColor() {
	plain := lipgloss.NewStyle()
	titleStyle = plain.Bold(true)
	headerStyle = plain
	dimStyle = plain
	upStyle = plain
	downStyle = plain
	statusStyles = map[string]lipgloss.Style{}
	bandStyles = map[string]lipgloss.Style{}
	urgencyStyles = map[string]lipgloss.Style{}
}

func styled(value string, styles map[string]lipgloss.Style) string {
	if style, ok := styles[value]; ok {
		return style.Render(value)
	}
	return value
}
