package console

import "github.com/charmbracelet/lipgloss"

type styles struct {
	step  lipgloss.Style
	done  lipgloss.Style
	warn  lipgloss.Style
	error lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		step:  r.NewStyle().Foreground(lipgloss.Color("6")),
		done:  r.NewStyle().Foreground(lipgloss.Color("2")),
		warn:  r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		error: r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}
