package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title    lipgloss.Style
	Creator  lipgloss.Style
	Category lipgloss.Style
	Blurb    lipgloss.Style
	Dim      lipgloss.Style
	Status   lipgloss.Style
	Drag     lipgloss.Style
	InFlight lipgloss.Style
	Dots     lipgloss.Style
	Help     lipgloss.Style
	Main     lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Creator:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Category: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Blurb: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Drag:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		InFlight: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		Dots:     lipgloss.NewStyle().MarginTop(1),
		Help:     lipgloss.NewStyle().Faint(true),
		Main:     lipgloss.NewStyle().Padding(1, 2),
	}
}
