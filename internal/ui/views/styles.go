package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Path        lipgloss.Style
	Header      lipgloss.Style
	Dir         lipgloss.Style
	File        lipgloss.Style
	Hidden      lipgloss.Style
	CutItem     lipgloss.Style
	Match       lipgloss.Style
	Confirm     lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Filter      lipgloss.Style
	Prompt      lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Scroll      lipgloss.Style
	SelectionBg lipgloss.Style
	PopupBox    lipgloss.Style
	HelpBox     lipgloss.Style
	StatusError lipgloss.Style
	StatusBusy  lipgloss.Style
	StatusOK    lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Path:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("241")).Underline(true),
		Dir:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
		File:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Hidden:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		CutItem: lipgloss.NewStyle().Faint(true).Italic(true),
		Match:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Confirm: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		Dim:     lipgloss.NewStyle().Faint(true),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Filter:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		Help:    lipgloss.NewStyle().Faint(true),
		Main:    lipgloss.NewStyle().Padding(0, 1),
		Scroll:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		SelectionBg: lipgloss.NewStyle().
			Background(lipgloss.Color("238")).
			Bold(true),
		PopupBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 2),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(1, 2),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusBusy:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusOK:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}
