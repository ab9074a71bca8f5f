package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles maps cell attributes to terminal styles
type Styles struct {
	Normal  lipgloss.Style
	Reverse lipgloss.Style
	Bold    lipgloss.Style
	Border  lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Normal:  lipgloss.NewStyle(),
		Reverse: lipgloss.NewStyle().Reverse(true),
		Bold:    lipgloss.NewStyle().Bold(true),
		Border:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// For returns the style used to draw cells with attr
func (s *Styles) For(attr Attr) lipgloss.Style {
	switch attr {
	case AttrReverse:
		return s.Reverse
	case AttrBold:
		return s.Bold
	case AttrBorder:
		return s.Border
	default:
		return s.Normal
	}
}
