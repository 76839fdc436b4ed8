package tui

import (
	"github.com/MKhiriev/go-note-keeper/internal/view"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#d93025"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#188038"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	selectedStyle   = lipgloss.NewStyle().Reverse(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(cardWidth).
			Foreground(lipgloss.Color("#202124"))
)

const cardWidth = 28

// cardBorderColors follows the card precedence completed, pinned, overdue,
// due today.
var cardBorderColors = map[view.CardStyle]lipgloss.Color{
	view.CardNormal:    lipgloss.Color("#dadce0"),
	view.CardDueToday:  lipgloss.Color("#f9ab00"),
	view.CardOverdue:   lipgloss.Color("#d93025"),
	view.CardPinned:    lipgloss.Color("#1a73e8"),
	view.CardCompleted: lipgloss.Color("#188038"),
}

var urgencyStyles = map[view.Urgency]lipgloss.Style{
	view.UrgencyNormal:   lipgloss.NewStyle(),
	view.UrgencyDueToday: lipgloss.NewStyle().Foreground(lipgloss.Color("#f9ab00")).Bold(true),
	view.UrgencyOverdue:  lipgloss.NewStyle().Foreground(lipgloss.Color("#d93025")).Bold(true),
}

// styleForCard renders an item card: background is the item color, the
// border carries the card style.
func styleForCard(style view.CardStyle, color string, selected bool) lipgloss.Style {
	s := cardStyle.
		BorderForeground(cardBorderColors[style]).
		Background(lipgloss.Color(color))
	if selected {
		s = s.BorderStyle(lipgloss.ThickBorder())
	}
	if style == view.CardCompleted {
		s = s.Strikethrough(true)
	}
	return s
}
