package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/SimoKiihamaki/nexa/internal/shell"
)

var (
	colPink    = lipgloss.AdaptiveColor{Light: "#E91E63", Dark: "#F06292"}
	colPurple  = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}
	colGreen   = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#50FA7B"}
	colRed     = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#FF5555"}
	colYellow  = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#F1FA8C"}
	colCyan    = lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#8BE9FD"}
	colDimGray = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#4B5563"}
	colText    = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#F3F4F6"}
	colSurface = lipgloss.AdaptiveColor{Light: "#FCE7F3", Dark: "#2A1B2E"}
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colText)
	tabActive     = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(colPink)
	tabInactive   = lipgloss.NewStyle().Faint(true)
	subtitleStyle = lipgloss.NewStyle().Faint(true)
	sectionTitle  = lipgloss.NewStyle().Bold(true).MarginTop(1).MarginBottom(0)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	linkStyle     = lipgloss.NewStyle().Foreground(colPink).Bold(true).Underline(true)
	errorStyle    = lipgloss.NewStyle().Foreground(colRed)
	okStyle       = lipgloss.NewStyle().Foreground(colGreen)
	borderStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colDimGray).Padding(0, 1)
	cardStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colPink).Padding(1, 2)

	logoStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(colPink).Padding(0, 1)
	headerStyle      = lipgloss.NewStyle().Background(colSurface).Foreground(colText)
	headerRoleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colPurple).Background(colSurface).Padding(0, 1)
	headerMutedStyle = lipgloss.NewStyle().Faint(true).Background(colSurface).Padding(0, 1)
	headerUserStyle  = lipgloss.NewStyle().Foreground(colPink).Background(colSurface).Padding(0, 1)

	optionStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colDimGray).Padding(0, 2)
	optionActiveStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colPink).Foreground(colPink).Bold(true).Padding(0, 2)

	statLabelStyle = lipgloss.NewStyle().Faint(true)
	statValueStyle = lipgloss.NewStyle().Bold(true).Foreground(colPink)
	badgeStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(colPink).Padding(0, 1)
	priceStyle     = lipgloss.NewStyle().Bold(true).Foreground(colGreen)

	tagPhotoStyle  = lipgloss.NewStyle().Foreground(colPurple).Padding(0, 1)
	tagVideoStyle  = lipgloss.NewStyle().Foreground(colCyan).Padding(0, 1)
	tagReviewStyle = lipgloss.NewStyle().Foreground(colGreen).Padding(0, 1)

	statusInfoStyle    = lipgloss.NewStyle().Foreground(colCyan)
	statusWarnStyle    = lipgloss.NewStyle().Foreground(colYellow).Bold(true)
	statusErrorStyle   = lipgloss.NewStyle().Foreground(colRed).Bold(true)
	statusSuccessStyle = lipgloss.NewStyle().Foreground(colGreen).Bold(true)

	helpBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colPurple).Padding(0, 1)
	helpBoxTitle   = lipgloss.NewStyle().Bold(true).Foreground(colPurple)
	helpKeyStyle   = lipgloss.NewStyle().Bold(true).Foreground(colPink).Width(14)
	helpLabelStyle = lipgloss.NewStyle()

	boxTitleStyle      = lipgloss.NewStyle().Bold(true).Foreground(colPink)
	choiceStyle        = lipgloss.NewStyle().Bold(true).Foreground(colGreen)
	stepConnectorStyle = lipgloss.NewStyle().Foreground(colDimGray)
	stepCompleteStyle  = lipgloss.NewStyle().Foreground(colGreen)
	stepActiveStyle    = lipgloss.NewStyle().Foreground(colPink).Bold(true)
	stepPendingStyle   = lipgloss.NewStyle().Faint(true)
)

// navStyles themes the role shells' navigation panel with this palette.
var navStyles = shell.NavStyles{
	Item:    lipgloss.NewStyle().Foreground(colText).Padding(0, 1),
	Current: lipgloss.NewStyle().Foreground(colPink).Bold(true).Padding(0, 1),
	Cursor:  lipgloss.NewStyle().Background(colPink).Foreground(lipgloss.Color("#FFFFFF")).Padding(0, 1),
	Hint:    lipgloss.NewStyle().Foreground(colDimGray).Padding(0, 1),
	Box:     lipgloss.NewStyle().Background(colSurface).Padding(1, 0),
	Overlay: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colPink).Padding(1, 2),
}

func tagStyle(tag string) lipgloss.Style {
	switch tag {
	case "Photo":
		return tagPhotoStyle
	case "Video":
		return tagVideoStyle
	case "Review":
		return tagReviewStyle
	default:
		return helpStyle
	}
}
