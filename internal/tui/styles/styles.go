// Package styles holds the lipgloss styles shared by the demo TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/spotlight/internal/event"
)

var (
	// Colors - all colors meet WCAG AA contrast (4.5:1) on dark surfaces
	PrimaryColor   = lipgloss.Color("#A78BFA") // Purple
	SecondaryColor = lipgloss.Color("#10B981") // Green
	WarningColor   = lipgloss.Color("#F59E0B") // Amber
	ErrorColor     = lipgloss.Color("#F87171") // Red
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray
	SurfaceColor   = lipgloss.Color("#1F2937") // Dark surface
	TextColor      = lipgloss.Color("#F9FAFB") // Light text
	BorderColor    = lipgloss.Color("#6B7280") // Gray
	BlueColor      = lipgloss.Color("#60A5FA") // Blue

	// Convenience styles for colors
	Primary = lipgloss.NewStyle().Foreground(PrimaryColor)
	Muted   = lipgloss.NewStyle().Foreground(MutedColor)
	Error   = lipgloss.NewStyle().Foreground(ErrorColor)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor)

	// Anchor buttons
	Anchor = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Foreground(TextColor).
		Padding(0, 1)

	AnchorActive = Anchor.
			BorderForeground(PrimaryColor).
			Bold(true)

	// Popover confirm card
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Background(SurfaceColor).
		Foreground(TextColor).
		Padding(0, 1)

	CardHint = lipgloss.NewStyle().
			Foreground(MutedColor).
			Background(SurfaceColor)

	// Tooltip
	Tooltip = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(WarningColor).
		Foreground(TextColor).
		Padding(0, 1)

	// Status line
	StatusBar = lipgloss.NewStyle().
			Foreground(MutedColor)

	// Help bar
	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(SecondaryColor)

	HelpDesc = lipgloss.NewStyle().
			Foreground(MutedColor)
)

// EventColor returns the status line color for an attention event type.
func EventColor(t string) lipgloss.Color {
	switch t {
	case event.TypeClaimRegistered:
		return SecondaryColor
	case event.TypeClaimEvicted:
		return WarningColor
	case event.TypeClaimReleased:
		return BlueColor
	case event.TypeScopeOpened, event.TypeScopeClosed:
		return PrimaryColor
	default:
		return MutedColor
	}
}
