// Package styles holds the lipgloss palette shared by the interactive screens
// and the CLI's styled output.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/dialogorithm/internal/event"
)

var (
	// Colors - all meet WCAG AA contrast (4.5:1) on both black and dark surfaces
	PrimaryColor   = lipgloss.Color("#A78BFA") // Purple
	SecondaryColor = lipgloss.Color("#10B981") // Green
	WarningColor   = lipgloss.Color("#F59E0B") // Amber
	ErrorColor     = lipgloss.Color("#F87171") // Red
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray
	TextColor      = lipgloss.Color("#F9FAFB") // Light text
	BorderColor    = lipgloss.Color("#6B7280") // Gray
	InfoColor      = lipgloss.Color("#60A5FA") // Blue

	Primary   = lipgloss.NewStyle().Foreground(PrimaryColor)
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Warning   = lipgloss.NewStyle().Foreground(WarningColor)
	Error     = lipgloss.NewStyle().Foreground(ErrorColor)
	Muted     = lipgloss.NewStyle().Foreground(MutedColor)
	Text      = lipgloss.NewStyle().Foreground(TextColor)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		MarginBottom(1)

	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(BorderColor).
		MarginBottom(1).
		PaddingBottom(1)

	// Field labels in the form
	FieldLabel = lipgloss.NewStyle().
			Foreground(MutedColor)

	FieldLabelActive = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true)

	// Formatted number preview
	Preview = lipgloss.NewStyle().
		Foreground(SecondaryColor).
		Bold(true)

	HelpBar = lipgloss.NewStyle().
		Foreground(MutedColor).
		MarginTop(1)

	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(SecondaryColor)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	SuccessMsg = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	WarningMsg = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	DropdownContainer = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(PrimaryColor).
				Padding(0, 1).
				MarginTop(1)

	DropdownItem = lipgloss.NewStyle().
			Foreground(TextColor).
			Padding(0, 1)

	DropdownItemSelected = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(PrimaryColor).
				Bold(true).
				Padding(0, 1)

	// Table headings in CLI listings
	TableHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)
)

// StageColor returns the color for a generation stage.
func StageColor(stage event.Stage) lipgloss.Color {
	switch stage {
	case event.StageValidate, event.StageCompose, event.StageVerify:
		return InfoColor
	case event.StageRender:
		return WarningColor
	case event.StageDone:
		return SecondaryColor
	case event.StageFailed:
		return ErrorColor
	default:
		return MutedColor
	}
}

// StageIcon returns an icon for a generation stage.
func StageIcon(stage event.Stage) string {
	switch stage {
	case event.StageValidate:
		return "○"
	case event.StageCompose, event.StageVerify, event.StageRender:
		return "●"
	case event.StageDone:
		return "✓"
	case event.StageFailed:
		return "✗"
	default:
		return "·"
	}
}

// Stage renders a stage name with its icon and color.
func Stage(stage event.Stage) string {
	return lipgloss.NewStyle().
		Foreground(StageColor(stage)).
		Render(StageIcon(stage) + " " + string(stage))
}
