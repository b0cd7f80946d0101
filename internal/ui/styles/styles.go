package styles

import "charm.land/lipgloss/v2"

// Style functions read the active theme so Init can be called after
// package initialization.

// TitleStyle renders section titles.
func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(currentTheme.Primary).Bold(true)
}

// AccentStyle renders selected/highlighted items.
func AccentStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(currentTheme.Accent).Bold(true)
}

// SuccessStyle renders positive outcomes.
func SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(currentTheme.Success)
}

// ErrorStyle renders error messages.
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(currentTheme.Error)
}

// MutedStyle renders help text and inactive items.
func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(currentTheme.Muted)
}

// NormalStyle renders standard text.
func NormalStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(currentTheme.Normal)
}

// InfoStyle renders informational text.
func InfoStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(currentTheme.Info).Italic(true)
}

// WarningStyle renders warnings such as out-of-range hints.
func WarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(currentTheme.Warning)
}

// BorderStyle renders a rounded border box in the primary color.
func BorderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(currentTheme.Primary).
		Padding(0, 1)
}
