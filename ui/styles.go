package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	Purple    = lipgloss.Color("#7C3AED")
	Cyan      = lipgloss.Color("#06B6D4")
	Green     = lipgloss.Color("#10B981")
	Amber     = lipgloss.Color("#F59E0B")
	Red       = lipgloss.Color("#EF4444")
	Gray      = lipgloss.Color("#6B7280")
	DarkGray  = lipgloss.Color("#374151")
	LightGray = lipgloss.Color("#9CA3AF")
	White     = lipgloss.Color("#F9FAFB")
)

// Common styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(Purple).
			Padding(0, 1).
			Bold(true)

	ProviderStyle = lipgloss.NewStyle().
			Foreground(Cyan).
			Bold(true)

	ModelStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DarkGray).
			Padding(0, 1)

	StatStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	ToolStyle = lipgloss.NewStyle().
			Foreground(Gray)

	TextStyle = lipgloss.NewStyle().
			Foreground(White)

	IdleStyle = lipgloss.NewStyle().
			Foreground(Amber)

	SucceededStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	FailedStyle = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	StoppingStyle = lipgloss.NewStyle().
			Foreground(Amber).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Gray)
)
