// SPDX-License-Identifier: MPL-2.0

package cmd

import "github.com/charmbracelet/lipgloss"

// Palette. Styles degrade to plain text when output is not a terminal, so
// scripts parsing zap output never see escape codes.
var (
	colorBlue   = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"}
	colorYellow = lipgloss.AdaptiveColor{Light: "#A16207", Dark: "#FACC15"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "#047857", Dark: "#34D399"}
	colorRed    = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}
	colorGray   = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}
)

var (
	// TitleStyle marks section headers such as ">> Available Python interpreters:".
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	// SubtitleStyle is for secondary text.
	SubtitleStyle = lipgloss.NewStyle().Foreground(colorGray)
	SuccessStyle  = lipgloss.NewStyle().Foreground(colorGreen)
	ErrorStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	WarningStyle  = lipgloss.NewStyle().Foreground(colorYellow)
	// CmdStyle highlights commands the user can copy and run.
	CmdStyle = lipgloss.NewStyle().Foreground(colorYellow).Italic(true)
)
