package ui

import "github.com/fatih/color"

// Status styles
var (
	TitleStyle   = color.New(color.FgMagenta, color.Bold)
	InfoStyle    = color.New(color.FgBlue)
	SuccessStyle = color.New(color.FgGreen, color.Bold)
	WarningStyle = color.New(color.FgYellow)
	ErrorStyle   = color.New(color.FgRed, color.Bold)
	HelpStyle    = color.New(color.FgHiBlack)

	// Emoji icons
	IconTool    = "🔧"
	IconSearch  = "🔍"
	IconSuccess = "✅"
	IconWarning = "⚠️ "
	IconError   = "❌"
	IconPackage = "📦"
	IconInfo    = "ℹ️ "
)

// DisableColor turns off colored output for the whole process.
func DisableColor() {
	color.NoColor = true
}
