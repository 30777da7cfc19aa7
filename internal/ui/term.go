package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/javiermolinar/weekendly/internal/activity"
	"github.com/javiermolinar/weekendly/internal/plan"
)

// Color definitions for consistent styling across the UI.
var (
	// Category markers
	colorFood     = color.New(color.FgYellow)
	colorOutdoor  = color.New(color.FgGreen)
	colorIndoor   = color.New(color.FgBlue)
	colorSocial   = color.New(color.FgMagenta)
	colorWellness = color.New(color.FgCyan)

	// Budget status
	colorUnder = color.New(color.FgGreen)
	colorNear  = color.New(color.FgYellow, color.Bold)
	colorOver  = color.New(color.FgRed, color.Bold)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// formatCategory colors text by activity category.
func formatCategory(c activity.Category, s string) string {
	switch c {
	case activity.CategoryFood:
		return colorFood.Sprint(s)
	case activity.CategoryOutdoor:
		return colorOutdoor.Sprint(s)
	case activity.CategoryIndoor:
		return colorIndoor.Sprint(s)
	case activity.CategorySocial:
		return colorSocial.Sprint(s)
	case activity.CategoryWellness:
		return colorWellness.Sprint(s)
	default:
		return s
	}
}

// formatStatus colors text by budget status.
func formatStatus(status plan.BudgetStatus, s string) string {
	switch status {
	case plan.BudgetOver:
		return colorOver.Sprint(s)
	case plan.BudgetNear:
		return colorNear.Sprint(s)
	default:
		return colorUnder.Sprint(s)
	}
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
