package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")  // primary accent
	colorWhite = lipgloss.Color("255") // values
	colorDim   = lipgloss.Color("240") // muted text
	colorGreen = lipgloss.Color("35")  // success
	colorRed   = lipgloss.Color("167") // errors
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleName    = lipgloss.NewStyle().Foreground(colorCyan)
	styleKey     = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
)

// renderOption formats one "key: value" row with the key padded to width.
func renderOption(key string, value any, width int) string {
	padded := fmt.Sprintf("%-*s", width, key)
	return styleKey.Render(padded) + "  " + styleValue.Render(formatValue(value))
}

func formatValue(v any) string {
	switch val := v.(type) {
	case [2]float64:
		return fmt.Sprintf("%g, %g", val[0], val[1])
	case []string:
		return strings.Join(val, " ")
	default:
		return fmt.Sprintf("%v", val)
	}
}

// renderSwatches draws one colored block per cycle entry so palettes can
// be compared at a glance.
func renderSwatches(colors []string) string {
	blocks := make([]string, len(colors))
	for i, c := range colors {
		blocks[i] = lipgloss.NewStyle().Background(lipgloss.Color(c)).Render("  ")
	}
	return strings.Join(blocks, " ")
}
