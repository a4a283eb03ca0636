package notify

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorInfo    = lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#22D3EE"}
	colorSuccess = lipgloss.AdaptiveColor{Light: "#047857", Dark: "#34D399"}
	colorError   = lipgloss.AdaptiveColor{Light: "#BE123C", Dark: "#FB7185"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
)

func style(k Kind) (lipgloss.AdaptiveColor, string) {
	switch k {
	case KindSuccess:
		return colorSuccess, "✓"
	case KindError:
		return colorError, "✗"
	default:
		return colorInfo, "i"
	}
}

// RenderToast draws a single toast box no wider than width.
func RenderToast(t Toast, width int) string {
	maxWidth := 48
	if width > 0 && width-4 < maxWidth {
		maxWidth = width - 4
	}
	if maxWidth < 20 {
		maxWidth = 20
	}

	color, icon := style(t.Kind)
	head := lipgloss.NewStyle().Foreground(color).Bold(true).Render(icon + " ")
	body := lipgloss.NewStyle().Width(maxWidth - 6).Render(t.Message)
	hint := lipgloss.NewStyle().Foreground(colorMuted).Italic(true).Render("ctrl+x dismiss")

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1).
		MaxWidth(maxWidth).
		Render(head + body + "\n" + hint)
}

// Render stacks toasts vertically, newest on top, right aligned.
func Render(toasts []Toast, width int) string {
	if len(toasts) == 0 {
		return ""
	}
	parts := make([]string, 0, len(toasts))
	for _, t := range toasts {
		parts = append(parts, RenderToast(t, width))
	}
	return lipgloss.JoinVertical(lipgloss.Right, parts...)
}

// Line renders one toast as plain text, for line-oriented front-ends.
func Line(t Toast) string {
	_, icon := style(t.Kind)
	return "[" + icon + "] " + t.Message
}

// Plain renders toasts oldest first, one per line.
func Plain(toasts []Toast) string {
	var b strings.Builder
	for i := len(toasts) - 1; i >= 0; i-- {
		b.WriteString(Line(toasts[i]) + "\n")
	}
	return b.String()
}
