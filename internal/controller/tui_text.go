package controller

import (
	"github.com/charmbracelet/lipgloss"
)

const ellipsis = "…"

// animateScroll returns a width-wide window of text that scrolls once offset
// passes a short pause. Text that fits is returned unchanged.
func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	pause := 5
	if offset < pause {
		return truncateText(text, width)
	}

	runes := []rune(text + "   ")
	n := len(runes)
	start := (offset - pause) % n

	res := make([]rune, 0, width)
	for i := range width {
		res = append(res, runes[(start+i)%n])
	}

	return string(res)
}

// truncateText cuts text to width display cells, ending in an ellipsis.
func truncateText(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}
