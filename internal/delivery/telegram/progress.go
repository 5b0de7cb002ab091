package telegram

import (
	"fmt"
	"strings"
)

const progressBarLength = 16

// buildProgressBar creates a text progress bar for a fraction in [0, 1].
func buildProgressBar(fraction float64, length int) string {
	filled := int(fraction * float64(length))
	filled = min(max(filled, 0), length)

	bar := strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
	return fmt.Sprintf("[%s]", bar)
}

// progressLabel renders "2 / 10 answered" or "2 / 10 in progress".
func (r renderer) progressLabel(answered, total int, revealed bool) string {
	state := r.t("inProgress")
	if revealed {
		state = r.t("answered")
	}
	return fmt.Sprintf("%d / %d %s", answered, total, state)
}
