package ui

import (
	"fmt"
	"strings"
)

// ProgressBar renders done out of total as a bar of width cells and a
// percentage. done is clamped to [0, total]; an empty list reads 0%.
func ProgressBar(p Palette, done, total, width int) string {
	if width < 5 {
		width = 5
	}
	filled, pct := 0, 0
	if total > 0 {
		done = min(max(done, 0), total)
		filled = done * width / total
		pct = done * 100 / total
	}
	return p.Success.Render(strings.Repeat("█", filled)) +
		p.Muted.Render(strings.Repeat("░", width-filled)+fmt.Sprintf(" %3d%%", pct))
}

// Counts renders the "✔ 2  • 3  Total 5" summary line.
func Counts(p Palette, done, pending int) string {
	return p.Success.Render("✔") + p.Row.Render(fmt.Sprintf(" %d  ", done)) +
		p.Muted.Render("•") + p.Row.Render(fmt.Sprintf(" %d  ", pending)) +
		p.Title.Render(fmt.Sprintf("Total %d", done+pending))
}
