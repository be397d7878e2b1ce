// Package overlay stacks rendered blocks: the player surface over the
// chrome, the queue panel over the surface, help over everything.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Compose lays overlay on top of base, line by line. On each line the
// span from the overlay's first to last visible column replaces the
// base; the base shows through outside it. Both sides may carry ANSI
// styling.
func Compose(base, overlay string, width, _ int) string {
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(overlay, "\n") {
		if i >= len(baseLines) {
			break
		}
		start, end, ok := visibleSpan(line)
		if !ok {
			continue
		}
		baseLines[i] = splice(baseLines[i], ansi.Cut(line, start, end), start, end, width)
	}
	return strings.Join(baseLines, "\n")
}

// visibleSpan returns the display-column range [start, end) covered by
// a line's non-space content. ok is false for visually blank lines.
func visibleSpan(line string) (start, end int, ok bool) {
	plain := ansi.Strip(line)
	if strings.TrimSpace(plain) == "" {
		return 0, 0, false
	}
	for _, r := range plain {
		if r != ' ' {
			break
		}
		start++
	}
	trimmed := strings.TrimRight(plain, " ")
	return start, start + ansi.StringWidth(trimmed[start:]), true
}

// splice inserts content into base between columns start and end,
// padding base out to width first so the suffix survives.
func splice(base, content string, start, end, width int) string {
	if w := ansi.StringWidth(ansi.Strip(base)); w < width {
		base += strings.Repeat(" ", width-w)
	}
	out := ansi.Cut(base, 0, start) + content
	if end < width {
		out += ansi.Cut(base, end, width)
	}
	return out
}
