// Package testutil provides helpers for asserting on rendered,
// ANSI-styled component output.
package testutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Strip removes ANSI escape sequences so tests can compare content
// without style interference.
func Strip(s string) string {
	return ansi.Strip(s)
}

// MeasureWidth returns the visual width of a rendered string, wide
// runes counted, styling ignored.
func MeasureWidth(s string) int {
	return runewidth.StringWidth(ansi.Strip(s))
}

// FindLine returns the first line containing substr, stripped of
// styling, or "" when no line matches.
func FindLine(output, substr string) string {
	for _, line := range strings.Split(ansi.Strip(output), "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// ContainsLine reports whether any line of the output contains substr.
func ContainsLine(output, substr string) bool {
	return FindLine(output, substr) != ""
}

// Lines splits stripped output into lines, dropping trailing blanks.
func Lines(output string) []string {
	lines := strings.Split(ansi.Strip(output), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
