package render

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean string untouched", "Bohemian Rhapsody", "Bohemian Rhapsody"},
		{"bell stripped", "AC\x07DC", "ACDC"},
		{"escape stripped", "title\x1b[31m", "title[31m"},
		{"tab preserved", "a\tb", "a\tb"},
		{"c1 byte dropped", "a\x90b", "ab"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "Dust", 10, "Dust"},
		{"exact fit", "Creep", 5, "Creep"},
		{"cut with dots", "Bohemian Rhapsody", 10, "Bohemia..."},
		{"wide runes count double", "こんにちは", 6, "こ..."},
		{"empty", "", 4, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestTruncateEllipsis(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "Creep", 10, "Creep"},
		{"cut keeps one cell for ellipsis", "Stairway to Heaven", 10, "Stairway …"},
		{"empty", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateEllipsis(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("TruncateEllipsis(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"pads right", "Dust", 8, "Dust    "},
		{"exact width", "Creep", 5, "Creep"},
		{"wider than target left alone", "Bohemian Rhapsody", 5, "Bohemian Rhapsody"},
		{"empty becomes spaces", "", 3, "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pad(tt.input, tt.width); got != tt.want {
				t.Errorf("Pad(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}

func TestTruncateAndPadIsExactWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"short input padded", "hi", 6, "hi    "},
		{"long input truncated", "longtitle", 6, "lon..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateAndPad(tt.input, tt.width)
			if got != tt.want {
				t.Errorf("TruncateAndPad(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
			if w := Width(got); w != tt.width {
				t.Errorf("TruncateAndPad(%q, %d) width = %d, want %d", tt.input, tt.width, w, tt.width)
			}
		})
	}
}

func TestWidth(t *testing.T) {
	if got := Width("abc"); got != 3 {
		t.Errorf("Width(\"abc\") = %d, want 3", got)
	}
	if got := Width("パンク"); got != 6 {
		t.Errorf("Width(wide) = %d, want 6", got)
	}
}

func TestRow(t *testing.T) {
	got := Row("01:23", "04:56", 20)
	if Width(got) != 20 {
		t.Errorf("Row width = %d, want 20", Width(got))
	}
	if !strings.HasPrefix(got, "01:23") || !strings.HasSuffix(got, "04:56") {
		t.Errorf("Row = %q, want left and right anchored", got)
	}

	// Overfull content still gets a single-space gap.
	tight := Row("a very long left side", "right", 10)
	if !strings.Contains(tight, " right") {
		t.Errorf("tight Row = %q, want minimum one-space gap", tight)
	}
}

func TestEmptyLine(t *testing.T) {
	if got := EmptyLine(5); got != "     " {
		t.Errorf("EmptyLine(5) = %q", got)
	}
}
