package overlay

import (
	"strings"
	"testing"
)

func TestComposeReplacesVisibleSpan(t *testing.T) {
	base := "abcdefghij\nabcdefghij"
	over := "  XXX\n"

	got := Compose(base, over, 10, 2)
	lines := strings.Split(got, "\n")
	if lines[0] != "abXXXfghij" {
		t.Errorf("line 0 = %q, want %q", lines[0], "abXXXfghij")
	}
	if lines[1] != "abcdefghij" {
		t.Errorf("line 1 = %q, want base untouched", lines[1])
	}
}

func TestComposeSkipsBlankOverlayLines(t *testing.T) {
	base := "1111\n2222\n3333"
	over := "\n XX \n"

	got := Compose(base, over, 4, 3)
	want := "1111\n2XX2\n3333"
	// Trailing space in the overlay line is outside the visible span,
	// so column 3 of the base shows through.
	if got != want {
		t.Errorf("Compose = %q, want %q", got, want)
	}
}

func TestComposePadsShortBaseLines(t *testing.T) {
	got := Compose("ab", "      XX", 10, 1)
	if got != "ab    XX  " {
		t.Errorf("Compose = %q, want %q", got, "ab    XX  ")
	}
}

func TestComposeIgnoresExtraOverlayLines(t *testing.T) {
	got := Compose("only", "AAAA\nBBBB", 4, 2)
	if got != "AAAA" {
		t.Errorf("Compose = %q, want overlay clipped to base height", got)
	}
}
