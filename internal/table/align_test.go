package table

import (
	"strings"
	"testing"
)

func TestParseAlign(t *testing.T) {
	tests := []struct {
		input string
		want  Align
	}{
		{"left", Left},
		{"right", Right},
		{"center", Center},
		{"CENTER", Center},
		{"  right ", Right},
		{"", Left},
		{"middle", Left},
		{"centre", Left},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseAlign(tt.input); got != tt.want {
				t.Fatalf("ParseAlign(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		align Align
		want  string
	}{
		{"left", "ab", 5, Left, "ab   "},
		{"right", "ab", 5, Right, "   ab"},
		{"center even slack", "ab", 6, Center, "  ab  "},
		{"center odd slack goes right", "ab", 5, Center, " ab  "},
		{"center single slack", "a", 2, Center, "a "},
		{"exact fit", "abc", 3, Right, "abc"},
		{"wider than column", "abcdef", 3, Center, "abcdef"},
		{"multibyte counts characters", "é", 3, Right, "  é"},
		{"unknown align is left", "ab", 4, Align(42), "ab  "},
		{"empty text", "", 3, Center, "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pad(tt.text, tt.width, tt.align); got != tt.want {
				t.Fatalf("pad(%q, %d, %v) = %q, want %q", tt.text, tt.width, tt.align, got, tt.want)
			}
		})
	}
}

func TestPadRoundTrip(t *testing.T) {
	for _, text := range []string{"x", "hello", "two words", "ünïcode"} {
		for width := textWidth(text); width < textWidth(text)+4; width++ {
			if got := strings.TrimRight(pad(text, width, Left), " "); got != text {
				t.Fatalf("left %q width %d trimmed to %q", text, width, got)
			}
			if got := strings.TrimLeft(pad(text, width, Right), " "); got != text {
				t.Fatalf("right %q width %d trimmed to %q", text, width, got)
			}
			if got := strings.TrimSpace(pad(text, width, Center)); got != text {
				t.Fatalf("center %q width %d trimmed to %q", text, width, got)
			}
		}
	}
}

func TestAlignString(t *testing.T) {
	for _, a := range []Align{Left, Right, Center} {
		if got := ParseAlign(a.String()); got != a {
			t.Fatalf("ParseAlign(%q) = %v, want %v", a.String(), got, a)
		}
	}
}
