package table

import (
	"strings"
	"unicode/utf8"
)

// Align controls how cell text is padded to its column width.
type Align int

const (
	Left Align = iota
	Right
	Center
)

// ParseAlign maps "left", "right" or "center" to an Align. Anything else,
// including the empty string, is Left.
func ParseAlign(s string) Align {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "right":
		return Right
	case "center":
		return Center
	default:
		return Left
	}
}

func (a Align) String() string {
	switch a {
	case Right:
		return "right"
	case Center:
		return "center"
	default:
		return "left"
	}
}

// textWidth is the character count used for all layout decisions.
func textWidth(s string) int {
	return utf8.RuneCountInString(s)
}

// pad aligns text inside width. Text that already fills the width is
// returned unchanged.
func pad(text string, width int, align Align) string {
	gap := width - textWidth(text)
	if gap <= 0 {
		return text
	}
	switch align {
	case Right:
		return strings.Repeat(" ", gap) + text
	case Center:
		left := gap / 2
		return strings.Repeat(" ", left) + text + strings.Repeat(" ", gap-left)
	default:
		return text + strings.Repeat(" ", gap)
	}
}
