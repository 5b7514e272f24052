package table

import (
	"fmt"
	"io"
	"strings"
)

// DefaultSpacing is the gap, in spaces, between tables joined side by side.
const DefaultSpacing = 2

// Renderable is anything that renders to table lines.
type Renderable interface {
	Render(align Align) []string
}

// Group is a set of tables printed one after another or side by side.
type Group struct {
	tables []Renderable
	inline bool
}

// NewGroup collects tables for printing. Raw Records are wrapped in a
// Renderer with derived headers; nil entries are skipped.
func NewGroup(inline bool, tables ...Renderable) *Group {
	g := &Group{inline: inline}
	for _, t := range tables {
		switch v := t.(type) {
		case nil:
			continue
		case Records:
			g.tables = append(g.tables, New(v))
		default:
			g.tables = append(g.tables, v)
		}
	}
	return g
}

// Tables returns the tables captured at construction.
func (g *Group) Tables() []Renderable {
	return append([]Renderable(nil), g.tables...)
}

// Inline reports whether Print joins the tables side by side.
func (g *Group) Inline() bool {
	return g.inline
}

// Print writes the group to w. Inline groups are written as a single joined
// block; otherwise each table is written left aligned as its own block.
func (g *Group) Print(w io.Writer) error {
	if g.inline {
		_, err := fmt.Fprintln(w, g.Join(DefaultSpacing, Left))
		return err
	}
	for _, t := range g.tables {
		if _, err := fmt.Fprintln(w, strings.Join(t.Render(Left), "\n")); err != nil {
			return err
		}
	}
	return nil
}

// Join renders the group's own tables side by side. See JoinTables.
func (g *Group) Join(spacing int, align Align) string {
	return JoinTables(g.tables, spacing, align)
}

// JoinTables renders tables with align and places them side by side,
// separated by spacing spaces. Shorter tables are padded at the bottom with
// blank lines as wide as the table itself. The result has no trailing
// newline, and is empty when there is nothing to draw.
func JoinTables(tables []Renderable, spacing int, align Align) string {
	if len(tables) == 0 {
		return ""
	}

	rendered := make([][]string, len(tables))
	height := 0
	for i, t := range tables {
		rendered[i] = t.Render(align)
		height = max(height, len(rendered[i]))
	}
	if height == 0 {
		return ""
	}

	for i, lines := range rendered {
		width := 0
		if len(lines) > 0 {
			width = textWidth(lines[0])
		}
		blank := strings.Repeat(" ", width)
		for len(lines) < height {
			lines = append(lines, blank)
		}
		rendered[i] = lines
	}

	gap := strings.Repeat(" ", max(spacing, 0))
	out := make([]string, height)
	parts := make([]string, len(rendered))
	for row := 0; row < height; row++ {
		for i, lines := range rendered {
			parts[i] = lines[row]
		}
		out[row] = strings.Join(parts, gap)
	}
	return strings.Join(out, "\n")
}
