package output

import (
	"bytes"
	"strings"

	"github.com/salmonumbrella/texttable/internal/table"
)

// Rendering is one rendered table plus the layout facts behind it.
type Rendering struct {
	Headers []string `json:"headers" yaml:"headers"`
	Widths  []int    `json:"widths" yaml:"widths"`
	Align   string   `json:"align" yaml:"align"`
	Rows    int      `json:"rows" yaml:"rows"`
	Lines   []string `json:"lines" yaml:"lines"`
}

// GroupRendering is a group of tables and the text the group prints.
type GroupRendering struct {
	Inline  bool        `json:"inline" yaml:"inline"`
	Spacing int         `json:"spacing" yaml:"spacing"`
	Align   string      `json:"align" yaml:"align"`
	Tables  []Rendering `json:"tables" yaml:"tables"`
	Lines   []string    `json:"lines" yaml:"lines"`
}

// TextLines implements lineSource.
func (r Rendering) TextLines() []string { return r.Lines }

// TextLines implements lineSource.
func (g GroupRendering) TextLines() []string { return g.Lines }

// lineSource is data whose text form is a fixed list of lines.
type lineSource interface {
	TextLines() []string
}

// Render captures r rendered with align.
func Render(r *table.Renderer, align table.Align) Rendering {
	lines := r.Render(align)
	if lines == nil {
		lines = []string{}
	}
	widths := r.Widths()
	if widths == nil {
		widths = []int{}
	}
	return Rendering{
		Headers: r.Headers(),
		Widths:  widths,
		Align:   align.String(),
		Rows:    r.Len(),
		Lines:   lines,
	}
}

// RenderGroup captures g. Inline groups are joined with spacing and align;
// sequential groups are captured exactly as Group.Print writes them, which
// always renders left aligned.
func RenderGroup(g *table.Group, spacing int, align table.Align) (GroupRendering, error) {
	out := GroupRendering{
		Inline:  g.Inline(),
		Spacing: spacing,
		Align:   align.String(),
	}

	tableAlign := align
	if g.Inline() {
		out.Lines = strings.Split(g.Join(spacing, align), "\n")
	} else {
		tableAlign = table.Left
		out.Align = tableAlign.String()
		out.Spacing = 0
		var buf bytes.Buffer
		if err := g.Print(&buf); err != nil {
			return GroupRendering{}, err
		}
		out.Lines = strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		if buf.Len() == 0 {
			out.Lines = []string{}
		}
	}

	for _, t := range g.Tables() {
		if r, ok := t.(*table.Renderer); ok {
			out.Tables = append(out.Tables, Render(r, tableAlign))
			continue
		}
		lines := t.Render(tableAlign)
		if lines == nil {
			lines = []string{}
		}
		out.Tables = append(out.Tables, Rendering{Align: tableAlign.String(), Lines: lines})
	}
	if out.Tables == nil {
		out.Tables = []Rendering{}
	}
	return out, nil
}
