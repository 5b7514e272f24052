package table

import "strings"

// Renderer holds the records and headers of one table. It is safe to render
// repeatedly and from multiple goroutines; rendering does not modify it.
type Renderer struct {
	records       []Record
	headers       []string
	headerPadding bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithHeaders sets explicit column names. An empty list derives the headers
// from the first record, the same as passing no headers at all.
func WithHeaders(headers ...string) Option {
	return func(r *Renderer) {
		r.headers = append([]string(nil), headers...)
	}
}

// WithHeaderPadding controls the blank row emitted below the header row.
// It is on by default.
func WithHeaderPadding(enabled bool) Option {
	return func(r *Renderer) {
		r.headerPadding = enabled
	}
}

// New builds a Renderer over records. The slice is copied, so later changes
// by the caller do not affect rendering.
func New(records []Record, opts ...Option) *Renderer {
	r := &Renderer{
		records:       append([]Record(nil), records...),
		headerPadding: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	if len(r.headers) == 0 {
		r.headers = deriveHeaders(r.records)
	}
	return r
}

// Headers returns a copy of the column names.
func (r *Renderer) Headers() []string {
	return append([]string{}, r.headers...)
}

// Len returns the number of records.
func (r *Renderer) Len() int {
	return len(r.records)
}

// HeaderPadding reports whether a blank row follows the header row.
func (r *Renderer) HeaderPadding() bool {
	return r.headerPadding
}

// Widths returns the content width of every column, or nil for a table
// without records.
func (r *Renderer) Widths() []int {
	if len(r.records) == 0 {
		return nil
	}
	return r.columnWidths(r.rows())
}

func (r *Renderer) rows() [][]string {
	rows := make([][]string, len(r.records))
	for i, rec := range r.records {
		rows[i] = cellValues(rec, r.headers)
	}
	return rows
}

func (r *Renderer) columnWidths(rows [][]string) []int {
	widths := make([]int, len(r.headers))
	for i, h := range r.headers {
		widths[i] = textWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], textWidth(cell))
		}
	}
	return widths
}

// Render lays the table out as text lines of equal length: top border,
// header row, optional blank padding row, separator, records divided by
// separators, and the bottom border. A table without records renders as no
// lines, whatever its headers.
func (r *Renderer) Render(align Align) []string {
	if len(r.records) == 0 {
		return nil
	}

	rows := r.rows()
	widths := r.columnWidths(rows)

	separator := rule(widths, "├", "┼", "┤")
	lines := make([]string, 0, 2*len(rows)+4)
	lines = append(lines, rule(widths, "┌", "┬", "┐"))
	lines = append(lines, row(r.headers, widths, align))
	if r.headerPadding {
		blank := make([]string, len(widths))
		for i := range blank {
			blank[i] = " "
		}
		lines = append(lines, row(blank, widths, align))
	}
	lines = append(lines, separator)

	for i, cells := range rows {
		lines = append(lines, row(cells, widths, align))
		if i < len(rows)-1 {
			lines = append(lines, separator)
		}
	}

	lines = append(lines, rule(widths, "└", "┴", "┘"))
	return lines
}

// rule draws a horizontal border with the given corner and junction glyphs.
func rule(widths []int, left, junction, right string) string {
	segments := make([]string, len(widths))
	for i, w := range widths {
		segments[i] = strings.Repeat("─", w+2)
	}
	return left + strings.Join(segments, junction) + right
}

func row(cells []string, widths []int, align Align) string {
	padded := make([]string, len(widths))
	for i, w := range widths {
		padded[i] = pad(cells[i], w, align)
	}
	return "│ " + strings.Join(padded, " │ ") + " │"
}
