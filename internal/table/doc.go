// Package table renders records as fixed-width text tables drawn with
// box-drawing characters, and composes several rendered tables side by side.
//
// A table is built from a slice of records. Each record is either a Mapping
// (ordered column name to value pairs) or a Sequence (positional values):
//
//	r := table.New([]table.Record{
//		table.Mapping{{"a", 1}, {"b", "x"}},
//		table.Mapping{{"a", 22}, {"b", "yy"}},
//	})
//	for _, line := range r.Render(table.Left) {
//		fmt.Println(line)
//	}
//
// Column widths are measured in characters (code points), not terminal cells,
// so wide glyphs can make a column look misaligned on screen.
//
// Rendering never fails. Missing mapping keys render as empty cells, unknown
// alignment names fall back to left alignment and an empty record list renders
// as no lines at all. Mixing Mapping and Sequence records in one table is not
// supported; the output for such input is unspecified.
package table
