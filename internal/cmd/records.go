package cmd

import (
	"fmt"
	"strings"

	clierrors "github.com/salmonumbrella/texttable/internal/errors"
	"github.com/salmonumbrella/texttable/internal/table"
)

// Inline record syntax used by the render and group commands:
//
//	row     cell,cell,...        positional values
//	record  key=value,key=value  named values
//	table   row;row;...          every row positional or every row named
//
// A backslash escapes the next character, so "a\,b" is one cell.
const (
	rowSep   = ';'
	cellSep  = ','
	fieldSep = '='
)

// splitUnescaped splits s on sep, ignoring separators preceded by a
// backslash. Escapes are kept so nested splits still see them.
func splitUnescaped(s string, sep rune) []string {
	var (
		parts   []string
		current strings.Builder
		escaped bool
	)
	for _, r := range s {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\':
			current.WriteRune(r)
			escaped = true
		case r == sep:
			parts = append(parts, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	return append(parts, current.String())
}

// unescape drops the backslash in front of every escaped character. A
// trailing lone backslash is kept.
func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	escaped := false
	for _, r := range s {
		if !escaped && r == '\\' {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(r)
	}
	if escaped {
		b.WriteRune('\\')
	}
	return b.String()
}

func cellText(raw string) string {
	return unescape(strings.TrimSpace(raw))
}

// parseRow parses "a,b,c" into a Sequence.
func parseRow(raw string) table.Sequence {
	cells := splitUnescaped(raw, cellSep)
	seq := make(table.Sequence, len(cells))
	for i, c := range cells {
		seq[i] = cellText(c)
	}
	return seq
}

// parseRecord parses "k=v,k=v" into a Mapping.
func parseRecord(raw string) (table.Mapping, error) {
	cells := splitUnescaped(raw, cellSep)
	m := make(table.Mapping, 0, len(cells))
	for _, c := range cells {
		kv := splitUnescaped(c, fieldSep)
		if len(kv) < 2 {
			return nil, &clierrors.ValidationError{
				Field:   "record",
				Message: fmt.Sprintf("field %q is not key=value", strings.TrimSpace(c)),
			}
		}
		key := cellText(kv[0])
		if key == "" {
			return nil, &clierrors.ValidationError{
				Field:   "record",
				Message: fmt.Sprintf("field %q has an empty key", strings.TrimSpace(c)),
			}
		}
		// everything after the first "=" is the value
		value := cellText(strings.Join(kv[1:], string(fieldSep)))
		m = append(m, table.Field{Key: key, Value: value})
	}
	return m, nil
}

// isNamedRow reports whether every cell of raw has an unescaped "=".
func isNamedRow(raw string) bool {
	for _, c := range splitUnescaped(raw, cellSep) {
		if len(splitUnescaped(c, fieldSep)) < 2 {
			return false
		}
	}
	return true
}

// recordsFromFlags builds the records of a single table from --row and
// --record values. The two cannot be mixed.
func recordsFromFlags(rows, records []string) ([]table.Record, error) {
	if len(rows) > 0 && len(records) > 0 {
		return nil, clierrors.NewUserError(
			"--row and --record cannot be combined",
			"Use --row for positional values or --record for key=value pairs",
		)
	}

	out := make([]table.Record, 0, len(rows)+len(records))
	for _, r := range rows {
		out = append(out, parseRow(r))
	}
	for _, r := range records {
		m, err := parseRecord(r)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// parseTable parses "row;row;..." for the group command. Blank input is a
// table without records.
func parseTable(text string) (table.Records, error) {
	if strings.TrimSpace(text) == "" {
		return table.Records{}, nil
	}

	rows := splitUnescaped(text, rowSep)
	named := isNamedRow(rows[0])
	out := make(table.Records, 0, len(rows))
	for i, raw := range rows {
		if isNamedRow(raw) != named {
			return nil, &clierrors.ValidationError{
				Field:   "table",
				Message: fmt.Sprintf("row %d mixes key=value and positional values with row 1", i+1),
			}
		}
		if !named {
			out = append(out, parseRow(raw))
			continue
		}
		m, err := parseRecord(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
