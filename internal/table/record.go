package table

import (
	"fmt"
	"strconv"
)

// Record is one row of input. It is implemented only by Mapping and Sequence.
type Record interface {
	isRecord()
}

// Field is a single named value within a Mapping.
type Field struct {
	Key   string
	Value any
}

// Mapping is a record keyed by column name. Field order is the column order
// used when headers are derived from the first record.
type Mapping []Field

// Sequence is a record of positional values.
type Sequence []any

func (Mapping) isRecord()  {}
func (Sequence) isRecord() {}

// Get returns the value stored under key. When a key appears more than once
// the last value wins.
func (m Mapping) Get(key string) (any, bool) {
	for i := len(m) - 1; i >= 0; i-- {
		if m[i].Key == key {
			return m[i].Value, true
		}
	}
	return nil, false
}

// Keys returns the distinct keys in first-occurrence order.
func (m Mapping) Keys() []string {
	seen := make(map[string]struct{}, len(m))
	keys := make([]string, 0, len(m))
	for _, f := range m {
		if _, ok := seen[f.Key]; ok {
			continue
		}
		seen[f.Key] = struct{}{}
		keys = append(keys, f.Key)
	}
	return keys
}

// Records is a raw record list. It renders with derived headers and header
// padding, and NewGroup wraps it in a Renderer.
type Records []Record

// Render implements Renderable.
func (rs Records) Render(align Align) []string {
	return New(rs).Render(align)
}

// deriveHeaders picks column names from the first record.
func deriveHeaders(records []Record) []string {
	if len(records) == 0 {
		return []string{}
	}
	switch first := records[0].(type) {
	case Mapping:
		return first.Keys()
	case Sequence:
		headers := make([]string, len(first))
		for i := range first {
			headers[i] = "Col" + strconv.Itoa(i)
		}
		return headers
	default:
		return []string{}
	}
}

// cellValues returns the textual cells of rec, one per header.
// Sequence positions past the end render empty; extra values are dropped.
func cellValues(rec Record, headers []string) []string {
	cells := make([]string, len(headers))
	switch r := rec.(type) {
	case Mapping:
		for i, h := range headers {
			if v, ok := r.Get(h); ok {
				cells[i] = formatValue(v)
			}
		}
	case Sequence:
		for i := range cells {
			if i < len(r) {
				cells[i] = formatValue(r[i])
			}
		}
	}
	return cells
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}
