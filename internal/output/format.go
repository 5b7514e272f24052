package output

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format represents the output format type.
type Format string

const (
	// FormatText is the rendered table text (default).
	FormatText Format = "text"
	// FormatJSON is pretty-printed JSON format.
	FormatJSON Format = "json"
	// FormatNDJSON is newline-delimited JSON format.
	FormatNDJSON Format = "ndjson"
	// FormatYAML is YAML format.
	FormatYAML Format = "yaml"
)

// ParseFormat converts a string to a Format type.
// Empty string defaults to FormatText.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatNDJSON, "jsonl":
		return FormatNDJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", errors.New("invalid --output format (expected text|json|ndjson|jsonl|yaml)")
	}
}

// Printer handles output formatting across different formats.
type Printer struct {
	w      io.Writer
	format Format
}

// NewPrinter creates a new Printer that writes to w in the given format.
func NewPrinter(w io.Writer, format Format) *Printer {
	return &Printer{
		w:      w,
		format: format,
	}
}

// Print outputs data in the configured format.
func (p *Printer) Print(ctx context.Context, data interface{}) error {
	if data == nil {
		return nil
	}

	if path := JSONPathFromContext(ctx); path != "" {
		value, err := applyJSONPath(data, path)
		if err != nil {
			return err
		}
		data = value
	}

	switch p.format {
	case FormatJSON:
		return p.printJSON(ctx, data)
	case FormatNDJSON:
		return p.printNDJSON(ctx, data)
	case FormatYAML:
		return p.printYAML(data)
	case FormatText:
		return p.printText(ctx, data)
	default:
		return fmt.Errorf("unsupported format: %s", p.format)
	}
}

// printText writes table lines verbatim. With a --query the filter results
// are written one per line: strings raw, everything else as compact JSON.
func (p *Printer) printText(ctx context.Context, data interface{}) error {
	if query := QueryFromContext(ctx); query != "" {
		results, err := runQueryRaw(query, data)
		if err != nil {
			return err
		}
		for _, r := range results {
			if err := p.printTextValue(r); err != nil {
				return err
			}
		}
		return nil
	}

	if src, ok := data.(lineSource); ok {
		for _, line := range src.TextLines() {
			if _, err := fmt.Fprintln(p.w, line); err != nil {
				return err
			}
		}
		return nil
	}
	return p.printTextValue(data)
}

func (p *Printer) printTextValue(v interface{}) error {
	switch val := v.(type) {
	case string:
		_, err := fmt.Fprintln(p.w, val)
		return err
	case []string:
		for _, line := range val {
			if _, err := fmt.Fprintln(p.w, line); err != nil {
				return err
			}
		}
		return nil
	case []interface{}:
		for _, item := range val {
			if err := p.printTextValue(item); err != nil {
				return err
			}
		}
		return nil
	}
	buf, err := json.Marshal(v)
	if err != nil {
		_, err = fmt.Fprintln(p.w, v)
		return err
	}
	_, err = fmt.Fprintln(p.w, string(buf))
	return err
}

// printJSON outputs data as JSON, filtered by --query when present.
func (p *Printer) printJSON(ctx context.Context, data interface{}) error {
	compact := CompactJSONFromContext(ctx)
	if query := QueryFromContext(ctx); query != "" {
		return p.runQuery(query, data, !compact)
	}

	enc := json.NewEncoder(p.w)
	enc.SetEscapeHTML(false)
	if !compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(data)
}

// printNDJSON writes one JSON value per line: each rendered line for table
// data, each element for slices, the value itself otherwise.
func (p *Printer) printNDJSON(ctx context.Context, data interface{}) error {
	if query := QueryFromContext(ctx); query != "" {
		return p.runQuery(query, data, false)
	}

	enc := json.NewEncoder(p.w)
	enc.SetEscapeHTML(false)

	if src, ok := data.(lineSource); ok {
		for _, line := range src.TextLines() {
			if err := enc.Encode(line); err != nil {
				return err
			}
		}
		return nil
	}

	v := reflect.ValueOf(data)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() == reflect.Slice || v.Kind() == reflect.Array {
		for i := 0; i < v.Len(); i++ {
			if err := enc.Encode(v.Index(i).Interface()); err != nil {
				return err
			}
		}
		return nil
	}
	return enc.Encode(data)
}

// printYAML outputs data as YAML.
func (p *Printer) printYAML(data interface{}) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	defer func() { _ = enc.Close() }()
	return enc.Encode(data)
}
