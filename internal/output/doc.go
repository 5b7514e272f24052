// Package output writes rendered tables in the format selected on the
// command line.
//
// It supports output formats:
//   - text: the box-drawn table lines, byte for byte (default)
//   - json: pretty-printed JSON describing the rendering
//   - ndjson: one JSON string per rendered line
//   - yaml: YAML describing the rendering
//
// JSON output can be filtered with a jq expression (--query) or reduced to a
// single value with a JSONPath (--jsonpath). Both options are carried in the
// context, set once in the root command:
//
//	ctx = output.WithFormat(ctx, format)
//	ctx = output.WithQuery(ctx, query)
//
// and read back by the Printer:
//
//	printer := output.NewPrinter(os.Stdout, output.FormatFromContext(ctx))
//	return printer.Print(ctx, rendering)
package output
