package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/salmonumbrella/texttable/internal/table"
)

func TestRenderEmptyTable(t *testing.T) {
	r := Render(table.New(nil, table.WithHeaders("a")), table.Center)

	if r.Lines == nil || len(r.Lines) != 0 {
		t.Fatalf("Lines = %#v, want empty non-nil slice", r.Lines)
	}
	if r.Widths == nil || len(r.Widths) != 0 {
		t.Fatalf("Widths = %#v, want empty non-nil slice", r.Widths)
	}
	if r.Align != "center" || r.Rows != 0 {
		t.Fatalf("Rendering = %+v", r)
	}
}

func TestRenderGroupInline(t *testing.T) {
	g := table.NewGroup(true,
		table.Records{table.Sequence{"a", "b"}},
		table.Records{table.Sequence{"long value"}},
	)

	got, err := RenderGroup(g, 3, table.Right)
	if err != nil {
		t.Fatalf("RenderGroup() error = %v", err)
	}
	if strings.Join(got.Lines, "\n") != g.Join(3, table.Right) {
		t.Fatal("inline lines differ from Group.Join")
	}
	if len(got.Tables) != 2 || got.Tables[1].Widths[0] != 10 {
		t.Fatalf("Tables = %+v", got.Tables)
	}
	if got.Align != "right" || got.Spacing != 3 || !got.Inline {
		t.Fatalf("GroupRendering = %+v", got)
	}
}

func TestRenderGroupSequentialMatchesPrint(t *testing.T) {
	g := table.NewGroup(false,
		table.Records{table.Sequence{"a"}},
		table.New(nil),
		table.Records{table.Mapping{{Key: "k", Value: "v"}}},
	)

	got, err := RenderGroup(g, 5, table.Center)
	if err != nil {
		t.Fatalf("RenderGroup() error = %v", err)
	}

	var want bytes.Buffer
	if err := g.Print(&want); err != nil {
		t.Fatal(err)
	}
	var printed bytes.Buffer
	for _, line := range got.TextLines() {
		printed.WriteString(line + "\n")
	}
	if printed.String() != want.String() {
		t.Fatalf("text lines =\n%s\nwant\n%s", printed.String(), want.String())
	}
	if got.Align != "left" || got.Spacing != 0 {
		t.Fatalf("sequential groups always print left aligned without spacing, got %+v", got)
	}
}

func TestRenderGroupEmpty(t *testing.T) {
	inline, err := RenderGroup(table.NewGroup(true), 2, table.Left)
	if err != nil {
		t.Fatal(err)
	}
	if len(inline.Lines) != 1 || inline.Lines[0] != "" {
		t.Fatalf("empty inline group lines = %q, want one blank line", inline.Lines)
	}

	sequential, err := RenderGroup(table.NewGroup(false), 2, table.Left)
	if err != nil {
		t.Fatal(err)
	}
	if len(sequential.Lines) != 0 || sequential.Tables == nil {
		t.Fatalf("empty sequential group = %+v", sequential)
	}
}
