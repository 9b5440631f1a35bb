package mcp

import (
	"strings"
	"testing"

	"github.com/jcdickinson/quarry/internal/mine"
)

func TestRenderMarkdown(t *testing.T) {
	t.Parallel()

	s := &mine.Struct{
		Path:       "alloc::vec::Vec",
		SimpleName: "Vec",
		ModulePath: "alloc::vec",
		Shape:      mine.ShapeNamed,
		Fields: []mine.Field{
			{Name: "buf", TypeName: "RawVec", IsPublic: false},
			{Name: "len", TypeName: "usize", IsPublic: false},
		},
	}

	md := RenderMarkdown(s)
	for _, want := range []string{
		"# alloc::vec::Vec",
		"Module: `alloc::vec`",
		"Kind: named struct",
		"| `len` | `usize` | private |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("RenderMarkdown missing %q in:\n%s", want, md)
		}
	}
}

func TestRenderMarkdownUnit(t *testing.T) {
	t.Parallel()

	s := mine.NewStruct("alloc::alloc::Global")
	s.Shape = mine.ShapeUnit

	md := RenderMarkdown(s)
	if !strings.Contains(md, "Kind: unit struct") {
		t.Errorf("RenderMarkdown missing unit kind in:\n%s", md)
	}
	if !strings.Contains(md, "No fields.") {
		t.Errorf("RenderMarkdown missing empty-field note in:\n%s", md)
	}
}
