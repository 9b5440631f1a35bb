package mine

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/jcdickinson/quarry/internal/rustdoc"
)

// testCrate decodes a rustdoc JSON index literal into a Crate.
func testCrate(t *testing.T, indexJSON string) *rustdoc.Crate {
	t.Helper()
	var crate rustdoc.Crate
	if err := json.Unmarshal([]byte(`{"index":`+indexJSON+`}`), &crate); err != nil {
		t.Fatalf("decoding test crate: %v", err)
	}
	return &crate
}

func item(crate *rustdoc.Crate, id string) *rustdoc.Item {
	it := crate.Index[id]
	return &it
}

func TestExtractStruct_Plain(t *testing.T) {
	t.Parallel()
	crate := testCrate(t, `{
		"1": {
			"name": "String",
			"span": {"filename": "alloc/src/string.rs"},
			"visibility": "public",
			"inner": {"struct": {"kind": {"plain": {"fields": [10]}}}}
		},
		"10": {
			"name": "vec",
			"visibility": {"restricted": {"parent": 2, "path": "::string"}},
			"inner": {"struct_field": {"resolved_path": {"path": "crate::vec::Vec", "id": 241, "args": {"angle_bracketed": {"args": [{"type": {"primitive": "u8"}}]}}}}}
		}
	}`)

	s := ExtractStruct(item(crate, "1"), crate)
	if s == nil {
		t.Fatal("expected a struct descriptor")
	}
	if s.Path != "alloc::string::String" {
		t.Errorf("path: got %q", s.Path)
	}
	if s.ModulePath != "alloc::string" || s.SimpleName != "String" {
		t.Errorf("split: got (%q, %q)", s.ModulePath, s.SimpleName)
	}
	if s.Shape != ShapeNamed {
		t.Errorf("shape: got %v", s.Shape)
	}
	if len(s.Fields) != 1 {
		t.Fatalf("fields: got %d", len(s.Fields))
	}
	f := s.Fields[0]
	if f.Name != "vec" || f.TypeName != "Vec<u8>" || f.IsPublic {
		t.Errorf("field: got %+v", f)
	}
	if f.StructPath != s.Path {
		t.Errorf("field owner: got %q, want %q", f.StructPath, s.Path)
	}
}

func TestExtractStruct_Tuple(t *testing.T) {
	t.Parallel()
	crate := testCrate(t, `{
		"1": {
			"name": "Point",
			"span": {"filename": "alloc/src/geom.rs"},
			"inner": {"struct": {"kind": {"tuple": {"fields": [10, 11]}}}}
		},
		"10": {"name": "0", "visibility": "public", "inner": {"struct_field": {"primitive": "i32"}}},
		"11": {"name": "1", "visibility": "public", "inner": {"struct_field": {"primitive": "i32"}}}
	}`)

	s := ExtractStruct(item(crate, "1"), crate)
	if s == nil {
		t.Fatal("expected a struct descriptor")
	}
	if s.Path != "alloc::geom::Point" {
		t.Errorf("path: got %q", s.Path)
	}
	if s.Shape != ShapeTuple {
		t.Errorf("shape: got %v", s.Shape)
	}
	if len(s.Fields) != 2 {
		t.Fatalf("fields: got %d", len(s.Fields))
	}
	for i, want := range []string{"0", "1"} {
		if s.Fields[i].Name != want || s.Fields[i].TypeName != "i32" || !s.Fields[i].IsPublic {
			t.Errorf("field %d: got %+v", i, s.Fields[i])
		}
	}
}

func TestExtractStruct_Unit(t *testing.T) {
	t.Parallel()
	crate := testCrate(t, `{
		"1": {
			"name": "Marker",
			"span": {"filename": "core/src/marker.rs"},
			"inner": {"struct": {"kind": {"unit": {}}}}
		},
		"2": {
			"name": "OldMarker",
			"span": {"filename": "core/src/marker.rs"},
			"inner": {"struct": {"kind": "unit"}}
		}
	}`)

	for _, id := range []string{"1", "2"} {
		s := ExtractStruct(item(crate, id), crate)
		if s == nil {
			t.Fatalf("item %s: expected a struct descriptor", id)
		}
		if s.Shape != ShapeUnit {
			t.Errorf("item %s: shape got %v", id, s.Shape)
		}
		if len(s.Fields) != 0 {
			t.Errorf("item %s: expected no fields, got %d", id, len(s.Fields))
		}
	}
}

func TestExtractStruct_Degraded(t *testing.T) {
	t.Parallel()

	t.Run("unknown_shape_tag", func(t *testing.T) {
		crate := testCrate(t, `{
			"1": {
				"name": "Weird",
				"span": {"filename": "core/src/weird.rs"},
				"inner": {"struct": {"kind": {"mystery": {"fields": [9]}}}}
			}
		}`)
		s := ExtractStruct(item(crate, "1"), crate)
		if s == nil {
			t.Fatal("expected a struct descriptor")
		}
		if s.Shape != ShapeNamed || len(s.Fields) != 0 {
			t.Errorf("got shape %v with %d fields", s.Shape, len(s.Fields))
		}
	})

	t.Run("missing_field_id_skipped", func(t *testing.T) {
		crate := testCrate(t, `{
			"1": {
				"name": "Gappy",
				"span": {"filename": "core/src/gap.rs"},
				"inner": {"struct": {"kind": {"plain": {"fields": [10, 99, 11]}}}}
			},
			"10": {"name": "a", "inner": {"struct_field": {"primitive": "u8"}}},
			"11": {"name": "b", "inner": {"struct_field": {"primitive": "u16"}}}
		}`)
		s := ExtractStruct(item(crate, "1"), crate)
		if len(s.Fields) != 2 {
			t.Fatalf("expected gap to be skipped, got %d fields", len(s.Fields))
		}
		if s.Fields[0].Name != "a" || s.Fields[1].Name != "b" {
			t.Errorf("field order: got %q, %q", s.Fields[0].Name, s.Fields[1].Name)
		}
	})

	t.Run("unresolvable_span_falls_back_to_name", func(t *testing.T) {
		crate := testCrate(t, `{
			"1": {
				"name": "Orphan",
				"span": {"filename": "somewhere/else.rs"},
				"inner": {"struct": {"kind": {"unit": {}}}}
			}
		}`)
		s := ExtractStruct(item(crate, "1"), crate)
		if s.Path != "Orphan" || s.ModulePath != "" || s.SimpleName != "Orphan" {
			t.Errorf("got %q (%q, %q)", s.Path, s.ModulePath, s.SimpleName)
		}
	})

	t.Run("field_without_type_is_unknown", func(t *testing.T) {
		crate := testCrate(t, `{
			"1": {
				"name": "NoType",
				"span": {"filename": "core/src/x.rs"},
				"inner": {"struct": {"kind": {"plain": {"fields": [10]}}}}
			},
			"10": {"inner": {"other": {}}}
		}`)
		s := ExtractStruct(item(crate, "1"), crate)
		if len(s.Fields) != 1 {
			t.Fatalf("fields: got %d", len(s.Fields))
		}
		if s.Fields[0].Name != "unknown" || s.Fields[0].TypeName != "unknown" {
			t.Errorf("got %+v", s.Fields[0])
		}
	})
}

func TestExtractStruct_NotAStruct(t *testing.T) {
	t.Parallel()
	crate := testCrate(t, `{
		"1": {"name": "visit", "inner": {"function": {}}},
		"2": {"inner": {"struct": {"kind": {"unit": {}}}}},
		"3": {"name": "", "inner": {"struct": {"kind": {"unit": {}}}}},
		"4": {"name": "NoInner"}
	}`)

	for _, id := range []string{"1", "2", "3", "4"} {
		if s := ExtractStruct(item(crate, id), crate); s != nil {
			t.Errorf("item %s: expected nil, got %+v", id, s)
		}
	}
}

func TestExtractAll(t *testing.T) {
	t.Parallel()
	crate := testCrate(t, `{
		"1": {
			"name": "String",
			"span": {"filename": "alloc/src/string.rs"},
			"inner": {"struct": {"kind": {"plain": {"fields": []}}}}
		},
		"2": {
			"name": "Marker",
			"span": {"filename": "core/src/marker.rs"},
			"inner": {"struct": {"kind": {"unit": {}}}}
		},
		"3": {"name": "visit", "inner": {"function": {}}}
	}`)

	structs := ExtractAll(crate)
	if len(structs) != 2 {
		t.Fatalf("expected 2 structs, got %d", len(structs))
	}
	for path, s := range structs {
		if path != s.Path {
			t.Errorf("key %q does not match descriptor path %q", path, s.Path)
		}
		if s.ModulePath != "" && s.ModulePath+"::"+s.SimpleName != s.Path {
			t.Errorf("path invariant violated for %q", s.Path)
		}
	}
}

func TestSplitPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path   string
		module string
		simple string
	}{
		{"alloc::string::String", "alloc::string", "String"},
		{"std::collections::HashMap", "std::collections", "HashMap"},
		{"Orphan", "", "Orphan"},
		{"core::Unit", "core", "Unit"},
	}

	for _, tt := range tests {
		t.Run(strings.ReplaceAll(tt.path, "::", "_"), func(t *testing.T) {
			module, simple := SplitPath(tt.path)
			if module != tt.module || simple != tt.simple {
				t.Errorf("got (%q, %q), want (%q, %q)", module, simple, tt.module, tt.simple)
			}
		})
	}
}
