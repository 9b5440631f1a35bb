package mine

import (
	"encoding/json"

	"github.com/jcdickinson/quarry/internal/rustdoc"
)

// structKind is the shape payload under inner.struct.kind. Exactly one of
// the variants is present in well-formed rustdoc output.
type structKind struct {
	Plain *struct {
		Fields []json.Number `json:"fields"`
	} `json:"plain"`
	Tuple *struct {
		Fields []json.Number `json:"fields"`
	} `json:"tuple"`
	Unit *json.RawMessage `json:"unit"`
}

// ExtractStruct mines a struct descriptor from one index item. It returns
// nil for items that are not struct definitions or carry no name. Malformed
// shape payloads degrade to a zero-field descriptor rather than failing.
func ExtractStruct(item *rustdoc.Item, crate *rustdoc.Crate) *Struct {
	structJSON := item.InnerPayload("struct")
	if structJSON == nil {
		return nil
	}
	if item.Name == nil || *item.Name == "" {
		return nil
	}
	name := *item.Name

	path := name
	if item.Span != nil {
		if modulePath, ok := ModulePathFromFilename(item.Span.Filename); ok {
			path = modulePath + "::" + name
		}
	}

	s := NewStruct(path)

	var payload struct {
		Kind json.RawMessage `json:"kind"`
	}
	if err := json.Unmarshal(structJSON, &payload); err != nil || len(payload.Kind) == 0 {
		return s
	}

	// Older format versions encode unit structs as the bare string "unit"
	// instead of an object variant.
	var kindStr string
	if err := json.Unmarshal(payload.Kind, &kindStr); err == nil {
		if kindStr == "unit" {
			s.Shape = ShapeUnit
		}
		return s
	}

	var kind structKind
	if err := json.Unmarshal(payload.Kind, &kind); err != nil {
		return s
	}

	switch {
	case kind.Plain != nil:
		s.Shape = ShapeNamed
		s.Fields = resolveFields(kind.Plain.Fields, crate, s.Path)
	case kind.Tuple != nil:
		s.Shape = ShapeTuple
		s.Fields = resolveFields(kind.Tuple.Fields, crate, s.Path)
	case kind.Unit != nil:
		s.Shape = ShapeUnit
	}
	return s
}

// ExtractAll runs the extractor over every index entry and assembles the
// registry map keyed by full path. Later entries for the same path
// overwrite earlier ones.
func ExtractAll(crate *rustdoc.Crate) map[string]*Struct {
	structs := make(map[string]*Struct)
	for id := range crate.Index {
		item := crate.Index[id]
		if s := ExtractStruct(&item, crate); s != nil {
			structs[s.Path] = s
		}
	}
	return structs
}
