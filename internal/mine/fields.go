package mine

import (
	"encoding/json"

	"github.com/jcdickinson/quarry/internal/rustdoc"
)

// resolveFields looks up each field id in the crate index and builds field
// descriptors in declaration order. Lookups never fail the whole list: an id
// missing from the index is skipped, a missing name or unrenderable type
// degrades to "unknown".
func resolveFields(fieldIDs []json.Number, crate *rustdoc.Crate, structPath string) []Field {
	var fields []Field
	for _, id := range fieldIDs {
		item, ok := crate.Index[id.String()]
		if !ok {
			continue
		}

		name := "unknown"
		if item.Name != nil && *item.Name != "" {
			name = *item.Name
		}

		typeName := "unknown"
		if typeJSON := item.InnerPayload("struct_field"); typeJSON != nil {
			typeName = TypeName(typeJSON)
		}

		fields = append(fields, Field{
			Name:       name,
			TypeName:   typeName,
			IsPublic:   item.IsPublic(),
			StructPath: structPath,
		})
	}
	return fields
}
