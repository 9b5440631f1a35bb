package mine

import (
	"encoding/json"
	"testing"
)

func TestTypeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		json string
		want string
	}{
		{
			"primitive",
			`{"primitive":"usize"}`,
			"usize",
		},
		{
			"generic",
			`{"generic":"T"}`,
			"T",
		},
		{
			"resolved_path_no_args",
			`{"resolved_path":{"path":"crate::string::String","id":5}}`,
			"String",
		},
		{
			"resolved_path_crate_vec",
			`{"resolved_path":{"path":"crate::vec::Vec","id":241,"args":{"angle_bracketed":{"args":[{"type":{"primitive":"u8"}}]}}}}`,
			"Vec<u8>",
		},
		{
			"resolved_path_hash_map",
			`{"resolved_path":{"path":"crate::collections::hash_map::HashMap","id":7,"args":{"angle_bracketed":{"args":[{"type":{"generic":"K"}},{"type":{"generic":"V"}}]}}}}`,
			"HashMap<K, V>",
		},
		{
			"resolved_path_last_segment",
			`{"resolved_path":{"path":"crate::raw_vec::RawVec","id":9,"args":{"angle_bracketed":{"args":[{"type":{"primitive":"u8"}},{"type":{"generic":"A"}}]}}}}`,
			"RawVec<u8, A>",
		},
		{
			"resolved_path_external",
			`{"resolved_path":{"path":"core::ptr::non_null::NonNull","id":3}}`,
			"NonNull",
		},
		{
			"nested_generics",
			`{"resolved_path":{"path":"crate::vec::Vec","id":241,"args":{"angle_bracketed":{"args":[{"type":{"resolved_path":{"path":"crate::string::String","id":5}}}]}}}}`,
			"Vec<String>",
		},
		{
			"tuple",
			`{"tuple":[{"primitive":"i32"},{"resolved_path":{"path":"crate::string::String","id":5}}]}`,
			"(i32, String)",
		},
		{
			"empty_args",
			`{"resolved_path":{"path":"crate::boxed::Box","id":2,"args":{"angle_bracketed":{"args":[]}}}}`,
			"Box",
		},
		{
			"unrecognized_variant",
			`{"borrowed_ref":{"type":{"primitive":"str"}}}`,
			"unknown",
		},
		{
			"invalid_json",
			`not json`,
			"unknown",
		},
		{
			"empty_object",
			`{}`,
			"unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TypeName(json.RawMessage(tt.json))
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
