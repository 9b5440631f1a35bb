package rustdoc

import (
	"encoding/json"
	"testing"
)

func TestItemInnerPayload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		inner string
		kind  string
		found bool
	}{
		{"struct_present", `{"struct":{"kind":{"unit":{}}}}`, "struct", true},
		{"wrong_kind", `{"function":{}}`, "struct", false},
		{"empty_inner", ``, "struct", false},
		{"malformed_inner", `[1,2]`, "struct", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := Item{Inner: json.RawMessage(tt.inner)}
			got := it.InnerPayload(tt.kind)
			if (got != nil) != tt.found {
				t.Errorf("payload presence: got %v, want %v", got != nil, tt.found)
			}
		})
	}
}

func TestItemIsPublic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		visibility string
		want       bool
	}{
		{"public", `"public"`, true},
		{"default", `"default"`, false},
		{"crate", `"crate"`, false},
		{"restricted_object", `{"restricted":{"parent":5298,"path":"::string"}}`, false},
		{"absent", ``, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := Item{Visibility: json.RawMessage(tt.visibility)}
			if got := it.IsPublic(); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
