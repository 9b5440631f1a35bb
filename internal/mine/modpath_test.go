package mine

import "testing"

func TestModulePathFromFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		filename string
		want     string
		ok       bool
	}{
		{"std_plain_file", "std/src/path.rs", "std::path", true},
		{"std_mod_file", "std/src/collections/mod.rs", "std::collections", true},
		{"std_nested", "std/src/io/buffered/bufreader.rs", "std::io::buffered::bufreader", true},
		{"std_lib_root", "std/src/lib.rs", "std", true},
		{"alloc_plain_file", "alloc/src/string.rs", "alloc::string", true},
		{"alloc_mod_file", "alloc/src/vec/mod.rs", "alloc::vec", true},
		{"alloc_lib_root", "alloc/src/lib.rs", "alloc", true},
		{"core_mod_file", "core/src/ptr/mod.rs", "core::ptr", true},
		{"core_nested", "core/src/num/nonzero.rs", "core::num::nonzero", true},
		{"hash_map_collapse", "std/src/collections/hash/map.rs", "std::collections", true},
		{"hash_set_collapse", "std/src/collections/hash/set.rs", "std::collections", true},
		{"btree_map_collapse", "std/src/collections/btree/map.rs", "std::collections", true},
		{"vec_deque_collapse", "std/src/collections/vec_deque.rs", "std::collections", true},
		{"binary_heap_collapse", "std/src/collections/binary_heap.rs", "std::collections", true},
		{"collections_catchall", "std/src/collections/other/deep/file.rs", "std::collections", true},
		{"alloc_collections_not_collapsed", "alloc/src/collections/btree/map.rs", "alloc::collections::btree::map", true},
		{"absolute_prefix_match", "/rustc/abc123/library/alloc/src/boxed.rs", "alloc::boxed", true},
		{"unrecognized", "src/main.rs", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ModulePathFromFilename(tt.filename)
			if got != tt.want || ok != tt.ok {
				t.Errorf("got (%q, %v), want (%q, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}
