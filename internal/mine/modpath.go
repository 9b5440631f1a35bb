package mine

import "strings"

// sourceRoots are the recognized stdlib crate roots, in priority order. A
// span filename is matched against each root's source prefix in turn.
var sourceRoots = []struct {
	name   string
	prefix string
}{
	{"std", "std/src/"},
	{"alloc", "alloc/src/"},
	{"core", "core/src/"},
}

// collectionsCollapse maps internal std collections layouts to the single
// public namespace they are exposed under.
var collectionsCollapse = map[string]string{
	"collections/hash/map":    "std::collections",
	"collections/hash/set":    "std::collections",
	"collections/btree/map":   "std::collections",
	"collections/btree/set":   "std::collections",
	"collections/linked_list": "std::collections",
	"collections/vec_deque":   "std::collections",
	"collections/binary_heap": "std::collections",
}

// ModulePathFromFilename derives the canonical module path from a span
// filename, e.g. "alloc/src/string.rs" → "alloc::string". Filenames outside
// the recognized stdlib source roots yield ("", false).
func ModulePathFromFilename(filename string) (string, bool) {
	for _, root := range sourceRoots {
		idx := strings.Index(filename, root.prefix)
		if idx < 0 {
			continue
		}

		parts := modulePathParts(filename[idx+len(root.prefix):])
		if len(parts) == 0 {
			return root.name, true
		}

		// std's collections expose types at std::collections regardless of
		// the file layout underneath.
		if root.name == "std" {
			if collapsed, ok := collectionsCollapse[strings.Join(parts, "/")]; ok {
				return collapsed, true
			}
			if len(parts) >= 2 && parts[0] == "collections" {
				return "std::collections", true
			}
		}

		return root.name + "::" + strings.Join(parts, "::"), true
	}
	return "", false
}

// modulePathParts converts the path after "crate/src/" into module path
// components: mod.rs and lib.rs carry no module name, and the .rs extension
// is stripped from the rest.
func modulePathParts(pathAfterSrc string) []string {
	var parts []string
	for _, part := range strings.Split(pathAfterSrc, "/") {
		if part == "mod.rs" || part == "lib.rs" {
			continue
		}
		parts = append(parts, strings.TrimSuffix(part, ".rs"))
	}
	return parts
}
