package mine

import "strings"

// Shape classifies a struct by how its fields are declared.
type Shape int

const (
	ShapeNamed Shape = iota
	ShapeTuple
	ShapeUnit
)

func (s Shape) String() string {
	switch s {
	case ShapeTuple:
		return "tuple"
	case ShapeUnit:
		return "unit"
	default:
		return "named"
	}
}

// Field describes a single struct field in declaration order.
type Field struct {
	Name       string `json:"name"`
	TypeName   string `json:"type_name"`
	IsPublic   bool   `json:"is_public"`
	StructPath string `json:"struct_path"`
}

// Struct is the mined description of one struct type, keyed by its full
// module path (e.g. "alloc::string::String").
type Struct struct {
	Path       string  `json:"path"`
	SimpleName string  `json:"simple_name"`
	ModulePath string  `json:"module_path"`
	Shape      Shape   `json:"shape"`
	Fields     []Field `json:"fields"`
}

// SplitPath splits a full path at the last "::" separator into module path
// and simple name. Paths without a separator have an empty module path.
func SplitPath(path string) (modulePath, simpleName string) {
	if idx := strings.LastIndex(path, "::"); idx >= 0 {
		return path[:idx], path[idx+2:]
	}
	return "", path
}

// NewStruct builds a Struct for the given full path with its module path
// and simple name derived from the path.
func NewStruct(path string) *Struct {
	modulePath, simpleName := SplitPath(path)
	return &Struct{
		Path:       path,
		SimpleName: simpleName,
		ModulePath: modulePath,
	}
}

// Renamed returns a copy of the struct re-keyed under a different full path,
// with module path and simple name recomputed from it. Used when a lookup
// succeeds through an alias: the caller gets the descriptor under the name
// they asked for.
func (s *Struct) Renamed(path string) *Struct {
	out := *s
	out.Fields = append([]Field(nil), s.Fields...)
	out.Path = path
	out.ModulePath, out.SimpleName = SplitPath(path)
	return &out
}
