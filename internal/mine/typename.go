package mine

import (
	"encoding/json"
	"strings"
)

// cratePrefix is rustdoc's self-reference prefix on resolved paths inside
// the defining crate (e.g. "crate::vec::Vec").
const cratePrefix = "crate::"

// containerNames rewrites a handful of well-known internal container paths
// to the short names users see in public docs.
var containerNames = map[string]string{
	"vec::Vec":                       "Vec",
	"string::String":                 "String",
	"collections::hash_map::HashMap": "HashMap",
	"collections::hash_set::HashSet": "HashSet",
}

// TypeName renders a rustdoc type JSON into a display string. It never
// fails: unrecognized type variants render as "unknown".
func TypeName(typeJSON json.RawMessage) string {
	var outer map[string]json.RawMessage
	if err := json.Unmarshal(typeJSON, &outer); err != nil {
		return "unknown"
	}

	if prim, ok := outer["primitive"]; ok {
		var name string
		if err := json.Unmarshal(prim, &name); err == nil {
			return name
		}
	}

	if resolved, ok := outer["resolved_path"]; ok {
		if name := renderResolvedPath(resolved); name != "" {
			return name
		}
	}

	if g, ok := outer["generic"]; ok {
		var name string
		if err := json.Unmarshal(g, &name); err == nil {
			return name
		}
	}

	if tp, ok := outer["tuple"]; ok {
		return renderTuple(tp)
	}

	return "unknown"
}

func renderResolvedPath(resolved json.RawMessage) string {
	var rp struct {
		Path string           `json:"path"`
		ID   int              `json:"id"`
		Args *json.RawMessage `json:"args"`
	}
	if err := json.Unmarshal(resolved, &rp); err != nil {
		return ""
	}
	if rp.Path == "" {
		return ""
	}

	name := displayName(rp.Path)

	if rp.Args != nil {
		if args := renderGenericArgs(*rp.Args); args != "" {
			return name + "<" + args + ">"
		}
	}
	return name
}

// displayName strips the crate self-reference prefix, rewrites well-known
// container paths to their public short names, and otherwise keeps the last
// path segment.
func displayName(path string) string {
	path = strings.TrimPrefix(path, cratePrefix)
	if short, ok := containerNames[path]; ok {
		return short
	}
	if idx := strings.LastIndex(path, "::"); idx >= 0 {
		return path[idx+2:]
	}
	return path
}

func renderGenericArgs(argsJSON json.RawMessage) string {
	var args struct {
		AngleBracketed *struct {
			Args []json.RawMessage `json:"args"`
		} `json:"angle_bracketed"`
	}
	if err := json.Unmarshal(argsJSON, &args); err != nil || args.AngleBracketed == nil {
		return ""
	}

	var parts []string
	for _, arg := range args.AngleBracketed.Args {
		var a map[string]json.RawMessage
		if err := json.Unmarshal(arg, &a); err != nil {
			continue
		}
		if typeData, ok := a["type"]; ok {
			parts = append(parts, TypeName(typeData))
		}
	}
	return strings.Join(parts, ", ")
}

func renderTuple(tp json.RawMessage) string {
	var types []json.RawMessage
	if err := json.Unmarshal(tp, &types); err != nil {
		return "unknown"
	}
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = TypeName(t)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
