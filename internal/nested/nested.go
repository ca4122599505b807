// Package nested manipulates translation trees: map[string]any values as
// produced by the json, toml and yaml codecs, addressed by dot-joined paths
// such as "ui.button.save".
package nested

import (
	"sort"
	"strings"
)

// Lookup resolves path inside tree. A flat entry named exactly like the full
// path wins over a nested descent, so locale files may mix literal
// "app.title" keys with real nesting.
func Lookup(tree map[string]any, path string) (any, bool) {
	if tree == nil || path == "" {
		return nil, false
	}
	if v, ok := tree[path]; ok {
		return v, true
	}
	parts := strings.Split(path, ".")
	current := tree
	for i := 0; i < len(parts)-1; i++ {
		child, ok := current[parts[i]].(map[string]any)
		if !ok {
			return nil, false
		}
		current = child
	}
	v, ok := current[parts[len(parts)-1]]
	return v, ok
}

// String resolves path and reports the value only when it is a string leaf.
func String(tree map[string]any, path string) (string, bool) {
	v, ok := Lookup(tree, path)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Set stores value at path, creating intermediate objects as needed.
// Non-object values along the way are replaced by objects.
func Set(tree map[string]any, path string, value any) {
	if tree == nil || path == "" {
		return
	}
	parts := strings.Split(path, ".")
	current := tree
	for i := 0; i < len(parts)-1; i++ {
		child, ok := current[parts[i]].(map[string]any)
		if !ok {
			child = map[string]any{}
			current[parts[i]] = child
		}
		current = child
	}
	current[parts[len(parts)-1]] = value
}

// Flatten returns every string leaf of tree keyed by its dot-joined path.
// Keys that contain literal dots flatten to the same path they would have
// had as nested objects.
func Flatten(tree map[string]any) map[string]string {
	out := map[string]string{}
	flattenInto(tree, "", out)
	return out
}

func flattenInto(tree map[string]any, prefix string, out map[string]string) {
	for key, value := range tree {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		switch v := value.(type) {
		case string:
			out[path] = v
		case map[string]any:
			flattenInto(v, path, out)
		}
	}
}

// Keys returns the sorted dot-joined paths of every string leaf in tree.
func Keys(tree map[string]any) []string {
	flat := Flatten(tree)
	keys := make([]string, 0, len(flat))
	for key := range flat {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Clone deep-copies tree. Leaves that are neither strings nor objects are
// copied by reference, which is safe for decoded locale data.
func Clone(tree map[string]any) map[string]any {
	out := make(map[string]any, len(tree))
	for key, value := range tree {
		if child, ok := value.(map[string]any); ok {
			out[key] = Clone(child)
			continue
		}
		out[key] = value
	}
	return out
}
