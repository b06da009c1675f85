// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package tree

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// keyPathSep joins the segments of a TOML key path. It cannot appear in a
// decoded key.
const keyPathSep = "\x00"

// DecodeTOML decodes a TOML document. Keys keep their document order.
// Dates and times decode as strings in their TOML form.
func DecodeTOML(data []byte) (Value, error) {
	var doc map[string]any
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return Value{}, fmt.Errorf("decoding toml: %w", err)
	}

	keys := md.Keys()
	order := make(map[string]int, len(keys))
	for i, k := range keys {
		path := strings.Join(k, keyPathSep)
		if _, seen := order[path]; !seen {
			order[path] = i
		}
	}
	return fromTOML(doc, "", order, 0)
}

func fromTOML(v any, path string, order map[string]int, depth int) (Value, error) {
	if depth > maxDepth {
		return Value{}, tooDeep()
	}

	switch x := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(x), nil
	case int64:
		return Int(x), nil
	case float64:
		return Float(x), nil
	case string:
		return String(x), nil
	case time.Time:
		return String(tomlTime(x)), nil
	case map[string]any:
		return tomlTable(x, path, order, depth)
	case []map[string]any:
		items := make([]Value, 0, len(x))
		for _, t := range x {
			item, err := tomlTable(t, path, order, depth+1)
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
		}
		return List(items...), nil
	case []any:
		items := make([]Value, 0, len(x))
		for _, e := range x {
			item, err := fromTOML(e, path, order, depth+1)
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
		}
		return List(items...), nil
	}
	return Value{}, fmt.Errorf("%w: toml value of type %T", ErrUnsupportedInput, v)
}

// tomlTable converts a table, ordering its keys by first appearance in the
// document. Keys the metadata does not list go last, alphabetically.
func tomlTable(t map[string]any, path string, order map[string]int, depth int) (Value, error) {
	child := func(k string) string {
		if path == "" {
			return k
		}
		return path + keyPathSep + k
	}

	keys := slices.Collect(maps.Keys(t))
	slices.SortFunc(keys, func(a, b string) int {
		ia, okA := order[child(a)]
		ib, okB := order[child(b)]
		switch {
		case okA && okB:
			return cmp.Compare(ia, ib)
		case okA:
			return -1
		case okB:
			return 1
		}
		return strings.Compare(a, b)
	})

	m := NewMap()
	for _, k := range keys {
		v, err := fromTOML(t[k], child(k), order, depth+1)
		if err != nil {
			return Value{}, err
		}
		m.Set(k, v)
	}
	return m, nil
}

func tomlTime(t time.Time) string {
	switch t.Location().String() {
	case "datetime-local":
		return t.Format("2006-01-02T15:04:05.999999999")
	case "date-local":
		return t.Format(time.DateOnly)
	case "time-local":
		return t.Format("15:04:05.999999999")
	}
	return t.Format(time.RFC3339Nano)
}
