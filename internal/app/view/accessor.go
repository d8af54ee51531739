// Package view shapes heterogeneous upstream JSON into the dashboard view models.
//
// Upstream field names are not stable, so every value is read through an explicit,
// ordered list of accessors. The first accessor that yields a usable value wins; the
// order of each list is part of the contract of the function that uses it.
package view

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"vibe_tracker/internal/domain/entity"
)

// Accessor reads one candidate value from an item. ok is false when the field is absent or null.
type Accessor func(item entity.RawItem) (value any, ok bool)

// Field reads a top-level field.
func Field(name string) Accessor {
	return func(item entity.RawItem) (any, bool) {
		v, ok := item[name]
		if !ok || v == nil {
			return nil, false
		}
		return v, true
	}
}

// Nested reads a field through a chain of nested objects, e.g. Nested("metadata", "image").
func Nested(path ...string) Accessor {
	return func(item entity.RawItem) (any, bool) {
		var cur any = map[string]any(item)
		for _, key := range path {
			obj, ok := asObject(cur)
			if !ok {
				return nil, false
			}
			cur, ok = obj[key]
			if !ok || cur == nil {
				return nil, false
			}
		}
		return cur, true
	}
}

// FirstPresent returns the first value that is present and not null, even if it is empty or zero.
func FirstPresent(item entity.RawItem, accessors ...Accessor) (any, bool) {
	for _, get := range accessors {
		if v, ok := get(item); ok {
			return v, true
		}
	}
	return nil, false
}

// FirstNonEmpty returns the first value that is present and non-empty
// (not "", not zero, not false).
func FirstNonEmpty(item entity.RawItem, accessors ...Accessor) (any, bool) {
	for _, get := range accessors {
		if v, ok := get(item); ok && !isEmpty(v) {
			return v, true
		}
	}
	return nil, false
}

// StringOf is FirstNonEmpty rendered as text, falling back to def.
func StringOf(item entity.RawItem, def string, accessors ...Accessor) string {
	if v, ok := FirstNonEmpty(item, accessors...); ok {
		return ToString(v)
	}
	return def
}

// ToString renders a decoded JSON scalar as text. Objects and arrays yield "".
func ToString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case fmt.Stringer:
		return t.String()
	default:
		return ""
	}
}

// ToFloat parses a decoded JSON scalar as a finite number.
func ToFloat(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case json.Number:
		parsed, err := strconv.ParseFloat(t.String(), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	case fmt.Stringer:
		return ToFloat(t.String())
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case json.Number, float64, float32, int, int64:
		f, ok := ToFloat(t)
		return !ok || f == 0
	default:
		return false
	}
}

func asObject(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case entity.RawItem:
		return t, true
	default:
		return nil, false
	}
}

// ExtractList returns the item list of an upstream payload: the "data" array when present,
// the payload itself when it is an array, otherwise nothing.
func ExtractList(payload any) []entity.RawItem {
	if obj, ok := asObject(payload); ok {
		if data, ok := obj["data"]; ok && !isEmpty(data) {
			return toItems(data)
		}
		return nil
	}
	return toItems(payload)
}

// ExtractField returns the array stored under the first non-empty of keys.
func ExtractField(payload any, keys ...string) []entity.RawItem {
	obj, ok := asObject(payload)
	if !ok {
		return nil
	}
	for _, key := range keys {
		if v, ok := obj[key]; ok && !isEmpty(v) {
			return toItems(v)
		}
	}
	return nil
}

func toItems(v any) []entity.RawItem {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	items := make([]entity.RawItem, 0, len(arr))
	for _, el := range arr {
		if obj, ok := asObject(el); ok {
			items = append(items, entity.RawItem(obj))
		}
	}
	return items
}
