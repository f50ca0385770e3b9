// File: equal.go
// Title: Structural Equality
// Description: Compares values by content. Object key order is ignored, lists
//              compare element-wise and numbers compare across integer kinds.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
// - 2026-10-19 v0.1.0: File header added

package valuex

import (
	"sort"
	"strconv"
)

// Equal reports whether a and b are structurally equal. Lists compare element
// by element; objects compare by key set and values, ignoring key order.
// List and []any are interchangeable, as are *Object and map[string]any.
// Integers compare by value regardless of their Go type, floats likewise,
// but an integer never equals a float.
func Equal(a, b Value) bool {
	ka, kb := KindOf(a), KindOf(b)
	if ka != kb || ka == KindInvalid {
		return false
	}

	switch ka {
	case KindNull:
		return true
	case KindBool:
		return a.(bool) == b.(bool)
	case KindInt:
		return intString(a) == intString(b)
	case KindFloat:
		return toFloat(a) == toFloat(b)
	case KindString:
		return a.(string) == b.(string)
	case KindList:
		sa, sb := asSeq(a), asSeq(b)
		if len(sa) != len(sb) {
			return false
		}
		for i := range sa {
			if !Equal(sa[i], sb[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if objectLen(a) != objectLen(b) {
			return false
		}
		for _, key := range objectKeys(a) {
			va, _ := lookup(a, key)
			vb, ok := lookup(b, key)
			if !ok || !Equal(va, vb) {
				return false
			}
		}
		return true
	}
	return false
}

// asSeq views a List or []any as []any.
func asSeq(v Value) []any {
	switch t := v.(type) {
	case List:
		return t
	case []any:
		return t
	}
	return nil
}

func objectLen(v Value) int {
	switch t := v.(type) {
	case *Object:
		return t.Len()
	case map[string]any:
		return len(t)
	}
	return 0
}

// objectKeys returns the keys of an object value. Native maps have no order,
// so their keys are sorted.
func objectKeys(v Value) []string {
	switch t := v.(type) {
	case *Object:
		return t.Keys()
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return keys
	}
	return nil
}

func lookup(v Value, key string) (Value, bool) {
	switch t := v.(type) {
	case *Object:
		return t.Get(key)
	case map[string]any:
		value, ok := t[key]
		return value, ok
	}
	return nil, false
}

// intString renders any Go integer in decimal, which is canonical across
// signed and unsigned types.
func intString(v Value) string {
	switch n := v.(type) {
	case int:
		return strconv.FormatInt(int64(n), 10)
	case int8:
		return strconv.FormatInt(int64(n), 10)
	case int16:
		return strconv.FormatInt(int64(n), 10)
	case int32:
		return strconv.FormatInt(int64(n), 10)
	case int64:
		return strconv.FormatInt(n, 10)
	case uint:
		return strconv.FormatUint(uint64(n), 10)
	case uint8:
		return strconv.FormatUint(uint64(n), 10)
	case uint16:
		return strconv.FormatUint(uint64(n), 10)
	case uint32:
		return strconv.FormatUint(uint64(n), 10)
	case uint64:
		return strconv.FormatUint(n, 10)
	}
	return ""
}

func toFloat(v Value) float64 {
	switch f := v.(type) {
	case float32:
		return float64(f)
	case float64:
		return f
	}
	return 0
}
