// File: native.go
// Title: Conversion between Go Values and Value Trees
// Description: Converts arbitrary Go slices, string keyed maps and scalars into
//              the value model and back to plain []any / map[string]any.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package valuex

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"time"

	mdwerrors "github.com/msto63/mdwkit/foundation/core/errors"
)

// FromNative converts x into a value tree built from List, *Object, int64,
// float64, bool, string and nil. Any slice or array becomes a List, any map
// with string keys an *Object with sorted keys, time.Time an RFC 3339 string.
// Existing *Object values keep their key order.
func FromNative(x any) (Value, error) {
	t := tracker{ancestors: make(map[uintptr]struct{})}
	return t.fromNative(reflect.ValueOf(x), "$")
}

func (c *tracker) fromNative(rv reflect.Value, path string) (Value, error) {
	if !rv.IsValid() {
		return nil, nil
	}

	if rv.CanInterface() {
		switch t := rv.Interface().(type) {
		case *Object:
			if t == nil {
				return nil, nil
			}
			if err := c.enter(t, path); err != nil {
				return nil, err
			}
			defer c.leave(t)

			out := NewObject()
			for _, key := range t.Keys() {
				value, _ := t.Get(key)
				cv, err := c.fromNative(reflect.ValueOf(value), childKey(path, key))
				if err != nil {
					return nil, err
				}
				out.Set(key, cv)
			}
			return out, nil
		case time.Time:
			return t.Format(time.RFC3339Nano), nil
		}
	}

	switch rv.Kind() {
	case reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
		return c.fromNative(rv.Elem(), path)
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return nil, mdwerrors.InvalidArgument(mdwerrors.ModuleValuex, "from_native", u, "an integer within int64 range")
		}
		return int64(u), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.String:
		return rv.String(), nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice {
			if rv.IsNil() {
				return List(nil), nil
			}
			if err := c.enter(rv.Interface(), path); err != nil {
				return nil, err
			}
			defer c.leave(rv.Interface())
		}
		out := make(List, rv.Len())
		for i := range out {
			cv, err := c.fromNative(rv.Index(i), childIndex(path, i))
			if err != nil {
				return nil, err
			}
			out[i] = cv
		}
		return out, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, unsupported(path, fmt.Sprintf("map key type %s is not string", rv.Type().Key()))
		}
		if rv.IsNil() {
			return nil, nil
		}
		if err := c.enter(rv.Interface(), path); err != nil {
			return nil, err
		}
		defer c.leave(rv.Interface())

		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)

		out := NewObject()
		for _, key := range keys {
			cv, err := c.fromNative(rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key())), childKey(path, key))
			if err != nil {
				return nil, err
			}
			out.Set(key, cv)
		}
		return out, nil
	}

	return nil, unsupported(path, fmt.Sprintf("%s is not plain data", rv.Type()))
}

// ToNative converts a value tree to []any, map[string]any and scalars, the
// shapes encoding/json and most libraries accept. Key order is lost.
func ToNative(v Value) any {
	switch t := v.(type) {
	case List:
		return toNativeSeq(t)
	case []any:
		return toNativeSeq(t)
	case *Object:
		if t == nil {
			return nil
		}
		out := make(map[string]any, t.Len())
		t.Range(func(key string, value Value) bool {
			out[key] = ToNative(value)
			return true
		})
		return out
	case map[string]any:
		if t == nil {
			return map[string]any(nil)
		}
		out := make(map[string]any, len(t))
		for key, value := range t {
			out[key] = ToNative(value)
		}
		return out
	}
	return v
}

func toNativeSeq(s []any) []any {
	if s == nil {
		return nil
	}
	out := make([]any, len(s))
	for i, value := range s {
		out[i] = ToNative(value)
	}
	return out
}
