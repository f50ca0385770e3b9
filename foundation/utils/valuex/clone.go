// File: clone.go
// Title: Deep Cloning of Nested Values
// Description: Recursive reconstruction of every container in a value tree so
//              that the clone shares no mutable substructure with its source.
//              Cycles and values outside the data model are rejected.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package valuex

import (
	"fmt"
	"reflect"
	"strconv"

	mdwerrors "github.com/msto63/mdwkit/foundation/core/errors"
)

// Clone returns a copy of v in which every List, []any, *Object and
// map[string]any has been rebuilt, so mutating the copy at any depth never
// affects v. Scalars are immutable and returned as-is. Container types are
// preserved: a []any clones to a []any, an *Object to an *Object with the
// same key order.
//
// Clone returns an UNSUPPORTED_STRUCTURE error when v contains a cycle or a
// value outside the data model. A container reachable along two different
// paths is copied twice; the clone holds two independent copies.
func Clone(v Value) (Value, error) {
	c := tracker{ancestors: make(map[uintptr]struct{})}
	return c.clone(v, "$")
}

// DeepClone is Clone for input known to be acyclic plain data. It panics
// with the Clone error otherwise.
func DeepClone(v Value) Value {
	out, err := Clone(v)
	if err != nil {
		panic(err)
	}
	return out
}

// tracker records the containers on the current path to detect cycles.
type tracker struct {
	ancestors map[uintptr]struct{}
}

func (c *tracker) clone(v Value, path string) (Value, error) {
	switch t := v.(type) {
	case List:
		return cloneSeq(c, t, path)
	case []any:
		return cloneSeq(c, t, path)
	case *Object:
		if t == nil {
			return nil, unsupported(path, "nil object")
		}
		if err := c.enter(t, path); err != nil {
			return nil, err
		}
		defer c.leave(t)

		out := NewObject()
		var err error
		t.Range(func(key string, value Value) bool {
			var cv Value
			cv, err = c.clone(value, childKey(path, key))
			if err != nil {
				return false
			}
			out.Set(key, cv)
			return true
		})
		if err != nil {
			return nil, err
		}
		return out, nil
	case map[string]any:
		if t == nil {
			return map[string]any(nil), nil
		}
		if err := c.enter(t, path); err != nil {
			return nil, err
		}
		defer c.leave(t)

		out := make(map[string]any, len(t))
		for key, value := range t {
			cv, err := c.clone(value, childKey(path, key))
			if err != nil {
				return nil, err
			}
			out[key] = cv
		}
		return out, nil
	}

	if KindOf(v).IsScalar() {
		return v, nil
	}
	return nil, unsupported(path, fmt.Sprintf("%T is not plain data", v))
}

// cloneSeq rebuilds a List or []any keeping its concrete type.
func cloneSeq[S ~[]any](c *tracker, s S, path string) (Value, error) {
	if s == nil {
		return S(nil), nil
	}
	if err := c.enter(s, path); err != nil {
		return nil, err
	}
	defer c.leave(s)

	out := make(S, len(s))
	for i, value := range s {
		cv, err := c.clone(value, childIndex(path, i))
		if err != nil {
			return nil, err
		}
		out[i] = cv
	}
	return out, nil
}

func (c *tracker) enter(container any, path string) error {
	id, ok := identity(container)
	if !ok {
		return nil
	}
	if _, seen := c.ancestors[id]; seen {
		return unsupported(path, "cycle detected")
	}
	c.ancestors[id] = struct{}{}
	return nil
}

func (c *tracker) leave(container any) {
	if id, ok := identity(container); ok {
		delete(c.ancestors, id)
	}
}

// identity returns the address backing a container. Empty slices have no
// addressable element and cannot take part in a cycle.
func identity(container any) (uintptr, bool) {
	rv := reflect.ValueOf(container)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.Len() == 0 {
			return 0, false
		}
		return rv.Pointer(), true
	case reflect.Map, reflect.Pointer:
		return rv.Pointer(), true
	}
	return 0, false
}

func unsupported(path, reason string) error {
	return mdwerrors.UnsupportedStructure(mdwerrors.ModuleValuex, "clone", path, reason)
}

func childIndex(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

func childKey(path, key string) string {
	if isPlainKey(key) {
		return path + "." + key
	}
	return path + "[" + strconv.Quote(key) + "]"
}

func isPlainKey(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		if r == '.' || r == '[' || r == ']' || r == '"' {
			return false
		}
	}
	return true
}
