// File: value.go
// Title: Nested Data Values
// Description: Defines the value model shared by the clone, path and codec
//              functions: ordered lists, insertion ordered objects and plain
//              scalars. Native []any and map[string]any are accepted as well.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-15
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation
// - 2026-10-19 v0.1.1: Null entries are reported as present

package valuex

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Value is any node of a nested data structure: nil, bool, an integer,
// a float, a string, a List, a []any, an *Object or a map[string]any.
type Value = any

// List is an ordered sequence of values.
type List []Value

// Kind classifies a Value.
type Kind int

const (
	KindInvalid Kind = iota
	KindNull
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
	KindObject
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindNull:    "null",
	KindBool:    "bool",
	KindInt:     "int",
	KindFloat:   "float",
	KindString:  "string",
	KindList:    "list",
	KindObject:  "object",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "invalid"
	}
	return kindNames[k]
}

// IsScalar reports whether values of this kind are terminal.
func (k Kind) IsScalar() bool {
	return k >= KindNull && k <= KindString
}

// KindOf returns the kind of v, or KindInvalid for values outside the model
// such as funcs, channels, pointers or structs.
func KindOf(v Value) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindInt
	case float32, float64:
		return KindFloat
	case string:
		return KindString
	case List, []any:
		return KindList
	case *Object, map[string]any:
		if o, ok := v.(*Object); ok && o == nil {
			return KindInvalid
		}
		return KindObject
	default:
		return KindInvalid
	}
}

// Object is a string keyed mapping that remembers insertion order.
// Re-assigning an existing key keeps its position. The zero value is not
// usable; create objects with NewObject.
type Object struct {
	m *linkedhashmap.Map
}

// slot boxes stored values. linkedhashmap.Get reports a nil value as a
// missing key, so a null entry must never be stored bare.
type slot struct {
	v Value
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{m: linkedhashmap.New()}
}

// Set stores value under key and returns the object for chaining.
func (o *Object) Set(key string, value Value) *Object {
	o.m.Put(key, slot{v: value})
	return o
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	raw, ok := o.m.Get(key)
	if !ok {
		return nil, false
	}
	return raw.(slot).v, true
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.m.Get(key)
	return ok
}

// Delete removes key. Deleting a missing key is a no-op.
func (o *Object) Delete(key string) {
	o.m.Remove(key)
}

// Len returns the number of entries.
func (o *Object) Len() int {
	return o.m.Size()
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	raw := o.m.Keys()
	keys := make([]string, len(raw))
	for i, k := range raw {
		keys[i] = k.(string)
	}
	return keys
}

// Range calls fn for each entry in insertion order until fn returns false.
func (o *Object) Range(fn func(key string, value Value) bool) {
	it := o.m.Iterator()
	for it.Next() {
		if !fn(it.Key().(string), it.Value().(slot).v) {
			return
		}
	}
}

// Equal reports whether o and other hold equal values under the same keys.
// Key order is not compared.
func (o *Object) Equal(other *Object) bool {
	return Equal(o, other)
}
