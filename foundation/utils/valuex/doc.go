// File: doc.go
// Title: Package Documentation for valuex
// Description: Package valuex models nested data and provides deep cloning,
//              path access and order preserving document codecs.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation, replaces the generic map helpers
// - 2026-10-19 v0.2.0: BSON codec

// Package valuex provides nested data values for mdwkit: configuration trees,
// decoded documents and anything else built from lists, string keyed objects
// and scalars.
//
// # Value Model
//
// A Value is nil, bool, an integer, a float, a string, a List, a []any, an
// *Object or a map[string]any. Object keeps insertion order
// (github.com/emirpasic/gods linked hash map), so documents decoded by this
// package encode back with their keys in the original order.
//
// # Cloning
//
// Clone rebuilds every container of a value tree, so the result shares no
// mutable substructure with its source:
//
//	src := valuex.NewObject().Set("nested", valuex.NewObject().Set("b", int64(2)))
//	dst := valuex.DeepClone(src)
//	_ = valuex.Set(dst, "nested.b", int64(99))
//	v, _ := valuex.Get(src, "nested.b") // still 2
//
// Clone reports cycles and non-data values (funcs, channels, structs,
// pointers) as UNSUPPORTED_STRUCTURE errors. DeepClone panics instead and is
// meant for data known to be well formed.
//
// # Codecs
//
// Decode and Encode convert between value trees and JSON, YAML, TOML,
// MessagePack and BSON documents:
//
//	v, err := valuex.Decode(data, valuex.FormatYAML)
//	out, err := valuex.Encode(v, valuex.FormatJSON)
//
// Decoding keeps key order for every format. TOML output is sorted by the
// TOML encoder. TOML and BSON need an object at the root. Malformed input
// yields INVALID_FORMAT errors.
package valuex
