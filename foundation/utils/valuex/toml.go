// File: toml.go
// Title: TOML Codec
// Description: Decodes TOML documents into values and encodes object roots back
//              to TOML. Nulls have no TOML form and are rejected on encode.
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
	"bytes"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type tomlCodec struct{}

func (tomlCodec) Format() Format      { return FormatTOML }
func (tomlCodec) ContentType() string { return "application/toml" }

// Decode parses a TOML document and orders every table by the order its keys
// appear in the document. Date and time values become RFC 3339 strings.
func (tomlCodec) Decode(data []byte) (Value, error) {
	var raw map[string]any
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, decodeError(FormatTOML, err)
	}
	return fromTOML(raw, nil, keyOrder(md)), nil
}

// keyOrder maps each table path to its child keys in document order. Paths
// into arrays of tables carry no index, so all elements share one order.
func keyOrder(md toml.MetaData) map[string][]string {
	order := make(map[string][]string)
	seen := make(map[string]bool)
	for _, key := range md.Keys() {
		for i := 1; i <= len(key); i++ {
			full := strings.Join(key[:i], "\x00")
			if seen[full] {
				continue
			}
			seen[full] = true
			parent := strings.Join(key[:i-1], "\x00")
			order[parent] = append(order[parent], key[i-1])
		}
	}
	return order
}

func fromTOML(x any, path []string, order map[string][]string) Value {
	switch t := x.(type) {
	case map[string]any:
		obj := NewObject()
		for _, key := range orderedKeys(t, order[strings.Join(path, "\x00")]) {
			obj.Set(key, fromTOML(t[key], append(path[:len(path):len(path)], key), order))
		}
		return obj
	case []map[string]any:
		list := make(List, len(t))
		for i, table := range t {
			list[i] = fromTOML(table, path, order)
		}
		return list
	case []any:
		list := make(List, len(t))
		for i, item := range t {
			list[i] = fromTOML(item, path, order)
		}
		return list
	case time.Time:
		return t.Format(time.RFC3339Nano)
	}
	return x
}

// orderedKeys lists the keys of m in document order. Keys the metadata does
// not know, such as those of inline tables inside arrays, follow sorted.
func orderedKeys(m map[string]any, known []string) []string {
	keys := make([]string, 0, len(m))
	placed := make(map[string]bool, len(m))
	for _, k := range known {
		if _, ok := m[k]; ok && !placed[k] {
			keys = append(keys, k)
			placed[k] = true
		}
	}

	var rest []string
	for k := range m {
		if !placed[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

// Encode writes v, which must be an object, as a TOML document. The TOML
// encoder sorts keys within each table, and TOML has no null, so nil values
// are rejected.
func (tomlCodec) Encode(v Value) ([]byte, error) {
	if KindOf(v) != KindObject {
		return nil, encodeError("$", fmt.Sprintf("TOML document root must be an object, found %s", KindOf(v)))
	}
	if err := checkTOML(v, "$"); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(ToNative(v)); err != nil {
		return nil, encodeError("$", err.Error())
	}
	return buf.Bytes(), nil
}

func checkTOML(v Value, path string) error {
	switch KindOf(v) {
	case KindNull:
		return encodeError(path, "TOML cannot represent null")
	case KindInvalid:
		return encodeError(path, fmt.Sprintf("%T is not plain data", v))
	case KindList:
		for i, item := range asSeq(v) {
			if err := checkTOML(item, childIndex(path, i)); err != nil {
				return err
			}
		}
	case KindObject:
		for _, key := range objectKeys(v) {
			value, _ := lookup(v, key)
			if err := checkTOML(value, childKey(path, key)); err != nil {
				return err
			}
		}
	}
	return nil
}
