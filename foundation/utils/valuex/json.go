// File: json.go
// Title: JSON Codec
// Description: Streams JSON into values while keeping object key order and
//              integer precision, and encodes values back to indented JSON.
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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
)

type jsonCodec struct{}

func (jsonCodec) Format() Format      { return FormatJSON }
func (jsonCodec) ContentType() string { return "application/json" }

// Decode walks the token stream so object keys keep document order. Numbers
// without fraction or exponent that fit int64 become int64, all others float64.
func (jsonCodec) Decode(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeJSONValue(dec)
	if err != nil {
		return nil, decodeError(FormatJSON, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, decodeError(FormatJSON, errors.New("unexpected data after top-level value"))
	}
	return v, nil
}

func decodeJSONValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key %v is not a string", keyTok)
				}
				value, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(key, value)
			}
			_, err := dec.Token()
			return obj, err
		case '[':
			list := List{}
			for dec.More() {
				value, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				list = append(list, value)
			}
			_, err := dec.Token()
			return list, err
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i, nil
		}
		return t.Float64()
	case string, bool, nil:
		return t, nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

// Encode writes indented JSON with objects in key order.
func (jsonCodec) Encode(v Value) ([]byte, error) {
	var compact bytes.Buffer
	if err := encodeJSONValue(&compact, v, "$"); err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, encodeError("$", err.Error())
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func encodeJSONValue(buf *bytes.Buffer, v Value, path string) error {
	switch KindOf(v) {
	case KindList:
		buf.WriteByte('[')
		for i, item := range asSeq(v) {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeJSONValue(buf, item, childIndex(path, i)); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	case KindObject:
		buf.WriteByte('{')
		for i, key := range objectKeys(v) {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONScalar(buf, key); err != nil {
				return err
			}
			buf.WriteByte(':')
			value, _ := lookup(v, key)
			if err := encodeJSONValue(buf, value, childKey(path, key)); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	case KindFloat:
		if f := toFloat(v); math.IsInf(f, 0) || math.IsNaN(f) {
			return encodeError(path, "JSON cannot represent NaN or infinity")
		}
	case KindInvalid:
		return encodeError(path, fmt.Sprintf("%T is not plain data", v))
	}
	return writeJSONScalar(buf, v)
}

func writeJSONScalar(buf *bytes.Buffer, v Value) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}
