// File: msgpack.go
// Title: MessagePack Codec
// Description: Decodes and encodes MessagePack with map key order preserved.
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
	"math"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

type msgpackCodec struct{}

func (msgpackCodec) Format() Format      { return FormatMsgpack }
func (msgpackCodec) ContentType() string { return "application/msgpack" }

// Decode reads one MessagePack value. Maps must have string keys and keep
// their wire order; binary payloads become strings, timestamps RFC 3339
// strings.
func (msgpackCodec) Decode(data []byte) (Value, error) {
	r := bytes.NewReader(data)
	dec := msgpack.NewDecoder(r)

	v, err := decodeMsgpackValue(dec)
	if err != nil {
		return nil, decodeError(FormatMsgpack, err)
	}
	if r.Len() != 0 {
		return nil, decodeError(FormatMsgpack, fmt.Errorf("%d trailing bytes", r.Len()))
	}
	return v, nil
}

func decodeMsgpackValue(dec *msgpack.Decoder) (Value, error) {
	code, err := dec.PeekCode()
	if err != nil {
		return nil, err
	}

	switch {
	case msgpcode.IsFixedMap(code) || code == msgpcode.Map16 || code == msgpcode.Map32:
		n, err := dec.DecodeMapLen()
		if err != nil {
			return nil, err
		}
		obj := NewObject()
		for i := 0; i < n; i++ {
			key, err := dec.DecodeString()
			if err != nil {
				return nil, fmt.Errorf("map key: %w", err)
			}
			value, err := decodeMsgpackValue(dec)
			if err != nil {
				return nil, err
			}
			obj.Set(key, value)
		}
		return obj, nil
	case msgpcode.IsFixedArray(code) || code == msgpcode.Array16 || code == msgpcode.Array32:
		n, err := dec.DecodeArrayLen()
		if err != nil {
			return nil, err
		}
		list := make(List, 0, n)
		for i := 0; i < n; i++ {
			value, err := decodeMsgpackValue(dec)
			if err != nil {
				return nil, err
			}
			list = append(list, value)
		}
		return list, nil
	}

	x, err := dec.DecodeInterfaceLoose()
	if err != nil {
		return nil, err
	}
	switch t := x.(type) {
	case nil, bool, int64, float64, string:
		return t, nil
	case uint64:
		if t > math.MaxInt64 {
			return float64(t), nil
		}
		return int64(t), nil
	case []byte:
		return string(t), nil
	case time.Time:
		return t.UTC().Format(time.RFC3339Nano), nil
	}
	return nil, fmt.Errorf("unsupported MessagePack value %T", x)
}

// Encode writes v with the most compact integer encodings; objects keep
// key order.
func (msgpackCodec) Encode(v Value) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := encodeMsgpackValue(enc, v, "$"); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeMsgpackValue(enc *msgpack.Encoder, v Value, path string) error {
	var err error
	switch t := v.(type) {
	case nil:
		err = enc.EncodeNil()
	case bool:
		err = enc.EncodeBool(t)
	case float32:
		err = enc.EncodeFloat32(t)
	case float64:
		err = enc.EncodeFloat64(t)
	case string:
		err = enc.EncodeString(t)
	case uint, uint8, uint16, uint32, uint64:
		err = enc.EncodeUint(toUint(t))
	case int, int8, int16, int32, int64:
		err = enc.EncodeInt(toInt(t))
	default:
		switch KindOf(v) {
		case KindList:
			seq := asSeq(v)
			if err := enc.EncodeArrayLen(len(seq)); err != nil {
				return encodeError(path, err.Error())
			}
			for i, item := range seq {
				if err := encodeMsgpackValue(enc, item, childIndex(path, i)); err != nil {
					return err
				}
			}
			return nil
		case KindObject:
			keys := objectKeys(v)
			if err := enc.EncodeMapLen(len(keys)); err != nil {
				return encodeError(path, err.Error())
			}
			for _, key := range keys {
				if err := enc.EncodeString(key); err != nil {
					return encodeError(path, err.Error())
				}
				value, _ := lookup(v, key)
				if err := encodeMsgpackValue(enc, value, childKey(path, key)); err != nil {
					return err
				}
			}
			return nil
		}
		return encodeError(path, fmt.Sprintf("%T is not plain data", v))
	}
	if err != nil {
		return encodeError(path, err.Error())
	}
	return nil
}

func toInt(v Value) int64 {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	}
	return 0
}

func toUint(v Value) uint64 {
	switch n := v.(type) {
	case uint:
		return uint64(n)
	case uint8:
		return uint64(n)
	case uint16:
		return uint64(n)
	case uint32:
		return uint64(n)
	case uint64:
		return n
	}
	return 0
}
