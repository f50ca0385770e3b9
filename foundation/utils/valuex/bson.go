// File: bson.go
// Title: BSON Codec
// Description: Decodes and encodes BSON documents with field order preserved.
//              Top-level values must be objects.
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
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

type bsonCodec struct{}

func (bsonCodec) Format() Format      { return FormatBSON }
func (bsonCodec) ContentType() string { return "application/bson" }

// Decode reads one BSON document. Element order is kept; 32-bit integers
// widen to int64, binary payloads become strings and datetimes RFC 3339
// strings. Object ids and decimals decode to their string forms.
func (bsonCodec) Decode(data []byte) (Value, error) {
	if len(data) < 5 {
		return nil, decodeError(FormatBSON, fmt.Errorf("document too short: %d bytes", len(data)))
	}
	if n := binary.LittleEndian.Uint32(data); int64(n) != int64(len(data)) {
		return nil, decodeError(FormatBSON, fmt.Errorf("length prefix %d does not match %d bytes", n, len(data)))
	}

	raw := bson.Raw(data)
	if err := raw.Validate(); err != nil {
		return nil, decodeError(FormatBSON, err)
	}
	v, err := decodeBSONDocument(raw)
	if err != nil {
		return nil, decodeError(FormatBSON, err)
	}
	return v, nil
}

func decodeBSONDocument(raw bson.Raw) (*Object, error) {
	elems, err := raw.Elements()
	if err != nil {
		return nil, err
	}
	obj := NewObject()
	for _, e := range elems {
		v, err := decodeBSONValue(e.Value())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Key(), err)
		}
		obj.Set(e.Key(), v)
	}
	return obj, nil
}

func decodeBSONValue(rv bson.RawValue) (Value, error) {
	switch rv.Type {
	case bsontype.EmbeddedDocument:
		return decodeBSONDocument(rv.Document())
	case bsontype.Array:
		values, err := rv.Array().Values()
		if err != nil {
			return nil, err
		}
		list := make(List, 0, len(values))
		for _, item := range values {
			v, err := decodeBSONValue(item)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	case bsontype.Null, bsontype.Undefined:
		return nil, nil
	case bsontype.Boolean:
		return rv.Boolean(), nil
	case bsontype.Int32:
		return int64(rv.Int32()), nil
	case bsontype.Int64:
		return rv.Int64(), nil
	case bsontype.Double:
		return rv.Double(), nil
	case bsontype.String:
		return rv.StringValue(), nil
	case bsontype.Binary:
		_, data := rv.Binary()
		return string(data), nil
	case bsontype.DateTime:
		return time.UnixMilli(rv.DateTime()).UTC().Format(time.RFC3339Nano), nil
	case bsontype.ObjectID:
		return rv.ObjectID().Hex(), nil
	case bsontype.Decimal128:
		return rv.Decimal128().String(), nil
	}
	return nil, fmt.Errorf("unsupported BSON type %s", rv.Type)
}

// Encode writes v as a BSON document. The root must be an object; integers
// are written as int64 and objects keep key order.
func (bsonCodec) Encode(v Value) ([]byte, error) {
	if KindOf(v) != KindObject {
		return nil, encodeError("$", fmt.Sprintf("BSON documents must be objects, got %s", KindOf(v)))
	}
	doc, err := toBSON(v, "$")
	if err != nil {
		return nil, err
	}
	out, err := bson.Marshal(doc)
	if err != nil {
		return nil, encodeError("$", err.Error())
	}
	return out, nil
}

func toBSON(v Value, path string) (any, error) {
	switch t := v.(type) {
	case nil, bool, string:
		return t, nil
	case float32:
		return float64(t), nil
	case float64:
		return t, nil
	case int, int8, int16, int32, int64:
		return toInt(t), nil
	case uint, uint8, uint16, uint32, uint64:
		n := toUint(t)
		if n > math.MaxInt64 {
			return nil, encodeError(path, fmt.Sprintf("integer %d exceeds int64", n))
		}
		return int64(n), nil
	}

	switch KindOf(v) {
	case KindList:
		seq := asSeq(v)
		arr := make(bson.A, 0, len(seq))
		for i, item := range seq {
			x, err := toBSON(item, childIndex(path, i))
			if err != nil {
				return nil, err
			}
			arr = append(arr, x)
		}
		return arr, nil
	case KindObject:
		keys := objectKeys(v)
		doc := make(bson.D, 0, len(keys))
		for _, key := range keys {
			value, _ := lookup(v, key)
			x, err := toBSON(value, childKey(path, key))
			if err != nil {
				return nil, err
			}
			doc = append(doc, bson.E{Key: key, Value: x})
		}
		return doc, nil
	}
	return nil, encodeError(path, fmt.Sprintf("%T is not plain data", v))
}
