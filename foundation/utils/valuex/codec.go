// File: codec.go
// Title: Document Codecs for Value Trees
// Description: Registry of the supported document formats and the Decode and
//              Encode entry points. Every codec decodes into ordered objects so
//              the key order of the source document survives a round trip.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-16
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation with JSON, YAML, TOML and MessagePack
// - 2026-10-19 v0.2.0: BSON documents

package valuex

import (
	"path/filepath"
	"strings"

	mdwerrors "github.com/msto63/mdwkit/foundation/core/errors"
)

// Format names a document format.
type Format string

const (
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatTOML    Format = "toml"
	FormatMsgpack Format = "msgpack"
	FormatBSON    Format = "bson"
)

// Codec converts between encoded documents and value trees.
type Codec interface {
	Format() Format
	ContentType() string
	Decode(data []byte) (Value, error)
	Encode(v Value) ([]byte, error)
}

var codecs = map[Format]Codec{
	FormatJSON:    jsonCodec{},
	FormatYAML:    yamlCodec{},
	FormatTOML:    tomlCodec{},
	FormatMsgpack: msgpackCodec{},
	FormatBSON:    bsonCodec{},
}

var formatAliases = map[string]Format{
	"json":        FormatJSON,
	"yaml":        FormatYAML,
	"yml":         FormatYAML,
	"toml":        FormatTOML,
	"msgpack":     FormatMsgpack,
	"mpk":         FormatMsgpack,
	"messagepack": FormatMsgpack,
	"bson":        FormatBSON,
}

// Formats returns the supported formats.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatTOML, FormatMsgpack, FormatBSON}
}

// ParseFormat resolves a format name, case-insensitively. "yml" and "mpk"
// are accepted as aliases.
func ParseFormat(name string) (Format, error) {
	if f, ok := formatAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return f, nil
	}
	return "", mdwerrors.InvalidArgument(mdwerrors.ModuleValuex, "parse_format", name, "one of json, yaml, toml, msgpack, bson")
}

// FormatFromPath derives the format from a file extension.
func FormatFromPath(path string) (Format, bool) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	f, ok := formatAliases[strings.ToLower(ext)]
	return f, ok
}

// CodecFor returns the codec registered for f.
func CodecFor(f Format) (Codec, error) {
	c, ok := codecs[f]
	if !ok {
		return nil, mdwerrors.InvalidArgument(mdwerrors.ModuleValuex, "codec", string(f), "one of json, yaml, toml, msgpack, bson")
	}
	return c, nil
}

// Decode parses data in format f. Malformed documents yield an
// INVALID_FORMAT error.
func Decode(data []byte, f Format) (Value, error) {
	c, err := CodecFor(f)
	if err != nil {
		return nil, err
	}
	return c.Decode(data)
}

// Encode renders v in format f. Values outside the data model and values the
// format cannot express yield an UNSUPPORTED_STRUCTURE error.
func Encode(v Value, f Format) ([]byte, error) {
	c, err := CodecFor(f)
	if err != nil {
		return nil, err
	}
	return c.Encode(v)
}

func decodeError(f Format, cause error) error {
	return mdwerrors.InvalidFormat(mdwerrors.ModuleValuex, "decode", cause, string(f))
}

func encodeError(path, reason string) error {
	return mdwerrors.UnsupportedStructure(mdwerrors.ModuleValuex, "encode", path, reason)
}
