// Package codec reads and writes documents as JSON or YAML.
//
// Decoded documents are normalized to data.Object and data.Array trees so
// the optics package can walk them whatever format they came from.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/authcorp/libs/go/fantasy/data"
	"github.com/authcorp/libs/go/fantasy/errors"
	"github.com/authcorp/libs/go/fantasy/functional"
)

// Format names a document encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml" in any case.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeDecode, "unsupported format").WithDetail("format", name)
}

// FormatFromPath derives the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Codec encodes and decodes documents.
type Codec interface {
	Format() Format
	Encode(doc any) ([]byte, error)
	Decode(raw []byte) (any, error)
}

// New returns the codec for format. indent is the number of spaces used
// when encoding; 0 gives compact JSON and the YAML default.
func New(format Format, indent int) (Codec, error) {
	switch format {
	case FormatJSON:
		return &JSONCodec{Indent: indent}, nil
	case FormatYAML:
		return &YAMLCodec{Indent: indent}, nil
	}
	return nil, errors.New(errors.ErrCodeDecode, "unsupported format").WithDetail("format", string(format))
}

// JSONCodec encodes and decodes JSON documents.
type JSONCodec struct {
	Indent int
}

// Format returns FormatJSON.
func (c *JSONCodec) Format() Format { return FormatJSON }

// Encode encodes doc, indenting when Indent is positive.
func (c *JSONCodec) Encode(doc any) ([]byte, error) {
	if c.Indent > 0 {
		return json.MarshalIndent(doc, "", strings.Repeat(" ", c.Indent))
	}
	return json.Marshal(doc)
}

// Decode decodes one JSON value and rejects trailing data.
func (c *JSONCodec) Decode(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Decode(string(FormatJSON), err)
	}
	if dec.More() {
		return nil, errors.Decode(string(FormatJSON), fmt.Errorf("trailing data after document"))
	}
	return doc, nil
}

// YAMLCodec encodes and decodes YAML documents.
type YAMLCodec struct {
	Indent int
}

// Format returns FormatYAML.
func (c *YAMLCodec) Format() Format { return FormatYAML }

// Encode encodes doc.
func (c *YAMLCodec) Encode(doc any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	if c.Indent > 0 {
		encoder.SetIndent(c.Indent)
	}
	if err := encoder.Encode(doc); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode decodes the first YAML document. Mapping keys that are not
// strings are rendered with fmt so every mapping becomes a data.Object.
func (c *YAMLCodec) Decode(raw []byte) (any, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Decode(string(FormatYAML), err)
	}
	return normalize(doc), nil
}

func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = normalize(e)
		}
		return t
	case map[any]any:
		out := make(data.Object, len(t))
		for k, e := range t {
			out[fmt.Sprint(k)] = normalize(e)
		}
		return out
	case []any:
		for i, e := range t {
			t[i] = normalize(e)
		}
		return t
	}
	return v
}

// DecodeEither decodes raw and lifts the outcome into an Either.
func DecodeEither(c Codec, raw []byte) functional.Either[error, any] {
	return functional.TryCatch(func() (any, error) {
		return c.Decode(raw)
	})
}

// EncodeEither encodes doc and lifts the outcome into an Either.
func EncodeEither(c Codec, doc any) functional.Either[error, []byte] {
	return functional.TryCatch(func() ([]byte, error) {
		return c.Encode(doc)
	})
}

// ParseValue interprets raw as a JSON value, falling back to the raw string
// when it is not valid JSON, so both `42` and `hello` are usable values.
func ParseValue(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}
