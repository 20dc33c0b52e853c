package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	checkfields "github.com/iofields/checkfields"
)

// ErrDuplicateKey is returned when RejectDuplicateKeys is set and a JSON
// document repeats an object key.
var ErrDuplicateKey = errors.New("loader: duplicate key")

// Options tunes decoding.
type Options struct {
	// RejectDuplicateKeys fails JSON documents that repeat a key within one
	// object. Repeated keys otherwise collapse and change the field count.
	RejectDuplicateKeys bool
}

// DecodeInput decodes a document into a generic value. JSON numbers become
// float64, YAML mappings become map[string]any.
func DecodeInput(data []byte, f Format, opts ...Options) (any, error) {
	return decodeAny(data, f, resolve(opts))
}

// DecodeSchema decodes a schema document.
func DecodeSchema(data []byte, f Format, opts ...Options) (checkfields.Schema, error) {
	v, err := decodeAny(data, f, resolve(opts))
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	doc, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("loader: schema document must be an object, got %T", v)
	}
	s, err := checkfields.SchemaFromMap(doc)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	return s, nil
}

// DecodeErrorConfig decodes error overrides keyed by slot name. The "reason"
// member sets Record.Reason; every other member is kept as a context param.
func DecodeErrorConfig(data []byte, f Format, opts ...Options) (checkfields.ErrorConfig, error) {
	v, err := decodeAny(data, f, resolve(opts))
	if err != nil {
		return nil, err
	}
	if v == nil {
		return checkfields.ErrorConfig{}, nil
	}
	doc, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("loader: error config must be an object, got %T", v)
	}
	known := make(map[checkfields.Kind]bool, len(checkfields.Kinds))
	for _, k := range checkfields.Kinds {
		known[k] = true
	}
	out := make(checkfields.ErrorConfig, len(doc))
	for _, name := range sortedKeys(doc) {
		k := checkfields.Kind(name)
		if !known[k] {
			return nil, fmt.Errorf("loader: unknown error slot %q", name)
		}
		slot, ok := doc[name].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("loader: error slot %q must be an object", name)
		}
		var rec checkfields.Record
		for field, val := range slot {
			if field == "reason" {
				s, ok := val.(string)
				if !ok {
					return nil, fmt.Errorf("loader: error slot %q: reason must be a string", name)
				}
				rec.Reason = s
				continue
			}
			if rec.Params == nil {
				rec.Params = map[string]any{}
			}
			rec.Params[field] = val
		}
		out[k] = rec
	}
	return out, nil
}

// LoadSchemaFile reads and decodes a schema file; the format follows the extension.
func LoadSchemaFile(path string, opts ...Options) (checkfields.Schema, error) {
	data, f, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeSchema(data, f, opts...)
}

// LoadInputFile reads and decodes an input file.
func LoadInputFile(path string, opts ...Options) (any, error) {
	data, f, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeInput(data, f, opts...)
}

// LoadErrorConfigFile reads and decodes an error configuration file.
func LoadErrorConfigFile(path string, opts ...Options) (checkfields.ErrorConfig, error) {
	data, f, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeErrorConfig(data, f, opts...)
}

// ReadInput decodes a JSON input from r (for example a request body).
func ReadInput(r io.Reader, opts ...Options) (any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("loader: reading input: %w", err)
	}
	return DecodeInput(data, FormatJSON, opts...)
}

func readFile(path string) ([]byte, Format, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, 0, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("loader: reading %s: %w", path, err)
	}
	return data, f, nil
}

func decodeAny(data []byte, f Format, opt Options) (any, error) {
	switch f {
	case FormatJSON:
		if opt.RejectDuplicateKeys {
			dups, err := DetectDuplicateKeys(data, 1)
			if err != nil {
				return nil, fmt.Errorf("loader: decoding json: %w", err)
			}
			if len(dups) > 0 {
				return nil, fmt.Errorf("%w %q at %s", ErrDuplicateKey, dups[0].Key, dups[0].Path)
			}
		}
		if len(bytes.TrimSpace(data)) == 0 {
			return nil, nil
		}
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("loader: decoding json: %w", err)
		}
		return v, nil
	case FormatYAML:
		var v any
		if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&v); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, nil
			}
			return nil, fmt.Errorf("loader: decoding yaml: %w", err)
		}
		return normalizeYAML(v), nil
	}
	return nil, fmt.Errorf("loader: unsupported format %s", f)
}

func resolve(opts []Options) Options {
	if len(opts) > 0 {
		return opts[len(opts)-1]
	}
	return Options{}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// normalizeYAML converts YAML-decoded values (which may contain map[any]any)
// into JSON-like values recursively.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = normalizeYAML(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[strings.TrimSpace(fmt.Sprint(k))] = normalizeYAML(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = normalizeYAML(t[i])
		}
		return out
	}
	return v
}
