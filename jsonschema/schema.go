// Package jsonschema exports checkfields schemas as JSON Schema documents.
package jsonschema

import (
	"fmt"
	"sort"

	checkfields "github.com/iofields/checkfields"
)

// Draft is the $schema URI written on exported root documents.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// Schema is a minimal JSON Schema representation used for export.
type Schema struct {
	SchemaURI string `json:"$schema,omitempty" yaml:"$schema,omitempty"`
	Type      string `json:"type,omitempty" yaml:"type,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required             []string           `json:"required,omitempty" yaml:"required,omitempty"`
	AdditionalProperties *bool              `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty" yaml:"items,omitempty"`
}

// FromSchema converts s into a closed object schema: every key is required
// and additional properties are rejected, matching the exact field-count rule
// of the validator. Types outside the acceptable set are an error.
func FromSchema(s checkfields.Schema) (*Schema, error) {
	if s == nil {
		return nil, fmt.Errorf("jsonschema: schema is not defined")
	}
	out, err := object(s, "")
	if err != nil {
		return nil, err
	}
	out.SchemaURI = Draft
	return out, nil
}

func object(s checkfields.Schema, at string) (*Schema, error) {
	closed := false
	out := &Schema{
		Type:                 "object",
		Properties:           make(map[string]*Schema, len(s)),
		Required:             make([]string, 0, len(s)),
		AdditionalProperties: &closed,
	}
	for key, f := range s {
		p, err := field(f, at+"/"+key)
		if err != nil {
			return nil, err
		}
		out.Properties[key] = p
		out.Required = append(out.Required, key)
	}
	sort.Strings(out.Required)
	return out, nil
}

func field(f checkfields.Field, at string) (*Schema, error) {
	if !f.Type.Valid() {
		return nil, fmt.Errorf("jsonschema: %s: unsupported type %q", at, f.Type)
	}
	switch f.Type {
	case checkfields.TypeObject:
		nested, ok := f.Value.(checkfields.Schema)
		if !ok {
			return nil, fmt.Errorf("jsonschema: %s: object field needs a nested schema", at)
		}
		return object(nested, at)
	case checkfields.TypeArray:
		items, ok := f.Value.(checkfields.Items)
		if !ok {
			return nil, fmt.Errorf("jsonschema: %s: array field needs an element schema", at)
		}
		elem, err := object(items.Elem(), at+"/items")
		if err != nil {
			return nil, err
		}
		return &Schema{Type: "array", Items: elem}, nil
	}
	if f.HasPayload() {
		return nil, fmt.Errorf("jsonschema: %s: %s field cannot carry a nested value", at, f.Type)
	}
	return &Schema{Type: string(f.Type)}, nil
}
