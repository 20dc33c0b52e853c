package checkfields

import (
	"fmt"

	"github.com/iofields/checkfields/internal/kind"
)

// Type is the declared kind of a schema field.
type Type string

const (
	TypeString  Type = "string"
	TypeBoolean Type = "boolean"
	TypeNumber  Type = "number"
	TypeArray   Type = "array"
	TypeObject  Type = "object"
)

// AcceptableTypes lists every Type a Field may declare.
var AcceptableTypes = []Type{TypeString, TypeBoolean, TypeNumber, TypeArray, TypeObject}

// Valid reports whether t is one of AcceptableTypes.
func (t Type) Valid() bool {
	switch t {
	case TypeString, TypeBoolean, TypeNumber, TypeArray, TypeObject:
		return true
	}
	return false
}

// Container reports whether t may carry a nested Payload.
func (t Type) Container() bool { return t == TypeObject || t == TypeArray }

// Payload is the nested schema of an object or array Field.
// It is implemented by Schema, Items and RawPayload.
type Payload interface {
	payloadKind() string
}

// Field describes one schema slot.
//
// Required is stored but never consulted during validation: every field in a
// Schema must be present in the input.
type Field struct {
	Type     Type
	Value    Payload // nil when no nested schema was declared
	Required bool
}

// HasPayload reports whether f carries a truthy nested value: a non-nil
// Schema or Items, or a RawPayload whose raw value is truthy. Falsy raw values
// such as false, 0 and "" count as no payload at all.
func (f Field) HasPayload() bool {
	switch v := f.Value.(type) {
	case nil:
		return false
	case Schema:
		return v != nil
	case Items:
		return v != nil
	case RawPayload:
		return kind.Truthy(v.Raw)
	}
	return true
}

// Schema maps field names to their descriptors. A nil Schema is undefined.
type Schema map[string]Field

func (Schema) payloadKind() string { return "object" }

// Items is the payload of an array Field: zero or one element schema applied
// to every element of the input array. With no element schema each element
// must be an empty object.
type Items []Schema

func (Items) payloadKind() string { return "array" }

// Elem returns the per-element schema, or an empty Schema when none was given.
func (it Items) Elem() Schema {
	if len(it) == 0 || it[0] == nil {
		return Schema{}
	}
	return it[0]
}

// RawPayload holds a decoded value that is neither an object nor a list.
// It only appears in schemas decoded from documents and is always invalid.
type RawPayload struct {
	Raw any
}

func (RawPayload) payloadKind() string { return "other" }

func (p RawPayload) String() string { return fmt.Sprintf("%v", p.Raw) }
