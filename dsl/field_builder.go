package dsl

import checkfields "github.com/iofields/checkfields"

// FieldBuilder assembles a checkfields.Field.
type FieldBuilder struct {
	typ      checkfields.Type
	value    checkfields.Payload
	hasValue bool
	required bool
}

// Field creates a new builder with safe defaults (required object).
func Field() *FieldBuilder {
	return &FieldBuilder{typ: checkfields.TypeObject, required: true}
}

// Type sets the declared type. Unsupported types are accepted here and
// rejected at validation time.
func (b *FieldBuilder) Type(t checkfields.Type) *FieldBuilder {
	b.typ = t
	return b
}

// Value sets the nested payload (a checkfields.Schema or checkfields.Items).
// A nil payload, including a nil Schema or nil Items, is the same as never
// calling Value.
func (b *FieldBuilder) Value(v checkfields.Payload) *FieldBuilder {
	switch p := v.(type) {
	case checkfields.Schema:
		if p == nil {
			v = nil
		}
	case checkfields.Items:
		if p == nil {
			v = nil
		}
	}
	b.value = v
	b.hasValue = v != nil
	return b
}

// Required marks the field as required.
func (b *FieldBuilder) Required() *FieldBuilder {
	b.required = true
	return b
}

// Optional marks the field as optional. The flag is recorded on the
// descriptor only; validation still requires the field.
func (b *FieldBuilder) Optional() *FieldBuilder {
	b.required = false
	return b
}

// Build returns a snapshot of the descriptor. Later setter calls do not affect
// descriptors that were already built.
func (b *FieldBuilder) Build() checkfields.Field {
	f := checkfields.Field{Type: b.typ, Required: b.required}
	if b.hasValue {
		f.Value = b.value
	}
	return f
}
