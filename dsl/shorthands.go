package dsl

import checkfields "github.com/iofields/checkfields"

// String returns a required string descriptor.
func String() checkfields.Field { return Field().Type(checkfields.TypeString).Build() }

// Boolean returns a required boolean descriptor.
func Boolean() checkfields.Field { return Field().Type(checkfields.TypeBoolean).Build() }

// Number returns a required number descriptor.
func Number() checkfields.Field { return Field().Type(checkfields.TypeNumber).Build() }

// Object returns a required object descriptor whose value must match s exactly.
// A nil s is treated as an empty object.
func Object(s checkfields.Schema) checkfields.Field {
	if s == nil {
		s = checkfields.Schema{}
	}
	return Field().Type(checkfields.TypeObject).Value(s).Build()
}

// Array returns a required array descriptor whose elements must match elem.
func Array(elem checkfields.Schema) checkfields.Field {
	if elem == nil {
		return EmptyArray()
	}
	return Field().Type(checkfields.TypeArray).Value(checkfields.Items{elem}).Build()
}

// EmptyArray returns a required array descriptor without an element schema:
// every element must be an empty object.
func EmptyArray() checkfields.Field {
	return Field().Type(checkfields.TypeArray).Value(checkfields.Items{}).Build()
}
