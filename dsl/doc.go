// Package dsl provides the fluent builder for checkfields schema descriptors.
//
// Overview
//   - Field(): start a descriptor with defaults {Required: true, Type: "object"}.
//   - Type/Value/Required/Optional: setters that return the same builder; calling
//     a setter again overwrites the previous value.
//   - Build(): snapshot a checkfields.Field. If Value was never called the
//     descriptor has no payload, which is different from an empty Schema{} or
//     Items{} payload.
//   - String()/Boolean()/Number()/Object(s)/Array(elem)/EmptyArray(): shorthands
//     for the common descriptors.
//
// The builder performs no validation. Invalid types and payloads that do not
// match their type are reported by checkfields.Validate.
//
// Example
//
//	schema := checkfields.Schema{
//	    "id":   dsl.String(),
//	    "tags": dsl.Field().Type(checkfields.TypeArray).Value(checkfields.Items{}).Build(),
//	    "owner": dsl.Object(checkfields.Schema{
//	        "name": dsl.String(),
//	    }),
//	}
//	err := checkfields.Validate(input, schema)
package dsl
