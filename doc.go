// Package checkfields validates that an input object has exactly the fields
// described by a Schema, each of the declared runtime type, recursing into
// nested objects and arrays of objects.
//
// Layout:
//   - The root package holds the public API: Schema/Field descriptors, the
//     Checker engine, Records and ErrorConfig.
//   - dsl/ builds descriptors fluently; loader/ decodes them from JSON or YAML.
//   - middleware/ validates HTTP request bodies; cmd/checkfields is the CLI.
//   - Runtime kind checks live in internal/kind.
//
// Typical usage:
//
//	s := checkfields.Schema{
//		"id":   dsl.String(),
//		"tags": dsl.Array(checkfields.Schema{"label": dsl.String()}),
//	}
//	if err := checkfields.Validate(input, s); err != nil {
//		rec, _ := checkfields.AsRecord(err)
//		log.Println(rec.Kind, rec.Path, rec.Message)
//	}
//
// Validation stops at the first failure and returns it as a *Record whose
// Reason and extra Params can be overridden per Kind with WithErrors.
package checkfields
