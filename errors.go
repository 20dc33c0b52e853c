package checkfields

import (
	"errors"
	"fmt"
	"strings"
)

// Kind names one of the fixed error slots. Callers branch on Kind (stable) or
// on Record.Reason (overridable through ErrorConfig).
type Kind string

const (
	KindDataFieldInvalidType Kind = "dataFieldInvalidType"
	KindDataFieldsMissing    Kind = "dataFieldsMissing"
	KindDataFieldsOverload   Kind = "dataFieldsOverload"
	KindDataNotDefined       Kind = "dataNotDefined"
	KindSchemaInvalid        Kind = "schemaInvalid"
	KindSchemaInvalidType    Kind = "schemaInvalidType"
	KindSchemaNotDefined     Kind = "schemaNotDefined"
)

// Kinds lists every error slot.
var Kinds = []Kind{
	KindDataFieldInvalidType,
	KindDataFieldsMissing,
	KindDataFieldsOverload,
	KindDataNotDefined,
	KindSchemaInvalid,
	KindSchemaInvalidType,
	KindSchemaNotDefined,
}

// Default reasons.
const (
	ReasonDataFieldInvalidType = "DATA_FIELD_INVALID_TYPE"
	ReasonDataFieldsMissing    = "DATA_FIELDS_MISSING"
	ReasonDataFieldsOverload   = "DATA_FIELDS_OVERLOAD"
	ReasonDataNotDefined       = "DATA_NOT_DEFINED"
	ReasonSchemaInvalid        = "SCHEMA_INVALID"
	ReasonSchemaInvalidType    = "SCHEMA_INVALID_TYPE"
	ReasonSchemaNotDefined     = "SCHEMA_NOT_DEFINED"
)

// Context parameter names attached to Record.Params.
const (
	ParamInput            = "input"
	ParamSchema           = "schema"
	ParamKey              = "key"
	ParamType             = "type"
	ParamValue            = "value"
	ParamExpectedType     = "expectedType"
	// ParamReceivedType holds a typeof-style label of the input value, except
	// that a field holding null is reported as "null" instead of "object".
	ParamReceivedType     = "receivedType"
	ParamInputLength      = "inputLength"
	ParamSchemaLength     = "schemaLength"
	ParamFieldIsUndefined = "fieldIsUndefined"
	ParamAcceptableTypes  = "acceptableTypes"
	ParamMaxDepth         = "maxDepth"
)

// Record is the structured value returned when validation fails.
type Record struct {
	Kind    Kind
	Reason  string
	Path    string // JSON Pointer of the object being compared (for example: /items/2).
	Message string
	// Params carries the diagnostic context (see the Param* names) plus any
	// extra fields supplied through ErrorConfig.
	Params map[string]any
}

// Error renders the reason, the offending key when known, and the path.
func (r *Record) Error() string {
	b := &strings.Builder{}
	b.WriteString(r.Reason)
	if k, ok := r.Params[ParamKey]; ok {
		fmt.Fprintf(b, " (key %q)", fmt.Sprint(k))
	}
	if r.Path != "" {
		fmt.Fprintf(b, " at %s", r.Path)
	}
	return b.String()
}

// Param returns the context parameter stored under name.
func (r *Record) Param(name string) (any, bool) {
	v, ok := r.Params[name]
	return v, ok
}

// AsRecord extracts a Record from an error using errors.As internally.
func AsRecord(err error) (*Record, bool) {
	if err == nil {
		return nil, false
	}
	var rec *Record
	if errors.As(err, &rec) {
		return rec, true
	}
	return nil, false
}

// IsKind reports whether err carries a Record of kind k.
func IsKind(err error, k Kind) bool {
	rec, ok := AsRecord(err)
	return ok && rec.Kind == k
}
