package checkfields

import (
	"sort"

	"github.com/iofields/checkfields/i18n"
	"github.com/iofields/checkfields/internal/kind"
)

// predicates maps every acceptable Type to its runtime kind check.
var predicates = map[Type]func(any) bool{
	TypeString:  kind.IsString,
	TypeBoolean: kind.IsBoolean,
	TypeNumber:  kind.IsNumber,
	TypeArray:   kind.IsArray,
	TypeObject:  kind.IsObject,
}

// Checker validates one input against one schema. Use Prepare followed by
// Check, or Validate for both. A Checker is not reused across inputs.
type Checker struct {
	input  any
	schema Schema

	errors     ErrorConfig
	translator i18n.Translator
	maxDepth   int

	depth int
	path  PathRef
}

// New returns a Checker for input and schema. Error overrides supplied through
// WithErrors are merged over DefaultErrors. Without WithTranslator the
// package-level translator is captured here, so later i18n changes do not
// affect this Checker.
func New(input any, schema Schema, opts ...Option) *Checker {
	o := resolveOptions(opts)
	tr := o.translator
	if tr == nil {
		tr = i18n.Current()
	}
	return &Checker{
		input:      input,
		schema:     schema,
		errors:     DefaultErrors().Merge(o.errors),
		translator: tr,
		maxDepth:   o.maxDepth,
		path:       RootPath(),
	}
}

// child returns a fresh Checker for a nested object sharing the resolved
// configuration of c.
func (c *Checker) child(input any, schema Schema, p PathRef) *Checker {
	return &Checker{
		input:      input,
		schema:     schema,
		errors:     c.errors,
		translator: c.translator,
		maxDepth:   c.maxDepth,
		depth:      c.depth + 1,
		path:       p,
	}
}

// Prepare checks that both arguments exist. A missing schema is reported
// before a missing input.
func (c *Checker) Prepare() (*Checker, error) {
	if c.schema == nil {
		return c, c.fail(KindSchemaNotDefined, nil)
	}
	if kind.IsUndefined(c.input) {
		return c, c.fail(KindDataNotDefined, map[string]any{
			ParamInput:  c.input,
			ParamSchema: c.schema,
		})
	}
	return c, nil
}

// Check compares the input with the schema: falsy guard, field count, then
// every schema field in key order.
func (c *Checker) Check() error {
	if c.maxDepth > 0 && c.depth > c.maxDepth {
		return c.fail(KindSchemaInvalid, map[string]any{
			ParamMaxDepth: c.maxDepth,
			ParamSchema:   c.schema,
		})
	}
	if err := c.checkDefinition(); err != nil {
		return err
	}
	if err := c.checkLength(); err != nil {
		return err
	}
	return c.checkRequiredFields()
}

func (c *Checker) checkDefinition() error {
	if !kind.Truthy(c.input) || c.schema == nil {
		return c.fail(KindDataFieldsMissing, c.base())
	}
	return nil
}

func (c *Checker) checkLength() error {
	inputLen := len(kind.Keys(c.input))
	schemaLen := len(c.schema)
	if inputLen == schemaLen {
		return nil
	}
	params := c.base()
	params[ParamInputLength] = inputLen
	params[ParamSchemaLength] = schemaLen
	if inputLen < schemaLen {
		return c.fail(KindDataFieldsMissing, params)
	}
	return c.fail(KindDataFieldsOverload, params)
}

// checkRequiredFields walks the schema keys. Equal counts with different key
// sets surface only as a missing field; the extra input key is not reported.
func (c *Checker) checkRequiredFields() error {
	for _, key := range sortedKeys(c.schema) {
		field := c.schema[key]
		if err := c.checkFieldType(key, field.Type); err != nil {
			return err
		}
		if err := c.checkSchema(key, field); err != nil {
			return err
		}
		value, ok := kind.Lookup(c.input, key)
		if !ok {
			params := c.base()
			params[ParamFieldIsUndefined] = true
			params[ParamKey] = key
			return c.fail(KindDataFieldsMissing, params)
		}
		if err := c.checkValueType(key, value, field.Type); err != nil {
			return err
		}
		if field.HasPayload() {
			if err := c.checkNested(key, field.Value, value); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Checker) checkFieldType(key string, t Type) error {
	if t.Valid() {
		return nil
	}
	return c.fail(KindSchemaInvalidType, map[string]any{
		ParamKey:             key,
		ParamType:            string(t),
		ParamAcceptableTypes: AcceptableTypes,
		ParamSchema:          c.schema,
	})
}

// checkSchema verifies that the payload of field is consistent with its type.
func (c *Checker) checkSchema(key string, field Field) error {
	present := field.HasPayload()
	received := "other"
	if present {
		received = field.Value.payloadKind()
	}
	invalid := func(expected string) error {
		return c.fail(KindSchemaInvalid, map[string]any{
			ParamKey:          key,
			ParamType:         string(field.Type),
			ParamExpectedType: expected,
			ParamReceivedType: received,
			ParamSchema:       field.Value,
		})
	}
	switch {
	case field.Type.Container() && !present:
		return invalid("object | array")
	case field.Type == TypeObject && received != "object":
		return invalid("object")
	case field.Type == TypeArray && received != "array":
		return invalid("array")
	case !field.Type.Container() && present:
		return invalid("object | array")
	}
	return nil
}

func (c *Checker) checkValueType(key string, value any, t Type) error {
	if predicates[t](value) {
		return nil
	}
	params := c.base()
	params[ParamKey] = key
	params[ParamExpectedType] = string(t)
	params[ParamReceivedType] = typeOfPresent(value)
	params[ParamValue] = value
	return c.fail(KindDataFieldInvalidType, params)
}

func (c *Checker) checkNested(key string, payload Payload, value any) error {
	p := c.path.Field(key)
	switch nested := payload.(type) {
	case Schema:
		return c.child(value, nested, p).validate()
	case Items:
		elem := nested.Elem()
		for i, item := range kind.Elements(value) {
			if item == nil {
				// a null element is defined but falsy
				item = map[string]any(nil)
			}
			if err := c.child(item, elem, p.Index(i)).validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Checker) validate() error {
	if _, err := c.Prepare(); err != nil {
		return err
	}
	return c.Check()
}

// typeOfPresent labels a value found in the input. A stored nil is reported
// as "null" rather than typeof's "object" so callers can tell it from a map.
func typeOfPresent(v any) string {
	if v == nil {
		return "null"
	}
	return kind.TypeOf(v)
}

func sortedKeys(s Schema) []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (c *Checker) base() map[string]any {
	return map[string]any{
		ParamInput:  c.input,
		ParamSchema: c.schema,
	}
}

func (c *Checker) fail(k Kind, params map[string]any) error {
	return RecordAt(c.errors, c.translator, c.path, k, params)
}
