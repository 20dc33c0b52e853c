package checkfields

import (
	"fmt"
	"sort"
)

// SchemaFromMap converts a decoded schema document into a Schema.
//
// Each entry must be an object with a "type" and optional "value" and
// "required" members. A non-string type is kept in its printed form (and is
// then rejected with KindSchemaInvalidType during validation). An object value
// becomes a Schema, a list becomes Items, and anything else becomes a
// RawPayload. Missing "required" defaults to true.
func SchemaFromMap(doc map[string]any) (Schema, error) {
	if doc == nil {
		return nil, nil
	}
	out := make(Schema, len(doc))
	for _, key := range sortedMapKeys(doc) {
		f, err := fieldFromAny(doc[key])
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}
		out[key] = f
	}
	return out, nil
}

func fieldFromAny(v any) (Field, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return Field{}, fmt.Errorf("descriptor must be an object, got %T", v)
	}
	f := Field{Type: TypeObject, Required: true}
	if t, ok := m["type"]; ok {
		if s, ok := t.(string); ok {
			f.Type = Type(s)
		} else {
			f.Type = Type(fmt.Sprint(t))
		}
	}
	if r, ok := m["required"]; ok {
		b, ok := r.(bool)
		if !ok {
			return Field{}, fmt.Errorf("required must be a boolean, got %T", r)
		}
		f.Required = b
	}
	raw, ok := m["value"]
	if !ok || raw == nil {
		return f, nil
	}
	switch val := raw.(type) {
	case map[string]any:
		nested, err := SchemaFromMap(val)
		if err != nil {
			return Field{}, err
		}
		f.Value = nested
	case []any:
		items := make(Items, 0, len(val))
		for i, el := range val {
			em, ok := el.(map[string]any)
			if !ok {
				return Field{}, fmt.Errorf("value[%d] must be an object, got %T", i, el)
			}
			nested, err := SchemaFromMap(em)
			if err != nil {
				return Field{}, fmt.Errorf("value[%d]: %w", i, err)
			}
			items = append(items, nested)
		}
		f.Value = items
	default:
		f.Value = RawPayload{Raw: raw}
	}
	return f, nil
}

// ToMap renders s back into the document shape accepted by SchemaFromMap.
func (s Schema) ToMap() map[string]any {
	if s == nil {
		return nil
	}
	out := make(map[string]any, len(s))
	for k, f := range s {
		out[k] = f.ToMap()
	}
	return out
}

// ToMap renders f as a descriptor object; an absent Value is omitted.
func (f Field) ToMap() map[string]any {
	out := map[string]any{
		"type":     string(f.Type),
		"required": f.Required,
	}
	switch v := f.Value.(type) {
	case Schema:
		out["value"] = v.ToMap()
	case Items:
		list := make([]any, 0, len(v))
		for _, el := range v {
			list = append(list, el.ToMap())
		}
		out["value"] = list
	case RawPayload:
		out["value"] = v.Raw
	}
	return out
}

func sortedMapKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
