package kind

import (
	"reflect"
	"strings"
	"sync"
)

type structField struct {
	key   string
	index []int
}

var structFieldCache sync.Map // reflect.Type -> []structField

// structFields returns the exported fields of t with their external keys.
func structFields(t reflect.Type) []structField {
	if cached, ok := structFieldCache.Load(t); ok {
		return cached.([]structField)
	}
	out := make([]structField, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		key := ResolveStructKey(sf)
		if key == "-" {
			continue
		}
		out = append(out, structField{key: key, index: sf.Index})
	}
	structFieldCache.Store(t, out)
	return out
}

// ResolveStructKey resolves the external key of a struct field.
// Priority: checkfields:"name=..." > json tag name > field name; "-" disables the field.
func ResolveStructKey(sf reflect.StructField) string {
	if ct := sf.Tag.Get("checkfields"); ct != "" {
		if ct == "-" {
			return "-"
		}
		for _, p := range strings.Split(ct, ",") {
			p = strings.TrimSpace(p)
			if strings.HasPrefix(p, "name=") {
				return strings.TrimPrefix(p, "name=")
			}
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		name := jt
		if i := strings.IndexByte(jt, ','); i >= 0 {
			name = jt[:i]
		}
		if name != "" {
			return name
		}
	}
	return sf.Name
}
