// Package kind classifies dynamically typed values the way JSON-like data is
// classified: string, boolean, number, array, object, null and undefined.
//
// Untyped nil is "undefined". Typed nil maps, slices and pointers are "null".
package kind

import (
	"encoding/json"
	"math"
	"reflect"
	"sort"
	"strconv"
)

// IsUndefined reports whether v is an untyped nil.
func IsUndefined(v any) bool { return v == nil }

// IsNull reports whether v is a typed nil (nil map, slice, pointer or interface).
func IsNull(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// IsString reports whether v is a string. json.Number is a number, not a string.
func IsString(v any) bool {
	if _, ok := v.(json.Number); ok {
		return false
	}
	rv := indirect(v)
	return rv.IsValid() && rv.Kind() == reflect.String
}

// IsBoolean reports whether v is a bool.
func IsBoolean(v any) bool {
	rv := indirect(v)
	return rv.IsValid() && rv.Kind() == reflect.Bool
}

// IsNumber reports whether v is any Go numeric kind or a json.Number.
func IsNumber(v any) bool {
	if _, ok := v.(json.Number); ok {
		return true
	}
	rv := indirect(v)
	if !rv.IsValid() {
		return false
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// IsArray reports whether v is a non-nil slice or an array.
func IsArray(v any) bool {
	rv := indirect(v)
	if !rv.IsValid() {
		return false
	}
	switch rv.Kind() {
	case reflect.Slice:
		return !rv.IsNil()
	case reflect.Array:
		return true
	}
	return false
}

// IsObject reports whether v is a non-nil string-keyed map or a struct.
func IsObject(v any) bool {
	rv := indirect(v)
	if !rv.IsValid() {
		return false
	}
	switch rv.Kind() {
	case reflect.Map:
		return !rv.IsNil() && rv.Type().Key().Kind() == reflect.String
	case reflect.Struct:
		return true
	}
	return false
}

// IsNotObject is the negation of IsObject.
func IsNotObject(v any) bool { return !IsObject(v) }

// IsNotArray is the negation of IsArray.
func IsNotArray(v any) bool { return !IsArray(v) }

// Truthy mirrors JavaScript truthiness: undefined, null, false, 0, NaN and ""
// are falsy; everything else (including empty maps and slices) is truthy.
func Truthy(v any) bool {
	if v == nil || IsNull(v) {
		return false
	}
	if n, ok := v.(json.Number); ok {
		f, err := n.Float64()
		return err != nil || (f != 0 && !math.IsNaN(f))
	}
	rv := indirect(v)
	if !rv.IsValid() {
		return false
	}
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	}
	return true
}

// TypeOf returns a typeof-style label for v: "undefined", "null", "string",
// "boolean", "number" or "object" (arrays and maps are both "object").
func TypeOf(v any) string {
	switch {
	case IsUndefined(v):
		return "undefined"
	case IsNull(v):
		return "null"
	case IsString(v):
		return "string"
	case IsBoolean(v):
		return "boolean"
	case IsNumber(v):
		return "number"
	}
	return "object"
}

// Keys returns the own enumerable keys of v: sorted map keys, struct field
// keys in declaration order, array indexes, or string character indexes.
// Other values have no keys.
func Keys(v any) []string {
	rv := indirect(v)
	if !rv.IsValid() {
		return nil
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() || rv.Type().Key().Kind() != reflect.String {
			return nil
		}
		out := make([]string, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out = append(out, iter.Key().String())
		}
		sort.Strings(out)
		return out
	case reflect.Struct:
		fields := structFields(rv.Type())
		out := make([]string, 0, len(fields))
		for _, f := range fields {
			out = append(out, f.key)
		}
		return out
	case reflect.Slice, reflect.Array:
		return indexKeys(rv.Len())
	case reflect.String:
		if _, ok := v.(json.Number); ok {
			return nil
		}
		return indexKeys(len([]rune(rv.String())))
	}
	return nil
}

// Lookup returns the value stored under key and whether it exists.
func Lookup(v any, key string) (any, bool) {
	rv := indirect(v)
	if !rv.IsValid() {
		return nil, false
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() || rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		mv := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true
	case reflect.Struct:
		for _, f := range structFields(rv.Type()) {
			if f.key == key {
				return rv.FieldByIndex(f.index).Interface(), true
			}
		}
		return nil, false
	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= rv.Len() {
			return nil, false
		}
		return rv.Index(i).Interface(), true
	case reflect.String:
		if _, ok := v.(json.Number); ok {
			return nil, false
		}
		runes := []rune(rv.String())
		i, err := strconv.Atoi(key)
		if err != nil || i < 0 || i >= len(runes) {
			return nil, false
		}
		return string(runes[i]), true
	}
	return nil, false
}

// Elements returns the elements of an array value, or nil for anything else.
func Elements(v any) []any {
	rv := indirect(v)
	if !rv.IsValid() {
		return nil
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out
	}
	return nil
}

// indirect dereferences non-nil pointers. Nil pointers yield an invalid Value.
func indirect(v any) reflect.Value {
	if v == nil {
		return reflect.Value{}
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

func indexKeys(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i)
	}
	return out
}
