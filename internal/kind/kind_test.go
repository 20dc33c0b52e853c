package kind

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type account struct {
	ID       string `json:"id"`
	Email    string `json:"email,omitempty"`
	Nickname string `checkfields:"name=nick" json:"nickname"`
	Secret   string `json:"-"`
	Plain    int
	hidden   bool
}

func TestPredicates(t *testing.T) {
	var nilMap map[string]any
	var nilSlice []any

	cases := []struct {
		name                                    string
		v                                       any
		undef, str, boolean, num, array, object bool
	}{
		{name: "undefined", v: nil, undef: true},
		{name: "nil map", v: nilMap},
		{name: "nil slice", v: nilSlice},
		{name: "string", v: "foo", str: true},
		{name: "empty string", v: "", str: true},
		{name: "bool", v: false, boolean: true},
		{name: "int", v: 3, num: true},
		{name: "uint8", v: uint8(3), num: true},
		{name: "float", v: 3.5, num: true},
		{name: "json number", v: json.Number("12"), num: true},
		{name: "slice", v: []any{1}, array: true},
		{name: "empty slice", v: []string{}, array: true},
		{name: "array", v: [2]int{1, 2}, array: true},
		{name: "map", v: map[string]any{}, object: true},
		{name: "typed map", v: map[string]int{"a": 1}, object: true},
		{name: "int keyed map", v: map[int]string{1: "a"}},
		{name: "struct", v: account{}, object: true},
		{name: "struct pointer", v: &account{}, object: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.undef, IsUndefined(tc.v), "IsUndefined")
			assert.Equal(t, tc.str, IsString(tc.v), "IsString")
			assert.Equal(t, tc.boolean, IsBoolean(tc.v), "IsBoolean")
			assert.Equal(t, tc.num, IsNumber(tc.v), "IsNumber")
			assert.Equal(t, tc.array, IsArray(tc.v), "IsArray")
			assert.Equal(t, tc.object, IsObject(tc.v), "IsObject")
			assert.Equal(t, !tc.array, IsNotArray(tc.v), "IsNotArray")
			assert.Equal(t, !tc.object, IsNotObject(tc.v), "IsNotObject")
		})
	}
}

func TestTruthy(t *testing.T) {
	var nilMap map[string]any
	for _, v := range []any{nil, nilMap, false, 0, 0.0, math.NaN(), "", json.Number("0")} {
		assert.False(t, Truthy(v), "%#v should be falsy", v)
	}
	for _, v := range []any{true, 1, -2.5, "x", map[string]any{}, []any{}, account{}, json.Number("7")} {
		assert.True(t, Truthy(v), "%#v should be truthy", v)
	}
}

func TestTypeOf(t *testing.T) {
	var nilMap map[string]any
	assert.Equal(t, "undefined", TypeOf(nil))
	assert.Equal(t, "null", TypeOf(nilMap))
	assert.Equal(t, "string", TypeOf("a"))
	assert.Equal(t, "boolean", TypeOf(true))
	assert.Equal(t, "number", TypeOf(int64(4)))
	assert.Equal(t, "number", TypeOf(json.Number("4")))
	assert.Equal(t, "object", TypeOf([]any{}))
	assert.Equal(t, "object", TypeOf(map[string]any{}))
}

func TestKeysAndLookup(t *testing.T) {
	m := map[string]any{"b": 2, "a": 1}
	assert.Equal(t, []string{"a", "b"}, Keys(m))
	v, ok := Lookup(m, "b")
	require.True(t, ok)
	assert.Equal(t, 2, v)
	_, ok = Lookup(m, "zzz")
	assert.False(t, ok)

	assert.Equal(t, []string{"0", "1"}, Keys([]any{"x", "y"}))
	v, ok = Lookup([]any{"x", "y"}, "1")
	require.True(t, ok)
	assert.Equal(t, "y", v)

	assert.Equal(t, []string{"0", "1", "2"}, Keys("héy"))
	v, ok = Lookup("héy", "1")
	require.True(t, ok)
	assert.Equal(t, "é", v)

	assert.Empty(t, Keys(42))
	assert.Empty(t, Keys(json.Number("42")))
	assert.Empty(t, Keys(nil))
}

func TestStructKeys(t *testing.T) {
	a := account{ID: "u1", Nickname: "neo", Plain: 3}
	assert.Equal(t, []string{"id", "email", "nick", "Plain"}, Keys(a))

	v, ok := Lookup(&a, "nick")
	require.True(t, ok)
	assert.Equal(t, "neo", v)

	_, ok = Lookup(a, "Secret")
	assert.False(t, ok)
	_, ok = Lookup(a, "hidden")
	assert.False(t, ok)
}

func TestElements(t *testing.T) {
	assert.Equal(t, []any{1, 2}, Elements([]int{1, 2}))
	assert.Nil(t, Elements(map[string]any{}))
}
