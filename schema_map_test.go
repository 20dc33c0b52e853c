package checkfields_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	checkfields "github.com/iofields/checkfields"
	g "github.com/iofields/checkfields/dsl"
)

func TestSchemaFromMap(t *testing.T) {
	doc := map[string]any{
		"id":   map[string]any{"type": "string"},
		"note": map[string]any{"type": "string", "required": false},
		"owner": map[string]any{
			"type":  "object",
			"value": map[string]any{"name": map[string]any{"type": "string"}},
		},
		"tags":  map[string]any{"type": "array", "value": []any{map[string]any{"label": map[string]any{"type": "string"}}}},
		"empty": map[string]any{"type": "array", "value": []any{}},
		"odd":   map[string]any{"type": 5, "value": "text"},
		"bare":  map[string]any{},
	}
	s, err := checkfields.SchemaFromMap(doc)
	require.NoError(t, err)

	assert.Equal(t, g.String(), s["id"])
	assert.Equal(t, g.Field().Type(checkfields.TypeString).Optional().Build(), s["note"])
	assert.Equal(t, g.Object(checkfields.Schema{"name": g.String()}), s["owner"])
	assert.Equal(t, g.Array(checkfields.Schema{"label": g.String()}), s["tags"])
	assert.Equal(t, g.EmptyArray(), s["empty"])
	assert.Equal(t, checkfields.Type("5"), s["odd"].Type)
	assert.Equal(t, checkfields.RawPayload{Raw: "text"}, s["odd"].Value)
	assert.Equal(t, g.Field().Build(), s["bare"])
}

func TestSchemaFromMap_Errors(t *testing.T) {
	_, err := checkfields.SchemaFromMap(map[string]any{"a": "string"})
	assert.ErrorContains(t, err, `field "a"`)

	_, err = checkfields.SchemaFromMap(map[string]any{"a": map[string]any{"type": "string", "required": "yes"}})
	assert.ErrorContains(t, err, "required must be a boolean")

	_, err = checkfields.SchemaFromMap(map[string]any{"a": map[string]any{"type": "array", "value": []any{1}}})
	assert.ErrorContains(t, err, "value[0]")

	s, err := checkfields.SchemaFromMap(nil)
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestSchema_ToMapRoundTrip(t *testing.T) {
	s := checkfields.Schema{
		"id":    g.String(),
		"owner": g.Object(checkfields.Schema{"name": g.String()}),
		"tags":  g.Array(checkfields.Schema{"label": g.String()}),
		"none":  g.EmptyArray(),
	}
	back, err := checkfields.SchemaFromMap(s.ToMap())
	require.NoError(t, err)
	assert.Equal(t, s, back)

	_, hasValue := g.String().ToMap()["value"]
	assert.False(t, hasValue)
}
