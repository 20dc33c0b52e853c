package checkfields_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	checkfields "github.com/iofields/checkfields"
	g "github.com/iofields/checkfields/dsl"
	"github.com/iofields/checkfields/i18n"
)

type upperTranslator struct{}

func (upperTranslator) Message(code string, data map[string]string) string {
	return "X:" + code + ":" + data["key"]
}

func TestIs(t *testing.T) {
	s := checkfields.Schema{"id": g.String()}
	assert.True(t, checkfields.Is(map[string]any{"id": "a"}, s))
	assert.False(t, checkfields.Is(map[string]any{"id": 1}, s))
	assert.False(t, checkfields.Is(nil, s))
}

func TestOptions_NilOptionIgnored(t *testing.T) {
	s := checkfields.Schema{"id": g.String()}
	assert.NoError(t, checkfields.Validate(map[string]any{"id": "a"}, s, nil))
}

func TestWithErrors_Cumulative(t *testing.T) {
	s := checkfields.Schema{"id": g.String()}
	err := checkfields.Validate(map[string]any{"id": 1}, s,
		checkfields.WithErrors(checkfields.ErrorConfig{
			checkfields.KindDataFieldInvalidType: {Reason: "FIRST", Params: map[string]any{"a": 1}},
		}),
		checkfields.WithErrors(checkfields.ErrorConfig{
			checkfields.KindDataFieldInvalidType: {Params: map[string]any{"b": 2}},
		}),
	)
	rec, ok := checkfields.AsRecord(err)
	require.True(t, ok)
	assert.Equal(t, "FIRST", rec.Reason)
	assert.Equal(t, 1, rec.Params["a"])
	assert.Equal(t, 2, rec.Params["b"])
}

func TestWithTranslator(t *testing.T) {
	s := checkfields.Schema{"id": g.String()}
	err := checkfields.Validate(map[string]any{"id": 1}, s, checkfields.WithTranslator(upperTranslator{}))
	rec, ok := checkfields.AsRecord(err)
	require.True(t, ok)
	assert.Equal(t, "X:dataFieldInvalidType:id", rec.Message)

	err = checkfields.Validate(map[string]any{"id": 1}, s, checkfields.WithTranslator(i18n.NewDictionary("ja")))
	rec, _ = checkfields.AsRecord(err)
	assert.NotEqual(t, "X:dataFieldInvalidType:id", rec.Message)
	assert.NotEmpty(t, rec.Message)
}

func TestNew_CapturesTranslator(t *testing.T) {
	t.Cleanup(func() { i18n.SetLanguage("en") })
	i18n.SetLanguage("en")

	s := checkfields.Schema{"a": g.Number()}
	c := checkfields.New(map[string]any{"a": true}, s)
	i18n.SetLanguage("ja")

	_, err := c.Prepare()
	require.NoError(t, err)
	rec, ok := checkfields.AsRecord(c.Check())
	require.True(t, ok)
	assert.Equal(t, "field a must be of type number, got boolean", rec.Message)
}

func TestWithMaxDepth_NegativeIsUnlimited(t *testing.T) {
	s := checkfields.Schema{"a": g.Object(checkfields.Schema{"b": g.String()})}
	in := map[string]any{"a": map[string]any{"b": "x"}}
	assert.NoError(t, checkfields.Validate(in, s, checkfields.WithMaxDepth(-3)))
}

func TestValidate_ConcurrentSharedSchema(t *testing.T) {
	s := checkfields.Schema{
		"id":   g.String(),
		"tags": g.Array(checkfields.Schema{"label": g.String()}),
	}
	good := map[string]any{"id": "a", "tags": []any{map[string]any{"label": "x"}}}
	bad := map[string]any{"id": "a", "tags": []any{map[string]any{"label": 1}}}

	var wg sync.WaitGroup
	errs := make([]error, 64)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := good
			if i%2 == 1 {
				in = bad
			}
			errs[i] = checkfields.Validate(in, s)
		}(i)
	}
	wg.Wait()
	for i, err := range errs {
		if i%2 == 0 {
			assert.NoError(t, err)
			continue
		}
		assert.True(t, checkfields.IsKind(err, checkfields.KindDataFieldInvalidType))
	}
}
