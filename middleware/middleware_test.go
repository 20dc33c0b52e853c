package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	checkfields "github.com/iofields/checkfields"
	g "github.com/iofields/checkfields/dsl"
	"github.com/iofields/checkfields/middleware"
)

func newRouter(t *testing.T, opts ...checkfields.Option) http.Handler {
	t.Helper()
	schema := checkfields.Schema{
		"name": g.String(),
		"tags": g.Array(checkfields.Schema{"label": g.String()}),
	}
	r := chi.NewRouter()
	r.With(middleware.ValidateJSON(schema, opts...)).Post("/items", func(w http.ResponseWriter, r *http.Request) {
		body, ok := middleware.BodyFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(body)
	})
	return r
}

func post(t *testing.T, h http.Handler, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec, out
}

func TestValidateJSON_PassesValidBody(t *testing.T) {
	rec, out := post(t, newRouter(t), `{"name":"a","tags":[{"label":"x"}]}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "a", out["name"])
}

func TestValidateJSON_RejectsInvalidBody(t *testing.T) {
	rec, out := post(t, newRouter(t), `{"name":"a","tags":[{"label":1}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, checkfields.ReasonDataFieldInvalidType, out["reason"])
	assert.Equal(t, "/tags/0", out["path"])
	params := out["params"].(map[string]any)
	assert.Equal(t, "label", params["key"])
	assert.NotContains(t, params, "input")
	assert.NotContains(t, params, "schema")
}

func TestValidateJSON_OverloadAndMissing(t *testing.T) {
	_, out := post(t, newRouter(t), `{"name":"a","tags":[],"extra":true}`)
	assert.Equal(t, checkfields.ReasonDataFieldsOverload, out["reason"])

	_, out = post(t, newRouter(t), `{"name":"a"}`)
	assert.Equal(t, checkfields.ReasonDataFieldsMissing, out["reason"])
}

func TestValidateJSON_ErrorOverrides(t *testing.T) {
	h := newRouter(t, checkfields.WithErrors(checkfields.ErrorConfig{
		checkfields.KindDataFieldsMissing: {Reason: "MISSING", Params: map[string]any{"status": 422}},
	}))
	_, out := post(t, h, `{}`)
	assert.Equal(t, "MISSING", out["reason"])
	assert.EqualValues(t, 422, out["params"].(map[string]any)["status"])
}

func TestValidateJSON_DuplicateKeysAndMalformed(t *testing.T) {
	rec, out := post(t, newRouter(t), `{"name":"a","name":"b","tags":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "DUPLICATE_KEY", out["reason"])

	rec, out = post(t, newRouter(t), `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, out, "error")
}

func TestValidateJSON_EmptyBody(t *testing.T) {
	rec, out := post(t, newRouter(t), ``)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, checkfields.ReasonDataNotDefined, out["reason"])
}

func TestBodyFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := middleware.BodyFromContext(req.Context())
	assert.False(t, ok)
}
