// Package middleware validates JSON request bodies against a checkfields
// Schema at HTTP boundaries.
package middleware

import (
	"context"
	"errors"
	"net/http"

	json "github.com/goccy/go-json"

	checkfields "github.com/iofields/checkfields"
	"github.com/iofields/checkfields/loader"
)

type ctxKeyBody struct{}

// ContextWithBody attaches a validated request body to ctx.
func ContextWithBody(ctx context.Context, body any) context.Context {
	return context.WithValue(ctx, ctxKeyBody{}, body)
}

// BodyFromContext returns the body stored by ValidateJSON.
func BodyFromContext(ctx context.Context) (any, bool) {
	v := ctx.Value(ctxKeyBody{})
	if v == nil {
		return nil, false
	}
	return v, true
}

// DefaultLoaderOptions returns the decoding defaults for HTTP JSON boundaries:
// duplicate keys are errors.
func DefaultLoaderOptions() loader.Options {
	return loader.Options{RejectDuplicateKeys: true}
}

// Decode reads and validates the JSON body of r. Framework adapters share it.
func Decode(r *http.Request, s checkfields.Schema, opts ...checkfields.Option) (any, error) {
	body, err := loader.ReadInput(r.Body, DefaultLoaderOptions())
	if err != nil {
		return nil, err
	}
	if err := checkfields.Validate(body, s, opts...); err != nil {
		return nil, err
	}
	return body, nil
}

// ValidateJSON validates the request body against s. On success the decoded
// body is stored in the request context; otherwise the handler chain stops
// with 400 and an ErrorPayload.
func ValidateJSON(s checkfields.Schema, opts ...checkfields.Option) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := Decode(r, s, opts...)
			if err != nil {
				WriteError(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(ContextWithBody(r.Context(), body)))
		})
	}
}

// WriteError responds 400 with ErrorPayload(err).
func WriteError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(ErrorPayload(err))
}

// ErrorPayload shapes a validation failure for JSON responses. Records keep
// their scalar params; the input and schema trees are left out.
func ErrorPayload(err error) map[string]any {
	rec, ok := checkfields.AsRecord(err)
	if !ok {
		if errors.Is(err, loader.ErrDuplicateKey) {
			return map[string]any{"error": err.Error(), "reason": "DUPLICATE_KEY"}
		}
		return map[string]any{"error": err.Error()}
	}
	params := make(map[string]any, len(rec.Params))
	for k, v := range rec.Params {
		switch k {
		case checkfields.ParamInput, checkfields.ParamSchema, checkfields.ParamValue:
			continue
		}
		params[k] = v
	}
	return map[string]any{
		"kind":    rec.Kind,
		"reason":  rec.Reason,
		"path":    rec.Path,
		"message": rec.Message,
		"params":  params,
	}
}
