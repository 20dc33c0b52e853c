package checkfields

import "github.com/iofields/checkfields/i18n"

// Validate checks input against schema (Prepare then Check). It returns nil
// when the input matches, or a *Record describing the first failure.
func Validate(input any, schema Schema, opts ...Option) error {
	c, err := New(input, schema, opts...).Prepare()
	if err != nil {
		return err
	}
	return c.Check()
}

// Is reports whether input conforms to schema.
func Is(input any, schema Schema, opts ...Option) bool {
	return Validate(input, schema, opts...) == nil
}

// Option configures a validation run.
type Option func(*options)

type options struct {
	errors     ErrorConfig
	translator i18n.Translator
	maxDepth   int
}

// WithErrors merges overrides over the default error templates. Repeated
// calls are merged in order.
func WithErrors(overrides ErrorConfig) Option {
	return func(o *options) {
		if o.errors == nil {
			o.errors = ErrorConfig{}
		}
		o.errors = o.errors.Merge(overrides)
	}
}

// WithTranslator resolves Record messages through tr instead of the
// package-level i18n translator.
func WithTranslator(tr i18n.Translator) Option {
	return func(o *options) { o.translator = tr }
}

// WithMaxDepth fails with KindSchemaInvalid once nesting exceeds n levels.
// Zero (the default) means unlimited.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		if n < 0 {
			n = 0
		}
		o.maxDepth = n
	}
}

func resolveOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
