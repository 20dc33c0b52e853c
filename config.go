package checkfields

import "maps"

// ErrorConfig maps each error slot to the Record template used when that
// failure is raised. Only Reason and Params of a template are meaningful.
type ErrorConfig map[Kind]Record

var defaultErrors = ErrorConfig{
	KindDataFieldInvalidType: {Reason: ReasonDataFieldInvalidType},
	KindDataFieldsMissing:    {Reason: ReasonDataFieldsMissing},
	KindDataFieldsOverload:   {Reason: ReasonDataFieldsOverload},
	KindDataNotDefined:       {Reason: ReasonDataNotDefined},
	KindSchemaInvalid:        {Reason: ReasonSchemaInvalid},
	KindSchemaInvalidType:    {Reason: ReasonSchemaInvalidType},
	KindSchemaNotDefined:     {Reason: ReasonSchemaNotDefined},
}

// DefaultErrors returns a fresh copy of the built-in templates.
func DefaultErrors() ErrorConfig {
	out := make(ErrorConfig, len(defaultErrors))
	for k, tmpl := range defaultErrors {
		out[k] = tmpl.clone()
	}
	return out
}

// Merge returns a new ErrorConfig with overrides shallow-merged over c slot by
// slot: a non-empty override Reason wins and override Params are added on top
// of the slot's Params. Neither c nor overrides is modified.
func (c ErrorConfig) Merge(overrides ErrorConfig) ErrorConfig {
	out := make(ErrorConfig, len(c)+len(overrides))
	for k, tmpl := range c {
		out[k] = tmpl.clone()
	}
	for k, o := range overrides {
		base := out[k]
		if o.Reason != "" {
			base.Reason = o.Reason
		}
		if len(o.Params) > 0 {
			if base.Params == nil {
				base.Params = make(map[string]any, len(o.Params))
			}
			maps.Copy(base.Params, o.Params)
		}
		out[k] = base
	}
	return out
}

// template returns the template for k, falling back to the built-in default.
func (c ErrorConfig) template(k Kind) Record {
	if tmpl, ok := c[k]; ok && tmpl.Reason != "" {
		return tmpl
	}
	return defaultErrors[k]
}

func (r Record) clone() Record {
	out := r
	if r.Params != nil {
		out.Params = maps.Clone(r.Params)
	}
	return out
}
