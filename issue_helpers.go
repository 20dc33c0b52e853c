package checkfields

import (
	"fmt"
	"maps"

	"github.com/iofields/checkfields/i18n"
)

// RecordAt creates a Record of kind k at path p from the template in cfg.
// Context params are layered over the template's Params, and the message is
// resolved through tr (the package-level translator when tr is nil).
func RecordAt(cfg ErrorConfig, tr i18n.Translator, p PathRef, k Kind, params map[string]any) *Record {
	tmpl := cfg.template(k)
	merged := make(map[string]any, len(tmpl.Params)+len(params))
	maps.Copy(merged, tmpl.Params)
	maps.Copy(merged, params)
	return &Record{
		Kind:    k,
		Reason:  tmpl.Reason,
		Path:    p.Pointer(),
		Message: message(tr, k, merged),
		Params:  merged,
	}
}

func message(tr i18n.Translator, k Kind, params map[string]any) string {
	data := map[string]string{}
	for _, name := range []string{ParamKey, ParamExpectedType, ParamReceivedType, ParamType} {
		if v, ok := params[name]; ok {
			data[name] = fmt.Sprint(v)
		}
	}
	if tr != nil {
		return tr.Message(string(k), data)
	}
	return i18n.T(string(k), data)
}
