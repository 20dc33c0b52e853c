package i18n

import (
	"strings"
	"sync"
)

// Translator retrieves localized messages for error kinds.
// data provides optional metadata to embed in the message (for example,
// "key" or "expectedType").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"dataFieldInvalidType": "field {key} must be of type {expectedType}, got {receivedType}",
		"dataFieldsMissing":    "required fields are missing",
		"dataFieldsOverload":   "data has more fields than the schema",
		"dataNotDefined":       "data is not defined",
		"schemaInvalid":        "schema value does not match its declared type (expected {expectedType})",
		"schemaInvalidType":    "schema field {key} has an unsupported type {type}",
		"schemaNotDefined":     "schema is not defined",
	},
	"ja": {
		"dataFieldInvalidType": "フィールド {key} の型が不正です ({expectedType} を期待、{receivedType} を受信)",
		"dataFieldsMissing":    "必須フィールドが不足しています",
		"dataFieldsOverload":   "スキーマにないフィールドがあります",
		"dataNotDefined":       "データが定義されていません",
		"schemaInvalid":        "スキーマの値が宣言された型と一致しません ({expectedType} を期待)",
		"schemaInvalidType":    "スキーマのフィールド {key} の型 {type} はサポートされていません",
		"schemaNotDefined":     "スキーマが定義されていません",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	tmpl, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	return fill(tmpl, data)
}

// fill substitutes {name} placeholders; unknown placeholders are left as "?".
func fill(tmpl string, data map[string]string) string {
	b := &strings.Builder{}
	for {
		i := strings.IndexByte(tmpl, '{')
		if i < 0 {
			b.WriteString(tmpl)
			return b.String()
		}
		j := strings.IndexByte(tmpl[i:], '}')
		if j < 0 {
			b.WriteString(tmpl)
			return b.String()
		}
		b.WriteString(tmpl[:i])
		name := tmpl[i+1 : i+j]
		if v, ok := data[name]; ok {
			b.WriteString(v)
		} else {
			b.WriteByte('?')
		}
		tmpl = tmpl[i+j+1:]
	}
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	SetTranslator(dictTranslator{lang: lang})
}

// NewDictionary returns the built-in Translator for lang without installing it.
func NewDictionary(lang string) Translator {
	if lang != "ja" {
		lang = "en"
	}
	return dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	mu.Lock()
	defer mu.Unlock()
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// Current returns the Translator installed right now.
func Current() Translator {
	mu.RLock()
	defer mu.RUnlock()
	return currentTranslator
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
