// Package loader decodes schemas, inputs and error configurations from JSON
// (github.com/goccy/go-json) and YAML (gopkg.in/yaml.v3) documents.
//
// A schema document mirrors the descriptor tree:
//
//	id:
//	  type: string
//	owner:
//	  type: object
//	  value:
//	    name: {type: string}
//	tags:
//	  type: array
//	  value:
//	    - label: {type: string}
//
// An error configuration document maps slot names to a reason plus any extra
// context fields:
//
//	dataFieldsMissing:
//	  reason: MISSING
//	  status: 422
package loader
