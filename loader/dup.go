package loader

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// Duplicate reports a repeated key inside one JSON object.
type Duplicate struct {
	Path string // JSON Pointer of the object holding the key.
	Key  string
}

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type dupFrame struct {
	kind         containerKind
	keys         map[string]struct{}
	expectingKey bool
	segment      string // path segment of this container inside its parent
	lastKey      string
	index        int
}

// DetectDuplicateKeys scans data and reports repeated object keys.
// maxIssues < 0 means unlimited; 0 disables detection; >0 stops after that many.
func DetectDuplicateKeys(data []byte, maxIssues int) ([]Duplicate, error) {
	if maxIssues == 0 {
		return nil, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var dups []Duplicate
	var stack []dupFrame

	// valueDone marks the end of a value inside the current container.
	valueDone := func() {
		if n := len(stack); n > 0 {
			top := &stack[n-1]
			if top.kind == kindObject {
				top.expectingKey = true
			} else {
				top.index++
			}
		}
	}
	childSegment := func() string {
		if n := len(stack); n > 0 {
			top := stack[n-1]
			if top.kind == kindObject {
				return escape(top.lastKey)
			}
			return strconv.Itoa(top.index)
		}
		return ""
	}
	pointer := func() string {
		parts := make([]string, 0, len(stack))
		for _, f := range stack[1:] {
			parts = append(parts, f.segment)
		}
		return "/" + strings.Join(parts, "/")
	}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return dups, err
		}

		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{':
				seg := childSegment()
				stack = append(stack, dupFrame{kind: kindObject, keys: map[string]struct{}{}, expectingKey: true, segment: seg})
			case '[':
				seg := childSegment()
				stack = append(stack, dupFrame{kind: kindArray, segment: seg})
			case '}', ']':
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
				valueDone()
			}
		case string:
			if n := len(stack); n > 0 {
				top := &stack[n-1]
				if top.kind == kindObject && top.expectingKey {
					if _, ok := top.keys[v]; ok {
						dups = append(dups, Duplicate{Path: pointer(), Key: v})
						if maxIssues > 0 && len(dups) >= maxIssues {
							return dups, nil
						}
					}
					top.keys[v] = struct{}{}
					top.lastKey = v
					top.expectingKey = false
					continue
				}
			}
			valueDone()
		default:
			valueDone()
		}
	}
	if len(stack) > 0 {
		return dups, io.ErrUnexpectedEOF
	}
	return dups, nil
}

func escape(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "~", "~0"), "/", "~1")
}
