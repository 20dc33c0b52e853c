package checkfields

import (
	"strconv"
	"strings"
)

// PathRef builds JSON Pointer paths in a chain-safe way.
type PathRef interface {
	Field(name string) PathRef
	Index(i int) PathRef
	Pointer() string
}

// RootPath returns the PathRef of the top-level input.
func RootPath() PathRef { return &pathRef{} }

// ParsePath builds a PathRef from a JSON Pointer such as "/items/2".
func ParsePath(pointer string) PathRef {
	if pointer == "" || pointer == "/" {
		return RootPath()
	}
	parts := []string{}
	for _, p := range strings.Split(pointer, "/") {
		if p == "" {
			continue
		}
		parts = append(parts, p)
	}
	return &pathRef{parts: parts}
}

type pathRef struct {
	parts []string
}

func (p *pathRef) Field(name string) PathRef {
	if name == "" {
		return p
	}
	// escape '~' -> '~0', '/' -> '~1' per RFC6901
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	return &pathRef{parts: append(append([]string{}, p.parts...), esc)}
}

func (p *pathRef) Index(i int) PathRef {
	return &pathRef{parts: append(append([]string{}, p.parts...), strconv.Itoa(i))}
}

func (p *pathRef) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}
