package registry

import (
	"encoding/json"
	"net"
	"net/url"
	"reflect"
	"time"

	"github.com/classfmt/go-sdk/pkg/core"
)

func classOf[T any]() core.Class {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// builtinClasses returns the predeclared Go types and a handful of common
// standard-library types, keyed by the name a Go programmer would write.
func builtinClasses() map[string]core.Class {
	return map[string]core.Class{
		"any":        classOf[any](),
		"bool":       classOf[bool](),
		"byte":       classOf[byte](),
		"complex64":  classOf[complex64](),
		"complex128": classOf[complex128](),
		"error":      classOf[error](),
		"float32":    classOf[float32](),
		"float64":    classOf[float64](),
		"int":        classOf[int](),
		"int8":       classOf[int8](),
		"int16":      classOf[int16](),
		"int32":      classOf[int32](),
		"int64":      classOf[int64](),
		"rune":       classOf[rune](),
		"string":     classOf[string](),
		"uint":       classOf[uint](),
		"uint8":      classOf[uint8](),
		"uint16":     classOf[uint16](),
		"uint32":     classOf[uint32](),
		"uint64":     classOf[uint64](),
		"uintptr":    classOf[uintptr](),

		"time.Time":       classOf[time.Time](),
		"time.Duration":   classOf[time.Duration](),
		"time.Location":   classOf[time.Location](),
		"url.URL":         classOf[url.URL](),
		"net.IP":          classOf[net.IP](),
		"json.RawMessage": classOf[json.RawMessage](),
		"json.Number":     classOf[json.Number](),
	}
}

// NewBuiltinRegistry creates a registry preloaded with the predeclared Go types
// and common standard-library types such as "time.Duration" and "url.URL".
func NewBuiltinRegistry() *Registry {
	r := NewRegistry()
	for name, class := range builtinClasses() {
		r.classes[name] = class
	}
	return r
}
