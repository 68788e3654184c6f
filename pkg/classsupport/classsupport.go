package classsupport

import (
	"reflect"

	"github.com/classfmt/go-sdk/pkg/core"
)

const (
	// DefaultSeparator separates formatted classes.
	DefaultSeparator = ", "

	// NullLiteral is the rendering of an absent class.
	NullLiteral = "null"
)

// NullSafeToString returns a comma-separated list of the fully-qualified names
// of the supplied classes, or "" if none are supplied. A nil class is rendered
// as "null".
func NullSafeToString(classes ...core.Class) string {
	return DefaultFormatter().Format(classes...)
}

// NullSafeToStringWith returns a comma-separated list of the values produced
// by mapper for the supplied classes, or "" if none are supplied. The mapper is
// also called for nil classes; its result is used as is.
//
// It fails with core.ErrInvalidArgument if mapper is nil.
func NullSafeToStringWith(mapper core.Mapper, classes ...core.Class) (string, error) {
	return DefaultFormatter().FormatWith(mapper, classes...)
}

// MustNullSafeToStringWith is like NullSafeToStringWith but panics on error.
func MustNullSafeToStringWith(mapper core.Mapper, classes ...core.Class) string {
	s, err := NullSafeToStringWith(mapper, classes...)
	if err != nil {
		panic(err)
	}
	return s
}

// ClassOf returns the class reference of T. Unlike reflect.TypeOf on a value,
// it works for interface types.
func ClassOf[T any]() core.Class {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// ClassesOf returns the dynamic class of each value. A nil value (or nil
// interface) yields an absent entry.
func ClassesOf(values ...any) []core.Class {
	if values == nil {
		return nil
	}
	classes := make([]core.Class, len(values))
	for i, v := range values {
		classes[i] = reflect.TypeOf(v)
	}
	return classes
}
