// Package classsupport formats lists of class references (Go runtime type
// descriptors) as human-readable, comma-separated strings.
//
// Two operations are provided. NullSafeToString joins the fully-qualified
// names of the supplied classes, rendering an absent (nil) class as "null":
//
//	classsupport.NullSafeToString(reflect.TypeOf(""), reflect.TypeOf(time.Second))
//	// "string, time.Duration"
//
// NullSafeToStringWith applies a caller-supplied Mapper to each class instead.
// The mapper sees absent classes as nil and decides how to render them:
//
//	s, err := classsupport.NullSafeToStringWith(classsupport.SimpleName, classes...)
//
// In both cases an empty or nil list formats to the empty string. The only
// failure is a nil mapper, reported as core.ErrInvalidArgument.
//
// # Names
//
// A fully-qualified name is the import path of the declaring package followed
// by the type name, e.g. "net/url.URL". Predeclared types have no package and
// keep their bare name ("int", "error"). Pointer, slice, array, map and channel
// types are named from their qualified element types ("[]*net/url.URL").
//
// # Formatter
//
// Formatter carries the separator and the literal used for absent classes.
// The package-level functions use DefaultFormatter, which matches the ", "
// and "null" conventions above.
//
// All functions in this package are pure and safe for concurrent use.
package classsupport
