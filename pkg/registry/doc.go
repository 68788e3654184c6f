// Package registry maps display names to class references.
//
// Go cannot look up a type by name at runtime, so programs that accept type
// names as text (command lines, config files) register the classes they know
// about up front:
//
//	reg := registry.NewBuiltinRegistry()
//	_ = reg.Register("Widget", reflect.TypeOf(Widget{}))
//
//	classes, err := reg.Resolve("string", "*Widget", "[]time.Duration", "null")
//	// classes[3] is nil: "null" resolves to an absent class.
//
// Registries are safe for concurrent use.
package registry
