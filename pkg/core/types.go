package core

import "reflect"

// Class is a reference to a Go type. A nil Class is an absent reference.
type Class = reflect.Type

// Mapper converts a class reference into display text.
// Mappers receive absent (nil) references as well and are expected to be pure.
type Mapper func(c Class) string
