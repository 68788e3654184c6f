package testutil

import "reflect"

// PkgPath is the import path of this package, the qualifier of every fixture.
const PkgPath = "github.com/classfmt/go-sdk/internal/testutil"

// Widget is a named struct fixture.
type Widget struct {
	ID   string
	Size int
}

// Gadget is a named struct fixture.
type Gadget struct {
	Parts []Widget
}

// Shape is a named interface fixture.
type Shape interface {
	Area() float64
}

// Level is a named non-struct fixture.
type Level int

// Box is a generic fixture.
type Box[T any] struct {
	Value T
}

// Fixture class references.
var (
	WidgetClass = reflect.TypeOf(Widget{})
	GadgetClass = reflect.TypeOf(Gadget{})
	ShapeClass  = reflect.TypeOf((*Shape)(nil)).Elem()
	LevelClass  = reflect.TypeOf(Level(0))
)
