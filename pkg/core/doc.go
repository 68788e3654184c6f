// Package core provides the foundational types shared by the classfmt SDK.
//
// A Class is the runtime type descriptor of a Go type (a reflect.Type). The
// nil Class stands for an absent reference. A Mapper turns one Class, absent
// or not, into display text.
//
// Example usage:
//
//	import (
//		"reflect"
//
//		"github.com/classfmt/go-sdk/pkg/core"
//	)
//
//	var simple core.Mapper = func(c core.Class) string {
//		if c == nil {
//			return "null"
//		}
//		return c.Name()
//	}
//
//	simple(reflect.TypeOf(0)) // "int"
package core
