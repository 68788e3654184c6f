package classsupport

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/classfmt/go-sdk/pkg/core"
)

// QualifiedName returns the fully-qualified name of c, or NullLiteral if c is nil.
func QualifiedName(c core.Class) string {
	if c == nil {
		return NullLiteral
	}
	return composeName(c, func(named reflect.Type) string {
		if pkg := named.PkgPath(); pkg != "" {
			return pkg + "." + named.Name()
		}
		return named.Name()
	})
}

// SimpleName returns the name of c without package qualification, or
// NullLiteral if c is nil. Type arguments of generic instantiations are
// unqualified as well ("Box[Widget]").
func SimpleName(c core.Class) string {
	if c == nil {
		return NullLiteral
	}
	return composeName(c, func(named reflect.Type) string {
		return unqualifyTypeArgs(named.Name())
	})
}

// KindName returns the reflect.Kind of c as text, or NullLiteral if c is nil.
func KindName(c core.Class) string {
	if c == nil {
		return NullLiteral
	}
	return c.Kind().String()
}

// PackagePath returns the import path of the package declaring c. Predeclared
// and unnamed classes have none and yield "". A nil c yields NullLiteral.
func PackagePath(c core.Class) string {
	if c == nil {
		return NullLiteral
	}
	return c.PkgPath()
}

// unqualifyTypeArgs drops the import path of every qualified identifier in the
// bracketed type arguments of name. reflect renders them as "path/pkg.Type".
func unqualifyTypeArgs(name string) string {
	open := strings.IndexByte(name, '[')
	if open < 0 {
		return name
	}

	var b strings.Builder
	b.WriteString(name[:open])
	token := -1
	flush := func(end int) {
		if token < 0 {
			return
		}
		ident := name[token:end]
		if dot := strings.LastIndexByte(ident, '.'); dot >= 0 {
			ident = ident[dot+1:]
		}
		b.WriteString(ident)
		token = -1
	}
	for i := open; i < len(name); i++ {
		switch name[i] {
		case '[', ']', ',', '*', '(', ')', '{', '}', ';', ' ':
			flush(i)
			b.WriteByte(name[i])
		default:
			if token < 0 {
				token = i
			}
		}
	}
	flush(len(name))
	return b.String()
}

// composeName names named types with leaf and builds pointer, slice, array, map
// and channel names from their element names. Other unnamed types fall back to
// reflect's own rendering.
func composeName(t reflect.Type, leaf func(reflect.Type) string) string {
	if t.Name() != "" {
		return leaf(t)
	}

	switch t.Kind() {
	case reflect.Pointer:
		return "*" + composeName(t.Elem(), leaf)
	case reflect.Slice:
		return "[]" + composeName(t.Elem(), leaf)
	case reflect.Array:
		return "[" + strconv.Itoa(t.Len()) + "]" + composeName(t.Elem(), leaf)
	case reflect.Map:
		return "map[" + composeName(t.Key(), leaf) + "]" + composeName(t.Elem(), leaf)
	case reflect.Chan:
		elem := composeName(t.Elem(), leaf)
		switch t.ChanDir() {
		case reflect.RecvDir:
			return "<-chan " + elem
		case reflect.SendDir:
			return "chan<- " + elem
		}
		// chan (<-chan T) needs parentheses to stay unambiguous.
		if t.Elem().Kind() == reflect.Chan && t.Elem().Name() == "" && t.Elem().ChanDir() == reflect.RecvDir {
			return "chan (" + elem + ")"
		}
		return "chan " + elem
	}
	return t.String()
}

var mappersByName = map[string]core.Mapper{
	"qualified": QualifiedName,
	"simple":    SimpleName,
	"kind":      KindName,
	"package":   PackagePath,
}

// MapperByName returns the built-in mapper registered under name
// ("qualified", "simple", "kind" or "package").
func MapperByName(name string) (core.Mapper, error) {
	m, ok := mappersByName[name]
	if !ok {
		return nil, core.NewArgumentError("MapperByName", "name",
			fmt.Sprintf("unknown mapper %q (want one of %s)", name, strings.Join(MapperNames(), ", ")))
	}
	return m, nil
}

// MapperNames returns the names accepted by MapperByName in sorted order.
func MapperNames() []string {
	names := make([]string, 0, len(mappersByName))
	for name := range mappersByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
