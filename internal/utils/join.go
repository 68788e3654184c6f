package utils

import "strings"

// JoinMapped renders every item with f and joins the results with sep,
// preserving input order. An empty or nil slice yields "" without calling f.
func JoinMapped[T any](items []T, sep string, f func(T) string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return f(items[0])
	}

	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(f(item))
	}
	return b.String()
}
