package classsupport

import (
	"github.com/classfmt/go-sdk/internal/utils"
	"github.com/classfmt/go-sdk/pkg/core"
)

// Formatter joins class references into a single string.
// The zero value is not useful; use DefaultFormatter or NewFormatter.
type Formatter struct {
	separator   string
	nullLiteral string
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithSeparator sets the text placed between formatted classes.
func WithSeparator(sep string) Option {
	return func(f *Formatter) {
		f.separator = sep
	}
}

// WithNullLiteral sets the text used for absent classes by Format.
func WithNullLiteral(literal string) Option {
	return func(f *Formatter) {
		f.nullLiteral = literal
	}
}

// DefaultFormatter returns a formatter using DefaultSeparator and NullLiteral.
func DefaultFormatter() Formatter {
	return Formatter{
		separator:   DefaultSeparator,
		nullLiteral: NullLiteral,
	}
}

// NewFormatter returns the default formatter with opts applied.
func NewFormatter(opts ...Option) Formatter {
	f := DefaultFormatter()
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// Format joins the fully-qualified names of classes. Absent classes are
// rendered with the formatter's null literal before any naming takes place.
func (f Formatter) Format(classes ...core.Class) string {
	return utils.JoinMapped(classes, f.separator, func(c core.Class) string {
		if c == nil {
			return f.nullLiteral
		}
		return QualifiedName(c)
	})
}

// FormatWith joins mapper(c) for every class. Absent classes are passed to the
// mapper unchanged. A nil mapper is rejected before classes are inspected.
func (f Formatter) FormatWith(mapper core.Mapper, classes ...core.Class) (string, error) {
	if mapper == nil {
		return "", core.NewArgumentError("NullSafeToStringWith", "mapper", "must not be nil")
	}
	return utils.JoinMapped(classes, f.separator, mapper), nil
}
