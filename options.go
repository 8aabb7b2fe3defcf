package cba

import "github.com/go-kit/log"

// Unrestricted is the precision and scale of a real number without digit limits.
const Unrestricted = -1

// Option configures a Value before it is built.
type Option func(*options)

type options struct {
	tableName    string
	fieldName    string
	size         int
	precision    int
	scale        int
	zeroFill     bool
	updateStyle  UpdateStyle
	notNull      bool
	defaultValue string
	logger       log.Logger
}

func newOptions(size int, precision int, scale int, defaultValue string, opts []Option) *options {
	o := &options{
		size:         size,
		precision:    precision,
		scale:        scale,
		defaultValue: defaultValue,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithField binds the value to a table column. If either name is blank the value is built as a variable.
func WithField(tableName, fieldName string) Option {
	return func(o *options) {
		o.tableName = tableName
		o.fieldName = fieldName
	}
}

// WithSize sets the display size of integers or the maximum width of CHAR and VARCHAR.
func WithSize(size int) Option {
	return func(o *options) {
		o.size = size
	}
}

// WithPrecision sets the total number of digits and the digits to the right of the point of real numbers.
func WithPrecision(precision, scale int) Option {
	return func(o *options) {
		o.precision = precision
		o.scale = scale
	}
}

// WithUnrestricted removes the digit limits of real numbers.
func WithUnrestricted() Option {
	return WithPrecision(Unrestricted, Unrestricted)
}

// WithZeroFill pads integers with zeros up to the display size.
func WithZeroFill() Option {
	return func(o *options) {
		o.zeroFill = true
	}
}

// WithUpdateStyle sets who is allowed to write to the value.
func WithUpdateStyle(style UpdateStyle) Option {
	return func(o *options) {
		o.updateStyle = style
	}
}

// WithNotNull makes the value not nullable, so clearing it never marks it empty.
func WithNotNull() Option {
	return func(o *options) {
		o.notNull = true
	}
}

// WithDefault sets the text assigned when the value is cleared. It is trimmed like any other assignment.
func WithDefault(defaultValue string) Option {
	return func(o *options) {
		o.defaultValue = defaultValue
	}
}

// WithLogger sets the logger for diagnostics of this value, instead of the package logger.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
