package cba

import "github.com/pkg/errors"

var ErrUnknownKind = errors.New("unknown column kind")

// NewColumn builds a value of the kind, for callers that choose the column type at runtime.
func NewColumn(kind Kind, options ...Option) (Value, error) {
	switch kind {
	case KindTinyInt:
		return NewTinyInt(options...), nil
	case KindSmallInt:
		return NewSmallInt(options...), nil
	case KindMediumInt:
		return NewMediumInt(options...), nil
	case KindInt:
		return NewInt(options...), nil
	case KindBigInt:
		return NewBigInt(options...), nil
	case KindBoolean:
		return NewBoolean(options...), nil
	case KindDecimal:
		return NewDecimal(options...), nil
	case KindFloat:
		return NewFloat(options...), nil
	case KindDouble:
		return NewDouble(options...), nil
	case KindChar:
		return NewChar(options...), nil
	case KindVarchar:
		return NewVarchar(options...), nil
	case KindTinyText:
		return NewTinyText(options...), nil
	case KindText:
		return NewText(options...), nil
	case KindMediumText:
		return NewMediumText(options...), nil
	case KindDate:
		return NewDate(options...), nil
	case KindTime:
		return NewTime(options...), nil
	case KindDateTime:
		return NewDateTime(options...), nil
	case KindTimestamp:
		return NewTimestamp(options...), nil
	default:
		return nil, newConfigError(kind, ErrUnknownKind)
	}
}
