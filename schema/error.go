package schema

import (
	"fmt"

	"github.com/goccy/go-yaml/token"
	"github.com/pkg/errors"
)

var (
	ErrUnknownType        = errors.New("unknown column type")
	ErrUnknownUpdateStyle = errors.New("unknown update style")
	ErrDuplicateTable     = errors.New("duplicate table")
	ErrColumnNameRequired = errors.New("column name is required")
)

type TokenPosition = token.Position

// ParseError is an invalid node in a schema file.
type ParseError struct {
	ErrorMessage string
	Path         string
	Position     *TokenPosition
}

func NewParseError(msg string, path string, position *TokenPosition) ParseError {
	return ParseError{
		ErrorMessage: msg,
		Path:         path,
		Position:     position,
	}
}

func (e ParseError) Error() string {
	if e.Position != nil {
		return fmt.Sprintf("%s (line %d): %s", e.Path, e.Position.Line, e.ErrorMessage)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.ErrorMessage)
}
