package cba

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrFieldNameRequired = errors.New("field name is not set; cannot create a table spec from a variable")
)

// ConfigError is a programmer error in the configuration of a value. It is never meant to be retried.
type ConfigError struct {
	Kind Kind
	Err  error
}

func newConfigError(kind Kind, err error) *ConfigError {
	return &ConfigError{
		Kind: kind,
		Err:  err,
	}
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
