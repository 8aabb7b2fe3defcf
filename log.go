package cba

import (
	"github.com/go-kit/log"
)

var logger = log.NewNopLogger()

// SetLogger sets the package logger used by values built without [WithLogger]. A nil logger discards diagnostics.
// Values keep the logger they were built with.
func SetLogger(l log.Logger) {
	if l == nil {
		l = log.NewNopLogger()
	}
	logger = l
}

func defaultLogger() log.Logger {
	return logger
}
