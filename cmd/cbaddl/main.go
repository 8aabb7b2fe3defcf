package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/eryjus/cba"
)

func main() {
	app := kingpin.New("cbaddl", "A tool for loading cba schema files and printing their table definitions.")
	logLevel := app.Flag("log.level", "Only log messages with the given severity or above.").
		Default("warn").Enum("debug", "info", "warn", "error")

	var logger log.Logger
	app.PreAction(func(*kingpin.ParseContext) error {
		logger = newLogger(*logLevel)
		cba.SetLogger(logger)
		return nil
	})

	addPrintCommand(app, &logger)
	addCheckCommand(app, &logger)

	kingpin.MustParse(app.Parse(os.Args[1:]))
}

func newLogger(logLevel string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	return log.With(level.NewFilter(logger, levelOption(logLevel)), "ts", log.DefaultTimestampUTC)
}

func levelOption(logLevel string) level.Option {
	switch logLevel {
	case "debug":
		return level.AllowDebug()
	case "info":
		return level.AllowInfo()
	case "error":
		return level.AllowError()
	default:
		return level.AllowWarn()
	}
}

func exitWithErr(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}
