package main

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/eryjus/cba/schema"
)

// checkCommand loads every schema file of a directory and reports each invalid file.
type checkCommand struct {
	logger      *log.Logger
	dir         *string
	dirAsSchema *bool
}

func (cmd *checkCommand) run(c *kingpin.ParseContext) error {
	s, invalid, err := checkSchema(*cmd.logger, *cmd.dir, *cmd.dirAsSchema)
	if err != nil {
		exitWithErr(err)
	}
	if invalid > 0 {
		exitWithErr(fmt.Errorf("%d schema files are invalid", invalid))
	}
	color.Green("%d tables are valid", len(s.Tables()))
	return nil
}

// checkSchema loads the schema directory without stopping at invalid files. Each invalid file is logged, and the
// returned schema holds the tables of the valid ones.
func checkSchema(logger log.Logger, dir string, dirAsSchema bool) (*schema.Schema, int, error) {
	invalid := 0
	s, err := loadSchema(logger, dir, dirAsSchema, schema.WithFileErrorHandler(func(info schema.FileInfo, err error) {
		invalid++
		level.Error(logger).Log("msg", "invalid schema file", "file", info.Name, "err", err)
	}))
	return s, invalid, err
}

func addCheckCommand(app *kingpin.Application, logger *log.Logger) {
	cmd := &checkCommand{logger: logger}
	check := app.Command("check", "Load the schema files in a directory and report every invalid file.").
		Action(cmd.run)
	cmd.dir = check.Arg("dir", "The directory of the schema files.").Required().ExistingDir()
	cmd.dirAsSchema = check.Flag("dir-as-schema", "Use the sub-directory of each file as the schema of its tables.").
		Bool()
}
