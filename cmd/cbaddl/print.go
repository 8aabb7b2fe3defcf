package main

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"
	"github.com/fatih/color"
	"github.com/go-kit/log"

	"github.com/eryjus/cba/schema"
)

// printCommand prints the CREATE TABLE statement of each table of a schema directory.
type printCommand struct {
	logger       *log.Logger
	dir          *string
	dirAsSchema  *bool
	withComments *bool
}

func (cmd *printCommand) run(c *kingpin.ParseContext) error {
	s, err := loadSchema(*cmd.logger, *cmd.dir, *cmd.dirAsSchema)
	if err != nil {
		exitWithErr(err)
	}

	bold := color.New(color.Bold)
	for _, t := range s.Tables() {
		spec, err := t.CreateSpec()
		if err != nil {
			exitWithErr(err)
		}
		if *cmd.withComments {
			bold.Printf("-- %s: %d columns\n", t.QualifiedName(), len(t.Fields()))
		}
		fmt.Printf("%s;\n", spec)
	}
	return nil
}

func addPrintCommand(app *kingpin.Application, logger *log.Logger) {
	cmd := &printCommand{logger: logger}
	printCmd := app.Command("print", "Print the CREATE TABLE statements of the schema files in a directory.").
		Action(cmd.run)
	cmd.dir = printCmd.Arg("dir", "The directory of the schema files.").Required().ExistingDir()
	cmd.dirAsSchema = printCmd.Flag("dir-as-schema", "Use the sub-directory of each file as the schema of its tables.").
		Bool()
	cmd.withComments = printCmd.Flag("comments", "Print a comment line before each statement.").Bool()
}

func loadSchema(logger log.Logger, dir string, dirAsSchema bool, loadOptions ...schema.LoadOption) (*schema.Schema,
	error) {
	var options []schema.FSFileProviderOption
	if dirAsSchema {
		options = append(options, schema.WithDirectoryAsSchema())
	}
	loadOptions = append([]schema.LoadOption{schema.WithLogger(logger)}, loadOptions...)
	return schema.Load(schema.NewDirectoryFileProvider(dir, options...), loadOptions...)
}
