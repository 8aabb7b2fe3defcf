package schema

import (
	"fmt"
	"io"

	"github.com/eryjus/cba"
	"github.com/eryjus/cba/table"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/pkg/errors"
)

// Schema is the set of tables loaded from schema files, in load order.
type Schema struct {
	tables []*table.Table
	byName map[string]*table.Table
}

// Tables returns the tables in the order they were loaded.
func (s *Schema) Tables() []*table.Table {
	return s.tables
}

// Table returns a table by its qualified name.
func (s *Schema) Table(qualifiedName string) (*table.Table, bool) {
	t, ok := s.byName[qualifiedName]
	return t, ok
}

// CreateSpecs returns the CREATE TABLE statement of every table, in load order.
func (s *Schema) CreateSpecs() ([]string, error) {
	var ret []string
	for _, t := range s.tables {
		spec, err := t.CreateSpec()
		if err != nil {
			return nil, err
		}
		ret = append(ret, spec)
	}
	return ret, nil
}

// ColumnDefinition is a column entry of a schema file.
type ColumnDefinition struct {
	Name         string `yaml:"name"`
	Type         string `yaml:"type"`
	Size         int    `yaml:"size"`
	Precision    *int   `yaml:"precision"`
	Scale        *int   `yaml:"scale"`
	Unrestricted bool   `yaml:"unrestricted"`
	ZeroFill     bool   `yaml:"zero_fill"`
	Update       string `yaml:"update"`
	NotNull      bool   `yaml:"not_null"`
	Default      any    `yaml:"default"`
}

// Options returns the value builder options of the column bound to the table.
func (c ColumnDefinition) Options(tableName string) ([]cba.Option, error) {
	style, ok := cba.ParseUpdateStyle(c.Update)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownUpdateStyle, "'%s'", c.Update)
	}

	ret := []cba.Option{
		cba.WithField(tableName, c.Name),
		cba.WithUpdateStyle(style),
	}
	if c.Size != 0 {
		ret = append(ret, cba.WithSize(c.Size))
	}
	switch {
	case c.Unrestricted:
		ret = append(ret, cba.WithUnrestricted())
	case c.Precision != nil:
		scale := 0
		if c.Scale != nil {
			scale = *c.Scale
		}
		ret = append(ret, cba.WithPrecision(*c.Precision, scale))
	}
	if c.ZeroFill {
		ret = append(ret, cba.WithZeroFill())
	}
	if c.NotNull {
		ret = append(ret, cba.WithNotNull())
	}
	if c.Default != nil {
		ret = append(ret, cba.WithDefault(fmt.Sprint(c.Default)))
	}
	return ret, nil
}

// LoadOption configures Load.
type LoadOption func(*loader)

// WithLogger sets the logger of the loader and of every value it builds.
func WithLogger(logger log.Logger) LoadOption {
	return func(l *loader) {
		l.logger = logger
	}
}

// WithFileErrorHandler reports the error of each invalid file to handler and keeps loading the next files, instead
// of stopping at the first error. The tables of an invalid file are not added to the schema.
func WithFileErrorHandler(handler func(info FileInfo, err error)) LoadOption {
	return func(l *loader) {
		l.fileErrorHandler = handler
	}
}

type loader struct {
	fileProvider     FileProvider
	logger           log.Logger
	fileErrorHandler func(info FileInfo, err error)
	schema           Schema
}

// Load reads every file of the provider and builds its tables. Files may contain multiple YAML documents, each
// with a "tables" key.
func Load(fileProvider FileProvider, options ...LoadOption) (*Schema, error) {
	l := &loader{
		fileProvider: fileProvider,
		logger:       log.NewNopLogger(),
		schema: Schema{
			byName: map[string]*table.Table{},
		},
	}
	for _, opt := range options {
		opt(l)
	}
	err := l.load()
	if err != nil {
		return nil, err
	}
	return &l.schema, nil
}

func (l *loader) load() error {
	return l.fileProvider.Load(func(info FileInfo) error {
		loaded := len(l.schema.tables)
		err := l.loadFile(info)
		if err == nil || l.fileErrorHandler == nil {
			return err
		}
		for _, t := range l.schema.tables[loaded:] {
			delete(l.schema.byName, t.QualifiedName())
		}
		l.schema.tables = l.schema.tables[:loaded]
		l.fileErrorHandler(info, err)
		return nil
	})
}

func (l *loader) loadFile(info FileInfo) error {
	data, err := io.ReadAll(info.File)
	if err != nil {
		return err
	}

	fileParser, err := parser.ParseBytes(data, 0)
	if err != nil {
		return err
	}

	for _, doc := range fileParser.Docs {
		if doc.Body == nil {
			continue
		}
		err := l.loadDoc(doc.Body, info)
		if err != nil {
			return err
		}
	}

	return nil
}

func (l *loader) loadDoc(node ast.Node, info FileInfo) error {
	values := mappingValues(node)
	if values == nil {
		return NewParseError(fmt.Sprintf("invalid file node '%s'", node.Type().String()), node.GetPath(),
			node.GetToken().Position)
	}
	for _, value := range values {
		key, err := getStringNode(value.Key)
		if err != nil {
			return err
		}
		switch key {
		case "tables":
			tables := mappingValues(value.Value)
			if tables == nil {
				return NewParseError("tables must be a mapping", value.Value.GetPath(),
					value.Value.GetToken().Position)
			}
			for _, tableNode := range tables {
				tableName, err := getStringNode(tableNode.Key)
				if err != nil {
					return err
				}
				err = l.loadTable(tableName, tableNode.Value, info)
				if err != nil {
					return errors.Wrapf(err, "error loading table '%s'", tableName)
				}
			}
		default:
			return NewParseError(fmt.Sprintf("invalid file key '%s'", key), value.GetPath(),
				value.GetToken().Position)
		}
	}
	return nil
}

func (l *loader) loadTable(tableName string, node ast.Node, info FileInfo) error {
	values := mappingValues(node)
	if values == nil {
		return NewParseError("unknown table node", node.GetPath(), node.GetToken().Position)
	}

	schemaName := info.Schema
	var columns []ColumnDefinition

	for _, value := range values {
		key, err := getStringNode(value.Key)
		if err != nil {
			return err
		}
		switch key {
		case "schema":
			schemaName, err = getStringNode(value.Value)
			if err != nil {
				return err
			}
		case "columns":
			err := yaml.NodeToValue(value.Value, &columns, yaml.DisallowUnknownField())
			if err != nil {
				return errors.Wrap(err, "error reading columns")
			}
		default:
			return NewParseError(fmt.Sprintf("invalid table key '%s'", key), value.GetPath(),
				value.GetToken().Position)
		}
	}

	var fields []cba.Value
	for idx, column := range columns {
		f, err := l.buildColumn(tableName, column)
		if err != nil {
			return errors.Wrapf(err, "error building column %d '%s'", idx, column.Name)
		}
		fields = append(fields, f)
	}

	t, err := table.New(schemaName, tableName, fields...)
	if err != nil {
		return err
	}
	if _, ok := l.schema.byName[t.QualifiedName()]; ok {
		return errors.Wrapf(ErrDuplicateTable, "'%s' in file '%s'", t.QualifiedName(), info.Name)
	}

	level.Debug(l.logger).Log("msg", "table loaded", "table", t.QualifiedName(), "columns", len(fields),
		"file", info.Name)

	l.schema.tables = append(l.schema.tables, t)
	l.schema.byName[t.QualifiedName()] = t
	return nil
}

func (l *loader) buildColumn(tableName string, column ColumnDefinition) (cba.Value, error) {
	if column.Name == "" {
		return nil, ErrColumnNameRequired
	}
	kind, ok := cba.ParseKind(column.Type)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownType, "'%s'", column.Type)
	}
	options, err := column.Options(tableName)
	if err != nil {
		return nil, err
	}
	options = append(options, cba.WithLogger(l.logger))
	return cba.NewColumn(kind, options...)
}

// mappingValues returns the entries of a mapping node, or nil if the node is not a mapping.
func mappingValues(node ast.Node) []*ast.MappingValueNode {
	switch n := node.(type) {
	case *ast.MappingNode:
		return n.Values
	case *ast.MappingValueNode:
		return []*ast.MappingValueNode{n}
	default:
		return nil
	}
}

// getStringNode gets the string value of a string node, or an error if not a string node.
func getStringNode(node ast.Node) (string, error) {
	switch n := node.(type) {
	case *ast.StringNode:
		return n.Value, nil
	default:
		return "", NewParseError("node is not string", node.GetPath(), node.GetToken().Position)
	}
}
