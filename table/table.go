package table

import (
	"strings"

	"github.com/eryjus/cba"
	"github.com/pkg/errors"
)

var (
	ErrFieldTable     = errors.New("field is bound to another table")
	ErrDuplicateField = errors.New("duplicate field name")
	ErrFieldNotFound  = errors.New("field not found")
)

// Table is an ordered set of fields bound to the same database table.
type Table struct {
	schema string
	name   string
	fields []cba.Value
	byName map[string]cba.Value
}

// New creates a table from its fields, in column order. Every field must be bound to the table name, and field
// names must be unique. The schema may be blank.
func New(schema string, name string, fields ...cba.Value) (*Table, error) {
	ret := &Table{
		schema: schema,
		name:   name,
		byName: map[string]cba.Value{},
	}
	for _, f := range fields {
		if f.TableName() != name {
			return nil, errors.Wrapf(ErrFieldTable, "field '%s' of table '%s' added to table '%s'",
				f.FieldName(), f.TableName(), name)
		}
		if _, ok := ret.byName[f.FieldName()]; ok {
			return nil, errors.Wrapf(ErrDuplicateField, "field '%s' of table '%s'", f.FieldName(), name)
		}
		ret.fields = append(ret.fields, f)
		ret.byName[f.FieldName()] = f
	}
	return ret, nil
}

func (t *Table) Schema() string { return t.schema }
func (t *Table) Name() string   { return t.name }

// QualifiedName returns the table name prefixed by the schema, if any.
func (t *Table) QualifiedName() string {
	if t.schema == "" {
		return t.name
	}
	return t.schema + "." + t.name
}

// Fields returns the fields in column order.
func (t *Table) Fields() []cba.Value {
	return t.fields
}

// Field returns the field with the name.
func (t *Table) Field(name string) (cba.Value, bool) {
	f, ok := t.byName[name]
	return f, ok
}

// CreateSpec returns the CREATE TABLE statement joining the column fragments of every field.
func (t *Table) CreateSpec() (string, error) {
	var specs []string
	for idx, f := range t.fields {
		spec, err := f.CreateSpec()
		if err != nil {
			return "", errors.Wrapf(err, "error creating spec of column %d of table '%s'", idx, t.QualifiedName())
		}
		specs = append(specs, spec)
	}
	return "CREATE TABLE " + t.QualifiedName() + " (" + strings.Join(specs, ", ") + ")", nil
}

// ClearBuffer resets every field to its default.
func (t *Table) ClearBuffer() {
	for _, f := range t.fields {
		f.ClearField()
	}
}

// DirtyFields returns the fields changed since they were last cleared, in column order.
func (t *Table) DirtyFields() []cba.Value {
	var ret []cba.Value
	for _, f := range t.fields {
		if f.IsDirty() {
			ret = append(ret, f)
		}
	}
	return ret
}

// Stamp assigns system-managed values for a row lifecycle phase. Fields whose update style does not allow the
// phase are left unchanged and reported by name.
func (t *Table) Stamp(phase cba.Phase, values map[string]string) (skipped []string, err error) {
	for name := range values {
		if _, ok := t.byName[name]; !ok {
			return nil, errors.Wrapf(ErrFieldNotFound, "field '%s' of table '%s'", name, t.name)
		}
	}
	for _, f := range t.fields {
		v, ok := values[f.FieldName()]
		if !ok {
			continue
		}
		if !f.AssignSystem(phase, v) {
			skipped = append(skipped, f.FieldName())
		}
	}
	return skipped, nil
}
