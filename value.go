package cba

import (
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Value is a typed, constrained scalar mirroring a database column type. It is either a variable (no table binding)
// or a field (bound to a table and column name).
type Value interface {
	Kind() Kind
	TableName() string
	FieldName() string
	IsVariable() bool
	IsField() bool
	UpdateStyle() UpdateStyle
	IsReadOnly() bool
	IsNullable() bool
	IsDirty() bool
	IsEmpty() bool
	DefaultValue() string

	// Assign parses the text into the native payload, trimming it to fit the column constraints.
	// It is ignored on read-only values.
	Assign(v string)
	// AssignSystem assigns the text on behalf of the system during an insert or update phase. Returns false if the
	// value update style does not allow assignment in this phase.
	AssignSystem(phase Phase, v string) bool
	// ClearField resets the value to its default, clearing the dirty flag and marking nullable values as empty.
	ClearField()

	String() string
	// CreateSpec returns the column definition fragment used in a CREATE TABLE statement.
	CreateSpec() (string, error)
	// Equal compares only the payloads of two values of the same family.
	Equal(other Value) bool
}

// UpdateStyle controls who is allowed to write to a value.
type UpdateStyle int

const (
	// ProgrammerManaged values are freely writable.
	ProgrammerManaged UpdateStyle = iota
	// InsertOnly values are set by the system when a row is inserted.
	InsertOnly
	// UpdateOnly values are set by the system when a row is updated.
	UpdateOnly
	// Both values are set by the system when a row is inserted or updated.
	Both
)

func (s UpdateStyle) String() string {
	switch s {
	case ProgrammerManaged:
		return "programmer"
	case InsertOnly:
		return "insert"
	case UpdateOnly:
		return "update"
	case Both:
		return "both"
	default:
		return "unknown"
	}
}

// Allows returns whether a system assignment in the phase is permitted by the update style.
func (s UpdateStyle) Allows(phase Phase) bool {
	switch s {
	case ProgrammerManaged, Both:
		return true
	case InsertOnly:
		return phase == PhaseInsert
	case UpdateOnly:
		return phase == PhaseUpdate
	default:
		return false
	}
}

// ParseUpdateStyle parses the names returned by [UpdateStyle.String]. Blank means ProgrammerManaged.
func ParseUpdateStyle(s string) (UpdateStyle, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "programmer":
		return ProgrammerManaged, true
	case "insert":
		return InsertOnly, true
	case "update":
		return UpdateOnly, true
	case "both":
		return Both, true
	default:
		return ProgrammerManaged, false
	}
}

// Phase is the row lifecycle phase in which the system stamps read-only values.
type Phase int

const (
	// PhaseInsert is the phase of a row being inserted.
	PhaseInsert Phase = iota
	// PhaseUpdate is the phase of an existing row being updated.
	PhaseUpdate
)

func (p Phase) String() string {
	if p == PhaseUpdate {
		return "update"
	}
	return "insert"
}

// field holds the identity, policy and lifecycle state shared by all values.
type field struct {
	kind         Kind
	tableName    string
	fieldName    string
	updateStyle  UpdateStyle
	notNull      bool
	defaultValue string
	logger       log.Logger
	frozen       bool

	dirty bool
	empty bool
}

func newField(kind Kind, o *options) field {
	f := field{
		kind:         kind,
		updateStyle:  o.updateStyle,
		notNull:      o.notNull,
		defaultValue: o.defaultValue,
		logger:       o.logger,
	}
	// both are set or both are blank
	if strings.TrimSpace(o.tableName) != "" && strings.TrimSpace(o.fieldName) != "" {
		f.tableName = o.tableName
		f.fieldName = o.fieldName
	}
	if f.logger == nil {
		f.logger = defaultLogger()
	}
	return f
}

func (f *field) Kind() Kind               { return f.kind }
func (f *field) TableName() string        { return f.tableName }
func (f *field) FieldName() string        { return f.fieldName }
func (f *field) IsVariable() bool         { return f.tableName == "" }
func (f *field) IsField() bool            { return !f.IsVariable() }
func (f *field) UpdateStyle() UpdateStyle { return f.updateStyle }
func (f *field) IsReadOnly() bool         { return f.frozen || f.updateStyle != ProgrammerManaged }
func (f *field) IsNullable() bool         { return !f.notNull }
func (f *field) IsDirty() bool            { return f.dirty }
func (f *field) IsEmpty() bool            { return f.empty }
func (f *field) DefaultValue() string     { return f.defaultValue }

func (f *field) log(keyvals ...any) log.Logger {
	return log.With(f.logger, append([]any{"kind", f.kind, "table", f.tableName, "field", f.fieldName}, keyvals...)...)
}

// canAssign checks the read-only guard of a programmer assignment.
func (f *field) canAssign(v string) bool {
	if f.IsReadOnly() {
		level.Warn(f.log()).Log("msg", "unable to assign to a read-only field; ignoring assignment",
			"update_style", f.updateStyle, "value", v)
		return false
	}
	return true
}

// canAssignSystem checks whether the system may assign in the phase.
func (f *field) canAssignSystem(phase Phase, v string) bool {
	if f.frozen || !f.updateStyle.Allows(phase) {
		level.Warn(f.log()).Log("msg", "field is not managed by the system in this phase; ignoring assignment",
			"update_style", f.updateStyle, "phase", phase, "value", v)
		return false
	}
	return true
}

// assigned marks the value as changed.
func (f *field) assigned() {
	f.dirty = true
	f.empty = false
}

// cleared marks the value as reset to its default.
func (f *field) cleared() {
	f.dirty = false
	f.empty = f.IsNullable()
}

// createSpec builds the column fragment, failing on variables.
func (f *field) createSpec(typ string) (string, error) {
	if f.fieldName == "" {
		return "", newConfigError(f.kind, ErrFieldNameRequired)
	}
	ret := f.fieldName + " " + typ
	if f.notNull {
		ret += " NOT NULL"
	}
	return ret, nil
}
