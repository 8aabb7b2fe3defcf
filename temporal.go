package cba

import (
	"strings"
	"time"

	"github.com/go-kit/log/level"
)

// zeroTemporal is the sentinel of every temporal kind: 0000-01-01T00:00:00Z, reduced to the components of the kind.
var zeroTemporal = time.Date(0, time.January, 1, 0, 0, 0, 0, time.UTC)

type temporalFormat struct {
	zero    time.Time
	format  string
	layouts []string
}

var temporalFormats = map[Kind]temporalFormat{
	KindDate: {
		zero:   zeroTemporal,
		format: "2006-01-02",
		layouts: []string{"2006-01-02", "2006-01-02T15:04:05.999999999", "2006-01-02 15:04:05.999999999",
			time.RFC3339Nano},
	},
	KindTime: {
		zero:    zeroTemporal,
		format:  "15:04:05.999999999",
		layouts: []string{"15:04:05.999999999", "15:04", "2006-01-02T15:04:05.999999999", time.RFC3339Nano},
	},
	KindDateTime: {
		zero:   zeroTemporal,
		format: "2006-01-02T15:04:05.999999999",
		layouts: []string{"2006-01-02T15:04:05.999999999", "2006-01-02 15:04:05.999999999", "2006-01-02T15:04",
			"2006-01-02", time.RFC3339Nano},
	},
	KindTimestamp: {
		zero:   zeroTemporal,
		format: "2006-01-02T15:04:05.000000Z07:00",
		layouts: []string{time.RFC3339Nano, "2006-01-02 15:04:05.999999999Z07:00", "2006-01-02T15:04:05.999999999",
			"2006-01-02 15:04:05.999999999", "2006-01-02"},
	},
}

// Temporal is a DATE, TIME, DATETIME or TIMESTAMP column. Each kind has a zero sentinel, which is a valid stored
// value distinct from an unset one; test it with IsZero.
type Temporal struct {
	field
	format temporalFormat
	value  time.Time
}

// NewDate builds a calendar date, 0000-01-01 unless another default is set.
func NewDate(options ...Option) *Temporal {
	return newTemporal(KindDate, options)
}

// NewTime builds a time of day, 00:00:00 unless another default is set.
func NewTime(options ...Option) *Temporal {
	return newTemporal(KindTime, options)
}

// NewDateTime builds a date and time without zone, 0000-01-01T00:00:00 unless another default is set.
func NewDateTime(options ...Option) *Temporal {
	return newTemporal(KindDateTime, options)
}

// NewTimestamp builds an UTC instant with microsecond resolution, 0000-01-01T00:00:00.000000Z unless another
// default is set.
func NewTimestamp(options ...Option) *Temporal {
	return newTemporal(KindTimestamp, options)
}

func newTemporal(kind Kind, options []Option) *Temporal {
	format := temporalFormats[kind]
	optns := newOptions(0, Unrestricted, Unrestricted, format.zero.Format(format.format), options)
	ret := &Temporal{
		field:  newField(kind, optns),
		format: format,
	}
	ret.ClearField()
	return ret
}

var _ Value = (*Temporal)(nil)

// Time returns the payload. DATE and TIME values use the zero parts of the sentinel for the missing components.
func (t *Temporal) Time() time.Time {
	return t.value
}

// Zero returns the zero sentinel of the kind.
func (t *Temporal) Zero() time.Time {
	return t.format.zero
}

// IsZero returns whether the payload is the zero sentinel of the kind.
func (t *Temporal) IsZero() bool {
	return t.value.Equal(t.format.zero)
}

func (t *Temporal) Assign(v string) {
	if !t.canAssign(v) {
		return
	}
	t.set(t.parse(v))
	t.assigned()
}

// AssignTime assigns a native time, reduced to the components of the kind.
func (t *Temporal) AssignTime(v time.Time) {
	if !t.canAssign(v.String()) {
		return
	}
	t.set(v)
	t.assigned()
}

func (t *Temporal) AssignSystem(phase Phase, v string) bool {
	if !t.canAssignSystem(phase, v) {
		return false
	}
	t.set(t.parse(v))
	t.assigned()
	return true
}

// AssignSystemTime assigns a native time on behalf of the system, like the moment a row is inserted.
func (t *Temporal) AssignSystemTime(phase Phase, v time.Time) bool {
	if !t.canAssignSystem(phase, v.String()) {
		return false
	}
	t.set(v)
	t.assigned()
	return true
}

func (t *Temporal) ClearField() {
	t.set(t.parse(t.defaultValue))
	t.cleared()
}

func (t *Temporal) parse(v string) time.Time {
	s := strings.TrimSpace(v)
	var err error
	for _, layout := range t.format.layouts {
		var ret time.Time
		ret, err = time.Parse(layout, s)
		if err == nil {
			return ret
		}
	}
	level.Warn(t.log()).Log("msg", "unable to convert the value to a temporal value; assigning the zero value",
		"value", v, "err", err)
	return t.format.zero
}

// set reduces the time to the components stored by the kind.
func (t *Temporal) set(v time.Time) {
	switch t.kind {
	case KindDate:
		v = time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
	case KindTime:
		v = time.Date(0, time.January, 1, v.Hour(), v.Minute(), v.Second(), v.Nanosecond(), time.UTC)
	case KindDateTime:
		v = time.Date(v.Year(), v.Month(), v.Day(), v.Hour(), v.Minute(), v.Second(), v.Nanosecond(), time.UTC)
	case KindTimestamp:
		v = v.UTC().Truncate(time.Microsecond)
	}
	t.value = v
}

func (t *Temporal) String() string {
	return t.value.Format(t.format.format)
}

func (t *Temporal) CreateSpec() (string, error) {
	return t.createSpec(t.kind.String())
}

func (t *Temporal) Equal(other Value) bool {
	o, ok := other.(*Temporal)
	if !ok || o == nil || o.kind != t.kind {
		return false
	}
	return o.value.Equal(t.value)
}
