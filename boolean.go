package cba

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

// Boolean is an 8-bit integer restricted to 0 (false) and 1 (true).
type Boolean struct {
	Integer
}

var (
	// True is a read-only true constant.
	True = newBooleanConstant("TRUE")
	// False is a read-only false constant.
	False = newBooleanConstant("FALSE")
)

// NewBoolean builds a boolean, false unless another default is set.
func NewBoolean(options ...Option) *Boolean {
	optns := newOptions(1, Unrestricted, Unrestricted, "FALSE", options)
	ret := &Boolean{
		Integer: Integer{
			field:       newField(KindBoolean, optns),
			width:       Width8,
			displaySize: 1,
		},
	}
	ret.ClearField()
	return ret
}

func newBooleanConstant(v string) *Boolean {
	ret := NewBoolean(WithDefault(v), WithNotNull())
	ret.frozen = true
	return ret
}

var _ Value = (*Boolean)(nil)

// Bool returns the payload as a bool.
func (b *Boolean) Bool() bool {
	return b.value != 0
}

func (b *Boolean) Assign(v string) {
	if !b.canAssign(v) {
		return
	}
	b.set(b.parse(v))
	b.assigned()
}

// AssignBool assigns a native bool.
func (b *Boolean) AssignBool(v bool) {
	if !b.canAssign(strconv.FormatBool(v)) {
		return
	}
	b.set(boolInt(v))
	b.assigned()
}

// AssignInt64 assigns 0 as false and any other value as true.
func (b *Boolean) AssignInt64(v int64) {
	if !b.canAssign(strconv.FormatInt(v, 10)) {
		return
	}
	b.set(boolInt(v != 0))
	b.assigned()
}

func (b *Boolean) AssignSystem(phase Phase, v string) bool {
	if !b.canAssignSystem(phase, v) {
		return false
	}
	b.set(b.parse(v))
	b.assigned()
	return true
}

func (b *Boolean) ClearField() {
	b.set(b.parse(b.defaultValue))
	b.cleared()
}

func (b *Boolean) set(v int64) {
	b.value = v
}

// parse coerces any text to 0 or 1. It never fails: text that is not a boolean or a number is false.
func (b *Boolean) parse(v string) int64 {
	s := strings.TrimSpace(v)
	switch strings.ToLower(s) {
	case "true":
		return 1
	case "false":
		return 0
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return boolInt(n != 0)
	}

	// out of range numbers parse to an infinity or zero with ErrRange, and keep their truth
	f, err := strconv.ParseFloat(s, 64)
	if (err != nil && !errors.Is(err, strconv.ErrRange)) || math.IsNaN(f) {
		level.Warn(b.log()).Log("msg", "unable to convert the value to a boolean; assigning FALSE", "value", v)
		return 0
	}
	return boolInt(math.Trunc(f) != 0)
}

func (b *Boolean) String() string {
	if b.value == 0 {
		return "FALSE"
	}
	return "TRUE"
}

func (b *Boolean) CreateSpec() (string, error) {
	return b.createSpec("BOOLEAN")
}

func (b *Boolean) Equal(other Value) bool {
	o, ok := other.(*Boolean)
	if !ok || o == nil {
		return false
	}
	return o.value == b.value
}

func boolInt(v bool) int64 {
	if v {
		return 1
	}
	return 0
}
