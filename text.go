package cba

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-kit/log/level"
)

const (
	TinyTextSize   = 255
	TextSize       = 65535
	MediumTextSize = 16777215
)

// Text is a character column: CHAR and VARCHAR with a configured width, or TINYTEXT, TEXT and MEDIUMTEXT with the
// width of the type. Assigned text longer than the width is truncated, never padded.
type Text struct {
	field
	maxWidth int
	value    string
}

// NewChar builds a fixed-width CHAR, CHAR(1) unless sized with WithSize.
func NewChar(options ...Option) *Text {
	return newText(KindChar, 1, true, options)
}

// NewVarchar builds a variable-width VARCHAR, VARCHAR(1) unless sized with WithSize.
func NewVarchar(options ...Option) *Text {
	return newText(KindVarchar, 1, true, options)
}

// NewTinyText builds a TINYTEXT of up to 255 characters.
func NewTinyText(options ...Option) *Text {
	return newText(KindTinyText, TinyTextSize, false, options)
}

// NewText builds a TEXT of up to 65535 characters.
func NewText(options ...Option) *Text {
	return newText(KindText, TextSize, false, options)
}

// NewMediumText builds a MEDIUMTEXT of up to 16777215 characters.
func NewMediumText(options ...Option) *Text {
	return newText(KindMediumText, MediumTextSize, false, options)
}

func newText(kind Kind, maxWidth int, sized bool, options []Option) *Text {
	optns := newOptions(maxWidth, Unrestricted, Unrestricted, "", options)
	ret := &Text{
		field:    newField(kind, optns),
		maxWidth: maxWidth,
	}
	if sized {
		if optns.size > 0 {
			ret.maxWidth = optns.size
		} else {
			level.Warn(ret.log()).Log("msg", "invalid size; using the default", "size", optns.size,
				"default", maxWidth)
		}
	}
	ret.ClearField()
	return ret
}

var _ Value = (*Text)(nil)

// MaxWidth returns the maximum number of characters of the value.
func (t *Text) MaxWidth() int {
	return t.maxWidth
}

// Len returns the number of characters of the value.
func (t *Text) Len() int {
	return utf8.RuneCountInString(t.value)
}

// Padded returns a CHAR value padded with spaces to its width. Other kinds are returned as-is.
func (t *Text) Padded() string {
	if t.kind != KindChar {
		return t.value
	}
	if n := t.Len(); n < t.maxWidth {
		return t.value + strings.Repeat(" ", t.maxWidth-n)
	}
	return t.value
}

func (t *Text) Assign(v string) {
	if !t.canAssign(v) {
		return
	}
	t.set(v)
	t.assigned()
}

func (t *Text) AssignSystem(phase Phase, v string) bool {
	if !t.canAssignSystem(phase, v) {
		return false
	}
	t.set(v)
	t.assigned()
	return true
}

func (t *Text) ClearField() {
	t.set(t.defaultValue)
	t.cleared()
}

func (t *Text) set(v string) {
	t.value = truncateChars(v, t.maxWidth)
	if len(t.value) != len(v) {
		level.Debug(t.log()).Log("msg", "value truncated to the column width", "width", t.maxWidth, "value", v)
	}
}

func (t *Text) String() string {
	return t.value
}

func (t *Text) CreateSpec() (string, error) {
	typ := t.kind.String()
	if t.kind == KindChar || t.kind == KindVarchar {
		typ = fmt.Sprintf("%s(%d)", t.kind, t.maxWidth)
	}
	return t.createSpec(typ)
}

func (t *Text) Equal(other Value) bool {
	o, ok := other.(*Text)
	if !ok || o == nil {
		return false
	}
	return o.value == t.value
}

// truncateChars returns the first n characters of s.
func truncateChars(s string, n int) string {
	count := 0
	for pos := range s {
		if count == n {
			return s[:pos]
		}
		count++
	}
	return s
}
