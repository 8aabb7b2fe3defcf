package cba

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/shopspring/decimal"
)

// Width is the storage width of a signed integer, in bits.
type Width uint

const (
	Width8  Width = 8
	Width16 Width = 16
	Width24 Width = 24
	Width32 Width = 32
	Width64 Width = 64
)

// Min returns the minimum value representable in the width.
func (w Width) Min() int64 {
	return -int64(uint64(1) << (w - 1))
}

// Max returns the maximum value representable in the width.
func (w Width) Max() int64 {
	return int64(uint64(1)<<(w-1) - 1)
}

// Trim fits a 64-bit value into the width. The bit pattern of the sign bit alone becomes the minimum value,
// otherwise the magnitude is masked to the width and the sign restored.
func (w Width) Trim(v int64) int64 {
	mask := uint64(1)<<w - 1
	signBit := uint64(1) << (w - 1)

	if uint64(v)&mask == signBit {
		return w.Min()
	}

	isNeg := v < 0
	if isNeg {
		v = -v
	}
	v = int64(uint64(v) & (signBit - 1))
	if isNeg {
		v = -v
	}
	return v
}

// Integer is a signed integer column of a fixed width: TINYINT, SMALLINT, MEDIUMINT, INT or BIGINT.
type Integer struct {
	field
	width       Width
	displaySize int
	zeroFill    bool
	value       int64
}

// NewTinyInt builds an 8-bit integer.
func NewTinyInt(options ...Option) *Integer {
	return newInteger(KindTinyInt, Width8, 4, options)
}

// NewSmallInt builds a 16-bit integer.
func NewSmallInt(options ...Option) *Integer {
	return newInteger(KindSmallInt, Width16, 6, options)
}

// NewMediumInt builds a 24-bit integer.
func NewMediumInt(options ...Option) *Integer {
	return newInteger(KindMediumInt, Width24, 9, options)
}

// NewInt builds a 32-bit integer.
func NewInt(options ...Option) *Integer {
	return newInteger(KindInt, Width32, 11, options)
}

// NewBigInt builds a 64-bit integer. Only signed values are supported.
func NewBigInt(options ...Option) *Integer {
	return newInteger(KindBigInt, Width64, 20, options)
}

func newInteger(kind Kind, width Width, displaySize int, options []Option) *Integer {
	optns := newOptions(displaySize, Unrestricted, Unrestricted, "0", options)
	ret := &Integer{
		field:       newField(kind, optns),
		width:       width,
		displaySize: optns.size,
		zeroFill:    optns.zeroFill,
	}
	if ret.displaySize <= 0 {
		level.Warn(ret.log()).Log("msg", "invalid display size; using the default", "size", optns.size,
			"default", displaySize)
		ret.displaySize = displaySize
	}
	ret.ClearField()
	return ret
}

var _ Value = (*Integer)(nil)

func (i *Integer) Width() Width     { return i.width }
func (i *Integer) DisplaySize() int { return i.displaySize }
func (i *Integer) IsZeroFill() bool { return i.zeroFill }
func (i *Integer) Int64() int64     { return i.value }
func (i *Integer) MinValue() int64  { return i.width.Min() }
func (i *Integer) MaxValue() int64  { return i.width.Max() }

func (i *Integer) Assign(v string) {
	if !i.canAssign(v) {
		return
	}
	i.set(parseInteger(i.log(), v))
	i.assigned()
}

// AssignInt64 assigns a native integer, trimmed to the width.
func (i *Integer) AssignInt64(v int64) {
	if !i.canAssign(strconv.FormatInt(v, 10)) {
		return
	}
	i.set(v)
	i.assigned()
}

func (i *Integer) AssignSystem(phase Phase, v string) bool {
	if !i.canAssignSystem(phase, v) {
		return false
	}
	i.set(parseInteger(i.log(), v))
	i.assigned()
	return true
}

func (i *Integer) ClearField() {
	i.set(parseInteger(i.log(), i.defaultValue))
	i.cleared()
}

func (i *Integer) set(v int64) {
	i.value = i.width.Trim(v)
	if i.value != v {
		level.Debug(i.log()).Log("msg", "value trimmed to the integer width", "value", v, "trimmed", i.value)
	}
}

func (i *Integer) String() string {
	return formatZeroFill(i.value, i.displaySize, i.zeroFill)
}

func (i *Integer) CreateSpec() (string, error) {
	typ := fmt.Sprintf("%s(%d)", i.kind, i.displaySize)
	if i.zeroFill {
		typ += " ZEROFILL"
	}
	return i.createSpec(typ)
}

func (i *Integer) Equal(other Value) bool {
	o, ok := other.(*Integer)
	if !ok || o == nil {
		return false
	}
	return o.value == i.value
}

// parseInteger parses the text as a 64-bit integer. Numbers that do not fit are reduced to their integer part
// and their low 64 bits; anything else becomes 0.
func parseInteger(logger log.Logger, v string) int64 {
	s := strings.TrimSpace(v)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		level.Warn(logger).Log("msg", "unable to convert the value to an integer; assigning 0", "value", v, "err", err)
		return 0
	}
	level.Debug(logger).Log("msg", "value reduced to a 64-bit integer", "value", v)
	switch exp := int64(d.Exponent()); {
	case exp >= 64:
		// 2^64 divides 10^64, so the low 64 bits are all zero
		return 0
	case exp < 0 && -exp >= coefficientDigits(d):
		// no integer part
		return 0
	}
	return lowInt64(d.BigInt())
}

// coefficientDigits returns the number of decimal digits of the coefficient of d.
func coefficientDigits(d decimal.Decimal) int64 {
	return int64(len(new(big.Int).Abs(d.Coefficient()).String()))
}

var mask64 = new(big.Int).SetUint64(^uint64(0))

// lowInt64 returns the low 64 bits of the two's complement representation of n.
func lowInt64(n *big.Int) int64 {
	return int64(new(big.Int).And(n, mask64).Uint64())
}

// formatZeroFill formats an integer, padding the digits after the sign with zeros up to size.
func formatZeroFill(v int64, size int, zeroFill bool) string {
	s := strconv.FormatInt(v, 10)
	if !zeroFill {
		return s
	}
	sign, digits := "", s
	if v < 0 {
		sign, digits = "-", s[1:]
	}
	if len(digits) >= size {
		return s
	}
	return sign + strings.Repeat("0", size-len(digits)) + digits
}
