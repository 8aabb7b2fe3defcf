package cba

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-kit/log/level"
	"github.com/shopspring/decimal"
)

// Float is a floating-point FLOAT (single precision) or DOUBLE column. Every assignment is quantized to the
// precision and scale through a fixed-point projection, so the payload always equals its edited decimal.
type Float struct {
	field
	bitSize   int
	precision int
	scale     int
	value     float64
}

// NewFloat builds a single precision floating-point value, FLOAT(15,5) unless configured otherwise.
func NewFloat(options ...Option) *Float {
	return newFloat(KindFloat, 32, options)
}

// NewDouble builds a double precision floating-point value, DOUBLE(15,5) unless configured otherwise.
func NewDouble(options ...Option) *Float {
	return newFloat(KindDouble, 64, options)
}

func newFloat(kind Kind, bitSize int, options []Option) *Float {
	optns := newOptions(0, DefaultPrecision, DefaultScale, "0", options)
	ret := &Float{
		field:   newField(kind, optns),
		bitSize: bitSize,
	}
	ret.precision, ret.scale = normalizePrecision(ret.log(), optns.precision, optns.scale)
	ret.ClearField()
	return ret
}

var _ Value = (*Float)(nil)

func (f *Float) BitSize() int         { return f.bitSize }
func (f *Float) Precision() int       { return f.precision }
func (f *Float) Scale() int           { return f.scale }
func (f *Float) IsUnrestricted() bool { return f.precision == Unrestricted }
func (f *Float) Float64() float64     { return f.value }
func (f *Float) Float32() float32     { return float32(f.value) }

func (f *Float) Assign(v string) {
	if !f.canAssign(v) {
		return
	}
	f.set(f.parse(v))
	f.assigned()
}

// AssignFloat64 assigns a native float, quantized to the precision and scale.
func (f *Float) AssignFloat64(v float64) {
	if !f.canAssign(strconv.FormatFloat(v, 'g', -1, f.bitSize)) {
		return
	}
	f.set(f.checkFinite(v, v))
	f.assigned()
}

func (f *Float) AssignSystem(phase Phase, v string) bool {
	if !f.canAssignSystem(phase, v) {
		return false
	}
	f.set(f.parse(v))
	f.assigned()
	return true
}

func (f *Float) ClearField() {
	f.set(f.parse(f.defaultValue))
	f.cleared()
}

func (f *Float) parse(v string) float64 {
	ret, err := strconv.ParseFloat(strings.TrimSpace(v), f.bitSize)
	if err != nil {
		level.Warn(f.log()).Log("msg", "unable to convert the value to a floating-point number; assigning 0",
			"value", v, "err", err)
		return 0
	}
	return f.checkFinite(ret, v)
}

// checkFinite replaces NaN and infinities, which have no decimal projection, by 0.
func (f *Float) checkFinite(v float64, source any) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		level.Warn(f.log()).Log("msg", "value is not a finite number; assigning 0", "value", source)
		return 0
	}
	return v
}

func (f *Float) set(v float64) {
	if f.bitSize == 32 {
		v = float64(float32(v))
	}
	if f.IsUnrestricted() {
		f.value = v
		return
	}

	var wrk decimal.Decimal
	if f.bitSize == 32 {
		wrk = decimal.NewFromFloat32(float32(v))
	} else {
		wrk = decimal.NewFromFloat(v)
	}
	wrk = editDecimal(wrk, f.precision, f.scale)

	f.value, _ = wrk.Float64()
	if f.bitSize == 32 {
		f.value = float64(float32(f.value))
	}
	if f.value != v {
		level.Debug(f.log()).Log("msg", "value quantized to fit the column", "value", v, "quantized", f.value)
	}
}

func (f *Float) String() string {
	return strconv.FormatFloat(f.value, 'f', -1, f.bitSize)
}

func (f *Float) CreateSpec() (string, error) {
	return f.createSpec(realTypeSpec(f.kind, f.precision, f.scale))
}

func (f *Float) Equal(other Value) bool {
	o, ok := other.(*Float)
	if !ok || o == nil {
		return false
	}
	return o.value == f.value
}
