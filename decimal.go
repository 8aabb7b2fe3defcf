package cba

import (
	"fmt"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/shopspring/decimal"
)

const (
	// DefaultPrecision is the total number of digits of real numbers built without WithPrecision.
	DefaultPrecision = 15
	// DefaultScale is the number of fractional digits of real numbers built without WithPrecision.
	DefaultScale = 5
)

// Decimal is an exact fixed-point DECIMAL column.
type Decimal struct {
	field
	precision int
	scale     int
	value     decimal.Decimal
}

// NewDecimal builds a fixed-point decimal, DECIMAL(15,5) unless configured with WithPrecision or WithUnrestricted.
func NewDecimal(options ...Option) *Decimal {
	optns := newOptions(0, DefaultPrecision, DefaultScale, "0", options)
	ret := &Decimal{
		field: newField(KindDecimal, optns),
	}
	ret.precision, ret.scale = normalizePrecision(ret.log(), optns.precision, optns.scale)
	ret.ClearField()
	return ret
}

var _ Value = (*Decimal)(nil)

func (d *Decimal) Precision() int           { return d.precision }
func (d *Decimal) Scale() int               { return d.scale }
func (d *Decimal) IsUnrestricted() bool     { return d.precision == Unrestricted }
func (d *Decimal) Decimal() decimal.Decimal { return d.value }

// Float64 returns the nearest float64 to the payload.
func (d *Decimal) Float64() float64 {
	f, _ := d.value.Float64()
	return f
}

func (d *Decimal) Assign(v string) {
	if !d.canAssign(v) {
		return
	}
	d.set(parseDecimal(d.log(), v))
	d.assigned()
}

// AssignDecimal assigns a native decimal, edited to the precision and scale.
func (d *Decimal) AssignDecimal(v decimal.Decimal) {
	if !d.canAssign(v.String()) {
		return
	}
	d.set(v)
	d.assigned()
}

func (d *Decimal) AssignSystem(phase Phase, v string) bool {
	if !d.canAssignSystem(phase, v) {
		return false
	}
	d.set(parseDecimal(d.log(), v))
	d.assigned()
	return true
}

func (d *Decimal) ClearField() {
	d.set(parseDecimal(d.log(), d.defaultValue))
	d.cleared()
}

func (d *Decimal) set(v decimal.Decimal) {
	d.value = editDecimal(v, d.precision, d.scale)
	if !d.value.Equal(v) {
		level.Debug(d.log()).Log("msg", "value edited to fit the column", "value", v, "edited", d.value)
	}
}

// String returns the payload without trailing fractional zeros.
func (d *Decimal) String() string {
	return d.value.String()
}

// StringFixed returns the payload with exactly scale fractional digits, or as String if unrestricted.
func (d *Decimal) StringFixed() string {
	if d.IsUnrestricted() {
		return d.value.String()
	}
	return d.value.StringFixed(int32(d.scale))
}

func (d *Decimal) CreateSpec() (string, error) {
	return d.createSpec(realTypeSpec(d.kind, d.precision, d.scale))
}

func (d *Decimal) Equal(other Value) bool {
	o, ok := other.(*Decimal)
	if !ok || o == nil {
		return false
	}
	return o.value.Equal(d.value)
}

// editDecimal fits a value into the precision and scale. Integer digits beyond precision-scale are dropped from
// the most significant side, and fractional digits beyond scale are truncated. Nothing is rounded.
func editDecimal(v decimal.Decimal, precision, scale int) decimal.Decimal {
	if precision == Unrestricted {
		return v
	}
	switch exp := int64(v.Exponent()); {
	case exp >= int64(precision-scale):
		// a multiple of 10^(precision-scale)
		return decimal.Zero
	case exp < 0 && coefficientDigits(v)+exp <= -int64(scale):
		// every digit is below the scale
		return decimal.Zero
	}
	v = v.Truncate(int32(scale))
	// the remainder keeps the sign of v
	return v.Mod(decimal.New(1, int32(precision-scale)))
}

// normalizePrecision returns a valid precision and scale pair: both unrestricted, or both positive with the scale
// not exceeding the precision.
func normalizePrecision(logger log.Logger, precision, scale int) (int, int) {
	if precision < 0 || scale < 0 {
		if precision != Unrestricted || scale != Unrestricted {
			level.Warn(logger).Log("msg", "precision and scale must both be restricted or unrestricted; using unrestricted",
				"precision", precision, "scale", scale)
		}
		return Unrestricted, Unrestricted
	}
	if scale > precision {
		level.Warn(logger).Log("msg", "scale is larger than the precision; limiting to the precision",
			"precision", precision, "scale", scale)
		scale = precision
	}
	return precision, scale
}

func parseDecimal(logger log.Logger, v string) decimal.Decimal {
	ret, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil {
		level.Warn(logger).Log("msg", "unable to convert the value to a decimal; assigning 0", "value", v, "err", err)
		return decimal.Zero
	}
	return ret
}

func realTypeSpec(kind Kind, precision, scale int) string {
	if precision == Unrestricted {
		return kind.String()
	}
	return fmt.Sprintf("%s(%d,%d)", kind, precision, scale)
}
