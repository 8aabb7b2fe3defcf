package cba

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestWidthTrim(t *testing.T) {
	tests := []struct {
		name     string
		width    Width
		value    int64
		expected int64
	}{
		{
			name:     "fits",
			width:    Width8,
			value:    100,
			expected: 100,
		},
		{
			name:     "negative fits",
			width:    Width8,
			value:    -100,
			expected: -100,
		},
		{
			name:     "drops high bits",
			width:    Width8,
			value:    1234,
			expected: 82,
		},
		{
			name:     "sign bit alone is the minimum",
			width:    Width8,
			value:    128,
			expected: -128,
		},
		{
			name:     "minimum",
			width:    Width8,
			value:    -128,
			expected: -128,
		},
		{
			name:     "maximum",
			width:    Width8,
			value:    127,
			expected: 127,
		},
		{
			name:     "all bits set",
			width:    Width8,
			value:    255,
			expected: 127,
		},
		{
			name:     "negative drops high bits",
			width:    Width8,
			value:    -1234,
			expected: -82,
		},
		{
			name:     "wraps the full range",
			width:    Width8,
			value:    256 + 5,
			expected: 5,
		},
		{
			name:     "16 bits",
			width:    Width16,
			value:    70000,
			expected: 4464,
		},
		{
			name:     "16 bits minimum",
			width:    Width16,
			value:    32768,
			expected: -32768,
		},
		{
			name:     "24 bits minimum",
			width:    Width24,
			value:    0x800000,
			expected: -8388608,
		},
		{
			name:     "24 bits maximum",
			width:    Width24,
			value:    8388607,
			expected: 8388607,
		},
		{
			name:     "32 bits",
			width:    Width32,
			value:    1<<32 + 7,
			expected: 7,
		},
		{
			name:     "32 bits minimum",
			width:    Width32,
			value:    1 << 31,
			expected: -2147483648,
		},
		{
			name:     "64 bits minimum",
			width:    Width64,
			value:    -9223372036854775808,
			expected: -9223372036854775808,
		},
		{
			name:     "64 bits maximum",
			width:    Width64,
			value:    9223372036854775807,
			expected: 9223372036854775807,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.width.Trim(test.value))
		})
	}
}

func TestWidthRange(t *testing.T) {
	assert.Equal(t, int64(-128), Width8.Min())
	assert.Equal(t, int64(127), Width8.Max())
	assert.Equal(t, int64(-8388608), Width24.Min())
	assert.Equal(t, int64(8388607), Width24.Max())
	assert.Equal(t, int64(-9223372036854775808), Width64.Min())
	assert.Equal(t, int64(9223372036854775807), Width64.Max())
}

func TestIntegerAssign(t *testing.T) {
	tests := []struct {
		name     string
		value    *Integer
		assign   string
		expected int64
	}{
		{
			name:     "tinyint",
			value:    NewTinyInt(),
			assign:   "1234",
			expected: 82,
		},
		{
			name:     "tinyint minimum",
			value:    NewTinyInt(),
			assign:   "128",
			expected: -128,
		},
		{
			name:     "smallint",
			value:    NewSmallInt(),
			assign:   "-5",
			expected: -5,
		},
		{
			name:     "mediumint minimum",
			value:    NewMediumInt(),
			assign:   "8388608",
			expected: -8388608,
		},
		{
			name:     "int spaces",
			value:    NewInt(),
			assign:   "  42 ",
			expected: 42,
		},
		{
			name:     "int fraction is truncated",
			value:    NewInt(),
			assign:   "42.9",
			expected: 42,
		},
		{
			name:     "bigint over 64 bits keeps the low bits",
			value:    NewBigInt(),
			assign:   "18446744073709551621",
			expected: 5,
		},
		{
			name:     "exponent",
			value:    NewInt(),
			assign:   "42e1",
			expected: 420,
		},
		{
			name:     "negative exponent",
			value:    NewInt(),
			assign:   "4321e-2",
			expected: 43,
		},
		{
			name:     "exponent beyond 64 bits",
			value:    NewBigInt(),
			assign:   "1e2000000000",
			expected: 0,
		},
		{
			name:     "negative exponent beyond the digits",
			value:    NewBigInt(),
			assign:   "-1e-2000000000",
			expected: 0,
		},
		{
			name:     "garbage",
			value:    NewInt(),
			assign:   "forty two",
			expected: 0,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			test.value.Assign(test.assign)
			assert.Equal(t, test.expected, test.value.Int64())
			assert.Assert(t, test.value.IsDirty())
			assert.Assert(t, !test.value.IsEmpty())
			assert.Assert(t, test.value.Int64() >= test.value.MinValue())
			assert.Assert(t, test.value.Int64() <= test.value.MaxValue())
		})
	}
}

func TestIntegerAssignInt64(t *testing.T) {
	v := NewSmallInt()
	v.AssignInt64(1<<16 + 300)
	assert.Equal(t, int64(300), v.Int64())
	assert.Equal(t, "300", v.String())
}

func TestIntegerZeroFill(t *testing.T) {
	v := NewTinyInt(WithSize(3), WithZeroFill())
	v.Assign("7")
	assert.Equal(t, "007", v.String())

	v.Assign("-7")
	assert.Equal(t, "-007", v.String())

	v.Assign("127")
	assert.Equal(t, "127", v.String())

	v = NewInt(WithSize(2), WithZeroFill())
	v.Assign("12345")
	assert.Equal(t, "12345", v.String())
}

func TestIntegerDisplaySize(t *testing.T) {
	assert.Equal(t, 4, NewTinyInt().DisplaySize())
	assert.Equal(t, 6, NewSmallInt().DisplaySize())
	assert.Equal(t, 9, NewMediumInt().DisplaySize())
	assert.Equal(t, 11, NewInt().DisplaySize())
	assert.Equal(t, 20, NewBigInt().DisplaySize())
	assert.Equal(t, 10, NewInt(WithSize(10)).DisplaySize())
	assert.Equal(t, 11, NewInt(WithSize(-1)).DisplaySize())
}

func TestIntegerDefault(t *testing.T) {
	v := NewTinyInt(WithDefault("300"))
	assert.Equal(t, int64(44), v.Int64())
	assert.Assert(t, !v.IsDirty())

	v.Assign("1")
	v.ClearField()
	assert.Equal(t, int64(44), v.Int64())
	assert.Equal(t, "300", v.DefaultValue())
}

func TestIntegerCreateSpec(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected string
	}{
		{
			name:     "int",
			value:    NewInt(WithField("t", "id"), WithSize(10)),
			expected: "id INT(10)",
		},
		{
			name:     "tinyint default size",
			value:    NewTinyInt(WithField("t", "flag")),
			expected: "flag TINYINT(4)",
		},
		{
			name:     "zero fill",
			value:    NewTinyInt(WithField("t", "decimals"), WithSize(3), WithZeroFill()),
			expected: "decimals TINYINT(3) ZEROFILL",
		},
		{
			name:     "not null",
			value:    NewBigInt(WithField("t", "total"), WithNotNull()),
			expected: "total BIGINT(20) NOT NULL",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			spec, err := test.value.CreateSpec()
			assert.NilError(t, err)
			assert.Equal(t, test.expected, spec)
		})
	}
}

func TestIntegerEqual(t *testing.T) {
	a := NewTinyInt(WithField("t", "a"))
	b := NewInt()
	a.Assign("1234")
	b.Assign("82")
	assert.Assert(t, a.Equal(b))

	b.Assign("83")
	assert.Assert(t, !a.Equal(b))
	assert.Assert(t, !a.Equal(NewDecimal()))
}
