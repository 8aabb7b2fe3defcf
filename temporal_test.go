package cba

import (
	"testing"
	"time"

	"gotest.tools/v3/assert"
)

func TestTemporalZero(t *testing.T) {
	tests := []struct {
		name     string
		value    *Temporal
		expected string
	}{
		{
			name:     "date",
			value:    NewDate(),
			expected: "0000-01-01",
		},
		{
			name:     "time",
			value:    NewTime(),
			expected: "00:00:00",
		},
		{
			name:     "datetime",
			value:    NewDateTime(),
			expected: "0000-01-01T00:00:00",
		},
		{
			name:     "timestamp",
			value:    NewTimestamp(),
			expected: "0000-01-01T00:00:00.000000Z",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Assert(t, test.value.IsZero())
			assert.Equal(t, test.expected, test.value.String())
			assert.Assert(t, test.value.IsEmpty())
			assert.Assert(t, test.value.Time().Equal(test.value.Zero()))
		})
	}
}

func TestTemporalZeroIsolated(t *testing.T) {
	d := NewDate()
	zero := d.Zero()
	zero = zero.AddDate(2018, 2, 22)
	assert.Equal(t, "2018-03-23", zero.Format(time.DateOnly))

	assert.Assert(t, d.IsZero())
	assert.Assert(t, NewDate().IsZero())
	assert.Equal(t, 0, NewTimestamp().Zero().Year())
}

func TestTemporalAssign(t *testing.T) {
	tests := []struct {
		name     string
		value    *Temporal
		assign   string
		expected string
	}{
		{
			name:     "date",
			value:    NewDate(),
			assign:   "2018-03-23",
			expected: "2018-03-23",
		},
		{
			name:     "time",
			value:    NewTime(),
			assign:   "13:45:10",
			expected: "13:45:10",
		},
		{
			name:     "time without seconds",
			value:    NewTime(),
			assign:   "13:45",
			expected: "13:45:00",
		},
		{
			name:     "datetime",
			value:    NewDateTime(),
			assign:   "2018-03-23T13:45:10",
			expected: "2018-03-23T13:45:10",
		},
		{
			name:     "datetime with space",
			value:    NewDateTime(),
			assign:   "2018-03-23 13:45:10.5",
			expected: "2018-03-23T13:45:10.5",
		},
		{
			name:     "datetime from date",
			value:    NewDateTime(),
			assign:   "2018-03-23",
			expected: "2018-03-23T00:00:00",
		},
		{
			name:     "timestamp",
			value:    NewTimestamp(),
			assign:   "2018-03-23T13:45:10Z",
			expected: "2018-03-23T13:45:10.000000Z",
		},
		{
			name:     "timestamp converted to UTC",
			value:    NewTimestamp(),
			assign:   "2018-03-23T13:45:10.123456789-03:00",
			expected: "2018-03-23T16:45:10.123456Z",
		},
		{
			name:     "timestamp without zone",
			value:    NewTimestamp(),
			assign:   "2018-03-23 13:45:10",
			expected: "2018-03-23T13:45:10.000000Z",
		},
		{
			name:     "garbage",
			value:    NewDate(),
			assign:   "yesterday",
			expected: "0000-01-01",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			test.value.Assign(test.assign)
			assert.Equal(t, test.expected, test.value.String())
			assert.Assert(t, test.value.IsDirty())
		})
	}
}

func TestTemporalAssignTime(t *testing.T) {
	moment := time.Date(2018, time.March, 23, 13, 45, 10, 500, time.FixedZone("test", 3600))

	d := NewDate()
	d.AssignTime(moment)
	assert.Equal(t, "2018-03-23", d.String())
	assert.Equal(t, 0, d.Time().Hour())

	tm := NewTime()
	tm.AssignTime(moment)
	assert.Equal(t, "13:45:10.0000005", tm.String())

	ts := NewTimestamp()
	ts.AssignTime(moment)
	assert.Equal(t, "2018-03-23T12:45:10.000000Z", ts.String())
	assert.Assert(t, !ts.IsZero())
}

func TestTemporalSystemStamp(t *testing.T) {
	created := NewTimestamp(WithField("elements", "element_create_date_time"), WithUpdateStyle(InsertOnly))
	moment := time.Date(2018, time.March, 23, 0, 0, 0, 0, time.UTC)

	created.AssignTime(moment)
	assert.Assert(t, created.IsZero())

	assert.Assert(t, !created.AssignSystemTime(PhaseUpdate, moment))
	assert.Assert(t, created.IsZero())

	assert.Assert(t, created.AssignSystemTime(PhaseInsert, moment))
	assert.Assert(t, created.Time().Equal(moment))
	assert.Assert(t, created.IsDirty())
}

func TestTemporalCreateSpec(t *testing.T) {
	spec, err := NewTimestamp(WithField("elements", "element_create_date_time"), WithNotNull()).CreateSpec()
	assert.NilError(t, err)
	assert.Equal(t, "element_create_date_time TIMESTAMP NOT NULL", spec)

	spec, err = NewDate(WithField("elements", "element_date")).CreateSpec()
	assert.NilError(t, err)
	assert.Equal(t, "element_date DATE", spec)
}

func TestTemporalEqual(t *testing.T) {
	d := NewDate()
	dt := NewDateTime()
	assert.Assert(t, !d.Equal(dt))

	d2 := NewDate(WithField("t", "d"))
	d.Assign("2018-03-23")
	d2.Assign("2018-03-23")
	assert.Assert(t, d.Equal(d2))
}
