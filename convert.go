package cba

import (
	"strconv"
)

// AssignFrom assigns the payload of src to dst, applying the constraints of dst. Numeric payloads are converted
// through their numeric text, so a boolean source assigns 0 or 1 to a number. Between temporal values the instant
// is assigned directly and reduced to the components of dst: a TIME source gives a DATE the zero date.
func AssignFrom(dst, src Value) {
	if d, ok := dst.(*Temporal); ok {
		if s, ok := src.(*Temporal); ok {
			d.AssignTime(s.Time())
			return
		}
	}
	dst.Assign(payloadText(src))
}

// payloadText returns the text of the payload of v, without zero fill or boolean keywords.
func payloadText(v Value) string {
	switch s := v.(type) {
	case *Boolean:
		return strconv.FormatInt(s.value, 10)
	case *Integer:
		return strconv.FormatInt(s.value, 10)
	case *Decimal:
		return s.value.String()
	case *Float:
		return strconv.FormatFloat(s.value, 'f', -1, s.bitSize)
	default:
		return v.String()
	}
}
