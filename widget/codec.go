package widget

import (
	"regexp"
	"time"
)

// Codec is a two-way conversion between the storable form of a value and the
// form a widget holds. Decode converts stored → widget-settable, Encode
// converts widget → storable. Both sides of Identity pass values through.
type Codec struct {
	Decode func(v any) any
	Encode func(v any) any
}

// Identity passes values through unchanged in both directions.
var Identity = Codec{
	Decode: func(v any) any { return v },
	Encode: func(v any) any { return v },
}

// DateLayout is the stored form of date values, e.g. "03.01.2004".
const DateLayout = "02.01.2006"

var datePattern = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)

// Date converts between DateLayout strings and time.Time widget values.
// Unparseable input passes through unchanged so a malformed stored value
// surfaces in the widget rather than vanishing.
var Date = Codec{
	Decode: func(v any) any {
		s, ok := v.(string)
		if !ok {
			return v
		}

		t, err := time.Parse(DateLayout, s)
		if err != nil {
			return v
		}

		return t
	},
	Encode: func(v any) any {
		t, ok := v.(time.Time)
		if !ok {
			return v
		}

		return t.Format(DateLayout)
	},
}

// IsDateString reports whether a stored value is in the recognized temporal
// string format and therefore needs the Date codec.
func IsDateString(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}

	if !datePattern.MatchString(s) {
		return false
	}

	_, err := time.Parse(DateLayout, s)

	return err == nil
}

// CodecFor selects the codec for a value observed at hook-build time.
func CodecFor(v any) Codec {
	if IsDateString(v) {
		return Date
	}

	return Identity
}
