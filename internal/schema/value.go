package schema

import (
	"math"
	"strings"
	"time"

	"github.com/spf13/cast"
	"golang.org/x/text/cases"
)

const dateLayout = "2006-01-02"

// Stringify coerces a field value or operand to its string form. Lists join
// with "," and dates without a clock component render as a bare date.
func Stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []string:
		return strings.Join(x, ",")
	case time.Time:
		if x.IsZero() {
			return ""
		}
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 && x.Nanosecond() == 0 {
			return x.Format(dateLayout)
		}
		return x.Format(time.RFC3339)
	default:
		s, err := cast.ToStringE(v)
		if err != nil {
			return ""
		}
		return s
	}
}

// IsEmpty treats nil, "" and an empty list as empty.
func IsEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case []string:
		return len(x) == 0
	case time.Time:
		return x.IsZero()
	default:
		return false
	}
}

// Float parses v as a number. Blank strings and booleans do not parse.
func Float(v any) (float64, bool) {
	switch x := v.(type) {
	case nil:
		return 0, false
	case string:
		if strings.TrimSpace(x) == "" {
			return 0, false
		}
		v = strings.TrimSpace(x)
	case bool:
		return 0, false
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// Time parses v as a date or timestamp.
func Time(v any) (time.Time, bool) {
	switch x := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return x, !x.IsZero()
	case string:
		if strings.TrimSpace(x) == "" {
			return time.Time{}, false
		}
		v = strings.TrimSpace(x)
	}
	t, err := cast.ToTimeE(v)
	if err != nil || t.IsZero() {
		return time.Time{}, false
	}
	return t, true
}

// Fold returns the case-folded form of s for case-insensitive matching.
func Fold(s string) string {
	return cases.Fold().String(s)
}
