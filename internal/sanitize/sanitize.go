// Package sanitize converts loosely-typed records, as decoded from JSON
// transports or provider payloads, into strictly-typed model records.
//
// All leniency lives here: every coercion is total, substituting a zero
// value for anything missing, malformed, or non-finite. Aggregation code
// downstream can assume fully-typed, fully-defaulted inputs.
package sanitize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Number coerces an arbitrary value to a finite float64.
// Strings are parsed after stripping currency symbols, commas and
// whitespace. Anything unparseable, NaN, or infinite becomes 0.
func Number(v any) float64 {
	switch n := v.(type) {
	case float64:
		return finite(n)
	case float32:
		return finite(float64(n))
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return finite(f)
	case string:
		s := strings.TrimSpace(n)
		s = strings.NewReplacer("$", "", ",", "", "%", "").Replace(s)
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return finite(f)
	case bool:
		if n {
			return 1
		}
		return 0
	default:
		return 0
	}
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// parseable reports whether a string holds a finite number once currency
// punctuation is stripped.
func parseable(s string) bool {
	s = strings.NewReplacer("$", "", ",", "", "%", "").Replace(strings.TrimSpace(s))
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && !math.IsNaN(f) && !math.IsInf(f, 0)
}

// String coerces a value to a trimmed string; non-strings become "".
func String(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// Bool coerces a value to a bool. Recognizes the string forms "true",
// "yes" and "1"; everything else not a true bool is false.
func Bool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "yes", "1":
			return true
		}
	case float64:
		return b != 0
	}
	return false
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"01/02/2006",
}

// Date coerces a value to a calendar date, truncating any time component.
// Unparseable values yield the zero time so malformed records sort first
// rather than failing.
func Date(v any) time.Time {
	switch d := v.(type) {
	case time.Time:
		return truncate(d)
	case string:
		s := strings.TrimSpace(d)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return truncate(t)
			}
		}
	case float64:
		// Epoch seconds, the form SimpleFIN uses on the wire.
		if d > 0 {
			return truncate(time.Unix(int64(d), 0).UTC())
		}
	}
	return time.Time{}
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
