package razorpay

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// Layouts accepted for string date parameters, tried in order. Bare dates
// are interpreted as midnight UTC.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// normalizeDate converts a date-like parameter into the epoch-seconds form
// the API expects. Numeric values and numeric strings pass through
// unchanged; time.Time values and parseable date strings are converted to
// Unix seconds. Strings that parse as neither are passed through for the
// server to reject.
func normalizeDate(v any) any {
	switch d := v.(type) {
	case nil:
		return nil
	case time.Time:
		return d.Unix()
	case string:
		if _, err := strconv.ParseFloat(d, 64); err == nil {
			return d
		}
		for _, layout := range dateLayouts {
			if t, err := time.ParseInLocation(layout, d, time.UTC); err == nil {
				return t.Unix()
			}
		}
		return d
	default:
		return v
	}
}

// normalizeBoolean encodes a boolean-like flag as 1 or 0, since the API
// does not accept boolean literals in query strings. nil stays nil so the
// field is omitted from the wire payload.
func normalizeBoolean(v any) any {
	switch b := v.(type) {
	case nil:
		return nil
	case bool:
		if b {
			return 1
		}
		return 0
	case *bool:
		if b == nil {
			return nil
		}
		return normalizeBoolean(*b)
	case string:
		if b == "" {
			return 0
		}
		return 1
	default:
		rv := reflect.ValueOf(v)
		if rv.Kind() >= reflect.Int && rv.Kind() <= reflect.Float64 && rv.IsZero() {
			return 0
		}
		return 1
	}
}

// normalizeNotes flattens a notes mapping into the indexed field names the
// API expects: notes[<key>] = <value>. Anything that is not a map yields
// an empty result.
func normalizeNotes(notes any) map[string]any {
	normalized := map[string]any{}
	if !isNonNullObject(notes) {
		return normalized
	}
	rv := reflect.ValueOf(notes)
	for _, k := range rv.MapKeys() {
		normalized[fmt.Sprintf("notes[%v]", k.Interface())] = rv.MapIndex(k).Interface()
	}
	return normalized
}

// isNonNullObject reports whether v is a non-nil mapping. Slices and
// scalars are never flattened into indexed fields.
func isNonNullObject(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Map && !rv.IsNil()
}
