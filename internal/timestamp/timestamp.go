// Package timestamp is the only place that knows how backend documents encode
// instants. Every other package receives already-parsed time.Time values.
package timestamp

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// ErrMalformed is returned when a timestamp value matches none of the
// accepted encodings.
var ErrMalformed = errors.New("malformed timestamp")

// isoLayout is the layout of every timestamp written back to the backend.
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

var stringLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

type dateConverter interface {
	ToDate() time.Time
}

// asTimer matches *timestamppb.Timestamp and similar provider types.
type asTimer interface {
	AsTime() time.Time
}

// Parse normalises v into a UTC time. Accepted shapes, checked in order:
// time.Time, an ISO-8601 string, a value with ToDate(), a value with
// AsTime(), a map with "_seconds"/"_nanoseconds", a map with
// "seconds"/"nanoseconds".
func Parse(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t.UTC(), nil
	case *time.Time:
		if t != nil {
			return t.UTC(), nil
		}
	case Time:
		return t.Time.UTC(), nil
	case string:
		return parseString(t)
	case dateConverter:
		return t.ToDate().UTC(), nil
	case asTimer:
		return t.AsTime().UTC(), nil
	case map[string]any:
		if secs, ok := t["_seconds"]; ok {
			return fromSeconds(secs, t["_nanoseconds"])
		}
		if secs, ok := t["seconds"]; ok {
			return fromSeconds(secs, t["nanoseconds"])
		}
	}
	return time.Time{}, fmt.Errorf("%w: unsupported value of type %T", ErrMalformed, v)
}

// ParseOptional is Parse for optional fields: nil yields nil without error.
func ParseOptional(v any) (*time.Time, error) {
	if v == nil {
		return nil, nil
	}
	if p, ok := v.(*time.Time); ok && p == nil {
		return nil, nil
	}
	t, err := Parse(v)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ISO renders t as an RFC 3339 UTC string with millisecond precision.
func ISO(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

func parseString(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty string", ErrMalformed)
	}
	for _, layout := range stringLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q is not ISO-8601", ErrMalformed, s)
}

func fromSeconds(secs, nanos any) (time.Time, error) {
	s, ok := toInt64(secs)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: seconds field is %T", ErrMalformed, secs)
	}
	var n int64
	if nanos != nil {
		if n, ok = toInt64(nanos); !ok {
			return time.Time{}, fmt.Errorf("%w: nanoseconds field is %T", ErrMalformed, nanos)
		}
	}
	return time.Unix(s, n).UTC(), nil
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		return int64(n), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return int64(f), true
	}
	return 0, false
}

// Time is a time.Time that decodes from any accepted backend encoding.
type Time struct {
	time.Time
}

// Of wraps t.
func Of(t time.Time) Time {
	return Time{Time: t.UTC()}
}

// OfPtr wraps t, preserving nil.
func OfPtr(t *time.Time) *Time {
	if t == nil {
		return nil
	}
	v := Of(*t)
	return &v
}

// Ptr returns the wrapped time of an optional field, preserving nil.
func Ptr(t *Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.Time
	return &v
}

// UnmarshalJSON decodes the raw JSON value and hands it to Parse.
// A JSON null leaves t untouched.
func (t *Time) UnmarshalJSON(b []byte) error {
	if string(bytes.TrimSpace(b)) == "null" {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// MarshalJSON writes the ISO form.
func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(ISO(t.Time))
}
