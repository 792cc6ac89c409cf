// Package shared holds the small building blocks every entity transform
// uses: badge tables, fallback chains, sparse patches and batch mapping.
package shared

import (
	"strings"
	"time"

	"marketplace-bff/internal/timestamp"
)

// BadgeRule labels a value when Applies reports true. Text, when set,
// computes the label from the value instead of Label.
type BadgeRule[T any] struct {
	Label   string
	Text    func(T) string
	Applies func(T) bool
}

// Badges evaluates rules in order and returns the labels that apply.
// The result is never nil.
func Badges[T any](v T, rules []BadgeRule[T]) []string {
	out := make([]string, 0, len(rules))
	for _, r := range rules {
		if !r.Applies(v) {
			continue
		}
		if r.Text != nil {
			out = append(out, r.Text(v))
			continue
		}
		out = append(out, r.Label)
	}
	return out
}

// Badge is a label with a UI variant (success, error, warning, info, default).
type Badge struct {
	Text    string `json:"text"`
	Variant string `json:"variant"`
}

// Fallback is one step of a priority chain.
type Fallback struct {
	When  func() bool
	Value func() string
}

// Resolve returns the value of the first step whose When holds, or def.
func Resolve(def string, chain ...Fallback) string {
	for _, f := range chain {
		if f.When() {
			return f.Value()
		}
	}
	return def
}

// Patch is a sparse update body: it holds exactly the keys that were set.
type Patch map[string]any

// Set copies *v under key when v is non-nil.
func Set[T any](p Patch, key string, v *T) {
	if v != nil {
		p[key] = *v
	}
}

// SetTime stores *v as an ISO string when v is non-nil.
func SetTime(p Patch, key string, v *timestamp.Time) {
	if v != nil {
		p[key] = timestamp.ISO(v.Time)
	}
}

// Map applies f to every element of in. Empty input yields an empty,
// non-nil slice.
func Map[T, U any](in []T, f func(T) U) []U {
	out := make([]U, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}

// OptString returns nil for blank strings so they are omitted on the wire.
func OptString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// Str dereferences an optional string.
func Str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// Present reports whether an optional string holds a non-blank value.
func Present(p *string) bool {
	return p != nil && strings.TrimSpace(*p) != ""
}

// Float dereferences an optional number.
func Float(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// Strings normalises a nil slice to an empty one.
func Strings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return append([]string(nil), in...)
}

// FirstString returns the first element of in, or "".
func FirstString(in []string) string {
	if len(in) == 0 {
		return ""
	}
	return in[0]
}

// ISO serialises a form date for a create request.
func ISO(t timestamp.Time) string {
	return timestamp.ISO(t.Time)
}

// OptISO serialises an optional form date, preserving absence.
func OptISO(t *timestamp.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := timestamp.ISO(t.Time)
	return &s
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Since reports whether t is within d before now.
func Since(t, now time.Time, d time.Duration) bool {
	return !t.IsZero() && now.Sub(t) <= d
}
