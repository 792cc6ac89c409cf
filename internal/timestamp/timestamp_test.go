package timestamp

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type fakeProviderTimestamp struct {
	t time.Time
}

func (f fakeProviderTimestamp) ToDate() time.Time { return f.t }

func TestParse_AllEncodingsAgree(t *testing.T) {
	want := time.Date(2024, 1, 15, 10, 0, 0, 250_000_000, time.UTC)

	tests := []struct {
		name  string
		input any
	}{
		{name: "native_time", input: want},
		{name: "native_time_pointer", input: &want},
		{name: "iso_string", input: "2024-01-15T10:00:00.250Z"},
		{name: "iso_string_offset", input: "2024-01-15T15:30:00.250+05:30"},
		{name: "to_date_object", input: fakeProviderTimestamp{t: want}},
		{name: "timestamppb", input: timestamppb.New(want)},
		{name: "underscore_seconds", input: map[string]any{"_seconds": float64(want.Unix()), "_nanoseconds": float64(250_000_000)}},
		{name: "plain_seconds", input: map[string]any{"seconds": want.Unix(), "nanoseconds": 250_000_000}},
		{name: "json_number_seconds", input: map[string]any{"seconds": json.Number("1705312800"), "nanoseconds": json.Number("250000000")}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.input)
			require.NoError(t, err)
			require.Equal(t, want.UnixMilli(), got.UnixMilli())
			require.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParse_SecondsWithoutNanoseconds(t *testing.T) {
	got, err := Parse(map[string]any{"_seconds": 1705312800})
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC), got)
}

func TestParse_DateOnlyString(t *testing.T) {
	got, err := Parse("2024-03-01")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{name: "nil", input: nil},
		{name: "garbage_string", input: "next tuesday"},
		{name: "empty_string", input: "  "},
		{name: "number", input: 1705312800},
		{name: "map_without_seconds", input: map[string]any{"millis": 1}},
		{name: "seconds_wrong_type", input: map[string]any{"seconds": "soon"}},
		{name: "nanos_wrong_type", input: map[string]any{"seconds": 1, "nanoseconds": true}},
		{name: "bool", input: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.input)
			require.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestParseOptional(t *testing.T) {
	got, err := ParseOptional(nil)
	require.NoError(t, err)
	require.Nil(t, got)

	var nilTime *time.Time
	got, err = ParseOptional(nilTime)
	require.NoError(t, err)
	require.Nil(t, got)

	got, err = ParseOptional("2024-01-15T10:00:00Z")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, 2024, got.Year())

	_, err = ParseOptional("not a date")
	require.ErrorIs(t, err, ErrMalformed)
}

func TestTime_UnmarshalJSON(t *testing.T) {
	type doc struct {
		CreatedAt Time  `json:"createdAt"`
		EndedAt   *Time `json:"endedAt"`
	}

	want := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	inputs := []string{
		`{"createdAt":"2024-01-15T10:00:00Z"}`,
		`{"createdAt":{"_seconds":1705312800,"_nanoseconds":0}}`,
		`{"createdAt":{"seconds":1705312800}}`,
		`{"createdAt":"2024-01-15T10:00:00Z","endedAt":null}`,
	}
	for _, in := range inputs {
		var d doc
		require.NoError(t, json.Unmarshal([]byte(in), &d), in)
		require.True(t, want.Equal(d.CreatedAt.Time), in)
		require.Nil(t, d.EndedAt, in)
	}

	var d doc
	err := json.Unmarshal([]byte(`{"createdAt":"yesterday"}`), &d)
	require.ErrorIs(t, err, ErrMalformed)

	err = json.Unmarshal([]byte(`{"createdAt":12}`), &d)
	require.ErrorIs(t, err, ErrMalformed)
}

func TestTime_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Of(time.Date(2024, 1, 15, 15, 30, 0, 0, time.FixedZone("IST", 19800))))
	require.NoError(t, err)
	require.Equal(t, `"2024-01-15T10:00:00.000Z"`, string(b))
}

func TestISO(t *testing.T) {
	require.Equal(t, "2024-01-15T10:00:00.123Z", ISO(time.Date(2024, 1, 15, 10, 0, 0, 123_456_789, time.UTC)))
}

func TestPtrHelpers(t *testing.T) {
	require.Nil(t, Ptr(nil))
	require.Nil(t, OfPtr(nil))

	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	wrapped := OfPtr(&now)
	require.NotNil(t, wrapped)
	require.Equal(t, now, *Ptr(wrapped))
}
