package importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseFlexibleDate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		in        any
		want      string
		valid     bool
		ambiguous bool
	}{
		{name: "iso", in: "2020-04-03", want: "2020-04-03", valid: true},
		{name: "serial number", in: 45000, want: "2023-03-16", valid: true},
		{name: "serial string", in: "45000", want: "2023-03-16", valid: true},
		{name: "serial one is epoch day", in: 1, want: "1900-01-01", valid: true},
		{name: "month first", in: "12/25/2020", want: "2020-12-25", valid: true},
		{name: "day first fallback", in: "25/12/2020", want: "2020-12-25", valid: true},
		{name: "year first", in: "2020/12/25", want: "2020-12-25", valid: true},
		{name: "dotted", in: "25.12.2020", want: "2020-12-25", valid: true},
		{name: "ambiguous picks month first", in: "03/04/2020", want: "2020-03-04", valid: true, ambiguous: true},
		{name: "same day and month not ambiguous", in: "04/04/2020", want: "2020-04-04", valid: true},
		{name: "time value", in: time.Date(2021, 6, 1, 15, 4, 5, 0, time.UTC), want: "2021-06-01", valid: true},
		{name: "garbage", in: "not a date", valid: false},
		{name: "two parts", in: "12/2020", valid: false},
		{name: "month 13 both orders invalid", in: "13/13/2020", valid: false},
		{name: "empty", in: "", valid: false},
		{name: "nil", in: nil, valid: false},
		{name: "zero serial", in: 0, valid: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := ParseFlexibleDate(tc.in)
			require.Equal(t, tc.valid, got.Valid)
			if tc.valid {
				require.Equal(t, tc.want, FormatDate(got.Value))
				require.Equal(t, tc.ambiguous, got.Ambiguous)
			}
		})
	}
}

// Formatting a parsed date back to yyyy-MM-dd and re-parsing must yield the
// same calendar day.
func TestParseFlexibleDate_RoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []any{"2020-04-03", "12/25/2020", "25.12.2020", 45000, "03/04/2020"}
	for _, in := range inputs {
		first := ParseFlexibleDate(in)
		require.True(t, first.Valid, "input %v", in)

		second := ParseFlexibleDate(FormatDate(first.Value))
		require.True(t, second.Valid)
		require.True(t, first.Value.Equal(second.Value), "input %v: %s != %s", in, first.Value, second.Value)
	}
}
