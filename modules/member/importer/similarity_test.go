package importer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNameSimilarity(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "exact", a: "John Doe", b: "john doe", want: 1.0},
		{name: "exact after trim", a: "  John Doe ", b: "John Doe", want: 1.0},
		{name: "containment", a: "John Doe", b: "John", want: 0.9},
		{name: "token overlap", a: "John Doe", b: "Doe Priya", want: 0.5},
		{name: "partial token overlap", a: "John Michael Doe", b: "Doe Priya", want: 1.0 / 3.0},
		{name: "token containment", a: "Johnathan Doe", b: "John Doe", want: 1.0},
		{name: "no overlap", a: "John Doe", b: "Priya Shah", want: 0},
		{name: "empty", a: "", b: "John", want: 0},
		{name: "only initials", a: "J D", b: "K P", want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.InDelta(t, tc.want, NameSimilarity(tc.a, tc.b), 0.0001)
		})
	}
}

func TestNameSimilarity_Symmetric(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"John Doe", "Jon Doe"},
		{"Ramesh Kumar Patel", "Ramesh Patel"},
		{"Anita", "Anita Shah"},
	}
	for _, p := range pairs {
		require.InDelta(t, NameSimilarity(p[0], p[1]), NameSimilarity(p[1], p[0]), 0.0001, "%q vs %q", p[0], p[1])
	}
}
