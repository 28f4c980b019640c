package importer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samajseva/trust-console/modules/member/domain/aggregates/member"
)

func TestSuggest(t *testing.T) {
	t.Parallel()

	existing := []member.Member{
		existingMember(member.Fields{Name: "Ramesh Patel"}),
		existingMember(member.Fields{Name: "Anita Shah"}),
		existingMember(member.Fields{Name: "Ramakant Joshi"}),
	}

	got := Suggest("ram", existing, 10)
	require.NotEmpty(t, got)
	for _, m := range got {
		require.NotEqual(t, "Anita Shah", m.Name())
	}

	// Closest match ranks first.
	got = Suggest("ramesh", existing, 10)
	require.NotEmpty(t, got)
	require.Equal(t, "Ramesh Patel", got[0].Name())
}

func TestSuggest_LimitAndEmptyQuery(t *testing.T) {
	t.Parallel()

	existing := []member.Member{
		existingMember(member.Fields{Name: "Ramesh Patel"}),
		existingMember(member.Fields{Name: "Ramakant Joshi"}),
	}

	require.Nil(t, Suggest("", existing, 10))
	require.Len(t, Suggest("ram", existing, 1), 1)
}
