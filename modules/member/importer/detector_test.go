package importer

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/samajseva/trust-console/modules/member/domain/aggregates/member"
)

func existingMember(f member.Fields) member.Member {
	return member.Hydrate(uuid.New(), f, member.StatusActive, time.Time{}, time.Time{})
}

func TestDetectDuplicate_ExactEmailWinsRegardlessOfOtherFields(t *testing.T) {
	t.Parallel()

	existing := []member.Member{existingMember(member.Fields{
		Name:  "Someone Entirely Different",
		Email: "john@x.com",
	})}

	got := DetectDuplicate(member.Fields{Name: "John Doe", Email: "JOHN@X.COM", Mobile: "9876543210"}, existing)

	require.True(t, got.IsDuplicate)
	require.Equal(t, 100, got.Score)
	require.Equal(t, ConfidenceHigh, got.Confidence)
	require.Equal(t, []string{"Exact email match"}, got.Reasons)
}

func TestDetectDuplicate_ExactMobile(t *testing.T) {
	t.Parallel()

	existing := []member.Member{existingMember(member.Fields{
		Name:   "John Doe",
		Mobile: "9876543210",
	})}

	// A country prefix changes the digit string, so the exact tier must not fire.
	got := DetectDuplicate(member.Fields{Name: "Jon Doe", Mobile: "+91 98765 43210"}, existing)
	require.False(t, got.IsDuplicate)

	got = DetectDuplicate(member.Fields{Name: "Jon Doe", Mobile: "98765-43210"}, existing)
	require.True(t, got.IsDuplicate)
	require.Equal(t, 95, got.Score)
	require.Equal(t, ConfidenceHigh, got.Confidence)
	require.Equal(t, []string{"Exact mobile number match"}, got.Reasons)
}

func TestDetectDuplicate_WeightedScan(t *testing.T) {
	t.Parallel()

	dob := time.Date(1985, 5, 17, 0, 0, 0, 0, time.UTC)
	existing := []member.Member{
		existingMember(member.Fields{
			Name:        "Ramesh Patel",
			Email:       "ramesh@old-domain.com",
			DateOfBirth: &dob,
			Postal:      member.Address{City: "Ahmedabad"},
		}),
		existingMember(member.Fields{Name: "Unrelated Person", Email: "u@u.com"}),
	}

	got := DetectDuplicate(member.Fields{
		Name:        "Ramesh Patel",
		Email:       "ramesh@new-domain.com",
		DateOfBirth: &dob,
		Postal:      member.Address{City: "ahmedabad"},
	}, existing)

	// name 40 + local part 20 + city 10 + dob 20 = 90
	require.True(t, got.IsDuplicate)
	require.Equal(t, 90, got.Score)
	require.Equal(t, ConfidenceHigh, got.Confidence)
	require.Equal(t, existing[0].ID(), got.Matched.ID())
	require.Contains(t, got.Reasons, "Name similarity 100%")
	require.Contains(t, got.Reasons, "Same email username")
	require.Contains(t, got.Reasons, "Same city")
	require.Contains(t, got.Reasons, "Same date of birth")
}

func TestDetectDuplicate_MediumConfidence(t *testing.T) {
	t.Parallel()

	existing := []member.Member{existingMember(member.Fields{
		Name:  "Ramesh Patel",
		Email: "ramesh@old.com",
	})}

	got := DetectDuplicate(member.Fields{Name: "Ramesh Patel", Email: "other@new.com"}, existing)

	// name only: 40 < 50, not a duplicate
	require.False(t, got.IsDuplicate)
	require.Equal(t, 40, got.Score)
	require.Equal(t, ConfidenceLow, got.Confidence)

	got = DetectDuplicate(member.Fields{Name: "Ramesh Patel", Email: "ramesh@new.com"}, existing)

	// name 40 + local part 20 = 60
	require.True(t, got.IsDuplicate)
	require.Equal(t, 60, got.Score)
	require.Equal(t, ConfidenceMedium, got.Confidence)
}

func TestDetectDuplicate_NoMatch(t *testing.T) {
	t.Parallel()

	existing := []member.Member{existingMember(member.Fields{Name: "John Doe", Email: "john@x.com"})}

	got := DetectDuplicate(member.Fields{Name: "Completely Different", Email: "new@new.com"}, existing)

	require.False(t, got.IsDuplicate)
	require.True(t, got.Matched.IsZero())
	require.Equal(t, ConfidenceLow, got.Confidence)
}

func TestDetectDuplicate_PicksBestOfSeveral(t *testing.T) {
	t.Parallel()

	dob := time.Date(1990, 1, 2, 0, 0, 0, 0, time.UTC)
	weak := existingMember(member.Fields{Name: "Anita Shah"})
	strong := existingMember(member.Fields{Name: "Anita Shah", DateOfBirth: &dob})

	got := DetectDuplicate(member.Fields{Name: "Anita Shah", DateOfBirth: &dob}, []member.Member{weak, strong})

	require.True(t, got.IsDuplicate)
	require.Equal(t, strong.ID(), got.Matched.ID())
	require.Equal(t, 60, got.Score)
}
