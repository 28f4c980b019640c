package importer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samajseva/trust-console/modules/member/domain/aggregates/member"
)

func TestAnalyze(t *testing.T) {
	t.Parallel()

	existing := []member.Member{
		existingMember(member.Fields{Name: "Ramesh Patel", Email: "ramesh@x.com"}),
	}

	records := []RawRecord{
		{Row: 2, Fields: map[string]string{ColName: "Ramesh Patel", ColEmail: "RAMESH@X.COM"}},
		{Row: 3, Fields: map[string]string{ColName: "Fresh Face", ColEmail: "fresh@x.com"}},
		{Row: 4, Fields: map[string]string{ColEmail: "noname@x.com"}},
	}

	plan, err := Analyze(records, existing)
	require.NoError(t, err)

	require.Len(t, plan.Candidates(), 1)
	require.Equal(t, 2, plan.Candidates()[0].Source.Row)
	require.Equal(t, 100, plan.Candidates()[0].Score)

	require.Len(t, plan.Invalid(), 1)
	require.Equal(t, 4, plan.Invalid()[0].Row)

	require.Equal(t, UploadSummary{
		TotalRecords:     3,
		ValidRecords:     2,
		InvalidRecords:   1,
		DuplicateRecords: 1,
		RecordsToUpload:  1,
	}, plan.Summary())
}

func TestAnalyze_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := Analyze(nil, nil)
	require.ErrorIs(t, err, ErrEmptySpreadsheet)
}

func TestAnalyze_CollectsWarnings(t *testing.T) {
	t.Parallel()

	plan, err := Analyze([]RawRecord{
		{Row: 2, Fields: map[string]string{ColName: "John Doe", ColEmail: "john@x.com", ColDateOfBirth: "03/04/2020"}},
	}, nil)
	require.NoError(t, err)

	require.Len(t, plan.Warnings(), 1)
	require.Equal(t, 2, plan.Warnings()[0].Row)
}
