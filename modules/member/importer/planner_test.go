package importer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samajseva/trust-console/modules/member/domain/aggregates/member"
)

func candidate(rowNum int, f member.Fields, matched member.Member) DuplicateCandidate {
	return DuplicateCandidate{
		Source:  RawRecord{Row: rowNum},
		Fields:  f,
		Matched: matched,
		Score:   90,
	}
}

func newTestPlan(t *testing.T) (*Plan, member.Member) {
	t.Helper()

	matched := existingMember(member.Fields{Name: "Ramesh Patel", Email: "ramesh@x.com"})
	candidates := []DuplicateCandidate{
		candidate(2, member.Fields{Name: "Ramesh Patel", Email: "ramesh@x.com"}, matched),
		candidate(3, member.Fields{Name: "Anita Shah", Email: "anita@x.com"}, matched),
	}
	creates := []DuplicateCandidate{
		{Source: RawRecord{Row: 4}, Fields: member.Fields{Name: "Fresh Face", Email: "fresh@x.com"}},
	}
	invalid := []RowIssue{{Row: 5, Errors: []string{"Name is required"}}}

	return NewPlan(candidates, creates, invalid, 4), matched
}

func TestPlan_DefaultActionIsSkip(t *testing.T) {
	t.Parallel()

	p, _ := newTestPlan(t)

	require.Equal(t, ActionSkip, p.EffectiveAction(2))
	require.Equal(t, ActionSkip, p.EffectiveAction(3))

	ops, err := p.Operations()
	require.NoError(t, err)
	require.Len(t, ops, 1)
	require.Equal(t, OperationCreate, ops[0].Kind)
	require.Equal(t, "Fresh Face", ops[0].Fields.Name)
}

func TestPlan_RowOverrideBeatsDefault(t *testing.T) {
	t.Parallel()

	p, matched := newTestPlan(t)
	p.SetAction(2, ActionUpdate)

	require.Equal(t, ActionUpdate, p.EffectiveAction(2))
	require.Equal(t, ActionSkip, p.EffectiveAction(3))

	ops, err := p.Operations()
	require.NoError(t, err)
	require.Len(t, ops, 2)
	require.Equal(t, OperationUpdate, ops[1].Kind)
	require.Equal(t, matched.ID(), ops[1].TargetID)
}

func TestPlan_SetDefaultActionClearsOverrides(t *testing.T) {
	t.Parallel()

	p, _ := newTestPlan(t)
	p.SetAction(2, ActionCreate)
	p.SetDefaultAction(ActionUpdate)

	// The override on row 2 is gone; both rows follow the new default.
	require.Equal(t, ActionUpdate, p.EffectiveAction(2))
	require.Equal(t, ActionUpdate, p.EffectiveAction(3))
}

func TestPlan_CreateOverrideOnDuplicate(t *testing.T) {
	t.Parallel()

	p, _ := newTestPlan(t)
	p.SetAction(3, ActionCreate)

	ops, err := p.Operations()
	require.NoError(t, err)
	require.Len(t, ops, 2)
	require.Equal(t, OperationCreate, ops[1].Kind)
	require.Equal(t, "Anita Shah", ops[1].Fields.Name)
	require.True(t, ops[1].TargetID == [16]byte{})
}

func TestPlan_NothingToUpload(t *testing.T) {
	t.Parallel()

	matched := existingMember(member.Fields{Name: "Ramesh Patel"})
	p := NewPlan(
		[]DuplicateCandidate{candidate(2, member.Fields{Name: "Ramesh Patel"}, matched)},
		nil, nil, 1,
	)

	ops, err := p.Operations()
	require.ErrorIs(t, err, ErrNothingToUpload)
	require.Nil(t, ops)
}

func TestPlan_Summary(t *testing.T) {
	t.Parallel()

	p, _ := newTestPlan(t)

	s := p.Summary()
	require.Equal(t, UploadSummary{
		TotalRecords:     4,
		ValidRecords:     3,
		InvalidRecords:   1,
		DuplicateRecords: 2,
		RecordsToUpload:  1,
	}, s)

	p.SetAction(2, ActionUpdate)
	require.Equal(t, 2, p.Summary().RecordsToUpload)

	p.SetDefaultAction(ActionUpdate)
	require.Equal(t, 3, p.Summary().RecordsToUpload)
}
