package importer

import (
	"errors"

	"github.com/samajseva/trust-console/modules/member/domain/aggregates/member"
)

// ErrNothingToUpload blocks execution when every effective action is skip.
// It is a precondition failure, distinct from both success and row errors.
var ErrNothingToUpload = errors.New("nothing to upload: all records would be skipped")

// Plan holds the reviewed detection outcome and the per-row reconciliation
// choices. Action state is two-level: a global default plus explicit per-row
// overrides; the effective action for a row is the override when present,
// otherwise the default.
type Plan struct {
	candidates    []DuplicateCandidate
	creates       []creatableRow
	invalid       []RowIssue
	warnings      []RowIssue
	total         int
	defaultAction Action
	overrides     map[int]Action
}

type creatableRow struct {
	source RawRecord
	fields member.Fields
}

func NewPlan(candidates []DuplicateCandidate, creates []DuplicateCandidate, invalid []RowIssue, total int) *Plan {
	p := &Plan{
		candidates:    candidates,
		invalid:       invalid,
		total:         total,
		defaultAction: ActionSkip,
		overrides:     map[int]Action{},
	}
	for _, c := range creates {
		p.creates = append(p.creates, creatableRow{source: c.Source, fields: c.Fields})
	}
	return p
}

// SetDefaultAction applies a new action to every duplicate. Existing per-row
// overrides are cleared, matching the console's "apply to all" behavior.
func (p *Plan) SetDefaultAction(a Action) {
	p.defaultAction = a
	p.overrides = map[int]Action{}
}

func (p *Plan) SetAction(row int, a Action) {
	p.overrides[row] = a
}

func (p *Plan) EffectiveAction(row int) Action {
	if a, ok := p.overrides[row]; ok {
		return a
	}
	return p.defaultAction
}

func (p *Plan) Candidates() []DuplicateCandidate {
	return p.candidates
}

func (p *Plan) Invalid() []RowIssue {
	return p.invalid
}

func (p *Plan) Warnings() []RowIssue {
	return p.warnings
}

// Summary computes the aggregate counters once; RecordsToUpload counts creates
// plus duplicates whose effective action is not skip.
func (p *Plan) Summary() UploadSummary {
	s := UploadSummary{
		TotalRecords:     p.total,
		ValidRecords:     len(p.creates) + len(p.candidates),
		InvalidRecords:   len(p.invalid),
		DuplicateRecords: len(p.candidates),
		RecordsToUpload:  len(p.creates),
	}
	for _, c := range p.candidates {
		if p.EffectiveAction(c.Source.Row) != ActionSkip {
			s.RecordsToUpload++
		}
	}
	return s
}

// Operations emits the final ordered operation sequence. Skipped duplicates
// produce no operation; they are counted in the summary only. Returns
// ErrNothingToUpload when no create or update remains.
func (p *Plan) Operations() ([]BatchOperation, error) {
	ops := make([]BatchOperation, 0, len(p.creates)+len(p.candidates))

	for _, c := range p.creates {
		ops = append(ops, BatchOperation{
			Row:    c.source,
			Kind:   OperationCreate,
			Fields: c.fields,
		})
	}

	for _, c := range p.candidates {
		switch p.EffectiveAction(c.Source.Row) {
		case ActionSkip:
			continue
		case ActionUpdate:
			ops = append(ops, BatchOperation{
				Row:      c.Source,
				Kind:     OperationUpdate,
				TargetID: c.Matched.ID(),
				Fields:   c.Fields,
			})
		case ActionCreate:
			// Explicit reviewer override: same-looking but genuinely new.
			ops = append(ops, BatchOperation{
				Row:    c.Source,
				Kind:   OperationCreate,
				Fields: c.Fields,
			})
		}
	}

	if len(ops) == 0 {
		return nil, ErrNothingToUpload
	}
	return ops, nil
}
