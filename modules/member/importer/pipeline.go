package importer

import (
	"errors"

	"github.com/samajseva/trust-console/modules/member/domain/aggregates/member"
)

// ErrEmptySpreadsheet means the uploaded file has a header but no data rows,
// or no recognizable rows at all.
var ErrEmptySpreadsheet = errors.New("spreadsheet contains no data rows")

// Analyze classifies every parsed row against the existing member snapshot.
// Invalid rows are collected with their reasons, valid rows are split into
// duplicate candidates and plain creates, and the result is wrapped into a
// Plan ready for reconciliation review.
func Analyze(records []RawRecord, existing []member.Member) (*Plan, error) {
	if len(records) == 0 {
		return nil, ErrEmptySpreadsheet
	}

	var (
		invalid    []RowIssue
		warnings   []RowIssue
		candidates []DuplicateCandidate
		creates    []DuplicateCandidate
	)

	for _, rec := range records {
		vr := Validate(rec)
		if len(vr.Warnings) > 0 {
			warnings = append(warnings, RowIssue{Row: rec.Row, Errors: vr.Warnings})
		}
		if !vr.Valid {
			invalid = append(invalid, RowIssue{Row: rec.Row, Errors: vr.Errors})
			continue
		}

		fields := rec.MemberFields()
		det := DetectDuplicate(fields, existing)
		if det.IsDuplicate {
			candidates = append(candidates, DuplicateCandidate{
				Source:     rec,
				Fields:     fields,
				Matched:    det.Matched,
				Score:      det.Score,
				Reasons:    det.Reasons,
				Confidence: det.Confidence,
			})
			continue
		}
		creates = append(creates, DuplicateCandidate{Source: rec, Fields: fields})
	}

	plan := NewPlan(candidates, creates, invalid, len(records))
	plan.warnings = warnings
	return plan, nil
}
