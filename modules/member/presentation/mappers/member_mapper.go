package mappers

import (
	"time"

	"github.com/samajseva/trust-console/modules/member/domain/aggregates/member"
	"github.com/samajseva/trust-console/modules/member/importer"
	"github.com/samajseva/trust-console/modules/member/presentation/viewmodels"
)

func MemberToViewModel(m member.Member) viewmodels.Member {
	return viewmodels.Member{
		ID:          m.ID().String(),
		Name:        m.Name(),
		Email:       m.Email(),
		Mobile:      m.Mobile(),
		Occupation:  m.Occupation(),
		DateOfBirth: formatDate(m.DateOfBirth()),
		JoinDate:    formatDate(m.JoinDate()),
		Status:      string(m.Status()),
		CreatedAt:   m.CreatedAt().Format(time.RFC3339),
		UpdatedAt:   m.UpdatedAt().Format(time.RFC3339),
	}
}

func PlanToPreview(plan *importer.Plan) viewmodels.ImportPreview {
	s := plan.Summary()
	out := viewmodels.ImportPreview{
		Summary: viewmodels.UploadSummary{
			TotalRecords:     s.TotalRecords,
			ValidRecords:     s.ValidRecords,
			InvalidRecords:   s.InvalidRecords,
			DuplicateRecords: s.DuplicateRecords,
			RecordsToUpload:  s.RecordsToUpload,
		},
		Invalid:  issuesToViewModels(plan.Invalid()),
		Warnings: issuesToViewModels(plan.Warnings()),
	}
	for _, c := range plan.Candidates() {
		out.Duplicates = append(out.Duplicates, viewmodels.DuplicateCandidate{
			Row:        c.Source.Row,
			Name:       c.Fields.Name,
			Email:      c.Fields.Email,
			Mobile:     c.Fields.Mobile,
			Score:      c.Score,
			Confidence: string(c.Confidence),
			Reasons:    c.Reasons,
			Matched:    MemberToViewModel(c.Matched),
		})
	}
	return out
}

func ReportToViewModel(report importer.RunReport) viewmodels.ImportReport {
	out := viewmodels.ImportReport{
		Status:  string(report.Status),
		Created: report.Created,
		Updated: report.Updated,
		Skipped: report.Skipped,
		Failed:  report.Failed,
	}
	for _, res := range report.Results {
		out.Results = append(out.Results, viewmodels.OperationResult{
			Row:     res.Row,
			Kind:    string(res.Kind),
			Success: res.Success,
			Message: res.Message,
		})
	}
	return out
}

func issuesToViewModels(issues []importer.RowIssue) []viewmodels.RowIssue {
	out := make([]viewmodels.RowIssue, 0, len(issues))
	for _, issue := range issues {
		out = append(out, viewmodels.RowIssue{Row: issue.Row, Issues: issue.Errors})
	}
	return out
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return importer.FormatDate(*t)
}
