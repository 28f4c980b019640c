package importer

import (
	"github.com/google/uuid"

	"github.com/samajseva/trust-console/modules/member/domain/aggregates/member"
)

type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

// Action is the reconciliation decision for a duplicate candidate.
type Action string

const (
	ActionSkip   Action = "skip"
	ActionUpdate Action = "update"
	ActionCreate Action = "create"
)

type OperationKind string

const (
	OperationCreate OperationKind = "create"
	OperationUpdate OperationKind = "update"
	OperationSkip   OperationKind = "skip"
)

// RawRecord is one parsed spreadsheet row. Fields is keyed by normalized
// column names; Row is the 1-based spreadsheet row number including the header.
type RawRecord struct {
	Row    int
	Fields map[string]string
}

type ValidationResult struct {
	Valid  bool
	Errors []string
	// Warnings carry non-fatal findings, e.g. ambiguous day/month dates.
	Warnings []string
}

// DuplicateCandidate pairs an import row with its best-matching existing member.
type DuplicateCandidate struct {
	Source     RawRecord
	Fields     member.Fields
	Matched    member.Member
	Score      int
	Reasons    []string
	Confidence ConfidenceLevel
}

type BatchOperation struct {
	Row      RawRecord
	Kind     OperationKind
	TargetID uuid.UUID
	Fields   member.Fields
}

type OperationResult struct {
	Row     int
	Kind    OperationKind
	Success bool
	Message string
	Member  member.Member
}

type Progress struct {
	Processed int
	Total     int
	Percent   int
	Batch     int
	Batches   int
}

type RunStatus string

const (
	RunStatusSuccess RunStatus = "success"
	RunStatusError   RunStatus = "error"
)

type RunReport struct {
	Status  RunStatus
	Results []OperationResult
	Created int
	Updated int
	Skipped int
	Failed  int
}

// UploadSummary gates the confirmation step: when RecordsToUpload is zero the
// executor refuses to run.
type UploadSummary struct {
	TotalRecords     int
	ValidRecords     int
	InvalidRecords   int
	DuplicateRecords int
	RecordsToUpload  int
}

// RowIssue reports one invalid row, rendered as "Row N: reasons" by callers.
type RowIssue struct {
	Row    int
	Errors []string
}
