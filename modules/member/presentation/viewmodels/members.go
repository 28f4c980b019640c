package viewmodels

type Member struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	Mobile      string `json:"mobile,omitempty"`
	Occupation  string `json:"occupation,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	JoinDate    string `json:"join_date,omitempty"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type UploadSummary struct {
	TotalRecords     int `json:"total_records"`
	ValidRecords     int `json:"valid_records"`
	InvalidRecords   int `json:"invalid_records"`
	DuplicateRecords int `json:"duplicate_records"`
	RecordsToUpload  int `json:"records_to_upload"`
}

type RowIssue struct {
	Row    int      `json:"row"`
	Issues []string `json:"issues"`
}

type DuplicateCandidate struct {
	Row        int      `json:"row"`
	Name       string   `json:"name"`
	Email      string   `json:"email,omitempty"`
	Mobile     string   `json:"mobile,omitempty"`
	Score      int      `json:"score"`
	Confidence string   `json:"confidence"`
	Reasons    []string `json:"reasons"`
	Matched    Member   `json:"matched"`
}

type ImportPreview struct {
	Summary    UploadSummary        `json:"summary"`
	Invalid    []RowIssue           `json:"invalid,omitempty"`
	Warnings   []RowIssue           `json:"warnings,omitempty"`
	Duplicates []DuplicateCandidate `json:"duplicates,omitempty"`
}

type OperationResult struct {
	Row     int    `json:"row"`
	Kind    string `json:"kind"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type ImportReport struct {
	Status  string            `json:"status"`
	Created int               `json:"created"`
	Updated int               `json:"updated"`
	Skipped int               `json:"skipped"`
	Failed  int               `json:"failed"`
	Results []OperationResult `json:"results"`
}
