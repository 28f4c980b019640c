package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/samajseva/trust-console/modules/member/importer"
	"github.com/samajseva/trust-console/modules/member/infrastructure/persistence"
	"github.com/samajseva/trust-console/modules/member/services"
	"github.com/samajseva/trust-console/pkg/composables"
	"github.com/samajseva/trust-console/pkg/configuration"
	"github.com/samajseva/trust-console/pkg/eventbus"
)

type importCmdOptions struct {
	file          string
	apply         bool
	defaultAction string
	actions       string
}

func newImportCmd() *cobra.Command {
	var opts importCmdOptions

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import members from an .xlsx spreadsheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.file, "file", "", "Spreadsheet to import (required)")
	cmd.Flags().BoolVar(&opts.apply, "apply", false, "Apply changes to DB (default is dry-run)")
	cmd.Flags().StringVar(&opts.defaultAction, "default-action", "", "Action for duplicates: skip, update or create (default skip)")
	cmd.Flags().StringVar(&opts.actions, "actions", "", `Per-row overrides as JSON, e.g. '{"2":"update"}'`)

	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runImport(ctx context.Context, opts importCmdOptions) error {
	if strings.TrimSpace(opts.file) == "" {
		return withCode(exitUsage, fmt.Errorf("--file is required"))
	}

	f, err := os.Open(opts.file)
	if err != nil {
		return withCode(exitUsage, fmt.Errorf("open %s: %w", opts.file, err))
	}
	defer func() { _ = f.Close() }()

	conf := configuration.Use()
	logger := conf.Logger()

	pool, err := pgxpool.New(ctx, conf.Database.Opts)
	if err != nil {
		return withCode(exitDB, fmt.Errorf("connect database: %w", err))
	}
	defer pool.Close()
	ctx = composables.WithPool(ctx, pool)

	svc := services.NewImportService(
		persistence.NewMemberRepository(),
		eventbus.NewEventPublisher(logger),
		logger,
		conf.Import.BatchSize,
		conf.Import.BatchPause,
	)

	plan, err := svc.Preview(ctx, f)
	if err != nil {
		if errors.Is(err, importer.ErrEmptySpreadsheet) {
			return withCode(exitValidation, err)
		}
		return withCode(exitValidation, fmt.Errorf("read %s: %w", opts.file, err))
	}

	if err := applyCmdActions(plan, opts); err != nil {
		return err
	}

	if !opts.apply {
		return printDryRun(plan)
	}

	report, err := svc.Execute(ctx, plan)
	if err != nil {
		if errors.Is(err, importer.ErrNothingToUpload) {
			return withCode(exitValidation, err)
		}
		return withCode(exitDB, err)
	}
	return printReport(plan, report)
}

func applyCmdActions(plan *importer.Plan, opts importCmdOptions) error {
	if v := strings.TrimSpace(opts.defaultAction); v != "" {
		a, ok := parseAction(v)
		if !ok {
			return withCode(exitUsage, fmt.Errorf("invalid --default-action: %q", v))
		}
		plan.SetDefaultAction(a)
	}

	if v := strings.TrimSpace(opts.actions); v != "" {
		var overrides map[string]string
		if err := json.Unmarshal([]byte(v), &overrides); err != nil {
			return withCode(exitUsage, fmt.Errorf("invalid --actions: %w", err))
		}
		for rowKey, actionValue := range overrides {
			rowNum, err := strconv.Atoi(rowKey)
			if err != nil {
				return withCode(exitUsage, fmt.Errorf("invalid --actions row %q", rowKey))
			}
			a, ok := parseAction(actionValue)
			if !ok {
				return withCode(exitUsage, fmt.Errorf("invalid --actions value %q", actionValue))
			}
			plan.SetAction(rowNum, a)
		}
	}
	return nil
}

func parseAction(v string) (importer.Action, bool) {
	switch importer.Action(strings.ToLower(strings.TrimSpace(v))) {
	case importer.ActionSkip:
		return importer.ActionSkip, true
	case importer.ActionUpdate:
		return importer.ActionUpdate, true
	case importer.ActionCreate:
		return importer.ActionCreate, true
	default:
		return "", false
	}
}

type rowIssueOut struct {
	Row    int      `json:"row"`
	Issues []string `json:"issues"`
}

type duplicateOut struct {
	Row        int      `json:"row"`
	Name       string   `json:"name"`
	Score      int      `json:"score"`
	Confidence string   `json:"confidence"`
	Reasons    []string `json:"reasons"`
	Action     string   `json:"action"`
}

type importOut struct {
	Status           string         `json:"status"`
	TotalRecords     int            `json:"total_records"`
	ValidRecords     int            `json:"valid_records"`
	InvalidRecords   int            `json:"invalid_records"`
	DuplicateRecords int            `json:"duplicate_records"`
	RecordsToUpload  int            `json:"records_to_upload"`
	Created          int            `json:"created,omitempty"`
	Updated          int            `json:"updated,omitempty"`
	Failed           int            `json:"failed,omitempty"`
	Invalid          []rowIssueOut  `json:"invalid,omitempty"`
	Warnings         []rowIssueOut  `json:"warnings,omitempty"`
	Duplicates       []duplicateOut `json:"duplicates,omitempty"`
}

func summarize(plan *importer.Plan) importOut {
	s := plan.Summary()
	out := importOut{
		TotalRecords:     s.TotalRecords,
		ValidRecords:     s.ValidRecords,
		InvalidRecords:   s.InvalidRecords,
		DuplicateRecords: s.DuplicateRecords,
		RecordsToUpload:  s.RecordsToUpload,
	}
	for _, issue := range plan.Invalid() {
		out.Invalid = append(out.Invalid, rowIssueOut{Row: issue.Row, Issues: issue.Errors})
	}
	for _, issue := range plan.Warnings() {
		out.Warnings = append(out.Warnings, rowIssueOut{Row: issue.Row, Issues: issue.Errors})
	}
	for _, c := range plan.Candidates() {
		out.Duplicates = append(out.Duplicates, duplicateOut{
			Row:        c.Source.Row,
			Name:       c.Fields.Name,
			Score:      c.Score,
			Confidence: string(c.Confidence),
			Reasons:    c.Reasons,
			Action:     string(plan.EffectiveAction(c.Source.Row)),
		})
	}
	return out
}

func printDryRun(plan *importer.Plan) error {
	out := summarize(plan)
	out.Status = "dry_run"
	return writeJSONLine(out)
}

func printReport(plan *importer.Plan, report importer.RunReport) error {
	out := summarize(plan)
	out.Status = string(report.Status)
	out.Created = report.Created
	out.Updated = report.Updated
	out.Failed = report.Failed
	return writeJSONLine(out)
}
