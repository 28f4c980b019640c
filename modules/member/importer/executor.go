package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/samajseva/trust-console/modules/member/domain/aggregates/member"
)

const (
	// DefaultBatchSize keeps individual transactions small and lets progress
	// move visibly on large files.
	DefaultBatchSize = 50
	// DefaultBatchPause is the breather between batches so a bulk run does not
	// starve interactive traffic on the same pool.
	DefaultBatchPause = 25 * time.Millisecond
)

// Executor runs a planned operation sequence against the repository in
// fixed-size batches. A zero Executor is usable; unset knobs fall back to the
// defaults above.
type Executor struct {
	BatchSize  int
	Pause      time.Duration
	OnProgress func(Progress)
}

// Execute processes ops in order. A failing record is reported in its
// OperationResult and never aborts the run; only context cancellation stops
// early. Progress fires after every record.
func (e *Executor) Execute(ctx context.Context, repo member.Repository, ops []BatchOperation) (RunReport, error) {
	batchSize := e.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	pause := e.Pause
	if pause <= 0 {
		pause = DefaultBatchPause
	}

	total := len(ops)
	batches := (total + batchSize - 1) / batchSize

	report := RunReport{Results: make([]OperationResult, 0, total)}
	processed := 0

	for batch := 0; batch < batches; batch++ {
		if err := ctx.Err(); err != nil {
			report.Status = RunStatusError
			return report, err
		}

		start := batch * batchSize
		end := min(start+batchSize, total)

		for _, op := range ops[start:end] {
			res := e.apply(ctx, repo, op)
			report.Results = append(report.Results, res)
			switch {
			case !res.Success:
				report.Failed++
			case res.Kind == OperationCreate:
				report.Created++
			case res.Kind == OperationUpdate:
				report.Updated++
			default:
				report.Skipped++
			}

			processed++
			if e.OnProgress != nil {
				e.OnProgress(Progress{
					Processed: processed,
					Total:     total,
					Percent:   processed * 100 / total,
					Batch:     batch + 1,
					Batches:   batches,
				})
			}
		}

		if batch < batches-1 {
			if err := sleepWithContext(ctx, pause); err != nil {
				report.Status = RunStatusError
				return report, err
			}
		}
	}

	if report.Failed == 0 && report.Created+report.Updated+report.Skipped > 0 {
		report.Status = RunStatusSuccess
	} else {
		report.Status = RunStatusError
	}
	return report, nil
}

func (e *Executor) apply(ctx context.Context, repo member.Repository, op BatchOperation) OperationResult {
	res := OperationResult{Row: op.Row.Row, Kind: op.Kind}

	switch op.Kind {
	case OperationSkip:
		res.Success = true
		res.Message = "skipped"
		return res
	case OperationCreate:
		entity, err := repo.Create(ctx, member.New(op.Fields))
		if err != nil {
			res.Message = fmt.Sprintf("create failed: %v", err)
			return res
		}
		res.Success = true
		res.Member = entity
		return res
	case OperationUpdate:
		current, err := repo.GetByID(ctx, op.TargetID)
		if err != nil {
			res.Message = fmt.Sprintf("update failed: %v", err)
			return res
		}
		updated, err := repo.Update(ctx, current.WithFields(op.Fields))
		if err != nil {
			res.Message = fmt.Sprintf("update failed: %v", err)
			return res
		}
		res.Success = true
		res.Member = updated
		return res
	default:
		res.Message = fmt.Sprintf("unknown operation kind %q", op.Kind)
		return res
	}
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
