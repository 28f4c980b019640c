package services

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/samajseva/trust-console/modules/member/domain/aggregates/member"
	"github.com/samajseva/trust-console/modules/member/importer"
	"github.com/samajseva/trust-console/pkg/eventbus"
	"github.com/samajseva/trust-console/pkg/metrics"
)

// ErrImportInProgress rejects a second execute while one is running. Imports
// are serialized to keep the duplicate snapshot coherent.
var ErrImportInProgress = errors.New("an import is already running")

type ImportProgressEvent struct {
	Progress importer.Progress
}

type ImportCompletedEvent struct {
	Report importer.RunReport
}

type ImportService struct {
	repo       member.Repository
	publisher  eventbus.EventBus
	log        *logrus.Logger
	batchSize  int
	batchPause time.Duration

	mu sync.Mutex
}

func NewImportService(
	repo member.Repository,
	publisher eventbus.EventBus,
	log *logrus.Logger,
	batchSize int,
	batchPause time.Duration,
) *ImportService {
	return &ImportService{
		repo:       repo,
		publisher:  publisher,
		log:        log,
		batchSize:  batchSize,
		batchPause: batchPause,
	}
}

// Preview parses the upload and classifies every row against the current
// member snapshot. It never writes; the returned plan carries the summary,
// invalid rows, and duplicate candidates for review.
func (s *ImportService) Preview(ctx context.Context, r io.Reader) (*importer.Plan, error) {
	records, err := importer.ParseSpreadsheet(r)
	if err != nil {
		return nil, err
	}
	existing, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return importer.Analyze(records, existing)
}

// Execute runs the reviewed plan. Only one import may run at a time.
func (s *ImportService) Execute(ctx context.Context, plan *importer.Plan) (importer.RunReport, error) {
	if !s.mu.TryLock() {
		return importer.RunReport{}, ErrImportInProgress
	}
	defer s.mu.Unlock()

	ops, err := plan.Operations()
	if err != nil {
		return importer.RunReport{}, err
	}

	exec := &importer.Executor{
		BatchSize: s.batchSize,
		Pause:     s.batchPause,
		OnProgress: func(p importer.Progress) {
			s.publisher.Publish(ImportProgressEvent{Progress: p})
		},
	}

	s.log.WithFields(logrus.Fields{
		"operations": len(ops),
		"batch-size": exec.BatchSize,
	}).Info("starting member import")

	report, err := exec.Execute(ctx, s.repo, ops)
	if err != nil {
		metrics.ImportRuns.WithLabelValues(string(importer.RunStatusError)).Inc()
		return report, err
	}

	metrics.ImportRuns.WithLabelValues(string(report.Status)).Inc()
	metrics.ImportRows.WithLabelValues("created").Add(float64(report.Created))
	metrics.ImportRows.WithLabelValues("updated").Add(float64(report.Updated))
	metrics.ImportRows.WithLabelValues("skipped").Add(float64(report.Skipped))
	metrics.ImportRows.WithLabelValues("failed").Add(float64(report.Failed))

	s.log.WithFields(logrus.Fields{
		"status":  report.Status,
		"created": report.Created,
		"updated": report.Updated,
		"failed":  report.Failed,
	}).Info("member import finished")

	s.publisher.Publish(ImportCompletedEvent{Report: report})
	return report, nil
}

func (s *ImportService) Template() ([]byte, error) {
	return importer.Template()
}

// Suggest ranks existing members against a partial name for the review screen.
func (s *ImportService) Suggest(ctx context.Context, q string, limit int) ([]member.Member, error) {
	existing, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return importer.Suggest(q, existing, limit), nil
}
