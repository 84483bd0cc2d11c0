package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"gl-reconciler/internal/domain"
	"gl-reconciler/internal/logging"
)

// ReconcileUseCase orchestrates the full reconciliation pipeline:
// ingest both extracts, run the statistical analyzer, optionally run
// the AI detector, and merge everything into one report.
type ReconcileUseCase struct {
	repo     ExtractRepository
	detector MismatchDetector // nil disables the AI step
	opts     AnalyzeOptions
	log      *logrus.Logger
}

// Result bundles everything a caller needs to present or export a
// completed reconciliation run.
type Result struct {
	Analysis domain.AnalysisResult
	Report   []domain.ReportRow
	Elapsed  time.Duration
}

// NewReconcileUseCase creates a new instance of the usecase. A nil
// detector skips AI analysis; statistical analysis always runs.
func NewReconcileUseCase(repo ExtractRepository, detector MismatchDetector, opts AnalyzeOptions) *ReconcileUseCase {
	return &ReconcileUseCase{
		repo:     repo,
		detector: detector,
		opts:     opts,
		log:      logging.GetLogger(),
	}
}

// Reconcile runs the pipeline for one pair of extract sources. Given
// well-formed inputs it always produces a report; an AI failure flows
// through as an inert error outcome rather than aborting the run.
func (uc *ReconcileUseCase) Reconcile(ctx context.Context, excelSource, sqlSource string) (*Result, error) {
	started := time.Now()

	excel, err := uc.repo.GetExcelDataset(ctx, excelSource)
	if err != nil {
		return nil, fmt.Errorf("could not load Excel extract: %w", err)
	}
	sqlDS, err := uc.repo.GetSQLDataset(ctx, sqlSource)
	if err != nil {
		return nil, fmt.Errorf("could not load SQL extract: %w", err)
	}

	uc.log.WithFields(logrus.Fields{
		"excel_rows": excel.RowCount(),
		"sql_rows":   sqlDS.RowCount(),
	}).Info("extracts loaded, starting statistical analysis")

	analysis, err := Analyze(excel, sqlDS, uc.opts)
	if err != nil {
		return nil, fmt.Errorf("statistical analysis failed: %w", err)
	}

	var outcomes []domain.MismatchOutcome
	if uc.detector != nil {
		uc.log.Info("running AI-powered mismatch detection")
		outcomes = uc.detector.Detect(ctx, excel, sqlDS)
		if len(outcomes) == 1 && outcomes[0].Err != nil {
			uc.log.WithField("error", outcomes[0].Err.Message).Warn("AI analysis failed, continuing with statistical results only")
		}
	} else {
		uc.log.Warn("AI analysis disabled, statistical analysis only")
	}

	report := BuildReport(outcomes, analysis)

	elapsed := time.Since(started)
	uc.log.WithFields(logrus.Fields{
		"issues":        len(analysis.Issues),
		"report_rows":   len(report),
		"elapsed_total": elapsed.String(),
	}).Info("reconciliation complete")

	return &Result{
		Analysis: analysis,
		Report:   report,
		Elapsed:  elapsed,
	}, nil
}
