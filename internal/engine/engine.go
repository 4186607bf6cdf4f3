// Package engine runs the full analysis pipeline for one résumé
// against a batch of job postings: seniority detection, stability
// analysis, job matching, and per-job ATS scoring.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-analyzer/internal/ats"
	"github.com/jonathan/career-analyzer/internal/matcher"
	"github.com/jonathan/career-analyzer/internal/seniority"
	"github.com/jonathan/career-analyzer/internal/stability"
	"github.com/jonathan/career-analyzer/internal/types"
)

// Engine wires the four scorers behind one entry point. Safe for
// concurrent use.
type Engine struct {
	logger    *zap.Logger
	scorer    *ats.Scorer
	matcher   *matcher.Matcher
	detector  *seniority.Detector
	stability *stability.Analyzer
}

// New returns an Engine. A nil logger disables logging.
func New(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		logger:    logger,
		scorer:    ats.NewScorer(logger),
		matcher:   matcher.NewMatcher(logger),
		detector:  seniority.NewDetector(logger),
		stability: stability.NewAnalyzer(logger),
	}
}

// Analyze validates the inputs and runs every scorer. The stability and
// ATS passes run concurrently with job matching; the seniority job-fit
// comparison uses the best-fit job once matching completes. ATS results
// stay parallel to the input job order.
func (e *Engine) Analyze(ctx context.Context, resume *types.Resume, jobs []*types.JobPosting) (*types.Report, error) {
	if err := resume.Validate(); err != nil {
		return nil, fmt.Errorf("validating resume: %w", err)
	}
	for _, job := range jobs {
		if err := job.Validate(); err != nil {
			return nil, fmt.Errorf("validating job %q: %w", job.ID, err)
		}
	}

	report := &types.Report{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		report.Stability = *e.stability.Analyze(resume)
		return nil
	})

	g.Go(func() error {
		matches, err := e.matcher.MatchAll(ctx, resume, jobs)
		if err != nil {
			return err
		}
		report.Matches = matches
		return nil
	})

	g.Go(func() error {
		results := make([]types.ATSResult, 0, len(jobs))
		for _, job := range jobs {
			if err := ctx.Err(); err != nil {
				return err
			}
			results = append(results, *e.scorer.Score(resume, job))
		}
		report.ATSResults = results
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("running analysis: %w", err)
	}

	if bestFit := bestFitJob(report.Matches, jobs); bestFit != nil {
		report.Seniority = *e.detector.DetectForJob(resume, bestFit)
	} else {
		report.Seniority = *e.detector.Detect(resume)
	}

	e.logger.Info("analysis complete",
		zap.String("report_id", report.ID),
		zap.Int("jobs", len(jobs)),
		zap.String("seniority", string(report.Seniority.Level)),
		zap.Float64("stability", report.Stability.Score))

	return report, nil
}

func bestFitJob(matches []types.JobMatch, jobs []*types.JobPosting) *types.JobPosting {
	for _, match := range matches {
		if !match.IsBestFit {
			continue
		}
		for _, job := range jobs {
			if job.ID == match.JobID {
				return job
			}
		}
	}
	return nil
}
