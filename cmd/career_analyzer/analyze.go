package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/career-analyzer/internal/config"
	"github.com/jonathan/career-analyzer/internal/engine"
	"github.com/jonathan/career-analyzer/internal/observability"
	"github.com/jonathan/career-analyzer/internal/schemas"
	"github.com/jonathan/career-analyzer/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume against one or more job postings",
	Long: "Analyze runs the full pipeline on a resume JSON file: seniority detection, " +
		"stability analysis, ranked job matching, and per-job ATS scoring.",
	RunE: runAnalyze,
}

var (
	analyzeConfigFile string
	analyzeResumeFile string
	analyzeJobFiles   []string
	analyzeJobDir     string
	analyzeOutputFile string
	analyzeFormat     string
	analyzeTopJobs    int
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeConfigFile, "config", "c", "", "Path to JSON config file")
	analyzeCmd.Flags().StringVarP(&analyzeResumeFile, "resume", "r", "", "Path to resume JSON file (required)")
	analyzeCmd.Flags().StringArrayVarP(&analyzeJobFiles, "job", "j", nil, "Path to a job posting JSON file (repeatable)")
	analyzeCmd.Flags().StringVar(&analyzeJobDir, "job-dir", "", "Directory of job posting JSON files")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to write the report (defaults to stdout)")
	analyzeCmd.Flags().StringVar(&analyzeFormat, "format", "", "Report format: json or text")
	analyzeCmd.Flags().IntVar(&analyzeTopJobs, "top", 0, "Limit ranked matches in the report (0 = all)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if cfg.Resume == "" {
		return fmt.Errorf("a resume is required (use --resume or the config file)")
	}

	logger, err := buildLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	resume, err := loadResume(cfg.Resume)
	if err != nil {
		return err
	}
	jobs, err := loadJobs(cfg.Jobs, cfg.JobDir)
	if err != nil {
		return err
	}

	report, err := engine.New(logger).Analyze(context.Background(), resume, jobs)
	if err != nil {
		return err
	}
	if cfg.TopJobs > 0 && len(report.Matches) > cfg.TopJobs {
		report.Matches = report.Matches[:cfg.TopJobs]
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintReport(report)
	}

	rendered, err := renderReport(report, cfg.Format)
	if err != nil {
		return err
	}

	if cfg.Output == "" {
		fmt.Println(rendered)
		return nil
	}
	if err := os.WriteFile(cfg.Output, []byte(rendered+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// resolveConfig layers the configuration sources: config file, then
// environment, then CLI flags, which always win.
func resolveConfig() (config.Config, error) {
	var cfg config.Config
	if analyzeConfigFile != "" {
		loaded, err := config.LoadConfig(analyzeConfigFile)
		if err != nil {
			return cfg, err
		}
		cfg = *loaded
	}
	cfg.ApplyEnv()

	flags := config.Config{
		Resume:  analyzeResumeFile,
		Jobs:    analyzeJobFiles,
		JobDir:  analyzeJobDir,
		Output:  analyzeOutputFile,
		Format:  analyzeFormat,
		TopJobs: analyzeTopJobs,
	}
	cfg = flags.MergeWithDefaults(cfg)
	if analyzeVerbose {
		cfg.Verbose = true
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func buildLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func loadResume(path string) (*types.Resume, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}
	if err := schemas.ValidateResumeJSON(content); err != nil {
		return nil, fmt.Errorf("resume %s: %w", path, err)
	}
	var resume types.Resume
	if err := json.Unmarshal(content, &resume); err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	return &resume, nil
}

func loadJobs(paths []string, dir string) ([]*types.JobPosting, error) {
	all := append([]string{}, paths...)
	if dir != "" {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to read job directory: %w", err)
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
				continue
			}
			all = append(all, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(all)

	jobs := make([]*types.JobPosting, 0, len(all))
	for _, path := range all {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read job file: %w", err)
		}
		if err := schemas.ValidateJobPostingJSON(content); err != nil {
			return nil, fmt.Errorf("job posting %s: %w", path, err)
		}
		var job types.JobPosting
		if err := json.Unmarshal(content, &job); err != nil {
			return nil, fmt.Errorf("failed to parse job JSON %s: %w", path, err)
		}
		jobs = append(jobs, &job)
	}
	return jobs, nil
}

func renderReport(report *types.Report, format string) (string, error) {
	if format == config.FormatText {
		return renderText(report), nil
	}
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}
	return string(out), nil
}

func renderText(report *types.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Report %s\n\n", report.ID)

	fmt.Fprintf(&b, "Seniority: %s (score %.1f, confidence %.1f)\n",
		report.Seniority.Level, report.Seniority.Score, report.Seniority.Confidence)
	for _, indicator := range report.Seniority.Indicators {
		fmt.Fprintf(&b, "  - %s\n", indicator)
	}

	fmt.Fprintf(&b, "\nStability: %.1f (average tenure %.0f months)\n",
		report.Stability.Score, report.Stability.AverageTenureMonths)
	for _, indicator := range report.Stability.Indicators {
		fmt.Fprintf(&b, "  - %s\n", indicator)
	}
	for _, note := range report.Stability.PositiveNotes {
		fmt.Fprintf(&b, "  + %s\n", note)
	}

	if len(report.Matches) > 0 {
		fmt.Fprintf(&b, "\nJob matches:\n")
		for _, match := range report.Matches {
			marker := " "
			if match.IsBestFit {
				marker = "*"
			}
			fmt.Fprintf(&b, "%s %-30s %5.1f%% (%s)\n",
				marker, match.JobTitle, match.MatchPercentage, match.MatchLevel)
		}
	}

	if len(report.ATSResults) > 0 {
		fmt.Fprintf(&b, "\nATS scores:\n")
		for _, ats := range report.ATSResults {
			fmt.Fprintf(&b, "  %-20s %5.1f/100 (%s)\n", ats.JobID, ats.TotalScore, ats.RoleType)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
