package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-analyzer/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate resume or job posting JSON files against their schemas",
	RunE:  runValidate,
}

var (
	validateResumeFiles []string
	validateJobFiles    []string
)

func init() {
	validateCmd.Flags().StringArrayVarP(&validateResumeFiles, "resume", "r", nil, "Resume JSON file to validate (repeatable)")
	validateCmd.Flags().StringArrayVarP(&validateJobFiles, "job", "j", nil, "Job posting JSON file to validate (repeatable)")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	if len(validateResumeFiles) == 0 && len(validateJobFiles) == 0 {
		return fmt.Errorf("nothing to validate (use --resume or --job)")
	}

	for _, path := range validateResumeFiles {
		if err := schemas.ValidateResumeFile(path); err != nil {
			return fmt.Errorf("resume %s: %w", path, err)
		}
		cmd.Printf("resume %s: OK\n", path)
	}
	for _, path := range validateJobFiles {
		if err := schemas.ValidateJobPostingFile(path); err != nil {
			return fmt.Errorf("job posting %s: %w", path, err)
		}
		cmd.Printf("job posting %s: OK\n", path)
	}
	return nil
}
