// Package main provides the entry point for the career analyzer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career_analyzer",
	Short: "Deterministic resume analysis toolkit",
	Long: "Career analyzer scores a resume against job postings: ATS compatibility, " +
		"job matching with skill gaps, seniority detection, and career stability.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
