// Package main provides the BeatATS command line interface.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "beatats",
	Short: "ATS resume analysis engine",
	Long:  "BeatATS scores parsed resumes against job descriptions the way an applicant tracking system would: knockout eligibility filters, evidence-weighted skill matching, and a composite verdict.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
