package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shubhamdevjs/BeatATS/internal/analysis"
	"github.com/shubhamdevjs/BeatATS/internal/observability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full ATS analysis for one resume/JD pair",
	Long:  "Run the complete pipeline (employment classification, knockout filters, skill matching, composite score) and emit the full report JSON.",
	RunE:  runAnalyze,
}

var (
	analyzeResumeFile string
	analyzeJDFile     string
	analyzeOutputFile string
	analyzePolicyFile string
	analyzePretty     bool
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResumeFile, "resume", "r", "", "Path to parsed resume JSON (required)")
	analyzeCmd.Flags().StringVarP(&analyzeJDFile, "jd", "j", "", "Path to parsed job description JSON (required)")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzePolicyFile, "policy", "", "Path to scoring policy JSON (default: built-in)")
	analyzeCmd.Flags().BoolVarP(&analyzePretty, "pretty", "p", false, "Pretty print JSON output")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print a formatted report summary to stderr")
	_ = analyzeCmd.MarkFlagRequired("resume")
	_ = analyzeCmd.MarkFlagRequired("jd")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	policy, err := loadPolicy(analyzePolicyFile)
	if err != nil {
		return err
	}
	resume, err := loadResume(analyzeResumeFile)
	if err != nil {
		return err
	}
	jd, err := loadJD(analyzeJDFile)
	if err != nil {
		return err
	}

	report, err := analysis.Analyze(context.Background(), resume, jd, policy)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if analyzeVerbose {
		observability.NewPrinter(os.Stderr).PrintReport(report)
	}
	return writeOutput(report, analyzeOutputFile, analyzePretty)
}
