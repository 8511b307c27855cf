package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/shubhamdevjs/BeatATS/internal/employment"
	"github.com/shubhamdevjs/BeatATS/internal/knockout"
)

var knockoutCmd = &cobra.Command{
	Use:   "knockout",
	Short: "Evaluate only the knockout eligibility filters",
	Long:  "Classify the resume's roles, aggregate experience totals, evaluate the JD's hard-eligibility filters, and emit the knockout result JSON.",
	RunE:  runKnockout,
}

var (
	knockoutResumeFile string
	knockoutJDFile     string
	knockoutOutputFile string
	knockoutPolicyFile string
	knockoutPretty     bool
)

func init() {
	knockoutCmd.Flags().StringVarP(&knockoutResumeFile, "resume", "r", "", "Path to parsed resume JSON (required)")
	knockoutCmd.Flags().StringVarP(&knockoutJDFile, "jd", "j", "", "Path to parsed job description JSON (required)")
	knockoutCmd.Flags().StringVarP(&knockoutOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	knockoutCmd.Flags().StringVar(&knockoutPolicyFile, "policy", "", "Path to scoring policy JSON (default: built-in)")
	knockoutCmd.Flags().BoolVarP(&knockoutPretty, "pretty", "p", false, "Pretty print JSON output")
	_ = knockoutCmd.MarkFlagRequired("resume")
	_ = knockoutCmd.MarkFlagRequired("jd")

	rootCmd.AddCommand(knockoutCmd)
}

func runKnockout(_ *cobra.Command, _ []string) error {
	policy, err := loadPolicy(knockoutPolicyFile)
	if err != nil {
		return err
	}
	resume, err := loadResume(knockoutResumeFile)
	if err != nil {
		return err
	}
	jd, err := loadJD(knockoutJDFile)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	classifier := employment.NewClassifier(policy, now)
	classified := classifier.ClassifyAll(resume.Sections.Experience)
	totals := employment.Totals(classified, policy, now)
	resume.ExperienceTotals = &totals

	return writeOutput(knockout.Evaluate(resume, jd, policy), knockoutOutputFile, knockoutPretty)
}
