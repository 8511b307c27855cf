package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/shubhamdevjs/BeatATS/internal/employment"
	"github.com/shubhamdevjs/BeatATS/internal/types"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify the resume's roles by employment type",
	Long:  "Classify each experience role (full-time, internship, contract, ...) with signals and confidence, aggregate the weighted experience totals, and emit both as JSON.",
	RunE:  runClassify,
}

var (
	classifyResumeFile string
	classifyOutputFile string
	classifyPolicyFile string
	classifyPretty     bool
)

// ClassifyOutput pairs the per-role classifications with the
// aggregated totals.
type ClassifyOutput struct {
	Roles  []types.ClassifiedRole `json:"roles"`
	Totals types.ExperienceTotals `json:"experience_totals"`
}

func init() {
	classifyCmd.Flags().StringVarP(&classifyResumeFile, "resume", "r", "", "Path to parsed resume JSON (required)")
	classifyCmd.Flags().StringVarP(&classifyOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	classifyCmd.Flags().StringVar(&classifyPolicyFile, "policy", "", "Path to scoring policy JSON (default: built-in)")
	classifyCmd.Flags().BoolVarP(&classifyPretty, "pretty", "p", false, "Pretty print JSON output")
	_ = classifyCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(classifyCmd)
}

func runClassify(_ *cobra.Command, _ []string) error {
	policy, err := loadPolicy(classifyPolicyFile)
	if err != nil {
		return err
	}
	resume, err := loadResume(classifyResumeFile)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	classifier := employment.NewClassifier(policy, now)
	classified := classifier.ClassifyAll(resume.Sections.Experience)

	out := ClassifyOutput{
		Roles:  classified,
		Totals: employment.Totals(classified, policy, now),
	}
	return writeOutput(out, classifyOutputFile, classifyPretty)
}
