package main

import (
	"github.com/spf13/cobra"

	"github.com/shubhamdevjs/BeatATS/internal/matching"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Run only the skill matching branch",
	Long:  "Match the resume's skills against the JD's hard and preferred skills and emit the evidence-weighted match result JSON, without knockout evaluation.",
	RunE:  runMatch,
}

var (
	matchResumeFile string
	matchJDFile     string
	matchOutputFile string
	matchPolicyFile string
	matchPretty     bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchResumeFile, "resume", "r", "", "Path to parsed resume JSON (required)")
	matchCmd.Flags().StringVarP(&matchJDFile, "jd", "j", "", "Path to parsed job description JSON (required)")
	matchCmd.Flags().StringVarP(&matchOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	matchCmd.Flags().StringVar(&matchPolicyFile, "policy", "", "Path to scoring policy JSON (default: built-in)")
	matchCmd.Flags().BoolVarP(&matchPretty, "pretty", "p", false, "Pretty print JSON output")
	_ = matchCmd.MarkFlagRequired("resume")
	_ = matchCmd.MarkFlagRequired("jd")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	policy, err := loadPolicy(matchPolicyFile)
	if err != nil {
		return err
	}
	resume, err := loadResume(matchResumeFile)
	if err != nil {
		return err
	}
	jd, err := loadJD(matchJDFile)
	if err != nil {
		return err
	}

	return writeOutput(matching.Match(resume, jd, policy), matchOutputFile, matchPretty)
}
