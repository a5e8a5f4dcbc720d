package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jpierre/resume-insights/internal/db"
	"github.com/jpierre/resume-insights/internal/observability"
	"github.com/jpierre/resume-insights/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume record",
	Long:  "Produces a deterministic 0-100 quality score for a resume record, with a per-dimension breakdown and prioritized actionable insights.",
	RunE:  runScore,
}

var (
	scoreResume  string
	scoreOutput  string
	scoreUserID  string
	scoreDBURL   string
	scoreVerbose bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResume, "resume", "r", "", "Path to input ResumeRecord JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output ScoreReport JSON file (required)")
	scoreCmd.Flags().StringVar(&scoreUserID, "user-id", "", "User UUID for caching the report in the database")
	scoreCmd.Flags().StringVar(&scoreDBURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print the score breakdown and top insights")

	if err := scoreCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := scoreCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	record, err := loadResumeRecord(scoreResume)
	if err != nil {
		return err
	}

	report := scoring.ScoreResume(record)

	jsonOutput, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal score report to JSON: %w", err)
	}

	if err := writeOutputFile(scoreOutput, jsonOutput); err != nil {
		return err
	}

	validateAgainstSchema("score_report.schema.json", scoreOutput)

	if err := saveReportToDB(scoreUserID, scoreDBURL, "", db.KindScoreReport, report); err != nil {
		return err
	}

	if scoreVerbose {
		observability.NewPrinter(os.Stdout).PrintScoreReport(&report)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Scored resume %d/100 to %s\n", report.TotalScore, scoreOutput)
	return nil
}
