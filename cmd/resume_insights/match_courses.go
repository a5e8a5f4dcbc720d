package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jpierre/resume-insights/internal/db"
	"github.com/jpierre/resume-insights/internal/matching"
	"github.com/jpierre/resume-insights/internal/observability"
	"github.com/jpierre/resume-insights/internal/types"
)

var matchCoursesCmd = &cobra.Command{
	Use:   "match-courses",
	Short: "Match resume coursework against a course catalog",
	Long:  "Extracts coursework from a resume record's education achievements and fuzzy-matches it against catalog listings, producing a MatchReport JSON grouped by subject category.",
	RunE:  runMatchCourses,
}

var (
	matchResume    string
	matchCatalog   string
	matchTerm      string
	matchOutput    string
	matchThreshold int
	matchUserID    string
	matchDBURL     string
	matchVerbose   bool
)

func init() {
	matchCoursesCmd.Flags().StringVarP(&matchResume, "resume", "r", "", "Path to input ResumeRecord JSON file (required)")
	matchCoursesCmd.Flags().StringVarP(&matchCatalog, "catalog", "c", "", "Path to input catalog JSON file (required)")
	matchCoursesCmd.Flags().StringVar(&matchTerm, "term", "", "Academic term identifier recorded in the report (required)")
	matchCoursesCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output MatchReport JSON file (required)")
	matchCoursesCmd.Flags().IntVar(&matchThreshold, "threshold", matching.DefaultThreshold, "Minimum similarity score for a match (0-100)")
	matchCoursesCmd.Flags().StringVar(&matchUserID, "user-id", "", "User UUID for caching the report in the database")
	matchCoursesCmd.Flags().StringVar(&matchDBURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	matchCoursesCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print the matches grouped by category")

	for _, flag := range []string{"resume", "catalog", "term", "out"} {
		if err := matchCoursesCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	rootCmd.AddCommand(matchCoursesCmd)
}

func runMatchCourses(_ *cobra.Command, _ []string) error {
	if matchThreshold < 0 || matchThreshold > 100 {
		return fmt.Errorf("--threshold must be between 0 and 100")
	}

	record, err := loadResumeRecord(matchResume)
	if err != nil {
		return err
	}

	catalogContent, err := os.ReadFile(matchCatalog)
	if err != nil {
		return fmt.Errorf("failed to read catalog file %s: %w", matchCatalog, err)
	}

	var courses []types.CourseRecord
	if err := json.Unmarshal(catalogContent, &courses); err != nil {
		return fmt.Errorf("failed to unmarshal catalog JSON: %w", err)
	}

	report := matching.BuildMatchReport(matchTerm, record.EducationAchievements(), courses, matchThreshold)

	jsonOutput, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal match report to JSON: %w", err)
	}

	if err := writeOutputFile(matchOutput, jsonOutput); err != nil {
		return err
	}

	validateAgainstSchema("match_report.schema.json", matchOutput)

	if err := saveReportToDB(matchUserID, matchDBURL, matchTerm, db.KindMatchReport, report); err != nil {
		return err
	}

	if matchVerbose {
		observability.NewPrinter(os.Stdout).PrintMatchReport(&report)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Matched %d courses to %s\n", len(report.Matches), matchOutput)
	return nil
}

// loadResumeRecord reads and validates a ResumeRecord JSON file.
func loadResumeRecord(path string) (*types.ResumeRecord, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file %s: %w", path, err)
	}

	var record types.ResumeRecord
	if err := json.Unmarshal(content, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume record JSON: %w", err)
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	return &record, nil
}

// saveReportToDB caches a report blob for a user when --user-id is given.
func saveReportToDB(userID, dbURL, term string, kind db.AnalysisKind, content any) error {
	if userID == "" {
		return nil
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user-id format: %w", err)
	}

	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required with --user-id")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, dbURL)
	if err != nil {
		return err
	}
	defer database.Close()

	return database.SaveAnalysis(ctx, uid, term, kind, content)
}
