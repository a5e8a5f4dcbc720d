package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jpierre/resume-insights/internal/catalog"
	"github.com/jpierre/resume-insights/internal/config"
	"github.com/jpierre/resume-insights/internal/db"
	"github.com/jpierre/resume-insights/internal/llm"
	"github.com/jpierre/resume-insights/internal/matching"
	"github.com/jpierre/resume-insights/internal/observability"
	"github.com/jpierre/resume-insights/internal/scoring"
	"github.com/jpierre/resume-insights/internal/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full resume analysis end-to-end",
	Long: `Orchestrates the entire analysis: extraction (if starting from raw text) -> catalog fetch -> coursework matching -> quality scoring.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runAnalyze,
}

var (
	analyzeConfigPath string
	analyzeResume     string
	analyzeResumeText string
	analyzeTerm       string
	analyzeCatalogURL string
	analyzeThreshold  int
	analyzeOutDir     string
	analyzeUserID     string
	analyzeAPIKey     string
	analyzeDBURL      string
	analyzeSkipCache  bool
	analyzeVerbose    bool
)

func init() {
	// Config file flag (processed first)
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to ResumeRecord JSON file (mutually exclusive with --text-file)")
	analyzeCmd.Flags().StringVarP(&analyzeResumeText, "text-file", "t", "", "Path to raw resume text file (mutually exclusive with --resume)")
	analyzeCmd.Flags().StringVar(&analyzeTerm, "term", "", "Academic term identifier for catalog matching")
	analyzeCmd.Flags().StringVar(&analyzeCatalogURL, "url", "", "Schedule API base URL")
	analyzeCmd.Flags().IntVar(&analyzeThreshold, "threshold", 0, "Minimum similarity score for a match (0-100)")
	analyzeCmd.Flags().StringVarP(&analyzeOutDir, "out", "o", "", "Output directory (required)")
	analyzeCmd.Flags().StringVar(&analyzeUserID, "user-id", "", "User UUID for caching reports in the database")
	analyzeCmd.Flags().BoolVar(&analyzeSkipCache, "skip-cache", false, "Bypass the catalog cache and fetch fresh")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for report persistence and catalog caching
	analyzeCmd.Flags().StringVar(&analyzeDBURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	if err := analyzeCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if analyzeConfigPath != "" {
		loadedCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if analyzeVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", analyzeConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("resume") {
		cfg.Resume = analyzeResume
	}
	if cmd.Flags().Changed("text-file") {
		cfg.ResumeText = analyzeResumeText
	}
	if cmd.Flags().Changed("term") {
		cfg.Term = analyzeTerm
	}
	if cmd.Flags().Changed("url") {
		cfg.CatalogURL = analyzeCatalogURL
	}
	if cmd.Flags().Changed("threshold") {
		cfg.Threshold = analyzeThreshold
	}
	if cmd.Flags().Changed("user-id") {
		cfg.UserID = analyzeUserID
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = analyzeAPIKey
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = analyzeDBURL
	}
	if cmd.Flags().Changed("skip-cache") {
		cfg.SkipCache = analyzeSkipCache
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{})

	// Step 4: Validate required fields
	if cfg.Resume == "" && cfg.ResumeText == "" {
		return fmt.Errorf("either --resume or --text-file must be provided (via flag or config)")
	}
	if cfg.Resume != "" && cfg.ResumeText != "" {
		return fmt.Errorf("--resume and --text-file are mutually exclusive; provide only one")
	}
	if cfg.Term == "" {
		return fmt.Errorf("--term is required (via flag or config)")
	}

	// Step 5: API key handling (only needed when extracting from raw text)
	if cfg.ResumeText != "" && cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
		if cfg.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required with --text-file")
		}
	}

	// Step 6: Database URL handling (optional; enables caching and persistence)
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.UserID != "" && cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required with --user-id")
	}

	var database *db.DB
	if cfg.DatabaseURL != "" {
		var err error
		database, err = db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer database.Close()
	}

	printer := observability.NewPrinter(os.Stdout)

	// Resume record: load from file or extract from raw text
	record, err := analyzeRecord(ctx, &cfg)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		printer.PrintResumeSummary(record)
	}

	// Catalog fetch (cached when a database is available). A catalog outage
	// must never block scoring: fall back to an empty catalog and continue,
	// producing a zero-match report alongside the score report.
	var courses []types.CourseRecord
	client, err := catalog.NewClient(cfg.CatalogURL, nil)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: catalog unavailable, matching against an empty catalog: %v\n", err)
	} else {
		cached := catalog.NewCachedClient(client, database, &catalog.CachedClientConfig{
			SkipCache: cfg.SkipCache,
		})
		var fromCache bool
		courses, fromCache, err = cached.FetchTerm(ctx, cfg.Term)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: catalog fetch failed, matching against an empty catalog: %v\n", err)
			courses = nil
		} else if cfg.Verbose && fromCache {
			_, _ = fmt.Fprintf(os.Stdout, "Catalog for term %s served from cache (%d courses)\n", cfg.Term, len(courses))
		}
	}

	// Matching and scoring
	matchReport := matching.BuildMatchReport(cfg.Term, record.EducationAchievements(), courses, cfg.Threshold)
	scoreReport := scoring.ScoreResume(record)

	if cfg.Verbose {
		printer.PrintMatchReport(&matchReport)
		printer.PrintScoreReport(&scoreReport)
	}

	// Persist per-user when requested
	if cfg.UserID != "" {
		uid, err := uuid.Parse(cfg.UserID)
		if err != nil {
			return fmt.Errorf("invalid user_id format: %w", err)
		}
		if err := database.SaveAnalysis(ctx, uid, cfg.Term, db.KindMatchReport, matchReport); err != nil {
			return err
		}
		if err := database.SaveAnalysis(ctx, uid, "", db.KindScoreReport, scoreReport); err != nil {
			return err
		}
	}

	// Write both reports to the output directory
	if err := writeReportFile(filepath.Join(analyzeOutDir, "match_report.json"), matchReport, "match_report.schema.json"); err != nil {
		return err
	}
	if err := writeReportFile(filepath.Join(analyzeOutDir, "score_report.json"), scoreReport, "score_report.schema.json"); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Analysis complete: score %d/100, %d coursework matches\n",
		scoreReport.TotalScore, len(matchReport.Matches))
	_, _ = fmt.Fprintf(os.Stdout, "Match report: %s\n", filepath.Join(analyzeOutDir, "match_report.json"))
	_, _ = fmt.Fprintf(os.Stdout, "Score report: %s\n", filepath.Join(analyzeOutDir, "score_report.json"))

	return nil
}

func analyzeRecord(ctx context.Context, cfg *config.Config) (*types.ResumeRecord, error) {
	if cfg.Resume != "" {
		return loadResumeRecord(cfg.Resume)
	}

	text, err := os.ReadFile(cfg.ResumeText)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume text file %s: %w", cfg.ResumeText, err)
	}

	return llm.ExtractResume(ctx, string(text), cfg.APIKey)
}

func writeReportFile(path string, report any, schemaFile string) error {
	jsonOutput, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report to JSON: %w", err)
	}

	if err := writeOutputFile(path, jsonOutput); err != nil {
		return err
	}

	validateAgainstSchema(schemaFile, path)
	return nil
}
