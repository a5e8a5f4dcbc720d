package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jpierre/resume-insights/internal/catalog"
	"github.com/jpierre/resume-insights/internal/config"
	"github.com/jpierre/resume-insights/internal/db"
	"github.com/jpierre/resume-insights/internal/types"
)

var fetchCatalogCmd = &cobra.Command{
	Use:   "fetch-catalog",
	Short: "Fetch the course catalog for an academic term",
	Long: `Fetches official course listings for a term from the schedule API and writes them as CourseRecord JSON.

With --db-url the catalog is served from a database cache when fresh. With --page-url the listings are scraped from an HTML schedule page instead, rendering it in a headless browser when the page is JavaScript-driven.`,
	RunE: runFetchCatalog,
}

var (
	fetchTerm       string
	fetchOutput     string
	fetchBaseURL    string
	fetchPageURL    string
	fetchPrefixes   []string
	fetchDBURL      string
	fetchSkipCache  bool
	fetchUseBrowser bool
)

func init() {
	fetchCatalogCmd.Flags().StringVar(&fetchTerm, "term", "", "Academic term identifier, e.g. 2251 (required)")
	fetchCatalogCmd.Flags().StringVarP(&fetchOutput, "out", "o", "", "Path to output catalog JSON file (required)")
	fetchCatalogCmd.Flags().StringVar(&fetchBaseURL, "url", config.DefaultCatalogURL, "Schedule API base URL")
	fetchCatalogCmd.Flags().StringVar(&fetchPageURL, "page-url", "", "Scrape an HTML schedule page instead of the JSON API")
	fetchCatalogCmd.Flags().StringSliceVar(&fetchPrefixes, "prefixes", nil, "Department prefixes to fetch concurrently, e.g. COP,CAP,CEN")
	fetchCatalogCmd.Flags().StringVar(&fetchDBURL, "db-url", "", "PostgreSQL connection URL for catalog caching (optional, defaults to DATABASE_URL env var)")
	fetchCatalogCmd.Flags().BoolVar(&fetchSkipCache, "skip-cache", false, "Bypass the catalog cache and fetch fresh")
	fetchCatalogCmd.Flags().BoolVar(&fetchUseBrowser, "use-browser", false, "Render the schedule page in a headless browser (requires Chrome)")

	if err := fetchCatalogCmd.MarkFlagRequired("term"); err != nil {
		panic(fmt.Sprintf("failed to mark term flag as required: %v", err))
	}
	if err := fetchCatalogCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(fetchCatalogCmd)
}

func runFetchCatalog(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	courses, fromCache, err := fetchCatalogCourses(ctx)
	if err != nil {
		return err
	}

	jsonOutput, err := json.MarshalIndent(courses, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal catalog to JSON: %w", err)
	}

	if err := writeOutputFile(fetchOutput, jsonOutput); err != nil {
		return err
	}

	source := "schedule API"
	if fetchPageURL != "" {
		source = "schedule page"
	}
	if fromCache {
		source = "cache"
	}
	_, _ = fmt.Fprintf(os.Stdout, "Fetched %d courses for term %s from %s to %s\n",
		len(courses), fetchTerm, source, fetchOutput)
	return nil
}

func fetchCatalogCourses(ctx context.Context) (courses []types.CourseRecord, fromCache bool, err error) {
	if fetchPageURL != "" {
		courses, err := scrapeSchedulePage(ctx)
		return courses, false, err
	}

	client, err := catalog.NewClient(fetchBaseURL, nil)
	if err != nil {
		return nil, false, err
	}

	if len(fetchPrefixes) > 0 {
		courses, err := client.FetchTermPrefixes(ctx, fetchTerm, fetchPrefixes)
		return courses, false, err
	}

	dbURL := fetchDBURL
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}

	var database *db.DB
	if dbURL != "" {
		database, err = db.Connect(ctx, dbURL)
		if err != nil {
			return nil, false, err
		}
		defer database.Close()
	}

	cached := catalog.NewCachedClient(client, database, &catalog.CachedClientConfig{
		SkipCache: fetchSkipCache,
	})
	return cached.FetchTerm(ctx, fetchTerm)
}

// scrapeSchedulePage fetches an HTML schedule page, falling back to a
// headless browser when the plain response is too short to hold a course
// table.
func scrapeSchedulePage(ctx context.Context) ([]types.CourseRecord, error) {
	html, err := fetchPageHTML(ctx, fetchPageURL)
	if err != nil {
		return nil, err
	}

	if catalog.ShouldUseRendered(html) {
		if !fetchUseBrowser {
			return nil, fmt.Errorf("schedule page at %s appears JavaScript-rendered; retry with --use-browser", fetchPageURL)
		}
		html, err = catalog.FetchRendered(ctx, fetchPageURL, 60*time.Second)
		if err != nil {
			return nil, err
		}
	}

	return catalog.ParseScheduleHTML(html)
}

func fetchPageHTML(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request for %s: %w", pageURL, err)
	}
	req.Header.Set("User-Agent", catalog.DefaultUserAgent)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch schedule page %s: %w", pageURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("schedule page %s returned HTTP status %d", pageURL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read schedule page %s: %w", pageURL, err)
	}

	return string(body), nil
}
