package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jpierre/resume-insights/internal/llm"
	"github.com/jpierre/resume-insights/internal/observability"
	"github.com/jpierre/resume-insights/internal/schemas"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a structured resume record from raw text",
	Long:  "Parses raw resume text into a structured ResumeRecord JSON via the LLM, preserving bullet wording verbatim for downstream analysis.",
	RunE:  runExtract,
}

var (
	extractTextFile string
	extractOutput   string
	extractAPIKey   string
	extractVerbose  bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractTextFile, "text-file", "t", "", "Path to raw resume text file (required)")
	extractCmd.Flags().StringVarP(&extractOutput, "out", "o", "", "Path to output ResumeRecord JSON file (required)")
	extractCmd.Flags().StringVar(&extractAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	extractCmd.Flags().BoolVarP(&extractVerbose, "verbose", "v", false, "Print a summary of the extracted record")

	if err := extractCmd.MarkFlagRequired("text-file"); err != nil {
		panic(fmt.Sprintf("failed to mark text-file flag as required: %v", err))
	}
	if err := extractCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	apiKey := extractAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	text, err := os.ReadFile(extractTextFile)
	if err != nil {
		return fmt.Errorf("failed to read resume text file %s: %w", extractTextFile, err)
	}

	record, err := llm.ExtractResume(context.Background(), string(text), apiKey)
	if err != nil {
		return fmt.Errorf("failed to extract resume: %w", err)
	}

	jsonOutput, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal resume record to JSON: %w", err)
	}

	if err := writeOutputFile(extractOutput, jsonOutput); err != nil {
		return err
	}

	validateAgainstSchema("resume_record.schema.json", extractOutput)

	if extractVerbose {
		observability.NewPrinter(os.Stdout).PrintResumeSummary(record)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully extracted resume record to %s\n", extractOutput)
	return nil
}

// writeOutputFile writes data to path, creating parent directories as needed.
func writeOutputFile(path string, data []byte) error {
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}

// validateAgainstSchema checks an output file against a published schema.
// Validation is a safety check, not a requirement: failures warn, never fail
// the command.
func validateAgainstSchema(schemaFile, jsonPath string) {
	schemaPath := schemas.ResolveSchemaPath(filepath.Join("schemas", schemaFile))
	if schemaPath == "" {
		return
	}
	if err := schemas.ValidateJSON(schemaPath, jsonPath); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Output validation failed: %v\n", err)
	}
}
