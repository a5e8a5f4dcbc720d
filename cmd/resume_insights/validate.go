package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jpierre/resume-insights/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON artifact against a schema",
	Long:  "Validates a JSON file against a JSON Schema file, reporting each failing field. Exits non-zero on validation failure.",
	RunE:  runValidate,
}

var (
	validateSchema string
	validateJSON   string
)

func init() {
	validateCmd.Flags().StringVarP(&validateSchema, "schema", "s", "", "Path to JSON Schema file (required)")
	validateCmd.Flags().StringVarP(&validateJSON, "json", "j", "", "Path to JSON file to validate (required)")

	if err := validateCmd.MarkFlagRequired("schema"); err != nil {
		panic(fmt.Sprintf("failed to mark schema flag as required: %v", err))
	}
	if err := validateCmd.MarkFlagRequired("json"); err != nil {
		panic(fmt.Sprintf("failed to mark json flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	if err := schemas.ValidateJSON(validateSchema, validateJSON); err != nil {
		return fmt.Errorf("Validation failed: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Validation passed: %s conforms to %s\n", validateJSON, validateSchema)
	return nil
}
