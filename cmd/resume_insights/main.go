// Package main provides the entry point for the resume insights CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_insights",
	Short: "Resume coursework matching and quality scoring",
	Long:  "Resume Insights extracts structured resume records, matches reported coursework against official course catalogs, and produces deterministic quality scores with actionable insights.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
