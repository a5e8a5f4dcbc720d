// Package llm - extractor.go provides LLM-based structured resume extraction.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jpierre/resume-insights/internal/types"
)

// ExtractionSchema defines the structure for LLM-based content extraction.
// It provides a reusable way to define what information to extract from text.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "ResumeRecord")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string", "object"
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	// System description
	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	// Output schema
	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	// Instructions
	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	// Input text
	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// ResumeSchema returns the extraction schema for raw resume text. Bullet
// points must come through verbatim: the text analyzers downstream look for
// exact metric and verb patterns, so paraphrasing would corrupt the scores.
func ResumeSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "ResumeRecord",
		Description: `You are an expert resume parser. COPY TEXT VERBATIM - do not paraphrase, summarize, or reword.
Your task is to extract structured sections from a raw resume.
IMPORTANT: Preserve the exact wording of every bullet point and achievement.
Goal: Extract contact info, projects, work experience, skills, and education.
EXCLUDE: Page headers, footers, and formatting artifacts.`,
		Fields: []SchemaField{
			{
				Name:        "basics",
				Type:        "{\"name\", \"email\", \"phone\", \"github\", \"linkedin\", \"portfolio\"}",
				Description: "Contact details and profile URLs - use full URLs, omit fields not present",
				Required:    true,
			},
			{
				Name:        "projects",
				Type:        "[{\"name\", \"description\", \"highlights\": [\"string\"], \"technologies\": [\"string\"]}]",
				Description: "Personal and academic projects - copy each highlight bullet verbatim",
				Required:    true,
			},
			{
				Name:        "experience",
				Type:        "[{\"position\", \"company\", \"responsibilities\": [\"string\"], \"achievements\": [\"string\"]}]",
				Description: "Work experience entries - copy each bullet verbatim",
				Required:    true,
			},
			{
				Name:        "skills",
				Type:        "{\"programming_languages\": [\"string\"], \"frameworks\": [\"string\"], \"databases\": [\"string\"], \"devops_tools\": [\"string\"], \"other\": [\"string\"]}",
				Description: "Skills grouped into the five categories; put uncategorizable skills under other",
				Required:    true,
			},
			{
				Name:        "education",
				Type:        "[{\"institution\", \"degree\", \"gpa\": number, \"achievements\": [\"string\"]}]",
				Description: "Education entries - include 'Relevant coursework: ...' lines verbatim under achievements",
				Required:    true,
			},
		},
	}
}

// ExtractResume parses raw resume text into a structured record via the LLM.
// The result is validated before return; a record that fails format checks is
// treated as an extraction failure.
func ExtractResume(ctx context.Context, text string, apiKey string) (*types.ResumeRecord, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key required for resume extraction")
	}

	config := DefaultConfig()
	client, err := NewClient(ctx, config, apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = client.Close() }()

	prompt := BuildExtractionPrompt(ResumeSchema(), text)

	// TierLite handles clean resume text fine; extraction is copy-out, not reasoning.
	jsonResp, err := client.GenerateJSON(ctx, prompt, TierLite)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	jsonResp = CleanJSONBlock(jsonResp)

	var record types.ResumeRecord
	if err := json.Unmarshal([]byte(jsonResp), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume record: %w (content: %s)", err, jsonResp)
	}

	if err := record.Validate(); err != nil {
		return nil, fmt.Errorf("extracted record failed validation: %w", err)
	}

	return &record, nil
}
