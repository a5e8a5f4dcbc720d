package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jpierre/resume-insights/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintResumeSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	record := &types.ResumeRecord{
		Basics: types.Basics{Name: "Ada Lovelace"},
		Projects: []types.Project{
			{Name: "Compiler"},
		},
		Skills: types.Skills{
			ProgrammingLanguages: []string{"Go", "Python"},
		},
		Education: []types.Education{
			{Institution: "UF", GPA: 3.8},
		},
	}

	p.PrintResumeSummary(record)
	output := buf.String()

	assert.Contains(t, output, "EXTRACTED RESUME")
	assert.Contains(t, output, "Ada Lovelace")
	assert.Contains(t, output, "Projects:   1")
	assert.Contains(t, output, "Skills:     2")
	assert.Contains(t, output, "GPA 3.80")
}

func TestPrintResumeSummary_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResumeSummary(nil)

	assert.Empty(t, buf.String())
}

func TestPrintScoreReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &types.ScoreReport{
		TotalScore: 56,
		Breakdown: []types.ScoreBreakdownEntry{
			{Category: types.DimensionProjects, QualityScore: 25, QuantityScore: 100, CombinedScore: 55, Weight: 25, Contribution: 14},
			{Category: types.DimensionGPA, QualityScore: 100, QuantityScore: 100, CombinedScore: 100, Weight: 10, Contribution: 10},
		},
		Insights: []types.ActionableInsight{
			{ID: "insight_1", Category: types.DimensionProjects, Insight: "Add quantifiable impact", Priority: types.PriorityHigh},
		},
	}

	p.PrintScoreReport(report)
	output := buf.String()

	assert.Contains(t, output, "RESUME SCORE")
	assert.Contains(t, output, "Total Score: 56 / 100")
	assert.Contains(t, output, "projects")
	assert.Contains(t, output, "[high] Add quantifiable impact")
}

func TestPrintMatchReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	match := types.CourseMatch{
		ResumeCourse: "Data Structures",
		Course:       types.CourseRecord{Code: "COP3530", Name: "Data Structures and Algorithms"},
		Score:        90,
		Category:     types.CategoryCoreCS,
	}
	report := &types.MatchReport{
		Term:      "2251",
		Threshold: 60,
		Matches:   []types.CourseMatch{match},
		ByCategory: map[types.CategoryLabel][]types.CourseMatch{
			types.CategoryCoreCS: {match},
		},
	}

	p.PrintMatchReport(report)
	output := buf.String()

	assert.Contains(t, output, "COURSEWORK MATCHES")
	assert.Contains(t, output, "Term 2251, threshold 60: 1 matches")
	assert.Contains(t, output, "Core CS:")
	assert.Contains(t, output, "COP3530")
	assert.Contains(t, output, "(90)")
}

func TestPrintMatchReport_NoMatches(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchReport(&types.MatchReport{Term: "2251", Threshold: 60})
	output := buf.String()

	assert.Contains(t, output, "NO COURSEWORK MATCHES FOUND")
}

func TestPrintBox_LongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	record := &types.ResumeRecord{
		Basics: types.Basics{
			Name: "A Very Long Candidate Name That Should Be Truncated To Fit The Box",
		},
	}

	p.PrintResumeSummary(record)
	output := buf.String()

	assert.True(t, strings.Contains(output, "┌"))
	assert.True(t, strings.Contains(output, "└"))
	assert.True(t, strings.Contains(output, "│"))
}
