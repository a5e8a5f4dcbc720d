package scoring

import (
	"testing"

	"github.com/jpierre/resume-insights/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreResume_EmptyResumeBaseline(t *testing.T) {
	report := ScoreResume(&types.ResumeRecord{})

	assert.Equal(t, 0, report.TotalScore)

	// Exactly one "get started" insight per dimension.
	require.Len(t, report.Insights, 6)
	seen := make(map[types.Dimension]int)
	for _, insight := range report.Insights {
		seen[insight.Category]++
		assert.False(t, insight.Checked)
	}
	for _, dimension := range []types.Dimension{
		types.DimensionProjects, types.DimensionExperience, types.DimensionSkills,
		types.DimensionLinks, types.DimensionGPA, types.DimensionCoursework,
	} {
		assert.Equal(t, 1, seen[dimension], "expected one insight for %s", dimension)
	}
}

func TestScoreResume_WeightConservation(t *testing.T) {
	report := ScoreResume(&types.ResumeRecord{})

	require.Len(t, report.Breakdown, 6)
	totalWeight := 0
	for _, entry := range report.Breakdown {
		totalWeight += entry.Weight
	}
	assert.Equal(t, 100, totalWeight)
}

func TestScoreResume_ContributionSum(t *testing.T) {
	report := ScoreResume(fullResume())

	sum := 0
	for _, entry := range report.Breakdown {
		sum += entry.Contribution
	}
	assert.Equal(t, report.TotalScore, sum)
}

func TestScoreResume_ContributionFormula(t *testing.T) {
	report := ScoreResume(fullResume())

	for _, entry := range report.Breakdown {
		expected := (entry.CombinedScore*entry.Weight + 50) / 100 // round(c*w/100)
		assert.InDelta(t, expected, entry.Contribution, 1,
			"contribution for %s", entry.Category)
	}
}

func TestScoreResume_LinksAndGPACombinedIsQuality(t *testing.T) {
	report := ScoreResume(fullResume())

	for _, entry := range report.Breakdown {
		if entry.Category == types.DimensionLinks || entry.Category == types.DimensionGPA {
			assert.Equal(t, entry.QualityScore, entry.CombinedScore)
		}
	}
}

func TestScoreResume_InsightIDUniqueness(t *testing.T) {
	report := ScoreResume(fullResume())

	ids := make(map[string]bool)
	for _, insight := range report.Insights {
		assert.False(t, ids[insight.ID], "duplicate insight id %s", insight.ID)
		ids[insight.ID] = true
	}
}

func TestScoreResume_InsightPriorityOrdering(t *testing.T) {
	report := ScoreResume(fullResume())

	rank := map[types.Priority]int{
		types.PriorityHigh:   0,
		types.PriorityMedium: 1,
		types.PriorityLow:    2,
	}
	for i := 1; i < len(report.Insights); i++ {
		assert.LessOrEqual(t,
			rank[report.Insights[i-1].Priority],
			rank[report.Insights[i].Priority])
	}
}

func TestScoreResume_InsightStableWithinPriority(t *testing.T) {
	// An empty resume emits one insight per dimension. Projects and
	// experience score high priority (quality 0 < 50), skills scores high
	// (quantity 0 < 30), links medium, gpa/coursework low. Within each
	// rank the fixed dimension order must survive the sort.
	report := ScoreResume(&types.ResumeRecord{})

	var order []types.Dimension
	for _, insight := range report.Insights {
		order = append(order, insight.Category)
	}

	assert.Equal(t, []types.Dimension{
		types.DimensionProjects,
		types.DimensionExperience,
		types.DimensionSkills,
		types.DimensionLinks,
		types.DimensionGPA,
		types.DimensionCoursework,
	}, order)
}

// TestScoreResume_EndToEnd pins the composite formula with a hand-computed
// scenario: four projects (two quantified, all with technologies), one
// internship with achievements, eight skills across three categories,
// GitHub and LinkedIn links, a 3.8 GPA, and six education lines of which
// three are CS-relevant.
func TestScoreResume_EndToEnd(t *testing.T) {
	report := ScoreResume(endToEndResume())

	byDim := breakdownByDimension(report)

	// Projects: two projects at quality 29.6 (impact 40*0.4 + tech 12*0.3
	// + 10 tech bonus) and two at 21.2 (verbs 30*0.3 + tech 24*0.3 + 5
	// bonus); mean 25.4 -> 25. Quantity 4*25 = 100. Combined
	// round(25*0.6 + 100*0.4) = 55; contribution round(55*25/100) = 14.
	assert.Equal(t, 25, byDim[types.DimensionProjects].QualityScore)
	assert.Equal(t, 100, byDim[types.DimensionProjects].QuantityScore)
	assert.Equal(t, 55, byDim[types.DimensionProjects].CombinedScore)
	assert.Equal(t, 14, byDim[types.DimensionProjects].Contribution)

	// Experience: impact 20*0.45 + verbs 30*0.35 + achievement bonus 15 =
	// 34.5 -> 35. Quantity 30. Combined round(35*0.6 + 30*0.4) = 33;
	// contribution round(33*25/100) = 8.
	assert.Equal(t, 35, byDim[types.DimensionExperience].QualityScore)
	assert.Equal(t, 30, byDim[types.DimensionExperience].QuantityScore)
	assert.Equal(t, 33, byDim[types.DimensionExperience].CombinedScore)
	assert.Equal(t, 8, byDim[types.DimensionExperience].Contribution)

	// Skills: coverage 60, depth 20+10+20 = 50, quality 56; quantity 40.
	// Combined round(56*0.6 + 40*0.4) = 50; contribution 8.
	assert.Equal(t, 56, byDim[types.DimensionSkills].QualityScore)
	assert.Equal(t, 40, byDim[types.DimensionSkills].QuantityScore)
	assert.Equal(t, 50, byDim[types.DimensionSkills].CombinedScore)
	assert.Equal(t, 8, byDim[types.DimensionSkills].Contribution)

	// Links: github 25 + linkedin 20 = 45; contribution round(4.5) = 5.
	assert.Equal(t, 45, byDim[types.DimensionLinks].CombinedScore)
	assert.Equal(t, 5, byDim[types.DimensionLinks].Contribution)

	// GPA 3.8: tier 100; contribution 10.
	assert.Equal(t, 100, byDim[types.DimensionGPA].CombinedScore)
	assert.Equal(t, 10, byDim[types.DimensionGPA].Contribution)

	// Coursework: 6 lines, 3 relevant: quality 50, quantity 100. Combined
	// round(50*0.6 + 100*0.4) = 70; contribution round(10.5) = 11.
	assert.Equal(t, 50, byDim[types.DimensionCoursework].QualityScore)
	assert.Equal(t, 100, byDim[types.DimensionCoursework].QuantityScore)
	assert.Equal(t, 70, byDim[types.DimensionCoursework].CombinedScore)
	assert.Equal(t, 11, byDim[types.DimensionCoursework].Contribution)

	// 14 + 8 + 8 + 5 + 10 + 11
	assert.Equal(t, 56, report.TotalScore)
}

func breakdownByDimension(report types.ScoreReport) map[types.Dimension]types.ScoreBreakdownEntry {
	byDim := make(map[types.Dimension]types.ScoreBreakdownEntry, len(report.Breakdown))
	for _, entry := range report.Breakdown {
		byDim[entry.Category] = entry
	}
	return byDim
}

// fullResume is a moderately complete record used by the structural tests.
func fullResume() *types.ResumeRecord {
	return &types.ResumeRecord{
		Basics: types.Basics{
			Email:    "dev@example.com",
			GitHub:   "https://github.com/dev",
			LinkedIn: "https://linkedin.com/in/dev",
		},
		Projects: []types.Project{
			{
				Name:         "Course planner",
				Description:  "Built a course planner with a REST API",
				Highlights:   []string{"Reduced page load by 60%"},
				Technologies: []string{"Go", "PostgreSQL"},
			},
		},
		Experience: []types.Job{
			{
				Position:         "Software Engineering Intern",
				Responsibilities: []string{"Developed backend services"},
				Achievements:     []string{"Automated deployments, reduced release time by 30%"},
			},
		},
		Skills: types.Skills{
			ProgrammingLanguages: []string{"Go", "Python"},
			Databases:            []string{"PostgreSQL"},
		},
		Education: []types.Education{
			{
				GPA: 3.5,
				Achievements: []string{
					"Relevant coursework: Data Structures, Operating Systems",
					"Dean's List",
				},
			},
		},
	}
}

// endToEndResume matches the hand-computed scenario in TestScoreResume_EndToEnd.
// The texts are chosen so every text-analysis sub-score is exact.
func endToEndResume() *types.ResumeRecord {
	quantified := types.Project{
		Name:         "latency work",
		Description:  "Reduced API latency by 50%",
		Technologies: []string{"Go", "PostgreSQL"},
	}
	unquantified := types.Project{
		Name:         "test framework",
		Description:  "Designed and built a testing framework",
		Technologies: []string{"Python"},
	}

	return &types.ResumeRecord{
		Basics: types.Basics{
			GitHub:   "https://github.com/dev",
			LinkedIn: "https://linkedin.com/in/dev",
		},
		Projects: []types.Project{quantified, quantified, unquantified, unquantified},
		Experience: []types.Job{
			{
				Position:         "Software Engineering Intern",
				Responsibilities: []string{"Developed internal dashboards"},
				Achievements:     []string{"Automated reporting workflows in 10 hours"},
			},
		},
		Skills: types.Skills{
			ProgrammingLanguages: []string{"Go", "Python", "TypeScript"},
			Frameworks:           []string{"React", "Gin"},
			Databases:            []string{"PostgreSQL", "Redis", "MongoDB"},
		},
		Education: []types.Education{
			{
				GPA: 3.8,
				Achievements: []string{
					"Relevant coursework: Data Structures, Algorithms",
					"Dean's List, Fall 2023",
					"Relevant coursework: Operating Systems, Databases",
					"ACM chapter member",
					"Hackathon finalist",
					"Honors thesis on machine learning",
				},
			},
		},
	}
}
