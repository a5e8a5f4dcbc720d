package scoring

import (
	"math"

	"github.com/jpierre/resume-insights/internal/types"
)

// Quality/quantity blend for the composite step. Links and GPA are exempt:
// their single presence/tier score is the combined score directly.
const (
	combinedQualityWeight  = 0.6
	combinedQuantityWeight = 0.4
)

// dimensionWeights are the fixed category weights; they sum to 100.
var dimensionWeights = map[types.Dimension]int{
	types.DimensionProjects:   25,
	types.DimensionExperience: 25,
	types.DimensionSkills:     15,
	types.DimensionLinks:      10,
	types.DimensionGPA:        10,
	types.DimensionCoursework: 15,
}

// dimensionOutcome pairs a dimension with its scorer result, in the fixed
// traversal order the breakdown and insight ranking both rely on.
type dimensionOutcome struct {
	dimension types.Dimension
	result    DimensionResult
}

// ScoreResume runs all six dimension scorers over the record and combines
// them into the composite report. It never fails: absent or empty sections
// score zero and surface a "get started" insight instead.
func ScoreResume(record *types.ResumeRecord) types.ScoreReport {
	projects, projectsDetail := ScoreProjects(record.Projects)
	experience, experienceDetail := ScoreExperience(record.Experience)
	skills, skillsDetail := ScoreSkills(record.Skills)
	links, linksDetail := ScoreLinks(record.Basics)
	gpa, gpaDetail := ScoreGPA(record.BestGPA())
	coursework, courseworkDetail := ScoreCoursework(record.EducationAchievements())

	outcomes := []dimensionOutcome{
		{types.DimensionProjects, projects},
		{types.DimensionExperience, experience},
		{types.DimensionSkills, skills},
		{types.DimensionLinks, links},
		{types.DimensionGPA, gpa},
		{types.DimensionCoursework, coursework},
	}

	breakdown := make([]types.ScoreBreakdownEntry, 0, len(outcomes))
	total := 0
	for _, outcome := range outcomes {
		entry := breakdownEntry(outcome.dimension, outcome.result)
		total += entry.Contribution
		breakdown = append(breakdown, entry)
	}

	return types.ScoreReport{
		TotalScore: capScore(total),
		Breakdown:  breakdown,
		Insights:   generateInsights(outcomes),
		Analysis: types.ResumeAnalysis{
			Projects:   projectsDetail,
			Experience: experienceDetail,
			Skills:     skillsDetail,
			Links:      linksDetail,
			GPA:        gpaDetail,
			Coursework: courseworkDetail,
		},
	}
}

func breakdownEntry(dimension types.Dimension, result DimensionResult) types.ScoreBreakdownEntry {
	combined := combineScores(dimension, result)
	weight := dimensionWeights[dimension]

	return types.ScoreBreakdownEntry{
		Category:      dimension,
		QualityScore:  result.Quality,
		QuantityScore: result.Quantity,
		CombinedScore: combined,
		Weight:        weight,
		Contribution:  int(math.Round(float64(combined) * float64(weight) / 100)),
	}
}

func combineScores(dimension types.Dimension, result DimensionResult) int {
	if dimension == types.DimensionLinks || dimension == types.DimensionGPA {
		return result.Quality
	}
	return int(math.Round(float64(result.Quality)*combinedQualityWeight +
		float64(result.Quantity)*combinedQuantityWeight))
}
