package scoring

import (
	"testing"

	"github.com/jpierre/resume-insights/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreProjects_Empty(t *testing.T) {
	result, detail := ScoreProjects(nil)

	assert.Equal(t, 0, result.Quality)
	assert.Equal(t, 0, result.Quantity)
	require.Len(t, result.Insights, 1)
	assert.Equal(t, 0, detail.ItemCount)
}

func TestScoreProjects_QuantityScaling(t *testing.T) {
	project := types.Project{Name: "p", Description: "a project"}

	result1, _ := ScoreProjects([]types.Project{project})
	result4, _ := ScoreProjects([]types.Project{project, project, project, project})
	result6, _ := ScoreProjects([]types.Project{project, project, project, project, project, project})

	assert.Equal(t, 25, result1.Quantity)
	assert.Equal(t, 100, result4.Quantity)
	assert.Equal(t, 100, result6.Quantity) // capped
}

func TestScoreProjects_TechnologyBonus(t *testing.T) {
	bare := types.Project{Name: "p", Description: "built a service"}
	teched := bare
	teched.Technologies = []string{"Go", "Postgres", "Redis"}

	bareResult, _ := ScoreProjects([]types.Project{bare})
	techedResult, _ := ScoreProjects([]types.Project{teched})

	// 3 technologies listed adds 15 to the single project's quality.
	assert.Equal(t, bareResult.Quality+15, techedResult.Quality)
}

func TestScoreProjects_TechnologyBonusCapped(t *testing.T) {
	many := types.Project{
		Name:         "p",
		Description:  "built a service",
		Technologies: []string{"a", "b", "c", "d", "e", "f", "g"},
	}
	four := many
	four.Technologies = many.Technologies[:4]

	manyResult, _ := ScoreProjects([]types.Project{many})
	fourResult, _ := ScoreProjects([]types.Project{four})

	// Bonus caps at 20, reached already with 4 technologies.
	assert.Equal(t, fourResult.Quality, manyResult.Quality)
}

func TestScoreExperience_Empty(t *testing.T) {
	result, detail := ScoreExperience(nil)

	assert.Equal(t, 0, result.Quality)
	assert.Equal(t, 0, result.Quantity)
	require.Len(t, result.Insights, 1)
	assert.Equal(t, 0, detail.ItemCount)
}

func TestScoreExperience_AchievementBonus(t *testing.T) {
	plain := types.Job{
		Position:         "Intern",
		Responsibilities: []string{"wrote code for the team"},
	}
	withAchievements := plain
	withAchievements.Achievements = []string{"shipped the thing"}

	plainResult, _ := ScoreExperience([]types.Job{plain})
	bonusResult, _ := ScoreExperience([]types.Job{withAchievements})

	assert.Greater(t, bonusResult.Quality, plainResult.Quality)
}

func TestScoreExperience_QuantityScaling(t *testing.T) {
	job := types.Job{Position: "Engineer"}

	result2, _ := ScoreExperience([]types.Job{job, job})
	result5, _ := ScoreExperience([]types.Job{job, job, job, job, job})

	assert.Equal(t, 60, result2.Quantity)
	assert.Equal(t, 100, result5.Quantity)
}

func TestScoreSkills_Empty(t *testing.T) {
	result, detail := ScoreSkills(types.Skills{})

	assert.Equal(t, 0, result.Quality)
	assert.Equal(t, 0, result.Quantity)
	require.Len(t, result.Insights, 1)
	assert.Equal(t, 0, detail.TotalSkills)
}

func TestScoreSkills_CoverageAndDepth(t *testing.T) {
	skills := types.Skills{
		ProgrammingLanguages: []string{"Go", "Python", "TypeScript"}, // depth 20
		Frameworks:           []string{"React", "Gin"},               // depth 10
		Databases:            []string{"PostgreSQL"},                 // depth 5
	}

	result, detail := ScoreSkills(skills)

	assert.Equal(t, 60, detail.CoverageScore) // 3 of 5 categories
	assert.Equal(t, 35, detail.DepthScore)
	// quality = 60*0.6 + 35*0.4 = 50
	assert.Equal(t, 50, result.Quality)
	assert.Equal(t, 30, result.Quantity) // 6 skills * 5
}

func TestScoreSkills_FullCoverage(t *testing.T) {
	skills := types.Skills{
		ProgrammingLanguages: []string{"Go", "Python", "C++"},
		Frameworks:           []string{"React", "Vue", "Svelte"},
		Databases:            []string{"PostgreSQL", "Redis", "Mongo"},
		DevOpsTools:          []string{"Docker", "Kubernetes", "Terraform"},
		Other:                []string{"Git", "Linux", "Bash"},
	}

	result, detail := ScoreSkills(skills)

	assert.Equal(t, 100, detail.CoverageScore)
	assert.Equal(t, 100, detail.DepthScore)
	assert.Equal(t, 100, result.Quality)
}

func TestScoreLinks_Additive(t *testing.T) {
	result, detail := ScoreLinks(types.Basics{
		GitHub:    "https://github.com/someone",
		LinkedIn:  "https://linkedin.com/in/someone",
		Portfolio: "https://someone.dev",
		Email:     "someone@example.com",
		Phone:     "555-0100",
	})

	assert.Equal(t, 100, result.Quality)
	assert.Equal(t, 100, detail.Score)
}

func TestScoreLinks_PartialPresence(t *testing.T) {
	result, _ := ScoreLinks(types.Basics{
		GitHub: "https://github.com/someone",
		Email:  "someone@example.com",
	})

	// 25 (github) + 15 (email)
	assert.Equal(t, 40, result.Quality)
}

func TestScoreLinks_NonePresent(t *testing.T) {
	result, detail := ScoreLinks(types.Basics{Name: "Someone"})

	assert.Equal(t, 0, result.Quality)
	assert.Equal(t, 0, detail.Score)
	require.Len(t, result.Insights, 1)
}

func TestScoreGPA_TierBoundaries(t *testing.T) {
	cases := []struct {
		gpa   float64
		score int
		tier  string
	}{
		{3.7, 100, "excellent"},
		{4.0, 100, "excellent"},
		{3.69, 80, "strong"},
		{3.3, 80, "strong"},
		{3.0, 60, "good"},
		{2.5, 40, "below average"},
		{0, 0, "missing"},
	}

	for _, tc := range cases {
		result, detail := ScoreGPA(tc.gpa)
		assert.Equal(t, tc.score, result.Quality, "gpa %.2f", tc.gpa)
		assert.Equal(t, tc.tier, detail.Tier, "gpa %.2f", tc.gpa)
	}
}

func TestScoreGPA_AbsentGetsStartedInsight(t *testing.T) {
	result, _ := ScoreGPA(0)

	require.Len(t, result.Insights, 1)
}

func TestScoreCoursework_Empty(t *testing.T) {
	result, detail := ScoreCoursework(nil)

	assert.Equal(t, 0, result.Quality)
	assert.Equal(t, 0, result.Quantity)
	require.Len(t, result.Insights, 1)
	assert.Equal(t, 0, detail.AchievementCount)
}

func TestScoreCoursework_RelevanceRatio(t *testing.T) {
	achievements := []string{
		"Relevant coursework: Data Structures, Algorithms", // relevant
		"Dean's List, Fall 2024",                           // not
		"Completed honors thesis on machine learning",      // relevant
		"Chess club president",                             // not
	}

	result, detail := ScoreCoursework(achievements)

	assert.Equal(t, 4, detail.AchievementCount)
	assert.Equal(t, 2, detail.RelevantCount)
	assert.Equal(t, 50, result.Quality)
	assert.Equal(t, 80, result.Quantity) // 4 * 20
}

func TestScoreCoursework_QuantityCapped(t *testing.T) {
	achievements := make([]string, 8)
	for i := range achievements {
		achievements[i] = "Relevant coursework: Algorithms"
	}

	result, _ := ScoreCoursework(achievements)

	assert.Equal(t, 100, result.Quantity)
	assert.Equal(t, 100, result.Quality)
}

func TestDimensionInsights_AtMostThree(t *testing.T) {
	// A weak single project with no technologies trips every projects
	// insight; the scorer still emits at most three.
	result, _ := ScoreProjects([]types.Project{{Name: "p"}})

	assert.LessOrEqual(t, len(result.Insights), 3)
	assert.NotEmpty(t, result.Insights)
}
