package scoring

import (
	"math"
	"strings"

	"github.com/jpierre/resume-insights/internal/types"
)

// Text-analysis blend weights per dimension. These differ deliberately:
// experience leans harder on impact and verbs, projects reward technical
// breadth more.
const (
	projectImpactWeight    = 0.4
	projectVerbWeight      = 0.3
	projectTechnicalWeight = 0.3

	experienceImpactWeight    = 0.45
	experienceVerbWeight      = 0.35
	experienceTechnicalWeight = 0.2

	skillsCoverageWeight = 0.6
	skillsDepthWeight    = 0.4
)

// Quantity scaling and bonuses.
const (
	projectQuantityStep    = 25
	experienceQuantityStep = 30
	skillsQuantityStep     = 5
	courseworkQuantityStep = 20

	projectTechBonusPerItem = 5
	projectTechBonusCap     = 20
	achievementBonus        = 15

	skillCategoryCount = 5
)

// Fixed "get started" insights, one per dimension, emitted exactly once when
// the dimension has no data.
const (
	projectsGetStarted   = "Add your first project to showcase hands-on work."
	experienceGetStarted = "Add an internship or job to the experience section."
	skillsGetStarted     = "Start a skills section with the languages and tools you know."
	linksGetStarted      = "Add contact links (GitHub, LinkedIn, email) so reviewers can reach you and see your work."
	gpaGetStarted        = "Add your GPA if it is 3.0 or above."
	courseworkGetStarted = "Add a 'Relevant coursework:' line to your education section."
)

// courseworkKeywords mark an education achievement line as CS-relevant.
var courseworkKeywords = []string{
	"data structure",
	"algorithm",
	"operating system",
	"database",
	"machine learning",
	"artificial intelligence",
	"computer",
	"software",
	"programming",
	"network",
	"security",
}

// DimensionResult is the quality/quantity pair a dimension scorer produces,
// with up to three insight strings in priority order.
type DimensionResult struct {
	Quality  int
	Quantity int
	Insights []string
}

// ScoreProjects scores the projects dimension. Quantity rewards up to four
// projects; quality is the per-project mean of the text-analysis blend plus a
// technology-listing bonus, each project clamped to 100 before averaging.
func ScoreProjects(projects []types.Project) (DimensionResult, types.DimensionDetail) {
	if len(projects) == 0 {
		result := DimensionResult{Insights: []string{projectsGetStarted}}
		return result, types.DimensionDetail{}
	}

	quantity := capScore(len(projects) * projectQuantityStep)

	totalQuality := 0.0
	withTechnologies := 0
	for _, project := range projects {
		analysis := AnalyzeText(projectText(project))
		quality := float64(analysis.ImpactScore)*projectImpactWeight +
			float64(analysis.ActionVerbScore)*projectVerbWeight +
			float64(analysis.TechnicalDepthScore)*projectTechnicalWeight

		if len(project.Technologies) > 0 {
			withTechnologies++
			bonus := len(project.Technologies) * projectTechBonusPerItem
			if bonus > projectTechBonusCap {
				bonus = projectTechBonusCap
			}
			quality += float64(bonus)
		}

		if quality > 100 {
			quality = 100
		}
		totalQuality += quality
	}

	quality := int(math.Round(totalQuality / float64(len(projects))))

	var insights []string
	if quality < 50 {
		insights = append(insights, "Quantify project outcomes with concrete metrics (users, performance, scale).")
	}
	if withTechnologies < len(projects) {
		insights = append(insights, "List the technologies behind each project.")
	}
	if len(projects) < 3 {
		insights = append(insights, "Add more projects; three or more shows sustained building.")
	}

	result := DimensionResult{Quality: quality, Quantity: quantity, Insights: limitInsights(insights)}
	return result, types.DimensionDetail{QualityScore: quality, QuantityScore: quantity, ItemCount: len(projects)}
}

// ScoreExperience scores the experience dimension. Each entry's quality is
// the text-analysis blend over its responsibilities and achievements, with a
// flat bonus when achievements are reported separately.
func ScoreExperience(jobs []types.Job) (DimensionResult, types.DimensionDetail) {
	if len(jobs) == 0 {
		result := DimensionResult{Insights: []string{experienceGetStarted}}
		return result, types.DimensionDetail{}
	}

	quantity := capScore(len(jobs) * experienceQuantityStep)

	totalQuality := 0.0
	withAchievements := 0
	for _, job := range jobs {
		analysis := AnalyzeText(jobText(job))
		quality := float64(analysis.ImpactScore)*experienceImpactWeight +
			float64(analysis.ActionVerbScore)*experienceVerbWeight +
			float64(analysis.TechnicalDepthScore)*experienceTechnicalWeight

		if len(job.Achievements) > 0 {
			withAchievements++
			quality += achievementBonus
		}

		if quality > 100 {
			quality = 100
		}
		totalQuality += quality
	}

	quality := int(math.Round(totalQuality / float64(len(jobs))))

	var insights []string
	if quality < 50 {
		insights = append(insights, "Lead experience bullets with strong action verbs and measurable results.")
	}
	if withAchievements < len(jobs) {
		insights = append(insights, "Separate achievements from day-to-day responsibilities for each role.")
	}

	result := DimensionResult{Quality: quality, Quantity: quantity, Insights: limitInsights(insights)}
	return result, types.DimensionDetail{QualityScore: quality, QuantityScore: quantity, ItemCount: len(jobs)}
}

// ScoreSkills scores the skills dimension: quantity from the total count,
// quality from category coverage blended with per-category depth tiers.
func ScoreSkills(skills types.Skills) (DimensionResult, types.SkillsDetail) {
	total := skills.TotalSkills()
	if total == 0 {
		result := DimensionResult{Insights: []string{skillsGetStarted}}
		return result, types.SkillsDetail{}
	}

	quantity := capScore(total * skillsQuantityStep)

	categoriesWithAny := 0
	depth := 0
	for _, category := range skills.Categories() {
		count := len(category)
		if count > 0 {
			categoriesWithAny++
		}
		switch {
		case count >= 3:
			depth += 20
		case count >= 2:
			depth += 10
		case count >= 1:
			depth += 5
		}
	}
	depth = capScore(depth)

	coverage := int(math.Round(float64(categoriesWithAny) / skillCategoryCount * 100))
	quality := int(math.Round(float64(coverage)*skillsCoverageWeight + float64(depth)*skillsDepthWeight))

	var insights []string
	if coverage < 60 {
		insights = append(insights, "Cover more skill categories: languages, frameworks, databases, devops tools.")
	}
	if total < 10 {
		insights = append(insights, "List more of the tools you have actually used in projects or work.")
	}

	result := DimensionResult{Quality: quality, Quantity: quantity, Insights: limitInsights(insights)}
	detail := types.SkillsDetail{
		QualityScore:  quality,
		QuantityScore: quantity,
		TotalSkills:   total,
		CoverageScore: coverage,
		DepthScore:    depth,
	}
	return result, detail
}

// ScoreLinks scores the links/contact dimension. It has no quantity axis:
// the additive presence score is the dimension's single score.
func ScoreLinks(basics types.Basics) (DimensionResult, types.LinksDetail) {
	detail := types.LinksDetail{
		HasGitHub:    basics.GitHub != "",
		HasLinkedIn:  basics.LinkedIn != "",
		HasPortfolio: basics.Portfolio != "",
		HasEmail:     basics.Email != "",
		HasPhone:     basics.Phone != "",
	}

	score := 0
	if detail.HasGitHub {
		score += 25
	}
	if detail.HasLinkedIn {
		score += 20
	}
	if detail.HasPortfolio {
		score += 25
	}
	if detail.HasEmail {
		score += 15
	}
	if detail.HasPhone {
		score += 15
	}
	detail.Score = score

	if score == 0 {
		return DimensionResult{Insights: []string{linksGetStarted}}, detail
	}

	var insights []string
	if !detail.HasGitHub {
		insights = append(insights, "Link your GitHub profile; reviewers look for code.")
	}
	if !detail.HasPortfolio {
		insights = append(insights, "Add a portfolio site to stand out.")
	}
	if !detail.HasLinkedIn {
		insights = append(insights, "Add your LinkedIn profile.")
	}
	if !detail.HasEmail {
		insights = append(insights, "Include an email address.")
	}

	result := DimensionResult{Quality: score, Quantity: score, Insights: limitInsights(insights)}
	return result, detail
}

// ScoreGPA scores the GPA dimension on fixed tiers.
func ScoreGPA(gpa float64) (DimensionResult, types.GPADetail) {
	score, tier := gpaTier(gpa)
	detail := types.GPADetail{Score: score, GPA: gpa, Tier: tier}

	if gpa <= 0 {
		return DimensionResult{Insights: []string{gpaGetStarted}}, detail
	}

	var insights []string
	if score <= 40 {
		insights = append(insights, "Consider omitting a GPA below 3.0 and leading with projects instead.")
	}

	result := DimensionResult{Quality: score, Quantity: score, Insights: limitInsights(insights)}
	return result, detail
}

func gpaTier(gpa float64) (int, string) {
	switch {
	case gpa >= 3.7:
		return 100, "excellent"
	case gpa >= 3.3:
		return 80, "strong"
	case gpa >= 3.0:
		return 60, "good"
	case gpa > 0:
		return 40, "below average"
	default:
		return 0, "missing"
	}
}

// ScoreCoursework scores the coursework dimension over education achievement
// lines: quantity from line count, quality from the share of lines carrying a
// CS-relevant keyword.
func ScoreCoursework(achievements []string) (DimensionResult, types.CourseworkDetail) {
	if len(achievements) == 0 {
		result := DimensionResult{Insights: []string{courseworkGetStarted}}
		return result, types.CourseworkDetail{}
	}

	quantity := capScore(len(achievements) * courseworkQuantityStep)

	relevant := 0
	for _, achievement := range achievements {
		lower := strings.ToLower(achievement)
		for _, keyword := range courseworkKeywords {
			if strings.Contains(lower, keyword) {
				relevant++
				break
			}
		}
	}

	quality := int(math.Round(float64(relevant) / float64(len(achievements)) * 100))

	var insights []string
	if quality < 50 {
		insights = append(insights, "Highlight CS-specific courses in your coursework line.")
	}

	result := DimensionResult{Quality: quality, Quantity: quantity, Insights: limitInsights(insights)}
	detail := types.CourseworkDetail{
		QualityScore:     quality,
		QuantityScore:    quantity,
		AchievementCount: len(achievements),
		RelevantCount:    relevant,
	}
	return result, detail
}

func projectText(project types.Project) string {
	parts := make([]string, 0, len(project.Highlights)+1)
	if project.Description != "" {
		parts = append(parts, project.Description)
	}
	parts = append(parts, project.Highlights...)
	return strings.Join(parts, " ")
}

func jobText(job types.Job) string {
	parts := make([]string, 0, len(job.Responsibilities)+len(job.Achievements))
	parts = append(parts, job.Responsibilities...)
	parts = append(parts, job.Achievements...)
	return strings.Join(parts, " ")
}

// limitInsights keeps at most three insights per dimension, highest priority
// first.
func limitInsights(insights []string) []string {
	if len(insights) > 3 {
		return insights[:3]
	}
	return insights
}
