package types

// Dimension identifies one of the six scored resume dimensions.
type Dimension string

// The six scored dimensions, in breakdown and insight traversal order.
const (
	DimensionProjects   Dimension = "projects"
	DimensionExperience Dimension = "experience"
	DimensionSkills     Dimension = "skills"
	DimensionLinks      Dimension = "links"
	DimensionGPA        Dimension = "gpa"
	DimensionCoursework Dimension = "coursework"
)

// Priority ranks an actionable insight.
type Priority string

// Insight priorities in descending urgency.
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// ScoreBreakdownEntry is one dimension's slice of the composite score.
// Contribution is CombinedScore scaled by Weight; the six contributions sum
// to the total score.
type ScoreBreakdownEntry struct {
	Category      Dimension `json:"category"`
	QualityScore  int       `json:"quality_score"`
	QuantityScore int       `json:"quantity_score"`
	CombinedScore int       `json:"combined_score"`
	Weight        int       `json:"weight"`
	Contribution  int       `json:"contribution"`
}

// ActionableInsight is a single ranked suggestion. Checked is toggled by the
// presentation layer; the engines always emit it false.
type ActionableInsight struct {
	ID       string    `json:"id"`
	Category Dimension `json:"category"`
	Insight  string    `json:"insight"`
	Priority Priority  `json:"priority"`
	Checked  bool      `json:"checked"`
}

// ScoreReport is the full scorer output cached per user.
type ScoreReport struct {
	TotalScore int                   `json:"total_score"`
	Breakdown  []ScoreBreakdownEntry `json:"breakdown"`
	Insights   []ActionableInsight   `json:"insights"`
	Analysis   ResumeAnalysis        `json:"analysis"`
}

// ResumeAnalysis carries the per-dimension detail behind the breakdown.
type ResumeAnalysis struct {
	Projects   DimensionDetail  `json:"projects"`
	Experience DimensionDetail  `json:"experience"`
	Skills     SkillsDetail     `json:"skills"`
	Links      LinksDetail      `json:"links"`
	GPA        GPADetail        `json:"gpa"`
	Coursework CourseworkDetail `json:"coursework"`
}

// DimensionDetail is the quality/quantity pair for the collection dimensions.
type DimensionDetail struct {
	QualityScore  int `json:"quality_score"`
	QuantityScore int `json:"quantity_score"`
	ItemCount     int `json:"item_count"`
}

// SkillsDetail adds the coverage/depth decomposition behind the skills score.
type SkillsDetail struct {
	QualityScore  int `json:"quality_score"`
	QuantityScore int `json:"quantity_score"`
	TotalSkills   int `json:"total_skills"`
	CoverageScore int `json:"coverage_score"`
	DepthScore    int `json:"depth_score"`
}

// LinksDetail records which contact fields were present.
type LinksDetail struct {
	Score        int  `json:"score"`
	HasGitHub    bool `json:"has_github"`
	HasLinkedIn  bool `json:"has_linkedin"`
	HasPortfolio bool `json:"has_portfolio"`
	HasEmail     bool `json:"has_email"`
	HasPhone     bool `json:"has_phone"`
}

// GPADetail records the GPA tier behind the score.
type GPADetail struct {
	Score int     `json:"score"`
	GPA   float64 `json:"gpa"`
	Tier  string  `json:"tier"`
}

// CourseworkDetail records the relevance ratio behind the coursework score.
type CourseworkDetail struct {
	QualityScore     int `json:"quality_score"`
	QuantityScore    int `json:"quantity_score"`
	AchievementCount int `json:"achievement_count"`
	RelevantCount    int `json:"relevant_count"`
}
