package types

// CourseRecord is a single official course listing for an academic term,
// sourced from the university scheduling system.
type CourseRecord struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CourseMatch links a resume-reported course name to the best-scoring catalog
// course at or above the match threshold.
type CourseMatch struct {
	ResumeCourse string        `json:"resume_course"`
	Course       CourseRecord  `json:"course"`
	Score        int           `json:"score"`
	Category     CategoryLabel `json:"category"`
}

// CategoryLabel is one of the nine fixed subject categories every catalog
// course maps to.
type CategoryLabel string

// The closed set of category labels. Categorization is total: every
// (code, name) pair maps to exactly one of these.
const (
	CategoryAIMachineLearning   CategoryLabel = "AI & Machine Learning"
	CategorySecurityPrivacy     CategoryLabel = "Security & Privacy"
	CategoryGraphicsMedia       CategoryLabel = "Graphics & Media"
	CategorySoftwareEngineering CategoryLabel = "Software Engineering"
	CategoryDataDatabases       CategoryLabel = "Data & Databases"
	CategorySystemsHardware     CategoryLabel = "Systems & Hardware"
	CategoryCoreCS              CategoryLabel = "Core CS"
	CategoryTheoryMath          CategoryLabel = "Theory & Math"
	CategoryExcluded            CategoryLabel = "EXCLUDED"
)

// AllCategories lists the nine labels in display order.
func AllCategories() []CategoryLabel {
	return []CategoryLabel{
		CategoryAIMachineLearning,
		CategorySecurityPrivacy,
		CategoryGraphicsMedia,
		CategorySoftwareEngineering,
		CategoryDataDatabases,
		CategorySystemsHardware,
		CategoryCoreCS,
		CategoryTheoryMath,
		CategoryExcluded,
	}
}

// MatchReport is the full matcher output cached per user and term.
type MatchReport struct {
	Term       string                           `json:"term"`
	Threshold  int                              `json:"threshold"`
	Matches    []CourseMatch                    `json:"matches"`
	ByCategory map[CategoryLabel][]CourseMatch  `json:"by_category"`
	Catalog    map[CategoryLabel][]CourseRecord `json:"catalog,omitempty"`
}
