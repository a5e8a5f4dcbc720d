package matching

import (
	"sort"

	"github.com/jpierre/resume-insights/internal/similarity"
	"github.com/jpierre/resume-insights/internal/types"
)

// DefaultThreshold is the minimum similarity score for a catalog course to
// qualify as a match.
const DefaultThreshold = 60

// MatchCoursework finds, for each resume-reported course name, the single
// best-scoring catalog course whose name similarity meets the threshold.
// A candidate replaces the current best only on strict improvement, so ties
// keep the first-seen catalog entry. Resume courses with no qualifying
// candidate are silently dropped. The result is sorted by score, descending.
//
// An empty catalog (e.g. the catalog fetch failed upstream) yields zero
// matches, never an error; scoring does not depend on matching.
func MatchCoursework(resumeCourses []string, catalog []types.CourseRecord, threshold int) []types.CourseMatch {
	matches := make([]types.CourseMatch, 0, len(resumeCourses))

	for _, resumeCourse := range resumeCourses {
		var best *types.CourseRecord
		bestScore := 0

		for i := range catalog {
			score := similarity.Score(resumeCourse, catalog[i].Name)
			if score >= threshold && score > bestScore {
				best = &catalog[i]
				bestScore = score
			}
		}

		if best != nil {
			matches = append(matches, types.CourseMatch{
				ResumeCourse: resumeCourse,
				Course:       *best,
				Score:        bestScore,
				Category:     Categorize(best.Code, best.Name),
			})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return matches
}

// GroupByCategory buckets matches by their category label.
func GroupByCategory(matches []types.CourseMatch) map[types.CategoryLabel][]types.CourseMatch {
	grouped := make(map[types.CategoryLabel][]types.CourseMatch)
	for _, match := range matches {
		grouped[match.Category] = append(grouped[match.Category], match)
	}
	return grouped
}

// CategorizeCatalog projects the full catalog into category buckets for
// display. Excluded courses (internships, independent study, special topics)
// are filtered out.
func CategorizeCatalog(catalog []types.CourseRecord) map[types.CategoryLabel][]types.CourseRecord {
	grouped := make(map[types.CategoryLabel][]types.CourseRecord)
	for _, course := range catalog {
		category := Categorize(course.Code, course.Name)
		if category == types.CategoryExcluded {
			continue
		}
		grouped[category] = append(grouped[category], course)
	}
	return grouped
}

// BuildMatchReport runs extraction, matching, and grouping in one pass and
// packages the result for caching.
func BuildMatchReport(term string, achievements []string, catalog []types.CourseRecord, threshold int) types.MatchReport {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	courses := ExtractCoursework(achievements)
	matches := MatchCoursework(courses, catalog, threshold)

	return types.MatchReport{
		Term:       term,
		Threshold:  threshold,
		Matches:    matches,
		ByCategory: GroupByCategory(matches),
		Catalog:    CategorizeCatalog(catalog),
	}
}
