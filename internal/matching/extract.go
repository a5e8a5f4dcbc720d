// Package matching matches resume-reported coursework against the official
// course catalog and assigns every catalog course a subject category.
package matching

import "strings"

// courseworkMarker introduces a comma-separated course list inside an
// education achievement line.
const courseworkMarker = "relevant coursework:"

// ExtractCoursework pulls course names out of free-text achievement lines.
// Each line is scanned case-insensitively for "relevant coursework:"; the
// remainder of a matching line is split on commas, trimmed, and appended in
// encounter order. Duplicates are kept; lines without the marker contribute
// nothing.
func ExtractCoursework(achievements []string) []string {
	var courses []string

	for _, achievement := range achievements {
		lower := strings.ToLower(achievement)
		idx := strings.Index(lower, courseworkMarker)
		if idx < 0 {
			continue
		}

		list := achievement[idx+len(courseworkMarker):]
		for _, entry := range strings.Split(list, ",") {
			entry = strings.TrimSpace(entry)
			if entry != "" {
				courses = append(courses, entry)
			}
		}
	}

	return courses
}
