package catalog

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jpierre/resume-insights/internal/types"
)

// ParseScheduleHTML extracts course listings from an HTML schedule page.
// Older schedule deployments serve department pages as plain tables with a
// code column and a title column; this is the fallback when the JSON API is
// unavailable for a term.
func ParseScheduleHTML(html string) ([]types.CourseRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schedule HTML: %w", err)
	}

	var courses []types.CourseRecord
	seen := make(map[string]bool)

	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}

		code := strings.TrimSpace(cells.Eq(0).Text())
		name := strings.TrimSpace(cells.Eq(1).Text())
		if !looksLikeCourseCode(code) || name == "" {
			return
		}
		if seen[code] {
			return
		}
		seen[code] = true

		courses = append(courses, types.CourseRecord{Code: code, Name: name})
	})

	if len(courses) == 0 {
		return nil, fmt.Errorf("no course rows found in schedule HTML")
	}

	return courses, nil
}

// looksLikeCourseCode accepts the standard statewide numbering format: a
// three-letter department prefix followed by a four-digit number, with an
// optional section suffix (e.g. "COP3530", "CAP4630L").
func looksLikeCourseCode(code string) bool {
	if len(code) < 7 {
		return false
	}

	for i := 0; i < 3; i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	for i := 3; i < 7; i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}
