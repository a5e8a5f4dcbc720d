// Package scoring implements the deterministic resume quality scorer: six
// dimensions scored along quality and quantity axes, blended into a 0-100
// composite with ranked actionable insights.
package scoring

import (
	"regexp"
	"strings"
)

// Per-match increments for the three text sub-scores. Each sub-score caps
// at 100.
const (
	impactPointsPerMatch    = 20
	verbPointsPerMatch      = 15
	technicalPointsPerMatch = 12
)

// impactPatterns detect quantified outcomes: percentages, dollar amounts,
// multipliers, user counts, durations, volume figures, and outcome verbs.
var impactPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+(\.\d+)?%`),
	regexp.MustCompile(`\$\d[\d,]*(\.\d+)?[kmb]?`),
	regexp.MustCompile(`(?i)\b\d+(\.\d+)?x\b`),
	regexp.MustCompile(`(?i)\b\d[\d,]*\+?\s?(users|customers|clients|people|students|downloads)\b`),
	regexp.MustCompile(`(?i)\b\d[\d,]*\+?\s?(seconds|minutes|hours|days|weeks|months)\b`),
	regexp.MustCompile(`(?i)\b\d[\d,]*[km]?\+?\s?(records|requests|transactions|queries|rows|events)\b`),
	regexp.MustCompile(`(?i)\b(increased|decreased|reduced|improved|saved|grew|boosted|accelerated|doubled|tripled)\b`),
}

// actionVerbs are strong leadership/delivery verbs, matched whole-word and
// counted once each.
var actionVerbs = []string{
	"led", "managed", "architected", "designed", "developed", "implemented",
	"built", "created", "launched", "spearheaded", "directed", "coordinated",
	"established", "founded", "initiated", "delivered", "drove", "transformed",
	"streamlined", "automated", "engineered", "mentored",
}

var actionVerbPatterns = buildVerbPatterns(actionVerbs)

// technicalKeywords are matched as case-insensitive substrings, counted once
// each. No word boundary: "dockerized" still signals Docker experience.
var technicalKeywords = []string{
	"api", "database", "cloud", "docker", "kubernetes", "microservice",
	"ci/cd", "machine learning", "distributed", "backend", "frontend",
	"framework", "algorithm", "infrastructure", "testing",
}

// TextAnalysis holds the three independent sub-scores for a block of text.
type TextAnalysis struct {
	ImpactScore           int
	ActionVerbScore       int
	TechnicalDepthScore   int
	HasQuantifiableImpact bool
}

// AnalyzeText scores a block of concatenated bullet/description text along
// the impact, action-verb, and technical-depth axes. Impact counts every
// pattern occurrence; verbs and technical keywords count each entry at most
// once.
func AnalyzeText(text string) TextAnalysis {
	impactMatches := 0
	for _, pattern := range impactPatterns {
		impactMatches += len(pattern.FindAllString(text, -1))
	}

	verbMatches := 0
	for _, pattern := range actionVerbPatterns {
		if pattern.MatchString(text) {
			verbMatches++
		}
	}

	lower := strings.ToLower(text)
	technicalMatches := 0
	for _, keyword := range technicalKeywords {
		if strings.Contains(lower, keyword) {
			technicalMatches++
		}
	}

	return TextAnalysis{
		ImpactScore:           capScore(impactMatches * impactPointsPerMatch),
		ActionVerbScore:       capScore(verbMatches * verbPointsPerMatch),
		TechnicalDepthScore:   capScore(technicalMatches * technicalPointsPerMatch),
		HasQuantifiableImpact: impactMatches > 0,
	}
}

func buildVerbPatterns(verbs []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(verbs))
	for _, verb := range verbs {
		patterns = append(patterns, regexp.MustCompile(`(?i)\b`+verb+`\b`))
	}
	return patterns
}

func capScore(score int) int {
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}
