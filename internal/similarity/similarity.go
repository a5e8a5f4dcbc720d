// Package similarity provides the string-similarity metric used to match
// resume-reported course names against official catalog titles.
package similarity

import "strings"

// substringScore is returned when one normalized string contains the other.
// The shortcut deliberately wins over the edit-distance blend so that partial
// titles ("Data Structures" vs "Data Structures and Algorithms") score high
// regardless of length difference.
const substringScore = 90

// wordOverlapBonusMax is the maximum bonus added for shared words.
const wordOverlapBonusMax = 20.0

// Score returns a similarity score in [0,100] between two free-text strings.
// Both inputs are lowercased and trimmed before comparison.
//
// Identical strings score 100, which also covers two empty inputs. If either
// string contains the other the score is 90; an empty string is a substring
// of anything, so a single empty input scores 90. Otherwise the score is the
// normalized Levenshtein similarity plus a word-overlap bonus, capped at 100.
func Score(a, b string) int {
	s1 := strings.ToLower(strings.TrimSpace(a))
	s2 := strings.ToLower(strings.TrimSpace(b))

	if s1 == s2 {
		return 100
	}

	if strings.Contains(s1, s2) || strings.Contains(s2, s1) {
		return substringScore
	}

	maxLen := len(s1)
	if len(s2) > maxLen {
		maxLen = len(s2)
	}
	if maxLen == 0 {
		return 0
	}

	distance := Levenshtein(s1, s2)
	base := float64(maxLen-distance) / float64(maxLen) * 100

	score := base + wordOverlapBonus(s1, s2)
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return int(score)
}

// Levenshtein computes the edit distance between two strings with unit cost
// for insertion, deletion, and substitution.
func Levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			deletion := prev[j] + 1
			insertion := curr[j-1] + 1
			substitution := prev[j-1] + cost

			min := deletion
			if insertion < min {
				min = insertion
			}
			if substitution < min {
				min = substitution
			}
			curr[j] = min
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// wordOverlapBonus rewards shared words between the two strings, scaled by
// the larger word count. Membership is checked per token in the first list,
// not as a multiset intersection: a word repeated in the first string counts
// once per occurrence. The looseness is intentional; tightening it would
// shift scores across the match threshold.
func wordOverlapBonus(a, b string) float64 {
	wordsA := strings.Fields(a)
	wordsB := strings.Fields(b)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}

	inB := make(map[string]bool, len(wordsB))
	for _, w := range wordsB {
		inB[w] = true
	}

	common := 0
	for _, w := range wordsA {
		if inB[w] {
			common++
		}
	}

	maxWords := len(wordsA)
	if len(wordsB) > maxWords {
		maxWords = len(wordsB)
	}

	return float64(common) / float64(maxWords) * wordOverlapBonusMax
}
