package scoring

import (
	"fmt"
	"sort"

	"github.com/jpierre/resume-insights/internal/types"
)

// Priority thresholds for the urgency assignment below.
const (
	qualityHighPriorityBelow = 50
	skillsQuantityHighBelow  = 30
)

var priorityRank = map[types.Priority]int{
	types.PriorityHigh:   0,
	types.PriorityMedium: 1,
	types.PriorityLow:    2,
}

// generateInsights flattens per-dimension insight strings into one ranked
// list. IDs are assigned from a counter local to the call, so they are unique
// within a report. The sort is stable: within a priority rank, insights keep
// the fixed dimension traversal order.
func generateInsights(outcomes []dimensionOutcome) []types.ActionableInsight {
	var insights []types.ActionableInsight
	counter := 0

	for _, outcome := range outcomes {
		priority := insightPriority(outcome.dimension, outcome.result)
		for _, text := range outcome.result.Insights {
			counter++
			insights = append(insights, types.ActionableInsight{
				ID:       fmt.Sprintf("insight_%d", counter),
				Category: outcome.dimension,
				Insight:  text,
				Priority: priority,
				Checked:  false,
			})
		}
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return priorityRank[insights[i].Priority] < priorityRank[insights[j].Priority]
	})

	return insights
}

// insightPriority maps a dimension's scores to the urgency of its insights:
// weak projects and experience are the highest-leverage fixes, a thin skills
// list is urgent, links are always a quick win, and GPA/coursework tweaks
// rarely move the needle.
func insightPriority(dimension types.Dimension, result DimensionResult) types.Priority {
	switch dimension {
	case types.DimensionProjects, types.DimensionExperience:
		if result.Quality < qualityHighPriorityBelow {
			return types.PriorityHigh
		}
		return types.PriorityMedium
	case types.DimensionSkills:
		if result.Quantity < skillsQuantityHighBelow {
			return types.PriorityHigh
		}
		return types.PriorityLow
	case types.DimensionLinks:
		return types.PriorityMedium
	default:
		return types.PriorityLow
	}
}
