// Package analytics turns raw completion counts into participation rates and category growth rankings.
package analytics

import (
	"math"
	"sort"

	"github.com/limbo/clover/pkg/entity"
)

const DefaultGrowthLimit = 3

// CompletionRate is completed/assigned as a percentage in [0, 100].
// Zero assigned or zero completed records give 0.
func CompletionRate(assigned, completed int) float64 {
	if completed <= 0 || assigned <= 0 {
		return 0.0
	}
	rate := float64(completed) / float64(assigned) * 100.0
	return math.Min(rate, 100.0)
}

// GrowthPercent is the signed relative change from prev to curr, rounded half-up to one decimal.
// A zero baseline gives 100 when anything was completed in the current month.
func GrowthPercent(prev, curr int) float64 {
	if prev == 0 {
		if curr > 0 {
			return 100.0
		}
		return 0.0
	}
	return RoundTenths(float64(curr-prev) / float64(prev) * 100.0)
}

// RoundTenths rounds half-up (towards +Inf) at the tenths digit.
func RoundTenths(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}

// RankGrowth compares per-category completion counts of two months and returns at most limit
// entries ordered by growth percent, then by absolute increase, both descending.
// Remaining ties keep category name order. A non-positive limit falls back to DefaultGrowthLimit.
func RankGrowth(prev, curr map[entity.Category]int, limit int) []entity.CategoryGrowth {
	if limit <= 0 {
		limit = DefaultGrowthLimit
	}
	seen := make(map[entity.Category]struct{}, len(prev)+len(curr))
	categories := make([]entity.Category, 0, len(prev)+len(curr))
	for _, counts := range []map[entity.Category]int{prev, curr} {
		for c := range counts {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			categories = append(categories, c)
		}
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })

	result := make([]entity.CategoryGrowth, 0, len(categories))
	for _, c := range categories {
		p, n := prev[c], curr[c]
		result = append(result, entity.CategoryGrowth{
			Category:      c,
			PrevCount:     p,
			CurrCount:     n,
			GrowthPercent: GrowthPercent(p, n),
		})
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].GrowthPercent != result[j].GrowthPercent {
			return result[i].GrowthPercent > result[j].GrowthPercent
		}
		return result[i].CurrCount-result[i].PrevCount > result[j].CurrCount-result[j].PrevCount
	})
	if len(result) > limit {
		result = result[:limit]
	}
	for i := range result {
		result[i].Rank = i + 1
	}
	return result
}
