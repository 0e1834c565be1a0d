package roadmap

import (
	"sort"

	"github.com/jonathan/placement-prep/internal/types"
)

// Weights for the priority score components.
const (
	gapSizeWeight       = 0.6
	skillWeightWeight   = 0.3
	companyRatingWeight = 0.1

	weightScaleMax = 5.0
	ratingScaleMax = 5.0
)

// RankGaps assigns each gap a priority score in [0,1] and returns the list
// sorted by priority descending. Ties keep input order: week-plan construction
// depends on this ordering being deterministic.
//
// companyRating is the company's 0-5 star rating; zero contributes nothing.
func RankGaps(gaps []types.SkillGap, companyRating float64) []types.SkillGap {
	if len(gaps) == 0 {
		return gaps
	}

	maxGap := 0.0
	for _, g := range gaps {
		if g.Gap > maxGap {
			maxGap = g.Gap
		}
	}
	// Floor the denominator so equal small gaps don't divide by zero.
	if maxGap < 1 {
		maxGap = 1
	}

	ranked := make([]types.SkillGap, len(gaps))
	copy(ranked, gaps)

	for i := range ranked {
		g := &ranked[i]
		g.Priority = gapSizeWeight*(g.Gap/maxGap) +
			skillWeightWeight*(float64(g.Weight)/weightScaleMax) +
			companyRatingWeight*(companyRating/ratingScaleMax)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Priority > ranked[j].Priority
	})

	return ranked
}
