package roadmap

import (
	"math"

	"github.com/jonathan/placement-prep/internal/types"
)

// EstimateReadiness aggregates gaps into a single 0-100 preparedness score and
// a qualitative tier. The average runs over ALL requirements, not just gapped
// ones: a skill the student already meets contributes zero gap.
func EstimateReadiness(gaps []types.SkillGap, totalRequirements int) (int, string) {
	if totalRequirements == 0 || len(gaps) == 0 {
		return 100, types.TierComplete
	}

	sumPercent := 0.0
	for _, g := range gaps {
		sumPercent += g.GapPercent
	}
	avgPercent := sumPercent / float64(totalRequirements)

	readiness := 100 - avgPercent
	if readiness < 0 {
		readiness = 0
	}
	if readiness > 100 {
		readiness = 100
	}

	score := int(math.Round(readiness))
	return score, readinessTier(score)
}

// readinessTier maps a readiness score to its qualitative label.
func readinessTier(score int) string {
	switch {
	case score >= 80:
		return types.TierVeryHigh
	case score >= 60:
		return types.TierHigh
	case score >= 40:
		return types.TierMedium
	default:
		return types.TierLow
	}
}
