// Package roadmap implements the skill-gap intelligence layer: it converts a
// student's self-rated skill levels against a company's required proficiency
// levels into a prioritized, time-boxed, week-by-week study plan.
package roadmap

import (
	"math"

	"github.com/jonathan/placement-prep/internal/types"
)

const (
	// hoursPerGapPoint is the fixed cost model: ten study hours per missing
	// proficiency point.
	hoursPerGapPoint = 10

	// ratingScaleDivisor maps the student's 1-10 self-rating scale onto the
	// requirement's 1-5 scale. The source scales are fixed, so this ratio is a
	// constant and must not be re-derived.
	ratingScaleDivisor = 2.0

	// requirementScaleMax is the top of the required-proficiency scale.
	requirementScaleMax = 5.0
)

// ComputeGaps derives one SkillGap per requirement the student does not yet
// meet. A missing self-rating counts as zero; a rating that meets or exceeds
// the requirement produces no gap, which is the intended "already proficient"
// case rather than an error.
func ComputeGaps(requirements []types.SkillRequirement, ratings types.SelfRatings) []types.SkillGap {
	gaps := make([]types.SkillGap, 0, len(requirements))

	for _, req := range requirements {
		rating := ratings[req.ID]
		normalized := float64(rating) / ratingScaleDivisor

		gap := float64(req.RequiredLevel) - normalized
		if gap <= 0 {
			continue
		}

		gapPercent := gap / requirementScaleMax * 100
		if gapPercent > 100 {
			gapPercent = 100
		}
		if gapPercent < 0 {
			gapPercent = 0
		}

		hours := int(math.Ceil(gap * hoursPerGapPoint))
		if hours < 0 {
			hours = 0
		}

		gaps = append(gaps, types.SkillGap{
			SkillID:          req.ID,
			SkillName:        req.Name,
			SkillCode:        req.Code,
			RequiredLevel:    req.RequiredLevel,
			SelfRating:       rating,
			NormalizedRating: normalized,
			Gap:              gap,
			GapPercent:       gapPercent,
			ProficiencyCode:  req.ProficiencyCode,
			Weight:           req.Weight,
			Topics:           req.Topics,
			EstimatedHours:   hours,
		})
	}

	return gaps
}
