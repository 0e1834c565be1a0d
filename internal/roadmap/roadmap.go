package roadmap

import (
	"context"
	"math"

	"github.com/jonathan/placement-prep/internal/types"
)

// dailyPracticeHours is the assumed study pace used for the calendar-day
// estimate. Fixed policy, not tunable per call.
const dailyPracticeHours = 3.0

// Generator produces narrative enrichment for a roadmap. Implementations may
// call external services; callers must treat failure as recoverable.
type Generator interface {
	GenerateNarrative(ctx context.Context, req NarrativeRequest) (*types.Narrative, error)
}

// NarrativeRequest is the compact context handed to a Generator.
type NarrativeRequest struct {
	CompanyName    string
	TopGaps        []types.SkillGap
	AvailableWeeks int
	ReadinessScore int
}

// Generate composes the full roadmap pipeline: gap calculation, priority
// ranking, readiness estimation, week allocation and weekly plan construction,
// in that fixed order. It is a pure function: inputs are never mutated and
// identical inputs yield identical output.
//
// An empty requirement list short-circuits to a fully-ready roadmap; that is
// the explicit empty-input contract, not an error. Validating availableWeeks
// (a sane 1-52 range) is the caller's responsibility.
func Generate(requirements []types.SkillRequirement, ratings types.SelfRatings, availableWeeks int, companyRating float64) *types.Roadmap {
	if len(requirements) == 0 {
		return &types.Roadmap{
			ReadinessScore: 100,
			ReadinessTier:  types.TierComplete,
			Gaps:           []types.SkillGap{},
			Weeks:          []types.WeekPlan{},
		}
	}

	gaps := ComputeGaps(requirements, ratings)
	ranked := RankGaps(gaps, companyRating)
	score, tier := EstimateReadiness(ranked, len(requirements))
	allocation := AllocateWeeks(ranked, availableWeeks)
	weeks := BuildWeekPlans(ranked, allocation, availableWeeks)

	totalHours := 0
	for _, g := range ranked {
		totalHours += g.EstimatedHours
	}

	return &types.Roadmap{
		ReadinessScore: score,
		ReadinessTier:  tier,
		EstimatedDays:  estimateDays(totalHours),
		TotalHours:     totalHours,
		Gaps:           ranked,
		Weeks:          weeks,
	}
}

// estimateDays converts total study hours into a calendar-day estimate at the
// fixed daily practice pace.
func estimateDays(totalHours int) int {
	if totalHours <= 0 {
		return 0
	}
	return int(math.Ceil(float64(totalHours) / dailyPracticeHours * 7 / 24))
}

// Enrich attaches a narrative block to an already-computed roadmap. The
// generator call is best-effort: on any failure, timeout or empty result the
// deterministic local fallback is used instead, so the returned roadmap always
// carries a narrative and its numeric fields are never touched.
func Enrich(ctx context.Context, gen Generator, companyName string, rm *types.Roadmap, availableWeeks int) {
	if gen != nil {
		req := NarrativeRequest{
			CompanyName:    companyName,
			TopGaps:        topGaps(rm.Gaps, 3),
			AvailableWeeks: availableWeeks,
			ReadinessScore: rm.ReadinessScore,
		}
		if narrative, err := gen.GenerateNarrative(ctx, req); err == nil && narrative != nil && narrative.Overview != "" {
			rm.Narrative = narrative
			return
		}
	}
	rm.Narrative = FallbackNarrative(companyName, rm, availableWeeks)
}

// topGaps returns the first n gaps (already priority-descending).
func topGaps(gaps []types.SkillGap, n int) []types.SkillGap {
	if len(gaps) <= n {
		return gaps
	}
	return gaps[:n]
}
