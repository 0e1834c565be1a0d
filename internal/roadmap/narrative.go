package roadmap

import (
	"fmt"
	"strings"

	"github.com/jonathan/placement-prep/internal/types"
)

// FallbackNarrative builds a deterministic narrative from the numeric roadmap
// fields alone. It is used whenever the external text generator is absent,
// fails, or returns unusable content, and has no network dependency.
func FallbackNarrative(companyName string, rm *types.Roadmap, availableWeeks int) *types.Narrative {
	target := "your target company"
	if companyName != "" {
		target = companyName
	}

	if len(rm.Gaps) == 0 {
		return &types.Narrative{
			Overview: fmt.Sprintf("Your self-assessment already meets every skill %s asks for. Use the time to polish interview delivery and revisit fundamentals.", target),
			WeeklyPlan: []string{
				"Review fundamentals and rehearse explaining past projects.",
				"Schedule mock interviews to keep skills sharp.",
			},
			AdditionalInsights: []string{
				"A 100% readiness score means no scheduled study weeks are required.",
			},
			MotivationalTips: []string{
				"Staying interview-ready is easier than getting there. Keep practicing.",
			},
		}
	}

	focus := make([]string, 0, 3)
	for _, g := range topGaps(rm.Gaps, 3) {
		focus = append(focus, g.SkillName)
	}

	overview := fmt.Sprintf(
		"You are %d%% ready for %s (%s tier). Closing the remaining %d skill gaps takes roughly %d hours, about %d days at a steady pace. Focus first on %s.",
		rm.ReadinessScore, target, rm.ReadinessTier, len(rm.Gaps), rm.TotalHours, rm.EstimatedDays, strings.Join(focus, ", "),
	)

	weekly := make([]string, 0, len(rm.Weeks))
	for _, wp := range rm.Weeks {
		names := make([]string, 0, len(wp.Skills))
		for _, s := range wp.Skills {
			names = append(names, s.SkillName)
		}
		weekly = append(weekly, fmt.Sprintf("%s: %s (%s)", wp.Label, wp.Theme, strings.Join(names, ", ")))
	}

	insights := []string{
		fmt.Sprintf("The plan fits your %d-week window; lower-priority skills beyond it are deferred, not dropped.", availableWeeks),
		fmt.Sprintf("Highest-impact gap: %s (%.0f%% below the required level).", rm.Gaps[0].SkillName, rm.Gaps[0].GapPercent),
	}

	tips := []string{
		"Short daily sessions beat weekend marathons for retention.",
		"Re-rate yourself after each week and regenerate the plan to see progress.",
	}

	return &types.Narrative{
		Overview:           overview,
		WeeklyPlan:         weekly,
		AdditionalInsights: insights,
		MotivationalTips:   tips,
	}
}
