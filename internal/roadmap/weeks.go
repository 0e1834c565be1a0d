package roadmap

import (
	"fmt"
	"math"

	"github.com/jonathan/placement-prep/internal/types"
)

// BuildWeekPlans expands a week allocation into a concrete week-indexed
// curriculum. Skills are walked in priority order and consume consecutive week
// slots; emission stops once the week counter passes the budget, silently
// truncating lower-priority skills. allocation must be index-aligned with gaps
// (the AllocateWeeks output).
//
// A run of consecutive single-week skills shares one "Build Foundation" week;
// a multi-week skill gets one plan per week, with the first carrying a
// "Weeks X-Y" range label.
func BuildWeekPlans(gaps []types.SkillGap, allocation []int, availableWeeks int) []types.WeekPlan {
	plans := make([]types.WeekPlan, 0, availableWeeks)
	week := 1

	for i := 0; i < len(gaps); {
		if week > availableWeeks {
			break
		}

		if allocation[i] == 1 {
			// Gather the run of consecutive single-week skills into one shared week.
			var skills []types.WeekSkill
			for i < len(gaps) && allocation[i] == 1 {
				skills = append(skills, weekSkill(gaps[i], gaps[i].EstimatedHours))
				i++
			}
			plans = append(plans, types.WeekPlan{
				Week:   week,
				Label:  fmt.Sprintf("Week %d", week),
				Theme:  "Build Foundation",
				Target: fmt.Sprintf("Complete %d focused modules", len(skills)),
				Skills: skills,
			})
			week++
			continue
		}

		gap := gaps[i]
		allocated := allocation[i]
		hoursPerWeek := int(math.Ceil(float64(gap.EstimatedHours) / float64(allocated)))

		lastWeek := week + allocated - 1
		if lastWeek > availableWeeks {
			lastWeek = availableWeeks
		}

		for w := 0; w < allocated && week <= availableWeeks; w++ {
			label := fmt.Sprintf("Week %d", week)
			if w == 0 && lastWeek > week {
				label = fmt.Sprintf("Weeks %d-%d", week, lastWeek)
			}
			plans = append(plans, types.WeekPlan{
				Week:   week,
				Label:  label,
				Theme:  fmt.Sprintf("Master %s", gap.SkillName),
				Target: fmt.Sprintf("Reach %s in %s", types.ProficiencyLabel(gap.ProficiencyCode), gap.SkillName),
				Skills: []types.WeekSkill{weekSkill(gap, hoursPerWeek)},
			})
			week++
		}
		i++
	}

	return plans
}

// weekSkill builds the per-week study entry for a gap.
func weekSkill(gap types.SkillGap, hours int) types.WeekSkill {
	return types.WeekSkill{
		SkillID:           gap.SkillID,
		SkillName:         gap.SkillName,
		SkillCode:         gap.SkillCode,
		TargetProficiency: types.ProficiencyLabel(gap.ProficiencyCode),
		Hours:             hours,
		PracticeType:      types.PracticeType(gap.ProficiencyCode),
		Topics:            gap.Topics,
	}
}
